package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultSessionSecret signs demo sessions. Deployments override it.
const DefaultSessionSecret = "dev-secret"

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Users    []UserConfig   `yaml:"users"`
	Client   ClientConfig   `yaml:"client"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Host          string        `yaml:"host"`
	Port          int           `yaml:"port"`
	SessionSecret string        `yaml:"session_secret"`
	SessionMaxAge time.Duration `yaml:"session_max_age"`
	Dataset       string        `yaml:"dataset"`
	WatchDataset  bool          `yaml:"watch_dataset"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// UserConfig is one account. PasswordHash takes precedence over the plain
// Password, which exists for demo setups only.
type UserConfig struct {
	Username     string   `yaml:"username"`
	PasswordHash string   `yaml:"password_hash"`
	Password     string   `yaml:"password"`
	Brands       []string `yaml:"brands"`
}

type ClientConfig struct {
	BaseURL   string        `yaml:"base_url"`
	APIPrefix string        `yaml:"api_prefix"`
	Timeout   time.Duration `yaml:"timeout"`
	RetryMax  int           `yaml:"retry_max"`
	Username  string        `yaml:"username"`
	LogFile   string        `yaml:"log_file"`
	ExportDir string        `yaml:"export_dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// demoBrands are brands of the bundled demo dataset. Each gets a user
// named after it with the same password; "demo" spans several providers.
var demoBrands = []string{"CHANEL", "CLARINS", "JA", "HÉRMES", "DIOR"}

func defaultConfig() *Config {
	users := make([]UserConfig, 0, len(demoBrands))
	for _, b := range demoBrands {
		name := strings.ToLower(b)
		if b == "HÉRMES" {
			name = "hermes"
		}
		users = append(users, UserConfig{Username: name, Password: name, Brands: []string{b}})
	}
	users = append(users, UserConfig{Username: "demo", Password: "demo", Brands: []string{"CHANEL", "DIOR", "LFB", "ACTIUM"}})
	return &Config{
		Server: ServerConfig{
			Host:          "127.0.0.1",
			Port:          8000,
			SessionSecret: DefaultSessionSecret,
			SessionMaxAge: 30 * 24 * time.Hour,
		},
		Database: DatabaseConfig{
			Path: ":memory:",
		},
		Users: users,
		Client: ClientConfig{
			BaseURL:   "http://127.0.0.1:8000",
			APIPrefix: "/api",
			Timeout:   10 * time.Second,
			LogFile:   "pedidos-tui.log",
			ExportDir: ".",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Default returns the built-in configuration.
func Default() *Config { return defaultConfig() }

// Load reads path on top of the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return defaultConfig(), nil
	}
	return cfg, err
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.SessionSecret == "" {
		return errors.New("server.session_secret is empty")
	}
	if c.Server.SessionMaxAge <= 0 {
		return fmt.Errorf("server.session_max_age %s must be positive", c.Server.SessionMaxAge)
	}
	if p := c.Client.APIPrefix; p != "" && (!strings.HasPrefix(p, "/") || strings.HasSuffix(p, "/")) {
		return fmt.Errorf("client.api_prefix %q must start with / and not end with /", p)
	}
	if c.Client.RetryMax < 0 {
		return fmt.Errorf("client.retry_max %d is negative", c.Client.RetryMax)
	}
	seen := make(map[string]bool, len(c.Users))
	for i, u := range c.Users {
		if u.Username == "" {
			return fmt.Errorf("users[%d]: username is empty", i)
		}
		if seen[u.Username] {
			return fmt.Errorf("users[%d]: duplicate username %q", i, u.Username)
		}
		seen[u.Username] = true
		if u.PasswordHash == "" && u.Password == "" {
			return fmt.Errorf("user %q has no password", u.Username)
		}
		if len(u.Brands) == 0 {
			return fmt.Errorf("user %q has no brands", u.Username)
		}
	}
	return nil
}

// User returns the account named username.
func (c *Config) User(username string) (UserConfig, bool) {
	for _, u := range c.Users {
		if u.Username == username {
			return u, true
		}
	}
	return UserConfig{}, false
}
