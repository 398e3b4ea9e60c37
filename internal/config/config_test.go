package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	yaml := `
server:
  port: 9090
  session_secret: "s3cret"
  session_max_age: 48h
  dataset: ./dataset.yaml
  watch_dataset: true
database:
  path: /var/lib/pedidos/orders.db
users:
  - username: chanel
    password_hash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"
    brands: [CHANEL, CLARINS]
client:
  base_url: https://pedidos.example.com
  api_prefix: ""
  retry_max: 2
`
	if err := os.WriteFile(cfgPath, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.SessionMaxAge != 48*time.Hour {
		t.Errorf("Server.SessionMaxAge = %s, want 48h", cfg.Server.SessionMaxAge)
	}
	if !cfg.Server.WatchDataset {
		t.Error("Server.WatchDataset = false, want true")
	}
	if cfg.Database.Path != "/var/lib/pedidos/orders.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if len(cfg.Users) != 1 || cfg.Users[0].Username != "chanel" || len(cfg.Users[0].Brands) != 2 {
		t.Errorf("Users = %+v, want the single configured user", cfg.Users)
	}
	if cfg.Client.APIPrefix != "" {
		t.Errorf("Client.APIPrefix = %q, want empty override", cfg.Client.APIPrefix)
	}
	if cfg.Client.RetryMax != 2 {
		t.Errorf("Client.RetryMax = %d, want 2", cfg.Client.RetryMax)
	}

	// Defaults should still be applied for unspecified fields.
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want default", cfg.Server.Host)
	}
	if cfg.Client.Timeout != 10*time.Second {
		t.Errorf("Client.Timeout = %s, want default 10s", cfg.Client.Timeout)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want default info", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want default 8000", cfg.Server.Port)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("Load() on missing file should return error")
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("LoadOrDefault() error: %v", err)
	}
	if cfg.Client.APIPrefix != "/api" {
		t.Errorf("Client.APIPrefix = %q, want default /api", cfg.Client.APIPrefix)
	}
	if cfg.Database.Path != ":memory:" {
		t.Errorf("Database.Path = %q, want :memory:", cfg.Database.Path)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(cfgPath, []byte(":::not valid yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("Load() with invalid YAML should return error")
	}
}

func TestDefaultDemoUsers(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	u, ok := cfg.User("hermes")
	if !ok {
		t.Fatal("expected demo user hermes")
	}
	if u.Brands[0] != "HÉRMES" {
		t.Errorf("hermes brands = %v", u.Brands)
	}
	if _, ok := cfg.User("nobody"); ok {
		t.Error("unexpected user nobody")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too big", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"empty secret", func(c *Config) { c.Server.SessionSecret = "" }, "session_secret"},
		{"zero max age", func(c *Config) { c.Server.SessionMaxAge = 0 }, "session_max_age"},
		{"prefix without slash", func(c *Config) { c.Client.APIPrefix = "api" }, "api_prefix"},
		{"prefix trailing slash", func(c *Config) { c.Client.APIPrefix = "/api/" }, "api_prefix"},
		{"negative retries", func(c *Config) { c.Client.RetryMax = -1 }, "retry_max"},
		{"user without password", func(c *Config) { c.Users = []UserConfig{{Username: "x", Brands: []string{"B"}}} }, "no password"},
		{"user without brands", func(c *Config) { c.Users = []UserConfig{{Username: "x", Password: "x"}} }, "no brands"},
		{"duplicate user", func(c *Config) {
			c.Users = []UserConfig{{Username: "x", Password: "x", Brands: []string{"B"}}, {Username: "x", Password: "y", Brands: []string{"B"}}}
		}, "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}
