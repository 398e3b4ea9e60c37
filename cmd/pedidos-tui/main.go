package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sainthonore/pedidos/internal/app"
	"github.com/sainthonore/pedidos/internal/config"
	"github.com/sainthonore/pedidos/internal/gateway"
	"github.com/sainthonore/pedidos/internal/logging"
	"github.com/sainthonore/pedidos/internal/views/debug"

	tea "github.com/charmbracelet/bubbletea"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("PEDIDOS")
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "pedidos-tui",
		Short:         "Browse order dates by provider and country",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			return run(cfg, v.GetString("password"))
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "Config file (default is $HOME/.pedidos.yaml)")
	flags.String("url", "", "Backend base URL")
	flags.String("api-prefix", "/api", "Path prefix of the JSON endpoints; empty for none")
	flags.String("user", "", "Username to prefill")
	flags.String("log-file", "", "Log file path")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	v.BindPFlag("config", flags.Lookup("config"))
	v.BindPFlag("url", flags.Lookup("url"))
	v.BindPFlag("api_prefix", flags.Lookup("api-prefix"))
	v.BindPFlag("user", flags.Lookup("user"))
	v.BindPFlag("log_file", flags.Lookup("log-file"))
	v.BindPFlag("log_level", flags.Lookup("log-level"))
	v.BindEnv("password")
	return cmd
}

func defaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pedidos.yaml"), nil
}

// loadConfig reads the config file, if any, and lays flags and PEDIDOS_*
// variables over its client section.
func loadConfig(v *viper.Viper, explicit bool) (*config.Config, error) {
	path := v.GetString("config")
	var (
		cfg *config.Config
		err error
	)
	if explicit {
		cfg, err = config.Load(path)
	} else {
		if path, err = defaultConfigPath(); err != nil {
			return nil, err
		}
		cfg, err = config.LoadOrDefault(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if s := v.GetString("url"); s != "" {
		cfg.Client.BaseURL = s
	}
	if v.IsSet("api_prefix") {
		cfg.Client.APIPrefix = v.GetString("api_prefix")
	}
	if s := v.GetString("user"); s != "" {
		cfg.Client.Username = s
	}
	if s := v.GetString("log_file"); s != "" {
		cfg.Client.LogFile = s
	}
	if s := v.GetString("log_level"); s != "" {
		cfg.Log.Level = s
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run(cfg *config.Config, password string) error {
	log, closer, err := logging.OpenFile(cfg.Log.Level, cfg.Client.LogFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	activity := debug.NewLog(log.GetLevel())
	log.AddHook(activity)

	client, err := gateway.NewHTTPClient(gateway.Options{
		BaseURL:   cfg.Client.BaseURL,
		APIPrefix: cfg.Client.APIPrefix,
		Timeout:   cfg.Client.Timeout,
		RetryMax:  cfg.Client.RetryMax,
		Logger:    log,
	})
	if err != nil {
		return err
	}
	log.WithField("url", cfg.Client.BaseURL).Info("starting")

	m := app.New(app.Options{
		Client:    client,
		Notices:   client.Notifier(),
		Logger:    log,
		Log:       activity,
		Username:  cfg.Client.Username,
		Password:  password,
		ExportDir: cfg.Client.ExportDir,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
