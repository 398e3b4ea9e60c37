package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/sainthonore/pedidos/internal/auth"
	"github.com/sainthonore/pedidos/internal/config"
	"github.com/sainthonore/pedidos/internal/logging"
	"github.com/sainthonore/pedidos/internal/server"
	"github.com/sainthonore/pedidos/internal/store"
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
		Use:           "pedidos-server",
		Short:         "Serve the order calendar backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "Path to config file (default: built-in demo config)")
	flags.Int("port", 0, "Override server port")
	flags.String("dataset", "", "Path to a YAML order dataset (default: demo seed)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	v.BindPFlag("config", flags.Lookup("config"))
	v.BindPFlag("port", flags.Lookup("port"))
	v.BindPFlag("dataset", flags.Lookup("dataset"))
	v.BindPFlag("log_level", flags.Lookup("log-level"))
	v.BindEnv("session_secret")

	cmd.AddCommand(newHashPasswordCmd())
	return cmd
}

// loadConfig reads the config file and lays flags and PEDIDOS_* variables
// over it.
func loadConfig(v *viper.Viper) (*config.Config, error) {
	cfg, err := config.Load(v.GetString("config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if v.IsSet("port") && v.GetInt("port") > 0 {
		cfg.Server.Port = v.GetInt("port")
	}
	if s := v.GetString("dataset"); s != "" {
		cfg.Server.Dataset = s
	}
	if s := v.GetString("log_level"); s != "" {
		cfg.Log.Level = s
	}
	if s := v.GetString("session_secret"); s != "" {
		cfg.Server.SessionSecret = s
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func serve(cfg *config.Config) error {
	log, err := logging.New(cfg.Log.Level, os.Stderr)
	if err != nil {
		return err
	}
	if cfg.Server.SessionSecret == config.DefaultSessionSecret {
		log.Warn("using the built-in session secret; set PEDIDOS_SESSION_SECRET")
	}

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n, err := db.LoadDataset(ctx, cfg.Server.Dataset)
	if err != nil {
		return err
	}
	log.WithField("orders", n).Info("dataset loaded")

	accounts := auth.NewAccounts(cfg.Users, log)
	signer, err := auth.NewSigner(cfg.Server.SessionSecret, cfg.Server.SessionMaxAge)
	if err != nil {
		return err
	}
	srv := server.NewServer(accounts, signer, db, log)
	notices := srv.Notices()
	defer notices.Close()

	if cfg.Server.WatchDataset && cfg.Server.Dataset != "" {
		go func() {
			err := db.Watch(ctx, cfg.Server.Dataset, log, func(n int, err error) {
				if err == nil {
					notices.DatasetReloaded(n)
				}
			})
			if err != nil && ctx.Err() == nil {
				log.WithError(err).Error("dataset watch stopped")
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("shutting down")
		cancel()
	}()

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	return server.ListenAndServe(ctx, addr, srv.Handler(), log)
}
