package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/api"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/assessment"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/config"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/metrics"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/pkg/logger"
)

var serveFlags struct {
	host     string
	port     int
	logLevel string
	dryRun   bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API with the given configuration.

Examples:
  # Start with the defaults
  soraserver serve

  # Start with a configuration file
  soraserver serve --config /etc/sora/config.toml

  # Override the port
  soraserver serve --port 9090

  # Validate the configuration without starting
  soraserver serve --dry-run`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveFlags.host, "host", "", "override listen host")
	serveCmd.Flags().IntVarP(&serveFlags.port, "port", "p", 0, "override listen port")
	serveCmd.Flags().StringVar(&serveFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&serveFlags.dryRun, "dry-run", false, "validate config without starting the server")
}

// loadServeConfig loads the file named by --config and applies flag overrides
func loadServeConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if serveFlags.host != "" {
		cfg.Server.Host = serveFlags.host
	}
	if serveFlags.port != 0 {
		cfg.Server.Port = serveFlags.port
	}
	if serveFlags.logLevel != "" {
		cfg.Logging.Level = serveFlags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newHandler wires the service, the metrics collector and the router
func newHandler(cfg *config.Config, log *logger.Logger) (http.Handler, error) {
	var collector *metrics.Collector
	opts := []assessment.Option{assessment.WithDigest(cfg.Engine.IncludeDigest)}
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Metrics.Namespace)
		opts = append(opts, assessment.WithRecorder(collector))
	}
	svc := assessment.NewService(log, opts...)

	router, err := api.NewRouter(svc, cfg, collector, log)
	if err != nil {
		return nil, err
	}

	handler := router.Routes()
	if cfg.Server.EnableH2C {
		handler = h2c.NewHandler(handler, &http2.Server{})
	}
	return handler, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadServeConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	log = log.Named("soraserver")

	handler, err := newHandler(cfg, log)
	if err != nil {
		return err
	}

	if serveFlags.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "configuration valid:", cfg)
		return nil
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout(),
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
		WriteTimeout:      cfg.Server.WriteTimeout(),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting HTTP server",
			logger.String("address", srv.Addr),
			logger.Bool("h2c", cfg.Server.EnableH2C),
			logger.Bool("metrics", cfg.Metrics.Enabled),
			logger.String("default_version", cfg.Engine.DefaultVersion),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", logger.Duration("timeout", cfg.Server.ShutdownTimeout()))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", logger.Error(err))
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
