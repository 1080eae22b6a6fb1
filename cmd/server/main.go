package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/diewo77/go-duerp/internal/apiclient"
	"github.com/diewo77/go-duerp/internal/config"
	"github.com/diewo77/go-duerp/internal/logging"
	"github.com/diewo77/go-duerp/internal/services"
	"github.com/diewo77/go-duerp/internal/theme"
	"github.com/diewo77/go-duerp/view"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "go-duerp",
		Short:        "Web frontend for the DUERP risk assessment API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
	cmd.AddCommand(serveCmd(), exportCmd(), checkTemplatesCmd())
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func exportCmd() *cobra.Command {
	var format, out string
	c := &cobra.Command{
		Use:   "export <id>",
		Short: "Download a generated DUERP file through the API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid document id %q", args[0])
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.App.LogLevel, cfg.App.LogFormat)
			client := apiclient.New(clientConfig(cfg), logger)
			docs := services.NewDocumentService(client, client, logger)

			dl, err := docs.Download(cmd.Context(), id, format)
			if err != nil {
				return err
			}
			if out == "" {
				out = dl.Filename
			}
			if err := os.WriteFile(out, dl.Data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes, %s)\n", out, len(dl.Data), dl.ContentType)
			return nil
		},
	}
	c.Flags().StringVarP(&format, "format", "f", apiclient.FormatPDF, "Output format: pdf|docx")
	c.Flags().StringVarP(&out, "out", "o", "", "Output file (defaults to DUERP_<company>_<version>.<format>)")
	return c
}

func checkTemplatesCmd() *cobra.Command {
	var dir string
	c := &cobra.Command{
		Use:   "check-templates",
		Short: "Parse every page template with the partials and report errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []view.Option
			if dir != "" {
				opts = append(opts, view.WithTemplates(os.DirFS(dir)), view.WithoutCache())
			}
			v := view.New(theme.Default(), opts...)
			pages, err := v.Pages()
			if err != nil {
				return err
			}
			if err := v.Check(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d templates ok\n", len(pages))
			return nil
		},
	}
	c.Flags().StringVar(&dir, "dir", "", "Template directory to check instead of the embedded one")
	return c
}

func clientConfig(cfg *config.Config) apiclient.Config {
	c := apiclient.DefaultConfig()
	c.BaseURL = cfg.API.BaseURL
	c.Timeout = cfg.API.Timeout
	return c
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func serve(ctx context.Context) error {
	// Load configuration from .env files and environment
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.App.LogLevel, cfg.App.LogFormat)

	var (
		reg  *prometheus.Registry
		opts []apiclient.Option
	)
	if cfg.App.Metrics {
		reg = newRegistry()
		opts = append(opts, apiclient.WithMetrics(apiclient.NewMetrics(reg)))
	}
	client := apiclient.New(clientConfig(cfg), logger, opts...)

	// Create server with config timeouts
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewApp(cfg, logger, client, reg),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithFields(logrus.Fields{
			"addr": srv.Addr,
			"api":  cfg.API.BaseURL,
			"dev":  cfg.App.Dev,
		}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
		logger.Info("shutdown signal received")
	case <-ctx.Done():
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("error during shutdown")
		return err
	}
	logger.Info("server stopped gracefully")
	return nil
}
