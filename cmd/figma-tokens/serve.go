package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/setup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the setup and sync endpoints over HTTP",
	Long: `Start an HTTP server for a local setup page:

  GET  /api/setup/figma   whether credentials are configured
  POST /api/setup/figma   validate and store {"figmaToken", "fileKey"}
  POST /api/tokens/sync   fetch tokens and theme with the stored credentials

Figma responses are cached for --cache-ttl. Browser requests from other
origins are rejected unless listed with --origins.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.String("addr", "localhost:8787", "Listen address")
	f.Duration("cache-ttl", 5*time.Minute, "How long Figma responses are cached")
	f.StringSlice("origins", nil, "Extra origins allowed to call the server (same origin only by default)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := buildServeConfig()
	log := newLogrus(os.Stderr,
		getStringWithFallback("log-format", "log-format", "text"),
		getBoolWithFallback("verbose", "verbose", false))

	factory := func(accessToken string) figma.API {
		return figma.NewClient(accessToken)
	}
	if apiURL := getStringWithFallback("api-url", "api-url", ""); apiURL != "" {
		factory = func(accessToken string) figma.API {
			return figma.NewClient(accessToken, figma.WithBaseURL(apiURL))
		}
	}

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: setup.NewHandler(
			setup.WithEnvFile(cfg.EnvFile),
			setup.WithClientFactory(factory),
			setup.WithCache(figma.NewResponseCache(cfg.CacheTTL)),
			setup.WithLogger(log),
			setup.WithAllowedOrigins(cfg.Origins...),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Addr).Info("Listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-cmd.Context().Done():
	}

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
