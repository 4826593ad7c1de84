package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EvapeGT/NetCom/internal/server"
	"github.com/EvapeGT/NetCom/pkg/cache"
	"github.com/EvapeGT/NetCom/pkg/config"
	"github.com/EvapeGT/NetCom/pkg/pipeline"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server.

The server exposes the encoding pipeline over a JSON API plus direct image
endpoints. Defaults are read from the config file (netcom/config.toml in the
XDG config directory); flags override it.

With --redis, waveforms and artifacts are cached in Redis instead of on the
local filesystem, letting several instances share one cache.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") && cfg.Server.Addr != "" {
				addr = cfg.Server.Addr
			}
			if !cmd.Flags().Changed("redis") && cfg.Server.RedisURL != "" {
				redisURL = cfg.Server.RedisURL
			}
			if cfg.Cache.Disabled {
				noCache = true
			}
			return c.runServe(cmd.Context(), addr, redisURL, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "redis URL for a shared cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe builds the cache backend and runs the server until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, addr, redisURL string, noCache bool) error {
	backend, err := newServerCache(ctx, redisURL, noCache)
	if err != nil {
		return err
	}

	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "api")
	runner := pipeline.NewRunner(backend, keyer, c.Logger)
	defer runner.Close()

	srv := server.New(server.Config{
		Addr:   addr,
		Runner: runner,
		Logger: c.Logger,
	})

	printInfo("Serving API on %s", addr)
	printDetail("Endpoints: /api/v1/schemes /api/v1/waveform.svg /api/v1/diagram.svg")

	if err := srv.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	printSuccess("Server stopped")
	return nil
}

// newServerCache selects the cache backend for the server.
func newServerCache(ctx context.Context, redisURL string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisURL != "" {
		return cache.NewRedisCache(ctx, redisURL)
	}
	return newCache(false)
}
