// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/codr1/ThemeStudio/internal/config"
	"github.com/codr1/ThemeStudio/internal/palette"
	"github.com/codr1/ThemeStudio/internal/ratelimit"
	"github.com/codr1/ThemeStudio/internal/scheduler"
)

const limiterSweepInterval = 5 * time.Minute

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// resolveDefaults picks the palette the editor starts from: the configured
// preset, else the preset marked DEFAULT, else the built-in values.
func resolveDefaults(cfg *config.Config, presets []palette.Preset) (palette.ColorSet, error) {
	if name := cfg.Palette.DefaultPreset; name != "" {
		preset, ok := palette.FindPreset(presets, name)
		if !ok {
			return palette.ColorSet{}, fmt.Errorf("palette.default_preset %q not found", name)
		}
		return preset.Colors, nil
	}
	if preset, ok := palette.DefaultPreset(presets); ok {
		return preset.Colors, nil
	}
	return palette.Defaults(), nil
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = config.DefaultPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.App.Environment)

	presets, err := palette.LoadPresets()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load palette presets")
	}
	defaults, err := resolveDefaults(cfg, presets)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve default palette")
	}

	limiter := ratelimit.New(&ratelimit.Config{
		MaxPerWindow: cfg.RateLimit.MaxPerWindow,
		Window:       cfg.RateLimitWindow(),
	})

	sched, err := scheduler.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize scheduler")
	}
	if _, err := sched.AddInterval("ratelimit-sweep", limiterSweepInterval, func() {
		if removed := limiter.Sweep(); removed > 0 {
			log.Debug().Int("removed", removed).Msg("Swept expired rate limit entries")
		}
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to register rate limit sweep")
	}
	sched.Start()

	// Create server instance
	server := newServer(cfg, serverDeps{
		Defaults: defaults,
		Presets:  presets,
		Limiter:  limiter,
	})

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Run server
	g.Go(func() error {
		log.Info().
			Str("addr", server.Addr).
			Int("presets", len(presets)).
			Msg("Starting server")
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Wait for interrupt signal
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()

		log.Info().Msg("Shutting down server")
		if err := sched.Stop(); err != nil {
			log.Warn().Err(err).Msg("Scheduler shutdown failed")
		}
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
