// cmd/server/server.go
package main

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/ThemeStudio/assets"
	"github.com/codr1/ThemeStudio/internal/api"
	"github.com/codr1/ThemeStudio/internal/api/apiutil"
	"github.com/codr1/ThemeStudio/internal/api/themes"
	"github.com/codr1/ThemeStudio/internal/config"
	"github.com/codr1/ThemeStudio/internal/palette"
	"github.com/codr1/ThemeStudio/internal/ratelimit"
)

type serverDeps struct {
	Defaults palette.ColorSet
	Presets  []palette.Preset
	Limiter  *ratelimit.Limiter
}

func newServer(cfg *config.Config, deps serverDeps) *http.Server {
	router := http.NewServeMux()

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
	)

	// Register routes
	registerRoutes(router, cfg, deps)

	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux, cfg *config.Config, deps serverDeps) {
	themeHandler := themes.NewHandler(themes.Options{
		AppName:        cfg.App.Name,
		Defaults:       deps.Defaults,
		Presets:        deps.Presets,
		MaxUploadBytes: cfg.Upload.MaxBytes,
	})
	limitImport := api.WithRateLimit(deps.Limiter, "import", cfg.RateLimit.TrustProxy)
	limitDownload := api.WithRateLimit(deps.Limiter, "download", cfg.RateLimit.TrustProxy)

	// Editor page
	mux.HandleFunc("GET /{$}", themeHandler.HandleIndex)

	// Theme routes
	mux.Handle("POST /import", limitImport(http.HandlerFunc(themeHandler.HandleImport)))
	mux.Handle("POST /download", limitDownload(http.HandlerFunc(themeHandler.HandleDownload)))
	mux.HandleFunc("GET /randomize", themeHandler.HandleRandomize)
	mux.HandleFunc("GET /presets", themeHandler.HandlePresets)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		apiutil.WriteText(w, http.StatusOK, "OK")
	})

	// Static files are embedded in the binary
	static, err := fs.Sub(assets.StaticFS, "static")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open embedded static files")
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
}
