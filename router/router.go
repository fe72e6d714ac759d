// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/burner-lookup/cliparse"
	"github.com/danielhkuo/burner-lookup/handlers"
	"github.com/danielhkuo/burner-lookup/metrics"
	"github.com/danielhkuo/burner-lookup/middleware"
	"github.com/danielhkuo/burner-lookup/store"
)

// legacyPrefix keeps the paths the front-end used when the lookups were
// deployed as Netlify functions.
const legacyPrefix = "/.netlify/functions"

// NewRouter returns the API handler, wrapped in CORS.
func NewRouter(s store.RecordStore, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	burnerHandler := handlers.NewBurnerHandler(s, cfg)
	jobHandler := handlers.NewJobHandler(s, cfg)
	systemHandler := handlers.NewSystemHandler(s, cfg)

	// Health, debug and metrics
	mux.HandleFunc("GET /health", systemHandler.Health)
	mux.HandleFunc("GET /debug", middleware.WithLogging(systemHandler.Debug))
	mux.Handle("GET /metrics", metrics.Handler())

	// Lookups accept the parameter as a query string (GET) or JSON body (POST)
	lookups := map[string]http.HandlerFunc{
		"/search-burner":    burnerHandler.Search,
		"/search-job":       jobHandler.Search,
		"/search-job-basic": jobHandler.SearchBasic,
	}
	for path, h := range lookups {
		for _, prefix := range []string{"", legacyPrefix} {
			mux.HandleFunc("GET "+prefix+path, middleware.WithLogging(h))
			mux.HandleFunc("POST "+prefix+path, middleware.WithLogging(h))
		}
	}

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("burner-lookup API v1"))
	})

	return middleware.CORS(cfg.AllowedOrigins)(mux)
}
