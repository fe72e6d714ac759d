// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"runtime"

	"github.com/danielhkuo/burner-lookup/cliparse"
	"github.com/danielhkuo/burner-lookup/middleware"
	"github.com/danielhkuo/burner-lookup/models"
	"github.com/danielhkuo/burner-lookup/store"
)

// Version is set at build time with -ldflags "-X .../handlers.Version=..."
var Version = "dev"

type SystemHandler struct {
	store store.RecordStore
	cfg   cliparse.Config
}

func NewSystemHandler(s store.RecordStore, cfg cliparse.Config) *SystemHandler {
	return &SystemHandler{store: s, cfg: cfg}
}

// Health handles GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		middleware.Logger(r.Context()).Error("health check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("database unavailable"))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// Debug handles GET /debug
// Reports which settings are present without revealing their values.
func (h *SystemHandler) Debug(w http.ResponseWriter, r *http.Request) {
	dbURL := "Not set"
	if h.cfg.DatabaseURL != "" {
		dbURL = "Set (value hidden)"
	}

	middleware.JSONResponse(w, http.StatusOK, models.DebugResponse{
		Message: "Debug function working correctly",
		Environment: models.DebugEnvironment{
			DatabaseURL:  dbURL,
			DatabaseType: h.cfg.DatabaseType,
			GoVersion:    runtime.Version(),
			Version:      Version,
		},
	})
}
