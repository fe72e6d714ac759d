// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/burner-lookup/cliparse"
	"github.com/danielhkuo/burner-lookup/metrics"
	"github.com/danielhkuo/burner-lookup/middleware"
	"github.com/danielhkuo/burner-lookup/models"
	"github.com/danielhkuo/burner-lookup/store"
)

const entityBurner = "burner"

type BurnerHandler struct {
	store store.RecordStore
	cfg   cliparse.Config
}

func NewBurnerHandler(s store.RecordStore, cfg cliparse.Config) *BurnerHandler {
	return &BurnerHandler{store: s, cfg: cfg}
}

// Search handles GET|POST /search-burner
// Returns the burner with the given serialNumber and its components
// ordered by part code.
func (h *BurnerHandler) Search(w http.ResponseWriter, r *http.Request) {
	log := middleware.Logger(r.Context())

	params, err := lookupParams(r)
	if err != nil {
		writeError(w, entityBurner, err, err.Error())
		return
	}
	serial, err := requireParam(string(params.SerialNumber), "Serial number is required")
	if err != nil {
		writeError(w, entityBurner, err, err.Error())
		return
	}

	log.Info("searching for burner", "serial_number", serial)

	burner, err := h.store.FindBurnerBySerial(r.Context(), serial)
	if err != nil {
		if statusFor(err) == http.StatusNotFound {
			writeError(w, entityBurner, err, "No burner found with serial number: "+serial)
			return
		}
		log.Error("failed to fetch burner", "serial_number", serial, "error", err)
		writeError(w, entityBurner, err, "Error fetching burner data: "+err.Error())
		return
	}

	components, err := h.store.ListComponentsForBurner(r.Context(), burner.ID)
	if err != nil {
		log.Error("failed to fetch components", "burner_id", burner.ID, "error", err)
		writeError(w, entityBurner, err, "Error fetching component data: "+err.Error())
		return
	}

	metrics.RecordLookup(entityBurner, metrics.OutcomeFound)
	metrics.RecordRows(entityBurner, models.TypeComponent, len(components))

	middleware.JSONResponse(w, http.StatusOK, models.BurnerResponse{
		Burner:     burner,
		Components: components,
	})
}
