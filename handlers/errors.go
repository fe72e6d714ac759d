// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/burner-lookup/metrics"
	"github.com/danielhkuo/burner-lookup/middleware"
	"github.com/danielhkuo/burner-lookup/store"
)

// statusFor maps an error to its HTTP status
func statusFor(err error) int {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func outcomeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return metrics.OutcomeInvalid
	case http.StatusNotFound:
		return metrics.OutcomeNotFound
	}
	return metrics.OutcomeError
}

// writeError writes err as {"error": message} with its mapped status and
// records the failed lookup.
func writeError(w http.ResponseWriter, entity string, err error, message string) {
	status := statusFor(err)
	metrics.RecordLookup(entity, outcomeFor(status))
	middleware.ErrorResponse(w, status, message)
}
