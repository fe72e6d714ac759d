// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/danielhkuo/burner-lookup/middleware"
	"github.com/danielhkuo/burner-lookup/models"
)

// ValidationError reports a missing or malformed request parameter.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// lookupParams reads the lookup parameters from the JSON body on POST and
// from the query string otherwise. An empty POST body counts as {}.
func lookupParams(r *http.Request) (models.LookupRequest, error) {
	var req models.LookupRequest
	if r.Method != http.MethodPost {
		q := r.URL.Query()
		req.SerialNumber = models.LookupParam(q.Get("serialNumber"))
		req.JobNumber = models.LookupParam(q.Get("jobNumber"))
		return req, nil
	}

	if r.Body == nil {
		return req, nil
	}
	err := middleware.ParseJSONBody(r, &req)
	if errors.Is(err, io.EOF) {
		return models.LookupRequest{}, nil
	}
	if err != nil {
		return models.LookupRequest{}, &ValidationError{Message: "Invalid JSON body"}
	}
	return req, nil
}

// requireParam trims value and fails with message when it is empty.
func requireParam(value, message string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &ValidationError{Message: message}
	}
	return value, nil
}
