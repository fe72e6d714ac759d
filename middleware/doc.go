// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /search-job", middleware.WithLogging(handler))

Each request gets an ID (X-Request-ID, generated if absent) that is echoed
in the response and attached to every log line. Logs request start (method,
path, remote) and completion (status, duration_ms), and records request
metrics by route pattern.

Handlers log with the request ID via:

	middleware.Logger(r.Context()).Warn("...")

# CORS Middleware

Enable cross-origin requests for the front-end site:

	handler := middleware.CORS(cfg.AllowedOrigins)(mux)

An empty allow-list sends "Access-Control-Allow-Origin: *". Methods
GET, POST, OPTIONS and headers Content-Type, Authorization are allowed.
OPTIONS preflight requests are answered directly.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Errors are written as {"error": "message"}.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
