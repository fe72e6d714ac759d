// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the burner lookup API server.

The server answers lookups from the front-end site: a burner by serial
number, or a job by job number with its bill of materials grouped by sheet.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 8888 -d "postgres://..."

For local development against sqlite, with the tables created on start:

	go run . -t sqlite -d lookup.db --bootstrap --log-format text

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string

Optional settings:

  - PORT (-p): Server port (default: 8888)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - ALLOWED_ORIGINS (--origins): CORS allow-list (default: any origin)
  - LOG_LEVEL, LOG_FORMAT: slog level and json/text output
  - CONFIG_FILE (-c): YAML file with the same settings

# Architecture

  - handlers: HTTP request handlers (burner, job, system)
  - sheets: per-sheet grouping of job components and electrical items
  - store: read-only record store over database/sql
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - metrics: Prometheus counters and histograms
  - models: Domain and response types
  - db: Connections and schema bootstrap
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
