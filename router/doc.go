// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the lookup API.

# Route Registration

NewRouter creates a configured handler with all endpoints, wrapped in CORS:

	handler := router.NewRouter(store.NewSQLStore(conn, cfg.DatabaseType), cfg)

# Endpoints

Lookups (GET with query string or POST with JSON body):

	/search-burner     - Burner and its components (serialNumber)
	/search-job        - Job with components and electrical items per sheet (jobNumber)
	/search-job-basic  - Job with components per sheet (jobNumber)

Each lookup is also served under /.netlify/functions/ for existing front-ends.

Operations:

	GET /health  - Database ping
	GET /debug   - Configuration presence report
	GET /metrics - Prometheus metrics
	GET /        - Banner

OPTIONS requests on any path are answered by the CORS middleware.
*/
package router
