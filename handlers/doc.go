// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the lookup API.

# Handler Types

Each handler is a struct with a record store and config:

  - BurnerHandler: burner lookup by serial number
  - JobHandler: job lookup by job number, basic and with electrical items
  - SystemHandler: health and debug endpoints

Handlers are created via constructor functions that accept a
store.RecordStore and Config:

	jobHandler := handlers.NewJobHandler(store.NewSQLStore(conn, cfg.DatabaseType), cfg)

# Parameters

Lookup endpoints accept GET and POST. On POST the parameter is read from
the JSON body, otherwise from the query string:

	GET  /search-burner?serialNumber=SN-1001
	POST /search-job        {"jobNumber": "C13676"}

# Responses

	/search-burner     → {burner, components}
	/search-job-basic  → {job, sheets, sheetCount, totalComponents}
	/search-job        → {job, sheets, sheetCount, totalComponents, totalElectricalItems}

Sheets are built by package sheets. Failures are written as {"error": msg}:

  - 400: parameter missing or body not valid JSON
  - 404: no burner or job with that identifier
  - 500: database error, message passed through

A failed electrical item query does not fail /search-job; it is logged and
the job is returned with totalElectricalItems 0.
*/
package handlers
