// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

Records as stored in the database, serialized with their column names:

  - Burner, Component: a burner unit and its parts list
  - Job: a customer order
  - JobComponent, JobElectricalItem: per-sheet rows belonging to a job
  - ElectricalRow: an electrical item in the component shape ("type": "electrical")

# Response Types

  - BurnerResponse: burner, components
  - JobResponse: job, sheets, sheetCount, totalComponents
  - JobDetailResponse: JobResponse fields plus totalElectricalItems
  - DebugResponse: configuration presence report
  - ErrorResponse: error
*/
package models
