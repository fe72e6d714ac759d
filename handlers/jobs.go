// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/burner-lookup/cliparse"
	"github.com/danielhkuo/burner-lookup/metrics"
	"github.com/danielhkuo/burner-lookup/middleware"
	"github.com/danielhkuo/burner-lookup/models"
	"github.com/danielhkuo/burner-lookup/sheets"
	"github.com/danielhkuo/burner-lookup/store"
)

const entityJob = "job"

const jobNumberRequired = "Job number is required (e.g., C13676)"

type JobHandler struct {
	store store.RecordStore
	cfg   cliparse.Config
}

func NewJobHandler(s store.RecordStore, cfg cliparse.Config) *JobHandler {
	return &JobHandler{store: s, cfg: cfg}
}

// Search handles GET|POST /search-job
// Returns the job with its components and electrical items merged per sheet.
// Electrical items are optional: if they cannot be fetched the job is still
// returned with components only.
func (h *JobHandler) Search(w http.ResponseWriter, r *http.Request) {
	log := middleware.Logger(r.Context())

	job, components, ok := h.loadJob(w, r, log)
	if !ok {
		return
	}

	electrical, err := h.store.ListJobElectricalItems(r.Context(), job.JobNumber)
	if err != nil {
		log.Warn("failed to fetch electrical items, continuing without them",
			"job_number", job.JobNumber, "error", err)
		metrics.RecordDegraded(entityJob, "electrical_unavailable")
		electrical = nil
	}

	grouped := sheets.Group(components, electrical)
	log.Info("found job", "job_number", job.JobNumber, "sheets", grouped.Len())

	metrics.RecordLookup(entityJob, metrics.OutcomeFound)
	metrics.RecordRows(entityJob, models.TypeComponent, len(components))
	metrics.RecordRows(entityJob, models.TypeElectrical, len(electrical))

	middleware.JSONResponse(w, http.StatusOK, models.JobDetailResponse{
		Job:                  job,
		Sheets:               grouped,
		SheetCount:           grouped.Len(),
		TotalComponents:      len(components),
		TotalElectricalItems: len(electrical),
	})
}

// SearchBasic handles GET|POST /search-job-basic
// Returns the job with its components grouped by sheet.
func (h *JobHandler) SearchBasic(w http.ResponseWriter, r *http.Request) {
	log := middleware.Logger(r.Context())

	job, components, ok := h.loadJob(w, r, log)
	if !ok {
		return
	}

	grouped := sheets.GroupComponents(components)
	log.Info("found job", "job_number", job.JobNumber, "sheets", grouped.Len())

	metrics.RecordLookup(entityJob, metrics.OutcomeFound)
	metrics.RecordRows(entityJob, models.TypeComponent, len(components))

	middleware.JSONResponse(w, http.StatusOK, models.JobResponse{
		Job:             job,
		Sheets:          grouped,
		SheetCount:      grouped.Len(),
		TotalComponents: len(components),
	})
}

// loadJob validates the job number and fetches the job and its components.
// On failure it writes the error response and returns ok=false.
func (h *JobHandler) loadJob(w http.ResponseWriter, r *http.Request, log *slog.Logger) (models.Job, []models.JobComponent, bool) {
	params, err := lookupParams(r)
	if err != nil {
		writeError(w, entityJob, err, err.Error())
		return models.Job{}, nil, false
	}
	jobNumber, err := requireParam(string(params.JobNumber), jobNumberRequired)
	if err != nil {
		writeError(w, entityJob, err, err.Error())
		return models.Job{}, nil, false
	}

	log.Info("searching for job", "job_number", jobNumber)

	job, err := h.store.FindJobByNumber(r.Context(), jobNumber)
	if err != nil {
		if statusFor(err) == http.StatusNotFound {
			writeError(w, entityJob, err, "No job found with number: "+jobNumber)
			return models.Job{}, nil, false
		}
		log.Error("failed to fetch job", "job_number", jobNumber, "error", err)
		writeError(w, entityJob, err, "Error fetching job data: "+err.Error())
		return models.Job{}, nil, false
	}

	components, err := h.store.ListJobComponents(r.Context(), job.JobNumber)
	if err != nil {
		log.Error("failed to fetch job components", "job_number", jobNumber, "error", err)
		writeError(w, entityJob, err, "Error fetching component data: "+err.Error())
		return models.Job{}, nil, false
	}

	return job, components, true
}
