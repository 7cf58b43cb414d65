package api

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"fieldbase/internal/listing"
	"fieldbase/internal/model"
	"fieldbase/internal/store"
)

// JobsHandler handles work order endpoints.
type JobsHandler struct {
	DB *sql.DB
}

type jobRequest struct {
	SiteID      int64      `json:"site_id"`
	AssetID     *int64     `json:"asset_id"`
	AssignedTo  *int64     `json:"assigned_to"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    int        `json:"priority"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

type jobStatusRequest struct {
	Status string `json:"status"`
}

// List handles GET /api/jobs. Supports the shared listing parameters plus
// status and assigned_to filters pushed down to the store.
func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q, sort, order, err := listQuery(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	status := r.URL.Query().Get("status")
	if status != "" && !model.ValidJobStatus(status) {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}

	var assignedTo int64
	if raw := r.URL.Query().Get("assigned_to"); raw != "" {
		if raw == "me" {
			assignedTo = GetClaims(r.Context()).UserID
		} else {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				jsonError(w, http.StatusBadRequest, "invalid assigned_to")
				return
			}
			assignedTo = id
		}
	}

	jobs, err := store.ListJobs(r.Context(), h.DB, status, assignedTo)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}

	refs, err := store.ListSiteRefs(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list site refs")
		return
	}

	jobs = listing.Enrich(jobs, refs)
	jobs = listing.Filter(jobs, q)
	if sort != "" {
		jobs = listing.Sort(jobs, sort, order)
	}

	if jobs == nil {
		jobs = []model.Job{}
	}
	jsonResponse(w, http.StatusOK, jobs)
}

// Create handles POST /api/jobs.
func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" || req.SiteID == 0 {
		jsonError(w, http.StatusBadRequest, "title and site_id required")
		return
	}

	site, err := store.GetSite(r.Context(), h.DB, req.SiteID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to check site")
		return
	}
	if site == nil || site.DeletedAt != nil {
		jsonError(w, http.StatusBadRequest, "site not found")
		return
	}

	job, err := store.CreateJob(r.Context(), h.DB, req.SiteID, req.AssetID, req.AssignedTo, req.Title, req.Description, req.Priority, req.ScheduledAt)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create job")
		return
	}

	jsonResponse(w, http.StatusCreated, job)
}

// Get handles GET /api/jobs/{id}.
func (h *JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	job, err := store.GetJob(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get job")
		return
	}
	if job == nil {
		jsonError(w, http.StatusNotFound, "job not found")
		return
	}

	jsonResponse(w, http.StatusOK, job)
}

// Update handles PUT /api/jobs/{id}.
func (h *JobsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" || req.SiteID == 0 {
		jsonError(w, http.StatusBadRequest, "title and site_id required")
		return
	}

	if err := store.UpdateJob(r.Context(), h.DB, id, req.SiteID, req.AssetID, req.AssignedTo, req.Title, req.Description, req.Priority, req.ScheduledAt); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update job")
		return
	}

	job, err := store.GetJob(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get job")
		return
	}
	if job == nil || job.DeletedAt != nil {
		jsonError(w, http.StatusNotFound, "job not found")
		return
	}
	jsonResponse(w, http.StatusOK, job)
}

// UpdateStatus handles PUT /api/jobs/{id}/status. Users without the record
// editing grant may still transition jobs assigned to them.
func (h *JobsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	var req jobStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !model.ValidJobStatus(req.Status) {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}

	job, err := store.GetJob(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get job")
		return
	}
	if job == nil || job.DeletedAt != nil {
		jsonError(w, http.StatusNotFound, "job not found")
		return
	}

	capability := GetCapability(r.Context())
	claims := GetClaims(r.Context())
	if !capability.EditRecords {
		assigned := job.AssignedTo != nil && *job.AssignedTo == claims.UserID
		if !capability.UpdateOwnJobs || !assigned {
			jsonError(w, http.StatusForbidden, "insufficient permissions")
			return
		}
	}

	if err := store.UpdateJobStatus(r.Context(), h.DB, id, req.Status); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update job status")
		return
	}

	job, _ = store.GetJob(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, job)
}

// Delete handles DELETE /api/jobs/{id}.
func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	if err := store.DeleteJob(r.Context(), h.DB, id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete job")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "job deleted"})
}
