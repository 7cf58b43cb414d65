package api

import (
	"database/sql"
	"net/http"

	"fieldbase/internal/model"
	"fieldbase/internal/stock"
	"fieldbase/internal/store"
)

// DashboardHandler serves the summary endpoint backing the home screen.
type DashboardHandler struct {
	DB *sql.DB
}

// Get handles GET /api/dashboard: record counts, jobs currently open, and
// parts needing reorder.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	counts, err := store.GetDashboardCounts(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get counts")
		return
	}

	openJobs := []model.Job{}
	for _, status := range []string{model.JobStatusScheduled, model.JobStatusInProgress} {
		jobs, err := store.ListJobs(r.Context(), h.DB, status, 0)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "failed to list jobs")
			return
		}
		openJobs = append(openJobs, jobs...)
	}

	parts, err := store.ListParts(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list parts")
		return
	}
	alerts := []partView{}
	for _, p := range parts {
		if v := viewOf(p); v.Status != stock.InStock {
			alerts = append(alerts, v)
		}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"counts":       counts,
		"open_jobs":    openJobs,
		"stock_alerts": alerts,
	})
}
