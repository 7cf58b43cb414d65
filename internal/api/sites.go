package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"fieldbase/internal/model"
	"fieldbase/internal/store"
)

// SitesHandler handles site CRUD endpoints.
type SitesHandler struct {
	DB *sql.DB
}

type siteRequest struct {
	ClientID int64  `json:"client_id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
}

// List handles GET /api/sites.
func (h *SitesHandler) List(w http.ResponseWriter, r *http.Request) {
	var clientID int64
	if raw := r.URL.Query().Get("client_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid client_id")
			return
		}
		clientID = id
	}

	sites, err := store.ListSites(r.Context(), h.DB, clientID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list sites")
		return
	}
	if sites == nil {
		sites = []model.Site{}
	}
	jsonResponse(w, http.StatusOK, sites)
}

// Create handles POST /api/sites.
func (h *SitesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req siteRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.ClientID == 0 {
		jsonError(w, http.StatusBadRequest, "name and client_id required")
		return
	}

	client, err := store.GetClient(r.Context(), h.DB, req.ClientID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to check client")
		return
	}
	if client == nil || client.DeletedAt != nil {
		jsonError(w, http.StatusBadRequest, "client not found")
		return
	}

	site, err := store.CreateSite(r.Context(), h.DB, req.ClientID, req.Name, req.Address)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create site")
		return
	}

	jsonResponse(w, http.StatusCreated, site)
}

// Get handles GET /api/sites/{id}.
func (h *SitesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid site id")
		return
	}

	site, err := store.GetSite(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get site")
		return
	}
	if site == nil {
		jsonError(w, http.StatusNotFound, "site not found")
		return
	}

	jsonResponse(w, http.StatusOK, site)
}

// Update handles PUT /api/sites/{id}.
func (h *SitesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid site id")
		return
	}

	var req siteRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.ClientID == 0 {
		jsonError(w, http.StatusBadRequest, "name and client_id required")
		return
	}

	if err := store.UpdateSite(r.Context(), h.DB, id, req.ClientID, req.Name, req.Address); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update site")
		return
	}

	site, err := store.GetSite(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get site")
		return
	}
	if site == nil || site.DeletedAt != nil {
		jsonError(w, http.StatusNotFound, "site not found")
		return
	}
	jsonResponse(w, http.StatusOK, site)
}

// Delete handles DELETE /api/sites/{id}.
func (h *SitesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid site id")
		return
	}

	if err := store.DeleteSite(r.Context(), h.DB, id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete site")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "site deleted"})
}
