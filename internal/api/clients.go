package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"fieldbase/internal/model"
	"fieldbase/internal/store"
)

// ClientsHandler handles client CRUD endpoints.
type ClientsHandler struct {
	DB *sql.DB
}

type clientRequest struct {
	Name        string `json:"name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// List handles GET /api/clients.
func (h *ClientsHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := store.ListClients(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list clients")
		return
	}
	if clients == nil {
		clients = []model.Client{}
	}
	jsonResponse(w, http.StatusOK, clients)
}

// Create handles POST /api/clients.
func (h *ClientsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	client, err := store.CreateClient(r.Context(), h.DB, req.Name, req.ContactName, req.Email, req.Phone)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create client")
		return
	}

	jsonResponse(w, http.StatusCreated, client)
}

// Get handles GET /api/clients/{id}.
func (h *ClientsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	client, err := store.GetClient(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get client")
		return
	}
	if client == nil {
		jsonError(w, http.StatusNotFound, "client not found")
		return
	}

	// Include the client's sites for the detail view.
	sites, err := store.ListSites(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list client sites")
		return
	}
	if sites == nil {
		sites = []model.Site{}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"client": client,
		"sites":  sites,
	})
}

// Sites handles GET /api/clients/{id}/sites.
func (h *ClientsHandler) Sites(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	client, err := store.GetClient(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get client")
		return
	}
	if client == nil {
		jsonError(w, http.StatusNotFound, "client not found")
		return
	}

	sites, err := store.ListSites(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list client sites")
		return
	}
	if sites == nil {
		sites = []model.Site{}
	}
	jsonResponse(w, http.StatusOK, sites)
}

// Update handles PUT /api/clients/{id}.
func (h *ClientsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	var req clientRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	if err := store.UpdateClient(r.Context(), h.DB, id, req.Name, req.ContactName, req.Email, req.Phone); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update client")
		return
	}

	client, err := store.GetClient(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get client")
		return
	}
	if client == nil || client.DeletedAt != nil {
		jsonError(w, http.StatusNotFound, "client not found")
		return
	}
	jsonResponse(w, http.StatusOK, client)
}

// Delete handles DELETE /api/clients/{id}.
func (h *ClientsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	if err := store.DeleteClient(r.Context(), h.DB, id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete client")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "client deleted"})
}
