package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"fieldbase/internal/model"
	"fieldbase/internal/stock"
	"fieldbase/internal/store"
)

// PartsHandler handles parts inventory endpoints.
type PartsHandler struct {
	DB *sql.DB
}

type partRequest struct {
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	Unit         string `json:"unit"`
	Quantity     int    `json:"quantity"`
	ReorderLevel int    `json:"reorder_level"`
	Serialized   bool   `json:"serialized"`
}

type adjustStockRequest struct {
	Delta     int    `json:"delta"`
	Direction string `json:"direction"`
	Notes     string `json:"notes"`
}

// partView is a part with its stock status derived from the ledger rules.
// The status is never stored; it always reflects current quantity and
// reorder level.
type partView struct {
	model.Part
	Status stock.Status `json:"status"`
}

func viewOf(p model.Part) partView {
	return partView{Part: p, Status: stock.Classify(p.Quantity, p.ReorderLevel)}
}

// List handles GET /api/parts.
func (h *PartsHandler) List(w http.ResponseWriter, r *http.Request) {
	parts, err := store.ListParts(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list parts")
		return
	}

	views := make([]partView, 0, len(parts))
	for _, p := range parts {
		views = append(views, viewOf(p))
	}
	jsonResponse(w, http.StatusOK, views)
}

// Alerts handles GET /api/parts/alerts: parts that are low or out of stock.
func (h *PartsHandler) Alerts(w http.ResponseWriter, r *http.Request) {
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
	jsonResponse(w, http.StatusOK, alerts)
}

// Create handles POST /api/parts.
func (h *PartsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req partRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	part, err := store.CreatePart(r.Context(), h.DB, req.Name, req.SKU, req.Unit, req.Quantity, req.ReorderLevel, req.Serialized)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create part")
		return
	}

	jsonResponse(w, http.StatusCreated, viewOf(*part))
}

// Get handles GET /api/parts/{id}.
func (h *PartsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid part id")
		return
	}

	part, err := store.GetPart(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get part")
		return
	}
	if part == nil {
		jsonError(w, http.StatusNotFound, "part not found")
		return
	}

	jsonResponse(w, http.StatusOK, viewOf(*part))
}

// Update handles PUT /api/parts/{id}. Quantity changes are not accepted
// here; they go through Adjust so every change leaves a movement record.
func (h *PartsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid part id")
		return
	}

	var req partRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	if err := store.UpdatePart(r.Context(), h.DB, id, req.Name, req.SKU, req.Unit, req.ReorderLevel, req.Serialized); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update part")
		return
	}

	part, err := store.GetPart(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get part")
		return
	}
	if part == nil || part.DeletedAt != nil {
		jsonError(w, http.StatusNotFound, "part not found")
		return
	}
	jsonResponse(w, http.StatusOK, viewOf(*part))
}

// Delete handles DELETE /api/parts/{id}.
func (h *PartsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid part id")
		return
	}

	if err := store.DeletePart(r.Context(), h.DB, id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete part")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "part deleted"})
}

// Adjust handles POST /api/parts/{id}/adjust.
func (h *PartsHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid part id")
		return
	}

	var req adjustStockRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	direction, ok := stock.ParseDirection(req.Direction)
	if !ok {
		jsonError(w, http.StatusBadRequest, "direction must be 'add' or 'subtract'")
		return
	}

	claims := GetClaims(r.Context())
	part, err := store.AdjustPartStock(r.Context(), h.DB, id, req.Delta, direction, req.Notes, &claims.UserID)
	if err != nil {
		var invalid *stock.InvalidAdjustmentError
		switch {
		case errors.As(err, &invalid):
			jsonError(w, http.StatusBadRequest, invalid.Error())
		case errors.Is(err, store.ErrPartNotFound):
			jsonError(w, http.StatusNotFound, "part not found")
		default:
			jsonError(w, http.StatusInternalServerError, "failed to adjust stock")
		}
		return
	}

	slog.Info("stock adjusted", "part", part.Name, "direction", direction, "delta", req.Delta, "quantity", part.Quantity, "unit", part.DisplayUnit(), "user", claims.Username)
	jsonResponse(w, http.StatusOK, viewOf(*part))
}

// Movements handles GET /api/parts/{id}/movements.
func (h *PartsHandler) Movements(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid part id")
		return
	}

	movements, err := store.ListPartMovements(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list movements")
		return
	}
	if movements == nil {
		movements = []model.StockMovement{}
	}
	jsonResponse(w, http.StatusOK, movements)
}
