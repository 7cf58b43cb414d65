package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"fieldbase/internal/imaging"
	"fieldbase/internal/listing"
	"fieldbase/internal/model"
	"fieldbase/internal/store"
)

// AssetsHandler handles asset CRUD and photo endpoints.
type AssetsHandler struct {
	DB *sql.DB
}

type assetRequest struct {
	SiteID       int64  `json:"site_id"`
	AssetType    string `json:"asset_type"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
}

// List handles GET /api/assets. Records come out of the store with raw site
// keys; the listing pipeline attaches site references, then filters and
// sorts per the query parameters.
func (h *AssetsHandler) List(w http.ResponseWriter, r *http.Request) {
	q, sort, order, err := listQuery(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	assets, err := store.ListAssets(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list assets")
		return
	}

	refs, err := store.ListSiteRefs(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list site refs")
		return
	}

	assets = listing.Enrich(assets, refs)
	assets = listing.Filter(assets, q)
	if sort != "" {
		assets = listing.Sort(assets, sort, order)
	}

	if assets == nil {
		assets = []model.Asset{}
	}
	jsonResponse(w, http.StatusOK, assets)
}

// Create handles POST /api/assets.
func (h *AssetsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.AssetType == "" || req.SiteID == 0 {
		jsonError(w, http.StatusBadRequest, "asset_type and site_id required")
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

	asset, err := store.CreateAsset(r.Context(), h.DB, req.SiteID, req.AssetType, req.Model, req.SerialNumber)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create asset")
		return
	}

	jsonResponse(w, http.StatusCreated, asset)
}

// Get handles GET /api/assets/{id}.
func (h *AssetsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	asset, err := store.GetAsset(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get asset")
		return
	}
	if asset == nil {
		jsonError(w, http.StatusNotFound, "asset not found")
		return
	}

	jsonResponse(w, http.StatusOK, asset)
}

// Update handles PUT /api/assets/{id}.
func (h *AssetsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	var req assetRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.AssetType == "" || req.SiteID == 0 {
		jsonError(w, http.StatusBadRequest, "asset_type and site_id required")
		return
	}

	if err := store.UpdateAsset(r.Context(), h.DB, id, req.SiteID, req.AssetType, req.Model, req.SerialNumber); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update asset")
		return
	}

	asset, err := store.GetAsset(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get asset")
		return
	}
	if asset == nil || asset.DeletedAt != nil {
		jsonError(w, http.StatusNotFound, "asset not found")
		return
	}
	jsonResponse(w, http.StatusOK, asset)
}

// Delete handles DELETE /api/assets/{id}.
func (h *AssetsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	if err := store.DeleteAsset(r.Context(), h.DB, id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete asset")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "asset deleted"})
}

// UploadPhoto handles PUT /api/assets/{id}/photo.
func (h *AssetsHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	asset, err := store.GetAsset(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get asset")
		return
	}
	if asset == nil || asset.DeletedAt != nil {
		jsonError(w, http.StatusNotFound, "asset not found")
		return
	}

	// Limit to 10 MB; field photos are large before downscaling.
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "photo file required")
		return
	}
	defer file.Close()

	photo, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetAssetPhoto(r.Context(), h.DB, id, photo.Data, photo.MIME); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save photo")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "photo uploaded"})
}

// GetPhoto handles GET /api/assets/{id}/photo. With ?size=thumb the stored
// photo is re-encoded at thumbnail size.
func (h *AssetsHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	data, mime, err := store.GetAssetPhoto(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get photo")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no photo")
		return
	}

	if r.URL.Query().Get("size") == "thumb" {
		thumb, err := imaging.Thumbnail(data)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "failed to build thumbnail")
			return
		}
		data, mime = thumb.Data, thumb.MIME
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
