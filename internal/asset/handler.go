package asset

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/asset-inventory/internal/transport"
	"github.com/frahmantamala/asset-inventory/pkg/logger"
)

type ServiceAPI interface {
	CreateAsset(dto CreateAssetDTO) (*Asset, error)
	GetAssetByID(id int64) (*Asset, error)
	ListAssets(filter ListFilter) ([]*Asset, error)
	UpdateAsset(id int64, dto UpdateAssetDTO) (*Asset, error)
	DeleteAsset(assetID string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// ListAssets handles GET /assets with optional status/asset_type/location filters.
func (h *Handler) ListAssets(w http.ResponseWriter, r *http.Request) {
	filter := ListFilter{
		Status:    r.URL.Query().Get("status"),
		AssetType: r.URL.Query().Get("asset_type"),
		Location:  r.URL.Query().Get("location"),
	}

	assets, err := h.Service.ListAssets(filter)
	if err != nil {
		h.WriteDomainError(w, err, "failed to list assets")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": assets})
}

// GetAsset handles GET /assets/{id}.
func (h *Handler) GetAsset(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	a, err := h.Service.GetAssetByID(id)
	if err != nil {
		h.WriteDomainError(w, err, "failed to get asset")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": a})
}

// CreateAsset handles POST /assets. The response carries the generated
// identifier alongside the full record.
func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var dto CreateAssetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Service.CreateAsset(dto)
	if err != nil {
		h.WriteDomainError(w, err, "failed to create asset")
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"data":     a,
		"asset_id": a.AssetID,
	})
}

// UpdateAsset handles PUT /assets/{id}; asset_id in the body is ignored.
func (h *Handler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	var dto UpdateAssetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Service.UpdateAsset(id, dto)
	if err != nil {
		h.WriteDomainError(w, err, "failed to update asset")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": a})
}

// DeleteAsset handles DELETE /assets/{id}, addressing the generated identifier.
func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "id")
	if assetID == "" {
		h.WriteError(w, http.StatusBadRequest, "asset id is required")
		return
	}

	if err := h.Service.DeleteAsset(assetID); err != nil {
		h.WriteDomainError(w, err, "failed to delete asset")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"message": "Asset deleted successfully"})
}
