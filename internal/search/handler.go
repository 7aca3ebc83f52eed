package search

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/asset-inventory/internal/asset"
	"github.com/frahmantamala/asset-inventory/internal/transport"
	"github.com/frahmantamala/asset-inventory/pkg/logger"
)

type ServiceAPI interface {
	Search(field, value string) ([]*asset.Asset, error)
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

// Search handles GET /search?field=&value=.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	field := r.URL.Query().Get("field")
	value := r.URL.Query().Get("value")

	results, err := h.Service.Search(field, value)
	if err != nil {
		h.WriteDomainError(w, err, "search failed")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": results})
}
