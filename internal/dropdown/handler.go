package dropdown

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/asset-inventory/internal/asset"
	"github.com/frahmantamala/asset-inventory/internal/transport"
	"github.com/frahmantamala/asset-inventory/pkg/logger"
)

// Options are the closed option sets the front end renders as dropdowns.
type Options struct {
	AssetTypes       []string `json:"assetTypes"`
	OperatingSystems []string `json:"operatingSystems"`
	Locations        []string `json:"locations"`
	Statuses         []string `json:"statuses"`
	Conditions       []string `json:"conditions"`
}

type Handler struct {
	*transport.BaseHandler
}

func NewHandler() *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
	}
}

// GetDropdowns handles GET /dropdowns.
func (h *Handler) GetDropdowns(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, Options{
		AssetTypes:       asset.Types,
		OperatingSystems: asset.OperatingSystems,
		Locations:        asset.Locations,
		Statuses:         asset.Statuses,
		Conditions:       asset.Conditions,
	})
}
