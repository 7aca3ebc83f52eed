package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/asset-inventory/internal/transport"
	"github.com/frahmantamala/asset-inventory/pkg/logger"
)

type ServiceAPI interface {
	GetMetrics() (*Metrics, error)
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

// GetDashboard handles GET /dashboard.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.Service.GetMetrics()
	if err != nil {
		h.WriteDomainError(w, err, "failed to build dashboard metrics")
		return
	}

	h.WriteJSON(w, http.StatusOK, metrics)
}
