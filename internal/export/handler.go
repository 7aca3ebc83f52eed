package export

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/asset-inventory/internal/transport"
	"github.com/frahmantamala/asset-inventory/pkg/logger"
)

type ServiceAPI interface {
	Export(field, value string) (*Document, error)
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

// Export handles GET /export?field=&value= and serves the CSV as a
// download with a dated filename.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	field := r.URL.Query().Get("field")
	value := r.URL.Query().Get("value")

	doc, err := h.Service.Export(field, value)
	if err != nil {
		h.WriteDomainError(w, err, "export failed")
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", doc.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Content); err != nil {
		h.Logger.Error("failed to write export response", "error", err)
	}
}
