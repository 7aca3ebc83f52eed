package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	errors "github.com/frahmantamala/asset-inventory/internal"
	"github.com/frahmantamala/asset-inventory/internal/asset"
	"github.com/frahmantamala/asset-inventory/internal/search"
)

// csvHeader is the fixed column order of the export file.
var csvHeader = []string{
	"Registration Date", "Asset ID", "Asset Type", "Make", "Model",
	"Serial Number", "Operating System", "Processor", "RAM", "Storage",
	"Location", "Status", "Assignee", "Condition", "Notes",
}

const dateLayout = "2006-01-02"

// AssetFinder is the slice of the asset repository the export path needs.
type AssetFinder interface {
	List(filter asset.ListFilter) ([]*asset.Asset, error)
	FilterExact(column, value string) ([]*asset.Asset, error)
}

// Document is a rendered export ready to be served as a download.
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
}

type Service struct {
	finder AssetFinder
	logger *slog.Logger
	now    func() time.Time
}

func NewService(finder AssetFinder, logger *slog.Logger) *Service {
	return &Service{
		finder: finder,
		logger: logger,
		now:    time.Now,
	}
}

// Export renders the matching assets as CSV. The filter is optional but
// must be complete when present: field and value travel together. Matching
// is case-insensitive exact, using the same field mapping as search.
func (s *Service) Export(field, value string) (*Document, error) {
	if (field == "") != (value == "") {
		return nil, errors.ErrMissingSearchParams
	}

	var assets []*asset.Asset
	var err error
	if field == "" {
		assets, err = s.finder.List(asset.ListFilter{})
	} else {
		column, ok := search.ColumnForField(field)
		if !ok {
			s.logger.Warn("export rejected: unknown field", "field", field)
			return nil, errors.ErrUnknownSearchField
		}
		assets, err = s.finder.FilterExact(column, value)
	}
	if err != nil {
		s.logger.Error("export query failed", "error", err, "field", field)
		return nil, err
	}

	content, err := renderCSV(assets)
	if err != nil {
		return nil, errors.NewInternalError("failed to render export", err)
	}

	s.logger.Info("export rendered", "rows", len(assets), "field", field)

	return &Document{
		Filename:    fmt.Sprintf("assets_export_%s.csv", s.now().Format(dateLayout)),
		ContentType: "text/csv",
		Content:     content,
	}, nil
}

// renderCSV writes the fixed header and one row per asset. encoding/csv
// handles quoting: fields containing the delimiter, quotes or newlines are
// quoted with internal quotes doubled. Nil values render as empty cells.
func renderCSV(assets []*asset.Asset) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, a := range assets {
		serial := ""
		if a.SerialNumber != nil {
			serial = *a.SerialNumber
		}

		row := []string{
			a.RegistrationDate.Format(dateLayout),
			a.AssetID,
			a.AssetType,
			a.Make,
			a.Model,
			serial,
			a.OperatingSystem,
			a.Processor,
			a.RAM,
			a.Storage,
			a.Location,
			a.Status,
			a.Assignee,
			a.Condition,
			a.Notes,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
