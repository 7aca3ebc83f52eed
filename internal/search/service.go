package search

import (
	"log/slog"

	errors "github.com/frahmantamala/asset-inventory/internal"
	"github.com/frahmantamala/asset-inventory/internal/asset"
)

// AssetFinder is the slice of the asset repository the search path needs.
type AssetFinder interface {
	SearchSubstring(column, value string) ([]*asset.Asset, error)
}

type Service struct {
	finder AssetFinder
	logger *slog.Logger
}

func NewService(finder AssetFinder, logger *slog.Logger) *Service {
	return &Service{
		finder: finder,
		logger: logger,
	}
}

// Search returns assets whose mapped column contains value,
// case-insensitively, newest-first. Both parameters are required; an
// unrecognized field name is a validation error, not an empty result.
func (s *Service) Search(field, value string) ([]*asset.Asset, error) {
	if field == "" || value == "" {
		return nil, errors.ErrMissingSearchParams
	}

	column, ok := ColumnForField(field)
	if !ok {
		s.logger.Warn("search rejected: unknown field", "field", field)
		return nil, errors.ErrUnknownSearchField
	}

	results, err := s.finder.SearchSubstring(column, value)
	if err != nil {
		s.logger.Error("search query failed", "error", err, "column", column)
		return nil, err
	}

	s.logger.Debug("search performed", "field", field, "column", column, "results", len(results))
	return results, nil
}
