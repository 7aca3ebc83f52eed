package dashboard

import (
	"log/slog"

	"github.com/frahmantamala/asset-inventory/internal/asset"
)

// recentFeedSize is the length of the recent-activity feed.
const recentFeedSize = 5

type Repository interface {
	CountAssets() (int64, error)
	CountByColumn(column string) (map[string]int64, error)
	RecentAssets(limit int) ([]RecentAsset, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetMetrics assembles the dashboard payload.
func (s *Service) GetMetrics() (*Metrics, error) {
	total, err := s.repo.CountAssets()
	if err != nil {
		s.logger.Error("failed to count assets", "error", err)
		return nil, err
	}

	byStatus, err := s.repo.CountByColumn("status")
	if err != nil {
		s.logger.Error("failed to count by status", "error", err)
		return nil, err
	}
	// every enumerated status appears, present in the data or not
	for _, status := range asset.Statuses {
		if _, ok := byStatus[status]; !ok {
			byStatus[status] = 0
		}
	}

	byType, err := s.repo.CountByColumn("asset_type")
	if err != nil {
		s.logger.Error("failed to count by type", "error", err)
		return nil, err
	}

	byOS, err := s.repo.CountByColumn("operating_system")
	if err != nil {
		s.logger.Error("failed to count by operating system", "error", err)
		return nil, err
	}

	byLocation, err := s.repo.CountByColumn("location")
	if err != nil {
		s.logger.Error("failed to count by location", "error", err)
		return nil, err
	}

	recent, err := s.repo.RecentAssets(recentFeedSize)
	if err != nil {
		s.logger.Error("failed to load recent assets", "error", err)
		return nil, err
	}

	return &Metrics{
		TotalAssets:      total,
		AssetsByType:     byType,
		AssetsByStatus:   byStatus,
		AssetsByOS:       byOS,
		AssetsByLocation: byLocation,
		RecentAssets:     recent,
	}, nil
}
