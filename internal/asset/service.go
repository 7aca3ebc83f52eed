package asset

import (
	"log/slog"
	"time"

	errors "github.com/frahmantamala/asset-inventory/internal"
)

// Repository defines the data access methods for assets. Create must report
// identifier and serial conflicts as distinct errors so the service can
// retry the former and surface the latter.
type Repository interface {
	Create(asset *Asset) error
	GetByID(id int64) (*Asset, error)
	List(filter ListFilter) ([]*Asset, error)
	Update(asset *Asset) error
	DeleteByAssetID(assetID string) error
	LastAssetIDForPrefix(prefix string) (string, error)
}

// maxCreateAttempts bounds the identifier-conflict retry loop. Two
// concurrent creates for the same prefix can compute the same candidate;
// the unique constraint rejects one, and that one recomputes.
const maxCreateAttempts = 5

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

// CreateAsset validates the request, assigns a generated identifier and
// persists the asset, retrying with a recomputed identifier when a
// concurrent create wins the same one.
func (s *Service) CreateAsset(dto CreateAssetDTO) (*Asset, error) {
	if dto.Status == "" {
		dto.Status = StatusAvailable
	}

	if err := dto.Validate(); err != nil {
		s.logger.Error("asset validation failed", "error", err, "asset_type", dto.AssetType)
		return nil, err
	}

	prefix := PrefixForType(dto.AssetType)
	now := time.Now()

	a := &Asset{
		RegistrationDate: now,
		AssetType:        dto.AssetType,
		Make:             dto.Make,
		Model:            dto.Model,
		SerialNumber:     normalizeSerial(dto.SerialNumber),
		OperatingSystem:  dto.OperatingSystem,
		Processor:        dto.Processor,
		RAM:              dto.RAM,
		Storage:          dto.Storage,
		Location:         dto.Location,
		Status:           dto.Status,
		Assignee:         dto.Assignee,
		Condition:        dto.Condition,
		Notes:            dto.Notes,
		UpdatedAt:        now,
	}

	var lastErr error
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		lastID, err := s.repo.LastAssetIDForPrefix(prefix)
		if err != nil {
			s.logger.Error("failed to read last identifier for prefix", "error", err, "prefix", prefix)
			return nil, err
		}

		assetID, idErr := NextAssetID(prefix, lastID)
		if idErr != nil {
			s.logger.Error("identifier generation failed", "error", idErr, "prefix", prefix, "last_id", lastID)
			return nil, idErr
		}
		a.AssetID = assetID

		err = s.repo.Create(a)
		if err == nil {
			s.logger.Info("asset created", "asset_id", a.AssetID, "asset_type", a.AssetType, "status", a.Status)
			return a, nil
		}

		if appErr, ok := errors.IsAppError(err); ok && appErr.Code == errors.ErrCodeDuplicateAssetID {
			s.logger.Warn("identifier conflict, recomputing", "asset_id", assetID, "attempt", attempt+1)
			lastErr = err
			continue
		}

		s.logger.Error("failed to create asset", "error", err, "asset_id", assetID)
		return nil, err
	}

	s.logger.Error("identifier retries exhausted", "prefix", prefix, "attempts", maxCreateAttempts)
	return nil, lastErr
}

func (s *Service) GetAssetByID(id int64) (*Asset, error) {
	a, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get asset", "error", err, "id", id)
		return nil, err
	}
	return a, nil
}

// ListAssets returns assets newest-first, optionally filtered by status,
// type and location.
func (s *Service) ListAssets(filter ListFilter) ([]*Asset, error) {
	if filter.Status != "" && !IsValidStatus(filter.Status) {
		return nil, errors.NewValidationFieldError("status", "status must be one of the allowed values", errors.ErrCodeInvalidStatus)
	}

	assets, err := s.repo.List(filter)
	if err != nil {
		s.logger.Error("failed to list assets", "error", err)
		return nil, err
	}
	return assets, nil
}

// UpdateAsset applies a partial update. The stored identifier is immutable:
// any asset_id in the request is dropped before the write.
func (s *Service) UpdateAsset(id int64, dto UpdateAssetDTO) (*Asset, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("asset update validation failed", "error", err, "id", id)
		return nil, err
	}

	a, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("asset not found for update", "error", err, "id", id)
		return nil, err
	}

	if dto.AssetID != nil && *dto.AssetID != a.AssetID {
		s.logger.Warn("asset_id in update request ignored", "id", id, "requested", *dto.AssetID)
	}

	applyUpdate(a, dto)
	a.UpdatedAt = time.Now()

	if err := s.repo.Update(a); err != nil {
		s.logger.Error("failed to update asset", "error", err, "id", id)
		return nil, err
	}

	s.logger.Info("asset updated", "id", id, "asset_id", a.AssetID)
	return a, nil
}

// DeleteAsset hard-deletes by the generated identifier.
func (s *Service) DeleteAsset(assetID string) error {
	if err := s.repo.DeleteByAssetID(assetID); err != nil {
		s.logger.Error("failed to delete asset", "error", err, "asset_id", assetID)
		return err
	}

	s.logger.Info("asset deleted", "asset_id", assetID)
	return nil
}

func applyUpdate(a *Asset, dto UpdateAssetDTO) {
	if dto.AssetType != nil {
		a.AssetType = *dto.AssetType
	}
	if dto.Make != nil {
		a.Make = *dto.Make
	}
	if dto.Model != nil {
		a.Model = *dto.Model
	}
	if dto.SerialNumber != nil {
		a.SerialNumber = normalizeSerial(dto.SerialNumber)
	}
	if dto.OperatingSystem != nil {
		a.OperatingSystem = *dto.OperatingSystem
	}
	if dto.Processor != nil {
		a.Processor = *dto.Processor
	}
	if dto.RAM != nil {
		a.RAM = *dto.RAM
	}
	if dto.Storage != nil {
		a.Storage = *dto.Storage
	}
	if dto.Location != nil {
		a.Location = *dto.Location
	}
	if dto.Status != nil {
		a.Status = *dto.Status
	}
	if dto.Assignee != nil {
		a.Assignee = *dto.Assignee
	}
	if dto.Condition != nil {
		a.Condition = *dto.Condition
	}
	if dto.Notes != nil {
		a.Notes = *dto.Notes
	}
}

// normalizeSerial maps empty serials to NULL so the unique index never
// collides blank values.
func normalizeSerial(serial *string) *string {
	if serial == nil || *serial == "" {
		return nil
	}
	return serial
}
