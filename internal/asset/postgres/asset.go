package postgres

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	errors "github.com/frahmantamala/asset-inventory/internal"
	"github.com/frahmantamala/asset-inventory/internal/asset"
	assetDatamodel "github.com/frahmantamala/asset-inventory/internal/core/datamodel/asset"
)

// AssetRepository implements the asset.Repository interface using GORM.
type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create persists a new asset. Unique-constraint violations are translated
// into distinct conflict errors for the identifier and the serial number so
// the service can retry identifier collisions transparently.
func (r *AssetRepository) Create(a *asset.Asset) error {
	dm := asset.ToDataModel(a)
	if err := r.db.Create(dm).Error; err != nil {
		if conflictErr := r.translateConflict(err, dm); conflictErr != nil {
			return conflictErr
		}
		return err
	}
	a.ID = dm.ID
	return nil
}

func (r *AssetRepository) GetByID(id int64) (*asset.Asset, error) {
	var dm assetDatamodel.Asset
	err := r.db.Where("id = ?", id).First(&dm).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrAssetNotFound
		}
		return nil, err
	}
	return asset.FromDataModel(&dm), nil
}

func (r *AssetRepository) GetByAssetID(assetID string) (*asset.Asset, error) {
	var dm assetDatamodel.Asset
	err := r.db.Where("asset_id = ?", assetID).First(&dm).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrAssetNotFound
		}
		return nil, err
	}
	return asset.FromDataModel(&dm), nil
}

func (r *AssetRepository) List(filter asset.ListFilter) ([]*asset.Asset, error) {
	q := r.db.Model(&assetDatamodel.Asset{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.AssetType != "" {
		q = q.Where("asset_type = ?", filter.AssetType)
	}
	if filter.Location != "" {
		q = q.Where("location = ?", filter.Location)
	}

	var dms []*assetDatamodel.Asset
	err := q.Order("registration_date DESC, id DESC").Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return asset.FromDataModelSlice(dms), nil
}

func (r *AssetRepository) Update(a *asset.Asset) error {
	dm := asset.ToDataModel(a)
	err := r.db.Save(dm).Error
	if err != nil {
		if conflictErr := r.translateConflict(err, dm); conflictErr != nil {
			return conflictErr
		}
		return err
	}
	return nil
}

func (r *AssetRepository) DeleteByAssetID(assetID string) error {
	res := r.db.Where("asset_id = ?", assetID).Delete(&assetDatamodel.Asset{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.ErrAssetNotFound
	}
	return nil
}

// LastAssetIDForPrefix returns the greatest identifier sharing the prefix,
// or "" when none exists. Ordering by length first keeps LAP1000 above
// LAP999 once the numeric field widens past three digits.
func (r *AssetRepository) LastAssetIDForPrefix(prefix string) (string, error) {
	var lastID string
	err := r.db.Model(&assetDatamodel.Asset{}).
		Select("asset_id").
		Where("asset_id LIKE ?", prefix+"%").
		Order("LENGTH(asset_id) DESC, asset_id DESC").
		Limit(1).
		Scan(&lastID).Error
	if err != nil {
		return "", err
	}
	return lastID, nil
}

// translateConflict maps a storage-level unique violation to the matching
// domain conflict error, or returns nil when err is not a unique violation.
// Postgres reports the violated constraint by name; other drivers (SQLite in
// tests) fall back to matching the column in the error text.
func (r *AssetRepository) translateConflict(err error, dm *assetDatamodel.Asset) error {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		if pgErr.Code != "23505" {
			return nil
		}
		if strings.Contains(pgErr.ConstraintName, "serial") {
			return errors.ErrDuplicateSerial
		}
		return errors.ErrDuplicateAssetID
	}

	msg := err.Error()
	if !strings.Contains(strings.ToLower(msg), "unique") {
		return nil
	}
	if strings.Contains(msg, "serial_number") {
		return errors.ErrDuplicateSerial
	}
	if strings.Contains(msg, "asset_id") {
		return errors.ErrDuplicateAssetID
	}
	return errors.ErrDuplicateAssetID
}

// SearchSubstring returns assets whose column contains value,
// case-insensitively, newest-first. The column name comes from the closed
// search field mapping, never from raw client input. The column is cast to
// text so non-text fields like the registration date stay searchable.
func (r *AssetRepository) SearchSubstring(column, value string) ([]*asset.Asset, error) {
	var dms []*assetDatamodel.Asset
	cond := fmt.Sprintf("LOWER(CAST(%s AS TEXT)) LIKE ?", column)
	pattern := "%" + strings.ToLower(value) + "%"
	err := r.db.Where(cond, pattern).
		Order("registration_date DESC, id DESC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return asset.FromDataModelSlice(dms), nil
}

// FilterExact returns assets whose column equals value case-insensitively,
// newest-first. Used by the export path.
func (r *AssetRepository) FilterExact(column, value string) ([]*asset.Asset, error) {
	var dms []*assetDatamodel.Asset
	cond := fmt.Sprintf("LOWER(CAST(%s AS TEXT)) = LOWER(?)", column)
	err := r.db.Where(cond, value).
		Order("registration_date DESC, id DESC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}
	return asset.FromDataModelSlice(dms), nil
}
