package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/frahmantamala/asset-inventory/internal/dashboard"
)

// DashboardRepository serves the read-only aggregation queries over sqlx;
// the write path stays on GORM.
type DashboardRepository struct {
	db *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) CountAssets() (int64, error) {
	var count int64
	err := r.db.Get(&count, "SELECT COUNT(*) FROM assets")
	return count, err
}

// CountByColumn groups the assets by the given column, skipping rows whose
// value is NULL or empty; absent attributes never count under a synthetic
// bucket. The column name comes from service code, never from clients.
func (r *DashboardRepository) CountByColumn(column string) (map[string]int64, error) {
	query := fmt.Sprintf(
		"SELECT %s AS key, COUNT(*) AS count FROM assets WHERE %s IS NOT NULL AND %s <> '' GROUP BY %s",
		column, column, column, column)

	rows := []struct {
		Key   string `db:"key"`
		Count int64  `db:"count"`
	}{}
	if err := r.db.Select(&rows, query); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

func (r *DashboardRepository) RecentAssets(limit int) ([]dashboard.RecentAsset, error) {
	query := r.db.Rebind(
		"SELECT id, asset_id, asset_type, status, registration_date FROM assets ORDER BY registration_date DESC, id DESC LIMIT ?")

	var recent []dashboard.RecentAsset
	if err := r.db.Select(&recent, query, limit); err != nil {
		return nil, err
	}
	return recent, nil
}
