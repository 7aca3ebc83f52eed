package dashboard

import "time"

// Metrics is the dashboard aggregation payload. Status counts are
// zero-filled across the whole enumerated set; type, OS and location maps
// carry only keys actually present in the data.
type Metrics struct {
	TotalAssets      int64            `json:"totalAssets"`
	AssetsByType     map[string]int64 `json:"assetsByType"`
	AssetsByStatus   map[string]int64 `json:"assetsByStatus"`
	AssetsByOS       map[string]int64 `json:"assetsByOS"`
	AssetsByLocation map[string]int64 `json:"assetsByLocation"`
	RecentAssets     []RecentAsset    `json:"recentAssets"`
}

// RecentAsset is the reduced projection used in the recent-activity feed.
type RecentAsset struct {
	ID               int64     `json:"id" db:"id"`
	AssetID          string    `json:"asset_id" db:"asset_id"`
	AssetType        string    `json:"asset_type" db:"asset_type"`
	Status           string    `json:"status" db:"status"`
	RegistrationDate time.Time `json:"registration_date" db:"registration_date"`
}
