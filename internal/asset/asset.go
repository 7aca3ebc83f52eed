package asset

import (
	"time"

	assetDatamodel "github.com/frahmantamala/asset-inventory/internal/core/datamodel/asset"
)

type Asset struct {
	ID               int64     `json:"id"`
	RegistrationDate time.Time `json:"registration_date"`
	AssetID          string    `json:"asset_id"`
	AssetType        string    `json:"asset_type"`
	Make             string    `json:"make,omitempty"`
	Model            string    `json:"model,omitempty"`
	SerialNumber     *string   `json:"serial_number,omitempty"`
	OperatingSystem  string    `json:"operating_system,omitempty"`
	Processor        string    `json:"processor,omitempty"`
	RAM              string    `json:"ram,omitempty"`
	Storage          string    `json:"storage,omitempty"`
	Location         string    `json:"location,omitempty"`
	Status           string    `json:"status"`
	Assignee         string    `json:"assignee,omitempty"`
	Condition        string    `json:"condition,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

const (
	StatusAvailable = "Available"
	StatusAssigned  = "Assigned"
	StatusInRepair  = "In-Repair"
	StatusInStorage = "In-Storage"
	StatusRetired   = "Retired"
	StatusOnOrder   = "On Order"
	StatusLost      = "Lost"
	StatusOther     = "Other"
)

// Closed option sets. Status and condition are validated against these;
// the remaining lists feed the dropdown endpoint.
var (
	Statuses = []string{
		StatusAssigned, StatusInRepair, StatusInStorage, StatusRetired,
		StatusOnOrder, StatusAvailable, StatusLost, StatusOther,
	}

	Conditions = []string{"New", "Excellent", "Good", "Fair", "Poor", "Damaged", "Not Working"}

	Types = []string{
		"Laptop", "Desktop", "Mobile", "Tablet", "Monitor", "Printer",
		"Server", "Network Device", "Other",
	}

	OperatingSystems = []string{
		"Windows 11", "Windows 10", "Windows 8", "Windows 7", "macOS",
		"Linux", "iOS", "Android", "Chrome OS", "Other",
	}

	Locations = []string{
		"Office", "Remote", "Storage Room", "Workshop", "Data Center",
		"Branch Office", "Other",
	}
)

func IsValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

func IsValidCondition(condition string) bool {
	for _, c := range Conditions {
		if c == condition {
			return true
		}
	}
	return false
}

func ToDataModel(a *Asset) *assetDatamodel.Asset {
	return &assetDatamodel.Asset{
		ID:               a.ID,
		RegistrationDate: a.RegistrationDate,
		AssetID:          a.AssetID,
		AssetType:        a.AssetType,
		Make:             a.Make,
		Model:            a.Model,
		SerialNumber:     a.SerialNumber,
		OperatingSystem:  a.OperatingSystem,
		Processor:        a.Processor,
		RAM:              a.RAM,
		Storage:          a.Storage,
		Location:         a.Location,
		Status:           a.Status,
		Assignee:         a.Assignee,
		Condition:        a.Condition,
		Notes:            a.Notes,
		UpdatedAt:        a.UpdatedAt,
	}
}

func FromDataModel(a *assetDatamodel.Asset) *Asset {
	return &Asset{
		ID:               a.ID,
		RegistrationDate: a.RegistrationDate,
		AssetID:          a.AssetID,
		AssetType:        a.AssetType,
		Make:             a.Make,
		Model:            a.Model,
		SerialNumber:     a.SerialNumber,
		OperatingSystem:  a.OperatingSystem,
		Processor:        a.Processor,
		RAM:              a.RAM,
		Storage:          a.Storage,
		Location:         a.Location,
		Status:           a.Status,
		Assignee:         a.Assignee,
		Condition:        a.Condition,
		Notes:            a.Notes,
		UpdatedAt:        a.UpdatedAt,
	}
}

func FromDataModelSlice(assets []*assetDatamodel.Asset) []*Asset {
	result := make([]*Asset, len(assets))
	for i, a := range assets {
		result[i] = FromDataModel(a)
	}
	return result
}
