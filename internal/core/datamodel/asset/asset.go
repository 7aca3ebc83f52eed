package asset

import "time"

// Asset is the persistence model for the assets table. The identifier and
// serial number carry unique indexes; the identifier race on concurrent
// creates is resolved by the asset_id constraint, not in process.
type Asset struct {
	ID               int64      `gorm:"primaryKey"`
	RegistrationDate time.Time  `gorm:"column:registration_date;not null"`
	AssetID          string     `gorm:"column:asset_id;uniqueIndex;size:50;not null"`
	AssetType        string     `gorm:"column:asset_type;size:50;not null"`
	Make             string     `gorm:"column:make;size:100"`
	Model            string     `gorm:"column:model;size:100"`
	SerialNumber     *string    `gorm:"column:serial_number;uniqueIndex;size:100"`
	OperatingSystem  string     `gorm:"column:operating_system;size:50"`
	Processor        string     `gorm:"column:processor;size:100"`
	RAM              string     `gorm:"column:ram;size:50"`
	Storage          string     `gorm:"column:storage;size:100"`
	Location         string     `gorm:"column:location;size:100"`
	Status           string     `gorm:"column:status;size:50;not null"`
	Assignee         string     `gorm:"column:assignee;size:100"`
	Condition        string     `gorm:"column:condition;size:50"`
	Notes            string     `gorm:"column:notes;type:text"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (Asset) TableName() string {
	return "assets"
}
