package asset

import (
	errors "github.com/frahmantamala/asset-inventory/internal"
	"github.com/frahmantamala/asset-inventory/internal/core/common/validation"
)

// CreateAssetDTO is the transport shape for asset registration. The asset
// identifier is never accepted from the client; it is generated server-side.
type CreateAssetDTO struct {
	AssetType       string  `json:"asset_type"`
	Make            string  `json:"make"`
	Model           string  `json:"model"`
	SerialNumber    *string `json:"serial_number"`
	OperatingSystem string  `json:"operating_system"`
	Processor       string  `json:"processor"`
	RAM             string  `json:"ram"`
	Storage         string  `json:"storage"`
	Location        string  `json:"location"`
	Status          string  `json:"status"`
	Assignee        string  `json:"assignee"`
	Condition       string  `json:"condition"`
	Notes           string  `json:"notes"`
}

// UpdateAssetDTO carries a partial update; nil fields are left untouched.
// An asset_id key in the request body is decoded here and then ignored.
type UpdateAssetDTO struct {
	AssetID         *string `json:"asset_id"`
	AssetType       *string `json:"asset_type"`
	Make            *string `json:"make"`
	Model           *string `json:"model"`
	SerialNumber    *string `json:"serial_number"`
	OperatingSystem *string `json:"operating_system"`
	Processor       *string `json:"processor"`
	RAM             *string `json:"ram"`
	Storage         *string `json:"storage"`
	Location        *string `json:"location"`
	Status          *string `json:"status"`
	Assignee        *string `json:"assignee"`
	Condition       *string `json:"condition"`
	Notes           *string `json:"notes"`
}

// ListFilter holds the optional exact-match filters for asset listing.
type ListFilter struct {
	Status    string
	AssetType string
	Location  string
}

func (d CreateAssetDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("asset_type", d.AssetType).Required().OneOf(Types, errors.ErrCodeInvalidAssetType)
	v.Field("status", d.Status).Required().OneOf(Statuses, errors.ErrCodeInvalidStatus)
	v.Field("condition", d.Condition).OneOf(Conditions, errors.ErrCodeInvalidCondition)
	v.Field("operating_system", d.OperatingSystem).MaxLength(50)
	v.Field("make", d.Make).MaxLength(100)
	v.Field("model", d.Model).MaxLength(100)
	v.Field("serial_number", d.SerialNumber).MaxLength(100)
	v.Field("location", d.Location).MaxLength(100)
	v.Field("assignee", d.Assignee).MaxLength(100)
	return v.Validate()
}

func (d UpdateAssetDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	if d.AssetType != nil {
		v.Field("asset_type", *d.AssetType).Required().OneOf(Types, errors.ErrCodeInvalidAssetType)
	}
	if d.Status != nil {
		v.Field("status", *d.Status).Required().OneOf(Statuses, errors.ErrCodeInvalidStatus)
	}
	if d.Condition != nil {
		v.Field("condition", *d.Condition).OneOf(Conditions, errors.ErrCodeInvalidCondition)
	}
	if d.SerialNumber != nil {
		v.Field("serial_number", d.SerialNumber).MaxLength(100)
	}
	return v.Validate()
}
