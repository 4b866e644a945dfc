package model

import (
	"time"

	"github.com/google/uuid"
)

// AssetModel mirrors the 'assets' table.
type AssetModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductName     string    `gorm:"type:varchar(200);not null"`
	ProductType     string    `gorm:"type:varchar(20);not null;index"`
	ProductQuantity int       `gorm:"not null;default:0;check:product_quantity >= 0"`
	Image           string    `gorm:"type:text"`
	DateAdded       time.Time `gorm:"not null;index"`
	CompanyName     string    `gorm:"type:varchar(120);not null;index"`
	HREmail         string    `gorm:"column:hr_email;type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (AssetModel) TableName() string {
	return "assets"
}

// AssetRequestModel mirrors the 'asset_requests' table.
type AssetRequestModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AssetID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	AssetName       string     `gorm:"type:varchar(200);not null"`
	AssetType       string     `gorm:"type:varchar(20);not null"`
	RequestDate     time.Time  `gorm:"not null;index"`
	ApprovalDate    *time.Time
	Status          string     `gorm:"type:varchar(16);not null;index"`
	RequesterName   string     `gorm:"type:varchar(120)"`
	RequesterEmail  string     `gorm:"type:varchar(255);not null;index"`
	CompanyName     string     `gorm:"type:varchar(120);not null;index"`
	AdditionalNotes string     `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (AssetRequestModel) TableName() string {
	return "asset_requests"
}
