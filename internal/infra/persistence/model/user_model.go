// Package model holds the GORM persistence models and their table mappings.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name        string    `gorm:"type:varchar(120)"`
	PhotoURL    string    `gorm:"type:text"`
	CompanyName *string   `gorm:"type:varchar(120);index"`
	CompanyLogo string    `gorm:"type:text"`
	Role        string    `gorm:"type:varchar(16);index;not null"`
	MemberLimit int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// All lists every model for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&AssetModel{},
		&AssetRequestModel{},
		&PaymentModel{},
		&RequestEventModel{},
	}
}
