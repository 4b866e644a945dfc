package model

import (
	"time"

	"github.com/google/uuid"
)

// RequestEventModel mirrors the 'request_events' table.
type RequestEventModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	MessageID      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	RequestID      uuid.UUID `gorm:"type:uuid;not null;index"`
	AssetName      string    `gorm:"type:varchar(200);not null"`
	CompanyName    string    `gorm:"type:varchar(120);not null"`
	RequesterEmail string    `gorm:"type:varchar(255);not null"`
	FromStatus     string    `gorm:"type:varchar(16);not null"`
	ToStatus       string    `gorm:"type:varchar(16);not null"`
	ChangedBy      string    `gorm:"type:varchar(255);not null"`
	ChangedAt      time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RequestEventModel) TableName() string {
	return "request_events"
}
