package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table.
type PaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"type:varchar(255);not null;index"`
	PackageName   string    `gorm:"type:varchar(32);not null"`
	Price         int64     `gorm:"not null"`
	MemberLimit   int       `gorm:"not null"`
	TransactionID string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PaidAt        time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
