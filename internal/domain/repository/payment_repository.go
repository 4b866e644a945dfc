package repository

import (
	"context"

	"assethub/internal/domain/entity"
	"assethub/internal/errors"
)

// PaymentRepository stores settled package purchases.
type PaymentRepository interface {
	// Create persists a payment; a repeated transaction ID is rejected.
	Create(ctx context.Context, payment *entity.Payment) error

	// ListByEmail returns an HR manager's payments, newest first.
	ListByEmail(ctx context.Context, email string) ([]*entity.Payment, error)
}

// ErrDuplicatePayment is returned when a transaction ID was already recorded.
var ErrDuplicatePayment = errors.New("payment already recorded")
