package usecase

import (
	"context"

	"assethub/internal/domain/entity"
	"assethub/internal/domain/service"
)

// PaymentIntentInput selects the package to pay for.
type PaymentIntentInput struct {
	PackageName string `json:"packageName" validate:"required"`
}

// RecordPaymentInput confirms a settled payment.
type RecordPaymentInput struct {
	PackageName   string `json:"packageName" validate:"required"`
	TransactionID string `json:"transactionId" validate:"required"`
}

// PaymentUsecase sells member-limit packages.
type PaymentUsecase interface {
	// Packages returns the package catalogue.
	Packages() []entity.Package

	// CreatePaymentIntent opens a provider intent for a package price.
	CreatePaymentIntent(ctx context.Context, hrEmail string, input PaymentIntentInput) (*service.PaymentIntent, error)

	// RecordPayment stores the payment and raises the HR member limit.
	RecordPayment(ctx context.Context, hrEmail string, input RecordPaymentInput) (*entity.Viewer, error)

	// ListPayments returns the HR manager's payment history, newest first.
	ListPayments(ctx context.Context, hrEmail string) ([]*entity.Payment, error)
}
