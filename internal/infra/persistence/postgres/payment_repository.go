package postgres

import (
	"context"

	"assethub/internal/domain/entity"
	domainerrors "assethub/internal/domain/errors"
	"assethub/internal/domain/repository"
	"assethub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the domain.PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// Create persists a payment; the transaction ID is unique.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}

	paymentM := &model.PaymentModel{
		ID:            payment.ID,
		Email:         payment.Email,
		PackageName:   payment.PackageName,
		Price:         payment.Price,
		MemberLimit:   payment.MemberLimit,
		TransactionID: payment.TransactionID,
		PaidAt:        payment.PaidAt,
	}

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePayment
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record payment")
	}

	return nil
}

// ListByEmail returns an HR manager's payments, newest first.
func (repo *paymentRepository) ListByEmail(ctx context.Context, email string) ([]*entity.Payment, error) {
	var paymentMs []*model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Order("paid_at DESC").Order("id ASC").
		Find(&paymentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	payments := make([]*entity.Payment, 0, len(paymentMs))
	for _, m := range paymentMs {
		payments = append(payments, &entity.Payment{
			ID:            m.ID,
			Email:         m.Email,
			PackageName:   m.PackageName,
			Price:         m.Price,
			MemberLimit:   m.MemberLimit,
			TransactionID: m.TransactionID,
			PaidAt:        m.PaidAt,
		})
	}

	return payments, nil
}
