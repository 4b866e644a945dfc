package repository

import (
	"context"

	"assethub/internal/domain/entity"
	"assethub/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockPaymentRepository is a mock implementation of repository.PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

// NewMockPaymentRepository creates a MockPaymentRepository whose expectations are asserted on cleanup.
func NewMockPaymentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentRepository {
	m := &MockPaymentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) ListByEmail(ctx context.Context, email string) ([]*entity.Payment, error) {
	args := m.Called(ctx, email)
	payments, _ := args.Get(0).([]*entity.Payment)

	return payments, args.Error(1)
}

// InlineTxManager runs transactional callbacks directly against the wrapped mocks.
type InlineTxManager struct {
	Users    *MockUserRepository
	Assets   *MockAssetRepository
	Requests *MockAssetRequestRepository
	Payments *MockPaymentRepository
}

// Execute invokes fn with a factory over the mocks and returns its error unchanged.
func (m *InlineTxManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *InlineTxManager) UserRepo() repository.UserRepository { return m.Users }

func (m *InlineTxManager) AssetRepo() repository.AssetRepository { return m.Assets }

func (m *InlineTxManager) AssetRequestRepo() repository.AssetRequestRepository { return m.Requests }

func (m *InlineTxManager) PaymentRepo() repository.PaymentRepository { return m.Payments }
