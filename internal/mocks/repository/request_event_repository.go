package repository

import (
	"context"

	"assethub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRequestEventRepository is a mock implementation of repository.RequestEventRepository.
type MockRequestEventRepository struct {
	mock.Mock
}

func NewMockRequestEventRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRequestEventRepository {
	m := &MockRequestEventRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRequestEventRepository) Record(ctx context.Context, event *entity.RequestEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockRequestEventRepository) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.RequestEvent, error) {
	args := m.Called(ctx, requestID)
	events, _ := args.Get(0).([]*entity.RequestEvent)

	return events, args.Error(1)
}
