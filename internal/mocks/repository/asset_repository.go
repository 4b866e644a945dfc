package repository

import (
	"context"
	"time"

	"assethub/internal/domain/entity"
	"assethub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAssetRepository is a mock implementation of repository.AssetRepository.
type MockAssetRepository struct {
	mock.Mock
}

// NewMockAssetRepository creates a MockAssetRepository whose expectations are asserted on cleanup.
func NewMockAssetRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAssetRepository {
	m := &MockAssetRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error) {
	args := m.Called(ctx, id)
	asset, _ := args.Get(0).(*entity.Asset)

	return asset, args.Error(1)
}

func (m *MockAssetRepository) ListByCompany(ctx context.Context, company string, query entity.AssetQuery) ([]*entity.Asset, error) {
	args := m.Called(ctx, company, query)
	assets, _ := args.Get(0).([]*entity.Asset)

	return assets, args.Error(1)
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	return m.Called(ctx, asset).Error(0)
}

func (m *MockAssetRepository) Update(ctx context.Context, asset *entity.Asset) error {
	return m.Called(ctx, asset).Error(0)
}

func (m *MockAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAssetRepository) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error {
	return m.Called(ctx, id, delta).Error(0)
}

// MockAssetRequestRepository is a mock implementation of repository.AssetRequestRepository.
type MockAssetRequestRepository struct {
	mock.Mock
}

// NewMockAssetRequestRepository creates a MockAssetRequestRepository whose expectations are asserted on cleanup.
func NewMockAssetRequestRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAssetRequestRepository {
	m := &MockAssetRequestRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAssetRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AssetRequest, error) {
	args := m.Called(ctx, id)
	request, _ := args.Get(0).(*entity.AssetRequest)

	return request, args.Error(1)
}

func (m *MockAssetRequestRepository) List(ctx context.Context, scope repository.RequestScope, query entity.RequestQuery) ([]*entity.AssetRequest, error) {
	args := m.Called(ctx, scope, query)
	requests, _ := args.Get(0).([]*entity.AssetRequest)

	return requests, args.Error(1)
}

func (m *MockAssetRequestRepository) Create(ctx context.Context, request *entity.AssetRequest) error {
	return m.Called(ctx, request).Error(0)
}

func (m *MockAssetRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.RequestStatus, approvalDate *time.Time) error {
	return m.Called(ctx, id, from, to, approvalDate).Error(0)
}

func (m *MockAssetRequestRepository) CountByType(ctx context.Context, company string) (map[entity.ProductType]int, error) {
	args := m.Called(ctx, company)
	counts, _ := args.Get(0).(map[entity.ProductType]int)

	return counts, args.Error(1)
}

func (m *MockAssetRequestRepository) TopRequested(ctx context.Context, company string, limit int) ([]string, error) {
	args := m.Called(ctx, company, limit)
	names, _ := args.Get(0).([]string)

	return names, args.Error(1)
}
