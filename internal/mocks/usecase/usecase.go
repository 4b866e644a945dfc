// Package usecase provides testify mocks of the application use cases for handler tests.
package usecase

import (
	"context"

	"assethub/internal/domain/entity"
	"assethub/internal/domain/service"
	"assethub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func track(t testingT, m *mock.Mock) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// MockAccountUsecase is a mock implementation of usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

func NewMockAccountUsecase(t testingT) *MockAccountUsecase {
	m := &MockAccountUsecase{}
	track(t, &m.Mock)

	return m
}

func (m *MockAccountUsecase) IssueToken(ctx context.Context, idToken string) (*usecase.TokenOutput, error) {
	args := m.Called(ctx, idToken)
	out, _ := args.Get(0).(*usecase.TokenOutput)

	return out, args.Error(1)
}

func (m *MockAccountUsecase) Register(ctx context.Context, email string, input usecase.RegisterInput) (*entity.User, error) {
	args := m.Called(ctx, email, input)
	out, _ := args.Get(0).(*entity.User)

	return out, args.Error(1)
}

func (m *MockAccountUsecase) GetRole(ctx context.Context, email string) (*entity.Viewer, error) {
	args := m.Called(ctx, email)
	out, _ := args.Get(0).(*entity.Viewer)

	return out, args.Error(1)
}

func (m *MockAccountUsecase) GetCompanyBrand(ctx context.Context, email string) (*usecase.CompanyBrand, error) {
	args := m.Called(ctx, email)
	out, _ := args.Get(0).(*usecase.CompanyBrand)

	return out, args.Error(1)
}

func (m *MockAccountUsecase) UpdateProfile(ctx context.Context, email string, input usecase.UpdateProfileInput) (*entity.User, error) {
	args := m.Called(ctx, email, input)
	out, _ := args.Get(0).(*entity.User)

	return out, args.Error(1)
}

// MockAssetUsecase is a mock implementation of usecase.AssetUsecase.
type MockAssetUsecase struct {
	mock.Mock
}

func NewMockAssetUsecase(t testingT) *MockAssetUsecase {
	m := &MockAssetUsecase{}
	track(t, &m.Mock)

	return m
}

func (m *MockAssetUsecase) ListCompanyAssets(ctx context.Context, hrEmail string, query entity.AssetQuery) ([]*entity.Asset, error) {
	args := m.Called(ctx, hrEmail, query)
	out, _ := args.Get(0).([]*entity.Asset)

	return out, args.Error(1)
}

func (m *MockAssetUsecase) ListRequestableAssets(ctx context.Context, employeeEmail string, query entity.AssetQuery) ([]*entity.Asset, error) {
	args := m.Called(ctx, employeeEmail, query)
	out, _ := args.Get(0).([]*entity.Asset)

	return out, args.Error(1)
}

func (m *MockAssetUsecase) AddAsset(ctx context.Context, hrEmail string, input usecase.AssetInput) (*entity.Asset, error) {
	args := m.Called(ctx, hrEmail, input)
	out, _ := args.Get(0).(*entity.Asset)

	return out, args.Error(1)
}

func (m *MockAssetUsecase) UpdateAsset(ctx context.Context, hrEmail string, id uuid.UUID, input usecase.AssetInput) (*entity.Asset, error) {
	args := m.Called(ctx, hrEmail, id, input)
	out, _ := args.Get(0).(*entity.Asset)

	return out, args.Error(1)
}

func (m *MockAssetUsecase) DeleteAsset(ctx context.Context, hrEmail string, id uuid.UUID) error {
	return m.Called(ctx, hrEmail, id).Error(0)
}

func (m *MockAssetUsecase) AssetLabel(ctx context.Context, hrEmail string, id uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, hrEmail, id)
	out, _ := args.Get(0).([]byte)

	return out, args.Error(1)
}

func (m *MockAssetUsecase) Stats(ctx context.Context, hrEmail string) (*entity.HRStats, error) {
	args := m.Called(ctx, hrEmail)
	out, _ := args.Get(0).(*entity.HRStats)

	return out, args.Error(1)
}

// MockRequestUsecase is a mock implementation of usecase.RequestUsecase.
type MockRequestUsecase struct {
	mock.Mock
}

func NewMockRequestUsecase(t testingT) *MockRequestUsecase {
	m := &MockRequestUsecase{}
	track(t, &m.Mock)

	return m
}

func (m *MockRequestUsecase) CreateRequest(ctx context.Context, employeeEmail string, input usecase.CreateRequestInput) (*entity.AssetRequest, error) {
	args := m.Called(ctx, employeeEmail, input)
	out, _ := args.Get(0).(*entity.AssetRequest)

	return out, args.Error(1)
}

func (m *MockRequestUsecase) ListEmployeeRequests(ctx context.Context, email string, query entity.RequestQuery) ([]*entity.AssetRequest, error) {
	return m.requests(m.Called(ctx, email, query))
}

func (m *MockRequestUsecase) ListMonthlyRequests(ctx context.Context, email string, query entity.RequestQuery) ([]*entity.AssetRequest, error) {
	return m.requests(m.Called(ctx, email, query))
}

func (m *MockRequestUsecase) ListCompanyRequests(ctx context.Context, hrEmail string, query entity.RequestQuery) ([]*entity.AssetRequest, error) {
	return m.requests(m.Called(ctx, hrEmail, query))
}

func (m *MockRequestUsecase) ListPendingRequests(ctx context.Context, hrEmail string) ([]*entity.AssetRequest, error) {
	return m.requests(m.Called(ctx, hrEmail))
}

func (m *MockRequestUsecase) Decide(ctx context.Context, hrEmail string, id uuid.UUID, status entity.RequestStatus) (*entity.AssetRequest, error) {
	return m.request(m.Called(ctx, hrEmail, id, status))
}

func (m *MockRequestUsecase) Cancel(ctx context.Context, employeeEmail string, id uuid.UUID) (*entity.AssetRequest, error) {
	return m.request(m.Called(ctx, employeeEmail, id))
}

func (m *MockRequestUsecase) Return(ctx context.Context, employeeEmail string, id uuid.UUID) (*entity.AssetRequest, error) {
	return m.request(m.Called(ctx, employeeEmail, id))
}

func (m *MockRequestUsecase) requests(args mock.Arguments) ([]*entity.AssetRequest, error) {
	out, _ := args.Get(0).([]*entity.AssetRequest)

	return out, args.Error(1)
}

func (m *MockRequestUsecase) request(args mock.Arguments) (*entity.AssetRequest, error) {
	out, _ := args.Get(0).(*entity.AssetRequest)

	return out, args.Error(1)
}

// MockTeamUsecase is a mock implementation of usecase.TeamUsecase.
type MockTeamUsecase struct {
	mock.Mock
}

func NewMockTeamUsecase(t testingT) *MockTeamUsecase {
	m := &MockTeamUsecase{}
	track(t, &m.Mock)

	return m
}

func (m *MockTeamUsecase) ListTeam(ctx context.Context, email, search string) ([]*entity.User, error) {
	args := m.Called(ctx, email, search)
	out, _ := args.Get(0).([]*entity.User)

	return out, args.Error(1)
}

func (m *MockTeamUsecase) ListUnaffiliated(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*entity.User)

	return out, args.Error(1)
}

func (m *MockTeamUsecase) AddEmployees(ctx context.Context, hrEmail string, input usecase.AddEmployeesInput) (*entity.Viewer, error) {
	args := m.Called(ctx, hrEmail, input)
	out, _ := args.Get(0).(*entity.Viewer)

	return out, args.Error(1)
}

func (m *MockTeamUsecase) RemoveEmployee(ctx context.Context, hrEmail string, employeeID uuid.UUID) error {
	return m.Called(ctx, hrEmail, employeeID).Error(0)
}

// MockPaymentUsecase is a mock implementation of usecase.PaymentUsecase.
type MockPaymentUsecase struct {
	mock.Mock
}

func NewMockPaymentUsecase(t testingT) *MockPaymentUsecase {
	m := &MockPaymentUsecase{}
	track(t, &m.Mock)

	return m
}

func (m *MockPaymentUsecase) Packages() []entity.Package {
	out, _ := m.Called().Get(0).([]entity.Package)

	return out
}

func (m *MockPaymentUsecase) CreatePaymentIntent(ctx context.Context, hrEmail string, input usecase.PaymentIntentInput) (*service.PaymentIntent, error) {
	args := m.Called(ctx, hrEmail, input)
	out, _ := args.Get(0).(*service.PaymentIntent)

	return out, args.Error(1)
}

func (m *MockPaymentUsecase) RecordPayment(ctx context.Context, hrEmail string, input usecase.RecordPaymentInput) (*entity.Viewer, error) {
	args := m.Called(ctx, hrEmail, input)
	out, _ := args.Get(0).(*entity.Viewer)

	return out, args.Error(1)
}

func (m *MockPaymentUsecase) ListPayments(ctx context.Context, hrEmail string) ([]*entity.Payment, error) {
	args := m.Called(ctx, hrEmail)
	out, _ := args.Get(0).([]*entity.Payment)

	return out, args.Error(1)
}
