// Package service provides testify mocks of the domain service interfaces.
package service

import (
	"context"
	"time"

	"assethub/internal/domain/entity"
	"assethub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a MockTokenService whose expectations are asserted on cleanup.
func NewMockTokenService(t testingT) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateToken(email string, role entity.Role) (string, time.Time, error) {
	args := m.Called(email, role)
	expiresAt, _ := args.Get(1).(time.Time)

	return args.String(0), expiresAt, args.Error(2)
}

func (m *MockTokenService) ValidateToken(token string) (*service.Claims, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

// MockIdentityVerifier is a mock implementation of service.IdentityVerifier.
type MockIdentityVerifier struct {
	mock.Mock
}

// NewMockIdentityVerifier creates a MockIdentityVerifier whose expectations are asserted on cleanup.
func NewMockIdentityVerifier(t testingT) *MockIdentityVerifier {
	m := &MockIdentityVerifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockIdentityVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.VerifiedIdentity, error) {
	args := m.Called(ctx, idToken)
	identity, _ := args.Get(0).(*service.VerifiedIdentity)

	return identity, args.Error(1)
}

// MockPaymentGateway is a mock implementation of service.PaymentGateway.
type MockPaymentGateway struct {
	mock.Mock
}

// NewMockPaymentGateway creates a MockPaymentGateway whose expectations are asserted on cleanup.
func NewMockPaymentGateway(t testingT) *MockPaymentGateway {
	m := &MockPaymentGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPaymentGateway) CreatePaymentIntent(ctx context.Context, amount int64, metadata map[string]string) (*service.PaymentIntent, error) {
	args := m.Called(ctx, amount, metadata)
	intent, _ := args.Get(0).(*service.PaymentIntent)

	return intent, args.Error(1)
}

// MockEventPublisher is a mock implementation of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a MockEventPublisher whose expectations are asserted on cleanup.
func NewMockEventPublisher(t testingT) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishRequestStatusChanged(ctx context.Context, event *service.RequestStatusChanged) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// MockLabelService is a mock implementation of service.LabelService.
type MockLabelService struct {
	mock.Mock
}

// NewMockLabelService creates a MockLabelService whose expectations are asserted on cleanup.
func NewMockLabelService(t testingT) *MockLabelService {
	m := &MockLabelService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLabelService) GenerateAssetLabel(assetID uuid.UUID, company string) ([]byte, error) {
	args := m.Called(assetID, company)
	png, _ := args.Get(0).([]byte)

	return png, args.Error(1)
}

func (m *MockLabelService) ParseAssetLabel(payload string) (uuid.UUID, error) {
	args := m.Called(payload)
	id, _ := args.Get(0).(uuid.UUID)

	return id, args.Error(1)
}
