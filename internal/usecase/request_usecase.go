package usecase

import (
	"context"

	"assethub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRequestInput defines an employee's request for an asset.
type CreateRequestInput struct {
	AssetID         uuid.UUID `json:"assetId" validate:"required"`
	AdditionalNotes string    `json:"additionalNotes" validate:"max=500"`
}

// DecisionInput is the HR verdict on a pending request.
type DecisionInput struct {
	Status entity.RequestStatus `json:"status" validate:"required,oneof=approved rejected"`
}

// RequestUsecase drives the asset request lifecycle.
type RequestUsecase interface {
	// CreateRequest opens a pending request for an asset of the employee's company.
	CreateRequest(ctx context.Context, employeeEmail string, input CreateRequestInput) (*entity.AssetRequest, error)

	// ListEmployeeRequests lists an employee's own requests.
	ListEmployeeRequests(ctx context.Context, email string, query entity.RequestQuery) ([]*entity.AssetRequest, error)

	// ListMonthlyRequests lists an employee's requests made this calendar month.
	ListMonthlyRequests(ctx context.Context, email string, query entity.RequestQuery) ([]*entity.AssetRequest, error)

	// ListCompanyRequests lists all requests of the HR manager's company.
	ListCompanyRequests(ctx context.Context, hrEmail string, query entity.RequestQuery) ([]*entity.AssetRequest, error)

	// ListPendingRequests lists the pending requests of the HR manager's company.
	ListPendingRequests(ctx context.Context, hrEmail string) ([]*entity.AssetRequest, error)

	// Decide approves or rejects a pending request.
	Decide(ctx context.Context, hrEmail string, id uuid.UUID, status entity.RequestStatus) (*entity.AssetRequest, error)

	// Cancel withdraws the employee's own pending request.
	Cancel(ctx context.Context, employeeEmail string, id uuid.UUID) (*entity.AssetRequest, error)

	// Return gives back an approved returnable asset.
	Return(ctx context.Context, employeeEmail string, id uuid.UUID) (*entity.AssetRequest, error)
}
