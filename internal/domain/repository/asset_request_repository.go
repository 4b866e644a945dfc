package repository

import (
	"context"
	"time"

	"assethub/internal/domain/entity"
	"assethub/internal/errors"

	"github.com/google/uuid"
)

// ErrRequestNotFound is returned when an asset request is not found.
var ErrRequestNotFound = errors.New("asset request not found")

// RequestScope selects whose requests a list covers.
type RequestScope struct {
	RequesterEmail string    // when set, only this employee's requests
	CompanyName    string    // when set, only this company's requests
	Since          time.Time // when non-zero, only requests made at or after this instant
	Limit          int       // when positive, caps the result size
}

// AssetRequestRepository defines persistence for asset requests.
type AssetRequestRepository interface {
	// FindByID retrieves a request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AssetRequest, error)

	// List returns requests in scope matching query, newest first.
	List(ctx context.Context, scope RequestScope, query entity.RequestQuery) ([]*entity.AssetRequest, error)

	// Create persists a new request.
	Create(ctx context.Context, request *entity.AssetRequest) error

	// UpdateStatus moves a request from one status to another.
	// It fails with ErrRequestNotFound when the request is not currently in status from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.RequestStatus, approvalDate *time.Time) error

	// CountByType counts a company's requests per asset type.
	CountByType(ctx context.Context, company string) (map[entity.ProductType]int, error)

	// TopRequested returns the most requested asset names of a company.
	TopRequested(ctx context.Context, company string, limit int) ([]string, error)
}
