package repository

import (
	"context"

	"assethub/internal/domain/entity"
	"assethub/internal/errors"

	"github.com/google/uuid"
)

// ErrAssetNotFound is returned when an asset is not found.
var ErrAssetNotFound = errors.New("asset not found")

// ErrInsufficientStock is returned when a decrement would take quantity below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// AssetRepository defines persistence for company assets.
type AssetRepository interface {
	// FindByID retrieves an asset by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error)

	// ListByCompany applies query filters to a company's assets.
	// Ordering is by quantity when query.Sort is set, otherwise newest first.
	ListByCompany(ctx context.Context, company string, query entity.AssetQuery) ([]*entity.Asset, error)

	// Create persists a new asset.
	Create(ctx context.Context, asset *entity.Asset) error

	// Update modifies name, type, quantity and image of an asset.
	Update(ctx context.Context, asset *entity.Asset) error

	// Delete removes an asset.
	Delete(ctx context.Context, id uuid.UUID) error

	// AdjustQuantity adds delta to the asset's quantity; ErrInsufficientStock when the result would be negative.
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error
}
