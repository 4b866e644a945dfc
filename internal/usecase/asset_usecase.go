package usecase

import (
	"context"

	"assethub/internal/domain/entity"

	"github.com/google/uuid"
)

// AssetInput defines the editable fields of an asset.
type AssetInput struct {
	ProductName     string             `json:"productName" validate:"required,max=200"`
	ProductType     entity.ProductType `json:"productType" validate:"required,oneof=Returnable Non-returnable"`
	ProductQuantity int                `json:"productQuantity" validate:"gte=0"`
	Image           string             `json:"image" validate:"omitempty,url"`
}

// AssetUsecase manages a company's inventory.
type AssetUsecase interface {
	// ListCompanyAssets lists the inventory of the HR manager's company.
	ListCompanyAssets(ctx context.Context, hrEmail string, query entity.AssetQuery) ([]*entity.Asset, error)

	// ListRequestableAssets lists the assets an employee may request; empty for unaffiliated employees.
	ListRequestableAssets(ctx context.Context, employeeEmail string, query entity.AssetQuery) ([]*entity.Asset, error)

	// AddAsset creates an asset in the HR manager's company.
	AddAsset(ctx context.Context, hrEmail string, input AssetInput) (*entity.Asset, error)

	// UpdateAsset edits an asset of the HR manager's company.
	UpdateAsset(ctx context.Context, hrEmail string, id uuid.UUID, input AssetInput) (*entity.Asset, error)

	// DeleteAsset removes an asset of the HR manager's company.
	DeleteAsset(ctx context.Context, hrEmail string, id uuid.UUID) error

	// AssetLabel renders the QR tag of an asset.
	AssetLabel(ctx context.Context, hrEmail string, id uuid.UUID) ([]byte, error)

	// Stats summarises requests and stock for the HR home view.
	Stats(ctx context.Context, hrEmail string) (*entity.HRStats, error)
}
