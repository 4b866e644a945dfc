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

// assetRepository implements the domain.AssetRepository interface using GORM.
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository is the constructor for assetRepository.
func NewAssetRepository(db *gorm.DB) repository.AssetRepository {
	return &assetRepository{db: db}
}

// FindByID retrieves an asset by its unique ID.
func (repo *assetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error) {
	var assetM model.AssetModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&assetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssetNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset by id")
	}

	return toAssetDomain(&assetM), nil
}

// ListByCompany applies the search, stock, type and sort filters to a company's assets.
func (repo *assetRepository) ListByCompany(ctx context.Context, company string, query entity.AssetQuery) ([]*entity.Asset, error) {
	tx := repo.db.WithContext(ctx).Where("company_name = ?", company)

	if pattern := likePattern(query.Search); pattern != "" {
		tx = tx.Where("LOWER(product_name) LIKE ?"+likeEscape, pattern)
	}

	switch query.Stock {
	case entity.StockAvailable:
		tx = tx.Where("product_quantity > 0")
	case entity.StockOut:
		tx = tx.Where("product_quantity = 0")
	case entity.StockLimited:
		tx = tx.Where("product_quantity > 0 AND product_quantity < ?", entity.LimitedStockMax)
	}

	if query.Type != "" {
		tx = tx.Where("product_type = ?", string(query.Type))
	}

	switch query.Sort {
	case entity.SortAsc:
		tx = tx.Order("product_quantity ASC").Order("id ASC")
	case entity.SortDesc:
		tx = tx.Order("product_quantity DESC").Order("id ASC")
	default:
		tx = tx.Order("date_added DESC").Order("id ASC")
	}

	var assetMs []*model.AssetModel
	if err := tx.Find(&assetMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list assets")
	}

	assets := make([]*entity.Asset, 0, len(assetMs))
	for _, m := range assetMs {
		assets = append(assets, toAssetDomain(m))
	}

	return assets, nil
}

// Create persists a new asset.
func (repo *assetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	if asset.ID == uuid.Nil {
		asset.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(fromAssetDomain(asset)).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("quantity cannot be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create asset")
	}

	return nil
}

// Update modifies name, type, quantity and image of an asset.
func (repo *assetRepository) Update(ctx context.Context, asset *entity.Asset) error {
	result := repo.db.WithContext(ctx).Model(&model.AssetModel{}).
		Where("id = ?", asset.ID).
		Updates(map[string]any{
			"product_name":     asset.ProductName,
			"product_type":     string(asset.ProductType),
			"product_quantity": asset.ProductQuantity,
			"image":            asset.Image,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("quantity cannot be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update asset")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAssetNotFound
	}

	return nil
}

// Delete removes an asset.
func (repo *assetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AssetModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete asset")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAssetNotFound
	}

	return nil
}

// AdjustQuantity adds delta to the quantity with a guarded single-statement update,
// so concurrent approvals cannot take stock below zero.
func (repo *assetRepository) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).Model(&model.AssetModel{}).
		Where("id = ? AND product_quantity + ? >= 0", id, delta).
		Update("product_quantity", gorm.Expr("product_quantity + ?", delta))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust asset quantity")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	if _, err := repo.FindByID(ctx, id); err != nil {
		return err
	}

	return repository.ErrInsufficientStock
}

func toAssetDomain(m *model.AssetModel) *entity.Asset {
	return &entity.Asset{
		ID:              m.ID,
		ProductName:     m.ProductName,
		ProductType:     entity.ProductType(m.ProductType),
		ProductQuantity: m.ProductQuantity,
		Image:           m.Image,
		Status:          m.ProductQuantity > 0,
		DateAdded:       m.DateAdded,
		CompanyName:     m.CompanyName,
		HREmail:         m.HREmail,
	}
}

func fromAssetDomain(a *entity.Asset) *model.AssetModel {
	return &model.AssetModel{
		ID:              a.ID,
		ProductName:     a.ProductName,
		ProductType:     string(a.ProductType),
		ProductQuantity: a.ProductQuantity,
		Image:           a.Image,
		DateAdded:       a.DateAdded,
		CompanyName:     a.CompanyName,
		HREmail:         a.HREmail,
	}
}
