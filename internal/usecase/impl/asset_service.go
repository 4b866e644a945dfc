package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "assethub/internal/delivery/context"
	"assethub/internal/domain/entity"
	domainerrors "assethub/internal/domain/errors"
	"assethub/internal/domain/repository"
	"assethub/internal/domain/service"
	"assethub/internal/errors"
	"assethub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const topRequestedLimit = 4

// assetService implements the AssetUsecase interface.
type assetService struct {
	userRepo     repository.UserRepository
	assetRepo    repository.AssetRepository
	requestRepo  repository.AssetRequestRepository
	labelService service.LabelService
	logger       *slog.Logger
	now          func() time.Time
}

// AssetServiceParams holds dependencies for AssetService, injected by Fx.
type AssetServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	AssetRepo    repository.AssetRepository
	RequestRepo  repository.AssetRequestRepository
	LabelService service.LabelService
	Logger       *slog.Logger
}

// NewAssetService is the constructor for assetService.
func NewAssetService(params AssetServiceParams) usecase.AssetUsecase {
	return &assetService{
		userRepo:     params.UserRepo,
		assetRepo:    params.AssetRepo,
		requestRepo:  params.RequestRepo,
		labelService: params.LabelService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *assetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCompanyAssets lists the inventory of the HR manager's company.
func (srv *assetService) ListCompanyAssets(ctx context.Context, hrEmail string, query entity.AssetQuery) ([]*entity.Asset, error) {
	hr, err := loadHR(ctx, srv.userRepo, hrEmail)
	if err != nil {
		return nil, err
	}

	assets, err := srv.assetRepo.ListByCompany(ctx, hr.Company(), query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list company assets")
	}

	return assets, nil
}

// ListRequestableAssets lists the assets of the employee's company.
// An unaffiliated employee gets an empty list rather than an error.
func (srv *assetService) ListRequestableAssets(ctx context.Context, employeeEmail string, query entity.AssetQuery) ([]*entity.Asset, error) {
	employee, err := loadEmployee(ctx, srv.userRepo, employeeEmail)
	if err != nil {
		return nil, err
	}
	if !employee.HasCompany() {
		return []*entity.Asset{}, nil
	}

	assets, err := srv.assetRepo.ListByCompany(ctx, employee.Company(), query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requestable assets")
	}

	return assets, nil
}

// AddAsset creates an asset in the HR manager's company.
func (srv *assetService) AddAsset(ctx context.Context, hrEmail string, input usecase.AssetInput) (*entity.Asset, error) {
	hr, err := loadHR(ctx, srv.userRepo, hrEmail)
	if err != nil {
		return nil, err
	}

	asset := &entity.Asset{
		ID:              uuid.New(),
		ProductName:     strings.TrimSpace(input.ProductName),
		ProductType:     input.ProductType,
		ProductQuantity: input.ProductQuantity,
		Image:           input.Image,
		Status:          input.ProductQuantity > 0,
		DateAdded:       srv.now(),
		CompanyName:     hr.Company(),
		HREmail:         hr.Email,
	}

	if err := srv.assetRepo.Create(ctx, asset); err != nil {
		return nil, errors.Wrap(err, "failed to create asset")
	}

	srv.log(ctx).Info("Asset added", slog.String("assetID", asset.ID.String()), slog.String("company", asset.CompanyName))

	return asset, nil
}

// UpdateAsset edits an asset of the HR manager's company.
func (srv *assetService) UpdateAsset(ctx context.Context, hrEmail string, id uuid.UUID, input usecase.AssetInput) (*entity.Asset, error) {
	asset, err := srv.ownedAsset(ctx, hrEmail, id)
	if err != nil {
		return nil, err
	}

	asset.ProductName = strings.TrimSpace(input.ProductName)
	asset.ProductType = input.ProductType
	asset.ProductQuantity = input.ProductQuantity
	asset.Image = input.Image
	asset.Status = input.ProductQuantity > 0

	if err := srv.assetRepo.Update(ctx, asset); err != nil {
		return nil, errors.Wrap(err, "failed to update asset")
	}

	return asset, nil
}

// DeleteAsset removes an asset of the HR manager's company.
func (srv *assetService) DeleteAsset(ctx context.Context, hrEmail string, id uuid.UUID) error {
	if _, err := srv.ownedAsset(ctx, hrEmail, id); err != nil {
		return err
	}

	if err := srv.assetRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return domainerrors.ErrAssetNotFound
		}

		return errors.Wrap(err, "failed to delete asset")
	}

	srv.log(ctx).Info("Asset deleted", slog.String("assetID", id.String()))

	return nil
}

// AssetLabel renders the QR tag of an asset.
func (srv *assetService) AssetLabel(ctx context.Context, hrEmail string, id uuid.UUID) ([]byte, error) {
	asset, err := srv.ownedAsset(ctx, hrEmail, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.labelService.GenerateAssetLabel(asset.ID, asset.CompanyName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate asset label")
	}

	return png, nil
}

// Stats summarises requests and stock for the HR home view.
func (srv *assetService) Stats(ctx context.Context, hrEmail string) (*entity.HRStats, error) {
	hr, err := loadHR(ctx, srv.userRepo, hrEmail)
	if err != nil {
		return nil, err
	}
	company := hr.Company()

	pending, err := srv.requestRepo.List(ctx, repository.RequestScope{CompanyName: company}, entity.RequestQuery{Status: entity.StatusPending})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending requests")
	}

	byType, err := srv.requestRepo.CountByType(ctx, company)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count requests by type")
	}

	limited, err := srv.assetRepo.ListByCompany(ctx, company, entity.AssetQuery{Stock: entity.StockLimited, Sort: entity.SortAsc})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list limited stock")
	}

	top, err := srv.requestRepo.TopRequested(ctx, company, topRequestedLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list top requested assets")
	}

	return &entity.HRStats{
		PendingRequests:       len(pending),
		ReturnableRequests:    byType[entity.ProductReturnable],
		NonReturnableRequests: byType[entity.ProductNonReturnable],
		LimitedStock:          limited,
		TopRequested:          top,
	}, nil
}

// ownedAsset loads an asset and checks that it belongs to the HR manager's company.
func (srv *assetService) ownedAsset(ctx context.Context, hrEmail string, id uuid.UUID) (*entity.Asset, error) {
	hr, err := loadHR(ctx, srv.userRepo, hrEmail)
	if err != nil {
		return nil, err
	}

	asset, err := srv.assetRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return nil, domainerrors.ErrAssetNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset")
	}

	if asset.CompanyName != hr.Company() {
		return nil, domainerrors.ErrNotInCompany
	}

	return asset, nil
}
