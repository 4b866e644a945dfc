package impl

import (
	"context"
	"testing"

	"assethub/internal/domain/entity"
	domainerrors "assethub/internal/domain/errors"
	"assethub/internal/domain/repository"
	mockRepo "assethub/internal/mocks/repository"
	mockSvc "assethub/internal/mocks/service"
	"assethub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type assetServiceFixtures struct {
	service      *assetService
	userRepo     *mockRepo.MockUserRepository
	assetRepo    *mockRepo.MockAssetRepository
	requestRepo  *mockRepo.MockAssetRequestRepository
	labelService *mockSvc.MockLabelService
}

func createTestAssetService(t *testing.T) assetServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	assetRepo := mockRepo.NewMockAssetRepository(t)
	requestRepo := mockRepo.NewMockAssetRequestRepository(t)
	labelService := mockSvc.NewMockLabelService(t)

	srv := NewAssetService(AssetServiceParams{
		UserRepo:     userRepo,
		AssetRepo:    assetRepo,
		RequestRepo:  requestRepo,
		LabelService: labelService,
		Logger:       newDiscardLogger(),
	}).(*assetService)
	srv.now = fixedClock

	return assetServiceFixtures{
		service:      srv,
		userRepo:     userRepo,
		assetRepo:    assetRepo,
		requestRepo:  requestRepo,
		labelService: labelService,
	}
}

func TestAssetService_AddAsset(t *testing.T) {
	fx := createTestAssetService(t)
	hr := newHR("acme", 5)

	fx.userRepo.On("FindByEmail", mock.Anything, hr.Email).Return(hr, nil)
	fx.assetRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Asset")).Return(nil)

	asset, err := fx.service.AddAsset(context.Background(), hr.Email, usecase.AssetInput{
		ProductName:     " Laptop ",
		ProductType:     entity.ProductReturnable,
		ProductQuantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Laptop", asset.ProductName)
	assert.Equal(t, "acme", asset.CompanyName)
	assert.Equal(t, hr.Email, asset.HREmail)
	assert.True(t, asset.Status)
	assert.Equal(t, fixedNow, asset.DateAdded)
}

func TestAssetService_AddAsset_EmployeeForbidden(t *testing.T) {
	fx := createTestAssetService(t)
	employee := newEmployee("emil@acme.test", strPtr("acme"))

	fx.userRepo.On("FindByEmail", mock.Anything, employee.Email).Return(employee, nil)

	_, err := fx.service.AddAsset(context.Background(), employee.Email, usecase.AssetInput{ProductName: "x", ProductType: entity.ProductReturnable})
	requireAppError(t, err, domainerrors.ErrForbidden)
}

func TestAssetService_ListRequestableAssets(t *testing.T) {
	query := entity.AssetQuery{Search: "lap", Stock: entity.StockAvailable}

	t.Run("unaffiliated employee sees nothing", func(t *testing.T) {
		fx := createTestAssetService(t)
		solo := newEmployee("solo@example.com", nil)

		fx.userRepo.On("FindByEmail", mock.Anything, solo.Email).Return(solo, nil)

		assets, err := fx.service.ListRequestableAssets(context.Background(), solo.Email, query)
		require.NoError(t, err)
		assert.Empty(t, assets)
		fx.assetRepo.AssertNotCalled(t, "ListByCompany", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("member sees company inventory", func(t *testing.T) {
		fx := createTestAssetService(t)
		member := newEmployee("emil@acme.test", strPtr("acme"))
		want := []*entity.Asset{{ID: uuid.New(), ProductName: "Laptop", ProductQuantity: 2, CompanyName: "acme"}}

		fx.userRepo.On("FindByEmail", mock.Anything, member.Email).Return(member, nil)
		fx.assetRepo.On("ListByCompany", mock.Anything, "acme", query).Return(want, nil)

		assets, err := fx.service.ListRequestableAssets(context.Background(), member.Email, query)
		require.NoError(t, err)
		assert.Equal(t, want, assets)
	})
}

func TestAssetService_UpdateAsset_OtherCompany(t *testing.T) {
	fx := createTestAssetService(t)
	hr := newHR("acme", 5)
	foreign := &entity.Asset{ID: uuid.New(), CompanyName: "globex"}

	fx.userRepo.On("FindByEmail", mock.Anything, hr.Email).Return(hr, nil)
	fx.assetRepo.On("FindByID", mock.Anything, foreign.ID).Return(foreign, nil)

	_, err := fx.service.UpdateAsset(context.Background(), hr.Email, foreign.ID, usecase.AssetInput{ProductName: "Desk", ProductType: entity.ProductReturnable})
	requireAppError(t, err, domainerrors.ErrNotInCompany)
}

func TestAssetService_DeleteAsset_NotFound(t *testing.T) {
	fx := createTestAssetService(t)
	hr := newHR("acme", 5)
	id := uuid.New()

	fx.userRepo.On("FindByEmail", mock.Anything, hr.Email).Return(hr, nil)
	fx.assetRepo.On("FindByID", mock.Anything, id).Return(nil, repository.ErrAssetNotFound)

	err := fx.service.DeleteAsset(context.Background(), hr.Email, id)
	requireAppError(t, err, domainerrors.ErrAssetNotFound)
}

func TestAssetService_AssetLabel(t *testing.T) {
	fx := createTestAssetService(t)
	hr := newHR("acme", 5)
	asset := &entity.Asset{ID: uuid.New(), CompanyName: "acme"}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.userRepo.On("FindByEmail", mock.Anything, hr.Email).Return(hr, nil)
	fx.assetRepo.On("FindByID", mock.Anything, asset.ID).Return(asset, nil)
	fx.labelService.On("GenerateAssetLabel", asset.ID, "acme").Return(png, nil)

	got, err := fx.service.AssetLabel(context.Background(), hr.Email, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestAssetService_Stats(t *testing.T) {
	fx := createTestAssetService(t)
	hr := newHR("acme", 5)
	limited := []*entity.Asset{{ID: uuid.New(), ProductName: "Chair", ProductQuantity: 2}}

	fx.userRepo.On("FindByEmail", mock.Anything, hr.Email).Return(hr, nil)
	fx.requestRepo.On("List", mock.Anything, repository.RequestScope{CompanyName: "acme"}, entity.RequestQuery{Status: entity.StatusPending}).
		Return([]*entity.AssetRequest{{}, {}}, nil)
	fx.requestRepo.On("CountByType", mock.Anything, "acme").
		Return(map[entity.ProductType]int{entity.ProductReturnable: 7, entity.ProductNonReturnable: 3}, nil)
	fx.assetRepo.On("ListByCompany", mock.Anything, "acme", entity.AssetQuery{Stock: entity.StockLimited, Sort: entity.SortAsc}).
		Return(limited, nil)
	fx.requestRepo.On("TopRequested", mock.Anything, "acme", topRequestedLimit).Return([]string{"Laptop", "Chair"}, nil)

	stats, err := fx.service.Stats(context.Background(), hr.Email)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.PendingRequests)
	assert.Equal(t, 7, stats.ReturnableRequests)
	assert.Equal(t, 3, stats.NonReturnableRequests)
	assert.Equal(t, limited, stats.LimitedStock)
	assert.Equal(t, []string{"Laptop", "Chair"}, stats.TopRequested)
}
