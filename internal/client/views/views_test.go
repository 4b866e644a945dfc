package views

import (
	"context"
	"testing"
	"time"

	"assethub/internal/client/paging"
	"assethub/internal/domain/entity"
	"assethub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) CreateRequest(ctx context.Context, input usecase.CreateRequestInput) (*entity.AssetRequest, error) {
	args := m.Called(ctx, input)
	req, _ := args.Get(0).(*entity.AssetRequest)

	return req, args.Error(1)
}

func (m *mockBackend) DecideRequest(ctx context.Context, id uuid.UUID, status entity.RequestStatus) (*entity.AssetRequest, error) {
	args := m.Called(ctx, id, status)
	req, _ := args.Get(0).(*entity.AssetRequest)

	return req, args.Error(1)
}

func (m *mockBackend) CancelRequest(ctx context.Context, id uuid.UUID) (*entity.AssetRequest, error) {
	args := m.Called(ctx, id)
	req, _ := args.Get(0).(*entity.AssetRequest)

	return req, args.Error(1)
}

func (m *mockBackend) ReturnAsset(ctx context.Context, id uuid.UUID) (*entity.AssetRequest, error) {
	args := m.Called(ctx, id)
	req, _ := args.Get(0).(*entity.AssetRequest)

	return req, args.Error(1)
}

func (m *mockBackend) AddAsset(ctx context.Context, input usecase.AssetInput) (*entity.Asset, error) {
	args := m.Called(ctx, input)
	asset, _ := args.Get(0).(*entity.Asset)

	return asset, args.Error(1)
}

func (m *mockBackend) UpdateAsset(ctx context.Context, id uuid.UUID, input usecase.AssetInput) (*entity.Asset, error) {
	args := m.Called(ctx, id, input)
	asset, _ := args.Get(0).(*entity.Asset)

	return asset, args.Error(1)
}

func (m *mockBackend) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBackend) AddEmployees(ctx context.Context, ids []uuid.UUID) (*entity.Viewer, error) {
	args := m.Called(ctx, ids)
	viewer, _ := args.Get(0).(*entity.Viewer)

	return viewer, args.Error(1)
}

func (m *mockBackend) RemoveEmployee(ctx context.Context, id uuid.UUID, hrEmail string) error {
	return m.Called(ctx, id, hrEmail).Error(0)
}

func (m *mockBackend) CompanyAssets(ctx context.Context, email string, filter paging.AssetFilter) ([]*entity.Asset, error) {
	args := m.Called(ctx, email, filter)
	assets, _ := args.Get(0).([]*entity.Asset)

	return assets, args.Error(1)
}

func (m *mockBackend) RequestableAssets(ctx context.Context, email string, filter paging.AssetFilter) ([]*entity.Asset, error) {
	args := m.Called(ctx, email, filter)
	assets, _ := args.Get(0).([]*entity.Asset)

	return assets, args.Error(1)
}

func (m *mockBackend) CompanyRequests(ctx context.Context, email string, filter paging.RequestFilter) ([]*entity.AssetRequest, error) {
	args := m.Called(ctx, email, filter)
	reqs, _ := args.Get(0).([]*entity.AssetRequest)

	return reqs, args.Error(1)
}

func (m *mockBackend) PendingRequests(ctx context.Context, email string) ([]*entity.AssetRequest, error) {
	args := m.Called(ctx, email)
	reqs, _ := args.Get(0).([]*entity.AssetRequest)

	return reqs, args.Error(1)
}

func (m *mockBackend) EmployeeRequests(ctx context.Context, email string, filter paging.RequestFilter) ([]*entity.AssetRequest, error) {
	args := m.Called(ctx, email, filter)
	reqs, _ := args.Get(0).([]*entity.AssetRequest)

	return reqs, args.Error(1)
}

func (m *mockBackend) MonthlyRequests(ctx context.Context, email string, filter paging.RequestFilter) ([]*entity.AssetRequest, error) {
	args := m.Called(ctx, email, filter)
	reqs, _ := args.Get(0).([]*entity.AssetRequest)

	return reqs, args.Error(1)
}

func (m *mockBackend) Team(ctx context.Context, email string, filter paging.TeamFilter) ([]*entity.User, error) {
	args := m.Called(ctx, email, filter)
	users, _ := args.Get(0).([]*entity.User)

	return users, args.Error(1)
}

func (m *mockBackend) Unaffiliated(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*entity.User)

	return users, args.Error(1)
}

func strPtr(s string) *string {
	return &s
}

func TestTeam_UnaffiliatedEmployeeNeverFetchesRoster(t *testing.T) {
	backend := new(mockBackend)
	viewer := &entity.Viewer{Email: "sam@example.com", Role: entity.RoleEmployee}

	view := Team(backend, viewer)
	require.NoError(t, view.Load(context.Background()))

	assert.Equal(t, 0, view.Len())
	assert.Empty(t, view.Rows())
	assert.Equal(t, NoCompany, view.Empty())
	backend.AssertNotCalled(t, "Team", mock.Anything, mock.Anything, mock.Anything)

	searchable, err := view.Search(context.Background(), "ann")
	require.NoError(t, err)
	assert.True(t, searchable)
	backend.AssertNotCalled(t, "Team", mock.Anything, mock.Anything, mock.Anything)
}

func TestTeam_HRMayRemoveEmployeesOnly(t *testing.T) {
	backend := new(mockBackend)
	viewer := &entity.Viewer{Email: "hr@acme.io", Role: entity.RoleHR, CompanyName: strPtr("Acme")}
	members := []*entity.User{
		{ID: uuid.New(), Name: "Helen", Email: "hr@acme.io", Role: entity.RoleHR},
		{ID: uuid.New(), Name: "Sam", Email: "sam@acme.io", Role: entity.RoleEmployee},
	}
	backend.On("Team", mock.Anything, "hr@acme.io", paging.TeamFilter{}).Return(members, nil).Once()

	view := Team(backend, viewer)
	require.NoError(t, view.Load(context.Background()))

	assert.Equal(t, [][]string{
		{"Helen", "hr@acme.io", "hr"},
		{"Sam", "sam@acme.io", "employee"},
	}, view.Rows())
	assert.Empty(t, view.Actions(0))

	actions := view.Actions(1)
	require.Len(t, actions, 1)
	assert.Equal(t, "remove employee", actions[0].Name)
	assert.True(t, actions[0].Destructive())

	backend.On("RemoveEmployee", mock.Anything, members[1].ID, "hr@acme.io").Return(nil).Once()
	require.NoError(t, actions[0].Do(context.Background()))
	backend.AssertExpectations(t)
}

func TestTeam_EmployeeHasNoActions(t *testing.T) {
	backend := new(mockBackend)
	viewer := &entity.Viewer{Email: "sam@acme.io", Role: entity.RoleEmployee, CompanyName: strPtr("Acme")}
	backend.On("Team", mock.Anything, "sam@acme.io", paging.TeamFilter{}).
		Return([]*entity.User{{ID: uuid.New(), Name: "Ann", Email: "ann@acme.io", Role: entity.RoleEmployee}}, nil)

	view := Team(backend, viewer)
	require.NoError(t, view.Load(context.Background()))

	assert.Empty(t, view.Actions(0))
	assert.Equal(t, NoResults, view.Empty())
}

func TestInventory_SearchGoesToServerAndResetsPage(t *testing.T) {
	backend := new(mockBackend)
	viewer := &entity.Viewer{Email: "hr@acme.io", Role: entity.RoleHR, CompanyName: strPtr("Acme")}
	added := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	all := make([]*entity.Asset, 0, 10)
	for i := 0; i < 10; i++ {
		all = append(all, &entity.Asset{ID: uuid.New(), ProductName: "Chair", ProductType: entity.ProductReturnable, ProductQuantity: 12, DateAdded: added})
	}
	macs := []*entity.Asset{
		{ID: uuid.New(), ProductName: "MacBook", ProductType: entity.ProductReturnable, ProductQuantity: 2, DateAdded: added},
		{ID: uuid.New(), ProductName: "Mac Mini", ProductType: entity.ProductReturnable, ProductQuantity: 0, DateAdded: added},
	}
	backend.On("CompanyAssets", mock.Anything, "hr@acme.io", paging.AssetFilter{}).Return(all, nil).Once()
	backend.On("CompanyAssets", mock.Anything, "hr@acme.io", paging.AssetFilter{Search: "mac"}).Return(macs, nil).Once()

	view := Inventory(backend, viewer)
	require.NoError(t, view.Load(context.Background()))
	assert.Equal(t, 2, view.TotalPages())
	require.True(t, view.Next())
	assert.Equal(t, 2, view.Page())

	searchable, err := view.Search(context.Background(), "mac")
	require.NoError(t, err)
	assert.True(t, searchable)
	assert.Equal(t, 1, view.Page())
	assert.Equal(t, [][]string{
		{"MacBook", "Returnable", "2", "limited", "2026-03-01"},
		{"Mac Mini", "Returnable", "0", "out of stock", "2026-03-01"},
	}, view.Rows())

	query, ok := Query[*entity.Asset, paging.AssetFilter](view)
	require.True(t, ok)
	assert.Equal(t, "mac", query.Filter().Search)
	backend.AssertExpectations(t)
}

func TestRequestable_OutOfStockOffersNoRequest(t *testing.T) {
	backend := new(mockBackend)
	viewer := &entity.Viewer{Email: "sam@acme.io", Role: entity.RoleEmployee, CompanyName: strPtr("Acme")}
	backend.On("RequestableAssets", mock.Anything, "sam@acme.io", paging.AssetFilter{}).Return([]*entity.Asset{
		{ID: uuid.New(), ProductName: "Monitor", ProductQuantity: 0},
		{ID: uuid.New(), ProductName: "Keyboard", ProductQuantity: 9},
	}, nil)

	view := Requestable(backend, viewer)
	require.NoError(t, view.Load(context.Background()))

	assert.Empty(t, view.Actions(0))
	require.Len(t, view.Actions(1), 1)
	assert.Equal(t, "request Keyboard", view.Actions(1)[0].Name)
	assert.Nil(t, view.Actions(5))
}

func TestRequestable_Unaffiliated(t *testing.T) {
	backend := new(mockBackend)
	viewer := &entity.Viewer{Email: "sam@example.com", Role: entity.RoleEmployee}

	view := Requestable(backend, viewer)
	require.NoError(t, view.Load(context.Background()))

	assert.Equal(t, NoCompany, view.Empty())
	backend.AssertNotCalled(t, "RequestableAssets", mock.Anything, mock.Anything, mock.Anything)
}

func TestPending_HasNoSearch(t *testing.T) {
	backend := new(mockBackend)
	viewer := &entity.Viewer{Email: "hr@acme.io", Role: entity.RoleHR, CompanyName: strPtr("Acme")}
	req := &entity.AssetRequest{
		ID: uuid.New(), AssetName: "Laptop", AssetType: entity.ProductReturnable, RequesterName: "Sam",
		RequesterEmail: "sam@acme.io", RequestDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Status: entity.StatusPending,
	}
	backend.On("PendingRequests", mock.Anything, "hr@acme.io").Return([]*entity.AssetRequest{req}, nil).Once()

	view := Pending(backend, viewer)
	require.NoError(t, view.Load(context.Background()))

	searchable, err := view.Search(context.Background(), "laptop")
	require.NoError(t, err)
	assert.False(t, searchable)
	assert.Equal(t, [][]string{{"Laptop", "Returnable", "Sam", "2026-03-02", "pending"}}, view.Rows())

	names := make([]string, 0)
	for _, a := range view.Actions(0) {
		names = append(names, a.Name)
	}
	assert.ElementsMatch(t, []string{"approve request", "reject request"}, names)
	backend.AssertExpectations(t)
}

func TestList_FailedLoadKeepsError(t *testing.T) {
	backend := new(mockBackend)
	viewer := &entity.Viewer{Email: "sam@acme.io", Role: entity.RoleEmployee, CompanyName: strPtr("Acme")}
	backend.On("EmployeeRequests", mock.Anything, "sam@acme.io", paging.RequestFilter{}).Return(nil, assert.AnError)

	view := MyRequests(backend, viewer)
	err := view.Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, view.Err(), assert.AnError)
	assert.Equal(t, 0, view.Len())
}
