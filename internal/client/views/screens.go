package views

import (
	"context"
	"strconv"

	"assethub/internal/client/action"
	"assethub/internal/client/paging"
	"assethub/internal/domain/entity"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var (
	assetColumns = []Column{
		{Title: "Name", Width: 24},
		{Title: "Type", Width: 15},
		{Title: "Qty", Width: 5},
		{Title: "Stock", Width: 12},
		{Title: "Added", Width: 10},
	}
	requestColumns = []Column{
		{Title: "Asset", Width: 22},
		{Title: "Type", Width: 15},
		{Title: "Requester", Width: 22},
		{Title: "Requested", Width: 10},
		{Title: "Status", Width: 10},
	}
	memberColumns = []Column{
		{Title: "Name", Width: 22},
		{Title: "Email", Width: 28},
		{Title: "Role", Width: 9},
	}
)

func assetRow(a *entity.Asset) []string {
	stock := "out of stock"
	switch {
	case a.IsLimited():
		stock = "limited"
	case a.InStock():
		stock = "available"
	}

	return []string{a.ProductName, string(a.ProductType), strconv.Itoa(a.ProductQuantity), stock, a.DateAdded.Format(dateLayout)}
}

func requestRow(r *entity.AssetRequest) []string {
	return []string{r.AssetName, string(r.AssetType), r.RequesterName, r.RequestDate.Format(dateLayout), string(r.Status)}
}

func memberRow(u *entity.User) []string {
	return []string{u.Name, u.Email, string(u.Role)}
}

func searchAssets(f *paging.AssetFilter, term string) {
	f.Search = term
}

func searchRequests(f *paging.RequestFilter, term string) {
	f.Search = term
}

func requestActions(backend Backend, viewer *entity.Viewer) func(*entity.AssetRequest) []action.Action {
	return func(r *entity.AssetRequest) []action.Action {
		return action.RequestActions(backend, viewer, r)
	}
}

// Inventory is the HR manager's asset list.
func Inventory(backend Backend, viewer *entity.Viewer) List {
	return &list[*entity.Asset, paging.AssetFilter]{
		title:   "Asset inventory",
		columns: assetColumns,
		query: paging.New(func(ctx context.Context, f paging.AssetFilter) ([]*entity.Asset, error) {
			return backend.CompanyAssets(ctx, viewer.Email, f)
		}, paging.InventoryPageSize, paging.AssetFilter{}),
		row: assetRow,
		actions: func(a *entity.Asset) []action.Action {
			return []action.Action{action.DeleteAsset(backend, a)}
		},
		search: searchAssets,
	}
}

// Requestable lists the assets an employee may request. Without a company nothing is fetched.
func Requestable(backend Backend, viewer *entity.Viewer) List {
	return &list[*entity.Asset, paging.AssetFilter]{
		title:   "Request an asset",
		columns: assetColumns,
		query: paging.New(func(ctx context.Context, f paging.AssetFilter) ([]*entity.Asset, error) {
			if !viewer.HasCompany() {
				return nil, nil
			}

			return backend.RequestableAssets(ctx, viewer.Email, f)
		}, paging.RequestablePageSize, paging.AssetFilter{}),
		row: assetRow,
		actions: func(a *entity.Asset) []action.Action {
			if !a.InStock() {
				return nil
			}

			return []action.Action{action.CreateRequest(backend, a, "")}
		},
		search: searchAssets,
		empty:  affiliationEmpty(viewer),
	}
}

// AllRequests is every request of the HR manager's company, filtered by the server.
func AllRequests(backend Backend, viewer *entity.Viewer) List {
	return &list[*entity.AssetRequest, paging.RequestFilter]{
		title:   "All requests",
		columns: requestColumns,
		query: paging.New(func(ctx context.Context, f paging.RequestFilter) ([]*entity.AssetRequest, error) {
			return backend.CompanyRequests(ctx, viewer.Email, f)
		}, paging.AllRequestsPageSize, paging.RequestFilter{}),
		row:     requestRow,
		actions: requestActions(backend, viewer),
		search:  searchRequests,
	}
}

// Pending is the HR manager's pending requests. The endpoint takes no filters.
func Pending(backend Backend, viewer *entity.Viewer) List {
	return &list[*entity.AssetRequest, struct{}]{
		title:   "Pending requests",
		columns: requestColumns,
		query: paging.New(func(ctx context.Context, _ struct{}) ([]*entity.AssetRequest, error) {
			return backend.PendingRequests(ctx, viewer.Email)
		}, paging.PendingPageSize, struct{}{}),
		row:     requestRow,
		actions: requestActions(backend, viewer),
		empty:   func() string { return "No pending requests" },
	}
}

// MyRequests is the employee's own requests.
func MyRequests(backend Backend, viewer *entity.Viewer) List {
	return &list[*entity.AssetRequest, paging.RequestFilter]{
		title:   "My assets",
		columns: requestColumns,
		query: paging.New(func(ctx context.Context, f paging.RequestFilter) ([]*entity.AssetRequest, error) {
			return backend.EmployeeRequests(ctx, viewer.Email, f)
		}, paging.MyRequestsPageSize, paging.RequestFilter{}),
		row:     requestRow,
		actions: requestActions(backend, viewer),
		search:  searchRequests,
	}
}

// Monthly is the employee's requests of the current month.
func Monthly(backend Backend, viewer *entity.Viewer) List {
	return &list[*entity.AssetRequest, paging.RequestFilter]{
		title:   "This month",
		columns: requestColumns,
		query: paging.New(func(ctx context.Context, f paging.RequestFilter) ([]*entity.AssetRequest, error) {
			return backend.MonthlyRequests(ctx, viewer.Email, f)
		}, paging.MonthlyPageSize, paging.RequestFilter{}),
		row:     requestRow,
		actions: requestActions(backend, viewer),
		search:  searchRequests,
		empty:   func() string { return "No requests this month" },
	}
}

// Team is the viewer's company roster. An unaffiliated employee never reaches the roster endpoint.
func Team(backend Backend, viewer *entity.Viewer) List {
	return &list[*entity.User, paging.TeamFilter]{
		title:   "My team",
		columns: memberColumns,
		query: paging.New(func(ctx context.Context, f paging.TeamFilter) ([]*entity.User, error) {
			if !viewer.HasCompany() {
				return nil, nil
			}

			return backend.Team(ctx, viewer.Email, f)
		}, paging.TeamPageSize, paging.TeamFilter{}),
		row: memberRow,
		actions: func(u *entity.User) []action.Action {
			if viewer.Role != entity.RoleHR || u.Role != entity.RoleEmployee {
				return nil
			}

			return []action.Action{action.RemoveEmployee(backend, viewer.Email, u)}
		},
		search: func(f *paging.TeamFilter, term string) { f.Search = term },
		empty:  affiliationEmpty(viewer),
	}
}

// Unaffiliated lists employees without a company that HR may onboard.
func Unaffiliated(backend Backend, viewer *entity.Viewer) List {
	return &list[*entity.User, struct{}]{
		title:   "Add employees",
		columns: memberColumns,
		query: paging.New(func(ctx context.Context, _ struct{}) ([]*entity.User, error) {
			return backend.Unaffiliated(ctx)
		}, paging.UnaffiliatedPageSize, struct{}{}),
		row: memberRow,
		actions: func(u *entity.User) []action.Action {
			return []action.Action{action.AddEmployees(backend, []uuid.UUID{u.ID})}
		},
		empty: func() string { return "Every employee already belongs to a company" },
	}
}

func affiliationEmpty(viewer *entity.Viewer) func() string {
	return func() string {
		if !viewer.HasCompany() {
			return NoCompany
		}

		return NoResults
	}
}
