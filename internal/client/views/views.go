// Package views assembles every list screen from a paged query, its row rendering,
// its empty-state copy and the actions each row offers.
package views

import (
	"context"

	"assethub/internal/client/action"
	"assethub/internal/client/paging"
	"assethub/internal/domain/entity"
)

// Empty-state copy.
const (
	NoCompany     = "Company Affiliation Needed"
	NoCompanyHint = "Ask your HR manager to add you to a team."
	NoResults     = "Nothing matches your filters"
)

// Backend is the REST API as the list screens use it; *api.Client implements it.
type Backend interface {
	action.RequestAPI
	action.AssetAPI
	action.TeamAPI

	CompanyAssets(ctx context.Context, email string, filter paging.AssetFilter) ([]*entity.Asset, error)
	RequestableAssets(ctx context.Context, email string, filter paging.AssetFilter) ([]*entity.Asset, error)
	CompanyRequests(ctx context.Context, email string, filter paging.RequestFilter) ([]*entity.AssetRequest, error)
	PendingRequests(ctx context.Context, email string) ([]*entity.AssetRequest, error)
	EmployeeRequests(ctx context.Context, email string, filter paging.RequestFilter) ([]*entity.AssetRequest, error)
	MonthlyRequests(ctx context.Context, email string, filter paging.RequestFilter) ([]*entity.AssetRequest, error)
	Team(ctx context.Context, email string, filter paging.TeamFilter) ([]*entity.User, error)
	Unaffiliated(ctx context.Context) ([]*entity.User, error)
}

// Column is a table header with its preferred width.
type Column struct {
	Title string
	Width int
}

// List is one list screen.
type List interface {
	Title() string
	Columns() []Column
	// Rows renders the visible page.
	Rows() [][]string
	Load(ctx context.Context) error
	Refetch(ctx context.Context) error
	// Search changes the free-text filter; false when the list has none.
	Search(ctx context.Context, term string) (bool, error)
	Next() bool
	Prev() bool
	Page() int
	TotalPages() int
	Len() int
	// Empty is the copy shown when there are no rows.
	Empty() string
	Err() error
	// Actions lists what the viewer may do with visible row i.
	Actions(i int) []action.Action
}

// list is the one List implementation, parametrised by item and filter type.
type list[T, F any] struct {
	title   string
	columns []Column
	query   *paging.Query[T, F]
	row     func(T) []string
	actions func(T) []action.Action
	search  func(*F, string)
	empty   func() string
}

func (l *list[T, F]) Title() string {
	return l.title
}

func (l *list[T, F]) Columns() []Column {
	return l.columns
}

func (l *list[T, F]) Rows() [][]string {
	items := l.query.Items()
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = l.row(item)
	}

	return rows
}

func (l *list[T, F]) Load(ctx context.Context) error {
	return l.query.Load(ctx)
}

func (l *list[T, F]) Refetch(ctx context.Context) error {
	return l.query.Refetch(ctx)
}

func (l *list[T, F]) Search(ctx context.Context, term string) (bool, error) {
	if l.search == nil {
		return false, nil
	}

	return true, l.query.Update(ctx, func(f *F) { l.search(f, term) })
}

func (l *list[T, F]) Next() bool {
	return l.query.Next()
}

func (l *list[T, F]) Prev() bool {
	return l.query.Prev()
}

func (l *list[T, F]) Page() int {
	return l.query.Page()
}

func (l *list[T, F]) TotalPages() int {
	return l.query.TotalPages()
}

func (l *list[T, F]) Len() int {
	return l.query.Len()
}

func (l *list[T, F]) Empty() string {
	if l.empty != nil {
		return l.empty()
	}

	return NoResults
}

func (l *list[T, F]) Err() error {
	return l.query.Err()
}

func (l *list[T, F]) Actions(i int) []action.Action {
	items := l.query.Items()
	if l.actions == nil || i < 0 || i >= len(items) {
		return nil
	}

	return l.actions(items[i])
}

// Query exposes the paged query of a list built by this package, for filter controls.
func Query[T, F any](l List) (*paging.Query[T, F], bool) {
	typed, ok := l.(*list[T, F])
	if !ok {
		return nil, false
	}

	return typed.query, true
}
