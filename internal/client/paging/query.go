package paging

import (
	"context"
	"sync"
)

// FetchFunc loads the complete result set for a filter. It is the only data source of a Query.
type FetchFunc[T, F any] func(ctx context.Context, filter F) ([]T, error)

// Query is a paged view over a server-filtered list. It is safe for concurrent use;
// when fetches overlap only the most recently issued one is applied.
type Query[T, F any] struct {
	fetch    FetchFunc[T, F]
	pageSize int

	mu     sync.Mutex
	filter F
	items  []T
	page   int
	err    error
	gen    uint64
}

// New creates a query on page 1. Nothing is fetched until Load.
func New[T, F any](fetch FetchFunc[T, F], pageSize int, initial F) *Query[T, F] {
	if pageSize <= 0 {
		pageSize = 1
	}

	return &Query[T, F]{
		fetch:    fetch,
		pageSize: pageSize,
		filter:   initial,
		page:     1,
	}
}

// Load fetches with the current filter and keeps the current page, clamped to the new page count.
func (q *Query[T, F]) Load(ctx context.Context) error {
	filter, gen := q.begin(nil)

	return q.run(ctx, filter, gen)
}

// Refetch re-issues the current query, typically after a mutation.
func (q *Query[T, F]) Refetch(ctx context.Context) error {
	return q.Load(ctx)
}

// SetFilter replaces the filter, goes back to page 1 and fetches.
// The page is reset even when the fetch fails.
func (q *Query[T, F]) SetFilter(ctx context.Context, filter F) error {
	current, gen := q.begin(func(f *F) { *f = filter })

	return q.run(ctx, current, gen)
}

// Update edits the filter in place, goes back to page 1 and fetches.
func (q *Query[T, F]) Update(ctx context.Context, edit func(*F)) error {
	filter, gen := q.begin(edit)

	return q.run(ctx, filter, gen)
}

// begin applies edit (if any, resetting to page 1) and issues a new generation
// in the same critical section, so the snapshot and its generation always match.
func (q *Query[T, F]) begin(edit func(*F)) (F, uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if edit != nil {
		edit(&q.filter)
		q.page = 1
	}
	q.gen++

	return q.filter, q.gen
}

func (q *Query[T, F]) run(ctx context.Context, filter F, gen uint64) error {
	items, err := q.fetch(ctx, filter)

	q.mu.Lock()
	defer q.mu.Unlock()

	// A newer fetch was issued while this one was in flight; its result wins.
	if gen != q.gen {
		return nil
	}

	if err != nil {
		q.items = nil
		q.err = err
		q.page = 1

		return err
	}

	q.items = items
	q.err = nil
	q.page = min(q.page, max(1, PageCount(len(items), q.pageSize)))

	return nil
}

// GoTo moves to page n bounded to [1, max(1, TotalPages)] and reports whether the page changed.
func (q *Query[T, F]) GoTo(n int) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	n = min(max(n, 1), max(1, PageCount(len(q.items), q.pageSize)))
	if n == q.page {
		return false
	}
	q.page = n

	return true
}

// Next advances one page; a no-op on the last page.
func (q *Query[T, F]) Next() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.page >= PageCount(len(q.items), q.pageSize) {
		return false
	}
	q.page++

	return true
}

// Prev goes back one page; a no-op on page 1.
func (q *Query[T, F]) Prev() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.page <= 1 {
		return false
	}
	q.page--

	return true
}

// Items returns the visible page in server order.
func (q *Query[T, F]) Items() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	page := Slice(q.items, q.page, q.pageSize)
	out := make([]T, len(page))
	copy(out, page)

	return out
}

// All returns the whole result set of the last successful fetch.
func (q *Query[T, F]) All() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]T, len(q.items))
	copy(out, q.items)

	return out
}

func (q *Query[T, F]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}

func (q *Query[T, F]) Page() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.page
}

func (q *Query[T, F]) PageSize() int {
	return q.pageSize
}

func (q *Query[T, F]) TotalPages() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return PageCount(len(q.items), q.pageSize)
}

func (q *Query[T, F]) Filter() F {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.filter
}

// Err is the error of the last applied fetch, nil after a success.
func (q *Query[T, F]) Err() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.err
}
