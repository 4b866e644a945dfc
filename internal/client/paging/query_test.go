package paging

import (
	"context"
	"strings"
	"sync"
	"testing"

	"assethub/internal/domain/entity"
	"assethub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend filters a fixed data set the way the server would and counts calls.
type fakeBackend struct {
	mu      sync.Mutex
	data    []string
	calls   []RequestFilter
	failing bool
}

func (b *fakeBackend) fetch(_ context.Context, f RequestFilter) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.calls = append(b.calls, f)
	if b.failing {
		return nil, errors.New("backend unavailable")
	}

	var out []string
	for _, item := range b.data {
		if strings.Contains(item, f.Search) {
			out = append(out, item)
		}
	}

	return out, nil
}

func names(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + string(rune('a'+i))
	}

	return out
}

func TestQuery_SevenPendingRequests(t *testing.T) {
	backend := &fakeBackend{data: names("req-", 7)}
	q := New(backend.fetch, PendingPageSize, RequestFilter{Status: entity.StatusPending})
	require.NoError(t, q.Load(context.Background()))

	assert.Equal(t, 2, q.TotalPages())
	assert.Equal(t, backend.data[:5], q.Items())

	assert.True(t, q.Next())
	assert.Equal(t, 2, q.Page())
	assert.Equal(t, backend.data[5:], q.Items())

	assert.False(t, q.Next(), "next on the last page is a no-op")
	assert.Equal(t, 2, q.Page())

	assert.True(t, q.Prev())
	assert.False(t, q.Prev(), "prev on page 1 is a no-op")
	assert.Equal(t, 1, q.Page())
}

func TestQuery_FilterChangeResetsPage(t *testing.T) {
	backend := &fakeBackend{data: append(names("laptop-", 12), names("chair-", 3)...)}
	q := New(backend.fetch, 5, RequestFilter{})
	require.NoError(t, q.Load(context.Background()))
	require.True(t, q.GoTo(3))

	require.NoError(t, q.Update(context.Background(), func(f *RequestFilter) { f.Search = "laptop" }))
	assert.Equal(t, 1, q.Page())
	assert.Equal(t, 12, q.Len())
	assert.Equal(t, "laptop", q.Filter().Search)

	require.True(t, q.GoTo(2))
	require.NoError(t, q.SetFilter(context.Background(), RequestFilter{Search: "chair"}))
	assert.Equal(t, 1, q.Page())
	assert.Equal(t, names("chair-", 3), q.Items())

	// the filter is handed to the server verbatim
	assert.Equal(t, RequestFilter{Search: "chair"}, backend.calls[len(backend.calls)-1])
}

func TestQuery_FilterResetSurvivesFailure(t *testing.T) {
	backend := &fakeBackend{data: names("x-", 12)}
	q := New(backend.fetch, 5, RequestFilter{})
	require.NoError(t, q.Load(context.Background()))
	require.True(t, q.GoTo(3))

	backend.failing = true
	err := q.Update(context.Background(), func(f *RequestFilter) { f.Type = entity.ProductReturnable })
	require.Error(t, err)

	assert.Equal(t, 1, q.Page())
	assert.Zero(t, q.Len())
	assert.Empty(t, q.Items())
	assert.Equal(t, err, q.Err())
	assert.Len(t, backend.calls, 2, "a failed fetch is not retried")

	backend.failing = false
	require.NoError(t, q.Refetch(context.Background()))
	assert.NoError(t, q.Err())
	assert.Equal(t, 12, q.Len())
}

func TestQuery_RefetchIsIdempotent(t *testing.T) {
	backend := &fakeBackend{data: names("a-", 9)}
	q := New(backend.fetch, 5, RequestFilter{Search: "a"})
	require.NoError(t, q.Load(context.Background()))
	require.True(t, q.Next())
	first := q.Items()

	require.NoError(t, q.Refetch(context.Background()))
	assert.Equal(t, 2, q.Page(), "refetch keeps the page")
	assert.Equal(t, first, q.Items())
}

func TestQuery_RefetchClampsPage(t *testing.T) {
	backend := &fakeBackend{data: names("a-", 11)}
	q := New(backend.fetch, 5, RequestFilter{})
	require.NoError(t, q.Load(context.Background()))
	require.True(t, q.GoTo(3))

	backend.data = backend.data[:6]
	require.NoError(t, q.Refetch(context.Background()))
	assert.Equal(t, 2, q.Page())
	assert.Equal(t, backend.data[5:], q.Items())
}

func TestQuery_GoToBounds(t *testing.T) {
	backend := &fakeBackend{data: names("a-", 12)}
	q := New(backend.fetch, 5, RequestFilter{})

	assert.False(t, q.GoTo(4), "empty list stays on page 1")
	require.NoError(t, q.Load(context.Background()))

	assert.True(t, q.GoTo(99))
	assert.Equal(t, 3, q.Page())
	assert.True(t, q.GoTo(-1))
	assert.Equal(t, 1, q.Page())
	assert.False(t, q.GoTo(1))
}

func TestQuery_DiscardsStaleResponse(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	fetch := func(ctx context.Context, f TeamFilter) ([]string, error) {
		if f.Search == "slow" {
			close(started)
			<-release

			return []string{"stale"}, nil
		}

		return []string{"fresh"}, nil
	}

	q := New(fetch, TeamPageSize, TeamFilter{})

	done := make(chan error)
	go func() {
		done <- q.SetFilter(context.Background(), TeamFilter{Search: "slow"})
	}()
	<-started

	require.NoError(t, q.SetFilter(context.Background(), TeamFilter{Search: "fast"}))
	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, []string{"fresh"}, q.All())
	assert.Equal(t, "fast", q.Filter().Search)
}

func TestQuery_FilterChangeDuringLoadWins(t *testing.T) {
	fetch := func(_ context.Context, f TeamFilter) ([]string, error) {
		return []string{"result-for-" + f.Search}, nil
	}
	q := New(fetch, TeamPageSize, TeamFilter{Search: "old"})

	// A load has taken its snapshot but not fetched yet when the filter changes.
	snapshot, gen := q.begin(nil)
	require.NoError(t, q.SetFilter(context.Background(), TeamFilter{Search: "new"}))
	require.NoError(t, q.run(context.Background(), snapshot, gen))

	assert.Equal(t, []string{"result-for-new"}, q.All())
	assert.Equal(t, "new", q.Filter().Search)
}

func TestQuery_ConcurrentUse(t *testing.T) {
	backend := &fakeBackend{data: names("a-", 20)}
	q := New(backend.fetch, 5, RequestFilter{})

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_ = q.Load(context.Background())
			} else {
				q.Next()
				_ = q.Items()
			}
		}()
	}
	wg.Wait()

	require.NoError(t, q.Load(context.Background()))
	assert.Equal(t, 20, q.Len())
}

func TestFilters_Values(t *testing.T) {
	assert.Equal(t, "search=lap&sort=asc&stock=limited&type=Returnable", AssetFilter{
		Search: "lap",
		Stock:  entity.StockLimited,
		Type:   entity.ProductReturnable,
		Sort:   entity.SortAsc,
	}.Values().Encode())
	assert.Empty(t, AssetFilter{}.Values())

	assert.Equal(t, "status=pending", RequestFilter{Status: entity.StatusPending}.Values().Encode())
	assert.Equal(t, "search=bob+smith", TeamFilter{Search: "bob smith"}.Values().Encode())
}
