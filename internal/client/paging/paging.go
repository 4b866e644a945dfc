// Package paging holds the list state shared by every list view: a server-filtered result set
// sliced into fixed-size pages. Filtering and sorting belong to the server; this package only
// does index arithmetic over what the server returned.
package paging

// Page sizes per list view.
const (
	InventoryPageSize    = 8
	RequestablePageSize  = 6
	AllRequestsPageSize  = 5
	PendingPageSize      = 5
	MyRequestsPageSize   = 5
	MonthlyPageSize      = 5
	TeamPageSize         = 8
	UnaffiliatedPageSize = 6
)

// Slice returns items[(page-1)*size : min(page*size, len(items))].
// Pages outside the result set, and non-positive sizes, yield an empty slice.
func Slice[T any](items []T, page, size int) []T {
	if size <= 0 || page < 1 {
		return []T{}
	}

	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))

	return items[start:end]
}

// PageCount is ceil(n/size), 0 for an empty set.
func PageCount(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}

	return (n + size - 1) / size
}
