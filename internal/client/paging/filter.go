package paging

import (
	"net/url"

	"assethub/internal/domain/entity"
)

// AssetFilter drives the inventory and requestable asset lists.
type AssetFilter struct {
	Search string
	Stock  entity.StockLevel
	Type   entity.ProductType
	Sort   entity.SortOrder
}

// Values encodes the filter as query parameters, omitting empty fields.
func (f AssetFilter) Values() url.Values {
	v := url.Values{}
	set(v, "search", f.Search)
	set(v, "stock", string(f.Stock))
	set(v, "type", string(f.Type))
	set(v, "sort", string(f.Sort))

	return v
}

// RequestFilter drives every asset request list.
type RequestFilter struct {
	Search string
	Status entity.RequestStatus
	Type   entity.ProductType
}

func (f RequestFilter) Values() url.Values {
	v := url.Values{}
	set(v, "search", f.Search)
	set(v, "status", string(f.Status))
	set(v, "type", string(f.Type))

	return v
}

// TeamFilter drives the team roster.
type TeamFilter struct {
	Search string
}

func (f TeamFilter) Values() url.Values {
	v := url.Values{}
	set(v, "search", f.Search)

	return v
}

func set(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
