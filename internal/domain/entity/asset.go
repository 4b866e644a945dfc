package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductType controls whether an approved request can later be returned.
type ProductType string

const (
	ProductReturnable    ProductType = "Returnable"
	ProductNonReturnable ProductType = "Non-returnable"
)

// IsValid reports whether t is a known product type.
func (t ProductType) IsValid() bool {
	return t == ProductReturnable || t == ProductNonReturnable
}

// StockLevel is a categorical filter over asset quantity.
type StockLevel string

const (
	StockAvailable StockLevel = "available"
	StockOut       StockLevel = "out-of-stock"
	StockLimited   StockLevel = "limited"
)

// LimitedStockMax is the quantity below which an in-stock asset counts as limited.
const LimitedStockMax = 10

// IsValid reports whether s is a known stock level.
func (s StockLevel) IsValid() bool {
	switch s {
	case StockAvailable, StockOut, StockLimited:
		return true
	default:
		return false
	}
}

// SortOrder orders asset lists by quantity.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Asset is a stock item owned by a company.
type Asset struct {
	ID              uuid.UUID   `json:"id"`
	ProductName     string      `json:"productName"`
	ProductType     ProductType `json:"productType"`
	ProductQuantity int         `json:"productQuantity"`
	Image           string      `json:"image"`
	Status          bool        `json:"status"` // in stock
	DateAdded       time.Time   `json:"dateAdded"`
	CompanyName     string      `json:"companyName"`
	HREmail         string      `json:"hrEmail"`
}

// InStock reports whether at least one unit is available.
func (a *Asset) InStock() bool {
	return a.ProductQuantity > 0
}

// IsLimited reports whether the asset is in stock but running low.
func (a *Asset) IsLimited() bool {
	return a.ProductQuantity > 0 && a.ProductQuantity < LimitedStockMax
}

// AssetQuery carries the server-side filters for asset lists.
type AssetQuery struct {
	Search string
	Stock  StockLevel
	Type   ProductType
	Sort   SortOrder
}
