package entity

import (
	"time"

	"github.com/google/uuid"
)

// Package is a purchasable member-limit tier for an HR manager.
type Package struct {
	Name        string `json:"packageName"`
	Price       int64  `json:"price"` // whole dollars
	MemberLimit int    `json:"memberLimit"`
}

// Packages is the fixed catalogue offered at HR sign-up.
var Packages = []Package{
	{Name: "basic", Price: 5, MemberLimit: 5},
	{Name: "standard", Price: 8, MemberLimit: 10},
	{Name: "premium", Price: 15, MemberLimit: 20},
}

// FindPackage looks a package up by name.
func FindPackage(name string) (Package, bool) {
	for _, p := range Packages {
		if p.Name == name {
			return p, true
		}
	}

	return Package{}, false
}

// Payment records a settled package purchase.
type Payment struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	PackageName   string    `json:"packageName"`
	Price         int64     `json:"price"`
	MemberLimit   int       `json:"memberLimit"`
	TransactionID string    `json:"transactionId"`
	PaidAt        time.Time `json:"paidAt"`
}

// HRStats summarises a company's request and stock state for the HR home view.
type HRStats struct {
	PendingRequests       int      `json:"pendingRequests"`
	ReturnableRequests    int      `json:"returnableRequests"`
	NonReturnableRequests int      `json:"nonReturnableRequests"`
	LimitedStock          []*Asset `json:"limitedStock"`
	TopRequested          []string `json:"topRequested"`
}
