package domain

import (
	"math"
	"time"
)

// PurchaseStatus is the license state of a purchase.
type PurchaseStatus string

const (
	PurchaseStatusActive  PurchaseStatus = "active"
	PurchaseStatusExpired PurchaseStatus = "expired"
	PurchaseStatusPending PurchaseStatus = "pending"
)

// Purchase is an entry in a customer's order history.
type Purchase struct {
	ID           string
	UserID       string
	ProductName  string
	Duration     string
	PurchaseDate time.Time
	ExpiryDate   time.Time
	Status       PurchaseStatus
	Price        float64
	DownloadURL  string
}

// DaysRemaining counts whole days until expiry, rounding up. It goes
// negative once the license has lapsed.
func (p Purchase) DaysRemaining(now time.Time) int {
	return int(math.Ceil(p.ExpiryDate.Sub(now).Hours() / 24))
}
