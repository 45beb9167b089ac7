package domain

import "time"

// ProductStatus controls catalog visibility.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
	ProductStatusDraft    ProductStatus = "draft"
)

// Valid reports whether s is a known status.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusDraft:
		return true
	}
	return false
}

// Duration is a purchasable license tier.
type Duration struct {
	Label string  `json:"label"`
	Days  int     `json:"days"`
	Price float64 `json:"price"`
}

// Product is a licensed software tool sold in the shop.
type Product struct {
	ID               string
	Name             string
	Description      string
	ShortDescription string
	Price            float64
	Category         string
	Features         []string
	Durations        []Duration
	Image            string
	Popular          bool
	Status           ProductStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Clone returns a deep copy so callers never share slices with a store.
func (p Product) Clone() Product {
	out := p
	out.Features = append([]string(nil), p.Features...)
	out.Durations = append([]Duration(nil), p.Durations...)
	return out
}

// DurationByLabel finds a tier by its label.
func (p Product) DurationByLabel(label string) (Duration, bool) {
	for _, d := range p.Durations {
		if d.Label == label {
			return d, true
		}
	}
	return Duration{}, false
}

// PlaceholderImage is shown for products without an uploaded image.
const PlaceholderImage = "/placeholder.svg?height=200&width=300"
