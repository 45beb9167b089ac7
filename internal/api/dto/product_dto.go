package dto

import (
	"time"

	"github.com/fusionware/storefront/internal/domain"
)

// DurationDTO is one license tier.
type DurationDTO struct {
	Label string  `json:"label"`
	Days  int     `json:"days"`
	Price float64 `json:"price"`
}

// ProductResponse is a catalog entry.
type ProductResponse struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Description      string               `json:"description"`
	ShortDescription string               `json:"shortDescription"`
	Price            float64              `json:"price"`
	Category         string               `json:"category"`
	Features         []string             `json:"features"`
	Durations        []DurationDTO        `json:"durations"`
	Image            string               `json:"image"`
	Popular          bool                 `json:"popular"`
	Status           domain.ProductStatus `json:"status"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

// ProductRequest is the admin product form, used for create and update.
type ProductRequest struct {
	Name             string               `json:"name"`
	Description      string               `json:"description"`
	ShortDescription string               `json:"shortDescription"`
	Price            float64              `json:"price"`
	Category         string               `json:"category"`
	Features         []string             `json:"features"`
	Durations        []DurationDTO        `json:"durations"`
	Image            string               `json:"image"`
	Popular          bool                 `json:"popular"`
	Status           domain.ProductStatus `json:"status"`
}

// FeatureRequest carries one feature row.
type FeatureRequest struct {
	Value string `json:"value"`
}

// PurchaseRequest picks a tier by label; empty means the first tier.
type PurchaseRequest struct {
	Duration string `json:"duration"`
}

// PurchaseSelectionResponse echoes the chosen product and tier.
type PurchaseSelectionResponse struct {
	ProductID   string      `json:"productId"`
	ProductName string      `json:"productName"`
	Duration    DurationDTO `json:"duration"`
	Message     string      `json:"message"`
}

// LegacyProduct is the product shape served by GET /api/products.
type LegacyProduct struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	ShortDescription string        `json:"shortDescription"`
	Price            float64       `json:"price"`
	Category         string        `json:"category"`
	Features         []string      `json:"features"`
	Durations        []DurationDTO `json:"durations"`
	Image            string        `json:"image"`
	Popular          bool          `json:"popular"`
}
