package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fusionware/storefront/internal/api/dto"
	"github.com/fusionware/storefront/internal/service"
)

// Legacy failure bodies.
const (
	LegacyServerError     = "Server error"
	LegacyProductsFailure = "Failed to fetch products"
)

// ProductsHandler serves GET /api/products.
type ProductsHandler struct {
	catalog *service.CatalogService
	logger  *zap.Logger
}

// NewProductsHandler constructs handler.
func NewProductsHandler(catalog *service.CatalogService, logger *zap.Logger) *ProductsHandler {
	return &ProductsHandler{catalog: catalog, logger: logger}
}

// List GET /api/products. Responds with a bare array of active products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.catalog.ActiveProducts(c.UserContext())
	if err != nil {
		h.logger.Error("Error fetching products", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": LegacyProductsFailure})
	}
	out := make([]dto.LegacyProduct, 0, len(products))
	for i := range products {
		out = append(out, legacyProduct(&products[i]))
	}
	return c.JSON(out)
}
