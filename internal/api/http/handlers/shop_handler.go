package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fusionware/storefront/internal/api/dto"
	"github.com/fusionware/storefront/internal/service"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

// ShopHandler serves the public catalog.
type ShopHandler struct {
	catalog *service.CatalogService
}

// NewShopHandler constructs handler.
func NewShopHandler(catalog *service.CatalogService) *ShopHandler {
	return &ShopHandler{catalog: catalog}
}

// ListProducts GET /shop/products?search=&category=.
func (h *ShopHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.catalog.List(c.UserContext(), service.CatalogFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponses(products)})
}

// Categories GET /shop/categories.
func (h *ShopHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.catalog.Categories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": categories})
}

// GetProduct GET /shop/products/:id.
func (h *ShopHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.catalog.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponse(product)})
}

// Purchase POST /shop/products/:id/purchase.
func (h *ShopHandler) Purchase(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.PurchaseRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}
	selection, err := h.catalog.Purchase(c.UserContext(), user, c.Params("id"), req.Duration)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.PurchaseSelectionResponse{
		ProductID:   selection.Product.ID,
		ProductName: selection.Product.Name,
		Duration:    dto.DurationDTO{Label: selection.Duration.Label, Days: selection.Duration.Days, Price: selection.Duration.Price},
		Message:     "purchasing " + selection.Product.Name + " for " + selection.Duration.Label,
	}})
}
