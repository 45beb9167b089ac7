package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fusionware/storefront/internal/api/dto"
	"github.com/fusionware/storefront/internal/domain"
	"github.com/fusionware/storefront/internal/service"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

// AdminProductsHandler implements back-office catalog management.
type AdminProductsHandler struct {
	service *service.ProductService
}

// NewAdminProductsHandler constructs handler.
func NewAdminProductsHandler(productService *service.ProductService) *AdminProductsHandler {
	return &AdminProductsHandler{service: productService}
}

// List GET /admin/products.
func (h *AdminProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponses(products)})
}

// Get GET /admin/products/:id.
func (h *AdminProductsHandler) Get(c *fiber.Ctx) error {
	product, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponse(product)})
}

// Create POST /admin/products.
func (h *AdminProductsHandler) Create(c *fiber.Ctx) error {
	return h.save(c, service.ModeCreate)
}

// Update PUT /admin/products/:id.
func (h *AdminProductsHandler) Update(c *fiber.Ctx) error {
	return h.save(c, service.ModeUpdate)
}

func (h *AdminProductsHandler) save(c *fiber.Ctx, mode service.SaveMode) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	var product *domain.Product
	if mode == service.ModeUpdate {
		product, err = h.service.Update(c.UserContext(), user, c.Params("id"), func(d *service.ProductDraft) error {
			*d = applyProductRequest(*d, req)
			return nil
		})
	} else {
		product, err = h.service.Save(c.UserContext(), user, mode, "", applyProductRequest(service.NewProductDraft(), req))
	}
	if err != nil {
		return err
	}
	status := fiber.StatusOK
	if mode == service.ModeCreate {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"data": productResponse(product)})
}

// Delete DELETE /admin/products/:id.
func (h *AdminProductsHandler) Delete(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), user, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddFeature POST /admin/products/:id/features.
func (h *AdminProductsHandler) AddFeature(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.FeatureRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	product, err := h.service.AddFeature(c.UserContext(), user, c.Params("id"), req.Value)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": productResponse(product)})
}

// UpdateFeature PUT /admin/products/:id/features/:index.
func (h *AdminProductsHandler) UpdateFeature(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	index, err := parseIndex(c)
	if err != nil {
		return err
	}
	var req dto.FeatureRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	product, err := h.service.UpdateFeature(c.UserContext(), user, c.Params("id"), index, req.Value)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponse(product)})
}

// RemoveFeature DELETE /admin/products/:id/features/:index.
func (h *AdminProductsHandler) RemoveFeature(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	index, err := parseIndex(c)
	if err != nil {
		return err
	}
	product, err := h.service.RemoveFeature(c.UserContext(), user, c.Params("id"), index)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponse(product)})
}

// AddDuration POST /admin/products/:id/durations.
func (h *AdminProductsHandler) AddDuration(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.DurationDTO
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	product, err := h.service.AddDuration(c.UserContext(), user, c.Params("id"), durationFromDTO(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": productResponse(product)})
}

// UpdateDuration PUT /admin/products/:id/durations/:index.
func (h *AdminProductsHandler) UpdateDuration(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	index, err := parseIndex(c)
	if err != nil {
		return err
	}
	var req dto.DurationDTO
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	product, err := h.service.UpdateDuration(c.UserContext(), user, c.Params("id"), index, durationFromDTO(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponse(product)})
}

// RemoveDuration DELETE /admin/products/:id/durations/:index.
func (h *AdminProductsHandler) RemoveDuration(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	index, err := parseIndex(c)
	if err != nil {
		return err
	}
	product, err := h.service.RemoveDuration(c.UserContext(), user, c.Params("id"), index)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponse(product)})
}

func durationFromDTO(d dto.DurationDTO) domain.Duration {
	return domain.Duration{Label: d.Label, Days: d.Days, Price: d.Price}
}
