package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fusionware/storefront/internal/api/dto"
	"github.com/fusionware/storefront/internal/service"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

// DashboardHandler serves the signed-in customer area.
type DashboardHandler struct {
	dashboard *service.DashboardService
	profiles  *service.ProfileService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboard *service.DashboardService, profiles *service.ProfileService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, profiles: profiles}
}

// Overview GET /dashboard.
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	dash, err := h.dashboard.Customer(c.UserContext(), user)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.CustomerDashboardResponse{
		User: userResponse(dash.User),
		Stats: dto.CustomerStatsResponse{
			TotalPurchases: dash.Stats.TotalPurchases,
			ActiveLicenses: dash.Stats.ActiveLicenses,
			TotalSpent:     dash.Stats.TotalSpent,
			OpenTickets:    dash.Stats.OpenTickets,
		},
		Purchases: purchaseResponses(dash.Purchases),
	}})
}

// Purchases GET /dashboard/purchases.
func (h *DashboardHandler) Purchases(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	purchases, err := h.dashboard.Purchases(c.UserContext(), user)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": purchaseResponses(purchases)})
}

// GetProfile GET /dashboard/profile.
func (h *DashboardHandler) GetProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	profile, err := h.profiles.Get(c.UserContext(), user)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profileResponse(profile)})
}

// UpdateProfile PUT /dashboard/profile.
func (h *DashboardHandler) UpdateProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	profile, err := h.profiles.Update(c.UserContext(), user, service.ProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Bio:      req.Bio,
		Location: req.Location,
		Website:  req.Website,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profileResponse(profile)})
}
