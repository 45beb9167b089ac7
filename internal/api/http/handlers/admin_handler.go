package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fusionware/storefront/internal/api/dto"
	"github.com/fusionware/storefront/internal/observability"
	"github.com/fusionware/storefront/internal/service"
)

// AdminHandler serves the back-office overview and service metrics.
type AdminHandler struct {
	dashboard *service.DashboardService
	metrics   *observability.Metrics
}

// NewAdminHandler constructs handler.
func NewAdminHandler(dashboard *service.DashboardService, metrics *observability.Metrics) *AdminHandler {
	return &AdminHandler{dashboard: dashboard, metrics: metrics}
}

// Dashboard GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	dash := h.dashboard.Admin(c.UserContext())
	activity := make([]dto.ActivityResponse, 0, len(dash.Activity))
	for _, a := range dash.Activity {
		activity = append(activity, dto.ActivityResponse{ID: a.ID, Type: a.Type, Message: a.Message, Time: a.Time})
	}
	return c.JSON(fiber.Map{"data": dto.AdminDashboardResponse{
		Stats: dto.AdminStatsResponse{
			TotalUsers:     dash.Stats.TotalUsers,
			TotalSales:     dash.Stats.TotalSales,
			ActiveProducts: dash.Stats.ActiveProducts,
			OpenTickets:    dash.Stats.OpenTickets,
			Revenue:        dash.Stats.Revenue,
			MonthlyGrowth:  dash.Stats.MonthlyGrowth,
		},
		RecentActivity: activity,
	}})
}

// Metrics GET /admin/metrics.
func (h *AdminHandler) Metrics(c *fiber.Ctx) error {
	snap := h.metrics.Snapshot()
	return c.JSON(fiber.Map{"data": dto.MetricsResponse{
		TotalRequests:    snap.TotalRequests,
		AverageLatencyMs: float64(snap.AverageLatency) / float64(time.Millisecond),
		Requests:         snap.Requests,
		Errors:           snap.Errors,
	}})
}
