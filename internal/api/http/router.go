package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fusionware/storefront/internal/api/dto"
	"github.com/fusionware/storefront/internal/api/http/handlers"
	"github.com/fusionware/storefront/internal/auth"
	"github.com/fusionware/storefront/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Logger         *zap.Logger
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Products       *handlers.ProductsHandler
	Shop           *handlers.ShopHandler
	Dashboard      *handlers.DashboardHandler
	Tickets        *handlers.TicketsHandler
	Admin          *handlers.AdminHandler
	AdminTickets   *handlers.AdminTicketsHandler
	AdminProducts  *handlers.AdminProductsHandler
	Status         *handlers.StatusHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	authFailure := dto.LegacyFailure{Success: false, Message: handlers.LegacyServerError}
	api.Post("/auth", legacyRecover(logger, authFailure), cfg.Auth.Login)
	api.Post("/auth/logout", legacyRecover(logger, authFailure), cfg.Auth.Logout)
	api.Get("/auth/session", legacyRecover(logger, authFailure), cfg.Auth.Session)
	api.Get("/products", legacyRecover(logger, fiber.Map{"error": handlers.LegacyProductsFailure}), cfg.Products.List)

	shop := app.Group("/shop")
	shop.Get("/products", cfg.Shop.ListProducts)
	shop.Get("/categories", cfg.Shop.Categories)
	shop.Get("/products/:id", cfg.Shop.GetProduct)
	shop.Post("/products/:id/purchase", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated(), cfg.Shop.Purchase)

	dashboard := app.Group("/dashboard", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	dashboard.Get("", cfg.Dashboard.Overview)
	dashboard.Get("/purchases", cfg.Dashboard.Purchases)
	dashboard.Get("/profile", cfg.Dashboard.GetProfile)
	dashboard.Put("/profile", cfg.Dashboard.UpdateProfile)
	dashboard.Get("/tickets", cfg.Tickets.ListTickets)
	dashboard.Post("/tickets", cfg.Tickets.CreateTicket)
	dashboard.Get("/tickets/:id", cfg.Tickets.GetTicket)
	dashboard.Post("/tickets/:id/messages", cfg.Tickets.Reply)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/dashboard", cfg.Admin.Dashboard)
	admin.Get("/metrics", cfg.Admin.Metrics)

	admin.Get("/tickets", cfg.AdminTickets.ListTickets)
	admin.Get("/tickets/stats", cfg.AdminTickets.Stats)
	admin.Get("/tickets/:id", cfg.AdminTickets.GetTicket)
	admin.Get("/tickets/:id/history", cfg.AdminTickets.History)
	admin.Post("/tickets/:id/messages", cfg.AdminTickets.Reply)
	admin.Put("/tickets/:id/status", cfg.AdminTickets.UpdateStatus)

	admin.Get("/products", cfg.AdminProducts.List)
	admin.Post("/products", cfg.AdminProducts.Create)
	admin.Get("/products/:id", cfg.AdminProducts.Get)
	admin.Put("/products/:id", cfg.AdminProducts.Update)
	admin.Delete("/products/:id", cfg.AdminProducts.Delete)
	admin.Post("/products/:id/features", cfg.AdminProducts.AddFeature)
	admin.Put("/products/:id/features/:index", cfg.AdminProducts.UpdateFeature)
	admin.Delete("/products/:id/features/:index", cfg.AdminProducts.RemoveFeature)
	admin.Post("/products/:id/durations", cfg.AdminProducts.AddDuration)
	admin.Put("/products/:id/durations/:index", cfg.AdminProducts.UpdateDuration)
	admin.Delete("/products/:id/durations/:index", cfg.AdminProducts.RemoveDuration)

	app.Get("/status", cfg.Status.Status)
	app.Post("/status/refresh", cfg.Status.Refresh)
	app.Post("/contact", cfg.Status.Contact)
}
