package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fusionware/storefront/internal/api/dto"
	"github.com/fusionware/storefront/internal/auth"
	"github.com/fusionware/storefront/internal/service"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

// AuthHandler serves the /api/auth routes in their legacy wire format.
type AuthHandler struct {
	service    *service.AuthService
	middleware *auth.AuthMiddleware
	logger     *zap.Logger
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, middleware *auth.AuthMiddleware, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{service: authService, middleware: middleware, logger: logger}
}

func legacyFailure(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.LegacyFailure{Success: false, Message: message})
}

// Login POST /api/auth.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return legacyFailure(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if apperrors.IsCode(err, "UNAUTHORIZED") {
			return legacyFailure(c, fiber.StatusUnauthorized, service.InvalidCredentialsMessage)
		}
		h.logger.Error("login failed", zap.Error(err))
		return legacyFailure(c, fiber.StatusInternalServerError, LegacyServerError)
	}

	return c.JSON(dto.LegacyLoginResponse{
		Success:   true,
		User:      userResponse(result.User),
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}

// Logout POST /api/auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	principal, err := h.middleware.Authenticate(c)
	if err != nil {
		return h.authFailure(c, err)
	}
	if err := h.service.Logout(c.UserContext(), principal.SessionID); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		return legacyFailure(c, fiber.StatusInternalServerError, LegacyServerError)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Session GET /api/auth/session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	principal, err := h.middleware.Authenticate(c)
	if err != nil {
		return h.authFailure(c, err)
	}
	user, err := h.service.CurrentUser(c.UserContext(), principal.SessionID)
	if err != nil {
		return h.authFailure(c, err)
	}
	return c.JSON(dto.LegacySessionResponse{Success: true, User: userResponse(*user)})
}

func (h *AuthHandler) authFailure(c *fiber.Ctx, err error) error {
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) && domainErr.HTTPStatus == fiber.StatusUnauthorized {
		return legacyFailure(c, fiber.StatusUnauthorized, domainErr.Message)
	}
	h.logger.Error("session lookup failed", zap.Error(err))
	return legacyFailure(c, fiber.StatusInternalServerError, LegacyServerError)
}
