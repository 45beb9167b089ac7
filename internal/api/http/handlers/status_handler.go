package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fusionware/storefront/internal/api/dto"
	"github.com/fusionware/storefront/internal/domain"
	"github.com/fusionware/storefront/internal/service"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

// StatusHandler serves the public status page and contact form.
type StatusHandler struct {
	status  *service.StatusService
	contact *service.ContactService
}

// NewStatusHandler constructs handler.
func NewStatusHandler(status *service.StatusService, contact *service.ContactService) *StatusHandler {
	return &StatusHandler{status: status, contact: contact}
}

// Status GET /status.
func (h *StatusHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": statusResponse(h.status.Snapshot(c.UserContext()))})
}

// Refresh POST /status/refresh.
func (h *StatusHandler) Refresh(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": statusResponse(h.status.Refresh(c.UserContext()))})
}

// Contact POST /contact.
func (h *StatusHandler) Contact(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ack, err := h.contact.Submit(c.UserContext(), domain.ContactMessage{
		Name:     req.Name,
		Email:    req.Email,
		Subject:  req.Subject,
		Category: req.Category,
		Message:  req.Message,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"data": fiber.Map{"message": ack}})
}
