package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fusionware/storefront/internal/api/dto"
	"github.com/fusionware/storefront/internal/service"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

// AdminTicketsHandler exposes the support queue to admins.
type AdminTicketsHandler struct {
	service *service.TicketService
}

// NewAdminTicketsHandler constructs handler.
func NewAdminTicketsHandler(ticketService *service.TicketService) *AdminTicketsHandler {
	return &AdminTicketsHandler{service: ticketService}
}

// ListTickets GET /admin/tickets?search=&status=&priority=.
func (h *AdminTicketsHandler) ListTickets(c *fiber.Ctx) error {
	tickets, err := h.service.ListAllTickets(c.UserContext(), service.TicketAdminFilter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponses(tickets)})
}

// Stats GET /admin/tickets/stats.
func (h *AdminTicketsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TicketStatsResponse{
		Total:      stats.Total,
		Open:       stats.Open,
		InProgress: stats.InProgress,
		Urgent:     stats.Urgent,
	}})
}

// GetTicket GET /admin/tickets/:id.
func (h *AdminTicketsHandler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.service.GetTicket(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// Reply POST /admin/tickets/:id/messages.
func (h *AdminTicketsHandler) Reply(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.ReplyAsSupport(c.UserContext(), user, c.Params("id"), req.Message)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// UpdateStatus PUT /admin/tickets/:id/status.
func (h *AdminTicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.ChangeStatus(c.UserContext(), user, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// History GET /admin/tickets/:id/history.
func (h *AdminTicketsHandler) History(c *fiber.Ctx) error {
	entries, err := h.service.History(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	out := make([]dto.TicketHistoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.TicketHistoryResponse{
			ID:            e.ID,
			ChangedByID:   e.ChangedByID,
			ChangedByRole: e.ChangedByRole,
			ChangeType:    e.ChangeType,
			OldValue:      e.OldValue,
			NewValue:      e.NewValue,
			CreatedAt:     e.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": out})
}
