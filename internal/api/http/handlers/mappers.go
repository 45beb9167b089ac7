package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/fusionware/storefront/internal/api/dto"
	"github.com/fusionware/storefront/internal/auth"
	"github.com/fusionware/storefront/internal/domain"
	"github.com/fusionware/storefront/internal/service"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

const dateLayout = "2006-01-02"

func currentUser(c *fiber.Ctx) (domain.User, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return domain.User{}, apperrors.NewUnauthorized("authentication required")
	}
	return principal.User, nil
}

func parseIndex(c *fiber.Ctx) (int, error) {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return 0, apperrors.NewValidationError("index must be an integer", map[string]any{"index": c.Params("index")})
	}
	return index, nil
}

func userResponse(u domain.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func durationDTOs(durations []domain.Duration) []dto.DurationDTO {
	out := make([]dto.DurationDTO, 0, len(durations))
	for _, d := range durations {
		out = append(out, dto.DurationDTO{Label: d.Label, Days: d.Days, Price: d.Price})
	}
	return out
}

func durationsFromDTO(items []dto.DurationDTO) []domain.Duration {
	out := make([]domain.Duration, 0, len(items))
	for _, d := range items {
		out = append(out, domain.Duration{Label: d.Label, Days: d.Days, Price: d.Price})
	}
	return out
}

func features(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func productResponse(p *domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Price:            p.Price,
		Category:         p.Category,
		Features:         features(p.Features),
		Durations:        durationDTOs(p.Durations),
		Image:            p.Image,
		Popular:          p.Popular,
		Status:           p.Status,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func productResponses(products []domain.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, productResponse(&products[i]))
	}
	return out
}

func legacyProduct(p *domain.Product) dto.LegacyProduct {
	return dto.LegacyProduct{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Price:            p.Price,
		Category:         p.Category,
		Features:         features(p.Features),
		Durations:        durationDTOs(p.Durations),
		Image:            p.Image,
		Popular:          p.Popular,
	}
}

// applyProductRequest overwrites every scalar field of base. Lists and status
// keep base values when the request omits them.
func applyProductRequest(base service.ProductDraft, req dto.ProductRequest) service.ProductDraft {
	draft := base
	draft.Name = req.Name
	draft.Description = req.Description
	draft.ShortDescription = req.ShortDescription
	draft.Price = req.Price
	draft.Category = req.Category
	if req.Features != nil {
		draft.Features = req.Features
	}
	if req.Durations != nil {
		draft.Durations = durationsFromDTO(req.Durations)
	}
	draft.Image = req.Image
	draft.Popular = req.Popular
	if req.Status != "" {
		draft.Status = req.Status
	}
	return draft
}

func ticketResponse(t *domain.Ticket) dto.TicketResponse {
	messages := make([]dto.TicketMessageResponse, 0, len(t.Messages))
	for _, m := range t.Messages {
		messages = append(messages, dto.TicketMessageResponse{
			ID:         m.ID,
			Sender:     m.Sender,
			SenderName: m.SenderName,
			Message:    m.Message,
			Timestamp:  m.Timestamp,
		})
	}
	return dto.TicketResponse{
		ID:            t.ID,
		Subject:       t.Subject,
		Description:   t.Description,
		Status:        t.Status,
		Priority:      t.Priority,
		Category:      t.Category,
		CustomerID:    t.CustomerID,
		CustomerName:  t.CustomerName,
		CustomerEmail: t.CustomerEmail,
		AssignedTo:    t.AssignedTo,
		CreatedAt:     t.CreatedAt,
		LastUpdate:    t.LastUpdate,
		Messages:      messages,
	}
}

func ticketResponses(tickets []domain.Ticket) []dto.TicketResponse {
	out := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		out = append(out, ticketResponse(&tickets[i]))
	}
	return out
}

func purchaseResponses(purchases []service.OwnedPurchase) []dto.PurchaseResponse {
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, dto.PurchaseResponse{
			ID:            p.ID,
			ProductName:   p.ProductName,
			Duration:      p.Duration,
			PurchaseDate:  p.PurchaseDate.Format(dateLayout),
			ExpiryDate:    p.ExpiryDate.Format(dateLayout),
			Status:        p.Status,
			Price:         p.Price,
			DownloadURL:   p.DownloadURL,
			DaysRemaining: p.DaysRemaining,
		})
	}
	return out
}

func profileResponse(p *domain.Profile) dto.ProfileRequest {
	return dto.ProfileRequest{
		Name:     p.Name,
		Email:    p.Email,
		Bio:      p.Bio,
		Location: p.Location,
		Website:  p.Website,
		Phone:    p.Phone,
	}
}

func statusResponse(s service.StatusSnapshot) dto.StatusResponse {
	services := make([]dto.ServiceStatusResponse, 0, len(s.Services))
	for _, svc := range s.Services {
		services = append(services, dto.ServiceStatusResponse{
			ID:          svc.ID,
			Name:        svc.Name,
			Status:      svc.Status,
			Uptime:      svc.Uptime,
			LastChecked: svc.LastChecked,
			Description: svc.Description,
		})
	}
	incidents := make([]dto.IncidentResponse, 0, len(s.Incidents))
	for _, inc := range s.Incidents {
		updates := make([]dto.IncidentUpdateResponse, 0, len(inc.Updates))
		for _, u := range inc.Updates {
			updates = append(updates, dto.IncidentUpdateResponse{Timestamp: u.Timestamp, Message: u.Message, Status: u.Status})
		}
		incidents = append(incidents, dto.IncidentResponse{
			ID:          inc.ID,
			Title:       inc.Title,
			Status:      inc.Status,
			Severity:    inc.Severity,
			CreatedAt:   inc.CreatedAt,
			UpdatedAt:   inc.UpdatedAt,
			Description: inc.Description,
			Updates:     updates,
		})
	}
	return dto.StatusResponse{
		Overall:     s.Overall,
		Services:    services,
		Incidents:   incidents,
		LastUpdated: s.LastUpdated,
	}
}
