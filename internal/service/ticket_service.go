package service

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/fusionware/storefront/internal/domain"
	"github.com/fusionware/storefront/internal/events"
	"github.com/fusionware/storefront/internal/repository"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

// TicketService coordinates support ticket workflows for customers and admins.
type TicketService struct {
	// mu serialises read-modify-write sequences on tickets.
	mu         sync.Mutex
	tickets    repository.TicketRepository
	history    repository.TicketHistoryRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        Clock
}

// TicketDependencies bundles repositories for ticket service.
type TicketDependencies struct {
	TicketRepo  repository.TicketRepository
	// HistoryRepo is optional; status changes are not audited without it.
	HistoryRepo repository.TicketHistoryRepository
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
	Clock       Clock
}

// TicketCreateInput describes ticket creation payload.
type TicketCreateInput struct {
	Subject     string
	Description string
	Category    string
	Priority    domain.TicketPriority
}

// TicketCustomerFilter describes the customer's own ticket list.
type TicketCustomerFilter struct {
	Search string
	Status string
}

// TicketAdminFilter describes the back-office ticket list.
type TicketAdminFilter struct {
	Search   string
	Status   string
	Priority string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketService{
		tickets:    deps.TicketRepo,
		history:    deps.HistoryRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		now:        clockOrNow(deps.Clock),
	}
}

// CreateTicket opens a ticket for customer. The description doubles as the
// first message of the thread.
func (s *TicketService) CreateTicket(ctx context.Context, customer domain.User, input TicketCreateInput) (*domain.Ticket, error) {
	if err := required(
		field{"subject", input.Subject},
		field{"description", input.Description},
		field{"category", input.Category},
	); err != nil {
		return nil, err
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.TicketPriorityMedium
	}
	if !priority.Valid() {
		return nil, apperrors.NewValidationError("invalid priority", map[string]any{"priority": priority})
	}

	now := s.now()
	description := strings.TrimSpace(input.Description)
	ticket := &domain.Ticket{
		Subject:       strings.TrimSpace(input.Subject),
		Description:   description,
		Status:        domain.TicketStatusOpen,
		Priority:      priority,
		Category:      strings.TrimSpace(input.Category),
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		CreatedAt:     now,
		LastUpdate:    now,
		Messages: []domain.TicketMessage{{
			Sender:     domain.SenderCustomer,
			SenderName: customer.Name,
			Message:    description,
			Timestamp:  now,
		}},
	}

	s.mu.Lock()
	err := s.tickets.Create(ctx, ticket)
	s.mu.Unlock()
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.logger.Info("ticket created", zap.String("ticket_id", ticket.ID), zap.String("customer_id", customer.ID))
	publishEvent(ctx, s.dispatcher, s.now, events.Event{
		Type:       events.EventTicketCreated,
		ResourceID: ticket.ID,
		Actor:      events.ActorFor(customer),
		Payload: events.TicketCreatedPayload{
			Subject:  ticket.Subject,
			Category: ticket.Category,
			Priority: ticket.Priority,
		},
	})
	return ticket, nil
}

// ListCustomerTickets returns the customer's own tickets matching filter.
// Search matches subject or ticket id.
func (s *TicketService) ListCustomerTickets(ctx context.Context, customer domain.User, filter TicketCustomerFilter) ([]domain.Ticket, error) {
	all, err := s.tickets.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	search := strings.TrimSpace(filter.Search)
	out := []domain.Ticket{}
	for _, t := range all {
		if t.CustomerID != customer.ID {
			continue
		}
		if search != "" && !containsFold(t.Subject, search) && !containsFold(t.ID, search) {
			continue
		}
		if !isWildcard(filter.Status) && string(t.Status) != filter.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// ListAllTickets returns every ticket matching filter. Search matches
// subject, ticket id or customer name.
func (s *TicketService) ListAllTickets(ctx context.Context, filter TicketAdminFilter) ([]domain.Ticket, error) {
	all, err := s.tickets.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return FilterAdminTickets(all, filter), nil
}

// FilterAdminTickets applies the back-office search and filters, preserving order.
func FilterAdminTickets(tickets []domain.Ticket, filter TicketAdminFilter) []domain.Ticket {
	search := strings.TrimSpace(filter.Search)
	out := []domain.Ticket{}
	for _, t := range tickets {
		if search != "" && !containsFold(t.Subject, search) && !containsFold(t.ID, search) && !containsFold(t.CustomerName, search) {
			continue
		}
		if !isWildcard(filter.Status) && string(t.Status) != filter.Status {
			continue
		}
		if !isWildcard(filter.Priority) && string(t.Priority) != filter.Priority {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Stats counts tickets for the admin summary cards.
func (s *TicketService) Stats(ctx context.Context) (domain.TicketStats, error) {
	all, err := s.tickets.List(ctx)
	if err != nil {
		return domain.TicketStats{}, apperrors.MapError(err)
	}
	stats := domain.TicketStats{Total: len(all)}
	for _, t := range all {
		switch t.Status {
		case domain.TicketStatusOpen:
			stats.Open++
		case domain.TicketStatusInProgress:
			stats.InProgress++
		}
		if t.Priority == domain.TicketPriorityUrgent {
			stats.Urgent++
		}
	}
	return stats, nil
}

// GetTicketForCustomer returns a ticket owned by customer.
func (s *TicketService) GetTicketForCustomer(ctx context.Context, customer domain.User, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, mapRepoError(err, "ticket", ticketID)
	}
	if ticket.CustomerID != customer.ID {
		return nil, apperrors.NewForbidden("access denied")
	}
	return ticket, nil
}

// GetTicket returns any ticket.
func (s *TicketService) GetTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, mapRepoError(err, "ticket", ticketID)
	}
	return ticket, nil
}

// ReplyAsCustomer appends the customer's message to their own ticket.
func (s *TicketService) ReplyAsCustomer(ctx context.Context, customer domain.User, ticketID, message string) (*domain.Ticket, error) {
	return s.reply(ctx, customer, domain.SenderCustomer, ticketID, message)
}

// ReplyAsSupport appends a support message to any ticket.
func (s *TicketService) ReplyAsSupport(ctx context.Context, agent domain.User, ticketID, message string) (*domain.Ticket, error) {
	return s.reply(ctx, agent, domain.SenderSupport, ticketID, message)
}

// NextStatusAfterReply applies the reply rule: a support reply moves an open
// ticket to in-progress; nothing else changes status.
func NextStatusAfterReply(current domain.TicketStatus, sender domain.MessageSender) domain.TicketStatus {
	if sender == domain.SenderSupport && current == domain.TicketStatusOpen {
		return domain.TicketStatusInProgress
	}
	return current
}

func (s *TicketService) reply(ctx context.Context, actor domain.User, sender domain.MessageSender, ticketID, message string) (*domain.Ticket, error) {
	if err := required(field{"message", message}); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, mapRepoError(err, "ticket", ticketID)
	}
	if sender == domain.SenderCustomer && ticket.CustomerID != actor.ID {
		return nil, apperrors.NewForbidden("access denied")
	}

	now := s.now()
	msg := domain.TicketMessage{
		Sender:     sender,
		SenderName: actor.Name,
		Message:    strings.TrimSpace(message),
		Timestamp:  now,
	}
	old := ticket.Status
	next := NextStatusAfterReply(old, sender)
	if err := s.tickets.AppendMessage(ctx, ticketID, &msg, next, now); err != nil {
		return nil, mapRepoError(err, "ticket", ticketID)
	}
	ticket.Messages = append(ticket.Messages, msg)
	ticket.Status = next
	ticket.LastUpdate = now
	s.recordStatusChange(ctx, actor, ticket.ID, old, ticket.Status)

	publishEvent(ctx, s.dispatcher, s.now, events.Event{
		Type:       events.EventTicketReplied,
		ResourceID: ticket.ID,
		Actor:      events.ActorFor(actor),
		Payload: events.TicketRepliedPayload{
			MessageID:   msg.ID,
			Sender:      sender,
			BodyPreview: stringPreview(msg.Message, 140),
		},
	})
	return ticket, nil
}

// ChangeStatus overwrites the ticket status. Any valid status may follow any other.
func (s *TicketService) ChangeStatus(ctx context.Context, actor domain.User, ticketID string, status domain.TicketStatus) (*domain.Ticket, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": status})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, mapRepoError(err, "ticket", ticketID)
	}
	old := ticket.Status
	ticket.Status = status
	ticket.LastUpdate = s.now()
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, mapRepoError(err, "ticket", ticketID)
	}
	s.recordStatusChange(ctx, actor, ticket.ID, old, status)

	s.logger.Info("ticket status changed",
		zap.String("ticket_id", ticketID),
		zap.String("from", string(old)),
		zap.String("to", string(status)),
	)
	publishEvent(ctx, s.dispatcher, s.now, events.Event{
		Type:       events.EventTicketStatusChanged,
		ResourceID: ticket.ID,
		Actor:      events.ActorFor(actor),
		Payload:    events.TicketStatusChangedPayload{OldStatus: old, NewStatus: status},
	})
	return ticket, nil
}

// History returns the status audit trail of a ticket, oldest first.
func (s *TicketService) History(ctx context.Context, ticketID string) ([]domain.TicketHistory, error) {
	if _, err := s.tickets.GetByID(ctx, ticketID); err != nil {
		return nil, mapRepoError(err, "ticket", ticketID)
	}
	if s.history == nil {
		return []domain.TicketHistory{}, nil
	}
	entries, err := s.history.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return entries, nil
}

// recordStatusChange appends an audit entry. Failures are logged only; the
// ticket update has already been committed.
func (s *TicketService) recordStatusChange(ctx context.Context, actor domain.User, ticketID string, from, to domain.TicketStatus) {
	if s.history == nil || from == to {
		return
	}
	entry := &domain.TicketHistory{
		TicketID:      ticketID,
		ChangedByID:   actor.ID,
		ChangedByRole: actor.Role,
		ChangeType:    domain.ChangeTypeStatus,
		OldValue:      string(from),
		NewValue:      string(to),
		CreatedAt:     s.now(),
	}
	if err := s.history.Create(ctx, entry); err != nil {
		s.logger.Warn("failed to record ticket history", zap.String("ticket_id", ticketID), zap.Error(err))
	}
}
