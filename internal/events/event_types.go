package events

import (
	"time"

	"github.com/fusionware/storefront/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated            EventType = "ticket_created"
	EventTicketReplied            EventType = "ticket_replied"
	EventTicketStatusChanged      EventType = "ticket_status_changed"
	EventProductCreated           EventType = "product_created"
	EventProductUpdated           EventType = "product_updated"
	EventProductDeleted           EventType = "product_deleted"
	EventProductPurchaseRequested EventType = "product_purchase_requested"
	EventContactSubmitted         EventType = "contact_submitted"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID string      `json:"user_id,omitempty"`
	Role   domain.Role `json:"role,omitempty"`
}

// ActorFor builds an Actor from a signed-in user.
func ActorFor(u domain.User) Actor {
	return Actor{UserID: u.ID, Role: u.Role}
}

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	ResourceID string      `json:"resource_id,omitempty"`
	Actor      Actor       `json:"actor"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Subject  string                `json:"subject"`
	Category string                `json:"category"`
	Priority domain.TicketPriority `json:"priority"`
}

// TicketRepliedPayload payload.
type TicketRepliedPayload struct {
	MessageID   string               `json:"message_id"`
	Sender      domain.MessageSender `json:"sender"`
	BodyPreview string               `json:"body_preview"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// ProductChangedPayload payload for create, update and delete.
type ProductChangedPayload struct {
	Name   string               `json:"name"`
	Status domain.ProductStatus `json:"status,omitempty"`
}

// PurchaseRequestedPayload payload.
type PurchaseRequestedPayload struct {
	ProductName string  `json:"product_name"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
}

// ContactSubmittedPayload payload.
type ContactSubmittedPayload struct {
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Category string `json:"category,omitempty"`
}
