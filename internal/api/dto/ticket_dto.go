package dto

import (
	"time"

	"github.com/fusionware/storefront/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Subject     string                `json:"subject"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Priority    domain.TicketPriority `json:"priority"`
}

// ReplyRequest payload.
type ReplyRequest struct {
	Message string `json:"message"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// TicketMessageResponse represents thread message.
type TicketMessageResponse struct {
	ID         string               `json:"id"`
	Sender     domain.MessageSender `json:"sender"`
	SenderName string               `json:"senderName"`
	Message    string               `json:"message"`
	Timestamp  time.Time            `json:"timestamp"`
}

// TicketResponse provides full ticket info.
type TicketResponse struct {
	ID            string                  `json:"id"`
	Subject       string                  `json:"subject"`
	Description   string                  `json:"description"`
	Status        domain.TicketStatus     `json:"status"`
	Priority      domain.TicketPriority   `json:"priority"`
	Category      string                  `json:"category"`
	CustomerID    string                  `json:"customerId,omitempty"`
	CustomerName  string                  `json:"customerName"`
	CustomerEmail string                  `json:"customerEmail"`
	AssignedTo    *string                 `json:"assignedTo,omitempty"`
	CreatedAt     time.Time               `json:"createdAt"`
	LastUpdate    time.Time               `json:"lastUpdate"`
	Messages      []TicketMessageResponse `json:"messages"`
}

// TicketStatsResponse summarises the queue.
type TicketStatsResponse struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"inProgress"`
	Urgent     int `json:"urgent"`
}

// TicketHistoryResponse is one audit trail entry.
type TicketHistoryResponse struct {
	ID            string                  `json:"id"`
	ChangedByID   string                  `json:"changedById"`
	ChangedByRole domain.Role             `json:"changedByRole"`
	ChangeType    domain.TicketChangeType `json:"changeType"`
	OldValue      string                  `json:"oldValue"`
	NewValue      string                  `json:"newValue"`
	CreatedAt     time.Time               `json:"createdAt"`
}
