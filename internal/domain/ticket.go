package domain

import (
	"fmt"
	"time"
)

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in-progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// Valid reports whether s is a known status.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// TicketPriority enumerates urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// Valid reports whether p is a known priority.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

// MessageSender indicates which side of the conversation wrote a message.
type MessageSender string

const (
	SenderCustomer MessageSender = "customer"
	SenderSupport  MessageSender = "support"
)

// TicketMessage is one entry in a ticket thread.
type TicketMessage struct {
	ID         string
	Sender     MessageSender
	SenderName string
	Message    string
	Timestamp  time.Time
}

// Ticket is a customer support request with its thread.
type Ticket struct {
	ID            string
	Subject       string
	Description   string
	Status        TicketStatus
	Priority      TicketPriority
	Category      string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	AssignedTo    *string
	Messages      []TicketMessage
	CreatedAt     time.Time
	LastUpdate    time.Time
}

// Clone returns a deep copy of the ticket.
func (t Ticket) Clone() Ticket {
	out := t
	out.Messages = append([]TicketMessage(nil), t.Messages...)
	if t.AssignedTo != nil {
		assignee := *t.AssignedTo
		out.AssignedTo = &assignee
	}
	return out
}

// TicketDisplayID formats the n-th ticket id, e.g. TK-007.
func TicketDisplayID(n int) string {
	return fmt.Sprintf("TK-%03d", n)
}

// TicketStats are the counters shown above the admin ticket list.
type TicketStats struct {
	Total      int
	Open       int
	InProgress int
	Urgent     int
}
