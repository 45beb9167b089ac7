package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/fusionware/storefront/internal/domain"
)

// TicketRepository encapsulates ticket persistence. List returns tickets
// newest first with their message threads.
type TicketRepository interface {
	List(ctx context.Context) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	// Create assigns the next display id when ticket.ID is empty and places
	// the ticket at the head of the list.
	Create(ctx context.Context, ticket *domain.Ticket) error
	// Update persists scalar fields only; the message thread is left as is.
	Update(ctx context.Context, ticket *domain.Ticket) error
	// AppendMessage adds msg to the end of the thread, assigning its id, and
	// sets the ticket status and last update in the same write.
	AppendMessage(ctx context.Context, ticketID string, msg *domain.TicketMessage, status domain.TicketStatus, lastUpdate time.Time) error
}

type memoryTicketRepository struct {
	mu    sync.RWMutex
	items []domain.Ticket
}

// NewMemoryTicketRepository returns an in-memory store holding a copy of seed.
func NewMemoryTicketRepository(seed []domain.Ticket) TicketRepository {
	items := make([]domain.Ticket, 0, len(seed))
	for _, t := range seed {
		items = append(items, t.Clone())
	}
	return &memoryTicketRepository{items: items}
}

func (r *memoryTicketRepository) List(_ context.Context) ([]domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Ticket, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, t.Clone())
	}
	return out, nil
}

func (r *memoryTicketRepository) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := r.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	t := r.items[idx].Clone()
	return &t, nil
}

func (r *memoryTicketRepository) Create(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ticket.ID == "" {
		ticket.ID = domain.TicketDisplayID(len(r.items) + 1)
	}
	for i := range ticket.Messages {
		if ticket.Messages[i].ID == "" {
			ticket.Messages[i].ID = strconv.Itoa(i + 1)
		}
	}
	items := make([]domain.Ticket, 0, len(r.items)+1)
	items = append(items, ticket.Clone())
	r.items = append(items, r.items...)
	return nil
}

func (r *memoryTicketRepository) Update(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexOf(ticket.ID)
	if idx < 0 {
		return ErrNotFound
	}
	updated := ticket.Clone()
	updated.Messages = r.items[idx].Messages
	r.items[idx] = updated
	return nil
}

func (r *memoryTicketRepository) AppendMessage(_ context.Context, ticketID string, msg *domain.TicketMessage, status domain.TicketStatus, lastUpdate time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexOf(ticketID)
	if idx < 0 {
		return ErrNotFound
	}
	current := r.items[idx].Messages
	msg.ID = strconv.Itoa(len(current) + 1)
	messages := make([]domain.TicketMessage, 0, len(current)+1)
	messages = append(messages, current...)
	r.items[idx].Messages = append(messages, *msg)
	r.items[idx].Status = status
	r.items[idx].LastUpdate = lastUpdate
	return nil
}

func (r *memoryTicketRepository) indexOf(id string) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
