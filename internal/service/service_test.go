package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fusionware/storefront/internal/auth"
	"github.com/fusionware/storefront/internal/domain"
	"github.com/fusionware/storefront/internal/events"
	"github.com/fusionware/storefront/internal/repository"
	"github.com/fusionware/storefront/internal/session"
)

var (
	testNow   = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	testClock = func() time.Time { return testNow }

	adminUser    = domain.User{ID: "1", Name: "Admin User", Email: "admin@fusionware.com", Role: domain.RoleAdmin}
	customerUser = domain.User{ID: "2", Name: "John Doe", Email: "user@example.com", Role: domain.RoleCustomer}
)

// recorder captures published events.
type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func newRecorder() (*recorder, events.Dispatcher) {
	r := &recorder{}
	d := events.NewInMemoryDispatcher()
	d.SubscribeAll(func(_ context.Context, e events.Event) error {
		r.mu.Lock()
		r.events = append(r.events, e)
		r.mu.Unlock()
		return nil
	})
	return r, d
}

func (r *recorder) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	table, err := auth.NewCredentialTable(bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService(AuthDependencies{
		Credentials: table,
		Tokens:      auth.NewTokenManager("test-secret", time.Hour),
		Sessions:    session.NewMemoryStore(),
	})
}

func newTicketService(t *testing.T) (*TicketService, repository.TicketRepository, *recorder) {
	t.Helper()
	rec, dispatcher := newRecorder()
	repo := repository.NewMemoryTicketRepository(repository.SeedTickets())
	return NewTicketService(TicketDependencies{
		TicketRepo:  repo,
		HistoryRepo: repository.NewMemoryTicketHistoryRepository(),
		Dispatcher:  dispatcher,
		Clock:       testClock,
	}), repo, rec
}

func newProductService(t *testing.T) (*ProductService, repository.ProductRepository, *recorder) {
	t.Helper()
	rec, dispatcher := newRecorder()
	repo := repository.NewMemoryProductRepository(repository.SeedProducts())
	return NewProductService(ProductDependencies{ProductRepo: repo, Dispatcher: dispatcher, Clock: testClock}), repo, rec
}
