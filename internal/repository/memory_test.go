package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionware/storefront/internal/domain"
)

func productIDs(products []domain.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestMemoryProductRepositoryOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository(SeedProducts())

	require.NoError(t, repo.Create(ctx, &domain.Product{ID: "new", Name: "New Tool", Status: domain.ProductStatusDraft}))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "1", "2", "3"}, productIDs(list))

	updated := list[2]
	updated.Name = "Productivity Suite X"
	require.NoError(t, repo.Update(ctx, &updated))

	require.NoError(t, repo.Delete(ctx, "1"))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "2", "3"}, productIDs(list))
	assert.Equal(t, "Productivity Suite X", list[1].Name)

	assert.True(t, IsNotFound(repo.Delete(ctx, "1")))
	_, err = repo.GetByID(ctx, "missing")
	assert.True(t, IsNotFound(err))
}

func TestMemoryProductRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository(SeedProducts())

	p, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	p.Features[0] = "mutated"

	again, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Aimbot", again.Features[0])
}

func TestMemoryTicketRepositoryAssignsIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTicketRepository(SeedTickets())

	ticket := &domain.Ticket{
		Subject:  "Crash",
		Status:   domain.TicketStatusOpen,
		Priority: domain.TicketPriorityMedium,
		Messages: []domain.TicketMessage{{Sender: domain.SenderCustomer, Message: "It crashes"}},
	}
	require.NoError(t, repo.Create(ctx, ticket))
	assert.Equal(t, "TK-005", ticket.ID)
	assert.Equal(t, "1", ticket.Messages[0].ID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, "TK-005", list[0].ID)

	replied := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	msg := &domain.TicketMessage{Sender: domain.SenderSupport, SenderName: "Admin", Message: "Looking", Timestamp: replied}
	require.NoError(t, repo.AppendMessage(ctx, "TK-001", msg, domain.TicketStatusInProgress, replied))
	assert.Equal(t, "4", msg.ID)

	got, err := repo.GetByID(ctx, "TK-001")
	require.NoError(t, err)
	require.Len(t, got.Messages, 4)
	assert.Equal(t, "Looking", got.Messages[3].Message)
	assert.Equal(t, domain.TicketStatusInProgress, got.Status)
	assert.True(t, got.LastUpdate.Equal(replied))

	assert.True(t, IsNotFound(repo.AppendMessage(ctx, "TK-999", &domain.TicketMessage{}, domain.TicketStatusOpen, replied)))
}

func TestMemoryTicketRepositoryUpdateKeepsThread(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTicketRepository(SeedTickets())

	ticket, err := repo.GetByID(ctx, "TK-002")
	require.NoError(t, err)
	ticket.Status = domain.TicketStatusClosed
	ticket.Messages = nil
	require.NoError(t, repo.Update(ctx, ticket))

	got, err := repo.GetByID(ctx, "TK-002")
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusClosed, got.Status)
	assert.Len(t, got.Messages, 1)
}

func TestMemoryPurchaseRepositoryFiltersByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPurchaseRepository(SeedPurchases())

	purchases, err := repo.ListByUser(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, purchases, 3)

	none, err := repo.ListByUser(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, repo.Create(ctx, &domain.Purchase{ID: "4", UserID: "1"}))
	admin, err := repo.ListByUser(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, admin, 1)
}

func TestMemoryProfileRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProfileRepository()

	_, err := repo.Get(ctx, "2")
	assert.True(t, IsNotFound(err))

	require.NoError(t, repo.Save(ctx, &domain.Profile{UserID: "2", Name: "John Doe", Bio: "gamer"}))
	profile, err := repo.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "gamer", profile.Bio)
}

func TestMemoryTicketHistoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTicketHistoryRepository()

	first := &domain.TicketHistory{TicketID: "TK-001", ChangeType: domain.ChangeTypeStatus, OldValue: "open", NewValue: "in-progress"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, &domain.TicketHistory{TicketID: "TK-002", ChangeType: domain.ChangeTypeStatus}))
	require.NoError(t, repo.Create(ctx, &domain.TicketHistory{TicketID: "TK-001", ChangeType: domain.ChangeTypeStatus, OldValue: "in-progress", NewValue: "closed"}))
	assert.Equal(t, "1", first.ID)

	entries, err := repo.ListByTicket(ctx, "TK-001")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "in-progress", entries[0].NewValue)
	assert.Equal(t, "closed", entries[1].NewValue)

	none, err := repo.ListByTicket(ctx, "TK-404")
	require.NoError(t, err)
	assert.Empty(t, none)
}
