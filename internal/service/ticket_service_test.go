package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fusionware/storefront/internal/domain"
	"github.com/fusionware/storefront/internal/events"
	"github.com/fusionware/storefront/internal/repository"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

func ticketIDs(tickets []domain.Ticket) []string {
	out := make([]string, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, t.ID)
	}
	return out
}

func TestCreateTicketPrependsOpenTicket(t *testing.T) {
	svc, repo, rec := newTicketService(t)
	ctx := context.Background()

	ticket, err := svc.CreateTicket(ctx, customerUser, TicketCreateInput{
		Subject:     "  License key rejected ",
		Description: "The key from my email is rejected.",
		Category:    "technical",
	})
	require.NoError(t, err)
	assert.Equal(t, "TK-005", ticket.ID)
	assert.Equal(t, "License key rejected", ticket.Subject)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Equal(t, domain.TicketPriorityMedium, ticket.Priority)
	assert.Equal(t, testNow, ticket.CreatedAt)
	assert.Equal(t, testNow, ticket.LastUpdate)
	require.Len(t, ticket.Messages, 1)
	assert.Equal(t, domain.SenderCustomer, ticket.Messages[0].Sender)
	assert.Equal(t, "John Doe", ticket.Messages[0].SenderName)
	assert.Equal(t, "The key from my email is rejected.", ticket.Messages[0].Message)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"TK-005", "TK-001", "TK-002", "TK-003", "TK-004"}, ticketIDs(all))
	assert.Equal(t, []events.EventType{events.EventTicketCreated}, rec.types())
}

func TestCreateTicketValidation(t *testing.T) {
	svc, repo, rec := newTicketService(t)
	ctx := context.Background()

	inputs := []TicketCreateInput{
		{Description: "d", Category: "billing"},
		{Subject: "s", Description: "   ", Category: "billing"},
		{Subject: "s", Description: "d"},
		{Subject: "s", Description: "d", Category: "billing", Priority: "critical"},
	}
	for _, input := range inputs {
		_, err := svc.CreateTicket(ctx, customerUser, input)
		assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"), "%+v", input)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Empty(t, rec.types())
}

func TestSupportReplyMovesOpenToInProgress(t *testing.T) {
	svc, _, rec := newTicketService(t)
	ctx := context.Background()

	before, err := svc.GetTicket(ctx, "TK-004")
	require.NoError(t, err)
	require.Equal(t, domain.TicketStatusOpen, before.Status)

	after, err := svc.ReplyAsSupport(ctx, adminUser, "TK-004", "We are looking into it.")
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusInProgress, after.Status)
	assert.Equal(t, testNow, after.LastUpdate)
	require.Len(t, after.Messages, len(before.Messages)+1)
	assert.Equal(t, before.Messages, after.Messages[:len(before.Messages)])

	last := after.Messages[len(after.Messages)-1]
	assert.Equal(t, "2", last.ID)
	assert.Equal(t, domain.SenderSupport, last.Sender)
	assert.Equal(t, "Admin User", last.SenderName)
	assert.Equal(t, testNow, last.Timestamp)

	stored, err := svc.GetTicket(ctx, "TK-004")
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusInProgress, stored.Status)
	assert.Len(t, stored.Messages, 2)
	assert.Equal(t, []events.EventType{events.EventTicketReplied}, rec.types())
}

func TestNextStatusAfterReply(t *testing.T) {
	cases := []struct {
		current domain.TicketStatus
		sender  domain.MessageSender
		want    domain.TicketStatus
	}{
		{domain.TicketStatusOpen, domain.SenderSupport, domain.TicketStatusInProgress},
		{domain.TicketStatusOpen, domain.SenderCustomer, domain.TicketStatusOpen},
		{domain.TicketStatusInProgress, domain.SenderSupport, domain.TicketStatusInProgress},
		{domain.TicketStatusResolved, domain.SenderSupport, domain.TicketStatusResolved},
		{domain.TicketStatusClosed, domain.SenderCustomer, domain.TicketStatusClosed},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NextStatusAfterReply(tc.current, tc.sender))
	}
}

func TestCustomerReplyRules(t *testing.T) {
	svc, _, _ := newTicketService(t)
	ctx := context.Background()

	ticket, err := svc.ReplyAsCustomer(ctx, customerUser, "TK-002", "Any update?")
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Len(t, ticket.Messages, 2)

	_, err = svc.ReplyAsCustomer(ctx, customerUser, "TK-004", "Not mine")
	assert.True(t, apperrors.IsCode(err, "FORBIDDEN"))

	_, err = svc.ReplyAsCustomer(ctx, customerUser, "TK-002", "   ")
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

	_, err = svc.ReplyAsSupport(ctx, adminUser, "TK-999", "hello")
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestChangeStatus(t *testing.T) {
	svc, _, rec := newTicketService(t)
	ctx := context.Background()

	ticket, err := svc.ChangeStatus(ctx, adminUser, "TK-003", domain.TicketStatusOpen)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Equal(t, testNow, ticket.LastUpdate)
	assert.Len(t, ticket.Messages, 2)

	_, err = svc.ChangeStatus(ctx, adminUser, "TK-003", "archived")
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
	assert.Equal(t, []events.EventType{events.EventTicketStatusChanged}, rec.types())
}

func TestTicketListsAndStats(t *testing.T) {
	svc, _, _ := newTicketService(t)
	ctx := context.Background()

	mine, err := svc.ListCustomerTickets(ctx, customerUser, TicketCustomerFilter{Status: "all"})
	require.NoError(t, err)
	assert.Equal(t, []string{"TK-001", "TK-002", "TK-003"}, ticketIDs(mine))

	byID, err := svc.ListCustomerTickets(ctx, customerUser, TicketCustomerFilter{Search: "tk-003"})
	require.NoError(t, err)
	assert.Equal(t, []string{"TK-003"}, ticketIDs(byID))

	open, err := svc.ListCustomerTickets(ctx, customerUser, TicketCustomerFilter{Status: "open"})
	require.NoError(t, err)
	assert.Equal(t, []string{"TK-002"}, ticketIDs(open))

	byCustomer, err := svc.ListAllTickets(ctx, TicketAdminFilter{Search: "sarah"})
	require.NoError(t, err)
	assert.Equal(t, []string{"TK-004"}, ticketIDs(byCustomer))

	urgent, err := svc.ListAllTickets(ctx, TicketAdminFilter{Priority: "urgent", Status: "all"})
	require.NoError(t, err)
	assert.Equal(t, []string{"TK-004"}, ticketIDs(urgent))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStats{Total: 4, Open: 2, InProgress: 1, Urgent: 1}, stats)

	_, err = svc.GetTicketForCustomer(ctx, customerUser, "TK-004")
	assert.True(t, apperrors.IsCode(err, "FORBIDDEN"))
}

func TestStatusHistoryRecordsChanges(t *testing.T) {
	svc, _, _ := newTicketService(t)
	ctx := context.Background()

	_, err := svc.ReplyAsSupport(ctx, adminUser, "TK-002", "On it.")
	require.NoError(t, err)
	_, err = svc.ChangeStatus(ctx, adminUser, "TK-002", domain.TicketStatusResolved)
	require.NoError(t, err)
	_, err = svc.ChangeStatus(ctx, adminUser, "TK-002", domain.TicketStatusResolved)
	require.NoError(t, err)

	history, err := svc.History(ctx, "TK-002")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "open", history[0].OldValue)
	assert.Equal(t, "in-progress", history[0].NewValue)
	assert.Equal(t, "in-progress", history[1].OldValue)
	assert.Equal(t, "resolved", history[1].NewValue)
	assert.Equal(t, domain.ChangeTypeStatus, history[1].ChangeType)
	assert.Equal(t, adminUser.ID, history[1].ChangedByID)

	empty, err := svc.History(ctx, "TK-004")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = svc.History(ctx, "TK-999")
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

// frozenTickets fails every scalar update so replies must persist through AppendMessage alone.
type frozenTickets struct {
	repository.TicketRepository
}

func (frozenTickets) Update(context.Context, *domain.Ticket) error {
	return errors.New("update unavailable")
}

func TestReplyPersistsMessageAndStatusTogether(t *testing.T) {
	repo := repository.NewMemoryTicketRepository(repository.SeedTickets())
	svc := NewTicketService(TicketDependencies{
		TicketRepo:  frozenTickets{repo},
		HistoryRepo: repository.NewMemoryTicketHistoryRepository(),
		Clock:       testClock,
	})
	ctx := context.Background()

	_, err := svc.ReplyAsSupport(ctx, adminUser, "TK-004", "Checking now.")
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, "TK-004")
	require.NoError(t, err)
	require.Len(t, stored.Messages, 2)
	assert.Equal(t, "Checking now.", stored.Messages[1].Message)
	assert.Equal(t, domain.TicketStatusInProgress, stored.Status)
	assert.Equal(t, testNow, stored.LastUpdate)
}

func TestReplyPreviewKeepsWholeCharacters(t *testing.T) {
	svc, _, rec := newTicketService(t)

	_, err := svc.ReplyAsSupport(context.Background(), adminUser, "TK-004", strings.Repeat("é", 200))
	require.NoError(t, err)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.events, 1)
	payload, ok := rec.events[0].Payload.(events.TicketRepliedPayload)
	require.True(t, ok)
	assert.True(t, utf8.ValidString(payload.BodyPreview))
	assert.Equal(t, 140, utf8.RuneCountInString(payload.BodyPreview))
	assert.True(t, strings.HasSuffix(payload.BodyPreview, "..."))
}

func TestStringPreview(t *testing.T) {
	assert.Equal(t, "short", stringPreview("  short  ", 10))
	assert.Equal(t, "日本", stringPreview("日本語", 2))
	assert.Equal(t, "日本語...", stringPreview("日本語のテキスト", 6))
}
