package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherInvokesAllHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()
	var calls []string
	boom := errors.New("boom")

	d.Subscribe(EventTicketCreated, func(context.Context, Event) error {
		calls = append(calls, "first")
		return boom
	})
	d.Subscribe(EventTicketCreated, func(context.Context, Event) error {
		calls = append(calls, "second")
		return nil
	})
	d.Subscribe(EventProductDeleted, func(context.Context, Event) error {
		calls = append(calls, "other")
		return nil
	})
	d.SubscribeAll(func(_ context.Context, e Event) error {
		calls = append(calls, "all:"+string(e.Type))
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventTicketCreated})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"first", "second", "all:ticket_created"}, calls)

	calls = nil
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventContactSubmitted}))
	assert.Equal(t, []string{"all:contact_submitted"}, calls)
}
