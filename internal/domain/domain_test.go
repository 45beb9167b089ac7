package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysRemainingRoundsUp(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	p := Purchase{ExpiryDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t, 22, p.DaysRemaining(now))

	expired := Purchase{ExpiryDate: time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)}
	assert.Equal(t, -2, expired.DaysRemaining(now))
}

func TestTicketDisplayID(t *testing.T) {
	assert.Equal(t, "TK-001", TicketDisplayID(1))
	assert.Equal(t, "TK-042", TicketDisplayID(42))
	assert.Equal(t, "TK-1000", TicketDisplayID(1000))
}

func TestProductCloneIsDeep(t *testing.T) {
	p := Product{Features: []string{"VPN Access"}, Durations: []Duration{{Label: "1 Month", Days: 30, Price: 39.99}}}
	c := p.Clone()
	c.Features[0] = "changed"
	c.Durations[0].Price = 1

	assert.Equal(t, "VPN Access", p.Features[0])
	assert.Equal(t, 39.99, p.Durations[0].Price)
}

func TestTicketCloneIsDeep(t *testing.T) {
	agent := "Support Agent 1"
	tk := Ticket{AssignedTo: &agent, Messages: []TicketMessage{{ID: "1", Message: "hi"}}}
	c := tk.Clone()
	c.Messages[0].Message = "changed"
	*c.AssignedTo = "other"

	assert.Equal(t, "hi", tk.Messages[0].Message)
	assert.Equal(t, "Support Agent 1", *tk.AssignedTo)
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, TicketStatusInProgress.Valid())
	assert.False(t, TicketStatus("pending").Valid())
	assert.True(t, TicketPriorityUrgent.Valid())
	assert.False(t, TicketPriority("").Valid())
	assert.True(t, ProductStatusDraft.Valid())
	assert.False(t, ProductStatus("archived").Valid())
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	assert.False(t, Session{}.Expired(now))
	assert.True(t, Session{ExpiresAt: now.Add(-time.Second)}.Expired(now))
	assert.False(t, Session{ExpiresAt: now.Add(time.Minute)}.Expired(now))
}
