package mq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopic(t *testing.T) {
	assert.Equal(t, "fusionware/ticket_created", NewPublisher(nil, "fusionware").Topic("ticket_created"))
	assert.Equal(t, "ticket_created", NewPublisher(nil, "").Topic("ticket_created"))
}

func TestPublishWithoutClient(t *testing.T) {
	err := NewPublisher(nil, "fusionware").Publish("ticket_created", map[string]string{"id": "TK-001"})
	assert.ErrorIs(t, err, ErrNotConnected)
}
