package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/fusionware/storefront/internal/events"
)

// EventPublisher forwards events to an external broker.
type EventPublisher interface {
	Publish(name string, payload any) error
}

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	publisher  EventPublisher
}

// NewNotificationService creates the service. publisher may be nil.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, publisher EventPublisher) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		publisher:  publisher,
	}
}

// RegisterHandlers subscribes to every event type.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.SubscribeAll(n.handle)
}

func (n *NotificationService) handle(ctx context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.String("event_id", event.ID),
		zap.String("resource_id", event.ResourceID),
		zap.String("actor", event.Actor.UserID),
		zap.Any("payload", event.Payload),
	)
	n.forward(ctx, event)
	return nil
}

func (n *NotificationService) forward(_ context.Context, event events.Event) {
	if n.publisher == nil {
		return
	}
	if err := n.publisher.Publish(string(event.Type), event); err != nil {
		n.logger.Warn("event publish failed",
			zap.String("event_type", string(event.Type)),
			zap.String("event_id", event.ID),
			zap.Error(err))
	}
}
