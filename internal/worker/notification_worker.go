package worker

import (
	"go.uber.org/zap"

	"github.com/fusionware/storefront/internal/events"
	"github.com/fusionware/storefront/internal/service"
)

// StartNotificationWorker subscribes the notification fan-out to the
// dispatcher. publisher may be nil, in which case events are only logged.
func StartNotificationWorker(dispatcher events.Dispatcher, logger *zap.Logger, publisher service.EventPublisher) *service.NotificationService {
	notifications := service.NewNotificationService(dispatcher, logger, publisher)
	notifications.RegisterHandlers()
	return notifications
}
