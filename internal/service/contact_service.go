package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/fusionware/storefront/internal/domain"
	"github.com/fusionware/storefront/internal/events"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

// ContactAcknowledgement is returned to the sender after a successful submit.
const ContactAcknowledgement = "We'll get back to you within 24 hours."

// ContactService accepts public contact-form messages.
type ContactService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        Clock
}

// ContactDependencies bundles contact requirements.
type ContactDependencies struct {
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	Clock      Clock
}

// NewContactService constructs the service.
func NewContactService(deps ContactDependencies) *ContactService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{dispatcher: deps.Dispatcher, logger: logger, now: clockOrNow(deps.Clock)}
}

// Submit validates and forwards a contact message.
func (s *ContactService) Submit(ctx context.Context, msg domain.ContactMessage) (string, error) {
	if err := required(
		field{"name", msg.Name},
		field{"email", msg.Email},
		field{"subject", msg.Subject},
		field{"message", msg.Message},
	); err != nil {
		return "", err
	}
	if !strings.Contains(msg.Email, "@") {
		return "", apperrors.NewValidationError("invalid email", map[string]any{"email": msg.Email})
	}

	s.logger.Info("contact message received",
		zap.String("email", msg.Email),
		zap.String("subject", msg.Subject),
		zap.String("category", msg.Category),
	)
	publishEvent(ctx, s.dispatcher, s.now, events.Event{
		Type: events.EventContactSubmitted,
		Payload: events.ContactSubmittedPayload{
			Email:    strings.TrimSpace(msg.Email),
			Subject:  strings.TrimSpace(msg.Subject),
			Category: strings.TrimSpace(msg.Category),
		},
	})
	return ContactAcknowledgement, nil
}
