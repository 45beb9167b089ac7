package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fusionware/storefront/internal/events"
	"github.com/fusionware/storefront/internal/repository"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

// Clock returns the current time. Services default to time.Now.
type Clock func() time.Time

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

// filterAll is the wildcard accepted by category, status and priority filters.
const filterAll = "all"

func isWildcard(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, filterAll)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func publishEvent(ctx context.Context, dispatcher events.Dispatcher, now Clock, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = now()
	}
	_ = dispatcher.Publish(ctx, event)
}

// mapRepoError converts repository failures into DomainErrors.
func mapRepoError(err error, resource, id string) error {
	if repository.IsNotFound(err) {
		return apperrors.NewNotFound(resource, map[string]any{"id": id})
	}
	return apperrors.MapError(err)
}

func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	runes := []rune(body)
	if len(runes) <= max {
		return body
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// field is a named input value checked by required.
type field struct {
	name  string
	value string
}

// required fails with a validation error listing every blank field.
func required(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return apperrors.NewValidationError(strings.Join(missing, ", ")+" required", map[string]any{"fields": missing})
}
