// Package session keeps server-side login state so that tokens can be
// revoked on logout.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/fusionware/storefront/internal/domain"
)

// ErrNotFound means the session does not exist, expired or was revoked.
var ErrNotFound = errors.New("session not found")

// Store persists sessions keyed by session id.
type Store interface {
	Save(ctx context.Context, s domain.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
