package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fusionware/storefront/internal/domain"
	"github.com/fusionware/storefront/internal/session"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	User      domain.User
	SessionID string
}

// AuthMiddleware validates bearer tokens against the session store.
type AuthMiddleware struct {
	tokens   *TokenManager
	sessions session.Store
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, sessions session.Store) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, sessions: sessions}
}

// Handle enforces authentication for protected routes. A token whose
// session was revoked at logout is rejected like an invalid one.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	principal, err := m.Authenticate(c)
	if err != nil {
		return err
	}
	c.Locals(principalKey, principal)
	return c.Next()
}

// Authenticate resolves the bearer token of the request to a live session.
func (m *AuthMiddleware) Authenticate(c *fiber.Ctx) (*Principal, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return nil, apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid token")
	}

	ss, err := m.sessions.Get(c.UserContext(), claims.ID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, apperrors.NewUnauthorized("session expired")
		}
		return nil, apperrors.MapError(err)
	}
	return &Principal{User: ss.User, SessionID: ss.ID}, nil
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
