package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fusionware/storefront/internal/domain"
	"github.com/fusionware/storefront/internal/session"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

func TestCredentialTableVerify(t *testing.T) {
	table, err := NewCredentialTable(bcrypt.MinCost)
	require.NoError(t, err)

	admin, err := table.Verify("admin@fusionware.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.Equal(t, "Admin User", admin.Name)

	customer, err := table.Verify("user@example.com", "user123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, customer.Role)
	assert.Equal(t, "2", customer.ID)

	cases := [][2]string{
		{"user@example.com", "admin123"},
		{"nobody@example.com", "user123"},
		{"USER@example.com", "user123"},
		{"", ""},
	}
	for _, tc := range cases {
		_, err := table.Verify(tc[0], tc[1])
		assert.ErrorIs(t, err, ErrInvalidCredentials, tc[0])
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	user := domain.User{ID: "2", Role: domain.RoleCustomer}

	token, expiresAt, err := tm.GenerateToken(user, "sess-1", time.Now())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.ID)
	assert.Equal(t, domain.RoleCustomer, claims.Role)

	_, err = NewTokenManager("other", time.Hour).ParseToken(token)
	assert.Error(t, err)

	expired, _, err := tm.GenerateToken(user, "sess-2", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	_, err = tm.ParseToken(expired)
	assert.Error(t, err)
}

func newTestApp(t *testing.T) (*fiber.App, *TokenManager, *session.MemoryStore) {
	t.Helper()
	tm := NewTokenManager("secret", time.Hour)
	store := session.NewMemoryStore()
	mw := NewAuthMiddleware(tm, store)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).SendString(domainErr.Code)
		},
	})
	app.Get("/me", mw.Handle, func(c *fiber.Ctx) error {
		p, _ := PrincipalFromContext(c)
		return c.SendString(p.User.ID)
	})
	app.Get("/admin", mw.Handle, RequireRole(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})
	return app, tm, store
}

func login(t *testing.T, tm *TokenManager, store session.Store, user domain.User, sessionID string) string {
	t.Helper()
	token, _, err := tm.GenerateToken(user, sessionID, time.Now())
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), domain.Session{ID: sessionID, User: user}, time.Hour))
	return token
}

func doGet(t *testing.T, app *fiber.App, path, token string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthMiddlewareRequiresLiveSession(t *testing.T) {
	app, tm, store := newTestApp(t)
	customer := domain.User{ID: "2", Role: domain.RoleCustomer}
	token := login(t, tm, store, customer, "s1")

	assert.Equal(t, http.StatusOK, doGet(t, app, "/me", token))
	assert.Equal(t, http.StatusUnauthorized, doGet(t, app, "/me", ""))
	assert.Equal(t, http.StatusUnauthorized, doGet(t, app, "/me", "garbage"))

	require.NoError(t, store.Delete(context.Background(), "s1"))
	assert.Equal(t, http.StatusUnauthorized, doGet(t, app, "/me", token))
}

func TestRequireRole(t *testing.T) {
	app, tm, store := newTestApp(t)
	customerToken := login(t, tm, store, domain.User{ID: "2", Role: domain.RoleCustomer}, "c")
	adminToken := login(t, tm, store, domain.User{ID: "1", Role: domain.RoleAdmin}, "a")

	assert.Equal(t, http.StatusForbidden, doGet(t, app, "/admin", customerToken))
	assert.Equal(t, http.StatusNoContent, doGet(t, app, "/admin", adminToken))
}
