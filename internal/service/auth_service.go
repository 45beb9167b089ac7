package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fusionware/storefront/internal/auth"
	"github.com/fusionware/storefront/internal/domain"
	"github.com/fusionware/storefront/internal/session"
	apperrors "github.com/fusionware/storefront/pkg/util"
)

// InvalidCredentialsMessage is the only failure text login ever reports.
const InvalidCredentialsMessage = "Invalid credentials"

// AuthService coordinates login, logout and session restore.
type AuthService struct {
	credentials *auth.CredentialTable
	tokens      *auth.TokenManager
	sessions    session.Store
	logger      *zap.Logger
	now         Clock
}

// AuthDependencies encapsulates requirements for auth service.
type AuthDependencies struct {
	Credentials *auth.CredentialTable
	Tokens      *auth.TokenManager
	Sessions    session.Store
	Logger      *zap.Logger
	Clock       Clock
}

// LoginResult is the signed-in user with its access token.
type LoginResult struct {
	User      domain.User
	Token     string
	ExpiresAt time.Time
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		credentials: deps.Credentials,
		tokens:      deps.Tokens,
		sessions:    deps.Sessions,
		logger:      logger,
		now:         clockOrNow(deps.Clock),
	}
}

// Login matches the pair against the credential table and opens a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.credentials.Verify(email, password)
	if err != nil {
		return nil, apperrors.NewUnauthorized(InvalidCredentialsMessage)
	}

	issuedAt := s.now()
	sessionID := uuid.NewString()
	token, expiresAt, err := s.tokens.GenerateToken(user, sessionID, issuedAt)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	ss := domain.Session{ID: sessionID, User: user, IssuedAt: issuedAt, ExpiresAt: expiresAt}
	if err := s.sessions.Save(ctx, ss, s.tokens.TTL()); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return &LoginResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the session; tokens bound to it stop working.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return apperrors.NewInternalError(err)
	}
	s.logger.Info("user logged out", zap.String("session_id", sessionID))
	return nil
}

// CurrentUser restores the user stored for the session.
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (*domain.User, error) {
	ss, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, apperrors.NewUnauthorized("session expired")
		}
		return nil, apperrors.NewInternalError(err)
	}
	user := ss.User
	return &user, nil
}
