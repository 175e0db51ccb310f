// internal/application/auth_service.go
package application

import (
	"context"

	"github.com/helpway/helpway-core/internal/domain"
	"github.com/helpway/helpway-core/pkg/auth"
)

// AuthService binds the local session to the bearer tokens of gRPC callers.
type AuthService struct {
	sessions *SessionService
	tokens   *auth.Manager
}

func NewAuthService(sessions *SessionService, tokens *auth.Manager) *AuthService {
	return &AuthService{sessions: sessions, tokens: tokens}
}

func (s *AuthService) Issue(sess *domain.Session) (string, error) {
	if sess == nil {
		return "", domain.ErrNoSession
	}
	return s.tokens.GenerateToken(sess.User.ID, sess.User.Email)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	sess, err := s.sessions.Login(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	token, err := s.Issue(sess)
	if err != nil {
		return "", nil, err
	}
	return token, sess, nil
}

// SessionStatus tells a shell what the persisted session allows without
// revealing it.
type SessionStatus struct {
	Active            bool
	BiometricsEnabled bool
}

// Restore reloads the persisted session into memory. It issues no token:
// one comes only from Login or a gated Reauthenticate.
func (s *AuthService) Restore(ctx context.Context) SessionStatus {
	sess := s.sessions.Restore(ctx)
	if sess == nil {
		return SessionStatus{}
	}
	return SessionStatus{Active: true, BiometricsEnabled: sess.BiometricsEnabled}
}

func (s *AuthService) Reauthenticate(ctx context.Context, unlockSecret string) (string, *domain.Session, error) {
	sess, err := s.sessions.ReauthenticateWithStoredCredential(ctx, unlockSecret)
	if err != nil {
		return "", nil, err
	}
	token, err := s.Issue(sess)
	if err != nil {
		return "", nil, err
	}
	return token, sess, nil
}

// Authorize accepts claims only while they name the logged-in user.
func (s *AuthService) Authorize(claims *auth.Claims) error {
	cur := s.sessions.Current()
	if claims == nil || cur == nil || cur.User.ID != claims.UserID {
		return domain.ErrNoSession
	}
	return nil
}

// Logout revokes the caller's token and clears the stored session.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	s.tokens.Revoke(claims)
	return s.sessions.Logout(ctx)
}
