// internal/application/session_service.go
package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/helpway/helpway-core/internal/domain"
	"github.com/helpway/helpway-core/internal/ports"
)

const (
	sessionKey    = "session"
	biometricsKey = "biometrics_enabled"
)

// SessionService owns the locally cached identity. One instance per process.
type SessionService struct {
	api   ports.HelpwayAPIPort
	store ports.SecureStorePort
	gate  ports.UnlockPort

	mu      sync.RWMutex
	current *domain.Session
}

func NewSessionService(api ports.HelpwayAPIPort, store ports.SecureStorePort, gate ports.UnlockPort) *SessionService {
	return &SessionService{api: api, store: store, gate: gate}
}

// Current returns a copy of the in-memory session, or nil when logged out.
func (s *SessionService) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

func (s *SessionService) set(sess *domain.Session) {
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
}

// load reads the persisted session without touching memory.
func (s *SessionService) load(ctx context.Context) (*domain.Session, error) {
	raw, err := s.store.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("%w: decode session: %v", domain.ErrStorage, err)
	}
	if !sess.Complete() {
		return nil, fmt.Errorf("%w: incomplete session", domain.ErrStorage)
	}
	flag, err := s.store.Get(ctx, biometricsKey)
	if err != nil {
		log.Printf("session: biometrics preference unreadable, treating as disabled: %v", err)
	}
	sess.BiometricsEnabled = string(flag) == "true"
	return &sess, nil
}

// Restore loads the persisted session at startup. Any storage problem
// degrades to the logged-out state.
func (s *SessionService) Restore(ctx context.Context) *domain.Session {
	sess, err := s.load(ctx)
	if err != nil {
		log.Printf("session: restore failed, starting logged out: %v", err)
		s.set(nil)
		return nil
	}
	s.set(sess)
	if sess == nil {
		return nil
	}
	cp := *sess
	return &cp
}

// Save persists a complete session and then makes it current. The biometrics
// flag survives only a save for the same user.
func (s *SessionService) Save(ctx context.Context, sess domain.Session) error {
	if !sess.Complete() {
		return domain.Invalid("session", "Sessão incompleta")
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, sessionKey, raw); err != nil {
		return err
	}
	if prev := s.Current(); prev != nil && prev.User.ID != sess.User.ID {
		if err := s.store.Delete(ctx, biometricsKey); err != nil {
			log.Printf("session: dropping previous user's biometrics preference: %v", err)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		sess.BiometricsEnabled = s.current.User.ID == sess.User.ID && s.current.BiometricsEnabled
	}
	s.current = &sess
	return nil
}

// Clear removes the session blob, the biometrics preference and the unlock
// secret. Every delete is attempted; memory is reset regardless of their outcome.
func (s *SessionService) Clear(ctx context.Context) error {
	errs := []error{
		s.store.Delete(ctx, sessionKey),
		s.store.Delete(ctx, biometricsKey),
	}
	if s.gate != nil {
		errs = append(errs, s.gate.Reset(ctx))
	}
	err := errors.Join(errs...)
	s.set(nil)
	if err != nil {
		log.Printf("session: clear incomplete: %v", err)
	}
	return err
}

// Login validates input, authenticates remotely and persists the session.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.Invalid("credentials", "Preencha email e senha")
	}
	user, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.Save(ctx, domain.Session{User: *user, Credential: password}); err != nil {
		return nil, err
	}
	return s.Current(), nil
}

func (s *SessionService) Logout(ctx context.Context) error {
	return s.Clear(ctx)
}

// UpdateUser replaces the cached user and, when non-empty, the credential.
func (s *SessionService) UpdateUser(ctx context.Context, user domain.User, credential string) error {
	cur := s.Current()
	if cur == nil {
		return domain.ErrNoSession
	}
	cur.User = user
	if credential != "" {
		cur.Credential = credential
	}
	return s.Save(ctx, *cur)
}

func (s *SessionService) SetBiometricsEnabled(ctx context.Context, enabled bool) error {
	if s.Current() == nil {
		return domain.ErrNoSession
	}
	var err error
	if enabled {
		err = s.store.Put(ctx, biometricsKey, []byte("true"))
	} else {
		err = s.store.Delete(ctx, biometricsKey)
	}
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.current.BiometricsEnabled = enabled
	}
	return nil
}

// ReauthenticateWithStoredCredential passes the local unlock gate and then
// replays the stored credential against the login endpoint. On failure the
// stored session is left as it was.
func (s *SessionService) ReauthenticateWithStoredCredential(ctx context.Context, unlockSecret string) (*domain.Session, error) {
	stored, err := s.load(ctx)
	if err != nil {
		log.Printf("session: stored credential unavailable: %v", err)
		return nil, domain.ErrNoSession
	}
	if stored == nil {
		return nil, domain.ErrNoSession
	}
	if !stored.BiometricsEnabled {
		return nil, domain.ErrBiometricsDisabled
	}
	if s.gate == nil {
		return nil, domain.ErrUnlockNotSet
	}
	if err := s.gate.Unlock(ctx, unlockSecret); err != nil {
		return nil, err
	}

	user, err := s.api.Login(ctx, stored.User.Email, stored.Credential)
	if err != nil {
		return nil, err
	}
	refreshed := domain.Session{User: *user, Credential: stored.Credential, BiometricsEnabled: true}
	raw, err := json.Marshal(refreshed)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, sessionKey, raw); err != nil {
		return nil, err
	}
	s.set(&refreshed)
	return s.Current(), nil
}
