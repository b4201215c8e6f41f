package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"lumenquest/internal/config"
	"lumenquest/internal/ids"
	"lumenquest/internal/models"
	"lumenquest/internal/portal"
	"lumenquest/internal/repository"
	"lumenquest/internal/security"
	"lumenquest/internal/session"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
)

type AuthService struct {
	users    UserRepository
	sessions session.Store
	portals  *portal.Registry
	hasher   *security.Hasher
	cfg      *config.AppConfig
	log      zerolog.Logger
	now      func() time.Time
}

func NewAuthService(
	users UserRepository,
	sessions session.Store,
	portals *portal.Registry,
	hasher *security.Hasher,
	cfg *config.AppConfig,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		portals:  portals,
		hasher:   hasher,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	SessionID   string
	Identity    models.Identity
}

// Login checks the credentials after the configured latency. Unknown users
// and wrong passwords both yield ErrInvalidCredentials and leave no session.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return AuthResult{}, err
	}

	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("stored password hash unreadable")
		return AuthResult{}, ErrInvalidCredentials
	}
	if !ok {
		return AuthResult{}, ErrInvalidCredentials
	}

	return s.createSession(ctx, user.Identity())
}

type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Signup always creates a user-role identity and signs it in. A credential
// is stored when a password is given and the email is still free, so the
// new account can log in again later.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (AuthResult, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return AuthResult{}, err
	}

	user := models.User{
		ID:        ids.New(),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Role:      models.UserRoleUser,
		CreatedAt: s.now().UTC(),
	}

	if input.Password != "" {
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return AuthResult{}, err
		}
		user.PasswordHash = hash

		switch err := s.users.Create(ctx, user); {
		case errors.Is(err, repository.ErrEmailTaken):
			s.log.Info().Str("email", user.Email).Msg("signup for registered email, credential not stored")
		case err != nil:
			return AuthResult{}, fmt.Errorf("store credential: %w", err)
		}
	}

	return s.createSession(ctx, user.Identity())
}

// Logout removes the persisted identity and the session's portal state.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	s.portals.Forget(sessionID)
	if err := s.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, session.ErrSessionNotFound) {
		return err
	}
	s.log.Info().Str("session_id", sessionID).Msg("session closed")
	return nil
}

// Restore returns the identity persisted for sessionID while it is alive.
// An expired session also loses its portal state.
func (s *AuthService) Restore(ctx context.Context, sessionID string) (models.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			s.portals.Forget(sessionID)
			return models.Session{}, ErrUnauthenticated
		}
		return models.Session{}, err
	}
	return sess, nil
}

// PrunePortals drops the portal state of sessions that expired without a
// logout and returns how many were dropped.
func (s *AuthService) PrunePortals(ctx context.Context) (int, error) {
	pruned := 0
	for _, id := range s.portals.Sessions() {
		_, err := s.sessions.Get(ctx, id)
		if err == nil {
			continue
		}
		if !errors.Is(err, session.ErrSessionNotFound) {
			return pruned, err
		}
		s.portals.Forget(id)
		pruned++
	}
	return pruned, nil
}

// Resume restores sessionID and issues a fresh access token for it, the
// way a reloaded client picks up its persisted identity.
func (s *AuthService) Resume(ctx context.Context, sessionID string) (AuthResult, error) {
	sess, err := s.Restore(ctx, sessionID)
	if err != nil {
		return AuthResult{}, err
	}
	now := s.now()
	ttl := min(s.cfg.Security.JWTAccessTTL, sess.ExpiresAt.Sub(now))
	token, expiresAt, err := security.GenerateAccessToken(s.cfg.Security.JWTAccessSecret, sess.Identity, sess.ID, ttl, now)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		SessionID:   sess.ID,
		Identity:    sess.Identity,
	}, nil
}

// Authenticate resolves a bearer token to its live session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (models.Session, error) {
	claims, err := security.ParseAccessToken(token, s.cfg.Security.JWTAccessSecret)
	if err != nil {
		return models.Session{}, ErrUnauthenticated
	}
	sess, err := s.Restore(ctx, claims.SessionID)
	if err != nil {
		return models.Session{}, err
	}
	if sess.Identity.ID != claims.UserID() {
		return models.Session{}, ErrUnauthenticated
	}
	return sess, nil
}

// SeedUser stores a credential unless the email is already registered.
func (s *AuthService) SeedUser(ctx context.Context, id, email, password, firstName, lastName string, role models.UserRole) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	err = s.users.Create(ctx, models.User{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
		CreatedAt:    s.now().UTC(),
	})
	if errors.Is(err, repository.ErrEmailTaken) {
		return nil
	}
	return err
}

func (s *AuthService) createSession(ctx context.Context, identity models.Identity) (AuthResult, error) {
	now := s.now()
	sess := models.Session{
		ID:        ids.New(),
		Identity:  identity,
		ExpiresAt: now.Add(s.cfg.Security.SessionTTL),
	}

	ttl := min(s.cfg.Security.JWTAccessTTL, s.cfg.Security.SessionTTL)
	token, expiresAt, err := security.GenerateAccessToken(s.cfg.Security.JWTAccessSecret, identity, sess.ID, ttl, now)
	if err != nil {
		return AuthResult{}, err
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return AuthResult{}, fmt.Errorf("persist session: %w", err)
	}

	s.log.Info().
		Str("session_id", sess.ID).
		Str("user_id", identity.ID).
		Str("role", string(identity.Role)).
		Msg("session opened")

	return AuthResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		SessionID:   sess.ID,
		Identity:    identity,
	}, nil
}

func (s *AuthService) simulateLatency(ctx context.Context) error {
	delay := s.cfg.Auth.SimulatedDelay
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
