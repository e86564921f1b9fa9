// Package authclient is the client half of the authentication flow: it
// talks to an Authenticator, caches the signed-in identity for the process
// lifetime, and persists that identity to its own storage key, separate from
// the content snapshot.
package authclient

import (
	"context"

	"go.uber.org/zap"
)

// Identity is the signed-in user as the client sees it.
type Identity struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Authenticator performs the actual credential exchange. The HTTP
// implementation talks to the backend; tests use the local stub.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*Identity, string, error)
	Register(ctx context.Context, name, email, password string) (*Identity, string, error)
}

// AuthStore holds the session state. Login and Register report failure as a
// plain false: bad credentials and transport errors both surface to the UI
// as a negative result, never a panic or half-established session.
type AuthStore struct {
	logger    *zap.Logger
	auth      Authenticator
	persister StatePersister

	user            *Identity
	token           string
	isAuthenticated bool
}

func NewAuthStore(logger *zap.Logger, auth Authenticator, persister StatePersister) *AuthStore {
	s := &AuthStore{logger: logger, auth: auth, persister: persister}
	if persister != nil {
		st := persister.Load()
		s.user = st.User
		s.token = st.Token
		s.isAuthenticated = st.IsAuthenticated
	}
	return s
}

// Login exchanges credentials for a session. Returns false on any failure,
// leaving the store untouched.
func (s *AuthStore) Login(ctx context.Context, email, password string) bool {
	user, token, err := s.auth.Login(ctx, email, password)
	if err != nil || user == nil {
		if err != nil && s.logger != nil {
			s.logger.Sugar().Warnw("login failed", "email", email, "err", err)
		}
		return false
	}

	s.establish(user, token)
	return true
}

// Register creates an account and establishes a session. Returns false on
// any failure, leaving the store untouched.
func (s *AuthStore) Register(ctx context.Context, name, email, password string) bool {
	user, token, err := s.auth.Register(ctx, name, email, password)
	if err != nil || user == nil {
		if err != nil && s.logger != nil {
			s.logger.Sugar().Warnw("register failed", "email", email, "err", err)
		}
		return false
	}

	s.establish(user, token)
	return true
}

// Logout drops the session.
func (s *AuthStore) Logout() {
	s.user = nil
	s.token = ""
	s.isAuthenticated = false
	s.persist()
}

func (s *AuthStore) IsAuthenticated() bool { return s.isAuthenticated }

func (s *AuthStore) CurrentUser() *Identity { return s.user }

// Token returns the bearer token for authenticated API calls.
func (s *AuthStore) Token() string { return s.token }

func (s *AuthStore) establish(user *Identity, token string) {
	s.user = user
	s.token = token
	s.isAuthenticated = true
	s.persist()
}

func (s *AuthStore) persist() {
	if s.persister == nil {
		return
	}
	err := s.persister.Persist(State{
		User:            s.user,
		Token:           s.token,
		IsAuthenticated: s.isAuthenticated,
	})
	if err != nil && s.logger != nil {
		s.logger.Sugar().Warnw("auth snapshot persist failed", "err", err)
	}
}
