// Package auth manages the signed-in identity: sign-in and sign-up against
// the remote service, and persistence of the identity in the session scope.
//
// The session is an explicit object constructed at startup, never a package
// singleton. It reads the persisted identity exactly once on construction;
// an absent or unparsable entry means "not signed in", never an error.
package auth

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/nhath/sqlscribe/internal/api"
	"github.com/nhath/sqlscribe/internal/state"
)

// AuthError is a rejected sign-in or sign-up. Message is user-facing.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// Session tracks the current identity.
type Session struct {
	client  *api.Client
	store   *state.Store
	log     *zap.Logger
	current *api.Identity
}

// NewSession constructs a session and loads any persisted identity.
func NewSession(client *api.Client, store *state.Store, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{client: client, store: store, log: log}
	s.current = loadIdentity(store, log)
	return s
}

func loadIdentity(store *state.Store, log *zap.Logger) *api.Identity {
	blob, ok := store.Get(state.ScopeSession, state.IdentityKey)
	if !ok {
		return nil
	}
	var id api.Identity
	if err := json.Unmarshal([]byte(blob), &id); err != nil || id.Email == "" {
		log.Warn("persisted identity unparsable, treating as signed out", zap.Error(err))
		return nil
	}
	return &id
}

// Current returns the signed-in identity, or nil when signed out.
func (s *Session) Current() *api.Identity { return s.current }

// Email returns the current account email, empty when signed out.
func (s *Session) Email() string {
	if s.current == nil {
		return ""
	}
	return s.current.Email
}

// SignedIn reports whether an identity is present.
func (s *Session) SignedIn() bool { return s.current != nil }

// SignIn performs one login exchange, persists the resulting identity, and
// makes it current. Failures are AuthError with the server's message when
// one was provided.
func (s *Session) SignIn(ctx context.Context, email, password string) error {
	id, err := s.client.Login(ctx, email, password)
	if err != nil {
		return asAuthError(err, "Login failed")
	}

	blob, err := json.Marshal(id)
	if err != nil {
		return err
	}
	if err := s.store.Set(state.ScopeSession, state.IdentityKey, string(blob)); err != nil {
		s.log.Warn("could not persist identity", zap.Error(err))
	}
	s.current = &id
	return nil
}

// SignUp registers an account. It never sets the current identity: the
// product requires a separate sign-in so email verification can happen.
func (s *Session) SignUp(ctx context.Context, email, password string) error {
	if err := s.client.Signup(ctx, email, password); err != nil {
		return asAuthError(err, "Signup failed")
	}
	return nil
}

// SignOut clears the current identity and its persisted entry. It is
// synchronous and cannot fail; a storage hiccup is logged and swallowed.
func (s *Session) SignOut() {
	s.current = nil
	if err := s.store.Remove(state.ScopeSession, state.IdentityKey); err != nil {
		s.log.Warn("could not clear persisted identity", zap.Error(err))
	}
}

func asAuthError(err error, generic string) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return &AuthError{Message: apiErr.Message}
	}
	return &AuthError{Message: generic}
}
