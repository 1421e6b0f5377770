package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhath/sqlscribe/internal/api"
	"github.com/nhath/sqlscribe/internal/state"
)

func newTestStore(t *testing.T) *state.Store {
	t.Helper()
	dir := t.TempDir()
	return state.New(
		state.NewFileBackend(filepath.Join(dir, "session.json"), nil),
		state.NewFileBackend(filepath.Join(dir, "state.json"), nil),
	)
}

func newTestSession(t *testing.T, handler http.HandlerFunc) (*Session, *state.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := newTestStore(t)
	return NewSession(api.New(srv.URL, nil), store, nil), store
}

func TestSignInPersistsIdentity(t *testing.T) {
	sess, store := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]string{"email": "a@x.com", "name": "Alice"},
		})
	})

	require.False(t, sess.SignedIn())
	require.NoError(t, sess.SignIn(context.Background(), "a@x.com", "pw"))
	require.True(t, sess.SignedIn())
	assert.Equal(t, "a@x.com", sess.Email())

	blob, ok := store.Get(state.ScopeSession, state.IdentityKey)
	require.True(t, ok)
	var id api.Identity
	require.NoError(t, json.Unmarshal([]byte(blob), &id))
	assert.Equal(t, "Alice", id.Name)
}

func TestSignInFailureCarriesServerMessage(t *testing.T) {
	sess, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "invalid email or password"})
	})

	err := sess.SignIn(context.Background(), "a@x.com", "wrong")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "invalid email or password", authErr.Message)
	assert.False(t, sess.SignedIn())
}

func TestSignUpNeverAuthenticates(t *testing.T) {
	sess, store := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/signup", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"message": "check your inbox"})
	})

	require.NoError(t, sess.SignUp(context.Background(), "new@x.com", "pw"))
	assert.False(t, sess.SignedIn(), "signup must not set the current identity")
	_, ok := store.Get(state.ScopeSession, state.IdentityKey)
	assert.False(t, ok)
}

func TestSignOutClearsPersistedIdentity(t *testing.T) {
	sess, store := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"user": map[string]string{"email": "a@x.com"}})
	})
	require.NoError(t, sess.SignIn(context.Background(), "a@x.com", "pw"))

	sess.SignOut()
	assert.False(t, sess.SignedIn())
	_, ok := store.Get(state.ScopeSession, state.IdentityKey)
	assert.False(t, ok, "persisted identity should be removed")

	// After sign-out, workspace settings resolve against the default namespace.
	settings := state.NewSettingsStore(store)
	got := settings.ForAccount(sess.Email())
	assert.Equal(t, state.DialectMySQL, got.Dialect)
}

func TestNewSessionRestoresPersistedIdentity(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set(state.ScopeSession, state.IdentityKey, `{"email":"a@x.com"}`))

	sess := NewSession(api.New("http://localhost:0", nil), store, nil)
	assert.True(t, sess.SignedIn())
	assert.Equal(t, "a@x.com", sess.Email())
}

func TestNewSessionTreatsGarbageAsSignedOut(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set(state.ScopeSession, state.IdentityKey, "{broken"))

	sess := NewSession(api.New("http://localhost:0", nil), store, nil)
	assert.False(t, sess.SignedIn())
}
