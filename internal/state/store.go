// Package state persists client-side state across runs: the signed-in
// identity, per-account workspace settings, and UI flags.
//
// Two storage scopes exist. The session scope holds the identity blob in the
// OS keyring; the durable scope is a JSON key-value file in the XDG state
// directory. Both are direct pass-throughs: no caching, no coalescing,
// last write wins.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/99designs/keyring"
	"github.com/adrg/xdg"
	"go.uber.org/zap"
)

const serviceName = "sqlscribe"

// Scope selects one of the two storage areas.
type Scope int

const (
	// ScopeSession holds sign-in state; cleared on sign-out.
	ScopeSession Scope = iota
	// ScopeDurable holds settings that outlive the session.
	ScopeDurable
)

// IdentityKey is the fixed session-scope key holding the identity blob.
const IdentityKey = "user"

// SidebarCollapsedKey is the durable-scope key for the sidebar flag.
const SidebarCollapsedKey = "sidebarCollapsed"

// Backend is a minimal key-value store behind one scope.
type Backend interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// Store exposes the two scopes behind one Get/Set/Remove contract.
type Store struct {
	session Backend
	durable Backend
}

// New builds a store from explicit backends. Tests use file backends for
// both scopes.
func New(session, durable Backend) *Store {
	return &Store{session: session, durable: durable}
}

// Open builds the default store: keyring session scope, JSON file durable
// scope under the XDG state dir.
func Open(log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	ring, err := keyring.Open(keyring.Config{ServiceName: serviceName})
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring: %w", err)
	}
	path, err := xdg.StateFile(serviceName + "/state.json")
	if err != nil {
		return nil, err
	}
	return New(&keyringBackend{ring: ring}, NewFileBackend(path, log)), nil
}

func (s *Store) backend(scope Scope) Backend {
	if scope == ScopeSession {
		return s.session
	}
	return s.durable
}

// Get returns the value for key, with ok=false when absent. Backend failures
// degrade to absent so downstream defaults apply.
func (s *Store) Get(scope Scope, key string) (string, bool) {
	return s.backend(scope).Get(key)
}

// Set writes a value.
func (s *Store) Set(scope Scope, key, value string) error {
	return s.backend(scope).Set(key, value)
}

// Remove deletes a key. Removing an absent key is not an error.
func (s *Store) Remove(scope Scope, key string) error {
	return s.backend(scope).Remove(key)
}

// keyringBackend stores values as keyring items.
type keyringBackend struct {
	ring keyring.Keyring
}

func (k *keyringBackend) Get(key string) (string, bool) {
	item, err := k.ring.Get(key)
	if err != nil {
		return "", false
	}
	return string(item.Data), true
}

func (k *keyringBackend) Set(key, value string) error {
	return k.ring.Set(keyring.Item{Key: key, Data: []byte(value)})
}

func (k *keyringBackend) Remove(key string) error {
	if err := k.ring.Remove(key); err != nil && err != keyring.ErrKeyNotFound {
		return err
	}
	return nil
}

// FileBackend keeps a flat string map in one JSON file. Every operation
// re-reads the file; a malformed or unreadable file is treated as empty and
// logged, never surfaced to callers.
type FileBackend struct {
	path string
	log  *zap.Logger
}

// NewFileBackend creates a file-backed scope at path.
func NewFileBackend(path string, log *zap.Logger) *FileBackend {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileBackend{path: path, log: log}
}

func (f *FileBackend) load() map[string]string {
	m := make(map[string]string)
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.log.Warn("state file unreadable, using defaults", zap.String("path", f.path), zap.Error(err))
		}
		return m
	}
	if err := json.Unmarshal(data, &m); err != nil {
		f.log.Warn("state file malformed, using defaults", zap.String("path", f.path), zap.Error(err))
		return make(map[string]string)
	}
	return m
}

func (f *FileBackend) save(m map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}

func (f *FileBackend) Get(key string) (string, bool) {
	v, ok := f.load()[key]
	return v, ok
}

func (f *FileBackend) Set(key, value string) error {
	m := f.load()
	m[key] = value
	return f.save(m)
}

func (f *FileBackend) Remove(key string) error {
	m := f.load()
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	return f.save(m)
}
