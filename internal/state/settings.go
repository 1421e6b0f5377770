package state

// Workspace settings are namespaced by the signed-in account's email. All
// key construction lives here so the naming scheme is defined exactly once.
// Key names are load-bearing: they match the format older clients wrote.

import "strings"

// Dialect is the target SQL flavor.
type Dialect string

const (
	DialectMySQL      Dialect = "mysql"
	DialectPostgreSQL Dialect = "postgresql"
	DialectSQLite     Dialect = "sqlite"
)

// Dialects lists the supported dialects in presentation order.
var Dialects = []Dialect{DialectMySQL, DialectPostgreSQL, DialectSQLite}

// NormalizeDialect resolves a raw value to a known dialect, defaulting to
// MySQL for anything unrecognized.
func NormalizeDialect(raw string) Dialect {
	switch Dialect(strings.ToLower(strings.TrimSpace(raw))) {
	case DialectPostgreSQL:
		return DialectPostgreSQL
	case DialectSQLite:
		return DialectSQLite
	default:
		return DialectMySQL
	}
}

// anonymousAccount is the namespace used when nobody is signed in.
const anonymousAccount = "default"

// Settings are one account's persisted workspace preferences.
type Settings struct {
	Dialect        Dialect
	SchemaText     string
	OnboardingDone bool
}

// SettingsStore reads and writes per-account settings in the durable scope.
type SettingsStore struct {
	store *Store
}

// NewSettingsStore wraps a state store.
func NewSettingsStore(store *Store) *SettingsStore {
	return &SettingsStore{store: store}
}

func accountKey(prefix, email string) string {
	if email == "" {
		email = anonymousAccount
	}
	return prefix + email
}

// ForAccount returns the settings stored for email, with defaults
// (mysql, empty schema, onboarding not completed) for anything unset.
// An empty email resolves to the shared "default" namespace.
func (s *SettingsStore) ForAccount(email string) Settings {
	out := Settings{Dialect: DialectMySQL}
	if v, ok := s.store.Get(ScopeDurable, accountKey("selected_db_", email)); ok {
		out.Dialect = NormalizeDialect(v)
	}
	if v, ok := s.store.Get(ScopeDurable, accountKey("last_schema_", email)); ok {
		out.SchemaText = v
	}
	if v, ok := s.store.Get(ScopeDurable, accountKey("onboarding_completed_", email)); ok {
		out.OnboardingDone = v == "true"
	}
	return out
}

// Save persists all three settings for email.
func (s *SettingsStore) Save(email string, settings Settings) error {
	if err := s.store.Set(ScopeDurable, accountKey("selected_db_", email), string(settings.Dialect)); err != nil {
		return err
	}
	if err := s.store.Set(ScopeDurable, accountKey("last_schema_", email), settings.SchemaText); err != nil {
		return err
	}
	done := "false"
	if settings.OnboardingDone {
		done = "true"
	}
	return s.store.Set(ScopeDurable, accountKey("onboarding_completed_", email), done)
}

// SidebarCollapsed reads the global sidebar flag, defaulting to expanded.
func (s *SettingsStore) SidebarCollapsed() bool {
	v, ok := s.store.Get(ScopeDurable, SidebarCollapsedKey)
	return ok && v == "true"
}

// SetSidebarCollapsed writes the global sidebar flag.
func (s *SettingsStore) SetSidebarCollapsed(collapsed bool) error {
	v := "false"
	if collapsed {
		v = "true"
	}
	return s.store.Set(ScopeDurable, SidebarCollapsedKey, v)
}
