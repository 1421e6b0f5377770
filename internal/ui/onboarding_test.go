package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhath/sqlscribe/internal/api"
	"github.com/nhath/sqlscribe/internal/state"
)

func TestSchemaUploadFailureKeepsOnboarding(t *testing.T) {
	m := newTestModel(t)
	m.appState = StateOnboarding
	m.schemaEditor.SetValue("CREATE TABLE users (id SERIAL);")
	m.uploadBusy = true

	next, cmd := m.Update(schemaUploadMsg{Err: &api.Error{
		StatusCode: 400,
		Kind:       api.KindDialectMismatch,
		Message:    "Schema looks like PostgreSQL, not MySQL",
	}})
	got := next.(Model)

	require.NotNil(t, cmd)
	assert.Equal(t, StateOnboarding, got.appState, "a failed upload must not complete onboarding")
	assert.Equal(t, "CREATE TABLE users (id SERIAL);", got.schemaEditor.Value(), "the schema text is preserved for correction")
	assert.Contains(t, got.notice, "Schema looks like PostgreSQL")
	assert.False(t, got.uploadBusy)
	assert.False(t, got.settings.ForAccount(got.session.Email()).OnboardingDone)
}

func TestSchemaUploadSuccessCompletesOnboarding(t *testing.T) {
	m := newTestModel(t)
	m.appState = StateOnboarding
	m.schemaEditor.SetValue("CREATE TABLE users (id INT);")
	m.uploadBusy = true

	next, _ := m.Update(schemaUploadMsg{})
	got := next.(Model)

	assert.Equal(t, StateReady, got.appState)
	assert.Equal(t, "Schema uploaded", got.notice)

	saved := got.settings.ForAccount(got.session.Email())
	assert.True(t, saved.OnboardingDone)
	assert.Equal(t, "CREATE TABLE users (id INT);", saved.SchemaText)
}

func TestSchemaUploadWarningSurfaces(t *testing.T) {
	m := newTestModel(t)
	m.appState = StateOnboarding
	m.schemaEditor.SetValue("CREATE TABLE t (id INT);")

	next, _ := m.Update(schemaUploadMsg{Warning: "2 statements skipped"})
	got := next.(Model)

	assert.Equal(t, StateReady, got.appState)
	assert.Contains(t, got.notice, "2 statements skipped")
	assert.Equal(t, noticeWarning, got.noticeKind)
}

func TestOnboardingSkipPersistsChoice(t *testing.T) {
	m := newTestModel(t)
	m.appState = StateOnboarding
	m.dialectIdx = 1 // postgresql
	m.schemaEditor.SetValue("CREATE TABLE later (id INT);")

	next, _ := m.handleOnboardingKey(keyMsg("ctrl+k"))
	got := next.(Model)

	assert.Equal(t, StateReady, got.appState)

	saved := got.settings.ForAccount(got.session.Email())
	assert.True(t, saved.OnboardingDone)
	assert.Equal(t, state.DialectPostgreSQL, saved.Dialect)
	assert.Equal(t, "CREATE TABLE later (id INT);", saved.SchemaText)
}

func TestOnboardingBlankSchemaRejectedLocally(t *testing.T) {
	m := newTestModel(t)
	m.appState = StateOnboarding

	next, _ := m.handleOnboardingKey(keyMsg("ctrl+s"))
	got := next.(Model)

	assert.Equal(t, StateOnboarding, got.appState)
	assert.False(t, got.uploadBusy)
	assert.NotEmpty(t, got.notice)
}
