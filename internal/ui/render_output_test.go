package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhath/sqlscribe/internal/api"
	"github.com/nhath/sqlscribe/internal/workflow"
)

func TestRenderOutputLoading(t *testing.T) {
	m := newTestModel(t)
	m.phase = phaseRunning

	out := m.renderOutput(100, 20)
	assert.Contains(t, out, "Working on it")
}

func TestRenderOutputError(t *testing.T) {
	m := newTestModel(t)
	m.phase = phaseErrored
	m.runErr = blankInputError

	out := m.renderOutput(100, 20)
	assert.Contains(t, out, blankInputError)
}

func TestRenderOutputEmptyPlaceholderPerOperation(t *testing.T) {
	m := newTestModel(t)

	seen := map[string]bool{}
	for _, spec := range workflow.All() {
		m = m.setOperation(spec.Op)
		out := m.renderOutput(100, 20)
		assert.Contains(t, out, spec.Description, "placeholder for %s", spec.Op)
		seen[out] = true
	}
	assert.Len(t, seen, len(workflow.All()), "each operation has its own placeholder")
}

func TestRenderOutputSQLWithExplanation(t *testing.T) {
	m := newTestModel(t)
	m.phase = phaseSucceeded
	m.result = api.Result{
		SQL:         "SELECT name FROM users",
		Explanation: "Lists every user name.",
		Suggestions: []api.Suggestion{},
	}

	out := m.renderOutput(80, 20)
	assert.Contains(t, out, "SELECT")
	assert.Contains(t, out, "Lists every user name.")
	assert.NotContains(t, out, "1.", "a single result renders no numbered list")
}

func TestRenderOutputExplanationOnly(t *testing.T) {
	m := newTestModel(t)
	m = m.setOperation(workflow.OpExplain)
	m.phase = phaseSucceeded
	m.result = api.Result{
		Explanation: "Joins orders to customers on customer_id.",
		Suggestions: []api.Suggestion{},
	}

	out := m.renderOutput(80, 20)
	assert.Contains(t, out, "Joins orders to customers")
	assert.NotContains(t, out, "copy", "no SQL block means no copy affordance")
}

func TestRenderOutputSuggestionsList(t *testing.T) {
	m := newTestModel(t)
	m = m.setOperation(workflow.OpSuggest)
	m.phase = phaseSucceeded
	m.result = api.Result{Suggestions: []api.Suggestion{
		{SQL: "SELECT * FROM orders", Title: "Recent orders"},
		{SQL: "SELECT * FROM refunds", Title: "Refund volume"},
	}}

	out := m.renderOutput(80, 20)
	assert.Contains(t, out, "1. Recent orders")
	assert.Contains(t, out, "2. Refund volume")
}

func TestRenderOutputCopiedAck(t *testing.T) {
	m := newTestModel(t)
	m.phase = phaseSucceeded
	m.result = api.Result{SQL: "SELECT 1", Suggestions: []api.Suggestion{}}
	m.copied = copyMain

	out := m.renderOutput(80, 20)
	assert.Contains(t, out, "copied")

	m.copied = copyNone
	out = m.renderOutput(80, 20)
	assert.False(t, strings.Contains(out, "✓ copied"))
}

func TestRenderOutputSuggestionCopiedAck(t *testing.T) {
	m := newTestModel(t)
	m = m.setOperation(workflow.OpSuggest)
	m.phase = phaseSucceeded
	m.result = api.Result{Suggestions: []api.Suggestion{
		{SQL: "SELECT 1", Title: "a"},
		{SQL: "SELECT 2", Title: "b"},
	}}
	m.copied = 1

	out := m.renderOutput(80, 20)
	lines := strings.Split(out, "\n")
	var ackLine string
	for _, l := range lines {
		if strings.Contains(l, "copied") {
			ackLine = l
		}
	}
	assert.Contains(t, ackLine, "b", "the acknowledgment sits on the copied item")
}

func TestRenderDashboardComposes(t *testing.T) {
	m := newTestModel(t)

	out := m.View()
	assert.Contains(t, out, "Result")
	assert.Contains(t, out, "Generate")
}
