// Package workflow maps operation codes to their presentation metadata and
// to the remote endpoint and payload shape used for each operation.
package workflow

import (
	"strconv"
	"strings"
)

// Operation is one of the six supported query-transformation modes.
type Operation string

const (
	OpGenerate Operation = "generate"
	OpFix      Operation = "fix"
	OpExplain  Operation = "explain"
	OpOptimize Operation = "optimize"
	OpSuggest  Operation = "suggest"
	OpJoin     Operation = "join"
)

// InputField indicates which payload field carries the user's input text.
type InputField int

const (
	FieldQuestion InputField = iota // natural-language request
	FieldSQL                        // raw SQL to transform
	FieldTables                     // table names for join discovery
)

// Spec describes everything the UI and the API client need to know about
// one operation. The table below is total over the six codes.
type Spec struct {
	Op          Operation
	Label       string
	Description string
	Icon        string // icon identifier, resolved by internal/ui/icons
	Endpoint    string
	Input       InputField
	// TakesCount reports whether the operation sends max_suggestions.
	TakesCount bool
	// Placeholder is shown in the dashboard editor when empty.
	Placeholder string
}

var specs = map[Operation]Spec{
	OpGenerate: {
		Op:          OpGenerate,
		Label:       "Generate",
		Description: "Describe what you need in plain language and get SQL back",
		Icon:        "code",
		Endpoint:    "/generate-sql",
		Input:       FieldQuestion,
		Placeholder: "e.g. users who signed up last month...",
	},
	OpFix: {
		Op:          OpFix,
		Label:       "Fix",
		Description: "Paste a broken query and get a corrected version",
		Icon:        "code",
		Endpoint:    "/fix-sql",
		Input:       FieldSQL,
		Placeholder: "Paste the SQL that is failing...",
	},
	OpExplain: {
		Op:          OpExplain,
		Label:       "Explain",
		Description: "Get a plain-language walkthrough of what a query does",
		Icon:        "message",
		Endpoint:    "/explain-sql",
		Input:       FieldSQL,
		Placeholder: "Paste the SQL you want explained...",
	},
	OpOptimize: {
		Op:          OpOptimize,
		Label:       "Optimize",
		Description: "Rewrite a query for better performance",
		Icon:        "code",
		Endpoint:    "/optimize-sql",
		Input:       FieldSQL,
		Placeholder: "Paste the SQL you want optimized...",
	},
	OpSuggest: {
		Op:          OpSuggest,
		Label:       "Suggest",
		Description: "Get follow-up queries based on what you just ran",
		Icon:        "suggestions",
		Endpoint:    "/suggest-next",
		Input:       FieldSQL,
		TakesCount:  true,
		Placeholder: "Paste your last query to get follow-ups...",
	},
	OpJoin: {
		Op:          OpJoin,
		Label:       "Joins",
		Description: "Discover join paths between tables from the schema",
		Icon:        "suggestions",
		Endpoint:    "/suggest-joins",
		Input:       FieldTables,
		TakesCount:  true,
		Placeholder: "orders -> customers, or a comma-separated table list...",
	},
}

// order fixes the presentation order for selector UIs.
var order = []Operation{OpGenerate, OpFix, OpExplain, OpOptimize, OpSuggest, OpJoin}

// All returns the specs in presentation order.
func All() []Spec {
	out := make([]Spec, 0, len(order))
	for _, op := range order {
		out = append(out, specs[op])
	}
	return out
}

// Lookup returns the spec for op. Unknown codes resolve to generate.
func Lookup(op Operation) Spec {
	if s, ok := specs[op]; ok {
		return s
	}
	return specs[OpGenerate]
}

// Parse resolves a raw code to an Operation, defaulting to generate for
// anything outside the closed set.
func Parse(raw string) Operation {
	op := Operation(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := specs[op]; ok {
		return op
	}
	return OpGenerate
}

// Next returns the operation after op in presentation order, wrapping around.
func Next(op Operation) Operation {
	for i, o := range order {
		if o == op {
			return order[(i+1)%len(order)]
		}
	}
	return OpGenerate
}

// Prev returns the operation before op in presentation order, wrapping around.
func Prev(op Operation) Operation {
	for i, o := range order {
		if o == op {
			return order[(i+len(order)-1)%len(order)]
		}
	}
	return OpGenerate
}

const (
	// DefaultSuggestionCount is used when the typed count is empty or garbage.
	DefaultSuggestionCount = 5
	minSuggestions         = 1
	maxSuggestions         = 10
)

// ClampSuggestionCount parses the raw suggestion-count text. Empty or
// non-numeric input yields the default; everything else is clamped to [1, 10].
func ClampSuggestionCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultSuggestionCount
	}
	if n < minSuggestions {
		return minSuggestions
	}
	if n > maxSuggestions {
		return maxSuggestions
	}
	return n
}
