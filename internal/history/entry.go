package history

import "time"

// RunEntry represents a single dashboard run in history
type RunEntry struct {
	ID           int64
	Account      string // namespacing email, "default" when anonymous
	Operation    string
	Input        string
	SQL          string // normalized result SQL (or first suggestion)
	ExecutedAt   time.Time
	DurationMs   int64
	Status       string // "success", "error"
	ErrorMessage string
}

// InputPreview returns a truncated version of the input text
func (e *RunEntry) InputPreview(maxLen int) string {
	q := e.Input
	if len(q) > maxLen {
		return q[:maxLen-3] + "..."
	}
	return q
}
