package api

import (
	"encoding/json"
	"fmt"
)

// Error kinds the UI distinguishes. Anything else is generic.
const (
	KindDialectMismatch = "schema_dialect_mismatch"
	KindSchemaParse     = "schema_parse_failed"
	KindGeneric         = "generic"
)

// Error is a failed API call decoded from the server's `detail` field.
// The field is either a plain string or a structured object; both forms
// collapse into this one type at the boundary.
type Error struct {
	StatusCode  int
	Kind        string
	Message     string
	Hint        string
	ParseErrors []string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsSchemaError reports whether the error is one of the two schema-specific
// kinds that get extended-duration notifications.
func (e *Error) IsSchemaError() bool {
	return e.Kind == KindDialectMismatch || e.Kind == KindSchemaParse
}

// detailEnvelope matches FastAPI-style error bodies: {"detail": ...} where
// detail is a string or {error, message, parse_errors?, hint?}.
type detailEnvelope struct {
	Detail json.RawMessage `json:"detail"`
}

type detailObject struct {
	Error       string   `json:"error"`
	Message     string   `json:"message"`
	ParseErrors []string `json:"parse_errors"`
	Hint        string   `json:"hint"`
}

// decodeError turns a non-success response body into an *Error. A body that
// is not parseable JSON falls back to the provided generic message; it never
// fails.
func decodeError(status int, body []byte, generic string) *Error {
	apiErr := &Error{StatusCode: status, Kind: KindGeneric, Message: generic}

	var env detailEnvelope
	if err := json.Unmarshal(body, &env); err != nil || len(env.Detail) == 0 {
		return apiErr
	}

	var s string
	if err := json.Unmarshal(env.Detail, &s); err == nil {
		if s != "" {
			apiErr.Message = s
		}
		return apiErr
	}

	var obj detailObject
	if err := json.Unmarshal(env.Detail, &obj); err == nil {
		if obj.Error != "" {
			apiErr.Kind = obj.Error
		}
		if obj.Message != "" {
			apiErr.Message = obj.Message
		}
		apiErr.Hint = obj.Hint
		apiErr.ParseErrors = obj.ParseErrors
	}
	return apiErr
}
