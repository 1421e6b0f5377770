// Package api implements the HTTP client for the remote text-to-SQL service.
//
// Every call is a single request/response exchange: no retries, no client-side
// timeout (the transport's own limits are the only bound), cancellation only
// through the caller's context. Responses are normalized here, once, so the
// rest of the program works with one Result shape.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/nhath/sqlscribe/internal/workflow"
)

// DefaultBaseURL is used when neither config nor environment provide one.
const DefaultBaseURL = "http://localhost:8000"

// Client talks to the remote service over REST.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New creates a client for the given base URL. An empty URL falls back to
// DefaultBaseURL; a nil logger is replaced with a nop logger.
func New(baseURL string, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log,
	}
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// postJSON performs one POST exchange. Non-2xx statuses decode into *Error
// with the provided generic fallback message.
func (c *Client) postJSON(ctx context.Context, path string, in, out any, generic string) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.log.Debug("api request", zap.String("path", path))
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", generic, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", generic, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeError(resp.StatusCode, raw, generic)
		c.log.Debug("api error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("kind", apiErr.Kind))
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{StatusCode: resp.StatusCode, Kind: KindGeneric, Message: generic}
	}
	return nil
}

// Login exchanges credentials for an identity. When the server omits the user
// object the submitted email becomes the identity.
func (c *Client) Login(ctx context.Context, email, password string) (Identity, error) {
	var out loginResponse
	err := c.postJSON(ctx, "/api/login", authRequest{Email: email, Password: password}, &out, "Login failed")
	if err != nil {
		return Identity{}, err
	}
	if out.User == nil || out.User.Email == "" {
		return Identity{Email: email}, nil
	}
	return *out.User, nil
}

// Signup registers a new account. Success is binary; the caller must still
// sign in afterwards (email verification happens out of band).
func (c *Client) Signup(ctx context.Context, email, password string) error {
	return c.postJSON(ctx, "/api/signup", authRequest{Email: email, Password: password}, nil, "Signup failed")
}

// UploadSchema replaces the stored schema for the request's db_key and
// returns any non-fatal warning the server reports.
func (c *Client) UploadSchema(ctx context.Context, req UploadSchemaRequest) (string, error) {
	var out uploadSchemaResponse
	if err := c.postJSON(ctx, "/upload-schema", req, &out, "Failed to upload schema"); err != nil {
		return "", err
	}
	return out.Warning, nil
}

// RunInput carries everything one dashboard run needs besides the operation.
type RunInput struct {
	Text           string // question, SQL, or table list depending on the operation
	DBKey          string
	MaxRows        int
	MaxSuggestions int
	DatabaseType   string
}

// Run executes one operation against the service and normalizes the response.
const runFailed = "Failed to process query"

func (c *Client) Run(ctx context.Context, op workflow.Operation, in RunInput) (Result, error) {
	spec := workflow.Lookup(op)

	switch spec.Op {
	case workflow.OpGenerate:
		var out sqlResponse
		req := generateRequest{Question: in.Text, DBKey: in.DBKey, MaxRows: in.MaxRows, DatabaseType: in.DatabaseType}
		if err := c.postJSON(ctx, spec.Endpoint, req, &out, runFailed); err != nil {
			return Result{}, err
		}
		return normalizeSQL(out), nil

	case workflow.OpFix, workflow.OpOptimize:
		var out sqlResponse
		req := transformRequest{SQL: in.Text, DBKey: in.DBKey, MaxRows: in.MaxRows, DatabaseType: in.DatabaseType}
		if err := c.postJSON(ctx, spec.Endpoint, req, &out, runFailed); err != nil {
			return Result{}, err
		}
		return normalizeSQL(out), nil

	case workflow.OpExplain:
		var out explainResponse
		req := transformRequest{SQL: in.Text, DBKey: in.DBKey, MaxRows: in.MaxRows, DatabaseType: in.DatabaseType}
		if err := c.postJSON(ctx, spec.Endpoint, req, &out, runFailed); err != nil {
			return Result{}, err
		}
		return Result{Explanation: out.Explanation, Suggestions: []Suggestion{}}, nil

	case workflow.OpSuggest:
		var out suggestNextResponse
		req := suggestNextRequest{
			SQL:            in.Text,
			DBKey:          in.DBKey,
			MaxRows:        in.MaxRows,
			MaxSuggestions: in.MaxSuggestions,
			DatabaseType:   in.DatabaseType,
		}
		if err := c.postJSON(ctx, spec.Endpoint, req, &out, runFailed); err != nil {
			return Result{}, err
		}
		return Result{Explanation: out.Notes, Suggestions: nonNil(out.Queries)}, nil

	case workflow.OpJoin:
		req := buildJoinRequest(in)
		var out suggestJoinsResponse
		if err := c.postJSON(ctx, spec.Endpoint, req, &out, runFailed); err != nil {
			return Result{}, err
		}
		sugs := make([]Suggestion, 0, len(out.Joins))
		for i, j := range out.Joins {
			sugs = append(sugs, Suggestion{SQL: j, Title: fmt.Sprintf("Join path %d", i+1)})
		}
		return Result{Explanation: out.Notes, Suggestions: sugs}, nil
	}

	// Unreachable: Lookup is total and defaults to generate.
	return Result{Suggestions: []Suggestion{}}, nil
}

func normalizeSQL(out sqlResponse) Result {
	explanation := out.Explanation
	if explanation == "" {
		explanation = out.Notes
	}
	return Result{SQL: out.SQL, Explanation: explanation, Suggestions: []Suggestion{}}
}

func nonNil(s []Suggestion) []Suggestion {
	if s == nil {
		return []Suggestion{}
	}
	return s
}

// buildJoinRequest parses the free-form input for join discovery:
// "orders -> customers" asks for a path, anything else is treated as a
// comma-separated table list.
func buildJoinRequest(in RunInput) suggestJoinsRequest {
	req := suggestJoinsRequest{
		DBKey:          in.DBKey,
		MaxSuggestions: in.MaxSuggestions,
		DatabaseType:   in.DatabaseType,
	}
	text := strings.TrimSpace(in.Text)
	if from, to, ok := strings.Cut(text, "->"); ok {
		req.FromTable = strings.TrimSpace(from)
		req.ToTable = strings.TrimSpace(to)
		return req
	}
	for _, t := range strings.Split(text, ",") {
		if t = strings.TrimSpace(t); t != "" {
			req.Tables = append(req.Tables, t)
		}
	}
	return req
}
