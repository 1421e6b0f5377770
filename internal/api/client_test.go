package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhath/sqlscribe/internal/workflow"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, nil)
}

func TestLoginUsesServerIdentity(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@x.com", body["email"])
		json.NewEncoder(w).Encode(map[string]any{
			"user":    map[string]string{"email": "a@x.com", "name": "Alice"},
			"message": "Login successful",
		})
	})

	id, err := c.Login(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, Identity{Email: "a@x.com", Name: "Alice"}, id)
}

func TestLoginFallsBackToSubmittedEmail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})

	id, err := c.Login(context.Background(), "b@y.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "b@y.com", id.Email)
}

func TestLoginErrorCarriesServerDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "invalid email or password"})
	})

	_, err := c.Login(context.Background(), "a@x.com", "wrong")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid email or password", apiErr.Message)
	assert.Equal(t, KindGeneric, apiErr.Kind)
}

func TestLoginErrorGenericWhenBodyUnparseable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := c.Login(context.Background(), "a@x.com", "pw")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Login failed", apiErr.Message)
}

func TestUploadSchemaStructuredDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/upload-schema", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"detail": map[string]any{
				"error":        "schema_dialect_mismatch",
				"message":      "Schema looks like PostgreSQL but mysql was selected",
				"parse_errors": []string{"unexpected SERIAL"},
				"hint":         "Switch the dialect to PostgreSQL",
			},
		})
	})

	_, err := c.UploadSchema(context.Background(), UploadSchemaRequest{
		DBKey: "default", SchemaSQL: "CREATE TABLE t (id SERIAL)", DatabaseType: "mysql",
	})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindDialectMismatch, apiErr.Kind)
	assert.True(t, apiErr.IsSchemaError())
	assert.Equal(t, "Schema looks like PostgreSQL but mysql was selected", apiErr.Message)
	assert.Equal(t, "Switch the dialect to PostgreSQL", apiErr.Hint)
	assert.Equal(t, []string{"unexpected SERIAL"}, apiErr.ParseErrors)
}

func TestRunGenerateNormalizesResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/generate-sql", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "users who signed up last month", body["question"])
		require.Equal(t, "a@x.com", body["db_key"])
		json.NewEncoder(w).Encode(map[string]string{
			"sql":         "SELECT * FROM users WHERE created_at >= DATE_SUB(NOW(), INTERVAL 1 MONTH)",
			"explanation": "Filters users by signup date.",
		})
	})

	res, err := c.Run(context.Background(), workflow.OpGenerate, RunInput{
		Text: "users who signed up last month", DBKey: "a@x.com", MaxRows: 100, DatabaseType: "mysql",
	})
	require.NoError(t, err)
	assert.Contains(t, res.SQL, "SELECT * FROM users")
	assert.Equal(t, "Filters users by signup date.", res.Explanation)
	assert.NotNil(t, res.Suggestions)
	assert.Empty(t, res.Suggestions)
}

func TestRunGenerateFallsBackToNotes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"sql": "SELECT 1", "notes": "trivial"})
	})

	res, err := c.Run(context.Background(), workflow.OpGenerate, RunInput{Text: "one"})
	require.NoError(t, err)
	assert.Equal(t, "trivial", res.Explanation)
}

func TestRunSuggestSendsClampedCountAndMapsQueries(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/suggest-next", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.EqualValues(t, 10, body["max_suggestions"])
		json.NewEncoder(w).Encode(map[string]any{
			"queries": []map[string]string{
				{"sql": "SELECT COUNT(*) FROM users", "title": "Count users"},
			},
			"notes": "Generated 1 suggestions based on k=10",
		})
	})

	res, err := c.Run(context.Background(), workflow.OpSuggest, RunInput{
		Text:           "SELECT * FROM users",
		MaxSuggestions: workflow.ClampSuggestionCount("12"),
	})
	require.NoError(t, err)
	require.Len(t, res.Suggestions, 1)
	assert.Equal(t, "Count users", res.Suggestions[0].Title)
	assert.Equal(t, "Generated 1 suggestions based on k=10", res.Explanation)
}

func TestRunExplainOmitsSQL(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/explain-sql", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"explanation": "It counts rows."})
	})

	res, err := c.Run(context.Background(), workflow.OpExplain, RunInput{Text: "SELECT COUNT(*) FROM t"})
	require.NoError(t, err)
	assert.Empty(t, res.SQL)
	assert.Equal(t, "It counts rows.", res.Explanation)
}

func TestRunJoinPathRequest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/suggest-joins", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "orders", body["from_table"])
		require.Equal(t, "customers", body["to_table"])
		json.NewEncoder(w).Encode(map[string]any{
			"joins": []string{"`orders` a JOIN `customers` b ON a.customer_id = b.id"},
			"notes": "Join paths derived from foreign-key graph.",
		})
	})

	res, err := c.Run(context.Background(), workflow.OpJoin, RunInput{Text: "orders -> customers", MaxSuggestions: 5})
	require.NoError(t, err)
	require.Len(t, res.Suggestions, 1)
	assert.Equal(t, "Join path 1", res.Suggestions[0].Title)
}

func TestRunJoinTableListRequest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.EqualValues(t, []any{"orders", "customers", "items"}, body["tables"])
		json.NewEncoder(w).Encode(map[string]any{"joins": []string{}})
	})

	_, err := c.Run(context.Background(), workflow.OpJoin, RunInput{Text: "orders, customers,items"})
	require.NoError(t, err)
}

func TestRunNetworkErrorWraps(t *testing.T) {
	c := New("http://127.0.0.1:1", nil)
	_, err := c.Run(context.Background(), workflow.OpGenerate, RunInput{Text: "x"})
	require.Error(t, err)
	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr), "transport failures are not API errors")
}

func TestDecodeErrorNeverPanics(t *testing.T) {
	for _, body := range [][]byte{nil, {}, []byte("{"), []byte(`{"detail": 42}`), []byte(`{"detail": ["a"]}`)} {
		e := decodeError(500, body, "generic")
		if e.Message == "" {
			t.Errorf("decodeError(%q) produced empty message", body)
		}
	}
}
