package api

// Identity is the signed-in user's minimal profile held client-side.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Wire request bodies. Field names follow the backend contract.

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User    *Identity `json:"user"`
	Message string    `json:"message"`
}

// UploadSchemaRequest replaces the stored schema for a db_key.
type UploadSchemaRequest struct {
	DBKey        string `json:"db_key"`
	SchemaSQL    string `json:"schema_sql"`
	DatabaseType string `json:"database_type"`
}

type uploadSchemaResponse struct {
	Status  string `json:"status"`
	Tables  int    `json:"tables"`
	Warning string `json:"warning"`
}

type generateRequest struct {
	Question     string `json:"question"`
	DBKey        string `json:"db_key"`
	MaxRows      int    `json:"max_rows"`
	DatabaseType string `json:"database_type"`
}

type transformRequest struct {
	SQL          string `json:"sql"`
	DBKey        string `json:"db_key"`
	MaxRows      int    `json:"max_rows"`
	DatabaseType string `json:"database_type"`
}

type suggestNextRequest struct {
	SQL            string `json:"sql"`
	DBKey          string `json:"db_key"`
	MaxRows        int    `json:"max_rows"`
	MaxSuggestions int    `json:"max_suggestions"`
	DatabaseType   string `json:"database_type"`
}

type suggestJoinsRequest struct {
	DBKey          string   `json:"db_key"`
	Tables         []string `json:"tables,omitempty"`
	FromTable      string   `json:"from_table,omitempty"`
	ToTable        string   `json:"to_table,omitempty"`
	MaxSuggestions int      `json:"max_suggestions"`
	DatabaseType   string   `json:"database_type"`
}

// Wire response bodies, decoded liberally: absent fields are fine.

type sqlResponse struct {
	SQL         string `json:"sql"`
	Explanation string `json:"explanation"`
	Notes       string `json:"notes"`
}

type explainResponse struct {
	Explanation string `json:"explanation"`
}

type suggestNextResponse struct {
	Queries []Suggestion `json:"queries"`
	Notes   string       `json:"notes"`
}

type suggestJoinsResponse struct {
	Joins []string `json:"joins"`
	Notes string   `json:"notes"`
}

// Suggestion is one follow-up query proposed by the service.
type Suggestion struct {
	SQL   string `json:"sql"`
	Title string `json:"title"`
}

// Result is the normalized outcome of one dashboard run, regardless of which
// operation produced it. Fields are always non-nil: absent wire fields become
// empty strings or an empty slice so renderers never null-check.
type Result struct {
	SQL         string
	Explanation string
	Suggestions []Suggestion
}
