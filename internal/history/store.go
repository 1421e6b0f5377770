// Package history persists past dashboard runs in a local SQLite database.
package history

import (
	"database/sql"

	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"
)

// Store manages run history persistence
type Store struct {
	db *sql.DB
}

// NewStore creates a new history store with SQLite backend
func NewStore() (*Store, error) {
	dbPath, err := xdg.DataFile("sqlscribe/history.db")
	if err != nil {
		return nil, err
	}
	return openStore(dbPath)
}

func openStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			account TEXT NOT NULL,
			operation TEXT NOT NULL,
			input TEXT NOT NULL,
			sql_text TEXT,
			executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			duration_ms INTEGER NOT NULL,
			status TEXT NOT NULL,
			error_message TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_runs_account ON runs(account);
		CREATE INDEX IF NOT EXISTS idx_runs_executed_at ON runs(executed_at);
	`)
	if err != nil {
		return nil, err
	}

	store := &Store{db: db}
	// Prune old entries on startup; a failed cleanup is not fatal
	_ = store.cleanup()
	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a new run into history
func (s *Store) Add(entry *RunEntry) error {
	res, err := s.db.Exec(`
		INSERT INTO runs (account, operation, input, sql_text, executed_at, duration_ms, status, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		entry.Account,
		entry.Operation,
		entry.Input,
		entry.SQL,
		entry.ExecutedAt,
		entry.DurationMs,
		entry.Status,
		entry.ErrorMessage,
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	entry.ID = id
	return nil
}

// List returns paginated history entries for an account
func (s *Store) List(account string, limit, offset int) ([]RunEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, account, operation, input, sql_text, executed_at, duration_ms, status, error_message
		FROM runs
		WHERE account = ?
		ORDER BY executed_at DESC
		LIMIT ? OFFSET ?
	`, account, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Search finds history entries by input substring
func (s *Store) Search(account, substr string, limit int) ([]RunEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, account, operation, input, sql_text, executed_at, duration_ms, status, error_message
		FROM runs
		WHERE account = ? AND input LIKE ?
		ORDER BY executed_at DESC
		LIMIT ?
	`, account, "%"+substr+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]RunEntry, error) {
	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var sqlText, errMsg sql.NullString
		err := rows.Scan(&e.ID, &e.Account, &e.Operation, &e.Input, &sqlText,
			&e.ExecutedAt, &e.DurationMs, &e.Status, &errMsg)
		if err != nil {
			return nil, err
		}
		e.SQL = sqlText.String
		e.ErrorMessage = errMsg.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes a history entry by ID
func (s *Store) Delete(id int64) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id)
	return err
}

// Count returns the total number of history entries for an account
func (s *Store) Count(account string) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM runs WHERE account = ?`, account).Scan(&count)
	return count, err
}

// cleanup removes runs older than 90 days
func (s *Store) cleanup() error {
	_, err := s.db.Exec(`
		DELETE FROM runs
		WHERE executed_at < datetime('now', '-90 days')
	`)
	return err
}
