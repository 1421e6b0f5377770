package history

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := openStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddAndList(t *testing.T) {
	s := newTestStore(t)

	e := &RunEntry{
		Account:    "a@x.com",
		Operation:  "generate",
		Input:      "users who signed up last month",
		SQL:        "SELECT * FROM users",
		ExecutedAt: time.Now(),
		DurationMs: 120,
		Status:     "success",
	}
	if err := s.Add(e); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if e.ID == 0 {
		t.Fatal("Add should backfill the entry ID")
	}

	entries, err := s.List("a@x.com", 10, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Input != e.Input {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestListIsScopedByAccount(t *testing.T) {
	s := newTestStore(t)
	for _, account := range []string{"a@x.com", "b@y.com"} {
		err := s.Add(&RunEntry{Account: account, Operation: "fix", Input: "SELECT 1", ExecutedAt: time.Now(), Status: "success"})
		if err != nil {
			t.Fatal(err)
		}
	}

	entries, err := s.List("a@x.com", 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry for a@x.com, got %d", len(entries))
	}

	n, err := s.Count("b@y.com")
	if err != nil || n != 1 {
		t.Fatalf("Count(b@y.com) = %d, %v", n, err)
	}
}

func TestSearch(t *testing.T) {
	s := newTestStore(t)
	inputs := []string{"top customers by revenue", "orders per region", "revenue by quarter"}
	for _, in := range inputs {
		if err := s.Add(&RunEntry{Account: "default", Operation: "generate", Input: in, ExecutedAt: time.Now(), Status: "success"}); err != nil {
			t.Fatal(err)
		}
	}

	found, err := s.Search("default", "revenue", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 2 {
		t.Fatalf("Search(revenue) returned %d entries, want 2", len(found))
	}
}

func TestInputPreview(t *testing.T) {
	e := &RunEntry{Input: "0123456789"}
	if got := e.InputPreview(20); got != "0123456789" {
		t.Errorf("short input should be untouched, got %q", got)
	}
	if got := e.InputPreview(8); got != "01234..." {
		t.Errorf("InputPreview(8) = %q, want 01234...", got)
	}
}
