package ui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhath/sqlscribe/internal/api"
	"github.com/nhath/sqlscribe/internal/history"
	"github.com/nhath/sqlscribe/internal/state"
	"github.com/nhath/sqlscribe/internal/workflow"
)

// copiedAckDuration is how long the "copied" acknowledgment stays visible.
const copiedAckDuration = 2 * time.Second

// Notification durations: schema-specific failures linger longer so the
// user can read the server's diagnosis.
const (
	noticeDuration       = 4 * time.Second
	noticeSchemaDuration = 8 * time.Second
)

// signInCmd performs one sign-in exchange
func (m Model) signInCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		err := m.session.SignIn(context.Background(), email, password)
		if err != nil {
			return signInResultMsg{Err: err}
		}
		return signInResultMsg{Identity: *m.session.Current()}
	}
}

// signUpCmd performs one sign-up exchange; it never authenticates
func (m Model) signUpCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		return signUpResultMsg{Email: email, Err: m.session.SignUp(context.Background(), email, password)}
	}
}

// uploadSchemaCmd uploads the onboarding schema
func (m Model) uploadSchemaCmd(schemaSQL string, dialect state.Dialect) tea.Cmd {
	account := m.account()
	return func() tea.Msg {
		warning, err := m.client.UploadSchema(context.Background(), api.UploadSchemaRequest{
			DBKey:        account,
			SchemaSQL:    schemaSQL,
			DatabaseType: string(dialect),
		})
		return schemaUploadMsg{Warning: warning, Err: err}
	}
}

// runCmd executes one dashboard run asynchronously and records it in
// history. The sequence number lets Update drop results that arrive after
// the operation changed or a newer run started.
func (m Model) runCmd(seq int, op workflow.Operation, input string, count int) tea.Cmd {
	client := m.client
	store := m.historyStore
	account := m.account()
	dialect := m.dialect()
	maxRows := m.cfg.MaxRows

	return func() tea.Msg {
		start := time.Now()
		result, err := client.Run(context.Background(), op, api.RunInput{
			Text:           input,
			DBKey:          account,
			MaxRows:        maxRows,
			MaxSuggestions: count,
			DatabaseType:   string(dialect),
		})

		if store != nil {
			entry := &history.RunEntry{
				Account:    account,
				Operation:  string(op),
				Input:      input,
				ExecutedAt: time.Now(),
				DurationMs: time.Since(start).Milliseconds(),
				Status:     "success",
			}
			if err != nil {
				entry.Status = "error"
				entry.ErrorMessage = err.Error()
			} else if result.SQL != "" {
				entry.SQL = result.SQL
			} else if len(result.Suggestions) > 0 {
				entry.SQL = result.Suggestions[0].SQL
			}
			_ = store.Add(entry)
		}

		return runResultMsg{Seq: seq, Result: result, Err: err}
	}
}

// copyCmd copies text to the system clipboard, fire-and-forget
func (m Model) copyCmd(target int, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardCopiedMsg{Target: target, Err: clipboard.WriteAll(text)}
	}
}

// resetCopyCmd reverts the copied acknowledgment after a fixed delay
func resetCopyCmd(seq int) tea.Cmd {
	return tea.Tick(copiedAckDuration, func(time.Time) tea.Msg {
		return copyResetMsg{Seq: seq}
	})
}

// expireNoticeCmd clears the status notification after d
func expireNoticeCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return noticeExpireMsg{Seq: seq}
	})
}

// loadHistoryCmd loads recent runs for the current account
func (m Model) loadHistoryCmd() tea.Cmd {
	store := m.historyStore
	account := m.account()
	return func() tea.Msg {
		if store == nil {
			return historyLoadedMsg{}
		}
		entries, err := store.List(account, 50, 0)
		return historyLoadedMsg{Entries: entries, Err: err}
	}
}
