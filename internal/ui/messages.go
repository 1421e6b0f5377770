package ui

import (
	"github.com/nhath/sqlscribe/internal/api"
	"github.com/nhath/sqlscribe/internal/history"
)

// signInResultMsg is sent when a sign-in exchange completes
type signInResultMsg struct {
	Identity api.Identity
	Err      error
}

// signUpResultMsg is sent when a sign-up exchange completes
type signUpResultMsg struct {
	Email string
	Err   error
}

// runResultMsg is sent when a dashboard run completes. Seq ties the message
// to the run that produced it; stale sequences are dropped.
type runResultMsg struct {
	Seq    int
	Result api.Result
	Err    error
}

// schemaUploadMsg is sent when the onboarding schema upload completes
type schemaUploadMsg struct {
	Warning string
	Err     error
}

// clipboardCopiedMsg is sent when clipboard copy completes
type clipboardCopiedMsg struct {
	Target int
	Err    error
}

// copyResetMsg reverts the transient "copied" acknowledgment
type copyResetMsg struct {
	Seq int
}

// noticeExpireMsg clears a status bar notification
type noticeExpireMsg struct {
	Seq int
}

// historyLoadedMsg is sent when run history loads from SQLite
type historyLoadedMsg struct {
	Entries []history.RunEntry
	Err     error
}
