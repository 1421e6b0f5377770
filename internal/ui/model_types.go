// Type definitions for the UI layer
package ui

// AppState represents the overall application state
type AppState string

const (
	StateSignIn     AppState = "SIGN_IN"
	StateOnboarding AppState = "ONBOARDING"
	StateReady      AppState = "READY"
)

// runPhase is the dashboard's explicit run state. Exactly one phase holds at
// a time, so "loading and errored" is unrepresentable.
type runPhase int

const (
	phaseIdle runPhase = iota
	phaseRunning
	phaseErrored
	phaseSucceeded
)

// noticeKind selects the status bar styling for a notification
type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeWarning
	noticeError
)

// copyNone means no block currently shows the "copied" acknowledgment;
// copyMain is the single SQL block, values >= 0 index the suggestion list.
const (
	copyNone = -2
	copyMain = -1
)
