// Root Model struct, constructor, and Init
package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
	"go.uber.org/zap"

	"github.com/nhath/sqlscribe/internal/api"
	"github.com/nhath/sqlscribe/internal/auth"
	"github.com/nhath/sqlscribe/internal/config"
	"github.com/nhath/sqlscribe/internal/history"
	"github.com/nhath/sqlscribe/internal/state"
	"github.com/nhath/sqlscribe/internal/ui/components/oplist"
	"github.com/nhath/sqlscribe/internal/ui/styles"
	"github.com/nhath/sqlscribe/internal/workflow"
)

// Model is the root Bubble Tea model
type Model struct {
	// App state
	appState AppState

	// Core state
	width, height int
	cfg           *config.Config
	client        *api.Client
	session       *auth.Session
	settings      *state.SettingsStore
	historyStore  *history.Store
	log           *zap.Logger

	// Sign-in view
	emailInput    textinput.Model
	passwordInput textinput.Model
	authFocus     int // 0 = email, 1 = password
	signupMode    bool
	authBusy      bool
	authErr       string
	authNotice    string

	// Onboarding view
	schemaEditor textarea.Model
	dialectIdx   int
	uploadBusy   bool

	// Dashboard
	sidebar          oplist.Model
	sidebarCollapsed bool
	op               workflow.Operation
	editor           textarea.Model
	countInput       textinput.Model
	countFocused     bool
	phase            runPhase
	result           api.Result
	runErr           string
	runSeq           int
	spinner          spinner.Model

	// Copy acknowledgment
	copied      int // copyNone, copyMain, or a suggestion index
	copySeq     int
	selectedSug int // highlighted suggestion for copy

	// Status bar notifications
	notice     string
	noticeKind noticeKind
	noticeSeq  int

	// History popup
	showHistory    bool
	historyTable   table.Model
	historyEntries []history.RunEntry
}

// Deps bundles everything the UI needs; constructed explicitly in cmd so no
// package-level singletons exist.
type Deps struct {
	Config       *config.Config
	Client       *api.Client
	Session      *auth.Session
	Settings     *state.SettingsStore
	HistoryStore *history.Store
	Log          *zap.Logger
	InitialOp    workflow.Operation
}

// NewModel creates the root UI model
func NewModel(deps Deps) Model {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	ei := textinput.New()
	ei.Placeholder = "you@example.com"
	ei.Prompt = "Email    : "
	ei.CharLimit = 120
	ei.Width = 40
	ei.Focus()

	pi := textinput.New()
	pi.Placeholder = "password"
	pi.Prompt = "Password : "
	pi.EchoMode = textinput.EchoPassword
	pi.EchoCharacter = '*'
	pi.CharLimit = 120
	pi.Width = 40

	op := deps.InitialOp
	spec := workflow.Lookup(op)

	ed := textarea.New()
	ed.Placeholder = spec.Placeholder
	ed.CharLimit = 5000
	ed.SetHeight(4)
	ed.SetWidth(80)
	ed.ShowLineNumbers = false
	ed.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ed.BlurredStyle.CursorLine = lipgloss.NewStyle()
	ed.Focus()

	ci := textinput.New()
	ci.Prompt = "Suggestions: "
	ci.Placeholder = "5"
	ci.CharLimit = 4
	ci.Width = 6

	se := textarea.New()
	se.Placeholder = "Paste CREATE TABLE statements here..."
	se.CharLimit = 50000
	se.SetHeight(12)
	se.SetWidth(80)
	se.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.AccentColor())

	m := Model{
		appState:         StateSignIn,
		cfg:              deps.Config,
		client:           deps.Client,
		session:          deps.Session,
		settings:         deps.Settings,
		historyStore:     deps.HistoryStore,
		log:              log,
		emailInput:       ei,
		passwordInput:    pi,
		schemaEditor:     se,
		sidebar:          oplist.New(deps.Config.Theme),
		sidebarCollapsed: deps.Settings.SidebarCollapsed(),
		op:               op,
		editor:           ed,
		countInput:       ci,
		phase:            phaseIdle,
		spinner:          sp,
		copied:           copyNone,
		selectedSug:      0,
	}
	m.sidebar.Select(op)
	m.result.Suggestions = []api.Suggestion{}

	// A persisted identity skips the sign-in view entirely.
	if deps.Session.SignedIn() {
		m.enterWorkspace()
	}
	return m
}

// enterWorkspace routes a signed-in user to onboarding or the dashboard,
// prefilling the schema editor from their workspace settings.
func (m *Model) enterWorkspace() {
	settings := m.settings.ForAccount(m.session.Email())
	m.schemaEditor.SetValue(settings.SchemaText)
	m.dialectIdx = dialectIndex(settings.Dialect)
	if settings.OnboardingDone {
		m.appState = StateReady
		m.editor.Focus()
	} else {
		m.appState = StateOnboarding
		m.schemaEditor.Focus()
	}
}

func dialectIndex(d state.Dialect) int {
	for i, known := range state.Dialects {
		if known == d {
			return i
		}
	}
	return 0
}

// dialect returns the currently selected dialect.
func (m Model) dialect() state.Dialect {
	return state.Dialects[m.dialectIdx%len(state.Dialects)]
}

// account returns the settings namespace for the current identity.
func (m Model) account() string {
	if email := m.session.Email(); email != "" {
		return email
	}
	return "default"
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}
