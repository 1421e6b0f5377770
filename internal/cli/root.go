// Package cli wires configuration, state, and the API client into the
// terminal UI and the headless auth subcommands.
package cli

import (
	"os"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nhath/sqlscribe/internal/api"
	"github.com/nhath/sqlscribe/internal/auth"
	"github.com/nhath/sqlscribe/internal/config"
	"github.com/nhath/sqlscribe/internal/history"
	"github.com/nhath/sqlscribe/internal/state"
	"github.com/nhath/sqlscribe/internal/ui"
	"github.com/nhath/sqlscribe/internal/ui/styles"
	"github.com/nhath/sqlscribe/internal/workflow"
)

var (
	debugFlag bool
	opFlag    string
	apiFlag   string
)

var rootCmd = &cobra.Command{
	Use:           "sqlscribe",
	Short:         "Terminal client for turning plain language into SQL",
	Long:          `sqlscribe talks to a text-to-SQL service: describe what you need, paste a schema once, and generate, fix, explain, or optimize queries from your terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "Write debug logs to the state directory")
	rootCmd.Flags().StringVar(&opFlag, "op", "", "Initial operation (generate, fix, explain, optimize, suggest, join)")
	rootCmd.PersistentFlags().StringVar(&apiFlag, "api", "", "Override the service base URL")
}

// deps is everything a subcommand needs to talk to the service.
type deps struct {
	cfg     *config.Config
	client  *api.Client
	store   *state.Store
	session *auth.Session
	log     *zap.Logger
}

func buildDeps() (*deps, error) {
	log, err := buildLogger(debugFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if apiFlag != "" {
		cfg.APIBaseURL = apiFlag
	}

	store, err := state.Open(log)
	if err != nil {
		return nil, err
	}

	client := api.New(cfg.APIBaseURL, log)
	return &deps{
		cfg:     cfg,
		client:  client,
		store:   store,
		session: auth.NewSession(client, store, log),
		log:     log,
	}, nil
}

// buildLogger returns a file-backed logger when debugging, a no-op one
// otherwise. The UI owns the terminal, so logs never go to stderr.
func buildLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	path, err := xdg.StateFile("sqlscribe/debug.log")
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func runTUI(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer func() { _ = d.log.Sync() }()

	styles.Init(d.cfg.Theme)

	historyStore, err := history.NewStore()
	if err != nil {
		return err
	}
	defer historyStore.Close()

	model := ui.NewModel(ui.Deps{
		Config:       d.cfg,
		Client:       d.client,
		Session:      d.session,
		Settings:     state.NewSettingsStore(d.store),
		HistoryStore: historyStore,
		Log:          d.log,
		InitialOp:    workflow.Parse(opFlag),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
