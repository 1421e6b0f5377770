package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// Config represents the application configuration
type Config struct {
	// APIBaseURL points at the remote text-to-SQL service.
	APIBaseURL string `toml:"api_base_url"`
	// MaxRows caps result sizes requested from the service.
	MaxRows int    `toml:"max_rows"`
	Theme   Theme  `toml:"theme_colors"`
	Keys    KeyMap `toml:"keys"`
}

// Theme defines the color palette
type Theme struct {
	TextPrimary   string `toml:"text_primary"`
	TextSecondary string `toml:"text_secondary"`
	TextFaint     string `toml:"text_faint"`
	Accent        string `toml:"accent"`
	Success       string `toml:"success"`
	Error         string `toml:"error"`
	Highlight     string `toml:"highlight"`
	Warning       string `toml:"warning"`
	BgPrimary     string `toml:"bg_primary"`
	BgSecondary   string `toml:"bg_secondary"`
	CardBg        string `toml:"card_bg"`
}

// KeyMap defines key bindings
type KeyMap struct {
	Run           []string `toml:"run"`
	Exit          []string `toml:"exit"`
	NextOp        []string `toml:"next_op"`
	PrevOp        []string `toml:"prev_op"`
	ToggleSidebar []string `toml:"toggle_sidebar"`
	Copy          []string `toml:"copy"`
	History       []string `toml:"history"`
	Schema        []string `toml:"schema"`
	SignOut       []string `toml:"sign_out"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL: "http://localhost:8000",
		MaxRows:    100,
		Theme: Theme{
			// Nord Theme Defaults
			TextPrimary:   "#D8DEE9",
			TextSecondary: "#81A1C1",
			TextFaint:     "#4C566A",
			Accent:        "#88C0D0",
			Success:       "#A3BE8C",
			Error:         "#BF616A",
			Highlight:     "#8FBCBB",
			Warning:       "#D08770",
			BgPrimary:     "#2E3440",
			BgSecondary:   "#3B4252",
			CardBg:        "#434C5E",
		},
		Keys: KeyMap{
			Run:           []string{"ctrl+d"},
			Exit:          []string{"ctrl+c", "ctrl+q"},
			NextOp:        []string{"tab"},
			PrevOp:        []string{"shift+tab"},
			ToggleSidebar: []string{"ctrl+b"},
			Copy:          []string{"ctrl+y"},
			History:       []string{"ctrl+h"},
			Schema:        []string{"ctrl+o"},
			SignOut:       []string{"ctrl+x"},
		},
	}
}

// ConfigPath returns the XDG-compliant config file path
func ConfigPath() (string, error) {
	return xdg.ConfigFile("sqlscribe/config.toml")
}

// Load loads the config from disk or creates default
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// First run: create default
		cfg := DefaultConfig()
		if err := cfg.Save(); err != nil {
			return nil, err
		}
		applyEnv(cfg)
		return cfg, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	// Populate defaults for missing fields (migration)
	defaults := DefaultConfig()
	updated := false

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaults.APIBaseURL
		updated = true
	}
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = defaults.MaxRows
		updated = true
	}
	if cfg.Theme.TextPrimary == "" {
		cfg.Theme = defaults.Theme
		updated = true
	}
	if len(cfg.Keys.Run) == 0 {
		cfg.Keys = defaults.Keys
		updated = true
	}

	if updated {
		// Persist the filled-in defaults so the user can see/edit them
		_ = cfg.Save()
	}

	applyEnv(&cfg)
	return &cfg, nil
}

// applyEnv lets the environment override the service URL without touching
// the config file.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SQLSCRIBE_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
}

// Save writes the config to disk
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
