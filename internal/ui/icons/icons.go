package icons

const (
	// Dialect Icons (Nerd Font)
	IconPostgres = ""
	IconMySQL    = ""
	IconSQLite   = "\U000f01bc"
	IconGeneric  = "\U000f01bc"

	// Operation Icons
	IconCode        = ""
	IconMessage     = "\U000f0b79"
	IconSuggestions = "\U000f0335"

	// Utility Icons
	IconLock      = "\U000f033e"
	IconSuccess   = "✓"
	IconError     = "⚠"
	IconSelect    = "▸"
	IconBullet    = "•"
	IconSeparator = "  •  "
	IconSpinnerOK = "●"
)

// ForOperation maps a workflow icon identifier to a glyph.
func ForOperation(id string) string {
	switch id {
	case "message":
		return IconMessage
	case "suggestions":
		return IconSuggestions
	default:
		return IconCode
	}
}

// ForDialect returns the glyph for a database dialect.
func ForDialect(dialect string) string {
	switch dialect {
	case "postgres", "postgresql":
		return IconPostgres
	case "mysql":
		return IconMySQL
	case "sqlite":
		return IconSQLite
	default:
		return IconGeneric
	}
}
