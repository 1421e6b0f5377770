// Package highlight renders SQL with terminal syntax highlighting via chroma.
package highlight

import (
	"bytes"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
)

// lexerFor picks the closest chroma lexer for a dialect.
func lexerFor(dialect string) chroma.Lexer {
	var l chroma.Lexer
	switch dialect {
	case "mysql":
		l = lexers.Get("mysql")
	case "postgresql", "postgres":
		l = lexers.Get("postgres")
	default:
		l = lexers.Get("sql")
	}
	if l == nil {
		l = lexers.Get("sql")
	}
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}

// SQL returns dialect-aware highlighted SQL using 256-color ANSI output.
// On any tokenization or formatting error the input is returned unchanged.
func SQL(sql, dialect string) string {
	lexer := lexerFor(dialect)

	style := chromastyles.Get("nord")
	if style == nil {
		style = chromastyles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return sql
	}

	it, err := lexer.Tokenise(nil, sql)
	if err != nil {
		return sql
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, it); err != nil {
		return sql
	}
	return buf.String()
}
