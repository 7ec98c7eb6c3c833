package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/dmitrijs2005/staffdb/internal/models"
)

// Separator is printed after every result set.
var Separator = strings.Repeat("-", 71)

// Table prints rows as "value | value |" lines under a one-time header.
type Table struct {
	w      io.Writer
	title  *color.Color
	header *color.Color

	headerPrinted bool
	rows          int
}

var _ Sink = (*Table)(nil)

// NewTable returns a Table writing to w. Titles and headers are colorized
// only when w is a terminal.
func NewTable(w io.Writer) *Table {
	t := &Table{
		w:      w,
		title:  color.New(color.Bold),
		header: color.New(color.FgCyan, color.Bold),
	}
	if isTerminal(w) {
		t.title.EnableColor()
		t.header.EnableColor()
	} else {
		t.title.DisableColor()
		t.header.DisableColor()
	}
	return t
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Begin starts a new result set; the next row prints the header again.
func (t *Table) Begin(title string) {
	t.headerPrinted = false
	t.rows = 0
	if title != "" {
		t.title.Fprintln(t.w, title)
	}
}

// Row prints r, preceded by the column header if this is the first row of
// the result set.
func (t *Table) Row(r models.Row) error {
	if !t.headerPrinted {
		var b strings.Builder
		for _, c := range r.Columns {
			b.WriteString(c)
			b.WriteString(" | ")
		}
		if _, err := t.header.Fprint(t.w, b.String(), "\n\n"); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		t.headerPrinted = true
	}

	var b strings.Builder
	for _, c := range r.Columns {
		b.WriteString(formatValue(r.Values[c]))
		b.WriteString(" | ")
	}
	b.WriteString("\n")
	if _, err := io.WriteString(t.w, b.String()); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	t.rows++
	return nil
}

// End closes the result set with the separator line.
func (t *Table) End() error {
	if t.rows == 0 {
		if _, err := io.WriteString(t.w, "(no rows)\n"); err != nil {
			return fmt.Errorf("write footer: %w", err)
		}
	}
	if _, err := fmt.Fprintln(t.w, Separator); err != nil {
		return fmt.Errorf("write separator: %w", err)
	}
	return nil
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case string:
		return x
	case []byte:
		return string(x)
	default:
		return fmt.Sprint(x)
	}
}
