package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to write a table in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes t in the formatter's specific format
	Format(t *Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Output format names
const (
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatTable = "table"
)

// ErrUnknownFormat is returned by NewFormatter for an unsupported name
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported format names
func Formats() []string {
	return []string{FormatCSV, FormatJSON, FormatTable}
}

// ValidFormat reports whether name is a supported format
func ValidFormat(name string) bool {
	switch strings.ToLower(name) {
	case FormatCSV, FormatJSON, "jsonl", FormatTable:
		return true
	}
	return false
}

// NewFormatter returns the formatter registered under name
func NewFormatter(name string, w io.Writer) (Formatter, error) {
	switch strings.ToLower(name) {
	case FormatCSV:
		return NewCSVFormatter(w), nil
	case FormatJSON, "jsonl":
		return NewJSONFormatter(w), nil
	case FormatTable:
		return NewTableFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, name, strings.Join(Formats(), ", "))
	}
}

// DefaultFormat picks table output for an interactive terminal and CSV for
// anything else
func DefaultFormat(w io.Writer) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return FormatTable
	}
	return FormatCSV
}
