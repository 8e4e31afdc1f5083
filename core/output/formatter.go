// Package output provides output formatting interfaces.
// This package produces human and machine-readable cost reports.
package output

import (
	"io"

	"icsc/core/catalog"
	"icsc/core/ledger"
	"icsc/core/pricing"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable breakdown
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, r *Report) error
}

// Report is the complete cost breakdown for a session
type Report struct {
	// Lines are the per-service breakdown rows for active entries
	Lines []pricing.Line `json:"lines"`

	// Total is the summed cost across all lines
	Total float64 `json:"total"`
}

// BuildReport folds the ledger through the pricing engine against the
// catalog. Fails with UnknownService if the ledger names a service the
// catalog does not carry.
func BuildReport(l *ledger.Ledger, cat *catalog.Catalog) (*Report, error) {
	lines, err := l.Breakdown(cat)
	if err != nil {
		return nil, err
	}

	total, err := l.TotalCost(cat)
	if err != nil {
		return nil, err
	}

	return &Report{Lines: lines, Total: total}, nil
}

// ForFormat returns the formatter for a format name, defaulting to CLI
func ForFormat(f Format) Formatter {
	switch f {
	case FormatJSON:
		return &JSONFormatter{}
	default:
		return &CLIFormatter{}
	}
}
