// Package output - CLI formatter
package output

import (
	"fmt"
	"io"

	"icsc/core/pricing"
)

// CLIFormatter renders a human-readable cost breakdown
type CLIFormatter struct{}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the breakdown, one service per line, followed by the total
func (f *CLIFormatter) Render(w io.Writer, r *Report) error {
	if len(r.Lines) == 0 {
		_, err := fmt.Fprintln(w, "You have no subscriptions yet.")
		return err
	}

	if _, err := fmt.Fprintln(w, "Your current cost breakdown is:"); err != nil {
		return err
	}
	for _, line := range r.Lines {
		_, err := fmt.Fprintf(w, "%s: %v @ %s = %s\n",
			line.Service,
			line.Amount,
			pricing.FormatCurrency(line.Rate),
			pricing.FormatCurrency(line.Cost))
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "TOTAL: %s\n", pricing.FormatCurrency(r.Total))
	return err
}
