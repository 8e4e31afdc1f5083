// Package output - JSON formatter
package output

import (
	"encoding/json"
	"io"

	"icsc/core/pricing"
)

// JSONFormatter renders a machine-readable cost breakdown
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

type jsonLine struct {
	Service string  `json:"service"`
	Unit    string  `json:"unit"`
	Amount  float64 `json:"amount"`
	Tier    int     `json:"tier"`
	Rate    float64 `json:"rate"`
	Cost    string  `json:"cost"`
}

type jsonReport struct {
	Lines []jsonLine `json:"lines"`
	Total string     `json:"total"`
}

// Render writes the report as indented JSON. Costs are rendered as
// two-decimal currency strings so consumers see the same rounding the
// CLI shows.
func (f *JSONFormatter) Render(w io.Writer, r *Report) error {
	out := jsonReport{
		Lines: make([]jsonLine, 0, len(r.Lines)),
		Total: pricing.FormatCurrency(r.Total),
	}
	for _, line := range r.Lines {
		out.Lines = append(out.Lines, jsonLine{
			Service: line.Service,
			Unit:    line.Unit,
			Amount:  line.Amount,
			Tier:    line.Tier,
			Rate:    line.Rate,
			Cost:    pricing.FormatCurrency(line.Cost),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
