// Package ledger - Per-session subscription ledger
// Maps service names to the operator's chosen usage amounts and folds
// them through the pricing engine against the catalog.
package ledger

import (
	"github.com/shopspring/decimal"

	"icsc/core/catalog"
	"icsc/core/pricing"
	"icsc/internal/errors"
)

// Entry is one ledger row
type Entry struct {
	Name   string
	Amount float64
}

// Ledger tracks subscription amounts in insertion order. A zero amount
// means "no subscription" but the entry stays present for display
// filtering. Not safe for concurrent use; the session has exactly one
// operator.
type Ledger struct {
	amounts map[string]float64
	order   []string
}

// New creates an empty ledger
func New() *Ledger {
	return &Ledger{amounts: make(map[string]float64)}
}

// SetAmount inserts or overwrites the entry for name. Negative amounts
// are rejected; zero is accepted and means "cleared".
func (l *Ledger) SetAmount(name string, amount float64) error {
	if amount < 0 {
		return errors.InvalidAmount(amount).WithContext("service", name)
	}
	if _, exists := l.amounts[name]; !exists {
		l.order = append(l.order, name)
	}
	l.amounts[name] = amount
	return nil
}

// Amount returns the current amount for name. Absence and explicit zero
// are equivalent for billing, so an absent name returns 0.
func (l *Ledger) Amount(name string) float64 {
	return l.amounts[name]
}

// Active returns entries with amount > 0 in insertion order
func (l *Ledger) Active() []Entry {
	var out []Entry
	for _, name := range l.order {
		if amt := l.amounts[name]; amt > 0 {
			out = append(out, Entry{Name: name, Amount: amt})
		}
	}
	return out
}

// HasActive reports whether any entry has a positive amount
func (l *Ledger) HasActive() bool {
	for _, amt := range l.amounts {
		if amt > 0 {
			return true
		}
	}
	return false
}

// Clear sets the entry for name to zero. Returns false if the name was
// never subscribed.
func (l *Ledger) Clear(name string) bool {
	if _, exists := l.amounts[name]; !exists {
		return false
	}
	l.amounts[name] = 0
	return true
}

// Reset drops every entry
func (l *Ledger) Reset() {
	l.amounts = make(map[string]float64)
	l.order = nil
}

// Breakdown computes a cost line for every active entry against the
// catalog. A ledger name absent from the catalog signals a caller bug
// and aborts the whole computation with UnknownService; there is no
// partial tolerance.
func (l *Ledger) Breakdown(cat *catalog.Catalog) ([]pricing.Line, error) {
	var lines []pricing.Line
	for _, entry := range l.Active() {
		def, ok := cat.Get(entry.Name)
		if !ok {
			return nil, errors.UnknownService(entry.Name)
		}
		line, err := pricing.LineFor(def, entry.Amount)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// TotalCost sums the cost of every active entry. Decimal accumulation
// keeps the total exact regardless of entry order.
func (l *Ledger) TotalCost(cat *catalog.Catalog) (float64, error) {
	lines, err := l.Breakdown(cat)
	if err != nil {
		return 0, err
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(decimal.NewFromFloat(line.Cost))
	}
	return total.InexactFloat64(), nil
}
