// Package pricing - Tiered pricing engine
// Pure functions mapping a usage amount onto a volume-tier schedule.
// The model is flat-tier: the whole amount is billed at the rate of the
// tier it resolves to, not summed across crossed brackets.
package pricing

import (
	"github.com/shopspring/decimal"

	"icsc/core/catalog"
	"icsc/internal/errors"
)

// FindTier returns the greatest index i such that tiers[i] <= amount.
// Boundaries are half-open: an amount equal to a tier's lower bound
// belongs to that tier, never the one below. The last tier is unbounded
// above, so any non-negative amount resolves. A negative amount is a
// caller contract violation.
func FindTier(amount float64, tiers []float64) (int, error) {
	if amount < 0 {
		return 0, errors.InvalidAmount(amount)
	}
	if len(tiers) == 0 {
		return 0, errors.Internal("empty tier schedule", nil)
	}

	for i := len(tiers) - 1; i >= 0; i-- {
		if amount >= tiers[i] {
			return i, nil
		}
	}

	// Unreachable for a valid schedule (tiers[0] == 0, amount >= 0)
	return 0, nil
}

// RateAt returns the unit rate that applies to amount
func RateAt(amount float64, tiers, rates []float64) (float64, error) {
	i, err := FindTier(amount, tiers)
	if err != nil {
		return 0, err
	}
	return rates[i], nil
}

// CostFor returns the total cost for amount under a flat-tier schedule:
// amount * rate of the resolved tier. Zero usage costs zero. The
// multiplication is done in decimal arithmetic so costs are free of
// binary float artifacts.
func CostFor(amount float64, tiers, rates []float64) (float64, error) {
	rate, err := RateAt(amount, tiers, rates)
	if err != nil {
		return 0, err
	}
	if amount == 0 {
		return 0, nil
	}

	cost := decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate))
	return cost.InexactFloat64(), nil
}

// Line is one cost breakdown row, derived on demand and never cached
type Line struct {
	Service string  `json:"service"`
	Unit    string  `json:"unit"`
	Amount  float64 `json:"amount"`
	Tier    int     `json:"tier"`
	Rate    float64 `json:"rate"`
	Cost    float64 `json:"cost"`
}

// LineFor computes the breakdown line for one service at the given amount
func LineFor(def catalog.Definition, amount float64) (Line, error) {
	tier, err := FindTier(amount, def.Tiers)
	if err != nil {
		return Line{}, err
	}

	rate := def.Rates[tier]
	cost := 0.0
	if amount > 0 {
		cost = decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate)).InexactFloat64()
	}

	return Line{
		Service: def.Name,
		Unit:    def.Unit,
		Amount:  amount,
		Tier:    tier,
		Rate:    rate,
		Cost:    cost,
	}, nil
}
