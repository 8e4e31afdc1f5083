// Package catalog - Definition validation
// Ensures catalog integrity and enforces invariants.
package catalog

import (
	"icsc/internal/errors"
)

// ValidationRule is a single definition invariant check
type ValidationRule func(Definition) error

// DefaultValidationRules returns the standard validation rules, one per
// invariant so rejections name the exact violation.
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateName,
		validateTierCount,
		validateAlignment,
		validateFirstTierZero,
		validateTiersIncreasing,
		validateRatesNonNegative,
	}
}

// Validate checks a definition against the standard rules and returns
// the first violation found, or nil for a well-formed definition.
func Validate(def Definition) error {
	for _, rule := range DefaultValidationRules() {
		if err := rule(def); err != nil {
			return err
		}
	}
	return nil
}

func validateName(def Definition) error {
	if def.Name == "" {
		return errors.InvalidDefinition("service name is empty")
	}
	return nil
}

func validateTierCount(def Definition) error {
	if len(def.Tiers) == 0 {
		return errors.InvalidDefinition("service has no tiers").
			WithContext("name", def.Name)
	}
	return nil
}

func validateAlignment(def Definition) error {
	if len(def.Tiers) != len(def.Rates) {
		return errors.InvalidDefinition("tier and rate counts differ").
			WithContext("name", def.Name).
			WithContext("tiers", len(def.Tiers)).
			WithContext("rates", len(def.Rates))
	}
	return nil
}

func validateFirstTierZero(def Definition) error {
	if len(def.Tiers) > 0 && def.Tiers[0] != 0 {
		return errors.InvalidDefinition("first tier boundary must be 0").
			WithContext("name", def.Name).
			WithContext("first", def.Tiers[0])
	}
	return nil
}

func validateTiersIncreasing(def Definition) error {
	for i := 0; i+1 < len(def.Tiers); i++ {
		if def.Tiers[i] >= def.Tiers[i+1] {
			return errors.InvalidDefinition("tier boundaries must be strictly increasing").
				WithContext("name", def.Name).
				WithContext("position", i+1).
				WithContext("value", def.Tiers[i+1])
		}
	}
	return nil
}

func validateRatesNonNegative(def Definition) error {
	for i, r := range def.Rates {
		if r < 0 {
			return errors.InvalidDefinition("rate must be non-negative").
				WithContext("name", def.Name).
				WithContext("position", i).
				WithContext("rate", r)
		}
	}
	return nil
}

func duplicateName(name string) error {
	return errors.InvalidDefinition("duplicate service name, first occurrence wins").
		WithContext("name", name)
}
