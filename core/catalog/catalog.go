// Package catalog - Authoritative service catalog
// Defines the validated set of metered services with their tier schedules.
// This is the source of truth for pricing lookups.
package catalog

import (
	"sort"

	"go.uber.org/zap"

	"icsc/internal/logging"
)

// Definition describes one metered service and its tiered price schedule.
// Tiers holds the lower bound of each tier; tier i covers
// [Tiers[i], Tiers[i+1]) and the last tier is unbounded above.
// Rates is positionally aligned with Tiers.
type Definition struct {
	Name  string
	Unit  string
	Tiers []float64
	Rates []float64
}

// Raw is an unvalidated service record produced by a catalog source
// (tabular or HCL reader). Index is the record's position in the source,
// used for error reporting.
type Raw struct {
	Index int
	Name  string
	Unit  string
	Tiers []float64
	Rates []float64
}

// RecordError reports a rejected source record
type RecordError struct {
	Index int
	Name  string
	Err   error
}

func (e RecordError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying rejection reason
func (e RecordError) Unwrap() error {
	return e.Err
}

// Catalog is the validated, immutable set of service definitions
type Catalog struct {
	defs  map[string]Definition
	names []string
}

// Build constructs a catalog from raw source records.
// Each record is validated independently: bad records are rejected and
// reported, good records still load. A record whose name duplicates an
// existing entry is rejected (first occurrence wins). An empty result is
// a valid catalog, not an error.
func Build(records []Raw) (*Catalog, []RecordError) {
	c := &Catalog{defs: make(map[string]Definition)}
	var rejected []RecordError

	for _, rec := range records {
		def := Definition{
			Name:  rec.Name,
			Unit:  rec.Unit,
			Tiers: rec.Tiers,
			Rates: rec.Rates,
		}

		if err := Validate(def); err != nil {
			rejected = append(rejected, RecordError{Index: rec.Index, Name: rec.Name, Err: err})
			logging.Warn("rejected service record",
				zap.Int("record", rec.Index),
				zap.String("name", rec.Name),
				zap.Error(err))
			continue
		}

		if _, exists := c.defs[def.Name]; exists {
			err := duplicateName(def.Name)
			rejected = append(rejected, RecordError{Index: rec.Index, Name: rec.Name, Err: err})
			logging.Warn("rejected duplicate service record",
				zap.Int("record", rec.Index),
				zap.String("name", rec.Name))
			continue
		}

		c.defs[def.Name] = def
		c.names = append(c.names, def.Name)
	}

	sort.Strings(c.names)
	return c, rejected
}

// Get returns the definition for a service name
func (c *Catalog) Get(name string) (Definition, bool) {
	def, ok := c.defs[name]
	return def, ok
}

// Names returns all service names in sorted order
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of services in the catalog
func (c *Catalog) Len() int {
	return len(c.defs)
}
