package hclcatalog

import (
	"testing"

	"icsc/internal/errors"
)

func TestParseServices(t *testing.T) {
	src := `
service "Compute" {
  unit  = "hour"
  tiers = [0, 50, 1000, 8000]
  rates = [0.62, 0.58, 0.55, 0.52]
}

service "Storage" {
  unit  = "GB"
  tiers = [0, 100]
  rates = [0.10, 0.08]
}
`
	records, rejected := Parse([]byte(src), "pricing.hcl")

	if len(rejected) != 0 {
		t.Fatalf("rejected: %v", rejected)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	rec := records[0]
	if rec.Name != "Compute" || rec.Unit != "hour" {
		t.Errorf("identity = %s/%s, want Compute/hour", rec.Name, rec.Unit)
	}
	if len(rec.Tiers) != 4 || rec.Tiers[1] != 50 {
		t.Errorf("Tiers = %v, want [0 50 1000 8000]", rec.Tiers)
	}
	if len(rec.Rates) != 4 || rec.Rates[0] != 0.62 {
		t.Errorf("Rates = %v, want [0.62 0.58 0.55 0.52]", rec.Rates)
	}

	if records[1].Name != "Storage" || records[1].Index != 2 {
		t.Errorf("second record = %+v, want Storage at index 2", records[1])
	}
}

func TestParseSyntaxError(t *testing.T) {
	records, rejected := Parse([]byte(`service "Broken" {`), "pricing.hcl")
	if len(records) != 0 {
		t.Errorf("got %d records from broken file", len(records))
	}
	if len(rejected) != 1 || !errors.IsType(rejected[0].Err, errors.TypeMalformedRecord) {
		t.Fatalf("rejected = %v, want one MALFORMED_RECORD", rejected)
	}
}

func TestParseBadBlocks(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "missing unit",
			src: `service "NoUnit" {
  tiers = [0, 50]
  rates = [1, 2]
}`,
		},
		{
			name: "tiers not a list",
			src: `service "Scalar" {
  unit  = "hour"
  tiers = 0
  rates = [1]
}`,
		},
		{
			name: "string in rates",
			src: `service "Mixed" {
  unit  = "hour"
  tiers = [0, 50]
  rates = [1, "two"]
}`,
		},
		{
			name: "empty tiers list",
			src: `service "Hollow" {
  unit  = "hour"
  tiers = []
  rates = []
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, rejected := Parse([]byte(tt.src), "pricing.hcl")
			if len(records) != 0 {
				t.Errorf("got %d records, want 0", len(records))
			}
			if len(rejected) != 1 {
				t.Fatalf("rejected = %d, want 1", len(rejected))
			}
			if !errors.IsType(rejected[0].Err, errors.TypeMalformedRecord) {
				t.Errorf("rejection = %v, want MALFORMED_RECORD", rejected[0].Err)
			}
		})
	}
}

// A bad block is skipped; blocks after it still load.
func TestParsePartialSuccess(t *testing.T) {
	src := `
service "Broken" {
  unit = "hour"
}

service "Storage" {
  unit  = "GB"
  tiers = [0, 100]
  rates = [0.10, 0.08]
}
`
	records, rejected := Parse([]byte(src), "pricing.hcl")
	if len(records) != 1 || records[0].Name != "Storage" {
		t.Fatalf("records = %v, want just Storage", records)
	}
	if len(rejected) != 1 || rejected[0].Name != "Broken" {
		t.Fatalf("rejected = %v, want Broken", rejected)
	}
}
