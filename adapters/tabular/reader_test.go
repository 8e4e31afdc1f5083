package tabular

import (
	"strings"
	"testing"

	"icsc/internal/errors"
)

func TestReadSingleService(t *testing.T) {
	input := `Compute,hour
0,50,1000,8000
0.62,0.58,0.55,0.52
`
	records, rejected := Read(strings.NewReader(input))

	if len(rejected) != 0 {
		t.Fatalf("rejected %d records: %v", len(rejected), rejected)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	rec := records[0]
	if rec.Index != 1 {
		t.Errorf("Index = %d, want 1", rec.Index)
	}
	if rec.Name != "Compute" || rec.Unit != "hour" {
		t.Errorf("identity = %s/%s, want Compute/hour", rec.Name, rec.Unit)
	}
	wantTiers := []float64{0, 50, 1000, 8000}
	for i, v := range wantTiers {
		if rec.Tiers[i] != v {
			t.Errorf("Tiers[%d] = %v, want %v", i, rec.Tiers[i], v)
		}
	}
	if rec.Rates[3] != 0.52 {
		t.Errorf("Rates[3] = %v, want 0.52", rec.Rates[3])
	}
}

func TestReadMultipleServicesWithBlankLinesAndPadding(t *testing.T) {
	input := `
Compute,hour
0,50,1000
0.62, 0.58, 0.55

Storage , GB
0,100
0.10,0.08
`
	records, rejected := Read(strings.NewReader(input))

	if len(rejected) != 0 {
		t.Fatalf("rejected: %v", rejected)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[1].Name != "Storage" || records[1].Unit != "GB" {
		t.Errorf("second record = %s/%s, fields not trimmed", records[1].Name, records[1].Unit)
	}
	if records[0].Rates[1] != 0.58 {
		t.Errorf("padded rate = %v, want 0.58", records[0].Rates[1])
	}
}

func TestReadTrailingPartialGroup(t *testing.T) {
	input := `Compute,hour
0,50
0.62,0.58
Orphan,GB
0,100
`
	records, rejected := Read(strings.NewReader(input))

	if len(records) != 1 || records[0].Name != "Compute" {
		t.Fatalf("records = %v, want just Compute", records)
	}
	if len(rejected) != 1 {
		t.Fatalf("rejected = %d, want 1 for the partial trailing group", len(rejected))
	}
	if !errors.IsType(rejected[0].Err, errors.TypeMalformedRecord) {
		t.Errorf("rejection = %v, want MALFORMED_RECORD", rejected[0].Err)
	}
	if rejected[0].Index != 2 {
		t.Errorf("rejected record index = %d, want 2", rejected[0].Index)
	}
}

func TestReadBadNumericFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name: "non-numeric tier",
			input: `Compute,hour
0,fifty,1000
0.62,0.58,0.55
`,
		},
		{
			name: "non-numeric rate",
			input: `Compute,hour
0,50,1000
0.62,cheap,0.55
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, rejected := Read(strings.NewReader(tt.input))
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

func TestReadBadNameLine(t *testing.T) {
	input := `ComputeNoUnit
0,50
0.62,0.58
`
	records, rejected := Read(strings.NewReader(input))
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
	if len(rejected) != 1 || !errors.IsType(rejected[0].Err, errors.TypeMalformedRecord) {
		t.Fatalf("rejected = %v, want one MALFORMED_RECORD", rejected)
	}
}

// A malformed record in the middle does not poison the records after it.
func TestReadPartialSuccess(t *testing.T) {
	input := `Compute,hour
0,oops
0.62,0.58
Storage,GB
0,100
0.10,0.08
`
	records, rejected := Read(strings.NewReader(input))
	if len(records) != 1 || records[0].Name != "Storage" {
		t.Fatalf("records = %v, want just Storage", records)
	}
	if len(rejected) != 1 || rejected[0].Index != 1 {
		t.Fatalf("rejected = %v, want record 1", rejected)
	}
}

func TestReadEmptyInput(t *testing.T) {
	records, rejected := Read(strings.NewReader(""))
	if len(records) != 0 || len(rejected) != 0 {
		t.Errorf("Read(empty) = %d records, %d rejected; want 0, 0", len(records), len(rejected))
	}
}
