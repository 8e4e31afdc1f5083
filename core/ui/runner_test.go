package ui

import (
	"bytes"
	"strings"
	"testing"

	"icsc/core/catalog"
	"icsc/core/ledger"
)

func sessionCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, rejected := catalog.Build([]catalog.Raw{
		{
			Index: 1, Name: "Compute", Unit: "hour",
			Tiers: []float64{0, 50, 1000, 8000},
			Rates: []float64{0.62, 0.58, 0.55, 0.52},
		},
		{
			Index: 2, Name: "Storage", Unit: "GB",
			Tiers: []float64{0, 100},
			Rates: []float64{0.10, 0.08},
		},
	})
	if len(rejected) != 0 {
		t.Fatalf("catalog rejected records: %v", rejected)
	}
	return cat
}

func runScript(t *testing.T, script string) (string, *ledger.Ledger) {
	t.Helper()
	var buf bytes.Buffer
	led := ledger.New()
	s := NewSession(NewWriter(&buf, true), strings.NewReader(script), sessionCatalog(t), led)
	if err := s.Run(); err != nil {
		t.Fatalf("session failed: %v", err)
	}
	return buf.String(), led
}

func TestSessionSubscribeAndBreakdown(t *testing.T) {
	out, led := runScript(t, "1\n100\n$\nq\n")

	if led.Amount("Compute") != 100 {
		t.Errorf("ledger amount = %v, want 100", led.Amount("Compute"))
	}

	for _, want := range []string{
		"1) Compute",
		"2) Storage",
		"You chose Compute, which has the following cost structure:",
		"0-50: $0.62 per hour",
		"8000+: $0.52 per hour",
		"Subscription updated: Compute = 100 hour(s)",
		"Compute: 100 @ $0.58 = $58.00",
		"TOTAL: $58.00",
		"Thank you for using ICSC!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("session output missing %q", want)
		}
	}
}

func TestSessionListSubscriptions(t *testing.T) {
	out, _ := runScript(t, "2\n200\ns\nq\n")

	if !strings.Contains(out, "You have subscriptions for:") {
		t.Error("missing subscriptions header")
	}
	if !strings.Contains(out, "Storage: 200 GB(s)") {
		t.Errorf("missing storage entry in:\n%s", out)
	}
}

func TestSessionNoSubscriptionsYet(t *testing.T) {
	out, _ := runScript(t, "s\n$\nq\n")

	if strings.Count(out, "no subscriptions yet") != 2 {
		t.Errorf("expected the no-subscriptions notice twice in:\n%s", out)
	}
}

func TestSessionInvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"unknown menu key", "x\nq\n", "Invalid choice"},
		{"service number out of range", "9\nq\n", "Invalid service number"},
		{"non-numeric amount", "1\nabc\nq\n", "valid number"},
		{"negative amount", "1\n-5\nq\n", "cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, led := runScript(t, tt.script)
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
			if led.HasActive() {
				t.Error("invalid input still created a subscription")
			}
		})
	}
}

// Empty input at the amount prompt cancels without touching the ledger.
func TestSessionEmptyAmountCancels(t *testing.T) {
	out, led := runScript(t, "1\n\nq\n")

	if led.HasActive() {
		t.Error("cancelled prompt still created a subscription")
	}
	if strings.Contains(out, "Subscription updated") {
		t.Error("cancelled prompt reported an update")
	}
}

// EOF on stdin ends the session like quitting.
func TestSessionEOFQuits(t *testing.T) {
	out, _ := runScript(t, "")
	if !strings.Contains(out, "Thank you for using ICSC!") {
		t.Error("EOF did not end the session cleanly")
	}
}

func TestSessionUpdateOverwritesAmount(t *testing.T) {
	out, led := runScript(t, "1\n100\n1\n2000\n$\nq\n")

	if led.Amount("Compute") != 2000 {
		t.Errorf("ledger amount = %v, want 2000", led.Amount("Compute"))
	}
	if !strings.Contains(out, "Current hour amount: 100") {
		t.Errorf("second prompt did not show the current amount:\n%s", out)
	}
	// 2000 hours resolves to the 0.55 tier
	if !strings.Contains(out, "Compute: 2000 @ $0.55 = $1100.00") {
		t.Errorf("breakdown missing updated line:\n%s", out)
	}
}
