// Package ui - Interactive subscription session
package ui

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"icsc/core/catalog"
	"icsc/core/ledger"
	"icsc/core/output"
	"icsc/core/pricing"
)

// Session runs the operator menu loop against a catalog and a ledger.
// It depends only on the public catalog/pricing/ledger surface, never
// on tier internals.
type Session struct {
	w      *Writer
	in     *bufio.Scanner
	cat    *catalog.Catalog
	led    *ledger.Ledger
	report output.Formatter
}

// NewSession creates an interactive session
func NewSession(w *Writer, in io.Reader, cat *catalog.Catalog, led *ledger.Ledger) *Session {
	return &Session{
		w:      w,
		in:     bufio.NewScanner(in),
		cat:    cat,
		led:    led,
		report: &output.CLIFormatter{},
	}
}

// Run executes the menu loop until the operator quits or input ends.
// Ledger state lives only for the session.
func (s *Session) Run() error {
	for {
		s.displayMenu()

		choice, ok := s.readLine("\n> ")
		if !ok {
			choice = "q"
		}
		choice = strings.ToLower(strings.TrimSpace(choice))

		switch {
		case choice == "q":
			s.w.Println("")
			s.w.Println("Thank you for using ICSC!")
			return nil

		case choice == "s":
			s.displaySubscriptions()

		case choice == "$":
			if err := s.displayBreakdown(); err != nil {
				return err
			}

		case isDigits(choice):
			s.selectService(choice)

		default:
			s.w.Error("Invalid choice. Please try again.")
		}
	}
}

func (s *Session) displayMenu() {
	s.w.Header("ICSC – ISE Cloud Services Calculator")
	s.w.Println("")
	s.w.Println("Add subscription for:")

	for i, name := range s.cat.Names() {
		s.w.Println("%d) %s", i+1, name)
	}
	s.w.Println("s) List subscriptions and totals")
	s.w.Println("$) Display cost breakdown")
	s.w.Println("q) Quit")
}

// selectService handles a numbered menu choice: shows the service's
// cost structure and prompts for a new amount.
func (s *Session) selectService(choice string) {
	index, err := strconv.Atoi(choice)
	if err != nil {
		s.w.Error("Invalid choice. Please try again.")
		return
	}

	names := s.cat.Names()
	if index < 1 || index > len(names) {
		s.w.Error("Invalid service number.")
		return
	}

	def, _ := s.cat.Get(names[index-1])
	s.displayCostStructure(def)

	current := s.led.Amount(def.Name)
	s.w.Println("")
	s.w.Println("Current %s amount: %v", def.Unit, current)
	s.w.Println("Enter new %s amount:", def.Unit)

	input, ok := s.readLine("> ")
	if !ok || strings.TrimSpace(input) == "" {
		return
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		s.w.Error("Please enter a valid number.")
		return
	}

	if err := s.led.SetAmount(def.Name, amount); err != nil {
		s.w.Error("Amount cannot be negative.")
		return
	}

	s.w.Println("")
	s.w.Success("Subscription updated: %s = %v %s(s)", def.Name, amount, def.Unit)
}

func (s *Session) displayCostStructure(def catalog.Definition) {
	s.w.Println("")
	s.w.Println("You chose %s, which has the following cost structure:", def.Name)
	for i := range def.Tiers {
		if i < len(def.Tiers)-1 {
			s.w.Println("%v-%v: %s per %s",
				def.Tiers[i], def.Tiers[i+1],
				pricing.FormatCurrency(def.Rates[i]), def.Unit)
		} else {
			s.w.Println("%v+: %s per %s",
				def.Tiers[i],
				pricing.FormatCurrency(def.Rates[i]), def.Unit)
		}
	}
}

func (s *Session) displaySubscriptions() {
	active := s.led.Active()
	s.w.Println("")
	if len(active) == 0 {
		s.w.Println("You have no subscriptions yet.")
		return
	}

	s.w.Println("You have subscriptions for:")
	for _, entry := range active {
		unit := "unit"
		if def, ok := s.cat.Get(entry.Name); ok {
			unit = def.Unit
		}
		s.w.Println("%s: %v %s(s)", entry.Name, entry.Amount, unit)
	}
}

// displayBreakdown renders the cost report. An UnknownService here is a
// bug (the menu only offers catalog names), so it propagates instead of
// being defaulted.
func (s *Session) displayBreakdown() error {
	report, err := output.BuildReport(s.led, s.cat)
	if err != nil {
		return err
	}

	s.w.Println("")
	return s.report.Render(s.w.Out(), report)
}

// SetReportFormatter overrides the formatter used for the breakdown
// display. The default is the CLI formatter.
func (s *Session) SetReportFormatter(f output.Formatter) {
	if f != nil {
		s.report = f
	}
}

func (s *Session) readLine(prompt string) (string, bool) {
	s.w.Print(prompt)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
