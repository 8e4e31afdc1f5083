// Package cmd - catalog listing command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"icsc/core/pricing"
	"icsc/core/ui"
	"icsc/internal/config"
)

// servicesCmd prints every service's cost structure
var servicesCmd = &cobra.Command{
	Use:   "services [catalog-file]",
	Short: "List catalog services and their tier schedules",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(args)
		if err != nil {
			return err
		}

		w := ui.NewWriter(os.Stdout, config.Get().Output.NoColor)
		for _, name := range cat.Names() {
			def, _ := cat.Get(name)
			w.Println("")
			w.Println("%s (per %s):", def.Name, def.Unit)
			for i := range def.Tiers {
				if i < len(def.Tiers)-1 {
					w.Println("  %v-%v: %s", def.Tiers[i], def.Tiers[i+1], pricing.FormatCurrency(def.Rates[i]))
				} else {
					w.Println("  %v+: %s", def.Tiers[i], pricing.FormatCurrency(def.Rates[i]))
				}
			}
		}
		return nil
	},
}
