// Package cmd provides the CLI commands for icsc.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"icsc/internal/config"
	"icsc/internal/logging"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "icsc",
	Short: "Calculate cloud service subscription costs",
	Long: `icsc is the ISE Cloud Services Calculator.

It prices subscriptions to metered cloud services under volume-tiered
schedules and reports a per-service and total cost breakdown.

Examples:
  icsc run services.csv
  icsc run --format json pricing.hcl
  icsc services services.csv`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.icsc.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(servicesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if noColor {
		cfg.Output.NoColor = true
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("icsc version 0.1.0")
	},
}
