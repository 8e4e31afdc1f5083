// Package cmd - interactive session command
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"icsc/adapters/hclcatalog"
	"icsc/adapters/tabular"
	"icsc/core/catalog"
	"icsc/core/ledger"
	"icsc/core/output"
	"icsc/core/ui"
	"icsc/internal/config"
	"icsc/internal/logging"
)

var reportFormat string

// runCmd represents the interactive session command
var runCmd = &cobra.Command{
	Use:   "run [catalog-file]",
	Short: "Start an interactive subscription session",
	Long: `Load the service catalog and run the operator menu.

The catalog file defaults to the configured path. Files ending in .hcl
are read as HCL service blocks; anything else is read as the three-line
tabular format.

Examples:
  icsc run
  icsc run services.csv
  icsc run --format json pricing.hcl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSession,
}

func init() {
	runCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "breakdown format (cli, json)")
}

func runSession(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(args)
	if err != nil {
		return err
	}

	if cat.Len() == 0 {
		fmt.Println("No valid services found in the catalog.")
		return nil
	}

	cfg := config.Get()
	format := output.Format(cfg.Output.DefaultFormat)
	if reportFormat != "" {
		format = output.Format(reportFormat)
	}

	w := ui.NewWriter(os.Stdout, cfg.Output.NoColor)
	session := ui.NewSession(w, os.Stdin, cat, ledger.New())
	session.SetReportFormatter(output.ForFormat(format))

	return session.Run()
}

// loadCatalog reads and builds the catalog named on the command line or
// in the config. Rejected records are logged per record; only a missing
// or unreadable file is fatal.
func loadCatalog(args []string) (*catalog.Catalog, error) {
	cfg := config.Get()
	path := cfg.Catalog.Path
	if len(args) > 0 {
		path = args[0]
	}

	format := cfg.Catalog.Format
	if format == "" {
		if filepath.Ext(path) == ".hcl" {
			format = "hcl"
		} else {
			format = "tabular"
		}
	}

	var (
		records  []catalog.Raw
		rejected []catalog.RecordError
		err      error
	)
	switch format {
	case "hcl":
		records, rejected, err = hclcatalog.ReadFile(path)
	default:
		records, rejected, err = tabular.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	for _, rej := range rejected {
		logging.Warn("skipped catalog record",
			zap.Int("record", rej.Index),
			zap.String("name", rej.Name),
			zap.Error(rej.Err))
	}

	cat, buildRejected := catalog.Build(records)
	logging.Info("catalog loaded",
		zap.String("path", path),
		zap.Int("services", cat.Len()),
		zap.Int("rejected", len(rejected)+len(buildRejected)))

	return cat, nil
}
