// vsme-validate checks a VSME Excel report and prints the result as JSON.
//
// Domain problems (a malformed workbook, taxonomy violations) never
// surface as errors here: they are part of the printed result, and the
// exit code is the only failure signal. Exit 0 means the run succeeded
// with no error-severity messages; anything else exits 1.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vsmetools/validator/internal/config"
	"github.com/vsmetools/validator/internal/excel"
	"github.com/vsmetools/validator/internal/logging"
	"github.com/vsmetools/validator/internal/taxonomy"
	"github.com/vsmetools/validator/internal/validation"
	"github.com/vsmetools/validator/internal/xbrl"
)

var (
	skipXBRL bool
	pretty   bool
)

var rootCmd = &cobra.Command{
	Use:           "vsme-validate <excel_file>",
	Short:         "Validate a VSME Excel report and print the results as JSON",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVar(&skipXBRL, "skip-xbrl-validation", false,
		"skip XBRL validation (only check Excel extraction)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "pretty-print JSON output")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	if err := taxonomy.EnsureLoaded(); err != nil {
		return fmt.Errorf("load taxonomy reference data: %w", err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	mapping, err := excel.VSMEDefaults()
	if err != nil {
		return err
	}

	validator, err := xbrl.NewReportProcessor(xbrl.Options{
		TaxonomyPackages: cfg.Taxonomy.Packages,
		WorkOffline:      cfg.Taxonomy.WorkOffline,
	})
	if err != nil {
		return err
	}

	runner := validation.NewRunner(excel.NewProcessor(mapping), validator)
	result := runner.Run(cmd.Context(), data, validation.Options{SkipXBRL: skipXBRL})

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(result, "", "  ")
	} else {
		out, err = json.Marshal(result)
	}
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if !result.Success || result.HasErrors {
		os.Exit(1)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
