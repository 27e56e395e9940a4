package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opsdesk/rosterdiff/internal/config"
	"github.com/opsdesk/rosterdiff/pkg/report"
	"github.com/opsdesk/rosterdiff/pkg/validate"
)

var validateWrite bool

// validateCmd checks the recipient email lists of the current roster.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate recipient email lists in the current roster",
	Long: `Validate extracts the current roster and checks every TO and CC cell:
each cell is split on line breaks and every non-blank entry must look like
an email address. Teams with a malformed entry yield one row tagged
Mismatch naming the failing field. Empty cells are valid.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVarP(&validateWrite, "write", "w", false, "Also write rows to the configured report workbook")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	ds, err := loadDataset(config.CurrentSource())
	if err != nil {
		return err
	}

	findings := validate.Scan(ds)
	return emit(report.ReconciliationHeader(), report.FromMismatches(findings), validateWrite)
}
