package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opsdesk/rosterdiff/internal/config"
	"github.com/opsdesk/rosterdiff/pkg/dedupe"
	"github.com/opsdesk/rosterdiff/pkg/report"
)

var dupesWrite bool

// dupesCmd reports team names that occur more than once in the current
// roster sheet.
var dupesCmd = &cobra.Command{
	Use:   "dupes",
	Short: "Find duplicate team names within the current roster",
	Long: `Dupes scans the current roster workbook for team names appearing on
more than one row. Each duplicated name yields one row tagged Duplicate
with its occurrence count and the first-seen recipients.`,
	RunE: runDupes,
}

func init() {
	dupesCmd.Flags().BoolVarP(&dupesWrite, "write", "w", false, "Also write rows to the configured report workbook")

	rootCmd.AddCommand(dupesCmd)
}

func runDupes(_ *cobra.Command, _ []string) error {
	table, err := loadTable(config.CurrentSource())
	if err != nil {
		return err
	}

	groups, err := dedupe.WithinSet(table, config.Columns())
	if err != nil {
		return err
	}

	return emit(report.ReconciliationHeader(), report.FromDuplicates(groups), dupesWrite)
}
