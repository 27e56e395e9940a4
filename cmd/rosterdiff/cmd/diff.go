package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsdesk/rosterdiff/internal/config"
	"github.com/opsdesk/rosterdiff/internal/snapshot"
	"github.com/opsdesk/rosterdiff/pkg/differ"
	"github.com/opsdesk/rosterdiff/pkg/report"
	"github.com/opsdesk/rosterdiff/pkg/roster"
)

var (
	diffWrite        bool
	diffFromSheet    bool
	diffIgnoreFields []string
	diffKeepWithdraw bool
)

// diffCmd compares the current roster against the baseline and reports
// created, updated, and deleted teams.
var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Diff the current roster against the baseline",
	Long: `Diff extracts the current roster from its workbook and compares it
against the baseline: by default the captured YAML snapshot, or a baseline
workbook with --from-sheet.

Each changed team yields one row: Created for new teams, Updated when
recipients or secondary attributes changed, Deleted for removed teams.
Teams whose TO and CC both went empty with nothing else changed are
reported as Deleted; --keep-withdrawn reports them as Updated instead.`,
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().BoolVarP(&diffWrite, "write", "w", false, "Also write rows to the configured report workbook")
	diffCmd.Flags().BoolVar(&diffFromSheet, "from-sheet", false, "Diff against the baseline workbook instead of the snapshot")
	diffCmd.Flags().StringSliceVar(&diffIgnoreFields, "ignore", nil, "Fields to exclude from comparison (e.g. review_period)")
	diffCmd.Flags().BoolVar(&diffKeepWithdraw, "keep-withdrawn", false, "Report withdrawn-recipient teams as Updated, not Deleted")

	rootCmd.AddCommand(diffCmd)
}

func runDiff(_ *cobra.Command, _ []string) error {
	current, err := loadDataset(config.CurrentSource())
	if err != nil {
		return err
	}

	baseline, err := loadBaseline()
	if err != nil {
		return err
	}

	opts := []differ.Option{}
	if len(diffIgnoreFields) > 0 {
		fields := make([]roster.Field, len(diffIgnoreFields))
		for i, f := range diffIgnoreFields {
			fields[i] = roster.Field(f)
		}
		opts = append(opts, differ.WithIgnoredFields(fields...))
	}
	if diffKeepWithdraw {
		opts = append(opts, differ.WithWithdrawnAsDeleted(false))
	}

	changeset := differ.New(opts...).Datasets(current, baseline)
	if !globalFlags.Quiet {
		fmt.Println(changeset.String())
	}

	return emit(report.ReconciliationHeader(), report.FromChangeset(changeset), diffWrite)
}

func loadBaseline() (*roster.Dataset, error) {
	if diffFromSheet {
		return loadDataset(config.BaselineSource())
	}
	return snapshot.Load(config.SnapshotPath())
}
