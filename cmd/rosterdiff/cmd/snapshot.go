package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsdesk/rosterdiff/internal/config"
	"github.com/opsdesk/rosterdiff/internal/snapshot"
	"github.com/opsdesk/rosterdiff/pkg/logging"
)

// snapshotCmd captures the current roster as the YAML baseline.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Capture the current roster as the baseline snapshot",
	Long: `Snapshot extracts the current roster from its workbook and saves it
as the YAML baseline that later diff runs compare against. Capture the
snapshot before overwriting the roster so the baseline reflects the
pre-change state.`,
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(_ *cobra.Command, _ []string) error {
	ds, err := loadDataset(config.CurrentSource())
	if err != nil {
		return err
	}

	path := config.SnapshotPath()
	if err := snapshot.Save(path, ds); err != nil {
		return err
	}

	logging.Info().Str("path", path).Int("teams", ds.Len()).Msg("snapshot saved")
	if !globalFlags.Quiet {
		fmt.Printf("Saved %d teams to %s\n", ds.Len(), path)
	}
	return nil
}
