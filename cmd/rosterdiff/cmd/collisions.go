package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opsdesk/rosterdiff/internal/config"
	"github.com/opsdesk/rosterdiff/pkg/dedupe"
	"github.com/opsdesk/rosterdiff/pkg/report"
	"github.com/opsdesk/rosterdiff/pkg/roster"
)

var (
	collisionsWrite bool
	collisionsExact bool
)

// collisionsCmd checks newly registered team names against the master list.
var collisionsCmd = &cobra.Command{
	Use:   "collisions",
	Short: "Check registrations against the master list",
	Long: `Collisions compares the teams in the registrations workbook against
the master list. By default it runs the fuzzy matcher: Exact means key
equality after normalization, Partial means substring containment in
either direction; when a registration has an exact match its partial
matches are suppressed. Findings are grouped by match type and key, with
all matched master rows cited.

With --exact only normalized membership is tested, citing the 1-based
registration row of each name already present in the master.`,
	RunE: runCollisions,
}

func init() {
	collisionsCmd.Flags().BoolVarP(&collisionsWrite, "write", "w", false, "Also write rows to the configured report workbook")
	collisionsCmd.Flags().BoolVar(&collisionsExact, "exact", false, "Membership check only, no fuzzy matching")

	rootCmd.AddCommand(collisionsCmd)
}

func runCollisions(_ *cobra.Command, _ []string) error {
	regTable, err := loadTable(config.RegistrationsSource())
	if err != nil {
		return err
	}

	if collisionsExact {
		return runExactCollisions(regTable)
	}

	masterTable, err := loadTable(config.MasterSource())
	if err != nil {
		return err
	}
	master, err := roster.Masters(masterTable, config.Columns())
	if err != nil {
		return err
	}

	regs := registrations(regTable)
	groups := dedupe.Match(regs, master)
	return emit(report.DuplicateCheckHeader(), report.FromMatches(groups), collisionsWrite)
}

// runExactCollisions tests normalized membership of each registration row's
// team cell in the master dataset.
func runExactCollisions(regTable roster.Table) error {
	master, err := loadDataset(config.MasterSource())
	if err != nil {
		return err
	}

	cols := config.Columns()
	teamCol := config.RegistrationsTeamColumn()
	if regTable.ColumnIndex(cols.Team) >= 0 {
		teamCol = regTable.ColumnIndex(cols.Team)
	}

	hits := dedupe.CrossSet(regTable, master, teamCol, cols.Team)
	rows := make([]report.Row, 0, len(hits))
	for _, hit := range hits {
		rows = append(rows, report.Row{hit.Name, strconv.Itoa(hit.Position)})
	}
	return emit(report.Row{"Team", "Row"}, rows, collisionsWrite)
}

// registrations lifts the registrations table's team column into matcher
// input, positions being 1-based data-row numbers.
func registrations(t roster.Table) []dedupe.Registration {
	cols := config.Columns()
	teamCol := t.ColumnIndex(cols.Team)
	if teamCol < 0 {
		teamCol = config.RegistrationsTeamColumn()
	}

	var regs []dedupe.Registration
	for i, row := range t.Rows() {
		regs = append(regs, dedupe.Registration{
			Team:     roster.Cell(row, teamCol),
			Position: i + 1,
		})
	}
	return regs
}
