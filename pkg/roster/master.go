package roster

import (
	"github.com/opsdesk/rosterdiff/pkg/errors"
	"github.com/opsdesk/rosterdiff/pkg/normalize"
)

// MasterEntry is one row of the authoritative team registry: the team name
// plus its 1-based position among the registry's data rows, which drives
// row citation in duplicate reports.
type MasterEntry struct {
	Name string
	Row  int
}

// Masters builds the ordered master list from a registry table. Rows with a
// blank team cell are skipped but still advance the position counter, so the
// cited positions stay aligned with the source rows. Fails with a
// *errors.MissingColumnError when the team header is absent.
func Masters(t Table, cols Columns) ([]MasterEntry, error) {
	teamIdx := t.ColumnIndex(cols.Team)
	if teamIdx < 0 {
		return nil, errors.NewMissingColumnError(cols.Team, string(FieldTeam), t.Headers())
	}

	var entries []MasterEntry
	for i, row := range t.Rows() {
		name := normalize.Clean(Cell(row, teamIdx))
		if name == "" {
			continue
		}
		entries = append(entries, MasterEntry{Name: name, Row: i + 1})
	}
	return entries, nil
}
