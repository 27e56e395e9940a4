package dedupe

import (
	"github.com/opsdesk/rosterdiff/pkg/logging"
	"github.com/opsdesk/rosterdiff/pkg/normalize"
	"github.com/opsdesk/rosterdiff/pkg/roster"
)

// CrossHit records a candidate team name that already exists in the master
// dataset. Position is the 1-based index of the candidate row within the
// supplied slice; translating it into absolute sheet coordinates is the
// caller's job.
type CrossHit struct {
	Name     string
	Position int
}

// CrossSet tests each candidate row's team-name cell (at teamCol) for
// membership in the master dataset by normalized key. Blank cells and cells
// matching one of the given header labels are skipped.
//
// A negative teamCol is tolerated: the batch job this feeds must not abort
// on one malformed argument, so it logs a warning and returns an empty
// result instead of failing.
func CrossSet(rows [][]string, master *roster.Dataset, teamCol int, headerLabels ...string) []CrossHit {
	if teamCol < 0 {
		logging.Warn().
			Int("team_col", teamCol).
			Msg("cross-set duplicate check skipped: unresolvable team column")
		return nil
	}
	if master == nil || master.Len() == 0 {
		return nil
	}

	labels := make(map[string]bool, len(headerLabels))
	for _, l := range headerLabels {
		labels[normalize.Clean(l)] = true
	}

	var hits []CrossHit
	for i, row := range rows {
		name := normalize.Clean(roster.Cell(row, teamCol))
		if name == "" || labels[name] {
			continue
		}
		if master.Has(name) {
			hits = append(hits, CrossHit{Name: name, Position: i + 1})
		}
	}
	return hits
}
