// Package dedupe detects team-name collisions: duplicates within a single
// dataset, exact membership collisions against the master registry, and
// fuzzy (exact or substring) matches of new registrations against it.
package dedupe

import (
	"strings"

	"github.com/opsdesk/rosterdiff/pkg/errors"
	"github.com/opsdesk/rosterdiff/pkg/roster"
)

// DuplicateGroup is one team name appearing more than once within a single
// raw table. To and Cc carry the first-seen row's original values.
type DuplicateGroup struct {
	Team  string
	To    string
	Cc    string
	Count int
}

// WithinSet finds team names that occur more than once in a raw table. It
// works on the raw table rather than the extracted dataset so the output
// preserves the original row values. Two passes: the first counts trimmed
// team names, the second walks the rows again and emits exactly one group
// per duplicated name, in first-appearance order. Fails with a
// *errors.MissingColumnError when the team header is absent.
func WithinSet(t roster.Table, cols roster.Columns) ([]DuplicateGroup, error) {
	teamIdx := t.ColumnIndex(cols.Team)
	if teamIdx < 0 {
		return nil, errors.NewMissingColumnError(cols.Team, string(roster.FieldTeam), t.Headers())
	}

	// to/cc are carried through for reporting only; absence is tolerated.
	toIdx := t.ColumnIndex(cols.To)
	ccIdx := t.ColumnIndex(cols.Cc)

	counts := make(map[string]int)
	for _, row := range t.Rows() {
		name := strings.TrimSpace(roster.Cell(row, teamIdx))
		if name == "" {
			continue
		}
		counts[name]++
	}

	var groups []DuplicateGroup
	emitted := make(map[string]bool)
	for _, row := range t.Rows() {
		name := strings.TrimSpace(roster.Cell(row, teamIdx))
		if name == "" || counts[name] < 2 || emitted[name] {
			continue
		}
		emitted[name] = true
		groups = append(groups, DuplicateGroup{
			Team:  name,
			To:    roster.Cell(row, toIdx),
			Cc:    roster.Cell(row, ccIdx),
			Count: counts[name],
		})
	}

	return groups, nil
}
