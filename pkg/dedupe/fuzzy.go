package dedupe

import (
	"strconv"
	"strings"

	"github.com/opsdesk/rosterdiff/pkg/normalize"
	"github.com/opsdesk/rosterdiff/pkg/roster"
)

// MatchType classifies how a new registration's key relates to a master name.
type MatchType string

const (
	// MatchExact means key equality after normalization.
	MatchExact MatchType = "Exact"
	// MatchPartial means substring containment in either direction,
	// without equality.
	MatchPartial MatchType = "Partial"
)

// Registration is a newly proposed team entry: the raw team name plus a
// positional reference (row number) in the registration source.
type Registration struct {
	Team     string
	Position int
}

// GroupedMatch aggregates every finding for one (match type, key) pair.
// Positions collects the registration rows the key occurred on, deduplicated,
// in discovery order. Targets, TargetRows, and Keywords are parallel lists of
// the matched master names, their string-labeled registry positions, and the
// overlapping keyword per match, each target appended at most once, in
// discovery order.
type GroupedMatch struct {
	Type       MatchType
	Key        string
	Positions  []int
	Targets    []string
	TargetRows []string
	Keywords   []string
}

// match is one raw finding before aggregation.
type match struct {
	matchType MatchType
	key       string
	position  int
	target    string
	targetRow string
	keyword   string
}

// Match evaluates every new registration against every master entry and
// returns the grouped results in first-discovery order.
//
// Exact matches take precedence: when a record has any exact match, partial
// matches for that record are not considered, but every exact match is still
// aggregated. A partial match covers both containment directions; short keys
// can therefore fan out to many masters, and all of them are reported rather
// than picked between.
func Match(regs []Registration, master []roster.MasterEntry) []GroupedMatch {
	var matches []match
	for _, reg := range regs {
		key := normalize.Clean(reg.Team)
		if key == "" {
			continue
		}
		matches = append(matches, evaluate(key, reg.Position, master)...)
	}
	return fold(matches)
}

// evaluate finds every master entry matching one registration key.
func evaluate(key string, position int, master []roster.MasterEntry) []match {
	var exact, partial []match
	for _, entry := range master {
		name := normalize.Clean(entry.Name)
		switch {
		case name == key:
			exact = append(exact, match{
				matchType: MatchExact,
				key:       key,
				position:  position,
				target:    entry.Name,
				targetRow: strconv.Itoa(entry.Row),
				keyword:   key,
			})
		case name != "" && (strings.Contains(key, name) || strings.Contains(name, key)):
			partial = append(partial, match{
				matchType: MatchPartial,
				key:       key,
				position:  position,
				target:    entry.Name,
				targetRow: strconv.Itoa(entry.Row),
				keyword:   shorter(key, name),
			})
		}
	}

	if len(exact) > 0 {
		return exact
	}
	return partial
}

// fold reduces raw matches into grouped results: a pure fold over the match
// sequence, grouping by (match type, key), starting from an empty grouping.
func fold(matches []match) []GroupedMatch {
	type groupKey struct {
		matchType MatchType
		key       string
	}

	var order []groupKey
	groups := make(map[groupKey]*GroupedMatch)

	for _, m := range matches {
		gk := groupKey{m.matchType, m.key}
		g, ok := groups[gk]
		if !ok {
			g = &GroupedMatch{Type: m.matchType, Key: m.key}
			groups[gk] = g
			order = append(order, gk)
		}

		if !containsInt(g.Positions, m.position) {
			g.Positions = append(g.Positions, m.position)
		}
		if !containsString(g.Targets, m.target) {
			g.Targets = append(g.Targets, m.target)
			g.TargetRows = append(g.TargetRows, m.targetRow)
			g.Keywords = append(g.Keywords, m.keyword)
		}
	}

	result := make([]GroupedMatch, 0, len(order))
	for _, gk := range order {
		result = append(result, *groups[gk])
	}
	return result
}

// shorter returns the contained string of a partial match.
func shorter(a, b string) string {
	if len(a) <= len(b) {
		return a
	}
	return b
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func containsString(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
