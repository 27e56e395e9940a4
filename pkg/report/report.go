// Package report renders analysis results into the flat row shapes the
// report sink consumes. The core returns rows as ordered sequences of
// fields; writing them to a sheet, file, or table is the caller's job.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opsdesk/rosterdiff/pkg/dedupe"
	"github.com/opsdesk/rosterdiff/pkg/differ"
	"github.com/opsdesk/rosterdiff/pkg/validate"
)

// Row is one report row: an ordered sequence of string fields.
type Row []string

// Separator joins multi-valued cells.
const Separator = " / "

// Tags for data-quality findings.
const (
	// TagDuplicate marks a within-set duplicate row.
	TagDuplicate = "Duplicate"
	// TagMismatch marks a failed email validation row.
	TagMismatch = "Mismatch"
)

// ReconciliationHeader is the header row of the combined reconciliation
// report (validation findings, duplicate findings, and diff changes share
// this shape).
func ReconciliationHeader() Row {
	return Row{"Team", "TO", "CC", "Kind", "Remarks"}
}

// DuplicateCheckHeader is the header row of the fuzzy duplicate report.
func DuplicateCheckHeader() Row {
	return Row{"Match", "Team", "Rows", "Matched Teams", "Master Rows", "Keywords"}
}

// Join renders a multi-valued cell, preserving order.
func Join(values []string) string {
	return strings.Join(values, Separator)
}

// JoinInts renders integer positions as a multi-valued cell.
func JoinInts(values []int) string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.Itoa(v)
	}
	return Join(strs)
}

// OccurrenceRemark renders a duplicate occurrence count.
func OccurrenceRemark(count int) string {
	return fmt.Sprintf("%d回出現", count)
}

// FromChangeset renders diff changes as reconciliation report rows.
func FromChangeset(cs *differ.Changeset) []Row {
	rows := make([]Row, 0, len(cs.Changes))
	for _, ch := range cs.Changes {
		rows = append(rows, Row{ch.Key, ch.To, ch.Cc, string(ch.Kind), ch.Remarks})
	}
	return rows
}

// FromMismatches renders email validation findings as reconciliation
// report rows, the remark naming which of the recipient fields failed.
func FromMismatches(findings []validate.Finding) []Row {
	rows := make([]Row, 0, len(findings))
	for _, f := range findings {
		labels := make([]string, 0, len(f.Fields))
		for _, field := range f.Fields {
			labels = append(labels, field.Label())
		}
		rows = append(rows, Row{f.Key, f.To, f.Cc, TagMismatch, Join(labels)})
	}
	return rows
}

// FromDuplicates renders within-set duplicate groups as reconciliation
// report rows.
func FromDuplicates(groups []dedupe.DuplicateGroup) []Row {
	rows := make([]Row, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, Row{g.Team, g.To, g.Cc, TagDuplicate, OccurrenceRemark(g.Count)})
	}
	return rows
}

// FromMatches renders grouped fuzzy matches as duplicate report rows.
func FromMatches(groups []dedupe.GroupedMatch) []Row {
	rows := make([]Row, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, Row{
			string(g.Type),
			g.Key,
			JoinInts(g.Positions),
			Join(g.Targets),
			Join(g.TargetRows),
			Join(g.Keywords),
		})
	}
	return rows
}

// Concat concatenates report row slices in order into one report.
func Concat(parts ...[]Row) []Row {
	var rows []Row
	for _, part := range parts {
		rows = append(rows, part...)
	}
	return rows
}
