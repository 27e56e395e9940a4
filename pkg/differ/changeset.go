// Package differ compares a current roster dataset against its baseline
// snapshot and classifies every key as created, updated, or deleted.
package differ

import (
	"fmt"
	"strings"
)

// ChangeKind classifies a change record.
type ChangeKind string

const (
	// ChangeKindCreated indicates a key present only in the current dataset.
	ChangeKindCreated ChangeKind = "Created"
	// ChangeKindUpdated indicates a key whose fields differ from the baseline.
	ChangeKindUpdated ChangeKind = "Updated"
	// ChangeKindDeleted indicates a key absent from the current dataset, or
	// one whose recipient lists were both withdrawn.
	ChangeKindDeleted ChangeKind = "Deleted"
)

// Change is one change record: the key, its current recipient lists, the
// classification, and free-text remarks describing which fields changed.
// Changes are computed fresh on every diff and never persisted by this
// package.
type Change struct {
	Key     string
	To      string
	Cc      string
	Kind    ChangeKind
	Remarks string
}

// Changeset holds every change between two datasets, in the order the
// diff discovered them: current-driven changes first, then baseline-only
// deletions.
type Changeset struct {
	Changes []Change
	Summary Summary
}

// Summary provides counts per change kind.
type Summary struct {
	Created int
	Updated int
	Deleted int
	Total   int
}

// HasChanges returns true if the changeset contains any changes.
func (c *Changeset) HasChanges() bool {
	return c.Summary.Total > 0
}

// IsEmpty returns true if the changeset contains no changes.
func (c *Changeset) IsEmpty() bool {
	return c.Summary.Total == 0
}

// String returns a human-readable summary of the changeset.
func (c *Changeset) String() string {
	if c.IsEmpty() {
		return "No changes detected"
	}

	var parts []string
	if c.Summary.Created > 0 {
		parts = append(parts, fmt.Sprintf("%d created", c.Summary.Created))
	}
	if c.Summary.Updated > 0 {
		parts = append(parts, fmt.Sprintf("%d updated", c.Summary.Updated))
	}
	if c.Summary.Deleted > 0 {
		parts = append(parts, fmt.Sprintf("%d deleted", c.Summary.Deleted))
	}

	return fmt.Sprintf("Changeset: %s (Total: %d changes)", strings.Join(parts, ", "), c.Summary.Total)
}

// calculateSummary computes the summary for a list of changes.
func calculateSummary(changes []Change) Summary {
	s := Summary{}
	for _, ch := range changes {
		switch ch.Kind {
		case ChangeKindCreated:
			s.Created++
		case ChangeKindUpdated:
			s.Updated++
		case ChangeKindDeleted:
			s.Deleted++
		}
	}
	s.Total = len(changes)
	return s
}
