package differ

import (
	"fmt"
	"strings"

	"github.com/opsdesk/rosterdiff/pkg/roster"
)

// remarkSeparator joins multiple remark fragments in one change record.
const remarkSeparator = " / "

// Differ handles change detection between roster datasets.
type Differ interface {
	// Datasets compares a current dataset against its baseline snapshot
	// and returns the resulting changeset.
	Datasets(current, baseline *roster.Dataset) *Changeset
}

// differ is the default implementation of Differ.
type differ struct {
	ignoreFields       map[roster.Field]bool
	withdrawnAsDeleted bool
}

// New creates a new Differ with default settings.
func New(opts ...Option) Differ {
	d := &differ{
		ignoreFields:       make(map[roster.Field]bool),
		withdrawnAsDeleted: true,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Datasets compares current against baseline field by field. Every key in
// current ∪ baseline is visited exactly once: first the current-driven pass
// classifies keys as Created or Updated/Deleted, then the baseline-only pass
// emits a Deleted record for each vanished key. Keys with no field
// differences produce no change record.
func (diff *differ) Datasets(current, baseline *roster.Dataset) *Changeset {
	var changes []Change

	for _, key := range current.Keys() {
		rec, _ := current.Get(key)

		base, exists := baseline.Get(key)
		if !exists {
			changes = append(changes, Change{
				Key:     key,
				To:      rec.To,
				Cc:      rec.Cc,
				Kind:    ChangeKindCreated,
				Remarks: cleanedRemark(rec),
			})
			continue
		}

		if change := diff.record(key, rec, base); change != nil {
			changes = append(changes, *change)
		}
	}

	for _, key := range baseline.Keys() {
		if !current.Has(key) {
			changes = append(changes, Change{
				Key:  key,
				Kind: ChangeKindDeleted,
			})
		}
	}

	return &Changeset{
		Changes: changes,
		Summary: calculateSummary(changes),
	}
}

// record compares one key present in both datasets and returns its change
// record, or nil when no compared field differs.
func (diff *differ) record(key string, rec, base roster.Record) *Change {
	recipientsChanged := false
	if !diff.ignoreFields[roster.FieldTo] && rec.To != base.To {
		recipientsChanged = true
	}
	if !diff.ignoreFields[roster.FieldCc] && rec.Cc != base.Cc {
		recipientsChanged = true
	}

	var remarks []string
	for _, f := range roster.OptionalFields() {
		if diff.ignoreFields[f] {
			continue
		}
		if rec.Value(f) != base.Value(f) {
			remarks = append(remarks, fmt.Sprintf("field: %s", f.Label()))
		}
	}

	if !recipientsChanged && len(remarks) == 0 {
		return nil
	}

	// A record whose recipient lists are now both empty with no secondary
	// attribute changed is read as "recipient info withdrawn" and reported
	// as Deleted. WithWithdrawnAsDeleted(false) turns this off.
	kind := ChangeKindUpdated
	if diff.withdrawnAsDeleted && rec.To == "" && rec.Cc == "" && len(remarks) == 0 {
		kind = ChangeKindDeleted
	}

	return &Change{
		Key:     key,
		To:      rec.To,
		Cc:      rec.Cc,
		Kind:    kind,
		Remarks: strings.Join(remarks, remarkSeparator),
	}
}

// cleanedRemark summarizes the auto-cleaned recipient fields of a newly
// created record.
func cleanedRemark(rec roster.Record) string {
	if len(rec.Cleaned) == 0 {
		return ""
	}

	labels := make([]string, 0, len(rec.Cleaned))
	for _, f := range rec.Cleaned {
		labels = append(labels, f.Label())
	}
	return fmt.Sprintf("auto-cleaned: %s", strings.Join(labels, remarkSeparator))
}
