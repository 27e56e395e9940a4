package roster

import (
	"github.com/opsdesk/rosterdiff/pkg/errors"
	"github.com/opsdesk/rosterdiff/pkg/normalize"
)

// Extract converts a raw table into a keyed dataset using the given column
// contract. Mandatory headers (team, to, cc) are located by exact name match;
// a missing one aborts with a *errors.MissingColumnError. Optional fields
// whose header is absent are omitted from every record.
//
// Rows with a blank team-name cell are skipped. The team name is normalized
// to form the map key; to/cc and optional values are normalized as field
// values, and the record notes which of to/cc had their whitespace-insensitive
// content altered by normalization. Duplicate keys within one extraction
// resolve last-row-wins; duplicates are a reportable condition detected by
// the dedupe package, not an error here.
func Extract(t Table, cols Columns) (*Dataset, error) {
	idx := map[Field]int{}
	for _, f := range MandatoryFields() {
		header := cols.Header(f)
		i := t.ColumnIndex(header)
		if i < 0 {
			return nil, errors.NewMissingColumnError(header, string(f), t.Headers())
		}
		idx[f] = i
	}

	optIdx := map[Field]int{}
	for _, f := range OptionalFields() {
		header := cols.Header(f)
		if header == "" {
			continue
		}
		if i := t.ColumnIndex(header); i >= 0 {
			optIdx[f] = i
		}
	}

	d := NewDataset()
	for _, row := range t.Rows() {
		key := normalize.Clean(Cell(row, idx[FieldTeam]))
		if key == "" {
			continue
		}

		rawTo := Cell(row, idx[FieldTo])
		rawCc := Cell(row, idx[FieldCc])

		rec := Record{
			Team: key,
			To:   normalize.Clean(rawTo),
			Cc:   normalize.Clean(rawCc),
		}

		if normalize.Changed(rawTo) {
			rec.Cleaned = append(rec.Cleaned, FieldTo)
		}
		if normalize.Changed(rawCc) {
			rec.Cleaned = append(rec.Cleaned, FieldCc)
		}

		if len(optIdx) > 0 {
			rec.Optional = make(map[Field]string, len(optIdx))
			for f, i := range optIdx {
				rec.Optional[f] = normalize.Clean(Cell(row, i))
			}
		}

		d.Set(key, rec)
	}

	return d, nil
}
