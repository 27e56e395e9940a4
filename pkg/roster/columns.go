package roster

// Columns is the column-name contract: a fixed mapping of logical field to
// the exact header string carried by the tabular source. The caller
// configures it once; extraction never infers field meaning beyond literal
// name matching.
type Columns struct {
	// Team is the header of the team-name column. Mandatory.
	Team string
	// To is the header of the primary recipient column. Mandatory.
	To string
	// Cc is the header of the carbon-copy column. Mandatory.
	Cc string
	// Optional maps each optional field to its header. Fields absent from
	// this map, or whose header is absent from the table, are omitted from
	// every extracted record.
	Optional map[Field]string
}

// DefaultColumns returns the header bindings the source sheets ship with.
func DefaultColumns() Columns {
	return Columns{
		Team: "チーム名",
		To:   "TO",
		Cc:   "CC",
		Optional: map[Field]string{
			FieldReviewPeriod:  "レビュー期間",
			FieldStartTime:     "開始時刻",
			FieldEndTime:       "終了時刻",
			FieldHolidayPolicy: "休日対応",
		},
	}
}

// Header returns the configured header for a logical field, or "" when the
// field has no binding.
func (c Columns) Header(f Field) string {
	switch f {
	case FieldTeam:
		return c.Team
	case FieldTo:
		return c.To
	case FieldCc:
		return c.Cc
	default:
		return c.Optional[f]
	}
}
