// Package roster defines the core data model for team contact rosters:
// records keyed by normalized team name, the column-name contract binding
// logical fields to spreadsheet headers, and the extractor that builds a
// keyed dataset from a raw rectangular table.
package roster

// Field identifies a logical record field independent of header naming.
type Field string

const (
	// FieldTeam is the team name, the unique business key within a dataset.
	FieldTeam Field = "team"
	// FieldTo is the newline-delimited primary recipient list.
	FieldTo Field = "to"
	// FieldCc is the newline-delimited carbon-copy recipient list.
	FieldCc Field = "cc"
	// FieldReviewPeriod is an optional secondary attribute.
	FieldReviewPeriod Field = "review_period"
	// FieldStartTime is an optional secondary attribute.
	FieldStartTime Field = "start_time"
	// FieldEndTime is an optional secondary attribute.
	FieldEndTime Field = "end_time"
	// FieldHolidayPolicy is an optional secondary attribute.
	FieldHolidayPolicy Field = "holiday_policy"
)

// MandatoryFields returns the fields every dataset must bind headers for.
func MandatoryFields() []Field {
	return []Field{FieldTeam, FieldTo, FieldCc}
}

// OptionalFields returns the secondary attributes in their stable order.
// Datasets whose header row lacks one of these simply omit it.
func OptionalFields() []Field {
	return []Field{FieldReviewPeriod, FieldStartTime, FieldEndTime, FieldHolidayPolicy}
}

// Label returns the human-readable label used in report remarks.
func (f Field) Label() string {
	switch f {
	case FieldTeam:
		return "Team"
	case FieldTo:
		return "TO"
	case FieldCc:
		return "CC"
	case FieldReviewPeriod:
		return "Review Period"
	case FieldStartTime:
		return "Start Time"
	case FieldEndTime:
		return "End Time"
	case FieldHolidayPolicy:
		return "Holiday Policy"
	default:
		return string(f)
	}
}
