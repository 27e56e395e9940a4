package roster

// Record is a single roster entry. Team holds the normalized key; To and Cc
// carry the normalized recipient lists; Optional carries whichever secondary
// attributes the source headers bound. Cleaned lists the recipient fields
// whose content (ignoring whitespace) was altered by normalization during
// extraction, for downstream remark generation.
type Record struct {
	Team     string           `yaml:"team"`
	To       string           `yaml:"to"`
	Cc       string           `yaml:"cc"`
	Optional map[Field]string `yaml:"optional,omitempty"`
	Cleaned  []Field          `yaml:"cleaned,omitempty"`
}

// Value returns the record's value for a logical field. Optional fields the
// dataset never bound come back as the empty string.
func (r Record) Value(f Field) string {
	switch f {
	case FieldTeam:
		return r.Team
	case FieldTo:
		return r.To
	case FieldCc:
		return r.Cc
	default:
		return r.Optional[f]
	}
}

// WasCleaned reports whether normalization altered the given field's content
// during extraction.
func (r Record) WasCleaned(f Field) bool {
	for _, c := range r.Cleaned {
		if c == f {
			return true
		}
	}
	return false
}
