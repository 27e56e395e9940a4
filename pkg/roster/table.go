package roster

// Table is a raw rectangular dataset as delivered by the tabular-source
// collaborator: the first row is headers (names, not positions), subsequent
// rows are data. Cells hold display-level strings exactly as read.
type Table [][]string

// Headers returns the header row, or nil for an empty table.
func (t Table) Headers() []string {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// Rows returns the data rows (everything after the header row).
func (t Table) Rows() [][]string {
	if len(t) < 2 {
		return nil
	}
	return t[1:]
}

// ColumnIndex locates a header by exact name match and returns its zero-based
// column index, or -1 when the header is absent.
func (t Table) ColumnIndex(header string) int {
	for i, h := range t.Headers() {
		if h == header {
			return i
		}
	}
	return -1
}

// Cell returns row[col], or "" when the row is too short. Spreadsheet reads
// routinely truncate trailing empty cells.
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
