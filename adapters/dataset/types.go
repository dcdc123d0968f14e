package dataset

// Table holds tabular data read from a CSV or Excel file: a header row plus
// string-valued cells. Numeric parsing is left to the consumer.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ColumnIndex returns the index of a named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns the raw values of a named column, or nil when absent.
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			values = append(values, row[idx])
		} else {
			values = append(values, "")
		}
	}
	return values
}

// Append concatenates another table with the same header set. Rows from
// tables with mismatched headers are dropped with no error: training input
// files are best-effort merged.
func (t *Table) Append(other *Table) {
	if other == nil || len(other.Headers) != len(t.Headers) {
		return
	}
	for i, h := range t.Headers {
		if other.Headers[i] != h {
			return
		}
	}
	t.Rows = append(t.Rows, other.Rows...)
}
