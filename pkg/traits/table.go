package traits

// Table accumulates long-format rows across a harvest run. It is
// append-only; no deduplication happens across species. Table is not safe
// for concurrent use -- the harvest pipeline appends from a single
// collector goroutine.
type Table struct {
	rows []Row
}

// Append adds rows to the table.
func (t *Table) Append(rows ...Row) {
	t.rows = append(t.rows, rows...)
}

// Rows returns the accumulated rows in append order. The returned slice
// is the table's backing storage and must not be modified.
func (t *Table) Rows() []Row {
	return t.rows
}

// Len returns the number of accumulated rows.
func (t *Table) Len() int {
	return len(t.rows)
}
