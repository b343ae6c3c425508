package table

import "fmt"

// How selects the row-dropping rule for DropMissing.
type How int

const (
	// Any drops a row when any cell in it is missing.
	Any How = iota
	// All drops a row only when every cell in it is missing.
	All
)

// Filter returns the rows for which keep reports true. The predicate
// receives the 0-based row index.
func (t *Table) Filter(keep func(row int) bool) *Table {
	var rows []int
	for r := 0; r < t.Len(); r++ {
		if keep(r) {
			rows = append(rows, r)
		}
	}
	return t.takeRows(rows)
}

// Select projects the named columns, in the order given.
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([]*Column, 0, len(names))
	for _, name := range names {
		c := t.Col(name)
		if c == nil {
			return nil, fmt.Errorf("table: no column %q", name)
		}
		cols = append(cols, c.take(allRows(t.Len())))
	}
	return New(cols...)
}

// Slice returns rows [r0,r1) of columns [c0,c1), by position.
func (t *Table) Slice(r0, r1, c0, c1 int) (*Table, error) {
	if r0 < 0 || r1 > t.Len() || r0 > r1 {
		return nil, fmt.Errorf("table: row slice [%d:%d) out of range for %d rows", r0, r1, t.Len())
	}
	if c0 < 0 || c1 > t.Width() || c0 > c1 {
		return nil, fmt.Errorf("table: column slice [%d:%d) out of range for %d columns", c0, c1, t.Width())
	}
	rows := make([]int, 0, r1-r0)
	for r := r0; r < r1; r++ {
		rows = append(rows, r)
	}
	cols := make([]*Column, 0, c1-c0)
	for _, c := range t.cols[c0:c1] {
		cols = append(cols, c.take(rows))
	}
	return New(cols...)
}

// Head returns the first n rows (all rows when n exceeds the length).
func (t *Table) Head(n int) *Table {
	if n > t.Len() {
		n = t.Len()
	}
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return t.takeRows(rows)
}

// DropMissing removes rows according to how: Any drops rows with at least
// one missing cell, All drops rows that are missing across every column.
func (t *Table) DropMissing(how How) *Table {
	return t.Filter(func(r int) bool {
		missing := 0
		for _, c := range t.cols {
			if c.Missing[r] {
				missing++
			}
		}
		if how == Any {
			return missing == 0
		}
		return missing < len(t.cols)
	})
}

func (t *Table) takeRows(rows []int) *Table {
	cols := make([]*Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c.take(rows)
	}
	out, _ := New(cols...)
	return out
}

func allRows(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return rows
}
