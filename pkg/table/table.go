// Package table provides a small column-oriented dataset with typed
// columns, an explicit missing-value marker, and delimited-text round-trip
// encoding. Tables are immutable once built; every selection returns a
// fresh table.
package table

import (
	"fmt"
	"time"
)

// Kind identifies the value type of a column.
type Kind int

const (
	Float Kind = iota
	Int
	String
	Date
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Int:
		return "int"
	case String:
		return "string"
	case Date:
		return "date"
	}
	return "unknown"
}

// dateLayout is the ISO calendar-date form used on disk.
const dateLayout = "2006-01-02"

// Column holds one named, typed sequence of cells. Exactly one backing
// slice is populated, chosen by Kind. Missing[i] true means cell i holds
// no value; the backing slice keeps a zero there but accessors never
// expose it.
type Column struct {
	Name    string
	Kind    Kind
	Floats  []float64
	Ints    []int64
	Strings []string
	Dates   []time.Time
	Missing []bool
}

// Len returns the number of cells in the column.
func (c *Column) Len() int { return len(c.Missing) }

// FloatCol builds a float column with no missing cells.
func FloatCol(name string, vals []float64) *Column {
	return &Column{Name: name, Kind: Float, Floats: vals, Missing: make([]bool, len(vals))}
}

// IntCol builds an integer column with no missing cells.
func IntCol(name string, vals []int64) *Column {
	return &Column{Name: name, Kind: Int, Ints: vals, Missing: make([]bool, len(vals))}
}

// StringCol builds a text column with no missing cells.
func StringCol(name string, vals []string) *Column {
	return &Column{Name: name, Kind: String, Strings: vals, Missing: make([]bool, len(vals))}
}

// DateCol builds a calendar-date column with no missing cells.
func DateCol(name string, vals []time.Time) *Column {
	return &Column{Name: name, Kind: Date, Dates: vals, Missing: make([]bool, len(vals))}
}

// SetMissing marks cell i as holding no value.
func (c *Column) SetMissing(i int) { c.Missing[i] = true }

// numeric reports whether the column participates in numeric aggregates.
func (c *Column) numeric() bool { return c.Kind == Float || c.Kind == Int }

// floatView returns the column's values as float64 with its missing mask.
// Int columns are widened; calling it on a non-numeric column is a
// programmer error.
func (c *Column) floatView() ([]float64, []bool) {
	switch c.Kind {
	case Float:
		return c.Floats, c.Missing
	case Int:
		out := make([]float64, len(c.Ints))
		for i, v := range c.Ints {
			out[i] = float64(v)
		}
		return out, c.Missing
	}
	panic("table: floatView on non-numeric column " + c.Name)
}

// cell formats cell i the way WriteCSV encodes it. Missing cells are the
// empty string.
func (c *Column) cell(i int) string {
	if c.Missing[i] {
		return ""
	}
	switch c.Kind {
	case Float:
		return formatFloat(c.Floats[i])
	case Int:
		return fmt.Sprintf("%d", c.Ints[i])
	case String:
		return c.Strings[i]
	case Date:
		return c.Dates[i].Format(dateLayout)
	}
	return ""
}

// take copies the cells at the given row indices into a fresh column.
func (c *Column) take(rows []int) *Column {
	out := &Column{Name: c.Name, Kind: c.Kind, Missing: make([]bool, len(rows))}
	switch c.Kind {
	case Float:
		out.Floats = make([]float64, len(rows))
		for i, r := range rows {
			out.Floats[i] = c.Floats[r]
		}
	case Int:
		out.Ints = make([]int64, len(rows))
		for i, r := range rows {
			out.Ints[i] = c.Ints[r]
		}
	case String:
		out.Strings = make([]string, len(rows))
		for i, r := range rows {
			out.Strings[i] = c.Strings[r]
		}
	case Date:
		out.Dates = make([]time.Time, len(rows))
		for i, r := range rows {
			out.Dates[i] = c.Dates[r]
		}
	}
	for i, r := range rows {
		out.Missing[i] = c.Missing[r]
	}
	return out
}

// Table is an ordered set of equal-length columns.
type Table struct {
	cols []*Column
}

// New builds a table from columns, which must all have the same length.
func New(cols ...*Column) (*Table, error) {
	if len(cols) == 0 {
		return &Table{}, nil
	}
	n := cols[0].Len()
	for _, c := range cols[1:] {
		if c.Len() != n {
			return nil, fmt.Errorf("table: column %q has %d cells, want %d", c.Name, c.Len(), n)
		}
	}
	return &Table{cols: cols}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.cols) }

// Headers returns the column names in order.
func (t *Table) Headers() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.Name
	}
	return out
}

// Col returns the named column, or nil if absent.
func (t *Table) Col(name string) *Column {
	for _, c := range t.cols {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Columns returns the columns in order. Callers must not mutate them.
func (t *Table) Columns() []*Column { return t.cols }

// Equal reports whether two tables have the same shape, headers, kinds,
// missing masks, and cell values. Dates compare by UTC calendar date.
func (t *Table) Equal(o *Table) bool {
	if t.Width() != o.Width() || t.Len() != o.Len() {
		return false
	}
	for i, a := range t.cols {
		b := o.cols[i]
		if a.Name != b.Name || a.Kind != b.Kind {
			return false
		}
		for r := 0; r < a.Len(); r++ {
			if a.Missing[r] != b.Missing[r] {
				return false
			}
			if a.Missing[r] {
				continue
			}
			switch a.Kind {
			case Float:
				if a.Floats[r] != b.Floats[r] {
					return false
				}
			case Int:
				if a.Ints[r] != b.Ints[r] {
					return false
				}
			case String:
				if a.Strings[r] != b.Strings[r] {
					return false
				}
			case Date:
				ay, am, ad := a.Dates[r].UTC().Date()
				by, bm, bd := b.Dates[r].UTC().Date()
				if ay != by || am != bm || ad != bd {
					return false
				}
			}
		}
	}
	return true
}
