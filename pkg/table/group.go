package table

import (
	"errors"
	"fmt"
	"io"

	"numlab/pkg/stats"
)

// GroupMean partitions rows by the named key column and returns one row
// per group with the mean of every numeric column. Non-numeric value
// columns are skipped; missing cells are excluded from each mean, and a
// group with no valid values in a column gets a missing marker there.
// Groups appear in order of first occurrence.
func (t *Table) GroupMean(key string) (*Table, error) {
	kc := t.Col(key)
	if kc == nil {
		return nil, fmt.Errorf("table: no column %q", key)
	}

	var order []string
	groups := make(map[string][]int)
	for r := 0; r < t.Len(); r++ {
		k := kc.cell(r)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}

	out := []*Column{StringCol(key, order)}
	for _, c := range t.cols {
		if c.Name == key || !c.numeric() {
			continue
		}
		vals, miss := c.floatView()
		mc := &Column{Name: c.Name, Kind: Float, Floats: make([]float64, len(order)), Missing: make([]bool, len(order))}
		for gi, k := range order {
			var gv []float64
			for _, r := range groups[k] {
				if !miss[r] {
					gv = append(gv, vals[r])
				}
			}
			m, err := stats.Mean(gv, nil)
			if errors.Is(err, stats.ErrInsufficientData) {
				mc.Missing[gi] = true
				continue
			}
			mc.Floats[gi] = m
		}
		out = append(out, mc)
	}
	return New(out...)
}

// Corr returns the pairwise Pearson correlation matrix over the table's
// numeric columns, as a table with a leading name column. Rows where
// either column is missing are excluded pairwise. A pair with fewer than
// two surviving observations gets a missing marker.
func (t *Table) Corr() (*Table, error) {
	var num []*Column
	for _, c := range t.cols {
		if c.numeric() {
			num = append(num, c)
		}
	}
	if len(num) == 0 {
		return nil, errors.New("table: no numeric columns")
	}

	names := make([]string, len(num))
	for i, c := range num {
		names[i] = c.Name
	}
	out := []*Column{StringCol("", names)}
	for _, cj := range num {
		xj, mj := cj.floatView()
		col := &Column{Name: cj.Name, Kind: Float, Floats: make([]float64, len(num)), Missing: make([]bool, len(num))}
		for i, ci := range num {
			xi, mi := ci.floatView()
			pairMiss := make([]bool, len(xi))
			for r := range pairMiss {
				pairMiss[r] = mi[r] || mj[r]
			}
			r, err := stats.Correlation(xi, xj, pairMiss)
			if err != nil {
				col.Missing[i] = true
				continue
			}
			col.Floats[i] = r
		}
		out = append(out, col)
	}
	return New(out...)
}

// Describe summarizes every numeric column: count, mean, std, min, max.
// Missing cells are excluded throughout. The result has a leading "stat"
// column naming each summary row.
func (t *Table) Describe() (*Table, error) {
	var num []*Column
	for _, c := range t.cols {
		if c.numeric() {
			num = append(num, c)
		}
	}
	if len(num) == 0 {
		return nil, errors.New("table: no numeric columns")
	}

	labels := []string{"count", "mean", "std", "min", "max"}
	out := []*Column{StringCol("stat", labels)}
	for _, c := range num {
		vals, miss := c.floatView()
		col := &Column{Name: c.Name, Kind: Float, Floats: make([]float64, len(labels)), Missing: make([]bool, len(labels))}
		col.Floats[0] = float64(stats.Count(vals, miss))
		for i, f := range []func([]float64, []bool) (float64, error){stats.Mean, stats.Std, stats.Min, stats.Max} {
			v, err := f(vals, miss)
			if err != nil {
				col.Missing[i+1] = true
				continue
			}
			col.Floats[i+1] = v
		}
		out = append(out, col)
	}
	return New(out...)
}

// Info writes a per-column summary: kind and non-missing count, pandas
// info style.
func (t *Table) Info(w io.Writer) {
	fmt.Fprintf(w, "%d rows x %d columns\n", t.Len(), t.Width())
	for _, c := range t.cols {
		valid := 0
		for _, m := range c.Missing {
			if !m {
				valid++
			}
		}
		fmt.Fprintf(w, "  %-10s %-7s %d non-missing\n", c.Name, c.Kind, valid)
	}
}

// Print writes the table as aligned columns with a header line.
func (t *Table) Print(w io.Writer) {
	for _, name := range t.Headers() {
		fmt.Fprintf(w, "%-12s", name)
	}
	fmt.Fprintln(w)
	for r := 0; r < t.Len(); r++ {
		for _, c := range t.cols {
			fmt.Fprintf(w, "%-12s", c.cell(r))
		}
		fmt.Fprintln(w)
	}
}
