package table

import (
	"math"
	"strings"
	"testing"
)

func TestGroupMean(t *testing.T) {
	tbl, err := New(
		StringCol("key", []string{"A", "A", "B", "B"}),
		FloatCol("v", []float64{10, 20, 30, 40}),
	)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	g, err := tbl.GroupMean("key")
	if err != nil {
		t.Fatalf("group: %v", err)
	}
	keys := g.Col("key").Strings
	means := g.Col("v").Floats
	if len(keys) != 2 || keys[0] != "A" || keys[1] != "B" {
		t.Fatalf("group keys %v, want [A B] in first-seen order", keys)
	}
	if means[0] != 15 || means[1] != 35 {
		t.Errorf("group means %v, want [15 35]", means)
	}
}

func TestGroupMeanExcludesMissingAndStrings(t *testing.T) {
	v := FloatCol("v", []float64{10, 0, 30})
	v.SetMissing(1)
	tbl, err := New(
		StringCol("key", []string{"A", "A", "B"}),
		v,
		StringCol("label", []string{"x", "y", "z"}),
	)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	g, err := tbl.GroupMean("key")
	if err != nil {
		t.Fatalf("group: %v", err)
	}
	if g.Col("label") != nil {
		t.Errorf("non-numeric column survived grouping")
	}
	// The missing cell is excluded, not treated as zero.
	if got := g.Col("v").Floats[0]; got != 10 {
		t.Errorf("group A mean = %v, want 10", got)
	}
}

func TestDescribe(t *testing.T) {
	d, err := demoTable(t).Describe()
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	stats := d.Col("stat").Strings
	if stats[0] != "count" || stats[len(stats)-1] != "max" {
		t.Fatalf("stat labels %v", stats)
	}
	// price has one missing cell out of four.
	if got := d.Col("price").Floats[0]; got != 3 {
		t.Errorf("price count = %v, want 3", got)
	}
	if got := d.Col("value").Floats[1]; got != 25 {
		t.Errorf("value mean = %v, want 25", got)
	}
}

func TestCorrSkipsNonNumeric(t *testing.T) {
	c, err := demoTable(t).Corr()
	if err != nil {
		t.Fatalf("corr: %v", err)
	}
	for _, name := range c.Headers()[1:] {
		if name == "name" || name == "col" || name == "date" {
			t.Errorf("non-numeric column %q in correlation matrix", name)
		}
	}
	// Diagonal entries are exactly one.
	names := c.Col("").Strings
	for i, name := range names {
		if got := c.Col(name).Floats[i]; math.Abs(got-1) > 1e-12 {
			t.Errorf("corr(%s,%s) = %v, want 1", name, name, got)
		}
	}
}

func TestInfoListsColumns(t *testing.T) {
	var sb strings.Builder
	demoTable(t).Info(&sb)
	out := sb.String()
	if !strings.Contains(out, "4 rows x 6 columns") {
		t.Errorf("info missing shape line: %q", out)
	}
	if !strings.Contains(out, "price") || !strings.Contains(out, "3 non-missing") {
		t.Errorf("info missing per-column counts: %q", out)
	}
}
