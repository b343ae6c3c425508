// Package runner holds the catalog of named demonstration examples and
// runs them strictly sequentially with per-example failure isolation: one
// example failing, or panicking, never prevents the rest from running.
package runner

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"
)

// Example is one registered demonstration: a flat sequence that builds a
// small dataset, optionally round-trips it through a file, computes a
// derived value, and prints labeled results.
type Example struct {
	Name  string
	Group string
	Title string
	Run   func(*Context) error
}

// Context carries the per-run environment into an example.
type Context struct {
	Out       io.Writer
	Dir       string // working directory for the example's files
	Plots     bool   // whether figure examples should render
	Delimiter rune   // default field delimiter for delimited-text files
	Log       *slog.Logger
}

// Delim returns the configured delimiter, defaulting to a comma.
func (c *Context) Delim() rune {
	if c.Delimiter == 0 {
		return ','
	}
	return c.Delimiter
}

// Printf writes formatted text on the example's output.
func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

// Result prints one labeled result line.
func (c *Context) Result(label string, v any) {
	fmt.Fprintf(c.Out, "%s -> %v\n", label, v)
}

var registry []Example

// Register adds an example to the catalog. Duplicate names are programmer
// error and panic at init time.
func Register(ex Example) {
	for _, e := range registry {
		if e.Name == ex.Name {
			panic("runner: duplicate example " + ex.Name)
		}
	}
	registry = append(registry, ex)
}

// All returns the catalog sorted by group then name.
func All() []Example {
	out := make([]Example, len(registry))
	copy(out, registry)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Find resolves names against the catalog, accepting either example names
// or group names.
func Find(names ...string) ([]Example, error) {
	var out []Example
	for _, name := range names {
		matched := false
		for _, ex := range All() {
			if ex.Name == name || ex.Group == name {
				out = append(out, ex)
				matched = true
			}
		}
		if !matched {
			return nil, fmt.Errorf("runner: no example or group %q", name)
		}
	}
	return out, nil
}

// Outcome records how one example finished.
type Outcome struct {
	Name    string
	Err     error
	Elapsed time.Duration
}

// Run executes the examples in order. Panics inside an example become
// errors in its outcome; every example runs regardless of earlier
// failures.
func Run(ctx *Context, examples []Example) []Outcome {
	outcomes := make([]Outcome, 0, len(examples))
	for _, ex := range examples {
		ctx.Log.Debug("running example", "name", ex.Name, "group", ex.Group)
		start := time.Now()
		err := runOne(ctx, ex)
		elapsed := time.Since(start)
		if err != nil {
			ctx.Log.Error("example failed", "name", ex.Name, "err", err)
		}
		outcomes = append(outcomes, Outcome{Name: ex.Name, Err: err, Elapsed: elapsed})
	}
	return outcomes
}

func runOne(ctx *Context, ex Example) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("example %s panicked: %v", ex.Name, r)
		}
	}()
	fmt.Fprintf(ctx.Out, "=== %s: %s ===\n", ex.Name, ex.Title)
	return ex.Run(ctx)
}
