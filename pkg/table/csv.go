package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Format describes the delimited-text encoding of a table: field
// delimiter, header presence, and the kind of each column. Names is used
// when the file carries no header row.
type Format struct {
	Delimiter rune
	Header    bool
	Kinds     []Kind
	Names     []string
}

// RowError reports a malformed row in a delimited file. Row is the
// 1-based data row index (the header row does not count).
type RowError struct {
	Row int
	Col string
	Err error
}

func (e *RowError) Error() string {
	if e.Col != "" {
		return fmt.Sprintf("row %d, column %q: %v", e.Row, e.Col, e.Err)
	}
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// missingCell reports whether a raw field denotes a missing value for the
// given column kind. Text columns keep empty strings as values.
func missingCell(s string, k Kind) bool {
	if k == String {
		return false
	}
	if s == "" {
		return true
	}
	if k == Float && (s == "NA" || s == "NaN") {
		return true
	}
	return false
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ReadCSV decodes a delimited table from r. Blank fields in numeric and
// date columns become missing markers. Any malformed row aborts the read;
// no partial table is returned.
func ReadCSV(r io.Reader, f Format) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = f.Delimiter
	cr.FieldsPerRecord = -1

	names := f.Names
	if f.Header {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil, fmt.Errorf("read table: missing header row")
		}
		if err != nil {
			return nil, fmt.Errorf("read table header: %w", err)
		}
		names = rec
	}
	if len(names) != len(f.Kinds) {
		return nil, fmt.Errorf("read table: %d columns, format names %d kinds", len(names), len(f.Kinds))
	}

	cols := make([]*Column, len(f.Kinds))
	for i, k := range f.Kinds {
		cols[i] = &Column{Name: names[i], Kind: k}
	}

	row := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, &RowError{Row: row, Err: err}
		}
		if len(rec) != len(cols) {
			return nil, &RowError{Row: row, Err: fmt.Errorf("have %d fields, want %d", len(rec), len(cols))}
		}
		for i, field := range rec {
			c := cols[i]
			if missingCell(field, c.Kind) {
				appendZero(c)
				c.Missing[len(c.Missing)-1] = true
				continue
			}
			if err := appendCell(c, field); err != nil {
				return nil, &RowError{Row: row, Col: c.Name, Err: err}
			}
		}
	}
	return New(cols...)
}

func appendZero(c *Column) {
	switch c.Kind {
	case Float:
		c.Floats = append(c.Floats, 0)
	case Int:
		c.Ints = append(c.Ints, 0)
	case String:
		c.Strings = append(c.Strings, "")
	case Date:
		c.Dates = append(c.Dates, time.Time{})
	}
	c.Missing = append(c.Missing, false)
}

func appendCell(c *Column, field string) error {
	switch c.Kind {
	case Float:
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fmt.Errorf("parse float %q", field)
		}
		c.Floats = append(c.Floats, v)
	case Int:
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return fmt.Errorf("parse int %q", field)
		}
		c.Ints = append(c.Ints, v)
	case String:
		c.Strings = append(c.Strings, field)
	case Date:
		v, err := time.ParseInLocation(dateLayout, field, time.UTC)
		if err != nil {
			return fmt.Errorf("parse date %q", field)
		}
		c.Dates = append(c.Dates, v)
	}
	c.Missing = append(c.Missing, false)
	return nil
}

// ReadCSVFile decodes a delimited table from a file on disk.
func ReadCSVFile(path string, f Format) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer file.Close()
	return ReadCSV(file, f)
}

// WriteCSV encodes t using the format's delimiter and header setting.
// Missing cells encode as empty fields; dates encode in ISO form.
func WriteCSV(w io.Writer, t *Table, f Format) error {
	cw := csv.NewWriter(w)
	cw.Comma = f.Delimiter
	if f.Header {
		if err := cw.Write(t.Headers()); err != nil {
			return fmt.Errorf("write table header: %w", err)
		}
	}
	rec := make([]string, t.Width())
	for r := 0; r < t.Len(); r++ {
		for i, c := range t.cols {
			rec[i] = c.cell(r)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write table row %d: %w", r+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile encodes t to a file, replacing any previous contents.
func WriteCSVFile(path string, t *Table, f Format) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create table file: %w", err)
	}
	if err := WriteCSV(file, t, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
