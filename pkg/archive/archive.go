// Package archive stores several independently named float64 sequences in
// a single file and retrieves them by name. The container is a zip file
// with one entry per array: a little-endian count followed by the raw
// IEEE-754 values, so round-trips are bit exact.
package archive

import (
	"archive/zip"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
)

// ErrNameNotFound reports a lookup for an array the archive does not hold.
var ErrNameNotFound = errors.New("array name not found")

const entrySuffix = ".f64"

// Save writes the named arrays to path, replacing any existing file.
func Save(path string, arrays map[string][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	zw := zip.NewWriter(f)

	names := make([]string, 0, len(arrays))
	for name := range arrays {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		w, err := zw.Create(name + entrySuffix)
		if err != nil {
			f.Close()
			return fmt.Errorf("archive entry %q: %w", name, err)
		}
		if err := writeArray(w, arrays[name]); err != nil {
			f.Close()
			return fmt.Errorf("archive entry %q: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finish archive: %w", err)
	}
	return f.Close()
}

func writeArray(w io.Writer, vals []float64) error {
	buf := make([]byte, 8+8*len(vals))
	binary.LittleEndian.PutUint64(buf, uint64(len(vals)))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[8+8*i:], math.Float64bits(v))
	}
	_, err := w.Write(buf)
	return err
}

// Archive holds the arrays loaded from one file.
type Archive struct {
	arrays map[string][]float64
}

// Load reads every array in the file at path.
func Load(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer zr.Close()

	a := &Archive{arrays: make(map[string][]float64)}
	for _, entry := range zr.File {
		name := strings.TrimSuffix(entry.Name, entrySuffix)
		vals, err := readEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("archive entry %q: %w", name, err)
		}
		a.arrays[name] = vals
	}
	return a, nil
}

func readEntry(entry *zip.File) ([]float64, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	if len(raw) < 8 {
		return nil, errors.New("truncated header")
	}
	n := binary.LittleEndian.Uint64(raw)
	if uint64(len(raw)-8) != 8*n {
		return nil, fmt.Errorf("payload holds %d bytes, header claims %d values", len(raw)-8, n)
	}
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[8+8*i:]))
	}
	return vals, nil
}

// Names returns the sorted directory of arrays in the archive.
func (a *Archive) Names() []string {
	names := make([]string, 0, len(a.arrays))
	for name := range a.arrays {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named array.
func (a *Archive) Get(name string) ([]float64, error) {
	vals, ok := a.arrays[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNameNotFound)
	}
	return vals, nil
}
