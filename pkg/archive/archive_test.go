package archive

import (
	"archive/zip"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.zip")
	arrays := map[string][]float64{
		"name1": {0, 1, 2, 3, 4},
		"name2": {0, 0.5, 1},
	}
	if err := Save(path, arrays); err != nil {
		t.Fatalf("save: %v", err)
	}
	a, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := a.Names(); !reflect.DeepEqual(got, []string{"name1", "name2"}) {
		t.Errorf("names = %v, want sorted [name1 name2]", got)
	}
	for name, want := range arrays {
		got, err := a.Get(name)
		if err != nil {
			t.Fatalf("get %s: %v", name, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
}

func TestGetUnknownName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.zip")
	if err := Save(path, map[string][]float64{"a": {1}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	a, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := a.Get("nope"); !errors.Is(err, ErrNameNotFound) {
		t.Errorf("got %v, want ErrNameNotFound", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.zip")); err == nil {
		t.Errorf("loading a missing file did not fail")
	}
}

func TestLoadCorruptEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("bad.f64")
	if err != nil {
		t.Fatalf("entry: %v", err)
	}
	// Header claims five values, payload holds one.
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf, 5)
	if _, err := w.Write(buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Errorf("corrupt entry loaded without error")
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.zip")
	if err := Save(path, map[string][]float64{"a": {1, 2}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := Save(path, map[string][]float64{"b": {3}}); err != nil {
		t.Fatalf("save again: %v", err)
	}
	a, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := a.Names(); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("names = %v, want [b] only", got)
	}
}
