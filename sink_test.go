package receiptpdf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOutputName(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := OutputName(at); got != "check_20260102_030405.pdf" {
		t.Errorf("OutputName = %q", got)
	}
}

func TestNewSink_DefaultDir(t *testing.T) {
	if got := NewSink("").Dir; got != DefaultOutputDir {
		t.Errorf("Dir = %q, want %q", got, DefaultOutputDir)
	}
}

func TestSink_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")
	s := NewSink(dir)

	path, err := s.Write(testTime, NewResult([]byte("%PDF-1.4 test")))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if want := filepath.Join(dir, "check_20261017_090530.pdf"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "%PDF-1.4 test" {
		t.Errorf("file content = %q", data)
	}
}

func TestSink_WriteDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "output")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewSink(file).Write(testTime, NewResult([]byte("%PDF-")))
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("expected ErrWrite, got %v", err)
	}
}
