package receiptpdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultOutputDir is the directory receipts are written to.
const DefaultOutputDir = "output"

// OutputName derives the file name of a receipt generated at at. Names sort
// chronologically; two receipts generated within the same second collide.
func OutputName(at time.Time) string {
	return "check_" + at.Format("20060102_150405") + ".pdf"
}

// Sink writes rendered receipts into a directory.
type Sink struct {
	Dir string
}

// NewSink returns a Sink writing into dir, or [DefaultOutputDir] when dir
// is empty.
func NewSink(dir string) *Sink {
	if dir == "" {
		dir = DefaultOutputDir
	}
	return &Sink{Dir: dir}
}

// Path returns where a receipt generated at at is written.
func (s *Sink) Path(at time.Time) string {
	return filepath.Join(s.Dir, OutputName(at))
}

// Write creates the directory if needed and stores res. It returns the path
// of the written file.
func (s *Sink) Write(at time.Time, res *Result) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating %s: %v", ErrWrite, s.Dir, err)
	}
	path := s.Path(at)
	if err := res.WriteToFile(path, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return path, nil
}
