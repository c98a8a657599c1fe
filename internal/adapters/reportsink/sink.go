package reportsink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/ignorestat/internal/core/ports"
)

// Sink writes the report either to a file or to the standard output stream.
type Sink struct {
	outputPath string
	stdout     io.Writer
}

// NewSink creates a new Sink. With an empty outputPath the report goes to stdout.
func NewSink(outputPath string, stdout io.Writer) ports.ReportSink {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Sink{outputPath: outputPath, stdout: stdout}
}

// Write delivers the report followed by a single newline.
// A file is written to a temporary sibling and renamed into place, so an
// existing output file is only replaced by a complete report.
func (s *Sink) Write(report string) error {
	if s.outputPath == "" {
		if _, err := fmt.Fprintln(s.stdout, report); err != nil {
			return fmt.Errorf("failed to write report to stdout: %w", err)
		}
		return nil
	}

	dir, base := filepath.Split(s.outputPath)
	if dir == "" {
		dir = "."
	}
	file, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", s.outputPath, err)
	}
	tmpPath := file.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if _, err := fmt.Fprintln(file, report); err != nil {
		file.Close()
		return fmt.Errorf("failed to write report to %s: %w", s.outputPath, err)
	}
	if err := file.Chmod(outputMode(s.outputPath)); err != nil {
		file.Close()
		return fmt.Errorf("failed to set permissions on %s: %w", s.outputPath, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file %s: %w", s.outputPath, err)
	}
	if err := os.Rename(tmpPath, s.outputPath); err != nil {
		return fmt.Errorf("failed to move report into %s: %w", s.outputPath, err)
	}
	committed = true
	return nil
}

// outputMode keeps the permissions of an existing output file, 0644 otherwise.
func outputMode(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return 0644
}
