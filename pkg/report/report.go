package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bbops/gsweep/pkg/scanner"
)

// Header is the fixed first row of every report.
var Header = []string{"Project", "Bucket", "File Type", "File Path"}

const timestampLayout = "20060102_150405"

// DefaultPath returns the timestamped report path for this run.
func DefaultPath() string {
	return fmt.Sprintf("archive_files_%s.csv", time.Now().Format(timestampLayout))
}

// PermissionErrorsPath returns the timestamped path of the sidecar file
// naming projects whose bucket listing was denied.
func PermissionErrorsPath() string {
	return fmt.Sprintf("permission_errors_%s.txt", time.Now().Format(timestampLayout))
}

// Writer appends archive records to a CSV file, flushing after every
// record so an interrupted run leaves a valid, truncated-but-readable
// report. CSV quoting keeps commas in object paths inside one field.
type Writer struct {
	path string
	file *os.File
	csv  *csv.Writer
}

// Create opens a new report file and writes the header. A file left by a
// previous run is never overwritten.
func Create(path string) (*Writer, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file %s: %w", path, err)
	}

	w := &Writer{path: path, file: file, csv: csv.NewWriter(file)}
	if err := w.write(Header); err != nil {
		file.Close()
		return nil, err
	}
	return w, nil
}

func (w *Writer) Path() string {
	return w.path
}

// Append writes one record row and flushes it to disk.
func (w *Writer) Append(rec scanner.Record) error {
	return w.write([]string{rec.Project, rec.Bucket, rec.FileType, rec.FilePath})
}

func (w *Writer) write(row []string) error {
	if err := w.csv.Write(row); err != nil {
		return fmt.Errorf("failed to write report row to %s: %w", w.path, err)
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return fmt.Errorf("failed to flush report %s: %w", w.path, err)
	}
	return nil
}

// Close flushes and closes the report file.
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush report %s: %w", w.path, err)
	}
	return w.file.Close()
}

// WritePermissionErrors writes the sidecar file listing projects that
// could not be scanned. Nothing is written when the list is empty.
func WritePermissionErrors(path string, projects []string) error {
	if len(projects) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("# Projects with permission issues\n")
	for _, p := range projects {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write permission errors file %s: %w", path, err)
	}
	return nil
}
