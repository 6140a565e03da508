package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Writer writes pull request rows as CSV to a file or io.Writer. The
// header line is written before the first row, or on Close when no rows
// were written, so an empty export still produces a valid CSV file.
type Writer struct {
	cw          *csv.Writer
	count       int
	wroteHeader bool
	closeFunc   func() error
}

// NewWriter creates a CSV writer that writes to the specified output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		cw: csv.NewWriter(w),
	}
}

// NewFileWriter creates a CSV writer that writes to a file, creating or
// truncating it. The caller must call Close() when done.
func NewFileWriter(filename string) (*Writer, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{
		cw:        csv.NewWriter(file),
		closeFunc: file.Close,
	}, nil
}

// Write writes a single row, emitting the header line first if it has not
// been written yet.
func (w *Writer) Write(row Row) error {
	if err := w.writeHeader(); err != nil {
		return err
	}

	if err := w.cw.Write(row.record()); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}

	w.count++
	return nil
}

// Count returns the number of rows written, excluding the header.
func (w *Writer) Count() int {
	return w.count
}

// Close flushes buffered output and closes the underlying file, if any.
func (w *Writer) Close() error {
	if err := w.writeHeader(); err != nil {
		return err
	}

	w.cw.Flush()
	if err := w.cw.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if w.closeFunc != nil {
		return w.closeFunc()
	}
	return nil
}

func (w *Writer) writeHeader() error {
	if w.wroteHeader {
		return nil
	}
	if err := w.cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	w.wroteHeader = true
	return nil
}
