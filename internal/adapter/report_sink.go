package adapter

import (
	"fmt"
	"io"
	"os"

	m "pycodemap.dev/pkg/pycodemap/internal/model"
)

// ReportSink receives rendered file blocks one at a time, in output order.
type ReportSink interface {
	Write(block string) error
	Close() error
}

// WriterSink writes blocks to an io.Writer.
type WriterSink struct {
	w       io.Writer
	newline bool
}

// NewWriterSink writes each block verbatim, the way a report file is written.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// NewStdoutSink writes each block followed by a newline, the way blocks are
// printed to a terminal.
func NewStdoutSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w, newline: true}
}

// Write emits one block.
func (s *WriterSink) Write(block string) error {
	if _, err := io.WriteString(s.w, block); err != nil {
		return err
	}

	if s.newline {
		if _, err := io.WriteString(s.w, "\n"); err != nil {
			return err
		}
	}

	return nil
}

// Close is a no-op; the writer is owned by the caller.
func (s *WriterSink) Close() error {
	return nil
}

// FileSink writes blocks verbatim to a file it owns.
type FileSink struct {
	*WriterSink
	file *os.File
}

// NewFileSink creates or truncates path. Failing to open the output is fatal
// for the run, so the error is returned before any file is summarized.
func NewFileSink(path m.Path) (*FileSink, error) {
	// #nosec G304 - the output path is chosen by the user on purpose
	file, err := os.Create(string(path))
	if err != nil {
		return nil, fmt.Errorf("open output %s: %w", path, err)
	}

	return &FileSink{WriterSink: NewWriterSink(file), file: file}, nil
}

// Close flushes and closes the underlying file.
func (s *FileSink) Close() error {
	return s.file.Close()
}
