package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// WriterSink formats diagnostics with a caret pointing at the offending
// column, optionally with ANSI color, and writes them to an io.Writer.
// Used by the CLI; the parser and lexer never construct one themselves.
type WriterSink struct {
	w        io.Writer
	lines    []string
	filename string
	useColor bool
	count    int
}

// NewWriterSink builds a WriterSink over source text src (used to render
// the offending line under each diagnostic) and filename (used as the
// label in "filename:line:column:").
func NewWriterSink(w io.Writer, filename, src string, useColor bool) *WriterSink {
	return &WriterSink{
		w:        w,
		lines:    strings.Split(src, "\n"),
		filename: filename,
		useColor: useColor,
	}
}

// Count reports how many diagnostics have been written so far.
func (s *WriterSink) Count() int { return s.count }

// Report formats and writes d.
func (s *WriterSink) Report(d Diagnostic) {
	s.count++
	header := fmt.Sprintf("%s:%d:%d: %s", s.filename, d.Line, d.Column, d.Message)
	if s.useColor {
		header = color.New(color.FgRed, color.Bold).Sprint("error: ") + header
	} else {
		header = "error: " + header
	}
	fmt.Fprintln(s.w, header)

	if d.Line >= 1 && d.Line <= len(s.lines) {
		line := s.lines[d.Line-1]
		fmt.Fprintf(s.w, "  %s\n", line)
		col := d.Column
		if col < 1 {
			col = 1
		}
		caret := strings.Repeat(" ", col-1) + "^"
		if s.useColor {
			caret = color.New(color.FgGreen, color.Bold).Sprint(caret)
		}
		fmt.Fprintf(s.w, "  %s\n", caret)
	}
}

// NewStderrSink is a convenience constructor for the common CLI case:
// report to os.Stderr, with color on exactly when useColor is true (the
// CLI derives it from --color auto|always|never).
func NewStderrSink(filename, src string, useColor bool) *WriterSink {
	return NewWriterSink(os.Stderr, filename, src, useColor)
}
