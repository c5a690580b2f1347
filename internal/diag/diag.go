// Package diag defines the diagnostic sink contract the parser reports
// through: plain {line, column, message} tuples, with no dependency in
// either direction on how they get displayed.
package diag

import "fmt"

// Diagnostic is a single reported problem.
type Diagnostic struct {
	Line    int
	Column  int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Message)
}

// Sink receives diagnostics as they are produced. The parser keeps no
// error list of its own; it reports through whatever Sink the caller
// supplies. The lexer does not use a Sink: it collects its errors in a
// list returned by Lexer.Errors.
type Sink interface {
	Report(d Diagnostic)
}

// SliceSink is the simplest Sink: it collects every diagnostic reported
// to it, in order. Used by the parser's own tests and by callers that
// only want the final list.
type SliceSink struct {
	Diagnostics []Diagnostic
}

// NewSliceSink returns an empty SliceSink.
func NewSliceSink() *SliceSink { return &SliceSink{} }

// Report appends d.
func (s *SliceSink) Report(d Diagnostic) { s.Diagnostics = append(s.Diagnostics, d) }

// Len reports how many diagnostics have been collected.
func (s *SliceSink) Len() int { return len(s.Diagnostics) }
