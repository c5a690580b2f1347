package cmd

import (
	"testing"

	"github.com/d-rezzer/csharpparse/internal/diag"
)

func TestLimitedSinkStopsAtLimit(t *testing.T) {
	inner := diag.NewSliceSink()
	sink := newLimitedSink(inner, 2)

	for i := 0; i < 5; i++ {
		sink.Report(diag.Diagnostic{Line: i + 1, Column: 1, Message: "boom"})
	}

	if inner.Len() != 2 {
		t.Errorf("inner sink saw %d diagnostics, want 2", inner.Len())
	}
}

func TestLimitedSinkZeroLimitIsUnbounded(t *testing.T) {
	inner := diag.NewSliceSink()
	sink := newLimitedSink(inner, 0)

	for i := 0; i < 5; i++ {
		sink.Report(diag.Diagnostic{Line: i + 1, Column: 1, Message: "boom"})
	}

	if inner.Len() != 5 {
		t.Errorf("inner sink saw %d diagnostics, want 5 (unbounded)", inner.Len())
	}
}
