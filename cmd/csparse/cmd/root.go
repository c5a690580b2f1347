package cmd

import (
	"fmt"

	"github.com/d-rezzer/csharpparse/internal/diag"
	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// global flags shared by parse/lex/repl
var (
	colorMode  string
	maxErrors  int
	noRecover  bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "csparse",
	Short: "C#-family recursive-descent parser",
	Long: `csparse tokenizes and parses C#-family source into an AST.

It implements a hand-written recursive-descent parser with LL(1)
lookahead predicates (no backtracking re-parse) and panic-mode error
recovery, covering generics, nullable types, iterators, operator
overloading, and unsafe code.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applyConfig(cmd, configPath)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "colorize diagnostics: auto|always|never")
	rootCmd.PersistentFlags().IntVar(&maxErrors, "max-errors", 0, "stop after N reported diagnostics (0 = unlimited)")
	rootCmd.PersistentFlags().BoolVar(&noRecover, "no-recover", false, "disable panic-mode token skipping; parsing still runs to the end")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".csparse.yaml", "path to config file")
}

// limitedSink wraps a diag.Sink and stops forwarding diagnostics once
// limit have been reported, so --max-errors bounds CLI output even
// though the parser's own panic-mode recovery keeps trying productions.
type limitedSink struct {
	inner diag.Sink
	limit int
	count int
}

func newLimitedSink(inner diag.Sink, limit int) diag.Sink {
	if limit <= 0 {
		return inner
	}
	return &limitedSink{inner: inner, limit: limit}
}

func (s *limitedSink) Report(d diag.Diagnostic) {
	if s.count >= s.limit {
		return
	}
	s.count++
	s.inner.Report(d)
}
