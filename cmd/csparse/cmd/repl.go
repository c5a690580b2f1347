package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/d-rezzer/csharpparse/internal/diag"
	"github.com/d-rezzer/csharpparse/internal/lexer"
	"github.com/d-rezzer/csharpparse/internal/parser"
	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive expression parser loop",
	Long: `Start a read-parse-print loop: each line is parsed as a single
expression and its AST is printed.

Type :help for a list of commands, :quit to exit.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	startRepl(os.Stdin, os.Stdout)
	return nil
}

const replHistoryFile = ".csparse_history"

func startRepl(in io.Reader, out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)

	historyPath := filepath.Join(os.TempDir(), replHistoryFile)
	if f, err := os.Open(historyPath); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	dumpAST := true

	line.SetCompleter(func(s string) (c []string) {
		for _, cmd := range []string{":help", ":quit", ":ast", ":tree", ":norecover", ":recover"} {
			if strings.HasPrefix(cmd, s) {
				c = append(c, cmd)
			}
		}
		return
	})

	fmt.Fprintf(out, "%s %s\n", bold("csparse"), bold(Version))
	fmt.Fprintln(out, dim("Type :help for help, :quit to exit"))
	fmt.Fprintln(out)

	recoverMode := !noRecover

	for {
		input, err := line.Prompt("csparse> ")
		if err == io.EOF {
			fmt.Fprintln(out, green("\nGoodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(input, ":") {
			switch {
			case input == ":quit" || input == ":q" || input == ":exit":
				fmt.Fprintln(out, green("Goodbye!"))
				return
			case input == ":help":
				printReplHelp(out)
			case input == ":ast" || input == ":tree":
				dumpAST = !dumpAST
				fmt.Fprintf(out, "AST dump: %v\n", dumpAST)
			case input == ":norecover":
				recoverMode = false
				fmt.Fprintln(out, "panic-mode recovery disabled")
			case input == ":recover":
				recoverMode = true
				fmt.Fprintln(out, "panic-mode recovery enabled")
			default:
				fmt.Fprintf(out, "%s: unknown command %q\n", red("Error"), input)
			}
			continue
		}

		evalLine(input, out, dumpAST, recoverMode)
	}

	if f, err := os.Create(historyPath); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

func evalLine(input string, out io.Writer, dumpAST, recoverMode bool) {
	sliceSink := diag.NewSliceSink()
	sink := newLimitedSink(sliceSink, maxErrors)
	l := lexer.New(input)
	p := parser.New(l, sink)
	p.SetRecover(recoverMode)

	expr := p.ParseExpression()

	for _, d := range sliceSink.Diagnostics {
		fmt.Fprintf(out, "%s %s\n", red("error:"), d.String())
	}
	if p.ErrorCount() > 0 {
		return
	}

	if dumpAST {
		dumpASTNode(out, expr, 0)
	} else {
		fmt.Fprintln(out, expr.String())
	}
}

func printReplHelp(out io.Writer) {
	fmt.Fprintln(out, `Commands:
  :help        show this message
  :quit, :q    exit the REPL
  :ast, :tree  toggle AST-dump output (default on)
  :recover     enable panic-mode error recovery
  :norecover   disable panic-mode error recovery`)
}
