package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/d-rezzer/csharpparse/internal/ast"
	"github.com/d-rezzer/csharpparse/internal/diag"
	"github.com/d-rezzer/csharpparse/internal/lexer"
	"github.com/d-rezzer/csharpparse/internal/parser"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	parseExpression bool
	parseDumpAST    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse source code and display the AST",
	Long: `Parse C#-family source code and display the Abstract Syntax Tree.

If no file is provided, reads from stdin. Use -e to parse a single
expression from the command line instead of a whole compilation unit.
Use --dump-ast to show the full AST structure instead of the source
rendering.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse a single expression from the command line")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func resolveInput(args []string) (input, filename string, err error) {
	switch {
	case parseExpression:
		if len(args) == 0 {
			return "", "", fmt.Errorf("no expression provided")
		}
		return args[0], "<expression>", nil
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("error reading file: %w", err)
		}
		return string(data), args[0], nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}
}

func useColor() bool {
	switch colorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		return !color.NoColor
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	input, filename, err := resolveInput(args)
	if err != nil {
		return err
	}

	sink := newLimitedSink(diag.NewStderrSink(filename, input, useColor()), maxErrors)

	l := lexer.New(input)
	p := parser.New(l, sink)
	if noRecover {
		p.SetRecover(false)
	}

	var unit *ast.CompilationUnit
	if parseExpression {
		expr := p.ParseExpression()
		unit = &ast.CompilationUnit{Members: []ast.Node{&ast.ExpressionStatement{Expr: expr}}}
	} else {
		unit = p.ParseCompilationUnit()
	}

	if p.ErrorCount() > 0 {
		return fmt.Errorf("parsing failed with %d diagnostic(s)", p.ErrorCount())
	}

	if parseDumpAST {
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("======================")
		dumpASTNode(os.Stdout, unit, 0)
	} else {
		fmt.Println(unit.String())
	}

	return nil
}

// dumpASTNode recursively prints a node and its children to w, indenting
// one level per nesting depth. Unrecognized node kinds fall back to
// their %T and String() rendering rather than being skipped.
func dumpASTNode(w io.Writer, node any, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}

	switch n := node.(type) {
	case *ast.CompilationUnit:
		fmt.Fprintf(w, "%sCompilationUnit (%d usings, %d members)\n", pad, len(n.Usings), len(n.Members))
		for _, u := range n.Usings {
			dumpASTNode(w, u, indent+1)
		}
		for _, m := range n.Members {
			dumpASTNode(w, m, indent+1)
		}
	case *ast.NamespaceDecl:
		fmt.Fprintf(w, "%sNamespaceDecl %s (%d members)\n", pad, n.Name, len(n.Members))
		for _, m := range n.Members {
			dumpASTNode(w, m, indent+1)
		}
	case *ast.TypeDecl:
		fmt.Fprintf(w, "%sTypeDecl (%s) %s\n", pad, n.Kind, n.Name)
		for _, m := range n.Members {
			dumpASTNode(w, m, indent+1)
		}
	case *ast.BlockStatement:
		fmt.Fprintf(w, "%sBlockStatement (%d statements)\n", pad, len(n.Statements))
		for _, s := range n.Statements {
			dumpASTNode(w, s, indent+1)
		}
	case *ast.ExpressionStatement:
		fmt.Fprintf(w, "%sExpressionStatement\n", pad)
		dumpASTNode(w, n.Expr, indent+1)
	case *ast.BinaryExpression:
		fmt.Fprintf(w, "%sBinaryExpression (%s)\n", pad, n.Operator)
		dumpASTNode(w, n.Left, indent+1)
		dumpASTNode(w, n.Right, indent+1)
	case *ast.UnaryExpression:
		fmt.Fprintf(w, "%sUnaryExpression (%s)\n", pad, n.Operator)
		dumpASTNode(w, n.Operand, indent+1)
	case *ast.Identifier:
		fmt.Fprintf(w, "%sIdentifier: %s\n", pad, n.Name)
	case *ast.IntegerLiteral:
		fmt.Fprintf(w, "%sIntegerLiteral: %d\n", pad, n.Value)
	case *ast.StringLiteral:
		fmt.Fprintf(w, "%sStringLiteral: %q\n", pad, n.Value)
	case *ast.BoolLiteral:
		fmt.Fprintf(w, "%sBoolLiteral: %v\n", pad, n.Value)
	case nil:
		fmt.Fprintf(w, "%s<nil>\n", pad)
	default:
		fmt.Fprintf(w, "%s%T: %s\n", pad, node, node)
	}
}
