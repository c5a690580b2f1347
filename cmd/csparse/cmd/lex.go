package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/d-rezzer/csharpparse/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	lexExpr     string
	lexShowPos  bool
	lexShowType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize source code and print the resulting tokens",
	Long: `Tokenize C#-family source code and print the token stream.

Useful for debugging the lexer and understanding how source is
tokenized, independent of the parser built on top of it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexExpr, "eval", "e", "", "tokenize inline code instead of reading a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token type names")
}

func runLex(cmd *cobra.Command, args []string) error {
	var input string

	switch {
	case lexExpr != "":
		input = lexExpr
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		input = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		input = string(data)
	}

	l := lexer.New(input)
	illegal := 0
	for {
		tok := l.NextToken()
		printToken(tok)
		if tok.Type == lexer.ILLEGAL {
			illegal++
		}
		if tok.Type == lexer.EOF {
			break
		}
	}

	for _, e := range l.Errors() {
		fmt.Fprintf(os.Stderr, "%d:%d: %s\n", e.Pos.Line, e.Pos.Column, e.Message)
	}

	if illegal > 0 || len(l.Errors()) > 0 {
		return fmt.Errorf("lexing found %d illegal token(s), %d error(s)", illegal, len(l.Errors()))
	}
	return nil
}

func printToken(tok lexer.Token) {
	var out string
	if lexShowType {
		out = fmt.Sprintf("[%-14s]", tok.Type)
	}

	switch {
	case tok.Type == lexer.EOF:
		out += " EOF"
	case tok.Type == lexer.ILLEGAL:
		out += fmt.Sprintf(" ILLEGAL: %q", tok.Value)
	case tok.Value == "":
		out += fmt.Sprintf(" %s", tok.Type)
	default:
		out += fmt.Sprintf(" %q", tok.Value)
	}

	if lexShowPos {
		out += fmt.Sprintf(" @%d:%d", tok.Start.Line, tok.Start.Column)
	}

	fmt.Println(out)
}
