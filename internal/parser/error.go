package parser

import (
	"fmt"

	"github.com/d-rezzer/csharpparse/internal/diag"
	"github.com/d-rezzer/csharpparse/internal/lexer"
)

// report sends a diagnostic to the sink, throttled by errDist so one
// malformed token doesn't produce a cascade of near-duplicate errors
// (§4.4, §7). The distance counter resets on every reported error.
func (p *Parser) report(tok lexer.Token, message string) {
	p.errorCount++
	if p.errDist < minErrorDistance {
		return
	}
	p.errDist = 0
	p.sink.Report(diag.Diagnostic{
		Line:    tok.Start.Line,
		Column:  tok.Start.Column,
		Message: message,
	})
}

// errf is a convenience wrapper for report with a formatted message
// anchored at the current token.
func (p *Parser) errf(format string, args ...any) {
	p.report(p.cur_(), fmt.Sprintf(format, args...))
}

// synErr reports "<kind> expected" at the current token — the
// "expected-token" diagnostic category.
func (p *Parser) synErr(expectedKind string) {
	p.report(p.cur_(), fmt.Sprintf("%s expected, got %s", expectedKind, describeToken(p.cur_())))
}

func describeToken(t lexer.Token) string {
	if t.Type == lexer.EOF {
		return "end of file"
	}
	if t.Value != "" {
		return fmt.Sprintf("%q", t.Value)
	}
	return t.Type.String()
}

// expect reports a missing-token diagnostic if the current token is not
// tt, and never advances — callers that want the "expect or advance"
// shape call expectConsume instead. This matches the spec's distinction
// between "expect (report, don't advance)" and the ordinary consuming
// accept used everywhere else.
func (p *Parser) expect(tt lexer.TokenType) {
	if !p.at(tt) {
		p.synErr(tt.String())
	}
}

// expectConsume consumes and returns the current token if it is tt. On a
// mismatch it reports the missing tt and returns the current token
// without consuming it (the caller is responsible for deciding whether
// to synchronize further).
func (p *Parser) expectConsume(tt lexer.TokenType) lexer.Token {
	if !p.at(tt) {
		p.synErr(tt.String())
		return p.cur_()
	}
	return p.advance()
}

// expectIdentifier reports if the current token isn't an IDENT (or a
// contextual keyword being used as an identifier), then consumes it.
func (p *Parser) expectIdentifier() lexer.Token {
	if p.at(lexer.IDENT) {
		return p.advance()
	}
	p.synErr("identifier")
	return p.cur_()
}

// weakSeparator consumes sep if present and returns true. If sep is
// absent it returns false: silently when the current token is in the
// follow set of the list being parsed, otherwise after reporting the
// missing sep. It never skips tokens; the list ends at the current
// token and the caller's closing expectConsume deals with it (§4.4).
func (p *Parser) weakSeparator(sep lexer.TokenType, follow ...lexer.TokenType) bool {
	if p.at(sep) {
		p.advance()
		return true
	}
	for _, f := range follow {
		if p.at(f) {
			return false
		}
	}
	p.synErr(sep.String())
	return false
}

// SynchronizationSet names one of the FOLLOW-set families productions
// synchronize to on error.
type SynchronizationSet int

const (
	SyncStatementStarters SynchronizationSet = iota
	SyncBlockClosers
	SyncDeclarationStarters
	SyncAll
)

var statementStarters = []lexer.TokenType{
	lexer.IF, lexer.SWITCH, lexer.WHILE, lexer.DO, lexer.FOR, lexer.FOREACH,
	lexer.BREAK, lexer.CONTINUE, lexer.GOTO, lexer.RETURN, lexer.THROW,
	lexer.TRY, lexer.LOCK, lexer.USING, lexer.UNSAFE, lexer.FIXED,
	lexer.CHECKED, lexer.UNCHECKED, lexer.LBRACE, lexer.SEMICOLON,
}

var blockClosers = []lexer.TokenType{
	lexer.RBRACE, lexer.EOF,
}

var declarationStarters = []lexer.TokenType{
	lexer.CLASS, lexer.STRUCT, lexer.INTERFACE, lexer.ENUM, lexer.DELEGATE,
	lexer.NAMESPACE, lexer.USING, lexer.PUBLIC, lexer.PROTECTED,
	lexer.INTERNAL, lexer.PRIVATE, lexer.STATIC, lexer.CONST,
}

// getSyncTokens returns the token set a SynchronizationSet names.
func getSyncTokens(set SynchronizationSet) []lexer.TokenType {
	switch set {
	case SyncStatementStarters:
		return statementStarters
	case SyncBlockClosers:
		return blockClosers
	case SyncDeclarationStarters:
		return declarationStarters
	default:
		all := make([]lexer.TokenType, 0, len(statementStarters)+len(blockClosers)+len(declarationStarters))
		all = append(all, statementStarters...)
		all = append(all, blockClosers...)
		all = append(all, declarationStarters...)
		return all
	}
}

// synchronize implements panic-mode error recovery: skip tokens until
// one belonging to set is found (or EOF), so the next production has a
// sane token to start from. With recovery off (SetRecover(false)) it
// skips nothing and only records that the parser bailed (see Bailed).
func (p *Parser) synchronize(set SynchronizationSet) {
	if !p.recover {
		p.bailed = true
		return
	}
	sync := getSyncTokens(set)
	for !p.at(lexer.EOF) {
		for _, tt := range sync {
			if p.at(tt) {
				return
			}
		}
		p.advance()
	}
}

// ErrorCount reports how many diagnostics were reported during this
// parse (including ones throttled out of the sink).
func (p *Parser) ErrorCount() int { return p.errorCount }

// Bailed reports whether synchronize was reached with recovery disabled.
// Parsing continues after that point; Bailed only records it.
func (p *Parser) Bailed() bool { return p.bailed }
