// Package parser implements a recursive-descent parser over the token
// stream produced by internal/lexer, building the AST node set defined
// in internal/ast. It resolves every LL(1) ambiguity in the grammar
// (cast vs. parenthesized expression, local-var-decl vs. expression
// statement, generic-invocation vs. less-than comparison, and so on)
// with a fixed-depth lookahead predicate rather than backtracking
// re-parse, and recovers from malformed input by panic-mode
// synchronization to a FOLLOW set instead of aborting the parse.
package parser

import (
	"github.com/d-rezzer/csharpparse/internal/ast"
	"github.com/d-rezzer/csharpparse/internal/diag"
	"github.com/d-rezzer/csharpparse/internal/lexer"
)

// Parser holds the mutable state of one parse: a cursor over the token
// stream, the diagnostic sink errors are reported to, the container
// stack the assembler maintains, and the error-recovery throttle.
type Parser struct {
	cur  *lexer.Cursor
	sink diag.Sink

	blockStack []ast.Container

	// errDist counts tokens consumed since the last reported error; a
	// new error is only reported once errDist reaches minErrorDistance, so a
	// single bad token doesn't cascade into a wall of diagnostics (§4.4).
	errDist int

	// recover disables panic-mode synchronization when false (CLI
	// --no-recover): synchronize then skips no tokens and only sets
	// bailed. The parse itself still runs to EOF and keeps reporting
	// errors through the sink.
	recover bool

	errorCount int
	bailed     bool

	// lastEnd is the end position of the most recently consumed token,
	// used by nodeBuilder.finish to stamp a node's end span.
	lastEnd lexer.Position
}

const minErrorDistance = 3

// New creates a Parser consuming tokens from lex and reporting
// diagnostics to sink. Panic-mode recovery is enabled by default.
func New(lex *lexer.Lexer, sink diag.Sink) *Parser {
	return &Parser{
		cur:     lexer.NewCursor(lex),
		sink:    sink,
		recover: true,
		errDist: minErrorDistance,
	}
}

// SetRecover toggles panic-mode synchronization (the CLI's --no-recover
// flag wires this to false).
func (p *Parser) SetRecover(v bool) { p.recover = v }

// Parse runs the top-level CompilationUnit production and returns the
// resulting AST root. Always returns a non-nil *ast.CompilationUnit,
// even when diagnostics were reported — callers decide whether to treat
// a non-empty diagnostic list as fatal.
func Parse(lex *lexer.Lexer, sink diag.Sink) *ast.CompilationUnit {
	p := New(lex, sink)
	return p.ParseCompilationUnit()
}

// ParseExpression parses a single expression (used by the REPL, which
// never sees a full compilation unit).
func ParseExpression(lex *lexer.Lexer, sink diag.Sink) ast.Expression {
	return New(lex, sink).ParseExpression()
}

// ParseExpression parses a single expression starting at the parser's
// current position. Exported so callers that need to configure the
// Parser first (SetRecover, a shared sink) can still reach the
// expression-only entry point rather than the package-level
// convenience constructor above.
func (p *Parser) ParseExpression() ast.Expression {
	return p.parseExpression(lowest)
}

// ---- token cursor helpers ---------------------------------------------

func (p *Parser) cur_() lexer.Token  { return p.cur.Current() }
func (p *Parser) peek(n int) lexer.Token { return p.cur.Lookahead(n) }

func (p *Parser) at(tt lexer.TokenType) bool { return p.cur.Is(tt) }

func (p *Parser) atAny(types ...lexer.TokenType) bool { return p.cur.IsAny(types...) }

// advance consumes the current token and returns it (pre-advance),
// incrementing the error-distance throttle.
func (p *Parser) advance() lexer.Token {
	t := p.cur.Current()
	p.cur.Advance()
	p.errDist++
	p.lastEnd = t.End
	return t
}

// startPeek begins a lookahead walk for a disambiguation predicate.
func (p *Parser) startPeek() lexer.PeekCursor { return p.cur.StartPeek() }

// ---- container stack (compilation-unit assembler) ---------------------

func (p *Parser) pushContainer(c ast.Container) { p.blockStack = append(p.blockStack, c) }

func (p *Parser) popContainer() {
	p.blockStack = p.blockStack[:len(p.blockStack)-1]
}

// addChild attaches n to whatever container is currently on top of the
// stack, if any. Top-level productions that build their own containers
// (CompilationUnit itself) call AddChild directly instead.
func (p *Parser) addChild(n ast.Node) {
	if len(p.blockStack) == 0 {
		return
	}
	p.blockStack[len(p.blockStack)-1].AddChild(n)
}

// ---- node construction --------------------------------------------------

// nodeBuilder captures the start token of a production; finish stamps
// the node's start position/token and its end position (from the last
// consumed token) once the production completes.
type nodeBuilder struct {
	p     *Parser
	start lexer.Token
}

func (p *Parser) startNode() nodeBuilder {
	return nodeBuilder{p: p, start: p.cur_()}
}

// finish stamps base's start position/token from the production's first
// token and its end position from the last token the parser consumed.
// Productions call this as their last statement, after advancing past
// everything belonging to the node.
func (b nodeBuilder) finish(base *ast.BaseNode) {
	base.StartPosition = b.start.Start
	base.Token = b.start
	base.SetEnd(b.p.lastEnd)
}
