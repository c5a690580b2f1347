package parser

import "github.com/d-rezzer/csharpparse/internal/lexer"

// This file holds every fixed-depth lookahead predicate the parser
// consults to resolve an LL(1) ambiguity without backtracking re-parse
// (§4.2). Each predicate walks a PeekCursor started from the current
// position and never mutates parser state.

// tokenStartsExpression reports whether tt can begin a unary-expression.
func tokenStartsExpression(tt lexer.TokenType) bool {
	switch tt {
	case lexer.IDENT, lexer.INT, lexer.FLOAT, lexer.STRING, lexer.CHAR,
		lexer.NULL, lexer.TRUE, lexer.FALSE, lexer.THIS, lexer.BASE,
		lexer.LPAREN, lexer.NEW, lexer.TYPEOF, lexer.SIZEOF, lexer.CHECKED,
		lexer.UNCHECKED, lexer.STACKALLOC, lexer.DEFAULT, lexer.DELEGATE,
		lexer.BANG, lexer.TILDE, lexer.PLUS, lexer.MINUS, lexer.INC, lexer.DEC,
		lexer.AMP, lexer.STAR:
		return true
	}
	return typeKeywords[tt]
}

// castFollowSet is the set of tokens that, seen right after a `(Type)`,
// confirm the parens were a cast rather than a parenthesized expression
// (a cast can only be followed by something that starts a unary
// expression, per the classic C-family cast/paren ambiguity).
func castFollowSet(tt lexer.TokenType) bool {
	switch tt {
	case lexer.IDENT, lexer.INT, lexer.FLOAT, lexer.STRING, lexer.CHAR,
		lexer.NULL, lexer.TRUE, lexer.FALSE, lexer.THIS, lexer.BASE,
		lexer.LPAREN, lexer.NEW, lexer.TYPEOF, lexer.SIZEOF, lexer.CHECKED,
		lexer.UNCHECKED, lexer.STACKALLOC, lexer.DEFAULT, lexer.BANG,
		lexer.TILDE, lexer.STAR, lexer.AMP:
		return true
	}
	return false
}

// IsTypeCast decides, when standing on `(`, whether the parenthesized
// content is a type cast `(Type) unary-expr` as opposed to a
// parenthesized expression. It speculatively walks a type reference
// (name, optional generic args, optional `[]`/`*` suffixes) and checks
// that `)` is immediately followed by a token that can only start a
// unary expression.
func (p *Parser) IsTypeCast() bool {
	pc := p.startPeek()
	if pc.Peek().Type != lexer.LPAREN {
		return false
	}
	pc = pc.Next()

	if !pc.Peek().Type.IsLiteral() && !typeKeywords[pc.Peek().Type] && pc.Peek().Type != lexer.IDENT {
		return false
	}
	if pc.Peek().Type != lexer.IDENT && !typeKeywords[pc.Peek().Type] {
		return false
	}
	pc = pc.Next()

	// Optional dotted-name continuation.
	for pc.Peek().Type == lexer.DOT {
		pc = pc.Next()
		if pc.Peek().Type != lexer.IDENT {
			return false
		}
		pc = pc.Next()
	}

	// Optional generic argument list `<...>`.
	if pc.Peek().Type == lexer.LT {
		save := pc
		pc = pc.Next()
		depth := 1
		ok := false
		for i := 0; i < 64; i++ {
			switch pc.Peek().Type {
			case lexer.LT:
				depth++
			case lexer.GT:
				depth--
				if depth == 0 {
					pc = pc.Next()
					ok = true
				}
			case lexer.COMMA, lexer.IDENT, lexer.LBRACK, lexer.RBRACK, lexer.DOT:
				// permitted inside a generic argument list
			default:
				if typeKeywords[pc.Peek().Type] {
					break
				}
				ok = false
				depth = 0
			}
			if depth == 0 {
				break
			}
			pc = pc.Next()
		}
		if !ok {
			pc = save
		}
	}

	// Optional pointer/array suffix.
	for pc.Peek().Type == lexer.STAR || pc.Peek().Type == lexer.LBRACK {
		if pc.Peek().Type == lexer.STAR {
			pc = pc.Next()
			continue
		}
		pc = pc.Next()
		for pc.Peek().Type == lexer.COMMA {
			pc = pc.Next()
		}
		if pc.Peek().Type != lexer.RBRACK {
			return false
		}
		pc = pc.Next()
	}
	if pc.Peek().Type == lexer.QUESTION {
		pc = pc.Next()
	}

	if pc.Peek().Type != lexer.RPAREN {
		return false
	}
	pc = pc.Next()
	return castFollowSet(pc.Peek().Type)
}

// IsLocalVarDecl decides, at the start of an embedded statement, whether
// the upcoming tokens are a local variable declaration (`Type name ...;`
// or `var name = ...;`) as opposed to an expression statement. `var` is
// always a declaration; otherwise it requires TypeName identifier
// immediately followed by `=`, `;`, `,`, or `[` (array rank) — anything
// else (like `.` or `(`) means it was actually an expression such as a
// method call or member access.
func (p *Parser) IsLocalVarDecl() bool {
	pc := p.startPeek()
	if pc.Peek().Type == lexer.VAR {
		return true
	}
	if pc.Peek().Type != lexer.IDENT && !typeKeywords[pc.Peek().Type] {
		return false
	}
	pc = pc.Next()
	for pc.Peek().Type == lexer.DOT {
		pc = pc.Next()
		if pc.Peek().Type != lexer.IDENT {
			return false
		}
		pc = pc.Next()
	}
	if pc.Peek().Type == lexer.LT {
		save := pc
		walk := pc.Next()
		depth := 1
		aborted := false
		for depth > 0 {
			switch walk.Peek().Type {
			case lexer.LT:
				depth++
			case lexer.GT:
				depth--
			case lexer.EOF, lexer.SEMICOLON, lexer.LBRACE:
				aborted = true
			}
			if aborted {
				break
			}
			walk = walk.Next()
		}
		if aborted {
			pc = save
		} else {
			pc = walk
		}
	}
	for pc.Peek().Type == lexer.STAR {
		pc = pc.Next()
	}
	for pc.Peek().Type == lexer.LBRACK {
		pc = pc.Next()
		for pc.Peek().Type == lexer.COMMA {
			pc = pc.Next()
		}
		if pc.Peek().Type != lexer.RBRACK {
			return false
		}
		pc = pc.Next()
	}
	if pc.Peek().Type == lexer.QUESTION {
		pc = pc.Next()
	}
	if pc.Peek().Type != lexer.IDENT {
		return false
	}
	pc = pc.Next()
	switch pc.Peek().Type {
	case lexer.ASSIGN, lexer.SEMICOLON, lexer.COMMA, lexer.LBRACK:
		return true
	}
	return false
}

// IsGenericFollowedBy reports whether, standing on `<`, the balanced
// `<...>` run is immediately followed by a token in followKinds — used
// to decide a generic-method-invocation/generic-name reading of `<`
// against a less-than comparison. Bails out early (false) if the
// supposed argument list runs into `)`/`]` at depth zero, which can only
// happen in a real comparison, never inside a type-argument list.
func (p *Parser) IsGenericFollowedBy(followKinds ...lexer.TokenType) bool {
	pc := p.startPeek()
	if pc.Peek().Type != lexer.LT {
		return false
	}
	pc = pc.Next()
	depth := 1
	brackets := 0
	for i := 0; i < 128 && depth > 0; i++ {
		switch pc.Peek().Type {
		case lexer.LT:
			depth++
		case lexer.GT:
			depth--
		case lexer.LBRACK:
			brackets++
		case lexer.RBRACK:
			if brackets == 0 {
				return false
			}
			brackets--
		case lexer.RPAREN, lexer.SEMICOLON, lexer.LBRACE, lexer.EOF:
			return false
		case lexer.IDENT, lexer.COMMA, lexer.DOT, lexer.STAR, lexer.QUESTION:
			// permitted type-argument-list contents
		default:
			if !typeKeywords[pc.Peek().Type] {
				return false
			}
		}
		pc = pc.Next()
	}
	if depth != 0 {
		return false
	}
	for _, k := range followKinds {
		if pc.Peek().Type == k {
			return true
		}
	}
	return false
}

// IsShiftRight reports whether two adjacent `>` tokens at the current
// position should be read as a single `>>` shift-right operator, i.e.
// it is NOT resolving a nested generic-argument-list close. The lexer
// always emits bare `>` tokens (never SHR) so that nested generic
// closers `List<List<int>>` see two independent GT tokens; the parser
// calls this only from expression-operator position, never while
// closing a type-argument list, so the two readings never compete for
// the same call site.
func (p *Parser) IsShiftRight() bool {
	pc := p.startPeek()
	return pc.Peek().Type == lexer.GT && pc.Next().Peek().Type == lexer.GT
}

// IsShiftRightAssign reports whether the current position is a bare `>`
// immediately followed by `>=`, synthesizing the `>>=` compound-assignment
// operator the lexer never emits as one token — same reasoning as
// IsShiftRight: the lexer only ever produces single GT tokens so nested
// generic closers are never swallowed.
func (p *Parser) IsShiftRightAssign() bool {
	pc := p.startPeek()
	return pc.Peek().Type == lexer.GT && pc.Next().Peek().Type == lexer.GE
}

// IsAssignment reports whether tt is one of the assignment operators.
func IsAssignment(tt lexer.TokenType) bool {
	_, ok := assignmentOperators[tt]
	return ok
}

// IsLabel decides, standing on an IDENT, whether it begins a labeled
// statement (`Label: stmt`) as opposed to an expression statement that
// happens to start with an identifier — the only difference is whether
// the very next token is `:` (and not `::`, which the lexer already
// tokenizes as a single COLONCOLON so it can't be confused here).
func (p *Parser) IsLabel() bool {
	pc := p.startPeek()
	if pc.Peek().Type != lexer.IDENT {
		return false
	}
	return pc.Next().Peek().Type == lexer.COLON
}

// IsDims reports whether, standing on `[`, the bracket run is an array
// rank specifier (only commas until `]`) as opposed to an indexer
// argument list (anything else).
func (p *Parser) IsDims() bool {
	pc := p.startPeek()
	if pc.Peek().Type != lexer.LBRACK {
		return false
	}
	pc = pc.Next()
	for pc.Peek().Type == lexer.COMMA {
		pc = pc.Next()
	}
	return pc.Peek().Type == lexer.RBRACK
}

// IsPointerOrDims reports whether, standing on `*` or `[`, the token
// continues a type's pointer/array suffix chain (used while parsing a
// TypeReference's trailing decorations).
func (p *Parser) IsPointerOrDims() bool {
	return p.at(lexer.STAR) || p.IsDims()
}

// IsYieldStatement reports whether the contextual `yield` keyword at
// the current position begins a yield-return/yield-break statement
// (must be followed by `return` or `break`; otherwise `yield` is just
// an ordinary identifier used as a statement-expression target).
func (p *Parser) IsYieldStatement() bool {
	if !(p.at(lexer.IDENT) && p.cur_().Value == kwYield) {
		return false
	}
	nxt := p.peek(1)
	return nxt.Type == lexer.RETURN || nxt.Type == lexer.BREAK
}

// IdIsWhere/Get/Set/Add/Remove test the current token's spelling
// against the contextual keyword it names; all contextual keywords lex
// as plain IDENT (§9), so every grammatical use site must check .Value
// rather than .Type.
func (p *Parser) IdIsWhere() bool  { return p.at(lexer.IDENT) && p.cur_().Value == kwWhere }
func (p *Parser) IdIsGet() bool    { return p.at(lexer.IDENT) && p.cur_().Value == kwGet }
func (p *Parser) IdIsSet() bool    { return p.at(lexer.IDENT) && p.cur_().Value == kwSet }
func (p *Parser) IdIsAdd() bool    { return p.at(lexer.IDENT) && p.cur_().Value == kwAdd }
func (p *Parser) IdIsRemove() bool { return p.at(lexer.IDENT) && p.cur_().Value == kwRemove }
func (p *Parser) IdIsPartial() bool {
	return p.at(lexer.IDENT) && p.cur_().Value == kwPartial
}

// IsLocalAttrTarget reports whether spelling is one of the recognized
// attribute-section targets usable on a member/parameter declaration —
// real set membership, fixing a prior version that merely checked the
// spelling was non-empty (which vacuously accepted any identifier as a
// valid target).
func IsLocalAttrTarget(spelling string) bool { return localAttrTargets[spelling] }

// IsGlobalAttrTarget reports whether spelling is a valid compilation-
// unit-level attribute target (`module` or `assembly`).
func IsGlobalAttrTarget(spelling string) bool { return globalAttrTargets[spelling] }

// IsTypedCatch reports whether, standing on `catch`, the clause has a
// parenthesized exception-type specifier as opposed to a bare `catch
// { ... }` (general catch-all).
func (p *Parser) IsTypedCatch() bool {
	pc := p.startPeek()
	if pc.Peek().Type != lexer.CATCH {
		return false
	}
	return pc.Next().Peek().Type == lexer.LPAREN
}

// UnCheckedAndLBrace reports whether the current position is a
// `checked`/`unchecked` *statement* (as opposed to the expression form
// `checked(expr)`/`unchecked(expr)`): true only when the keyword is
// immediately followed by `{`. A prior version of this predicate was
// `checked || (unchecked && peek == '{')`, which misrouted a bare
// `checked(expr);` expression-statement into the statement-form parser
// because it accepted `checked` unconditionally regardless of what
// followed; both keywords now require the same `{` lookahead.
func (p *Parser) UnCheckedAndLBrace() bool {
	if !p.atAny(lexer.CHECKED, lexer.UNCHECKED) {
		return false
	}
	return p.peek(1).Type == lexer.LBRACE
}
