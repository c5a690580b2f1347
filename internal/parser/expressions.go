package parser

import (
	"github.com/d-rezzer/csharpparse/internal/ast"
	"github.com/d-rezzer/csharpparse/internal/lexer"
)

// parseExpression drives the precedence cascade down to minPrec, one
// function per level rather than a Pratt table: the grammar's levels
// don't share enough shape above unary to make a generic table worth
// it (ternary and assignment are right-associative and sit above
// everything else, while the binary levels are straightforward left-
// associative folds).
func (p *Parser) parseExpression(minPrec int) ast.Expression {
	if minPrec <= precAssignment {
		return p.parseAssignmentExpression()
	}
	return p.parseBinaryLevel(minPrec)
}

func (p *Parser) parseAssignmentExpression() ast.Expression {
	left := p.parseConditionalExpression()
	if p.IsShiftRightAssign() {
		b := p.startNodeAt(left)
		p.advance()
		p.advance()
		right := p.parseAssignmentExpression()
		a := &ast.AssignmentExpression{Target: left, Operator: ">>=", Value: right}
		b.finish(&a.BaseNode)
		return a
	}
	if sym, ok := assignmentOperators[p.cur_().Type]; ok {
		b := p.startNodeAt(left)
		p.advance()
		right := p.parseAssignmentExpression()
		a := &ast.AssignmentExpression{Target: left, Operator: sym, Value: right}
		b.finish(&a.BaseNode)
		return a
	}
	return left
}

func (p *Parser) parseConditionalExpression() ast.Expression {
	cond := p.parseBinaryLevel(precCoalesce)
	if p.at(lexer.QUESTION) {
		b := p.startNodeAt(cond)
		p.advance()
		then := p.parseAssignmentExpression()
		p.expectConsume(lexer.COLON)
		elseExpr := p.parseAssignmentExpression()
		c := &ast.ConditionalExpression{Condition: cond, Then: then, Else: elseExpr}
		b.finish(&c.BaseNode)
		return c
	}
	return cond
}

// binaryLevels lists, from lowest to highest precedence, the token set
// and operator spelling for every left-associative binary level, plus
// the next-higher level's entry point. `is`/`as` share the relational
// level (they produce IsExpression/AsExpression instead of
// BinaryExpression, handled specially below).
type binaryLevelOp struct {
	tt  lexer.TokenType
	sym string
}

var coalesceOps = []binaryLevelOp{{lexer.QUESTIONQ, "??"}}
var logicalOrOps = []binaryLevelOp{{lexer.OROR, "||"}}
var logicalAndOps = []binaryLevelOp{{lexer.ANDAND, "&&"}}
var bitwiseOrOps = []binaryLevelOp{{lexer.PIPE, "|"}}
var bitwiseXorOps = []binaryLevelOp{{lexer.CARET, "^"}}
var bitwiseAndOps = []binaryLevelOp{{lexer.AMP, "&"}}
var equalityOps = []binaryLevelOp{{lexer.EQEQ, "=="}, {lexer.NEQ, "!="}}
var relationalOps = []binaryLevelOp{{lexer.LT, "<"}, {lexer.LE, "<="}, {lexer.GE, ">="}}
var additiveOps = []binaryLevelOp{{lexer.PLUS, "+"}, {lexer.MINUS, "-"}}
var multiplicativeOps = []binaryLevelOp{{lexer.STAR, "*"}, {lexer.SLASH, "/"}, {lexer.PERCENT, "%"}}

func (p *Parser) parseBinaryLevel(minPrec int) ast.Expression {
	switch minPrec {
	case precCoalesce:
		return p.foldBinary(coalesceOps, precLogicalOr, p.parseBinaryLevel)
	case precLogicalOr:
		return p.foldBinary(logicalOrOps, precLogicalAnd, p.parseBinaryLevel)
	case precLogicalAnd:
		return p.foldBinary(logicalAndOps, precBitwiseOr, p.parseBinaryLevel)
	case precBitwiseOr:
		return p.foldBinary(bitwiseOrOps, precBitwiseXor, p.parseBinaryLevel)
	case precBitwiseXor:
		return p.foldBinary(bitwiseXorOps, precBitwiseAnd, p.parseBinaryLevel)
	case precBitwiseAnd:
		return p.foldBinary(bitwiseAndOps, precEquality, p.parseBinaryLevel)
	case precEquality:
		return p.foldBinary(equalityOps, precRelational, p.parseBinaryLevel)
	case precRelational:
		return p.parseRelational()
	case precShift:
		return p.parseShift()
	case precAdditive:
		return p.foldBinary(additiveOps, precMultiplicative, p.parseBinaryLevel)
	case precMultiplicative:
		return p.foldBinary(multiplicativeOps, precUnary, p.parseBinaryLevel)
	default:
		return p.parseUnaryExpression()
	}
}

func (p *Parser) foldBinary(ops []binaryLevelOp, nextLevel int, next func(int) ast.Expression) ast.Expression {
	left := next(nextLevel)
	for {
		matched := false
		for _, op := range ops {
			if p.cur_().Type == op.tt {
				b := p.startNodeAt(left)
				p.advance()
				right := next(nextLevel)
				be := &ast.BinaryExpression{Left: left, Operator: op.sym, Right: right}
				b.finish(&be.BaseNode)
				left = be
				matched = true
				break
			}
		}
		if !matched {
			return left
		}
	}
}

// parseRelational folds `<`, `<=`, `>=`, `is`, `as` at the relational
// level. A bare `>` is deliberately excluded here: outside a generic
// argument list it can only be the shift-right operator (handled one
// level down) since the grammar never allows a real greater-than
// comparison to be confused with a generic close at this call site
// (IsGenericFollowedBy is only consulted from primary-expression
// position, never here).
func (p *Parser) parseRelational() ast.Expression {
	left := p.parseShift()
	for {
		switch {
		case p.at(lexer.LT), p.at(lexer.LE), p.at(lexer.GE):
			sym := p.cur_().Value
			b := p.startNodeAt(left)
			p.advance()
			right := p.parseShift()
			be := &ast.BinaryExpression{Left: left, Operator: sym, Right: right}
			b.finish(&be.BaseNode)
			left = be
		case p.at(lexer.IS):
			b := p.startNodeAt(left)
			p.advance()
			typ := p.parseTypeReference()
			ie := &ast.IsExpression{Operand: left, Type: typ}
			b.finish(&ie.BaseNode)
			left = ie
		case p.at(lexer.AS):
			b := p.startNodeAt(left)
			p.advance()
			typ := p.parseTypeReference()
			ae := &ast.AsExpression{Operand: left, Type: typ}
			b.finish(&ae.BaseNode)
			left = ae
		default:
			return left
		}
	}
}

// parseShift folds the shift-right/shift-left level. Shift-right is
// synthesized from two adjacent bare `>` tokens via IsShiftRight, since
// the lexer never emits a single SHR token (kept that way so nested
// generic-argument-list closers like `List<List<int>>` always see two
// independent `>` tokens; see predicates.go's IsShiftRight doc).
func (p *Parser) parseShift() ast.Expression {
	left := p.parseAdditive()
	for {
		switch {
		case p.at(lexer.SHL):
			b := p.startNodeAt(left)
			p.advance()
			right := p.parseAdditive()
			be := &ast.BinaryExpression{Left: left, Operator: "<<", Right: right}
			b.finish(&be.BaseNode)
			left = be
		case p.IsShiftRight():
			b := p.startNodeAt(left)
			p.advance()
			p.advance()
			right := p.parseAdditive()
			be := &ast.BinaryExpression{Left: left, Operator: ">>", Right: right}
			b.finish(&be.BaseNode)
			left = be
		default:
			return left
		}
	}
}

func (p *Parser) parseAdditive() ast.Expression {
	return p.foldBinary(additiveOps, precMultiplicative, p.parseBinaryLevel)
}

// startNodeAt anchors a node's start position at an already-built left
// operand rather than the current token (binary/postfix productions
// start "mid-expression", so their span begins where the left operand
// began, not where the operator sits).
type nodeBuilderAt struct {
	p     *Parser
	start lexer.Position
}

func (p *Parser) startNodeAt(left ast.Node) nodeBuilderAt {
	return nodeBuilderAt{p: p, start: left.Pos()}
}

func (b nodeBuilderAt) finish(base *ast.BaseNode) {
	base.StartPosition = b.start
	base.SetEnd(b.p.lastEnd)
}

// parseUnaryExpression handles every prefix operator, falling through
// to postfix/primary parsing once none apply.
func (p *Parser) parseUnaryExpression() ast.Expression {
	switch p.cur_().Type {
	case lexer.BANG, lexer.TILDE, lexer.PLUS, lexer.MINUS, lexer.INC, lexer.DEC:
		b := p.startNode()
		op := p.advance().Value
		operand := p.parseUnaryExpression()
		u := &ast.UnaryExpression{Operator: op, Operand: operand}
		b.finish(&u.BaseNode)
		return u
	case lexer.AMP:
		b := p.startNode()
		p.advance()
		operand := p.parseUnaryExpression()
		u := &ast.UnaryExpression{Operator: "&", Operand: operand}
		b.finish(&u.BaseNode)
		return u
	case lexer.STAR:
		b := p.startNode()
		p.advance()
		operand := p.parseUnaryExpression()
		u := &ast.UnaryExpression{Operator: "*", Operand: operand}
		b.finish(&u.BaseNode)
		return u
	}
	if p.IsTypeCast() {
		b := p.startNode()
		p.expectConsume(lexer.LPAREN)
		typ := p.parseTypeReference()
		p.expectConsume(lexer.RPAREN)
		operand := p.parseUnaryExpression()
		c := &ast.CastExpression{Type: typ, Operand: operand}
		b.finish(&c.BaseNode)
		return c
	}
	return p.parsePostfixExpression()
}

// parseGenericArgumentList parses a `<T, U>` argument list, consuming the
// closing `>` (splitting a bare `>>` token pair via IsShiftRight the same
// way the type-reference parser closes nested generics).
func (p *Parser) parseGenericArgumentList() []*ast.TypeReference {
	p.advance() // '<'
	var args []*ast.TypeReference
	for !p.at(lexer.GT) {
		args = append(args, p.parseTypeReference())
		if !p.at(lexer.COMMA) {
			break
		}
		p.advance()
	}
	if p.IsShiftRight() {
		p.advance()
	} else {
		p.expectConsume(lexer.GT)
	}
	return args
}

// parsePostfixExpression parses a primary expression followed by any
// run of `.`/`?.`/`->`/`(...)`/`[...]`/`++`/`--` postfix operators, plus
// generic-argument lists ahead of a member invocation (`a.b.M<int>(x)`).
func (p *Parser) parsePostfixExpression() ast.Expression {
	expr := p.parsePrimaryExpression()
	for {
		switch {
		case p.at(lexer.DOT):
			b := p.startNodeAt(expr)
			p.advance()
			name := p.expectIdentifier().Value
			m := &ast.MemberAccessExpression{Target: expr, Name: name}
			if p.at(lexer.LT) && p.IsGenericFollowedBy(lexer.LPAREN) {
				m.GenericArgs = p.parseGenericArgumentList()
			}
			b.finish(&m.BaseNode)
			expr = m
		case p.at(lexer.QUESTIONDOT):
			b := p.startNodeAt(expr)
			p.advance()
			name := p.expectIdentifier().Value
			m := &ast.MemberAccessExpression{Target: expr, Name: name, IsNullCond: true}
			if p.at(lexer.LT) && p.IsGenericFollowedBy(lexer.LPAREN) {
				m.GenericArgs = p.parseGenericArgumentList()
			}
			b.finish(&m.BaseNode)
			expr = m
		case p.at(lexer.ARROW):
			b := p.startNodeAt(expr)
			p.advance()
			name := p.expectIdentifier().Value
			m := &ast.PointerMemberAccessExpression{Target: expr, Name: name}
			b.finish(&m.BaseNode)
			expr = m
		case p.at(lexer.LPAREN):
			b := p.startNodeAt(expr)
			p.advance()
			var args []ast.Expression
			for !p.at(lexer.RPAREN) && !p.at(lexer.EOF) {
				args = append(args, p.parseExpression(precAssignment))
				if !p.weakSeparator(lexer.COMMA, lexer.RPAREN) {
					break
				}
			}
			p.expectConsume(lexer.RPAREN)
			inv := &ast.InvocationExpression{Callee: expr, Arguments: args}
			b.finish(&inv.BaseNode)
			expr = inv
		case p.at(lexer.LBRACK) && !p.IsDims():
			b := p.startNodeAt(expr)
			p.advance()
			var args []ast.Expression
			for !p.at(lexer.RBRACK) && !p.at(lexer.EOF) {
				args = append(args, p.parseExpression(precAssignment))
				if !p.weakSeparator(lexer.COMMA, lexer.RBRACK) {
					break
				}
			}
			p.expectConsume(lexer.RBRACK)
			ix := &ast.IndexerExpression{Target: expr, Arguments: args}
			b.finish(&ix.BaseNode)
			expr = ix
		case p.at(lexer.INC), p.at(lexer.DEC):
			b := p.startNodeAt(expr)
			op := p.advance().Value
			pf := &ast.PostfixExpression{Operator: op, Operand: expr}
			b.finish(&pf.BaseNode)
			expr = pf
		default:
			return expr
		}
	}
}

// parsePrimaryExpression parses every primary-expression form:
// literals, identifiers (including generic-name/invocation), `this`/
// `base`, parenthesized expressions, `new`, `typeof`/`sizeof`,
// `checked`/`unchecked` expression forms, `stackalloc`, `default`, and
// anonymous methods.
func (p *Parser) parsePrimaryExpression() ast.Expression {
	b := p.startNode()
	tok := p.cur_()

	switch tok.Type {
	case lexer.INT:
		p.advance()
		n := &ast.IntegerLiteral{Value: tok.Literal.(int64)}
		b.finish(&n.BaseNode)
		return n
	case lexer.FLOAT:
		p.advance()
		n := &ast.FloatLiteral{Value: tok.Literal.(float64)}
		b.finish(&n.BaseNode)
		return n
	case lexer.STRING:
		p.advance()
		n := &ast.StringLiteral{Value: tok.Literal.(string)}
		b.finish(&n.BaseNode)
		return n
	case lexer.CHAR:
		p.advance()
		r, _ := tok.Literal.(rune)
		n := &ast.CharLiteral{Value: r}
		b.finish(&n.BaseNode)
		return n
	case lexer.TRUE, lexer.FALSE:
		p.advance()
		n := &ast.BoolLiteral{Value: tok.Type == lexer.TRUE}
		b.finish(&n.BaseNode)
		return n
	case lexer.NULL:
		p.advance()
		n := &ast.NullLiteral{}
		b.finish(&n.BaseNode)
		return n
	case lexer.THIS:
		p.advance()
		n := &ast.ThisExpression{}
		b.finish(&n.BaseNode)
		return n
	case lexer.BASE:
		p.advance()
		n := &ast.BaseExpression{}
		b.finish(&n.BaseNode)
		return n
	case lexer.DEFAULT:
		p.advance()
		n := &ast.DefaultValueExpression{}
		if p.at(lexer.LPAREN) {
			p.advance()
			n.Type = p.parseTypeReference()
			p.expectConsume(lexer.RPAREN)
		}
		b.finish(&n.BaseNode)
		return n
	case lexer.TYPEOF:
		p.advance()
		p.expectConsume(lexer.LPAREN)
		n := &ast.TypeofExpression{Type: p.parseTypeReference()}
		p.expectConsume(lexer.RPAREN)
		b.finish(&n.BaseNode)
		return n
	case lexer.SIZEOF:
		p.advance()
		p.expectConsume(lexer.LPAREN)
		n := &ast.SizeofExpression{Type: p.parseTypeReference()}
		p.expectConsume(lexer.RPAREN)
		b.finish(&n.BaseNode)
		return n
	case lexer.STACKALLOC:
		p.advance()
		typ := p.parseTypeReference()
		p.expectConsume(lexer.LBRACK)
		length := p.parseExpression(lowest)
		p.expectConsume(lexer.RBRACK)
		n := &ast.StackallocExpression{Type: typ, Length: length}
		b.finish(&n.BaseNode)
		return n
	case lexer.CHECKED:
		p.advance()
		p.expectConsume(lexer.LPAREN)
		inner := p.parseExpression(lowest)
		p.expectConsume(lexer.RPAREN)
		n := &ast.CheckedExpression{Inner: inner}
		b.finish(&n.BaseNode)
		return n
	case lexer.UNCHECKED:
		p.advance()
		p.expectConsume(lexer.LPAREN)
		inner := p.parseExpression(lowest)
		p.expectConsume(lexer.RPAREN)
		n := &ast.UncheckedExpression{Inner: inner}
		b.finish(&n.BaseNode)
		return n
	case lexer.DELEGATE:
		return p.parseAnonymousMethod(b)
	case lexer.NEW:
		return p.parseNewExpression(b)
	case lexer.LPAREN:
		p.advance()
		inner := p.parseExpression(lowest)
		p.expectConsume(lexer.RPAREN)
		n := &ast.ParenthesizedExpression{Inner: inner}
		b.finish(&n.BaseNode)
		return n
	case lexer.IDENT:
		name := p.advance().Value
		if p.at(lexer.LT) && p.IsGenericFollowedBy(lexer.LPAREN) {
			args := p.parseGenericArgumentList()
			n := &ast.GenericNameExpression{Name: name, Args: args}
			b.finish(&n.BaseNode)
			return n
		}
		n := &ast.Identifier{Name: name}
		b.finish(&n.BaseNode)
		return n
	}

	if typeKeywords[tok.Type] {
		typ := p.parseTypeReference()
		n := &ast.TypeReferenceExpression{Type: typ}
		b.finish(&n.BaseNode)
		return n
	}

	p.synErr("expression")
	p.advance()
	n := &ast.Identifier{Name: "<error>"}
	b.finish(&n.BaseNode)
	return n
}

func (p *Parser) parseAnonymousMethod(b nodeBuilder) ast.Expression {
	p.advance() // 'delegate'
	n := &ast.AnonymousMethodExpression{}
	if p.at(lexer.LPAREN) {
		n.Parameters = p.parseParameterList()
	}
	n.Body = p.parseBlockStatement()
	b.finish(&n.BaseNode)
	return n
}

func (p *Parser) parseNewExpression(b nodeBuilder) ast.Expression {
	p.advance() // 'new'
	typ := p.parseNewTargetType()

	if p.at(lexer.LBRACK) {
		arr := &ast.ArrayCreationExpression{ElementType: typ}
		p.advance()
		if !p.at(lexer.RBRACK) {
			arr.Dims = append(arr.Dims, p.parseExpression(lowest))
			for p.at(lexer.COMMA) {
				p.advance()
				arr.Dims = append(arr.Dims, p.parseExpression(lowest))
			}
		}
		p.expectConsume(lexer.RBRACK)
		if p.at(lexer.LBRACE) {
			arr.Initializer = p.parseArrayInitializer()
		}
		b.finish(&arr.BaseNode)
		return arr
	}

	oc := &ast.ObjectCreationExpression{Type: typ}
	if p.at(lexer.LPAREN) {
		p.advance()
		for !p.at(lexer.RPAREN) && !p.at(lexer.EOF) {
			oc.Arguments = append(oc.Arguments, p.parseExpression(precAssignment))
			if !p.weakSeparator(lexer.COMMA, lexer.RPAREN) {
				break
			}
		}
		p.expectConsume(lexer.RPAREN)
	}
	if p.at(lexer.LBRACE) {
		p.advance()
		for !p.at(lexer.RBRACE) && !p.at(lexer.EOF) {
			oc.Initializer = append(oc.Initializer, p.parseExpression(precAssignment))
			if !p.weakSeparator(lexer.COMMA, lexer.RBRACE) {
				break
			}
		}
		p.expectConsume(lexer.RBRACE)
	}
	b.finish(&oc.BaseNode)
	return oc
}

// parseNewTargetType parses the type name after `new`, stopping short
// of any `[` or `(` suffix so the caller can tell an array-creation
// form from an object-creation form.
func (p *Parser) parseNewTargetType() *ast.TypeReference {
	tb := p.startNode()
	tr := &ast.TypeReference{}
	if typeKeywords[p.cur_().Type] {
		tr.Name = p.cur_().Value
		p.advance()
	} else {
		tr.Name = p.expectIdentifier().Value
		for p.at(lexer.DOT) {
			p.advance()
			tr.Name += "." + p.expectIdentifier().Value
		}
	}
	if p.at(lexer.LT) && p.IsGenericFollowedBy(lexer.LPAREN, lexer.LBRACE, lexer.LBRACK) {
		p.advance()
		for {
			tr.GenericArgs = append(tr.GenericArgs, p.parseTypeReference())
			if !p.at(lexer.COMMA) {
				break
			}
			p.advance()
		}
		if p.IsShiftRight() {
			p.advance()
		} else {
			p.expectConsume(lexer.GT)
		}
	}
	tb.finish(&tr.BaseNode)
	return tr
}

func (p *Parser) parseArrayInitializer() *ast.ArrayInitializer {
	b := p.startNode()
	p.expectConsume(lexer.LBRACE)
	ai := &ast.ArrayInitializer{}
	for !p.at(lexer.RBRACE) && !p.at(lexer.EOF) {
		if p.at(lexer.LBRACE) {
			ai.Elements = append(ai.Elements, p.parseArrayInitializer())
		} else {
			ai.Elements = append(ai.Elements, p.parseExpression(precAssignment))
		}
		if !p.weakSeparator(lexer.COMMA, lexer.RBRACE) {
			break
		}
	}
	p.expectConsume(lexer.RBRACE)
	b.finish(&ai.BaseNode)
	return ai
}
