package parser

import (
	"github.com/d-rezzer/csharpparse/internal/ast"
	"github.com/d-rezzer/csharpparse/internal/lexer"
)

// parseBlockStatement is `{ statement... }`.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	b := p.startNode()
	p.expectConsume(lexer.LBRACE)
	blk := &ast.BlockStatement{}
	p.pushContainer(blk)
	for !p.at(lexer.RBRACE) && !p.at(lexer.EOF) {
		before := p.cur_()
		blk.Statements = append(blk.Statements, p.parseStatement())
		if p.cur_() == before {
			p.synErr("statement")
			p.advance()
		}
	}
	p.popContainer()
	p.expectConsume(lexer.RBRACE)
	b.finish(&blk.BaseNode)
	return blk
}

// parseStatement is the 20-way embedded-statement dispatch (§4.3).
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.at(lexer.LBRACE):
		return p.parseBlockStatement()
	case p.at(lexer.SEMICOLON):
		return p.parseEmptyStatement()
	case p.at(lexer.IF):
		return p.parseIfStatement()
	case p.at(lexer.SWITCH):
		return p.parseSwitchStatement()
	case p.at(lexer.WHILE):
		return p.parseWhileStatement()
	case p.at(lexer.DO):
		return p.parseDoWhileStatement()
	case p.at(lexer.FOR):
		return p.parseForStatement()
	case p.at(lexer.FOREACH):
		return p.parseForEachStatement()
	case p.at(lexer.BREAK):
		return p.parseBreakStatement()
	case p.at(lexer.CONTINUE):
		return p.parseContinueStatement()
	case p.at(lexer.GOTO):
		return p.parseGotoStatement()
	case p.at(lexer.RETURN):
		return p.parseReturnStatement()
	case p.at(lexer.THROW):
		return p.parseThrowStatement()
	case p.at(lexer.TRY):
		return p.parseTryStatement()
	case p.at(lexer.LOCK):
		return p.parseLockStatement()
	case p.at(lexer.USING):
		return p.parseUsingStatement()
	case p.at(lexer.UNSAFE):
		return p.parseUnsafeStatement()
	case p.at(lexer.FIXED):
		return p.parseFixedStatement()
	case p.UnCheckedAndLBrace() && p.at(lexer.CHECKED):
		return p.parseCheckedStatement()
	case p.UnCheckedAndLBrace() && p.at(lexer.UNCHECKED):
		return p.parseUncheckedStatement()
	case p.IsYieldStatement():
		return p.parseYieldStatement()
	case p.IsLabel():
		return p.parseLabeledStatement()
	case p.at(lexer.CONST):
		return p.parseLocalConstStatement()
	case p.IsLocalVarDecl():
		return p.parseLocalVarDeclStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseEmptyStatement() ast.Statement {
	b := p.startNode()
	p.advance()
	s := &ast.EmptyStatement{}
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseIfStatement() ast.Statement {
	b := p.startNode()
	p.advance()
	p.expectConsume(lexer.LPAREN)
	cond := p.parseExpression(lowest)
	p.expectConsume(lexer.RPAREN)
	then := p.parseStatement()
	s := &ast.IfStatement{Condition: cond, Then: then}
	if p.at(lexer.ELSE) {
		p.advance()
		s.Else = p.parseStatement()
	}
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseSwitchStatement() ast.Statement {
	b := p.startNode()
	p.advance()
	p.expectConsume(lexer.LPAREN)
	subject := p.parseExpression(lowest)
	p.expectConsume(lexer.RPAREN)
	p.expectConsume(lexer.LBRACE)
	s := &ast.SwitchStatement{Subject: subject}
	for !p.at(lexer.RBRACE) && !p.at(lexer.EOF) {
		s.Sections = append(s.Sections, p.parseSwitchSection())
	}
	p.expectConsume(lexer.RBRACE)
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseSwitchSection() *ast.SwitchSection {
	b := p.startNode()
	sec := &ast.SwitchSection{}
	for p.atAny(lexer.CASE, lexer.DEFAULT) {
		if p.at(lexer.DEFAULT) {
			p.advance()
			sec.IsDefault = true
		} else {
			p.advance()
			sec.Labels = append(sec.Labels, p.parseExpression(lowest))
		}
		p.expectConsume(lexer.COLON)
	}
	for !p.atAny(lexer.CASE, lexer.DEFAULT, lexer.RBRACE, lexer.EOF) {
		sec.Statements = append(sec.Statements, p.parseStatement())
	}
	b.finish(&sec.BaseNode)
	return sec
}

func (p *Parser) parseWhileStatement() ast.Statement {
	b := p.startNode()
	p.advance()
	p.expectConsume(lexer.LPAREN)
	cond := p.parseExpression(lowest)
	p.expectConsume(lexer.RPAREN)
	s := &ast.WhileStatement{Condition: cond, Body: p.parseStatement()}
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseDoWhileStatement() ast.Statement {
	b := p.startNode()
	p.advance()
	body := p.parseStatement()
	p.expectConsume(lexer.WHILE)
	p.expectConsume(lexer.LPAREN)
	cond := p.parseExpression(lowest)
	p.expectConsume(lexer.RPAREN)
	p.expectConsume(lexer.SEMICOLON)
	s := &ast.DoWhileStatement{Body: body, Condition: cond}
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseForStatement() ast.Statement {
	b := p.startNode()
	p.advance()
	p.expectConsume(lexer.LPAREN)
	s := &ast.ForStatement{}
	if !p.at(lexer.SEMICOLON) {
		if p.IsLocalVarDecl() {
			s.Init = append(s.Init, p.parseLocalVarDeclNoSemi())
		} else {
			s.Init = append(s.Init, p.parseExpression(lowest))
			for p.at(lexer.COMMA) {
				p.advance()
				s.Init = append(s.Init, p.parseExpression(lowest))
			}
		}
	}
	p.expectConsume(lexer.SEMICOLON)
	if !p.at(lexer.SEMICOLON) {
		s.Condition = p.parseExpression(lowest)
	}
	p.expectConsume(lexer.SEMICOLON)
	if !p.at(lexer.RPAREN) {
		s.Iterators = append(s.Iterators, p.parseExpression(lowest))
		for p.at(lexer.COMMA) {
			p.advance()
			s.Iterators = append(s.Iterators, p.parseExpression(lowest))
		}
	}
	p.expectConsume(lexer.RPAREN)
	s.Body = p.parseStatement()
	b.finish(&s.BaseNode)
	return s
}

// parseLocalVarDeclNoSemi parses `Type name = init, ...` without the
// trailing `;`, for use in a `for` statement's initializer clause.
func (p *Parser) parseLocalVarDeclNoSemi() *ast.LocalVarDeclStatement {
	b := p.startNode()
	s := &ast.LocalVarDeclStatement{}
	if p.at(lexer.VAR) {
		s.VarIsImplicit = true
		p.advance()
	} else {
		s.Type = p.parseTypeReference()
	}
	s.Declarators = append(s.Declarators, p.parseVariableDeclarator())
	for p.at(lexer.COMMA) {
		p.advance()
		s.Declarators = append(s.Declarators, p.parseVariableDeclarator())
	}
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseForEachStatement() ast.Statement {
	b := p.startNode()
	p.advance()
	p.expectConsume(lexer.LPAREN)
	s := &ast.ForEachStatement{}
	if p.at(lexer.VAR) {
		s.VarIsImplicit = true
		p.advance()
	} else {
		s.VarType = p.parseTypeReference()
	}
	s.VarName = p.expectIdentifier().Value
	p.expectConsume(lexer.IN)
	s.Collection = p.parseExpression(lowest)
	p.expectConsume(lexer.RPAREN)
	s.Body = p.parseStatement()
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseBreakStatement() ast.Statement {
	b := p.startNode()
	p.advance()
	p.expectConsume(lexer.SEMICOLON)
	s := &ast.BreakStatement{}
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseContinueStatement() ast.Statement {
	b := p.startNode()
	p.advance()
	p.expectConsume(lexer.SEMICOLON)
	s := &ast.ContinueStatement{}
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseGotoStatement() ast.Statement {
	b := p.startNode()
	p.advance()
	s := &ast.GotoStatement{}
	switch {
	case p.at(lexer.CASE):
		p.advance()
		s.CaseExpr = p.parseExpression(lowest)
	case p.at(lexer.DEFAULT):
		p.advance()
		s.IsDefault = true
	default:
		s.Label = p.expectIdentifier().Value
	}
	p.expectConsume(lexer.SEMICOLON)
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseReturnStatement() ast.Statement {
	b := p.startNode()
	p.advance()
	s := &ast.ReturnStatement{}
	if !p.at(lexer.SEMICOLON) {
		s.Value = p.parseExpression(lowest)
	}
	p.expectConsume(lexer.SEMICOLON)
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseThrowStatement() ast.Statement {
	b := p.startNode()
	p.advance()
	s := &ast.ThrowStatement{}
	if !p.at(lexer.SEMICOLON) {
		s.Value = p.parseExpression(lowest)
	}
	p.expectConsume(lexer.SEMICOLON)
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseTryStatement() ast.Statement {
	b := p.startNode()
	p.advance()
	s := &ast.TryStatement{Body: p.parseBlockStatement()}
	for p.IsTypedCatch() || p.at(lexer.CATCH) {
		s.Catches = append(s.Catches, p.parseCatchClause())
	}
	if p.at(lexer.FINALLY) {
		p.advance()
		s.Finally = p.parseBlockStatement()
	}
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseCatchClause() *ast.CatchClause {
	b := p.startNode()
	p.expectConsume(lexer.CATCH)
	c := &ast.CatchClause{}
	if p.at(lexer.LPAREN) {
		p.advance()
		c.Type = p.parseTypeReference()
		if p.at(lexer.IDENT) {
			c.Name = p.advance().Value
		}
		p.expectConsume(lexer.RPAREN)
	}
	c.Body = p.parseBlockStatement()
	b.finish(&c.BaseNode)
	return c
}

func (p *Parser) parseLockStatement() ast.Statement {
	b := p.startNode()
	p.advance()
	p.expectConsume(lexer.LPAREN)
	expr := p.parseExpression(lowest)
	p.expectConsume(lexer.RPAREN)
	s := &ast.LockStatement{Expr: expr, Body: p.parseStatement()}
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseUsingStatement() ast.Statement {
	b := p.startNode()
	p.advance()
	p.expectConsume(lexer.LPAREN)
	s := &ast.UsingStatement{}
	if p.IsLocalVarDecl() {
		s.Resource = p.parseLocalVarDeclNoSemi()
	} else {
		s.Resource = p.parseExpression(lowest)
	}
	p.expectConsume(lexer.RPAREN)
	s.Body = p.parseStatement()
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseUnsafeStatement() ast.Statement {
	b := p.startNode()
	p.advance()
	s := &ast.UnsafeStatement{Body: p.parseBlockStatement()}
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseFixedStatement() ast.Statement {
	b := p.startNode()
	p.advance()
	p.expectConsume(lexer.LPAREN)
	s := &ast.FixedStatement{Type: p.parseTypeReference()}
	if s.Type.PointerNesting == 0 {
		p.errf("fixed statement requires a pointer type")
	}
	s.Declarators = append(s.Declarators, p.parseVariableDeclarator())
	for p.at(lexer.COMMA) {
		p.advance()
		s.Declarators = append(s.Declarators, p.parseVariableDeclarator())
	}
	p.expectConsume(lexer.RPAREN)
	s.Body = p.parseStatement()
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseCheckedStatement() ast.Statement {
	b := p.startNode()
	p.advance()
	s := &ast.CheckedStatement{Body: p.parseBlockStatement()}
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseUncheckedStatement() ast.Statement {
	b := p.startNode()
	p.advance()
	s := &ast.UncheckedStatement{Body: p.parseBlockStatement()}
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseYieldStatement() ast.Statement {
	b := p.startNode()
	p.advance() // 'yield'
	if p.at(lexer.RETURN) {
		p.advance()
		s := &ast.YieldReturnStatement{Value: p.parseExpression(lowest)}
		p.expectConsume(lexer.SEMICOLON)
		b.finish(&s.BaseNode)
		return s
	}
	p.advance() // 'break'
	p.expectConsume(lexer.SEMICOLON)
	s := &ast.YieldBreakStatement{}
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseLabeledStatement() ast.Statement {
	b := p.startNode()
	label := p.advance().Value
	p.expectConsume(lexer.COLON)
	s := &ast.LabeledStatement{Label: label, Stmt: p.parseStatement()}
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseLocalConstStatement() ast.Statement {
	b := p.startNode()
	p.advance() // 'const'
	s := &ast.LocalVarDeclStatement{IsConst: true, Type: p.parseTypeReference()}
	s.Declarators = append(s.Declarators, p.parseVariableDeclarator())
	for p.at(lexer.COMMA) {
		p.advance()
		s.Declarators = append(s.Declarators, p.parseVariableDeclarator())
	}
	p.expectConsume(lexer.SEMICOLON)
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseLocalVarDeclStatement() ast.Statement {
	b := p.startNode()
	s := p.parseLocalVarDeclNoSemi()
	p.expectConsume(lexer.SEMICOLON)
	b.finish(&s.BaseNode)
	return s
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	b := p.startNode()
	expr := p.parseExpression(lowest)
	p.expectConsume(lexer.SEMICOLON)
	s := &ast.ExpressionStatement{Expr: expr}
	b.finish(&s.BaseNode)
	return s
}
