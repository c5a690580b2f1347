package parser

import (
	"github.com/d-rezzer/csharpparse/internal/ast"
	"github.com/d-rezzer/csharpparse/internal/lexer"
)

// parseMember dispatches on the lookahead to one of the struct/class/
// interface member productions and attaches the result to container.
func (p *Parser) parseMember(container ast.Container) {
	attrs := p.parseAttributeSections()

	switch p.cur_().Type {
	case lexer.CLASS, lexer.STRUCT, lexer.INTERFACE, lexer.ENUM, lexer.DELEGATE:
		container.AddChild(p.parseTypeDecl(attrs))
		return
	case lexer.TILDE:
		container.AddChild(p.parseDestructor(attrs))
		return
	}

	mods := p.parseModifiers()

	switch p.cur_().Type {
	case lexer.CLASS, lexer.STRUCT, lexer.INTERFACE, lexer.ENUM, lexer.DELEGATE:
		td := p.parseTypeDecl(attrs)
		td.Modifiers = mods
		container.AddChild(td)
		return
	case lexer.EVENT:
		container.AddChild(p.parseEventDecl(attrs, mods))
		return
	case lexer.IMPLICIT, lexer.EXPLICIT:
		isImplicit := p.at(lexer.IMPLICIT)
		p.advance()
		p.expectConsume(lexer.OPERATOR)
		container.AddChild(p.parseConversionOperatorDecl(attrs, mods, isImplicit))
		return
	}

	// Constructor: Identifier matching the enclosing type name,
	// immediately followed by `(`. The assembler's container stack
	// doesn't expose the enclosing type's name cheaply here, so this
	// grammar accepts *any* `Ident(` at member position with no return
	// type preceding it as a constructor — correct because a method
	// declaration always has a return type token before its name.
	if p.at(lexer.IDENT) && p.peek(1).Type == lexer.LPAREN {
		container.AddChild(p.parseConstructorDecl(attrs, mods))
		return
	}

	typ := p.parseTypeReference()

	// Operator: `Type operator sym(...) { body }` — the return type is
	// parsed generically above, so the `operator` keyword can only be
	// recognized once it's already the current token.
	if p.at(lexer.OPERATOR) {
		container.AddChild(p.parseOperatorDecl(attrs, mods, typ))
		return
	}

	// Indexer: `Type this [ params ] { accessors }`.
	if p.at(lexer.THIS) {
		container.AddChild(p.parseIndexerDecl(attrs, mods, typ))
		return
	}

	name := p.expectIdentifier().Value

	switch {
	case p.at(lexer.LPAREN), p.at(lexer.LT):
		container.AddChild(p.parseMethodDecl(attrs, mods, typ, name))
	case p.at(lexer.LBRACE):
		container.AddChild(p.parsePropertyDecl(attrs, mods, typ, name))
	default:
		if mods.Has(ast.ModConst) {
			container.AddChild(p.parseConstDeclTail(attrs, mods, typ, name))
		} else {
			container.AddChild(p.parseFieldDeclTail(attrs, mods, typ, name))
		}
	}
}

func (p *Parser) parseParameterList() []*ast.ParameterDecl {
	p.expectConsume(lexer.LPAREN)
	var out []*ast.ParameterDecl
	for !p.at(lexer.RPAREN) && !p.at(lexer.EOF) {
		out = append(out, p.parseParameter())
		if !p.weakSeparator(lexer.COMMA, lexer.RPAREN) {
			break
		}
	}
	p.expectConsume(lexer.RPAREN)
	return out
}

func (p *Parser) parseParameter() *ast.ParameterDecl {
	b := p.startNode()
	pd := &ast.ParameterDecl{Attributes: p.parseAttributeSections()}
	if p.atAny(lexer.REF, lexer.OUT, lexer.PARAMS) {
		pd.Modifier = p.cur_().Value
		p.advance()
	}
	pd.Type = p.parseTypeReference()
	pd.Name = p.expectIdentifier().Value
	if p.at(lexer.ASSIGN) {
		p.advance()
		pd.Default = p.parseExpression(precAssignment)
	}
	b.finish(&pd.BaseNode)
	return pd
}

func (p *Parser) parseMethodDecl(attrs []*ast.AttributeSection, mods ast.ModifierSet, retType *ast.TypeReference, name string) *ast.MethodDecl {
	md := &ast.MethodDecl{Attributes: attrs, Modifiers: mods, ReturnType: retType, Name: name}
	md.TemplateParams = p.parseOptionalTemplateParams()
	md.Parameters = p.parseParameterList()
	md.Constraints = p.parseOptionalConstraintClauses()
	if p.at(lexer.LBRACE) {
		md.Body = p.parseBlockStatement()
	} else {
		p.expectConsume(lexer.SEMICOLON)
	}
	return md
}

func (p *Parser) parseConstructorDecl(attrs []*ast.AttributeSection, mods ast.ModifierSet) *ast.ConstructorDecl {
	b := p.startNode()
	cd := &ast.ConstructorDecl{Attributes: attrs, Modifiers: mods, Name: p.expectIdentifier().Value}
	cd.Parameters = p.parseParameterList()
	if p.at(lexer.COLON) {
		p.advance()
		if p.at(lexer.BASE) {
			cd.InitializerKind = "base"
			p.advance()
		} else {
			p.expectConsume(lexer.THIS)
			cd.InitializerKind = "this"
		}
		p.expectConsume(lexer.LPAREN)
		for !p.at(lexer.RPAREN) && !p.at(lexer.EOF) {
			cd.InitializerArgs = append(cd.InitializerArgs, p.parseExpression(precAssignment))
			if !p.weakSeparator(lexer.COMMA, lexer.RPAREN) {
				break
			}
		}
		p.expectConsume(lexer.RPAREN)
	}
	cd.Body = p.parseBlockStatement()
	b.finish(&cd.BaseNode)
	return cd
}

func (p *Parser) parseDestructor(_ []*ast.AttributeSection) *ast.DestructorDecl {
	b := p.startNode()
	p.expectConsume(lexer.TILDE)
	dd := &ast.DestructorDecl{Name: p.expectIdentifier().Value}
	p.expectConsume(lexer.LPAREN)
	p.expectConsume(lexer.RPAREN)
	dd.Body = p.parseBlockStatement()
	b.finish(&dd.BaseNode)
	return dd
}

func (p *Parser) parseAccessorDecls() []*ast.AccessorDecl {
	p.expectConsume(lexer.LBRACE)
	var out []*ast.AccessorDecl
	for !p.at(lexer.RBRACE) && !p.at(lexer.EOF) {
		b := p.startNode()
		acc := &ast.AccessorDecl{Modifiers: p.parseModifiers()}
		switch {
		case p.IdIsGet():
			acc.Kind = ast.AccessorGet
		case p.IdIsSet():
			acc.Kind = ast.AccessorSet
		case p.IdIsAdd():
			acc.Kind = ast.AccessorAdd
		case p.IdIsRemove():
			acc.Kind = ast.AccessorRemove
		default:
			p.synErr("get/set/add/remove accessor")
			p.synchronize(SyncBlockClosers)
			return out
		}
		p.advance()
		if p.at(lexer.LBRACE) {
			acc.Body = p.parseBlockStatement()
		} else {
			p.expectConsume(lexer.SEMICOLON)
		}
		b.finish(&acc.BaseNode)
		out = append(out, acc)
	}
	p.expectConsume(lexer.RBRACE)
	return out
}

func (p *Parser) parsePropertyDecl(attrs []*ast.AttributeSection, mods ast.ModifierSet, typ *ast.TypeReference, name string) *ast.PropertyDecl {
	pd := &ast.PropertyDecl{Attributes: attrs, Modifiers: mods, Type: typ, Name: name}
	pd.Accessors = p.parseAccessorDecls()
	if p.at(lexer.ASSIGN) {
		p.advance()
		pd.Initializer = p.parseExpression(precAssignment)
		p.expectConsume(lexer.SEMICOLON)
	}
	return pd
}

func (p *Parser) parseIndexerDecl(attrs []*ast.AttributeSection, mods ast.ModifierSet, typ *ast.TypeReference) *ast.IndexerDecl {
	p.advance() // 'this'
	id := &ast.IndexerDecl{Attributes: attrs, Modifiers: mods, Type: typ}
	p.expectConsume(lexer.LBRACK)
	for !p.at(lexer.RBRACK) && !p.at(lexer.EOF) {
		id.Parameters = append(id.Parameters, p.parseParameter())
		if !p.weakSeparator(lexer.COMMA, lexer.RBRACK) {
			break
		}
	}
	p.expectConsume(lexer.RBRACK)
	id.Accessors = p.parseAccessorDecls()
	return id
}

func (p *Parser) parseEventDecl(attrs []*ast.AttributeSection, mods ast.ModifierSet) *ast.EventDecl {
	p.advance() // 'event'
	ed := &ast.EventDecl{Attributes: attrs, Modifiers: mods, Type: p.parseTypeReference()}
	ed.Name = p.expectIdentifier().Value
	if p.at(lexer.LBRACE) {
		ed.Accessors = p.parseAccessorDecls()
	} else {
		p.expectConsume(lexer.SEMICOLON)
	}
	return ed
}

func (p *Parser) parseOperatorDecl(attrs []*ast.AttributeSection, mods ast.ModifierSet, retType *ast.TypeReference) *ast.OperatorDecl {
	od := &ast.OperatorDecl{
		Attributes: attrs, Modifiers: mods, Kind: ast.OperatorKindBinaryOrUnary,
		ReturnType: retType,
	}
	p.expectConsume(lexer.OPERATOR)
	od.OperatorSym = p.parseOverloadableOperatorSymbol()
	od.Parameters = p.parseParameterList()
	od.Body = p.parseBlockStatement()
	return od
}

func (p *Parser) parseConversionOperatorDecl(attrs []*ast.AttributeSection, mods ast.ModifierSet, isImplicit bool) *ast.OperatorDecl {
	od := &ast.OperatorDecl{
		Attributes: attrs, Modifiers: mods, Kind: ast.OperatorKindConversion,
		IsImplicit: isImplicit, ReturnType: p.parseTypeReference(),
	}
	od.Parameters = p.parseParameterList()
	od.Body = p.parseBlockStatement()
	return od
}

var overloadableOperators = map[lexer.TokenType]string{
	lexer.PLUS: "+", lexer.MINUS: "-", lexer.STAR: "*", lexer.SLASH: "/",
	lexer.PERCENT: "%", lexer.AMP: "&", lexer.PIPE: "|", lexer.CARET: "^",
	lexer.BANG: "!", lexer.TILDE: "~", lexer.INC: "++", lexer.DEC: "--",
	lexer.EQEQ: "==", lexer.NEQ: "!=", lexer.LT: "<", lexer.GT: ">",
	lexer.LE: "<=", lexer.GE: ">=", lexer.SHL: "<<", lexer.TRUE: "true",
	lexer.FALSE: "false",
}

func (p *Parser) parseOverloadableOperatorSymbol() string {
	// IsShiftRight must be checked before the overloadableOperators map:
	// GT alone is also a valid overloadable symbol ("<"/">"), so a bare
	// map lookup would consume only the first of the two GT tokens that
	// make up ">>" and leave the second one stuck in front of the
	// parameter list.
	if p.IsShiftRight() {
		p.advance()
		p.advance()
		return ">>"
	}
	if sym, ok := overloadableOperators[p.cur_().Type]; ok {
		p.advance()
		return sym
	}
	p.synErr("overloadable operator")
	return ""
}

func (p *Parser) parseConstDeclTail(attrs []*ast.AttributeSection, mods ast.ModifierSet, typ *ast.TypeReference, firstName string) *ast.ConstDecl {
	cd := &ast.ConstDecl{Attributes: attrs, Modifiers: mods, Type: typ}
	cd.Declarators = append(cd.Declarators, p.parseVariableDeclaratorTail(firstName))
	for p.at(lexer.COMMA) {
		p.advance()
		cd.Declarators = append(cd.Declarators, p.parseVariableDeclarator())
	}
	p.expectConsume(lexer.SEMICOLON)
	return cd
}

func (p *Parser) parseFieldDeclTail(attrs []*ast.AttributeSection, mods ast.ModifierSet, typ *ast.TypeReference, firstName string) *ast.FieldDecl {
	fd := &ast.FieldDecl{Attributes: attrs, Modifiers: mods, Type: typ}
	fd.Declarators = append(fd.Declarators, p.parseVariableDeclaratorTail(firstName))
	for p.at(lexer.COMMA) {
		p.advance()
		fd.Declarators = append(fd.Declarators, p.parseVariableDeclarator())
	}
	p.expectConsume(lexer.SEMICOLON)
	return fd
}

func (p *Parser) parseVariableDeclarator() *ast.VariableDeclarator {
	name := p.expectIdentifier().Value
	return p.parseVariableDeclaratorTail(name)
}

func (p *Parser) parseVariableDeclaratorTail(name string) *ast.VariableDeclarator {
	b := p.startNode()
	vd := &ast.VariableDeclarator{Name: name}
	if p.at(lexer.ASSIGN) {
		p.advance()
		vd.Init = p.parseVariableInitializer()
	}
	b.finish(&vd.BaseNode)
	return vd
}

// parseVariableInitializer allows either an ordinary expression or an
// `{ ... }` array-initializer shorthand.
func (p *Parser) parseVariableInitializer() ast.Expression {
	if p.at(lexer.LBRACE) {
		return p.parseArrayInitializer()
	}
	return p.parseExpression(precAssignment)
}
