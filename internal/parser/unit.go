package parser

import (
	"github.com/d-rezzer/csharpparse/internal/ast"
	"github.com/d-rezzer/csharpparse/internal/lexer"
)

// ParseCompilationUnit is the grammar's start symbol: a run of using
// directives, optional global attribute sections, and namespace/type
// members, terminated by EOF.
func (p *Parser) ParseCompilationUnit() *ast.CompilationUnit {
	b := p.startNode()
	unit := &ast.CompilationUnit{}
	for !p.at(lexer.EOF) {
		before := p.cur_()
		p.parseNamespaceMember(unit)
		if p.cur_() == before && !p.at(lexer.EOF) {
			// No production consumed anything — guarantee forward
			// progress rather than looping forever on garbage input.
			p.synErr("declaration")
			p.advance()
		}
	}
	b.finish(&unit.BaseNode)
	return unit
}

// parseNamespaceMember parses one using-directive, namespace, attribute
// section, or type declaration and attaches it to container.
func (p *Parser) parseNamespaceMember(container ast.Container) {
	switch {
	case p.at(lexer.USING):
		container.AddChild(p.parseUsingDirective())
	case p.at(lexer.NAMESPACE):
		container.AddChild(p.parseNamespaceDecl())
	case p.at(lexer.LBRACK):
		sec := p.parseAttributeSection()
		if sec.Target != "" && IsGlobalAttrTarget(sec.Target) {
			container.AddChild(sec)
			return
		}
		p.parseTypeDeclWithLeadingAttrs(container, []*ast.AttributeSection{sec})
	case memberDeclStarters[p.cur_().Type]:
		p.parseTypeDeclWithLeadingAttrs(container, nil)
	default:
		p.synErr("namespace member declaration")
		p.synchronize(SyncDeclarationStarters)
	}
}

// parseUsingDirective is `using Name;` or `using Alias = Name;`.
func (p *Parser) parseUsingDirective() *ast.UsingDirective {
	b := p.startNode()
	p.expectConsume(lexer.USING)
	u := &ast.UsingDirective{}

	first := p.expectIdentifier().Value
	if p.at(lexer.ASSIGN) {
		p.advance()
		u.Alias = first
		u.Namespace = p.parseQualifiedName()
	} else {
		name := first
		for p.at(lexer.DOT) {
			p.advance()
			name += "." + p.expectIdentifier().Value
		}
		u.Namespace = name
	}
	p.expectConsume(lexer.SEMICOLON)
	b.finish(&u.BaseNode)
	return u
}

// parseQualifiedName consumes a dotted name starting at the current
// identifier.
func (p *Parser) parseQualifiedName() string {
	name := p.expectIdentifier().Value
	for p.at(lexer.DOT) {
		p.advance()
		name += "." + p.expectIdentifier().Value
	}
	return name
}

// parseNamespaceDecl is `namespace Name { member... }`.
func (p *Parser) parseNamespaceDecl() *ast.NamespaceDecl {
	b := p.startNode()
	p.expectConsume(lexer.NAMESPACE)
	n := &ast.NamespaceDecl{Name: p.parseQualifiedName()}
	p.expectConsume(lexer.LBRACE)
	p.pushContainer(n)
	for !p.at(lexer.RBRACE) && !p.at(lexer.EOF) {
		before := p.cur_()
		p.parseNamespaceMember(n)
		if p.cur_() == before {
			p.synErr("namespace member declaration")
			p.advance()
		}
	}
	p.popContainer()
	p.expectConsume(lexer.RBRACE)
	b.finish(&n.BaseNode)
	return n
}

// parseAttributeSection is `[ [target:] Attr1(args), Attr2, ... ]`.
func (p *Parser) parseAttributeSection() *ast.AttributeSection {
	b := p.startNode()
	p.expectConsume(lexer.LBRACK)
	sec := &ast.AttributeSection{}

	switch {
	case p.at(lexer.IDENT) && p.peek(1).Type == lexer.COLON:
		sec.Target = p.cur_().Value
		p.advance()
		p.advance()
	case p.at(lexer.RETURN) && p.peek(1).Type == lexer.COLON:
		sec.Target = kwReturn
		p.advance()
		p.advance()
	case p.at(lexer.EVENT) && p.peek(1).Type == lexer.COLON:
		sec.Target = kwEvent
		p.advance()
		p.advance()
	}

	for {
		sec.Attributes = append(sec.Attributes, p.parseAttribute())
		if !p.at(lexer.COMMA) {
			break
		}
		p.advance()
		if p.at(lexer.RBRACK) {
			break
		}
	}
	p.expectConsume(lexer.RBRACK)
	b.finish(&sec.BaseNode)
	return sec
}

func (p *Parser) parseAttribute() *ast.Attribute {
	b := p.startNode()
	a := &ast.Attribute{Name: p.parseQualifiedName()}
	if p.at(lexer.LPAREN) {
		p.advance()
		for !p.at(lexer.RPAREN) && !p.at(lexer.EOF) {
			a.Arguments = append(a.Arguments, p.parseExpression(precAssignment))
			if !p.weakSeparator(lexer.COMMA, lexer.RPAREN) {
				break
			}
		}
		p.expectConsume(lexer.RPAREN)
	}
	b.finish(&a.BaseNode)
	return a
}

// parseAttributeSections consumes every `[...]` section at the current
// position (there can be several stacked on one declaration).
func (p *Parser) parseAttributeSections() []*ast.AttributeSection {
	var out []*ast.AttributeSection
	for p.at(lexer.LBRACK) {
		out = append(out, p.parseAttributeSection())
	}
	return out
}

// parseModifiers consumes every modifier keyword run at the current
// position into a ModifierSet.
func (p *Parser) parseModifiers() ast.ModifierSet {
	var set ast.ModifierSet
	for {
		if modifierKeywords[p.cur_().Type] {
			bit := modifierBit(p.cur_().Type)
			set.Add(bit, p.cur_().Start)
			p.advance()
			continue
		}
		if p.IdIsPartial() {
			set.Add(ast.ModPartial, p.cur_().Start)
			p.advance()
			continue
		}
		break
	}
	return set
}

func modifierBit(tt lexer.TokenType) ast.Modifier {
	switch tt {
	case lexer.PUBLIC:
		return ast.ModPublic
	case lexer.PROTECTED:
		return ast.ModProtected
	case lexer.INTERNAL:
		return ast.ModInternal
	case lexer.PRIVATE:
		return ast.ModPrivate
	case lexer.STATIC:
		return ast.ModStatic
	case lexer.READONLY:
		return ast.ModReadonly
	case lexer.SEALED:
		return ast.ModSealed
	case lexer.ABSTRACT:
		return ast.ModAbstract
	case lexer.VIRTUAL:
		return ast.ModVirtual
	case lexer.OVERRIDE:
		return ast.ModOverride
	case lexer.EXTERN:
		return ast.ModExtern
	case lexer.NEW:
		return ast.ModNew
	case lexer.VOLATILE:
		return ast.ModVolatile
	case lexer.UNSAFE:
		return ast.ModUnsafe
	case lexer.CONST:
		return ast.ModConst
	}
	return 0
}
