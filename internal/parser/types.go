package parser

import (
	"github.com/d-rezzer/csharpparse/internal/ast"
	"github.com/d-rezzer/csharpparse/internal/lexer"
)

// parseTypeDeclWithLeadingAttrs parses a class/struct/interface/enum/
// delegate declaration, given attribute sections already consumed by
// the caller (namespace-member dispatch peeks at `[target:...]` before
// it knows whether the section belongs to a type or is a global one).
func (p *Parser) parseTypeDeclWithLeadingAttrs(container ast.Container, leading []*ast.AttributeSection) {
	td := p.parseTypeDecl(append(leading, p.parseAttributeSections()...))
	container.AddChild(td)
}

// parseTypeDecl parses the declaration starting at the current
// modifier/keyword run, given any attribute sections already consumed.
func (p *Parser) parseTypeDecl(attrs []*ast.AttributeSection) *ast.TypeDecl {
	b := p.startNode()
	mods := p.parseModifiers()

	td := &ast.TypeDecl{Modifiers: mods, Attributes: attrs}

	switch p.cur_().Type {
	case lexer.CLASS:
		p.advance()
		td.Kind = ast.TypeKindClass
		p.parseTypeBody(td, ast.ModPublic|ast.ModProtected|ast.ModInternal|ast.ModPrivate|
			ast.ModStatic|ast.ModSealed|ast.ModAbstract|ast.ModNew|ast.ModPartial|ast.ModUnsafe)
	case lexer.STRUCT:
		p.advance()
		td.Kind = ast.TypeKindStruct
		p.parseTypeBody(td, ast.ModPublic|ast.ModProtected|ast.ModInternal|ast.ModPrivate|
			ast.ModNew|ast.ModPartial|ast.ModUnsafe)
	case lexer.INTERFACE:
		p.advance()
		td.Kind = ast.TypeKindInterface
		p.parseTypeBody(td, ast.ModPublic|ast.ModProtected|ast.ModInternal|ast.ModPrivate|
			ast.ModNew|ast.ModPartial|ast.ModUnsafe)
	case lexer.ENUM:
		p.advance()
		td.Kind = ast.TypeKindEnum
		p.parseEnumBody(td)
	case lexer.DELEGATE:
		p.advance()
		td.Kind = ast.TypeKindDelegate
		p.parseDelegateBody(td)
	default:
		p.synErr("type declaration")
		p.synchronize(SyncDeclarationStarters)
	}
	b.finish(&td.BaseNode)
	return td
}

// parseTypeBody parses name, optional template parameters, optional
// base-type list, optional `where` constraint clauses, and the brace-
// delimited member list shared by class/struct/interface.
func (p *Parser) parseTypeBody(td *ast.TypeDecl, allowedMods ast.Modifier) {
	if !td.Modifiers.Check(allowedMods) {
		p.errf("modifier not valid for %s %s", td.Kind, p.cur_().Value)
	}
	td.Name = p.expectIdentifier().Value
	td.TemplateParams = p.parseOptionalTemplateParams()

	if p.at(lexer.COLON) {
		p.advance()
		td.BaseList = append(td.BaseList, p.parseTypeReference())
		for p.at(lexer.COMMA) {
			p.advance()
			td.BaseList = append(td.BaseList, p.parseTypeReference())
		}
	}
	td.Constraints = p.parseOptionalConstraintClauses()

	p.expectConsume(lexer.LBRACE)
	p.pushContainer(td)
	for !p.at(lexer.RBRACE) && !p.at(lexer.EOF) {
		before := p.cur_()
		p.parseMember(td)
		if p.cur_() == before {
			p.synErr("member declaration")
			p.advance()
		}
	}
	p.popContainer()
	p.expectConsume(lexer.RBRACE)
}

func (p *Parser) parseEnumBody(td *ast.TypeDecl) {
	td.Name = p.expectIdentifier().Value
	if p.at(lexer.COLON) {
		p.advance()
		td.EnumUnderlying = p.parseTypeReference()
	}
	p.expectConsume(lexer.LBRACE)
	for !p.at(lexer.RBRACE) && !p.at(lexer.EOF) {
		b := p.startNode()
		mem := &ast.EnumMemberDecl{Attributes: p.parseAttributeSections()}
		mem.Name = p.expectIdentifier().Value
		if p.at(lexer.ASSIGN) {
			p.advance()
			mem.Value = p.parseExpression(precAssignment)
		}
		b.finish(&mem.BaseNode)
		td.EnumMembers = append(td.EnumMembers, mem)
		if !p.weakSeparator(lexer.COMMA, lexer.RBRACE) {
			break
		}
	}
	p.expectConsume(lexer.RBRACE)
}

func (p *Parser) parseDelegateBody(td *ast.TypeDecl) {
	td.DelegateReturnType = p.parseTypeReference()
	td.Name = p.expectIdentifier().Value
	td.TemplateParams = p.parseOptionalTemplateParams()
	td.DelegateParams = p.parseParameterList()
	td.Constraints = p.parseOptionalConstraintClauses()
	p.expectConsume(lexer.SEMICOLON)
}

// parseOptionalTemplateParams parses a `<T, in U, out V>` list if the
// current token is `<`; returns nil otherwise.
func (p *Parser) parseOptionalTemplateParams() []*ast.TemplateParameter {
	if !p.at(lexer.LT) {
		return nil
	}
	p.advance()
	var out []*ast.TemplateParameter
	for {
		b := p.startNode()
		tp := &ast.TemplateParameter{Attributes: p.parseAttributeSections()}
		if p.atAny(lexer.IN, lexer.OUT) {
			tp.Variance = p.cur_().Value
			p.advance()
		}
		tp.Name = p.expectIdentifier().Value
		b.finish(&tp.BaseNode)
		out = append(out, tp)
		if !p.at(lexer.COMMA) {
			break
		}
		p.advance()
	}
	p.expectConsume(lexer.GT)
	return out
}

// parseOptionalConstraintClauses parses zero or more `where T : ...`
// clauses following a generic declaration's parameter/base list.
func (p *Parser) parseOptionalConstraintClauses() []*ast.ConstraintClause {
	var out []*ast.ConstraintClause
	for p.IdIsWhere() {
		out = append(out, p.parseConstraintClause())
	}
	return out
}

func (p *Parser) parseConstraintClause() *ast.ConstraintClause {
	b := p.startNode()
	p.advance() // 'where'
	cc := &ast.ConstraintClause{ParameterName: p.expectIdentifier().Value}
	p.expectConsume(lexer.COLON)
	for {
		cc.Items = append(cc.Items, p.parseConstraintItem())
		if !p.at(lexer.COMMA) {
			break
		}
		p.advance()
	}
	b.finish(&cc.BaseNode)
	return cc
}

func (p *Parser) parseConstraintItem() *ast.ConstraintItem {
	b := p.startNode()
	item := &ast.ConstraintItem{}
	switch {
	case p.at(lexer.CLASS):
		p.advance()
		item.Kind = ast.ConstraintKindClass
	case p.at(lexer.STRUCT):
		p.advance()
		item.Kind = ast.ConstraintKindStruct
	case p.at(lexer.NEW):
		p.advance()
		p.expectConsume(lexer.LPAREN)
		p.expectConsume(lexer.RPAREN)
		item.Kind = ast.ConstraintKindNew
	default:
		item.Kind = ast.ConstraintKindType
		item.Type = p.parseTypeReference()
	}
	b.finish(&item.BaseNode)
	return item
}

// parseTypeReference parses a TypeReference: dotted name, optional
// `global::` qualification, optional generic arguments, optional
// pointer/array suffixes, optional trailing `?`.
func (p *Parser) parseTypeReference() *ast.TypeReference {
	b := p.startNode()
	tr := &ast.TypeReference{}

	if p.at(lexer.IDENT) && p.cur_().Value == "global" && p.peek(1).Type == lexer.COLONCOLON {
		p.advance()
		p.advance()
		tr.IsGlobalQualified = true
	}

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

	if p.at(lexer.LT) {
		p.advance()
		for {
			tr.GenericArgs = append(tr.GenericArgs, p.parseTypeReference())
			if !p.at(lexer.COMMA) {
				break
			}
			p.advance()
		}
		if p.IsShiftRight() {
			// Closing two nested generic argument lists at once: split
			// the synthesized `>>` back into its two constituent `>`.
			p.advance()
		} else {
			p.expectConsume(lexer.GT)
		}
	}

	for p.IsPointerOrDims() {
		if p.at(lexer.STAR) {
			tr.PointerNesting++
			p.advance()
			continue
		}
		p.advance() // '['
		rank := 1
		for p.at(lexer.COMMA) {
			rank++
			p.advance()
		}
		p.expectConsume(lexer.RBRACK)
		tr.RankSpecifier = append(tr.RankSpecifier, rank)
	}

	if p.at(lexer.QUESTION) {
		if tr.Name == "void" {
			p.errf("void cannot be nullable")
		}
		p.advance()
		tr.IsNullable = true
	}

	b.finish(&tr.BaseNode)
	return tr
}
