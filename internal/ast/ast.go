// Package ast defines the AST node set produced by internal/parser: one
// struct per grammar production, a shared BaseNode for position
// bookkeeping, and the small set of marker interfaces (Node, Expression,
// Statement, Declaration, Container) that let the parser and any
// consumer walk the tree without type-switching on every node.
package ast

import (
	"bytes"
	"strings"

	"github.com/d-rezzer/csharpparse/internal/lexer"
)

// Node is implemented by every AST node.
type Node interface {
	// TokenLiteral returns the spelling of the token the node started
	// at — useful in error messages and tests, not a semantic value.
	TokenLiteral() string
	String() string
	Pos() lexer.Position
	EndPos() lexer.Position
}

// Expression is implemented by every expression-producing node.
type Expression interface {
	Node
	expressionNode()
}

// Statement is implemented by every statement node.
type Statement interface {
	Node
	statementNode()
}

// Declaration is implemented by every member/type declaration node.
type Declaration interface {
	Node
	declarationNode()
}

// Container is implemented by nodes that accumulate children while the
// parser's compilation-unit assembler (pushContainer/popContainer in
// internal/parser/parser.go) has them on top of its container stack.
type Container interface {
	Node
	AddChild(Node)
}

// BaseNode carries the start/end source span every node needs. Embed it
// first in every concrete node type.
type BaseNode struct {
	StartPosition lexer.Position
	EndPosition   lexer.Position
	Token         lexer.Token // the token the production started consuming at
}

func (b *BaseNode) Pos() lexer.Position    { return b.StartPosition }
func (b *BaseNode) EndPos() lexer.Position { return b.EndPosition }
func (b *BaseNode) TokenLiteral() string   { return b.Token.Value }

// SetEnd stamps the node's end position once the production that built
// it has consumed its last token. Called by the parser's NodeBuilder.
func (b *BaseNode) SetEnd(p lexer.Position) { b.EndPosition = p }

// ---- Compilation unit -----------------------------------------------

// CompilationUnit is the root node: the whole parsed file.
type CompilationUnit struct {
	BaseNode
	Usings     []*UsingDirective
	Members    []Node // NamespaceDecl or any TypeDecl at file scope
	Attributes []*AttributeSection
}

func (c *CompilationUnit) String() string {
	var b strings.Builder
	for _, u := range c.Usings {
		b.WriteString(u.String())
		b.WriteString("\n")
	}
	for _, m := range c.Members {
		b.WriteString(m.String())
		b.WriteString("\n")
	}
	return b.String()
}

// AddChild appends a top-level member (namespace or type declaration).
func (c *CompilationUnit) AddChild(n Node) {
	switch v := n.(type) {
	case *UsingDirective:
		c.Usings = append(c.Usings, v)
	case *AttributeSection:
		c.Attributes = append(c.Attributes, v)
	default:
		c.Members = append(c.Members, n)
	}
}

// UsingDirective is `using Name;` or `using Alias = Name;`.
type UsingDirective struct {
	BaseNode
	Alias     string // empty if not an alias directive
	Namespace string
}

func (u *UsingDirective) String() string {
	if u.Alias != "" {
		return "using " + u.Alias + " = " + u.Namespace + ";"
	}
	return "using " + u.Namespace + ";"
}

// NamespaceDecl is `namespace Name { ... }`.
type NamespaceDecl struct {
	BaseNode
	Name    string
	Usings  []*UsingDirective
	Members []Node
}

func (n *NamespaceDecl) declarationNode() {}

func (n *NamespaceDecl) String() string {
	var b strings.Builder
	b.WriteString("namespace ")
	b.WriteString(n.Name)
	b.WriteString(" {\n")
	for _, u := range n.Usings {
		b.WriteString(u.String())
		b.WriteString("\n")
	}
	for _, m := range n.Members {
		b.WriteString(m.String())
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// AddChild appends a using directive or a nested member.
func (n *NamespaceDecl) AddChild(c Node) {
	if u, ok := c.(*UsingDirective); ok {
		n.Usings = append(n.Usings, u)
		return
	}
	n.Members = append(n.Members, c)
}

// ---- Attributes -------------------------------------------------------

// Attribute is a single `Name(args...)` attribute invocation.
type Attribute struct {
	BaseNode
	Name      string
	Arguments []Expression
}

func (a *Attribute) String() string {
	var b bytes.Buffer
	b.WriteString(a.Name)
	if len(a.Arguments) > 0 {
		b.WriteString("(")
		for i, arg := range a.Arguments {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.String())
		}
		b.WriteString(")")
	}
	return b.String()
}

// AttributeSection is `[target: Attr1, Attr2]`. Target is empty when the
// source omitted the `target:` prefix.
type AttributeSection struct {
	BaseNode
	Target     string
	Attributes []*Attribute
}

func (a *AttributeSection) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	if a.Target != "" {
		b.WriteString(a.Target)
		b.WriteString(": ")
	}
	for i, at := range a.Attributes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(at.String())
	}
	b.WriteString("]")
	return b.String()
}

// ---- Type references --------------------------------------------------

// TypeReference names a type: a simple name, an instantiated generic
// (`Name<Args>`), an array (`rank_specifier`), a pointer chain, or a
// nullable value type (`T?`).
type TypeReference struct {
	BaseNode
	Name               string
	IsGlobalQualified  bool // `global::Name`
	GenericArgs        []*TypeReference
	RankSpecifier      []int // one entry per `[]`/`[,]`/... rank, value = dimension count (`[]` is 1, `[,]` is 2, ...)
	PointerNesting     int   // number of trailing `*`
	IsNullable         bool  // trailing `?`
}

func (t *TypeReference) String() string {
	var b bytes.Buffer
	if t.IsGlobalQualified {
		b.WriteString("global::")
	}
	b.WriteString(t.Name)
	if len(t.GenericArgs) > 0 {
		b.WriteString("<")
		for i, a := range t.GenericArgs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
		b.WriteString(">")
	}
	for i := 0; i < t.PointerNesting; i++ {
		b.WriteString("*")
	}
	for _, rank := range t.RankSpecifier {
		b.WriteString("[")
		b.WriteString(strings.Repeat(",", rank-1))
		b.WriteString("]")
	}
	if t.IsNullable {
		b.WriteString("?")
	}
	return b.String()
}

// ---- Modifiers ---------------------------------------------------------

// Modifier is a single bit in a ModifierSet.
type Modifier uint32

const (
	ModPublic Modifier = 1 << iota
	ModProtected
	ModInternal
	ModPrivate
	ModStatic
	ModReadonly
	ModSealed
	ModAbstract
	ModVirtual
	ModOverride
	ModExtern
	ModNew
	ModVolatile
	ModUnsafe
	ModPartial
	ModConst
)

var modifierOrder = []struct {
	bit  Modifier
	name string
}{
	{ModPublic, "public"}, {ModProtected, "protected"}, {ModInternal, "internal"},
	{ModPrivate, "private"}, {ModStatic, "static"}, {ModReadonly, "readonly"},
	{ModSealed, "sealed"}, {ModAbstract, "abstract"}, {ModVirtual, "virtual"},
	{ModOverride, "override"}, {ModExtern, "extern"}, {ModNew, "new"},
	{ModVolatile, "volatile"}, {ModUnsafe, "unsafe"}, {ModPartial, "partial"},
	{ModConst, "const"},
}

// ModifierSet accumulates the modifier keywords preceding a declaration,
// plus the location of the first one. The parser records First but does
// not read it: its invalid-modifier diagnostic is reported at the current
// token after the modifier run.
type ModifierSet struct {
	Bits  Modifier
	First lexer.Position
	set   bool
}

// Add sets bit m, recording pos as First if this is the first modifier
// seen.
func (m *ModifierSet) Add(bit Modifier, pos lexer.Position) {
	if !m.set {
		m.First = pos
		m.set = true
	}
	m.Bits |= bit
}

// Has reports whether bit is present.
func (m ModifierSet) Has(bit Modifier) bool { return m.Bits&bit != 0 }

// Check reports whether every bit set in m is also set in allowed —
// the validation contract every declaration kind uses to reject
// modifier combinations that don't apply to it (e.g. `abstract` on a
// field).
func (m ModifierSet) Check(allowed Modifier) bool { return m.Bits&^allowed == 0 }

func (m ModifierSet) String() string {
	var parts []string
	for _, e := range modifierOrder {
		if m.Bits&e.bit != 0 {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, " ")
}
