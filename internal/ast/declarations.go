package ast

import (
	"bytes"
	"strings"
)

// TypeKind distinguishes the five declarable type shapes.
type TypeKind int

const (
	TypeKindClass TypeKind = iota
	TypeKindStruct
	TypeKindInterface
	TypeKindEnum
	TypeKindDelegate
)

func (k TypeKind) String() string {
	switch k {
	case TypeKindClass:
		return "class"
	case TypeKindStruct:
		return "struct"
	case TypeKindInterface:
		return "interface"
	case TypeKindEnum:
		return "enum"
	case TypeKindDelegate:
		return "delegate"
	}
	return "?"
}

// ConstraintKind distinguishes the four forms a generic constraint item
// can take: `class`, `struct`, `new()`, or a named type constraint.
type ConstraintKind int

const (
	ConstraintKindClass ConstraintKind = iota
	ConstraintKindStruct
	ConstraintKindNew
	ConstraintKindType
)

// ConstraintItem is one element of a `where T : item, item, ...` clause.
type ConstraintItem struct {
	BaseNode
	Kind ConstraintKind
	Type *TypeReference // set only when Kind == ConstraintKindType
}

func (c *ConstraintItem) String() string {
	switch c.Kind {
	case ConstraintKindClass:
		return "class"
	case ConstraintKindStruct:
		return "struct"
	case ConstraintKindNew:
		return "new()"
	case ConstraintKindType:
		return c.Type.String()
	}
	return "?"
}

// ConstraintClause is one `where T : ...` clause attached to a generic
// type or method declaration.
type ConstraintClause struct {
	BaseNode
	ParameterName string
	Items         []*ConstraintItem
}

func (c *ConstraintClause) String() string {
	parts := make([]string, len(c.Items))
	for i, it := range c.Items {
		parts[i] = it.String()
	}
	return "where " + c.ParameterName + " : " + strings.Join(parts, ", ")
}

// TemplateParameter is one entry in a `<T, U, ...>` type-parameter list,
// including its optional variance annotation (`in`/`out`, interface and
// delegate declarations only).
type TemplateParameter struct {
	BaseNode
	Name      string
	Variance  string // "", "in", "out"
	Attributes []*AttributeSection
}

func (t *TemplateParameter) String() string {
	if t.Variance != "" {
		return t.Variance + " " + t.Name
	}
	return t.Name
}

// TypeDecl is a class/struct/interface/enum/delegate declaration.
type TypeDecl struct {
	BaseNode
	Kind        TypeKind
	Name        string
	Modifiers   ModifierSet
	Attributes  []*AttributeSection
	TemplateParams []*TemplateParameter
	Constraints []*ConstraintClause
	BaseList    []*TypeReference // base class (struct/class only, at most one) then interfaces
	Members     []Node           // member declarations or nested TypeDecls

	// Delegate-only shape: a delegate declaration has no body, just a
	// return type and parameter list.
	DelegateReturnType *TypeReference
	DelegateParams     []*ParameterDecl

	// Enum-only shape.
	EnumUnderlying *TypeReference
	EnumMembers    []*EnumMemberDecl
}

func (t *TypeDecl) declarationNode() {}

func (t *TypeDecl) AddChild(n Node) {
	t.Members = append(t.Members, n)
}

func (t *TypeDecl) String() string {
	var b bytes.Buffer
	for _, a := range t.Attributes {
		b.WriteString(a.String())
		b.WriteString("\n")
	}
	if mods := t.Modifiers.String(); mods != "" {
		b.WriteString(mods)
		b.WriteString(" ")
	}
	b.WriteString(t.Kind.String())
	b.WriteString(" ")
	if t.Kind == TypeKindDelegate {
		b.WriteString(t.DelegateReturnType.String())
		b.WriteString(" ")
	}
	b.WriteString(t.Name)
	if len(t.TemplateParams) > 0 {
		b.WriteString("<")
		for i, p := range t.TemplateParams {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.String())
		}
		b.WriteString(">")
	}
	if t.Kind == TypeKindDelegate {
		b.WriteString("(")
		for i, p := range t.DelegateParams {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.String())
		}
		b.WriteString(");")
		return b.String()
	}
	if len(t.BaseList) > 0 {
		b.WriteString(" : ")
		for i, bt := range t.BaseList {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(bt.String())
		}
	}
	for _, c := range t.Constraints {
		b.WriteString(" ")
		b.WriteString(c.String())
	}
	b.WriteString(" {\n")
	if t.Kind == TypeKindEnum {
		for i, m := range t.EnumMembers {
			if i > 0 {
				b.WriteString(",\n")
			}
			b.WriteString(m.String())
		}
		b.WriteString("\n")
	}
	for _, m := range t.Members {
		b.WriteString(m.String())
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

// EnumMemberDecl is a single `Name` or `Name = Expr` entry in an enum body.
type EnumMemberDecl struct {
	BaseNode
	Name       string
	Value      Expression // nil if unspecified
	Attributes []*AttributeSection
}

func (e *EnumMemberDecl) declarationNode() {}

func (e *EnumMemberDecl) String() string {
	if e.Value != nil {
		return e.Name + " = " + e.Value.String()
	}
	return e.Name
}

// ParameterDecl is one formal parameter.
type ParameterDecl struct {
	BaseNode
	Name       string
	Type       *TypeReference
	Modifier   string // "", "ref", "out", "params"
	Default    Expression
	Attributes []*AttributeSection
}

func (p *ParameterDecl) declarationNode() {}

func (p *ParameterDecl) String() string {
	var b bytes.Buffer
	for _, a := range p.Attributes {
		b.WriteString(a.String())
		b.WriteString(" ")
	}
	if p.Modifier != "" {
		b.WriteString(p.Modifier)
		b.WriteString(" ")
	}
	b.WriteString(p.Type.String())
	b.WriteString(" ")
	b.WriteString(p.Name)
	if p.Default != nil {
		b.WriteString(" = ")
		b.WriteString(p.Default.String())
	}
	return b.String()
}

// FieldDecl is `Type name [= init], name2 [= init2]...;` — one
// declarator list sharing a type and modifier set.
type FieldDecl struct {
	BaseNode
	Modifiers   ModifierSet
	Attributes  []*AttributeSection
	Type        *TypeReference
	Declarators []*VariableDeclarator
}

func (f *FieldDecl) declarationNode() {}

func (f *FieldDecl) String() string {
	var b bytes.Buffer
	for _, a := range f.Attributes {
		b.WriteString(a.String())
		b.WriteString(" ")
	}
	if mods := f.Modifiers.String(); mods != "" {
		b.WriteString(mods)
		b.WriteString(" ")
	}
	b.WriteString(f.Type.String())
	b.WriteString(" ")
	for i, d := range f.Declarators {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.String())
	}
	b.WriteString(";")
	return b.String()
}

// VariableDeclarator is `name` or `name = init`, shared by field
// declarations and local variable declarations.
type VariableDeclarator struct {
	BaseNode
	Name string
	Init Expression
}

func (v *VariableDeclarator) String() string {
	if v.Init != nil {
		return v.Name + " = " + v.Init.String()
	}
	return v.Name
}

// MethodDecl is an ordinary (possibly generic) method declaration. A
// nil Body means the method is abstract/extern/interface-declared (no
// braces followed it).
type MethodDecl struct {
	BaseNode
	Modifiers      ModifierSet
	Attributes     []*AttributeSection
	ReturnType     *TypeReference
	Name           string
	TemplateParams []*TemplateParameter
	Parameters     []*ParameterDecl
	Constraints    []*ConstraintClause
	Body           *BlockStatement
}

func (m *MethodDecl) declarationNode() {}

func (m *MethodDecl) String() string {
	var b bytes.Buffer
	for _, a := range m.Attributes {
		b.WriteString(a.String())
		b.WriteString(" ")
	}
	if mods := m.Modifiers.String(); mods != "" {
		b.WriteString(mods)
		b.WriteString(" ")
	}
	b.WriteString(m.ReturnType.String())
	b.WriteString(" ")
	b.WriteString(m.Name)
	if len(m.TemplateParams) > 0 {
		b.WriteString("<")
		for i, p := range m.TemplateParams {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.String())
		}
		b.WriteString(">")
	}
	b.WriteString("(")
	for i, p := range m.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(")")
	for _, c := range m.Constraints {
		b.WriteString(" ")
		b.WriteString(c.String())
	}
	if m.Body != nil {
		b.WriteString(" ")
		b.WriteString(m.Body.String())
	} else {
		b.WriteString(";")
	}
	return b.String()
}

// ConstructorDecl is `Name(params) [: base(...)|this(...)] { body }`.
type ConstructorDecl struct {
	BaseNode
	Modifiers     ModifierSet
	Attributes    []*AttributeSection
	Name          string
	Parameters    []*ParameterDecl
	InitializerKind string // "", "base", "this"
	InitializerArgs []Expression
	Body          *BlockStatement
}

func (c *ConstructorDecl) declarationNode() {}

func (c *ConstructorDecl) String() string {
	var b bytes.Buffer
	if mods := c.Modifiers.String(); mods != "" {
		b.WriteString(mods)
		b.WriteString(" ")
	}
	b.WriteString(c.Name)
	b.WriteString("(")
	for i, p := range c.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(")")
	if c.InitializerKind != "" {
		b.WriteString(" : ")
		b.WriteString(c.InitializerKind)
		b.WriteString("(")
		for i, a := range c.InitializerArgs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
		b.WriteString(")")
	}
	b.WriteString(" ")
	b.WriteString(c.Body.String())
	return b.String()
}

// DestructorDecl is `~Name() { body }`.
type DestructorDecl struct {
	BaseNode
	Name string
	Body *BlockStatement
}

func (d *DestructorDecl) declarationNode() {}

func (d *DestructorDecl) String() string {
	return "~" + d.Name + "() " + d.Body.String()
}

// AccessorKind distinguishes property/indexer/event accessor forms.
type AccessorKind int

const (
	AccessorGet AccessorKind = iota
	AccessorSet
	AccessorAdd
	AccessorRemove
)

func (k AccessorKind) String() string {
	switch k {
	case AccessorGet:
		return "get"
	case AccessorSet:
		return "set"
	case AccessorAdd:
		return "add"
	case AccessorRemove:
		return "remove"
	}
	return "?"
}

// AccessorDecl is one `get`/`set`/`add`/`remove` block (or `;` for an
// auto-implemented accessor, in which case Body is nil).
type AccessorDecl struct {
	BaseNode
	Kind      AccessorKind
	Modifiers ModifierSet
	Body      *BlockStatement
}

func (a *AccessorDecl) String() string {
	var b bytes.Buffer
	if mods := a.Modifiers.String(); mods != "" {
		b.WriteString(mods)
		b.WriteString(" ")
	}
	b.WriteString(a.Kind.String())
	if a.Body != nil {
		b.WriteString(" ")
		b.WriteString(a.Body.String())
	} else {
		b.WriteString(";")
	}
	return b.String()
}

// PropertyDecl is `Type Name { get; set; }` or with bodies.
type PropertyDecl struct {
	BaseNode
	Modifiers  ModifierSet
	Attributes []*AttributeSection
	Type       *TypeReference
	Name       string
	Accessors  []*AccessorDecl
	Initializer Expression // C# 6 `= expr;` auto-property initializer
}

func (p *PropertyDecl) declarationNode() {}

func (p *PropertyDecl) String() string {
	var b bytes.Buffer
	if mods := p.Modifiers.String(); mods != "" {
		b.WriteString(mods)
		b.WriteString(" ")
	}
	b.WriteString(p.Type.String())
	b.WriteString(" ")
	b.WriteString(p.Name)
	b.WriteString(" { ")
	for _, a := range p.Accessors {
		b.WriteString(a.String())
		b.WriteString(" ")
	}
	b.WriteString("}")
	if p.Initializer != nil {
		b.WriteString(" = ")
		b.WriteString(p.Initializer.String())
		b.WriteString(";")
	}
	return b.String()
}

// IndexerDecl is `Type this[params] { get; set; }`.
type IndexerDecl struct {
	BaseNode
	Modifiers  ModifierSet
	Attributes []*AttributeSection
	Type       *TypeReference
	Parameters []*ParameterDecl
	Accessors  []*AccessorDecl
}

func (i *IndexerDecl) declarationNode() {}

func (i *IndexerDecl) String() string {
	var b bytes.Buffer
	if mods := i.Modifiers.String(); mods != "" {
		b.WriteString(mods)
		b.WriteString(" ")
	}
	b.WriteString(i.Type.String())
	b.WriteString(" this[")
	for idx, p := range i.Parameters {
		if idx > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString("] { ")
	for _, a := range i.Accessors {
		b.WriteString(a.String())
		b.WriteString(" ")
	}
	b.WriteString("}")
	return b.String()
}

// EventDecl covers both the field-like form (`event Type Name;`) and
// the block form (`event Type Name { add; remove; }`); Accessors is nil
// for the field-like form.
type EventDecl struct {
	BaseNode
	Modifiers  ModifierSet
	Attributes []*AttributeSection
	Type       *TypeReference
	Name       string
	Accessors  []*AccessorDecl
}

func (e *EventDecl) declarationNode() {}

func (e *EventDecl) String() string {
	var b bytes.Buffer
	if mods := e.Modifiers.String(); mods != "" {
		b.WriteString(mods)
		b.WriteString(" ")
	}
	b.WriteString("event ")
	b.WriteString(e.Type.String())
	b.WriteString(" ")
	b.WriteString(e.Name)
	if e.Accessors == nil {
		b.WriteString(";")
		return b.String()
	}
	b.WriteString(" { ")
	for _, a := range e.Accessors {
		b.WriteString(a.String())
		b.WriteString(" ")
	}
	b.WriteString("}")
	return b.String()
}

// ConstDecl is `const Type name = init, ...;`.
type ConstDecl struct {
	BaseNode
	Modifiers   ModifierSet
	Attributes  []*AttributeSection
	Type        *TypeReference
	Declarators []*VariableDeclarator
}

func (c *ConstDecl) declarationNode() {}

func (c *ConstDecl) String() string {
	var b bytes.Buffer
	if mods := c.Modifiers.String(); mods != "" {
		b.WriteString(mods)
		b.WriteString(" ")
	}
	b.WriteString("const ")
	b.WriteString(c.Type.String())
	b.WriteString(" ")
	for i, d := range c.Declarators {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.String())
	}
	b.WriteString(";")
	return b.String()
}

// OperatorKind distinguishes the two overloadable-operator shapes.
type OperatorKind int

const (
	OperatorKindBinaryOrUnary OperatorKind = iota
	OperatorKindConversion
)

// OperatorDecl is `operator +(...)` or `implicit/explicit operator
// T(...)`.
type OperatorDecl struct {
	BaseNode
	Modifiers    ModifierSet
	Attributes   []*AttributeSection
	Kind         OperatorKind
	OperatorSym  string // "+", "==", ... for OperatorKindBinaryOrUnary
	IsImplicit   bool   // only meaningful when Kind == OperatorKindConversion
	ReturnType   *TypeReference
	Parameters   []*ParameterDecl
	Body         *BlockStatement
}

func (o *OperatorDecl) declarationNode() {}

func (o *OperatorDecl) String() string {
	var b bytes.Buffer
	for _, a := range o.Attributes {
		b.WriteString(a.String())
		b.WriteString(" ")
	}
	if mods := o.Modifiers.String(); mods != "" {
		b.WriteString(mods)
		b.WriteString(" ")
	}
	if o.Kind == OperatorKindConversion {
		if o.IsImplicit {
			b.WriteString("implicit ")
		} else {
			b.WriteString("explicit ")
		}
		b.WriteString("operator ")
		b.WriteString(o.ReturnType.String())
	} else {
		b.WriteString(o.ReturnType.String())
		b.WriteString(" operator ")
		b.WriteString(o.OperatorSym)
	}
	b.WriteString("(")
	for i, p := range o.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(") ")
	b.WriteString(o.Body.String())
	return b.String()
}
