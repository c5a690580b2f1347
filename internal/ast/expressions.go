package ast

import "bytes"

// Identifier is a bare name reference.
type Identifier struct {
	BaseNode
	Name string
}

func (i *Identifier) expressionNode() {}
func (i *Identifier) String() string  { return i.Name }

// IntegerLiteral, FloatLiteral, StringLiteral, CharLiteral, BoolLiteral,
// NullLiteral are the primary literal forms.
type IntegerLiteral struct {
	BaseNode
	Value int64
}

func (n *IntegerLiteral) expressionNode() {}
func (n *IntegerLiteral) String() string  { return n.Token.Value }

type FloatLiteral struct {
	BaseNode
	Value float64
}

func (n *FloatLiteral) expressionNode() {}
func (n *FloatLiteral) String() string  { return n.Token.Value }

type StringLiteral struct {
	BaseNode
	Value string
}

func (n *StringLiteral) expressionNode() {}
func (n *StringLiteral) String() string  { return "\"" + n.Value + "\"" }

type CharLiteral struct {
	BaseNode
	Value rune
}

func (n *CharLiteral) expressionNode() {}
func (n *CharLiteral) String() string  { return "'" + string(n.Value) + "'" }

type BoolLiteral struct {
	BaseNode
	Value bool
}

func (n *BoolLiteral) expressionNode() {}
func (n *BoolLiteral) String() string {
	if n.Value {
		return "true"
	}
	return "false"
}

// NullLiteral is the `null` keyword used as a primary expression.
type NullLiteral struct{ BaseNode }

func (n *NullLiteral) expressionNode() {}
func (n *NullLiteral) String() string  { return "null" }

// ThisExpression and BaseExpression are the `this`/`base` primaries.
type ThisExpression struct{ BaseNode }

func (t *ThisExpression) expressionNode() {}
func (t *ThisExpression) String() string  { return "this" }

type BaseExpression struct{ BaseNode }

func (b *BaseExpression) expressionNode() {}
func (b *BaseExpression) String() string  { return "base" }

// ParenthesizedExpression is `(expr)`, kept distinct from its inner
// expression so round-tripping source preserves the parens and so the
// cast-vs-parenthesized-expression disambiguation has somewhere to
// record which reading won.
type ParenthesizedExpression struct {
	BaseNode
	Inner Expression
}

func (p *ParenthesizedExpression) expressionNode() {}
func (p *ParenthesizedExpression) String() string  { return "(" + p.Inner.String() + ")" }

// TypeReferenceExpression wraps a TypeReference used where the grammar
// expects an expression (the operand of `typeof`/`sizeof`/`is`/`as`, or
// the target type of a cast/`default(T)`).
type TypeReferenceExpression struct {
	BaseNode
	Type *TypeReference
}

func (t *TypeReferenceExpression) expressionNode() {}
func (t *TypeReferenceExpression) String() string   { return t.Type.String() }

// TypeofExpression is `typeof(Type)`.
type TypeofExpression struct {
	BaseNode
	Type *TypeReference
}

func (t *TypeofExpression) expressionNode() {}
func (t *TypeofExpression) String() string  { return "typeof(" + t.Type.String() + ")" }

// SizeofExpression is `sizeof(Type)`.
type SizeofExpression struct {
	BaseNode
	Type *TypeReference
}

func (s *SizeofExpression) expressionNode() {}
func (s *SizeofExpression) String() string  { return "sizeof(" + s.Type.String() + ")" }

// CheckedExpression/UncheckedExpression are `checked(expr)`/`unchecked(expr)`.
type CheckedExpression struct {
	BaseNode
	Inner Expression
}

func (c *CheckedExpression) expressionNode() {}
func (c *CheckedExpression) String() string  { return "checked(" + c.Inner.String() + ")" }

type UncheckedExpression struct {
	BaseNode
	Inner Expression
}

func (u *UncheckedExpression) expressionNode() {}
func (u *UncheckedExpression) String() string  { return "unchecked(" + u.Inner.String() + ")" }

// StackallocExpression is `stackalloc Type[len]`.
type StackallocExpression struct {
	BaseNode
	Type   *TypeReference
	Length Expression
}

func (s *StackallocExpression) expressionNode() {}
func (s *StackallocExpression) String() string {
	return "stackalloc " + s.Type.String() + "[" + s.Length.String() + "]"
}

// DefaultValueExpression is `default` or `default(T)`.
type DefaultValueExpression struct {
	BaseNode
	Type *TypeReference // nil for the bare `default` form
}

func (d *DefaultValueExpression) expressionNode() {}
func (d *DefaultValueExpression) String() string {
	if d.Type != nil {
		return "default(" + d.Type.String() + ")"
	}
	return "default"
}

// AnonymousMethodExpression is `delegate(params) { body }` (the params
// list is optional in source; nil here means it was omitted).
type AnonymousMethodExpression struct {
	BaseNode
	Parameters []*ParameterDecl
	Body       *BlockStatement
}

func (a *AnonymousMethodExpression) expressionNode() {}
func (a *AnonymousMethodExpression) String() string {
	var b bytes.Buffer
	b.WriteString("delegate")
	if a.Parameters != nil {
		b.WriteString("(")
		for i, p := range a.Parameters {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.String())
		}
		b.WriteString(")")
	}
	b.WriteString(" ")
	b.WriteString(a.Body.String())
	return b.String()
}

// ObjectCreationExpression is `new Type(args) [{ initializer }]`.
type ObjectCreationExpression struct {
	BaseNode
	Type        *TypeReference
	Arguments   []Expression
	Initializer []Expression // object/collection initializer entries, nil if absent
}

func (o *ObjectCreationExpression) expressionNode() {}
func (o *ObjectCreationExpression) String() string {
	var b bytes.Buffer
	b.WriteString("new ")
	b.WriteString(o.Type.String())
	b.WriteString("(")
	for i, a := range o.Arguments {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteString(")")
	if o.Initializer != nil {
		b.WriteString(" { ")
		for i, e := range o.Initializer {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(e.String())
		}
		b.WriteString(" }")
	}
	return b.String()
}

// ArrayInitializer is a `{ e1, e2, ... }` bracket used inside an array
// creation expression; entries may themselves be nested ArrayInitializers.
type ArrayInitializer struct {
	BaseNode
	Elements []Expression
}

func (a *ArrayInitializer) expressionNode() {}
func (a *ArrayInitializer) String() string {
	var b bytes.Buffer
	b.WriteString("{ ")
	for i, e := range a.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteString(" }")
	return b.String()
}

// ArrayCreationExpression is `new Type[dims] [initializer]` or `new
// Type[] initializer` (size-elided form, Dims empty).
type ArrayCreationExpression struct {
	BaseNode
	ElementType *TypeReference
	Dims        []Expression // explicit dimension-size expressions, may be empty
	Initializer *ArrayInitializer // non-nil for `new T[] { ... }` / trailing initializer
}

func (a *ArrayCreationExpression) expressionNode() {}
func (a *ArrayCreationExpression) String() string {
	var b bytes.Buffer
	b.WriteString("new ")
	b.WriteString(a.ElementType.String())
	b.WriteString("[")
	for i, d := range a.Dims {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(d.String())
	}
	b.WriteString("]")
	if a.Initializer != nil {
		b.WriteString(" ")
		b.WriteString(a.Initializer.String())
	}
	return b.String()
}

// UnaryExpression is a prefix operator applied to an operand:
// `!x`, `-x`, `+x`, `~x`, `++x`, `--x`, `&x`, `*x`.
type UnaryExpression struct {
	BaseNode
	Operator string
	Operand  Expression
}

func (u *UnaryExpression) expressionNode() {}
func (u *UnaryExpression) String() string  { return u.Operator + u.Operand.String() }

// CastExpression is `(Type) expr`.
type CastExpression struct {
	BaseNode
	Type   *TypeReference
	Operand Expression
}

func (c *CastExpression) expressionNode() {}
func (c *CastExpression) String() string {
	return "(" + c.Type.String() + ")" + c.Operand.String()
}

// PostfixExpression is `x++`/`x--`.
type PostfixExpression struct {
	BaseNode
	Operator string
	Operand  Expression
}

func (p *PostfixExpression) expressionNode() {}
func (p *PostfixExpression) String() string  { return p.Operand.String() + p.Operator }

// MemberAccessExpression is `expr.Name`, `expr?.Name`, or a generic-method
// group `expr.Name<Args>` ahead of an invocation.
type MemberAccessExpression struct {
	BaseNode
	Target      Expression
	Name        string
	GenericArgs []*TypeReference
	IsNullCond  bool // `?.`
}

func (m *MemberAccessExpression) expressionNode() {}
func (m *MemberAccessExpression) String() string {
	dot := "."
	if m.IsNullCond {
		dot = "?."
	}
	s := m.Target.String() + dot + m.Name
	if len(m.GenericArgs) > 0 {
		s += "<"
		for i, a := range m.GenericArgs {
			if i > 0 {
				s += ", "
			}
			s += a.String()
		}
		s += ">"
	}
	return s
}

// PointerMemberAccessExpression is `expr->Name`.
type PointerMemberAccessExpression struct {
	BaseNode
	Target Expression
	Name   string
}

func (p *PointerMemberAccessExpression) expressionNode() {}
func (p *PointerMemberAccessExpression) String() string {
	return p.Target.String() + "->" + p.Name
}

// InvocationExpression is `callee(args)`.
type InvocationExpression struct {
	BaseNode
	Callee    Expression
	Arguments []Expression
}

func (i *InvocationExpression) expressionNode() {}
func (i *InvocationExpression) String() string {
	var b bytes.Buffer
	b.WriteString(i.Callee.String())
	b.WriteString("(")
	for idx, a := range i.Arguments {
		if idx > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteString(")")
	return b.String()
}

// IndexerExpression is `target[args]`.
type IndexerExpression struct {
	BaseNode
	Target    Expression
	Arguments []Expression
}

func (ix *IndexerExpression) expressionNode() {}
func (ix *IndexerExpression) String() string {
	var b bytes.Buffer
	b.WriteString(ix.Target.String())
	b.WriteString("[")
	for i, a := range ix.Arguments {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteString("]")
	return b.String()
}

// GenericNameExpression is `Name<Args>` used where the grammar expects
// an expression (the callee of a generic method invocation).
type GenericNameExpression struct {
	BaseNode
	Name string
	Args []*TypeReference
}

func (g *GenericNameExpression) expressionNode() {}
func (g *GenericNameExpression) String() string {
	var b bytes.Buffer
	b.WriteString(g.Name)
	b.WriteString("<")
	for i, a := range g.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteString(">")
	return b.String()
}

// BinaryExpression covers every left-associative binary operator from
// the precedence cascade: arithmetic, relational, equality, logical,
// bitwise, shift, and the null-coalescing `??`.
type BinaryExpression struct {
	BaseNode
	Left     Expression
	Operator string
	Right    Expression
}

func (b *BinaryExpression) expressionNode() {}
func (b *BinaryExpression) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

// IsExpression is `expr is Type`.
type IsExpression struct {
	BaseNode
	Operand Expression
	Type    *TypeReference
}

func (i *IsExpression) expressionNode() {}
func (i *IsExpression) String() string {
	return "(" + i.Operand.String() + " is " + i.Type.String() + ")"
}

// AsExpression is `expr as Type`.
type AsExpression struct {
	BaseNode
	Operand Expression
	Type    *TypeReference
}

func (a *AsExpression) expressionNode() {}
func (a *AsExpression) String() string {
	return "(" + a.Operand.String() + " as " + a.Type.String() + ")"
}

// ConditionalExpression is `cond ? then : else` (the ternary).
type ConditionalExpression struct {
	BaseNode
	Condition Expression
	Then      Expression
	Else      Expression
}

func (c *ConditionalExpression) expressionNode() {}
func (c *ConditionalExpression) String() string {
	return "(" + c.Condition.String() + " ? " + c.Then.String() + " : " + c.Else.String() + ")"
}

// AssignmentExpression is `lhs op rhs` for `=` and every compound
// assignment operator.
type AssignmentExpression struct {
	BaseNode
	Target   Expression
	Operator string
	Value    Expression
}

func (a *AssignmentExpression) expressionNode() {}
func (a *AssignmentExpression) String() string {
	return "(" + a.Target.String() + " " + a.Operator + " " + a.Value.String() + ")"
}
