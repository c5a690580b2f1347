package parser

import "github.com/d-rezzer/csharpparse/internal/lexer"

// Operator precedence levels, low to high. Mirrors the cascade in
// spec.md §3 (assignment/conditional down through primary-with-postfix,
// everything above `unary` implemented as one parseXxx function per
// level rather than a Pratt precedence table, since the grammar's
// levels don't share a uniform left-recursive shape above `unary`).
const (
	lowest = iota
	precAssignment
	precConditional
	precCoalesce
	precLogicalOr
	precLogicalAnd
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precUnary
	precPrimary
)

var assignmentOperators = map[lexer.TokenType]string{
	lexer.ASSIGN:         "=",
	lexer.PLUS_ASSIGN:    "+=",
	lexer.MINUS_ASSIGN:   "-=",
	lexer.STAR_ASSIGN:    "*=",
	lexer.SLASH_ASSIGN:   "/=",
	lexer.PERCENT_ASSIGN: "%=",
	lexer.AMP_ASSIGN:     "&=",
	lexer.PIPE_ASSIGN:    "|=",
	lexer.CARET_ASSIGN:   "^=",
	lexer.SHL_ASSIGN:     "<<=",
	// SHR_ASSIGN is never produced by the lexer (same reasoning as SHR
	// itself; see IsShiftRight) — parseAssignmentExpression synthesizes
	// ">>=" from GT+GE via IsShiftRightAssign instead.
}

// typeKeywords is the set of built-in type keywords usable as a
// TypeReference's base name.
var typeKeywords = map[lexer.TokenType]bool{
	lexer.VOID: true, lexer.BOOL: true, lexer.BYTE: true, lexer.SBYTE: true,
	lexer.SHORT: true, lexer.USHORT: true, lexer.INT_KW: true, lexer.UINT: true,
	lexer.LONG: true, lexer.ULONG: true, lexer.CHAR_KW: true, lexer.FLOAT_KW: true,
	lexer.DOUBLE: true, lexer.DECIMAL: true, lexer.STRING_KW: true,
	lexer.OBJECT: true, lexer.DYNAMIC: true, lexer.VAR: true,
}

// modifierKeywords is the set of modifier-keyword token types; modifierBit
// (unit.go) maps each one to its ast.Modifier bit.
var modifierKeywords = map[lexer.TokenType]bool{
	lexer.PUBLIC: true, lexer.PROTECTED: true, lexer.INTERNAL: true,
	lexer.PRIVATE: true, lexer.STATIC: true, lexer.READONLY: true,
	lexer.SEALED: true, lexer.ABSTRACT: true, lexer.VIRTUAL: true,
	lexer.OVERRIDE: true, lexer.EXTERN: true, lexer.NEW: true,
	lexer.VOLATILE: true, lexer.UNSAFE: true, lexer.CONST: true,
}

// memberDeclStarters is the FIRST set used to decide whether the next
// token begins another type/struct member (as opposed to the closing
// brace of the containing type).
var memberDeclStarters = func() map[lexer.TokenType]bool {
	m := map[lexer.TokenType]bool{
		lexer.CLASS: true, lexer.STRUCT: true, lexer.INTERFACE: true,
		lexer.ENUM: true, lexer.DELEGATE: true, lexer.EVENT: true,
		lexer.CONST: true, lexer.OPERATOR: true, lexer.IMPLICIT: true,
		lexer.EXPLICIT: true, lexer.TILDE: true, lexer.LBRACK: true,
		lexer.IDENT: true, lexer.VOID: true,
	}
	for tt := range modifierKeywords {
		m[tt] = true
	}
	for tt := range typeKeywords {
		m[tt] = true
	}
	return m
}()

// contextual keyword spellings (lex as IDENT; meaningful only by .Value
// at specific grammar positions).
const (
	kwWhere    = "where"
	kwGet      = "get"
	kwSet      = "set"
	kwAdd      = "add"
	kwRemove   = "remove"
	kwYield    = "yield"
	kwPartial  = "partial"
	kwAssembly = "assembly"
	kwField    = "field"
	kwMethod   = "method"
	kwModule   = "module"
	kwParam    = "param"
	kwProperty = "property"
	kwTypeTgt  = "type"
	kwReturn   = "return"
	kwEvent    = "event"
	kwIn       = "in"
	kwOut      = "out"
)

// localAttrTargets is the complete set of valid attribute-section
// target specifiers usable on a member/parameter (SPEC_FULL §3). A
// prior revision of this check only verified the target was non-empty,
// which accepted any identifier as a "valid" target; this is real set
// membership.
var localAttrTargets = map[string]bool{
	kwField: true, kwMethod: true, kwParam: true, kwProperty: true,
	kwTypeTgt: true, kwReturn: true, kwEvent: true,
}

// globalAttrTargets is the set of valid attribute-section targets at
// compilation-unit scope (`[assembly: ...]` / `[module: ...]`).
var globalAttrTargets = map[string]bool{
	kwModule: true, kwAssembly: true,
}
