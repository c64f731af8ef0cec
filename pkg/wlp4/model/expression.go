package model

import (
	"github.com/wlp4/wlp4type/pkg/wlp4/syntax"
)

// Expression is a node that evaluates to a value: one of the expr, term, factor, or lvalue productions. An
// expression's type is stored on its syntax node so that it is printed with the annotated tree.
type Expression interface {
	SyntaxNode() *syntax.Node
	Type() Type

	isExpression()
}

// Operator is a binary arithmetic or comparison operator.
type Operator int

const (
	OpUnknown Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpEqual
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
)

var operatorTokens = map[string]Operator{
	syntax.PLUS:  OpAdd,
	syntax.MINUS: OpSubtract,
	syntax.STAR:  OpMultiply,
	syntax.SLASH: OpDivide,
	syntax.PCT:   OpModulo,
	syntax.EQ:    OpEqual,
	syntax.NE:    OpNotEqual,
	syntax.LT:    OpLess,
	syntax.LE:    OpLessEqual,
	syntax.GT:    OpGreater,
	syntax.GE:    OpGreaterEqual,
}

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpModulo:
		return "%"
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	default:
		return "?"
	}
}

// AddressOfExpression is `factor AMP lvalue`.
type AddressOfExpression struct {
	Syntax *syntax.Node

	Operand Expression
}

func (x *AddressOfExpression) SyntaxNode() *syntax.Node {
	return x.Syntax
}

func (x *AddressOfExpression) Type() Type {
	return x.Syntax.Type
}

func (*AddressOfExpression) isExpression() {}

// BinaryOpExpression is `expr expr (PLUS|MINUS) term` or `term term (STAR|SLASH|PCT) factor`.
type BinaryOpExpression struct {
	Syntax *syntax.Node

	Operator     Operator
	LeftOperand  Expression
	RightOperand Expression
}

func (x *BinaryOpExpression) SyntaxNode() *syntax.Node {
	return x.Syntax
}

func (x *BinaryOpExpression) Type() Type {
	return x.Syntax.Type
}

func (*BinaryOpExpression) isExpression() {}

// CallExpression is `factor ID LPAREN [arglist] RPAREN`. Calls always produce an int; arguments are checked as
// expressions but are not matched against the callee's signature.
type CallExpression struct {
	Syntax *syntax.Node

	Name string
	Args []Expression
}

func (x *CallExpression) SyntaxNode() *syntax.Node {
	return x.Syntax
}

func (x *CallExpression) Type() Type {
	return x.Syntax.Type
}

func (*CallExpression) isExpression() {}

// DereferenceExpression is `factor STAR factor` or `lvalue STAR factor`.
type DereferenceExpression struct {
	Syntax *syntax.Node

	Operand Expression
}

func (x *DereferenceExpression) SyntaxNode() *syntax.Node {
	return x.Syntax
}

func (x *DereferenceExpression) Type() Type {
	return x.Syntax.Type
}

func (*DereferenceExpression) isExpression() {}

// ErrorExpression is an expression node whose shape matches no production, typically because the tree was
// truncated.
type ErrorExpression struct {
	Syntax *syntax.Node
}

func (x *ErrorExpression) SyntaxNode() *syntax.Node {
	return x.Syntax
}

func (x *ErrorExpression) Type() Type {
	return x.Syntax.Type
}

func (*ErrorExpression) isExpression() {}

// LiteralValueExpression is `factor NUM` or `factor NULL`.
type LiteralValueExpression struct {
	Syntax *syntax.Node

	Token *syntax.Node
}

func (x *LiteralValueExpression) SyntaxNode() *syntax.Node {
	return x.Syntax
}

func (x *LiteralValueExpression) Type() Type {
	return x.Syntax.Type
}

func (*LiteralValueExpression) isExpression() {}

// NewExpression is `factor NEW INT LBRACK expr RBRACK`.
type NewExpression struct {
	Syntax *syntax.Node

	Size Expression
}

func (x *NewExpression) SyntaxNode() *syntax.Node {
	return x.Syntax
}

func (x *NewExpression) Type() Type {
	return x.Syntax.Type
}

func (*NewExpression) isExpression() {}

// ParenthesizedExpression is `factor LPAREN expr RPAREN` or `lvalue LPAREN lvalue RPAREN`.
type ParenthesizedExpression struct {
	Syntax *syntax.Node

	Inner Expression
}

func (x *ParenthesizedExpression) SyntaxNode() *syntax.Node {
	return x.Syntax
}

func (x *ParenthesizedExpression) Type() Type {
	return x.Syntax.Type
}

func (*ParenthesizedExpression) isExpression() {}

// UnitExpression is a unit production that forwards its operand: `expr term` or `term factor`.
type UnitExpression struct {
	Syntax *syntax.Node

	Operand Expression
}

func (x *UnitExpression) SyntaxNode() *syntax.Node {
	return x.Syntax
}

func (x *UnitExpression) Type() Type {
	return x.Syntax.Type
}

func (*UnitExpression) isExpression() {}

// VariableReferenceExpression is `factor ID` or `lvalue ID`.
type VariableReferenceExpression struct {
	Syntax *syntax.Node

	Name       string
	Identifier *syntax.Node
}

func (x *VariableReferenceExpression) SyntaxNode() *syntax.Node {
	return x.Syntax
}

func (x *VariableReferenceExpression) Type() Type {
	return x.Syntax.Type
}

func (*VariableReferenceExpression) isExpression() {}
