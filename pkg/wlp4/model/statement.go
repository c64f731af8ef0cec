package model

import (
	"github.com/wlp4/wlp4type/pkg/wlp4/syntax"
)

// Statement is a single statement production. Statements carry no type of their own.
type Statement interface {
	SyntaxNode() *syntax.Node

	isStatement()
}

// AssignmentStatement is `statement lvalue BECOMES expr SEMI`.
type AssignmentStatement struct {
	Syntax *syntax.Node

	Target Expression
	Value  Expression
}

func (s *AssignmentStatement) SyntaxNode() *syntax.Node {
	return s.Syntax
}

func (*AssignmentStatement) isStatement() {}

// DeleteStatement is `statement DELETE LBRACK RBRACK expr SEMI`.
type DeleteStatement struct {
	Syntax *syntax.Node

	Value Expression
}

func (s *DeleteStatement) SyntaxNode() *syntax.Node {
	return s.Syntax
}

func (*DeleteStatement) isStatement() {}

// ErrorStatement is a statement whose shape matches no production.
type ErrorStatement struct {
	Syntax *syntax.Node
}

func (s *ErrorStatement) SyntaxNode() *syntax.Node {
	return s.Syntax
}

func (*ErrorStatement) isStatement() {}

// IfStatement is `statement IF LPAREN test RPAREN LBRACE statements RBRACE ELSE LBRACE statements RBRACE`.
type IfStatement struct {
	Syntax *syntax.Node

	Condition *Test
	Then      []Statement
	Else      []Statement
}

func (s *IfStatement) SyntaxNode() *syntax.Node {
	return s.Syntax
}

func (*IfStatement) isStatement() {}

// PrintlnStatement is `statement PRINTLN LPAREN expr RPAREN SEMI`.
type PrintlnStatement struct {
	Syntax *syntax.Node

	Value Expression
}

func (s *PrintlnStatement) SyntaxNode() *syntax.Node {
	return s.Syntax
}

func (*PrintlnStatement) isStatement() {}

// WhileStatement is `statement WHILE LPAREN test RPAREN LBRACE statements RBRACE`.
type WhileStatement struct {
	Syntax *syntax.Node

	Condition *Test
	Body      []Statement
}

func (s *WhileStatement) SyntaxNode() *syntax.Node {
	return s.Syntax
}

func (*WhileStatement) isStatement() {}

// Test is a comparison: `test expr (EQ|NE|LT|LE|GE|GT) expr`.
type Test struct {
	Syntax *syntax.Node

	Operator     Operator
	LeftOperand  Expression
	RightOperand Expression
}

func (t *Test) SyntaxNode() *syntax.Node {
	return t.Syntax
}
