package model

import (
	"github.com/wlp4/wlp4type/pkg/wlp4/syntax"
)

// Variable is a declared parameter or local: `dcl type ID`.
type Variable struct {
	Syntax *syntax.Node

	Name         string
	TypeClause   *syntax.Node
	Identifier   *syntax.Node
	VariableType Type
}

func (v *Variable) SyntaxNode() *syntax.Node {
	return v.Syntax
}

func (v *Variable) Type() Type {
	return v.VariableType
}

// VariableDeclaration is a local declaration with its initializer: `dcls dcls dcl BECOMES (NUM|NULL) SEMI`.
type VariableDeclaration struct {
	Syntax *syntax.Node

	Variable    *Variable
	Initializer *syntax.Node
}

func (d *VariableDeclaration) SyntaxNode() *syntax.Node {
	return d.Syntax
}
