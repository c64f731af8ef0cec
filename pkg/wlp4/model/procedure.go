package model

import (
	"github.com/wlp4/wlp4type/pkg/wlp4/syntax"
)

// Procedure is a procedure definition. The entry point (`main INT WAIN ...`) is also represented as a Procedure,
// with IsEntryPoint set.
type Procedure struct {
	Syntax *syntax.Node

	Name         string
	IsEntryPoint bool

	Parameters   []*Variable
	Declarations []*VariableDeclaration
	Statements   []Statement
	Return       Expression

	// Variables holds the procedure's scope once binding is complete.
	Variables map[string]Type

	// params is the header's parameter list, or nil if the header was truncated before it.
	params *syntax.Node
}

func (p *Procedure) SyntaxNode() *syntax.Node {
	return p.Syntax
}
