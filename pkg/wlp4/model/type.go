package model

import (
	"github.com/wlp4/wlp4type/pkg/wlp4/syntax"
)

// Type is the type of a WLP4 value: either a scalar integer or a pointer to one. NoType marks a value whose type
// could not be determined; checks involving such a value are skipped.
type Type = syntax.Type

const (
	NoType         = syntax.NoType
	IntType        = syntax.IntType
	IntPointerType = syntax.IntPointerType
)

// typeFromClause returns the type named by a type clause. `type INT` names int; any other clause, including
// `type INT STAR`, names int*. A missing clause has no type.
func typeFromClause(clause *syntax.Node) Type {
	switch {
	case clause == nil:
		return NoType
	case len(clause.Children) == 1:
		return IntType
	default:
		return IntPointerType
	}
}

func typeOf(x Expression) Type {
	if x == nil {
		return NoType
	}
	return x.Type()
}

// inheritedType returns the type of the first child of the given node. This is the type every node takes before
// any production-specific rule applies.
func inheritedType(n *syntax.Node) Type {
	return syntax.TypeOf(n.Child(0))
}
