package syntax

import (
	"unicode"

	"github.com/hashicorp/hcl/v2"
)

// Type is the type annotation carried by a derivation node. The zero value means the node has no resolved type.
type Type int

const (
	NoType Type = iota
	IntType
	IntPointerType
)

func (t Type) String() string {
	switch t {
	case IntType:
		return "int"
	case IntPointerType:
		return "int*"
	default:
		return ""
	}
}

// Known returns true if the type has been resolved.
func (t Type) Known() bool {
	return t != NoType
}

// Node is a single node in a derivation tree. Nonterminals own an ordered list of children; terminals carry the
// lexeme of the token they were derived from.
type Node struct {
	Rule     string
	Children []*Node
	Lexeme   string
	Type     Type

	// Line is the zero-based index of the input line the node was read from.
	Line int
}

// IsNonterminal returns true if the given symbol names a grammar production rather than a token kind. Productions
// are spelled entirely in lowercase.
func IsNonterminal(symbol string) bool {
	for _, r := range symbol {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

func (n *Node) IsTerminal() bool {
	return !IsNonterminal(n.Rule)
}

// AddChild appends a child to the node. Literal tokens are typed as they are attached, since their types never
// depend on context.
func (n *Node) AddChild(child *Node) {
	switch child.Rule {
	case NUM:
		child.Type = IntType
	case NULL:
		child.Type = IntPointerType
	}
	n.Children = append(n.Children, child)
}

// Child returns the i'th child of the node, or nil if the node has no such child. Trees built from truncated input
// may be missing children, so callers must be prepared for nil.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// ChildRules returns the rule names of the node's children in order.
func (n *Node) ChildRules() []string {
	rules := make([]string, len(n.Children))
	for i, c := range n.Children {
		rules[i] = c.Rule
	}
	return rules
}

// TypeOf returns the type of the given node, or NoType if the node is absent.
func TypeOf(n *Node) Type {
	if n == nil {
		return NoType
	}
	return n.Type
}

// Range returns the source range of the line the node was read from.
func (n *Node) Range() hcl.Range {
	return lineRange("", n.Line)
}

// Walk visits the node and its descendants in pre-order. If visit returns false the node's children are skipped.
func Walk(n *Node, visit func(n *Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, visit)
	}
}
