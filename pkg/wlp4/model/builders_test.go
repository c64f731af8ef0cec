package model

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wlp4/wlp4type/pkg/wlp4/syntax"
)

func tok(rule, lexeme string) *syntax.Node {
	return &syntax.Node{Rule: rule, Lexeme: lexeme}
}

func nt(rule string, children ...*syntax.Node) *syntax.Node {
	n := &syntax.Node{Rule: rule}
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

func intClause() *syntax.Node {
	return nt("type", tok("INT", "int"))
}

func pointerClause() *syntax.Node {
	return nt("type", tok("INT", "int"), tok("STAR", "*"))
}

func dcl(clause *syntax.Node, name string) *syntax.Node {
	return nt("dcl", clause, tok("ID", name))
}

func intDcl(name string) *syntax.Node {
	return dcl(intClause(), name)
}

func pointerDcl(name string) *syntax.Node {
	return dcl(pointerClause(), name)
}

type declaration struct {
	dcl, value *syntax.Node
}

func declare(d *syntax.Node, value *syntax.Node) declaration {
	return declaration{dcl: d, value: value}
}

func num(value string) *syntax.Node {
	return tok("NUM", value)
}

func null() *syntax.Node {
	return tok("NULL", "NULL")
}

// dcls builds the left-recursive declaration chain for decls.
func dcls(decls ...declaration) *syntax.Node {
	n := nt("dcls")
	for _, d := range decls {
		n = nt("dcls", n, d.dcl, tok("BECOMES", "="), d.value, tok("SEMI", ";"))
	}
	return n
}

// statements builds the left-recursive statement chain for stmts.
func statements(stmts ...*syntax.Node) *syntax.Node {
	n := nt("statements")
	for _, s := range stmts {
		n = nt("statements", n, s)
	}
	return n
}

func wain(first, second, decls, stmts, result *syntax.Node) *syntax.Node {
	return nt("main",
		tok("INT", "int"), tok("WAIN", "wain"), tok("LPAREN", "("), first, tok("COMMA", ","), second,
		tok("RPAREN", ")"), tok("LBRACE", "{"), decls, stmts, tok("RETURN", "return"), result, tok("SEMI", ";"),
		tok("RBRACE", "}"))
}

func procedure(name string, params []*syntax.Node, decls, stmts, result *syntax.Node) *syntax.Node {
	list := nt("params")
	if len(params) != 0 {
		var chain *syntax.Node
		for i := len(params) - 1; i >= 0; i-- {
			if chain == nil {
				chain = nt("paramlist", params[i])
			} else {
				chain = nt("paramlist", params[i], tok("COMMA", ","), chain)
			}
		}
		list = nt("params", chain)
	}
	return nt("procedure",
		tok("INT", "int"), tok("ID", name), tok("LPAREN", "("), list, tok("RPAREN", ")"), tok("LBRACE", "{"),
		decls, stmts, tok("RETURN", "return"), result, tok("SEMI", ";"), tok("RBRACE", "}"))
}

// derivation builds a start node over procs, the last of which must be the entry point.
func derivation(procs ...*syntax.Node) *syntax.Node {
	var chain *syntax.Node
	for i := len(procs) - 1; i >= 0; i-- {
		if chain == nil {
			chain = nt("procedures", procs[i])
		} else {
			chain = nt("procedures", procs[i], chain)
		}
	}
	return nt("start", tok("BOF", "BOF"), chain, tok("EOF", "EOF"))
}

func idFactor(name string) *syntax.Node {
	return nt("factor", tok("ID", name))
}

func numFactor(value string) *syntax.Node {
	return nt("factor", num(value))
}

func nullFactor() *syntax.Node {
	return nt("factor", null())
}

func term(factor *syntax.Node) *syntax.Node {
	return nt("term", factor)
}

func expr(factor *syntax.Node) *syntax.Node {
	return nt("expr", term(factor))
}

// binary builds `expr expr op term` for additive operators and `term term op factor` for the rest.
func binary(left *syntax.Node, op string, right *syntax.Node) *syntax.Node {
	switch op {
	case "PLUS", "MINUS":
		return nt("expr", expr(left), tok(op, op), term(right))
	default:
		return nt("expr", nt("term", term(left), tok(op, op), right))
	}
}

func parenFactor(inner *syntax.Node) *syntax.Node {
	return nt("factor", tok("LPAREN", "("), inner, tok("RPAREN", ")"))
}

func addressOf(name string) *syntax.Node {
	return nt("factor", tok("AMP", "&"), nt("lvalue", tok("ID", name)))
}

func dereference(factor *syntax.Node) *syntax.Node {
	return nt("factor", tok("STAR", "*"), factor)
}

func newArray(size *syntax.Node) *syntax.Node {
	return nt("factor", tok("NEW", "new"), tok("INT", "int"), tok("LBRACK", "["), size, tok("RBRACK", "]"))
}

func call(name string, args ...*syntax.Node) *syntax.Node {
	if len(args) == 0 {
		return nt("factor", tok("ID", name), tok("LPAREN", "("), tok("RPAREN", ")"))
	}
	var chain *syntax.Node
	for i := len(args) - 1; i >= 0; i-- {
		if chain == nil {
			chain = nt("arglist", args[i])
		} else {
			chain = nt("arglist", args[i], tok("COMMA", ","), chain)
		}
	}
	return nt("factor", tok("ID", name), tok("LPAREN", "("), chain, tok("RPAREN", ")"))
}

func lvalue(name string) *syntax.Node {
	return nt("lvalue", tok("ID", name))
}

func assign(target, value *syntax.Node) *syntax.Node {
	return nt("statement", target, tok("BECOMES", "="), value, tok("SEMI", ";"))
}

func printStatement(value *syntax.Node) *syntax.Node {
	return nt("statement", tok("PRINTLN", "println"), tok("LPAREN", "("), value, tok("RPAREN", ")"), tok("SEMI", ";"))
}

func deleteArray(value *syntax.Node) *syntax.Node {
	return nt("statement", tok("DELETE", "delete"), tok("LBRACK", "["), tok("RBRACK", "]"), value, tok("SEMI", ";"))
}

func comparison(left *syntax.Node, op string, right *syntax.Node) *syntax.Node {
	return nt("test", left, tok(op, op), right)
}

func whileLoop(condition, body *syntax.Node) *syntax.Node {
	return nt("statement", tok("WHILE", "while"), tok("LPAREN", "("), condition, tok("RPAREN", ")"),
		tok("LBRACE", "{"), body, tok("RBRACE", "}"))
}

func ifElse(condition, then, otherwise *syntax.Node) *syntax.Node {
	return nt("statement", tok("IF", "if"), tok("LPAREN", "("), condition, tok("RPAREN", ")"),
		tok("LBRACE", "{"), then, tok("RBRACE", "}"), tok("ELSE", "else"), tok("LBRACE", "{"), otherwise,
		tok("RBRACE", "}"))
}

// bindRoot binds the tree rooted at root and returns the bound program and the summaries of its diagnostics.
func bindRoot(t *testing.T, root *syntax.Node, options BindOptions) (*Program, []string) {
	program, diags := BindProgram(&syntax.File{Name: t.Name(), Root: root}, options)
	require.NotNil(t, program)

	var messages []string
	for _, d := range diags {
		messages = append(messages, d.Summary)
	}
	return program, messages
}
