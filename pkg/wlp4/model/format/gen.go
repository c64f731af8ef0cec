package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/wlp4/wlp4type/pkg/util/contract"
	"github.com/wlp4/wlp4type/pkg/wlp4/model"
	"github.com/wlp4/wlp4type/pkg/wlp4/syntax"
)

const indentUnit = "  "

// Formatter is a convenience type that implements a number of common utilities used to emit derivation trees and
// the tables built while checking them.
type Formatter struct {
	// The current indent level as a string.
	Indent string
}

// NewFormatter creates a new formatter with no indentation.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Indented bumps the current indentation level, invokes the given function, and then resets the indentation level to
// its prior value.
func (e *Formatter) Indented(f func()) {
	e.Indent += indentUnit
	f()
	e.Indent = e.Indent[:len(e.Indent)-len(indentUnit)]
}

// Fprint prints one or more values to the given writer.
func (e *Formatter) Fprint(w io.Writer, a ...interface{}) {
	_, err := fmt.Fprint(w, a...)
	contract.IgnoreError(err)
}

// Fprintln prints one or more values to the given writer, followed by a newline.
func (e *Formatter) Fprintln(w io.Writer, a ...interface{}) {
	e.Fprint(w, a...)
	e.Fprint(w, "\n")
}

// Fprintf prints a formatted message to the given writer.
func (e *Formatter) Fprintf(w io.Writer, format string, a ...interface{}) {
	_, err := fmt.Fprintf(w, format, a...)
	contract.IgnoreError(err)
}

// FprintTree writes the derivation rooted at n in pre-order, one line per node. Each line is the node's rule
// followed by either its lexeme or its children's rules, and then by the node's type if it has one. Stripping the
// type suffixes reproduces the serialized input the tree was built from.
func (e *Formatter) FprintTree(w io.Writer, n *syntax.Node) {
	e.Fprintln(w, NodeLine(n))
	for _, c := range n.Children {
		e.FprintTree(w, c)
	}
}

// FdumpTree writes an indented rendering of the derivation rooted at n that shows each node's rule and lexeme.
func (e *Formatter) FdumpTree(w io.Writer, n *syntax.Node) {
	if n.Lexeme != "" {
		e.Fprintf(w, "%s%s %s\n", e.Indent, n.Rule, n.Lexeme)
	} else {
		e.Fprintf(w, "%s%s\n", e.Indent, n.Rule)
	}
	e.Indented(func() {
		for _, c := range n.Children {
			e.FdumpTree(w, c)
		}
	})
}

// FprintProcedureTable writes the registered procedure signatures, sorted by name.
func (e *Formatter) FprintProcedureTable(w io.Writer, table *model.ProcedureTable) {
	e.Fprintln(w, "Procedure Table Contents:")
	for _, sig := range table.Signatures() {
		args := "None"
		if len(sig.Parameters) != 0 {
			names := make([]string, len(sig.Parameters))
			for i, p := range sig.Parameters {
				names[i] = p.String()
			}
			args = strings.Join(names, ", ")
		}
		e.Fprintf(w, "Procedure Name: %s | Argument Types: %s\n", sig.Name, args)
	}
}

// NodeLine returns the serialized line for a single node.
func NodeLine(n *syntax.Node) string {
	var b strings.Builder
	b.WriteString(n.Rule)
	switch {
	case n.IsTerminal():
		b.WriteString(" ")
		b.WriteString(n.Lexeme)
	case len(n.Children) == 0:
		b.WriteString(" ")
		b.WriteString(syntax.EmptyProduction)
	default:
		for _, c := range n.Children {
			b.WriteString(" ")
			b.WriteString(c.Rule)
		}
	}
	if n.Type.Known() {
		b.WriteString(" : ")
		b.WriteString(n.Type.String())
	}
	return b.String()
}

// StripTypeAnnotation removes the type suffix, if any, from a line written by FprintTree.
func StripTypeAnnotation(line string) string {
	for _, t := range []syntax.Type{syntax.IntPointerType, syntax.IntType} {
		if suffix := " : " + t.String(); strings.HasSuffix(line, suffix) {
			return strings.TrimSuffix(line, suffix)
		}
	}
	return line
}
