package syntax

import (
	"bufio"
	"io"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/pkg/errors"

	"github.com/wlp4/wlp4type/pkg/util/logging"
)

// maxLineLength bounds the length of a single derivation line. Lexemes are short, but a line listing the children of
// a production is unbounded in principle.
const maxLineLength = 1 << 20

// File is a derivation tree read from a single input.
type File struct {
	Name string
	Root *Node
}

// Parse reads a serialized derivation from r and rebuilds its tree. The returned error is non-nil only if r could
// not be read; problems with the derivation itself are reported as diagnostics. If the input does not begin with the
// start symbol the returned file is nil.
func Parse(r io.Reader, filename string) (*File, hcl.Diagnostics, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrapf(err, "reading %s", filename)
	}

	file, diagnostics := ParseLines(lines, filename)
	return file, diagnostics, nil
}

// ParseLines rebuilds a derivation tree from its serialized lines.
func ParseLines(lines []string, filename string) (*File, hcl.Diagnostics) {
	if len(lines) == 0 {
		return nil, hcl.Diagnostics{invalidFirstExpression()}
	}
	if fields := strings.Fields(lines[0]); len(fields) == 0 || fields[0] != StartSymbol {
		return nil, hcl.Diagnostics{invalidFirstExpression()}
	}

	p := &parser{filename: filename, lines: lines}
	root := &Node{Rule: StartSymbol}
	p.build(root)

	logging.V(5).Infof("read %d of %d derivation lines from %s (%d diagnostics)",
		p.index+1, len(lines), filename, len(p.diagnostics))

	return &File{Name: filename, Root: root}, p.diagnostics
}

type parser struct {
	filename string
	lines    []string
	index    int

	diagnostics hcl.Diagnostics
}

// build fills in node from the line under the cursor, recursively consuming one line per descendant. Once any error
// has been reported no further lines are consumed, which leaves the tree partially built.
func (p *parser) build(node *Node) {
	node.Line = p.index

	fields := strings.Fields(p.lines[p.index])
	head := ""
	if len(fields) > 0 {
		head = fields[0]
	}

	if !IsNonterminal(head) {
		if len(fields) < 2 {
			p.diagnostics = append(p.diagnostics, missingLexeme(p.filename, head, p.index))
			return
		}
		node.Lexeme = fields[1]
		return
	}

	for _, childRule := range fields[1:] {
		if p.diagnostics.HasErrors() || childRule == EmptyProduction {
			break
		}

		child := &Node{Rule: childRule}
		p.index++
		if p.index >= len(p.lines) {
			p.diagnostics = append(p.diagnostics, unexpectedEndOfFile(p.filename, p.index))
			return
		}
		p.build(child)
		node.AddChild(child)
	}
}
