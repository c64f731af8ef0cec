package format

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlp4/wlp4type/pkg/wlp4/model"
	"github.com/wlp4/wlp4type/pkg/wlp4/syntax"
)

func bindTestdata(t *testing.T, name string) (*model.Program, string) {
	path := filepath.Join("testdata", name)
	contents, err := ioutil.ReadFile(path)
	require.NoError(t, err)

	file, diags, err := syntax.Parse(bytes.NewReader(contents), path)
	require.NoError(t, err)
	require.Empty(t, diags)

	program, diags := model.BindProgram(file, model.BindOptions{CheckReturnType: true})
	require.Empty(t, diags)
	return program, string(contents)
}

func TestFprintTree(t *testing.T) {
	program, _ := bindTestdata(t, "println.wlp4i")

	expected, err := ioutil.ReadFile(filepath.Join("testdata", "println.wlp4ti"))
	require.NoError(t, err)

	var buf bytes.Buffer
	NewFormatter().FprintTree(&buf, program.Root())
	assert.Equal(t, string(expected), buf.String())
}

func TestFprintTreeRoundTrip(t *testing.T) {
	program, input := bindTestdata(t, "procedures.wlp4i")

	var buf bytes.Buffer
	NewFormatter().FprintTree(&buf, program.Root())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	stripped := make([]string, len(lines))
	for i, line := range lines {
		stripped[i] = StripTypeAnnotation(line)
	}
	assert.Equal(t, input, strings.Join(stripped, "\n")+"\n")

	assert.Contains(t, lines, "factor STAR factor : int")
	assert.Contains(t, lines, "expr expr PLUS term : int")
	assert.Contains(t, lines, "factor ID LPAREN arglist RPAREN : int")
	assert.Contains(t, lines, "ID p : int*")
}

func TestFprintProcedureTable(t *testing.T) {
	program, _ := bindTestdata(t, "procedures.wlp4i")

	var buf bytes.Buffer
	NewFormatter().FprintProcedureTable(&buf, program.ProcedureTable)
	assert.Equal(t, "Procedure Table Contents:\n"+
		"Procedure Name: answer | Argument Types: None\n"+
		"Procedure Name: first | Argument Types: int*, int\n", buf.String())
}

func TestFdumpTree(t *testing.T) {
	root := &syntax.Node{Rule: "factor"}
	root.AddChild(&syntax.Node{Rule: "LPAREN", Lexeme: "("})
	inner := &syntax.Node{Rule: "expr"}
	inner.AddChild(&syntax.Node{Rule: "NUM", Lexeme: "1"})
	root.AddChild(inner)

	var buf bytes.Buffer
	NewFormatter().FdumpTree(&buf, root)
	assert.Equal(t, "factor\n  LPAREN (\n  expr\n    NUM 1\n", buf.String())
}

func TestNodeLine(t *testing.T) {
	empty := &syntax.Node{Rule: "dcls"}
	assert.Equal(t, "dcls .EMPTY", NodeLine(empty))

	id := &syntax.Node{Rule: "ID", Lexeme: "count", Type: syntax.IntPointerType}
	assert.Equal(t, "ID count : int*", NodeLine(id))

	lvalue := &syntax.Node{Rule: "lvalue", Type: syntax.IntType}
	lvalue.AddChild(id)
	assert.Equal(t, "lvalue ID : int", NodeLine(lvalue))
}

func TestStripTypeAnnotation(t *testing.T) {
	assert.Equal(t, "ID x", StripTypeAnnotation("ID x : int"))
	assert.Equal(t, "NULL NULL", StripTypeAnnotation("NULL NULL : int*"))
	assert.Equal(t, "term factor", StripTypeAnnotation("term factor"))
}

func TestIndented(t *testing.T) {
	f := NewFormatter()
	f.Indented(func() {
		assert.Equal(t, "  ", f.Indent)
		f.Indented(func() {
			assert.Equal(t, "    ", f.Indent)
		})
	})
	assert.Equal(t, "", f.Indent)
}
