package syntax

import (
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// int wain(int a, int* b) { return a; }
const minimalDerivation = `start BOF procedures EOF
BOF BOF
procedures main
main INT WAIN LPAREN dcl COMMA dcl RPAREN LBRACE dcls statements RETURN expr SEMI RBRACE
INT int
WAIN wain
LPAREN (
dcl type ID
type INT
INT int
ID a
COMMA ,
dcl type ID
type INT STAR
INT int
STAR *
ID b
RPAREN )
LBRACE {
dcls .EMPTY
statements .EMPTY
RETURN return
expr term
term factor
factor ID
ID a
SEMI ;
RBRACE }
EOF EOF
`

func parseString(t *testing.T, text string) (*File, []string) {
	file, diags, err := Parse(strings.NewReader(text), "test.wlp4i")
	require.NoError(t, err)

	var messages []string
	for _, d := range diags {
		messages = append(messages, d.Summary)
	}
	return file, messages
}

func TestParseMinimal(t *testing.T) {
	file, diags := parseString(t, minimalDerivation)
	require.NotNil(t, file)
	assert.Empty(t, diags)

	root := file.Root
	assert.Equal(t, "start", root.Rule)
	assert.Equal(t, []string{"BOF", "procedures", "EOF"}, root.ChildRules())
	assert.Equal(t, "EOF", root.Child(2).Lexeme)

	main := root.Child(1).Child(0)
	require.Equal(t, Main, main.Rule)
	assert.Len(t, main.Children, 14)

	second := main.Child(5)
	assert.Equal(t, []string{"INT", "STAR"}, second.Child(0).ChildRules())
	assert.Equal(t, "b", second.Child(1).Lexeme)
	assert.Equal(t, 16, second.Child(1).Line)

	dcls := main.Child(8)
	assert.Equal(t, Dcls, dcls.Rule)
	assert.Empty(t, dcls.Children)
	assert.Equal(t, "", dcls.Lexeme)
}

func TestParseTypesLiterals(t *testing.T) {
	lines := []string{
		"start factor factor",
		"factor NUM",
		"NUM 42",
		"factor NULL",
		"NULL NULL",
	}
	file, diags := ParseLines(lines, "")
	require.Empty(t, diags)

	num := file.Root.Child(0).Child(0)
	null := file.Root.Child(1).Child(0)
	assert.Equal(t, IntType, num.Type)
	assert.Equal(t, IntPointerType, null.Type)
	assert.Equal(t, NoType, file.Root.Child(0).Type)
}

func TestParseInvalidFirstExpression(t *testing.T) {
	cases := []string{"", "procedures main\n", "\n", "starting BOF procedures EOF\n"}
	for _, text := range cases {
		file, diags := parseString(t, text)
		assert.Nil(t, file, "%q", text)
		assert.Equal(t, []string{"invalid first expression"}, diags, "%q", text)
	}
}

func TestParseMissingLexeme(t *testing.T) {
	lines := []string{
		"start BOF procedures EOF",
		"BOF",
		"procedures main",
	}
	file, diags := ParseLines(lines, "")
	require.NotNil(t, file)
	require.Len(t, diags, 1)
	assert.Equal(t, "missing lexeme for terminal symbol BOF", diags[0].Summary)

	index, ok := LineIndex(diags[0])
	assert.True(t, ok)
	assert.Equal(t, 1, index)

	// The terminal is kept, but nothing after it is consumed.
	assert.Equal(t, []string{"BOF"}, file.Root.ChildRules())
}

func TestParseUnexpectedEndOfFile(t *testing.T) {
	lines := []string{
		"start BOF procedures EOF",
		"BOF BOF",
		"procedures main",
	}
	file, diags := ParseLines(lines, "")
	require.NotNil(t, file)
	require.Len(t, diags, 1)
	assert.Equal(t, "unexpected end of file", diags[0].Summary)

	index, ok := LineIndex(diags[0])
	assert.True(t, ok)
	assert.Equal(t, 3, index)

	// The truncated procedures node is attached without its children; EOF is never read.
	assert.Equal(t, []string{"BOF", "procedures"}, file.Root.ChildRules())
	assert.Empty(t, file.Root.Child(1).Children)
}

func TestParseStopsAfterFirstError(t *testing.T) {
	lines := []string{
		"start expr expr",
		"expr term PLUS term",
		"term factor",
		"factor NUM",
		"NUM",
		"PLUS +",
		"term factor",
		"factor NUM",
		"NUM 1",
		"expr term",
	}
	file, diags := ParseLines(lines, "")
	require.Len(t, diags, 1)

	want := &Node{Rule: "start", Children: []*Node{
		{Rule: "expr", Line: 1, Children: []*Node{
			{Rule: "term", Line: 2, Children: []*Node{
				{Rule: "factor", Line: 3, Children: []*Node{
					{Rule: "NUM", Line: 4, Type: IntType},
				}},
			}},
		}},
	}}
	if diff := deep.Equal(file.Root, want); diff != nil {
		t.Error(diff)
	}
}

func TestIsNonterminal(t *testing.T) {
	assert.True(t, IsNonterminal("procedures"))
	assert.True(t, IsNonterminal("lvalue"))
	assert.False(t, IsNonterminal("ID"))
	assert.False(t, IsNonterminal(".EMPTY"))
	assert.False(t, IsNonterminal("Expr"))
}

func TestChildOutOfRange(t *testing.T) {
	var missing *Node
	assert.Nil(t, missing.Child(0))

	n := &Node{Rule: "expr"}
	assert.Nil(t, n.Child(0))
	assert.Nil(t, n.Child(-1))
	assert.Equal(t, NoType, TypeOf(n.Child(3)))
}

func TestWalk(t *testing.T) {
	file, diags := parseString(t, minimalDerivation)
	require.Empty(t, diags)

	count := 0
	Walk(file.Root, func(*Node) bool {
		count++
		return true
	})
	assert.Equal(t, strings.Count(minimalDerivation, "\n"), count)

	count = 0
	Walk(file.Root, func(n *Node) bool {
		count++
		return n.Rule != Procedures
	})
	assert.Equal(t, 4, count)
}
