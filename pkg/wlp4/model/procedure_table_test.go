package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcedureTableRegister(t *testing.T) {
	table := newProcedureTable()

	params := []Type{IntType, IntPointerType}
	assert.True(t, table.register("sum", params))
	assert.False(t, table.register("sum", nil))

	// The table keeps its own copy of the parameter list.
	params[0] = IntPointerType
	sig, ok := table.Lookup("sum")
	assert.True(t, ok)
	assert.Equal(t, "sum(int, int*)", sig.String())

	_, ok = table.Lookup("missing")
	assert.False(t, ok)
}

func TestProcedureTableSignatures(t *testing.T) {
	table := newProcedureTable()
	table.register("zeta", nil)
	table.register("alpha", []Type{IntType})
	table.register("mid", []Type{IntPointerType, IntPointerType})

	var names []string
	for _, sig := range table.Signatures() {
		names = append(names, sig.String())
	}
	assert.Equal(t, []string{"alpha(int)", "mid(int*, int*)", "zeta()"}, names)
	assert.Equal(t, 3, table.Len())
}

func TestScopes(t *testing.T) {
	s := &scopes{}
	assert.Nil(t, s.current())

	outer := s.push()
	assert.True(t, outer.define("x", &Variable{Name: "x", VariableType: IntType}))
	assert.False(t, outer.define("x", &Variable{Name: "x", VariableType: IntPointerType}))

	s.push()
	_, ok := s.bindReference("x")
	assert.False(t, ok)

	s.pop()
	v, ok := s.bindReference("x")
	assert.True(t, ok)
	assert.Equal(t, IntType, v.VariableType)
	assert.Equal(t, map[string]Type{"x": IntType}, outer.types())
}

func TestScopeClosest(t *testing.T) {
	s := scope{}
	for _, name := range []string{"a", "total", "totals", "index"} {
		s.define(name, &Variable{Name: name, VariableType: IntType})
	}

	name, ok := s.closest("totl")
	assert.True(t, ok)
	assert.Equal(t, "total", name)

	name, ok = s.closest("idx")
	assert.True(t, ok)
	assert.Equal(t, "index", name)

	_, ok = s.closest("b")
	assert.False(t, ok)

	_, ok = s.closest("unrelated")
	assert.False(t, ok)
}
