package model

import (
	"github.com/dustin/go-humanize"
	"github.com/hashicorp/hcl/v2"

	"github.com/wlp4/wlp4type/pkg/util/contract"
	"github.com/wlp4/wlp4type/pkg/util/logging"
	"github.com/wlp4/wlp4type/pkg/wlp4/syntax"
)

// BindOptions controls optional checks performed while binding.
type BindOptions struct {
	// CheckReturnType requires the return expression of every procedure to be an int.
	CheckReturnType bool
}

type binder struct {
	options BindOptions

	scopes     *scopes
	procedures *ProcedureTable

	// procedureName and parameterTypes describe the procedure whose header is being bound.
	procedureName  string
	parameterTypes []Type
	procedureCount int
}

// BindProgram type-checks a derivation tree. Declarations are bound as they are reached and every expression node
// in the tree is annotated with its type. Problems are reported as diagnostics; binding always runs to completion,
// including over partial trees.
func BindProgram(file *syntax.File, options BindOptions) (*Program, hcl.Diagnostics) {
	contract.Assertf(file != nil && file.Root != nil, "cannot bind a missing derivation")

	b := &binder{
		options:    options,
		scopes:     &scopes{},
		procedures: newProcedureTable(),
	}

	procedures := lowerProgram(file.Root)

	var diagnostics hcl.Diagnostics
	for _, p := range procedures {
		diagnostics = append(diagnostics, b.bindProcedure(p)...)
	}

	if logging.V(3) {
		nodes := 0
		syntax.Walk(file.Root, func(*syntax.Node) bool {
			nodes++
			return true
		})
		logging.V(3).Infof("bound %s: %s procedures, %s nodes, %s diagnostics", file.Name,
			humanize.Comma(int64(len(procedures))), humanize.Comma(int64(nodes)), humanize.Comma(int64(len(diagnostics))))
	}

	return &Program{
		File:           file,
		Procedures:     procedures,
		ProcedureTable: b.procedures,
	}, diagnostics
}

// enterProcedure replaces the current scope with a fresh one.
func (b *binder) enterProcedure() scope {
	if b.procedureCount != 0 && len(b.scopes.stack) != 0 {
		b.scopes.pop()
	}
	b.procedureCount++
	return b.scopes.push()
}

func (b *binder) registerProcedure(node *syntax.Node, name string) hcl.Diagnostics {
	if name == "" {
		return nil
	}
	if !b.procedures.register(name, b.parameterTypes) {
		return hcl.Diagnostics{procedureAlreadyExists(node, name)}
	}
	return nil
}
