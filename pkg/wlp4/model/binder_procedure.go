package model

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/hcl/v2"

	"github.com/wlp4/wlp4type/pkg/util/logging"
	"github.com/wlp4/wlp4type/pkg/wlp4/syntax"
)

func (b *binder) bindProcedure(p *Procedure) hcl.Diagnostics {
	b.enterProcedure()
	logging.V(5).Infof("binding procedure %q (#%d)", p.Name, b.procedureCount)

	var diagnostics hcl.Diagnostics
	if p.IsEntryPoint {
		diagnostics = append(diagnostics, b.bindEntryPointHeader(p)...)
	} else {
		diagnostics = append(diagnostics, b.bindProcedureHeader(p)...)
	}

	for _, d := range p.Declarations {
		diagnostics = append(diagnostics, b.bindVariableDeclaration(d)...)
	}
	diagnostics = append(diagnostics, b.bindStatements(p.Statements)...)

	if p.Return != nil {
		diagnostics = append(diagnostics, b.bindExpression(p.Return)...)
		if typ := p.Return.Type(); b.options.CheckReturnType && typ.Known() && typ != IntType {
			diagnostics = append(diagnostics, returnTypeNotInt(p, typ))
		}
	}

	p.Variables = b.scopes.current().types()
	if logging.V(7) {
		logging.V(7).Infof("scope of %q: %s", p.Name, spew.Sdump(p.Variables))
	}
	return diagnostics
}

// bindProcedureHeader registers the procedure's signature and declares its parameters. A procedure without
// parameters is registered immediately; otherwise the signature is committed once the last parameter's type is
// known.
func (b *binder) bindProcedureHeader(p *Procedure) hcl.Diagnostics {
	b.procedureName, b.parameterTypes = p.Name, nil

	var diagnostics hcl.Diagnostics
	if p.params != nil && len(p.params.Children) == 0 {
		diagnostics = append(diagnostics, b.registerProcedure(p.Syntax, b.procedureName)...)
	}

	for i, v := range p.Parameters {
		b.parameterTypes = append(b.parameterTypes, typeFromClause(v.TypeClause))
		if i == len(p.Parameters)-1 {
			diagnostics = append(diagnostics, b.registerProcedure(p.Syntax, b.procedureName)...)
		}
		diagnostics = append(diagnostics, b.bindVariable(v)...)
	}
	return diagnostics
}

// bindEntryPointHeader checks the entry point's signature and declares its parameters. The entry point is not
// entered into the procedure table.
func (b *binder) bindEntryPointHeader(p *Procedure) hcl.Diagnostics {
	var diagnostics hcl.Diagnostics
	if typ := typeFromClause(p.Syntax.Child(5).Child(0)); typ.Known() && typ != IntType {
		diagnostics = append(diagnostics, entryPointSecondParameterNotInt(p))
	}

	for _, v := range p.Parameters {
		diagnostics = append(diagnostics, b.bindVariable(v)...)
	}
	return diagnostics
}

// bindVariable declares a variable in the current scope. The variable's identifier is annotated with the declared
// type even if the name is already taken; the existing binding is kept.
func (b *binder) bindVariable(v *Variable) hcl.Diagnostics {
	v.VariableType = typeFromClause(v.TypeClause)
	if v.Identifier == nil {
		return nil
	}
	v.Identifier.Type = v.VariableType

	if v.Name == "" {
		return nil
	}
	if !b.scopes.current().define(v.Name, v) {
		return hcl.Diagnostics{variableAlreadyDeclared(v)}
	}
	return nil
}

func (b *binder) bindVariableDeclaration(d *VariableDeclaration) hcl.Diagnostics {
	diagnostics := b.bindVariable(d.Variable)

	declared, initializer := d.Variable.VariableType, syntax.TypeOf(d.Initializer)
	if declared.Known() && initializer.Known() && declared != initializer {
		diagnostics = append(diagnostics, typeCastingError(d, initializer))
	}
	return diagnostics
}
