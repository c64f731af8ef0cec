package model

import (
	"github.com/hashicorp/hcl/v2"

	"github.com/wlp4/wlp4type/pkg/util/contract"
)

func (b *binder) bindStatements(stmts []Statement) hcl.Diagnostics {
	var diagnostics hcl.Diagnostics
	for _, s := range stmts {
		diagnostics = append(diagnostics, b.bindStatement(s)...)
	}
	return diagnostics
}

func (b *binder) bindStatement(stmt Statement) hcl.Diagnostics {
	switch stmt := stmt.(type) {
	case *AssignmentStatement:
		return b.bindAssignmentStatement(stmt)
	case *DeleteStatement:
		return b.bindDeleteStatement(stmt)
	case *ErrorStatement:
		return nil
	case *IfStatement:
		return b.bindIfStatement(stmt)
	case *PrintlnStatement:
		return b.bindPrintlnStatement(stmt)
	case *WhileStatement:
		return b.bindWhileStatement(stmt)
	default:
		contract.Failf("unexpected statement of type %T (line %v)", stmt, stmt.SyntaxNode().Line)
		return nil
	}
}

func (b *binder) bindAssignmentStatement(stmt *AssignmentStatement) hcl.Diagnostics {
	diagnostics := b.bindExpression(stmt.Target)
	diagnostics = append(diagnostics, b.bindExpression(stmt.Value)...)

	target, value := typeOf(stmt.Target), typeOf(stmt.Value)
	if target.Known() && value.Known() && target != value {
		diagnostics = append(diagnostics, typeMismatch(stmt, target, value))
	}
	return diagnostics
}

func (b *binder) bindDeleteStatement(stmt *DeleteStatement) hcl.Diagnostics {
	diagnostics := b.bindExpression(stmt.Value)
	if value := typeOf(stmt.Value); value.Known() && value != IntPointerType {
		diagnostics = append(diagnostics, deleteExpectsPointer(stmt, value))
	}
	return diagnostics
}

func (b *binder) bindIfStatement(stmt *IfStatement) hcl.Diagnostics {
	diagnostics := b.bindTest(stmt.Condition)
	diagnostics = append(diagnostics, b.bindStatements(stmt.Then)...)
	diagnostics = append(diagnostics, b.bindStatements(stmt.Else)...)
	return diagnostics
}

func (b *binder) bindPrintlnStatement(stmt *PrintlnStatement) hcl.Diagnostics {
	diagnostics := b.bindExpression(stmt.Value)
	if value := typeOf(stmt.Value); value.Known() && value != IntType {
		diagnostics = append(diagnostics, printlnExpectsInt(stmt, value))
	}
	return diagnostics
}

func (b *binder) bindWhileStatement(stmt *WhileStatement) hcl.Diagnostics {
	diagnostics := b.bindTest(stmt.Condition)
	return append(diagnostics, b.bindStatements(stmt.Body)...)
}

func (b *binder) bindTest(test *Test) hcl.Diagnostics {
	if test == nil {
		return nil
	}

	diagnostics := b.bindExpression(test.LeftOperand)
	diagnostics = append(diagnostics, b.bindExpression(test.RightOperand)...)

	left, right := typeOf(test.LeftOperand), typeOf(test.RightOperand)
	if left.Known() && right.Known() && left != right {
		diagnostics = append(diagnostics, comparisonTypeMismatch(test, left, right))
	}
	return diagnostics
}
