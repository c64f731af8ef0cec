package model

import (
	"github.com/hashicorp/hcl/v2"

	"github.com/wlp4/wlp4type/pkg/util/contract"
)

// bindExpression binds an expression and its operands and annotates the expression's syntax node with its type.
// Operands are bound first; each expression then starts from the type of its first child and applies the rule for
// its production. An operand without a type never triggers a check.
func (b *binder) bindExpression(x Expression) hcl.Diagnostics {
	if x == nil {
		return nil
	}

	switch x := x.(type) {
	case *AddressOfExpression:
		return b.bindAddressOfExpression(x)
	case *BinaryOpExpression:
		return b.bindBinaryOpExpression(x)
	case *CallExpression:
		return b.bindCallExpression(x)
	case *DereferenceExpression:
		return b.bindDereferenceExpression(x)
	case *ErrorExpression:
		x.Syntax.Type = inheritedType(x.Syntax)
		return nil
	case *LiteralValueExpression:
		x.Syntax.Type = inheritedType(x.Syntax)
		return nil
	case *NewExpression:
		return b.bindNewExpression(x)
	case *ParenthesizedExpression:
		return b.bindParenthesizedExpression(x)
	case *UnitExpression:
		return b.bindUnitExpression(x)
	case *VariableReferenceExpression:
		return b.bindVariableReferenceExpression(x)
	default:
		contract.Failf("unexpected expression node of type %T (line %v)", x, x.SyntaxNode().Line)
		return nil
	}
}

func (b *binder) bindAddressOfExpression(x *AddressOfExpression) hcl.Diagnostics {
	diagnostics := b.bindExpression(x.Operand)

	typ := inheritedType(x.Syntax)
	if operand := typeOf(x.Operand); operand.Known() {
		if operand != IntType {
			diagnostics = append(diagnostics, expectedIntOperand(x, operand))
		}
		typ = IntPointerType
	}
	x.Syntax.Type = typ
	return diagnostics
}

func (b *binder) bindBinaryOpExpression(x *BinaryOpExpression) hcl.Diagnostics {
	diagnostics := b.bindExpression(x.LeftOperand)
	diagnostics = append(diagnostics, b.bindExpression(x.RightOperand)...)

	typ := inheritedType(x.Syntax)
	left, right := typeOf(x.LeftOperand), typeOf(x.RightOperand)
	switch x.Operator {
	case OpAdd:
		if left == IntPointerType || right == IntPointerType {
			typ = IntPointerType
		}
	case OpSubtract:
		// int* - int* is accepted and typed as a pointer.
		if left == IntType && right == IntPointerType {
			diagnostics = append(diagnostics, cannotSubtractPointerFromInt(x))
		}
		if left == IntPointerType {
			typ = IntPointerType
		}
	case OpMultiply, OpDivide, OpModulo:
		if left == IntPointerType || right == IntPointerType {
			diagnostics = append(diagnostics, operandMustBeInt(x, left, right))
			typ = IntType
		}
	}
	x.Syntax.Type = typ
	return diagnostics
}

func (b *binder) bindCallExpression(x *CallExpression) hcl.Diagnostics {
	var diagnostics hcl.Diagnostics
	for _, arg := range x.Args {
		diagnostics = append(diagnostics, b.bindExpression(arg)...)
	}

	// Arguments are not matched against the callee's signature.
	x.Syntax.Type = IntType
	return diagnostics
}

func (b *binder) bindDereferenceExpression(x *DereferenceExpression) hcl.Diagnostics {
	diagnostics := b.bindExpression(x.Operand)

	typ := inheritedType(x.Syntax)
	if operand := typeOf(x.Operand); operand.Known() {
		if operand != IntPointerType {
			diagnostics = append(diagnostics, expectedPointerOperand(x, operand))
		}
		typ = IntType
	}
	x.Syntax.Type = typ
	return diagnostics
}

func (b *binder) bindNewExpression(x *NewExpression) hcl.Diagnostics {
	diagnostics := b.bindExpression(x.Size)
	x.Syntax.Type = IntPointerType
	return diagnostics
}

func (b *binder) bindParenthesizedExpression(x *ParenthesizedExpression) hcl.Diagnostics {
	diagnostics := b.bindExpression(x.Inner)
	x.Syntax.Type = typeOf(x.Inner)
	return diagnostics
}

func (b *binder) bindUnitExpression(x *UnitExpression) hcl.Diagnostics {
	diagnostics := b.bindExpression(x.Operand)
	x.Syntax.Type = inheritedType(x.Syntax)
	return diagnostics
}

func (b *binder) bindVariableReferenceExpression(x *VariableReferenceExpression) hcl.Diagnostics {
	v, ok := b.scopes.bindReference(x.Name)
	if !ok {
		suggestion, _ := b.scopes.current().closest(x.Name)
		return hcl.Diagnostics{variableNotDeclared(x, suggestion)}
	}

	switch v.VariableType {
	case IntType, IntPointerType:
		x.Identifier.Type = v.VariableType
		x.Syntax.Type = inheritedType(x.Syntax)
		return nil
	default:
		// Declarations always resolve to int or int*, so this is not expected to be reached.
		return hcl.Diagnostics{invalidReturnType(x)}
	}
}
