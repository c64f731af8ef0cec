package model

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"

	"github.com/wlp4/wlp4type/pkg/wlp4/syntax"
)

// errorf creates an error diagnostic for a problem found while checking the given node. Semantic diagnostics carry
// the node's range as context only; the diagnostic stream reports input line indices solely for malformed input.
func errorf(node *syntax.Node, f string, args ...interface{}) *hcl.Diagnostic {
	return diagf(hcl.DiagError, node, f, args...)
}

func diagf(severity hcl.DiagnosticSeverity, node *syntax.Node, f string, args ...interface{}) *hcl.Diagnostic {
	message := fmt.Sprintf(f, args...)
	d := &hcl.Diagnostic{
		Severity: severity,
		Summary:  message,
	}
	if node != nil {
		rng := node.Range()
		d.Context = &rng
	}
	return d
}

func variableAlreadyDeclared(v *Variable) *hcl.Diagnostic {
	return errorf(v.Syntax, "variable %q is already declared", v.Name)
}

func variableNotDeclared(x *VariableReferenceExpression, suggestion string) *hcl.Diagnostic {
	d := errorf(x.Syntax, "variable %q was not declared", x.Name)
	if suggestion != "" {
		d.Detail = fmt.Sprintf("did you mean %q?", suggestion)
	}
	return d
}

func invalidReturnType(x *VariableReferenceExpression) *hcl.Diagnostic {
	return errorf(x.Syntax, "invalid return type for variable %q", x.Name)
}

func procedureAlreadyExists(node *syntax.Node, name string) *hcl.Diagnostic {
	return errorf(node, "procedure %q already exists", name)
}

func entryPointSecondParameterNotInt(p *Procedure) *hcl.Diagnostic {
	return errorf(p.Syntax, "second parameter of entry point is not int type")
}

func typeCastingError(d *VariableDeclaration, initializer Type) *hcl.Diagnostic {
	return errorf(d.Syntax, "type casting error: cannot initialize %s %q with %s",
		d.Variable.VariableType, d.Variable.Name, initializer)
}

func expectedPointerOperand(x Expression, operand Type) *hcl.Diagnostic {
	return errorf(x.SyntaxNode(), "expected pointer operand, found %s", operand)
}

func expectedIntOperand(x Expression, operand Type) *hcl.Diagnostic {
	return errorf(x.SyntaxNode(), "expected int operand, found %s", operand)
}

func cannotSubtractPointerFromInt(x *BinaryOpExpression) *hcl.Diagnostic {
	return errorf(x.Syntax, "cannot subtract pointer from int")
}

func operandMustBeInt(x *BinaryOpExpression, left, right Type) *hcl.Diagnostic {
	return errorf(x.Syntax, "operand must be int: %s %s %s", typeName(left), x.Operator, typeName(right))
}

func typeMismatch(s *AssignmentStatement, target, value Type) *hcl.Diagnostic {
	return errorf(s.Syntax, "type mismatch: cannot assign %s to %s", value, target)
}

func comparisonTypeMismatch(t *Test, left, right Type) *hcl.Diagnostic {
	return errorf(t.Syntax, "type mismatch during comparison: %s %s %s", left, t.Operator, right)
}

func printlnExpectsInt(s *PrintlnStatement, value Type) *hcl.Diagnostic {
	return errorf(s.Syntax, "println expects an int argument, found %s", value)
}

func deleteExpectsPointer(s *DeleteStatement, value Type) *hcl.Diagnostic {
	return errorf(s.Syntax, "delete[] expects an int* argument, found %s", value)
}

func returnTypeNotInt(p *Procedure, value Type) *hcl.Diagnostic {
	return errorf(p.Syntax, "return type is not int: procedure %q returns %s", p.Name, value)
}

func typeName(t Type) string {
	if !t.Known() {
		return "unknown"
	}
	return t.String()
}
