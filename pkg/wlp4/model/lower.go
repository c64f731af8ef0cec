package model

import (
	"github.com/wlp4/wlp4type/pkg/wlp4/syntax"
)

// lowerProgram converts a derivation tree into one variant per production. Rule names are consulted only while
// lowering; binding dispatches on the variants. Trees built from truncated input lower to variants with nil fields,
// or to Error variants where no production can be recognized at all.
func lowerProgram(root *syntax.Node) []*Procedure {
	var procedures []*Procedure
	for n := root.Child(1); n != nil && n.Rule == syntax.Procedures; n = n.Child(1) {
		first := n.Child(0)
		if first == nil {
			break
		}
		switch first.Rule {
		case syntax.Procedure:
			procedures = append(procedures, lowerProcedure(first))
		case syntax.Main:
			procedures = append(procedures, lowerEntryPoint(first))
		}
	}
	return procedures
}

// procedure INT ID LPAREN params RPAREN LBRACE dcls statements RETURN expr SEMI RBRACE
func lowerProcedure(n *syntax.Node) *Procedure {
	p := &Procedure{
		Syntax:       n,
		Declarations: lowerDeclarations(n.Child(6)),
		Statements:   lowerStatements(n.Child(7)),
		Return:       lowerExpression(n.Child(9)),
		params:       n.Child(3),
	}
	if id := n.Child(1); id != nil {
		p.Name = id.Lexeme
	}
	for link := p.params.Child(0); link != nil && link.Rule == syntax.ParamList; link = link.Child(2) {
		if dcl := link.Child(0); dcl != nil {
			p.Parameters = append(p.Parameters, lowerVariable(dcl))
		}
	}
	return p
}

// main INT WAIN LPAREN dcl COMMA dcl RPAREN LBRACE dcls statements RETURN expr SEMI RBRACE
func lowerEntryPoint(n *syntax.Node) *Procedure {
	p := &Procedure{
		Syntax:       n,
		IsEntryPoint: true,
		Declarations: lowerDeclarations(n.Child(8)),
		Statements:   lowerStatements(n.Child(9)),
		Return:       lowerExpression(n.Child(11)),
	}
	if wain := n.Child(1); wain != nil {
		p.Name = wain.Lexeme
	}
	for _, dcl := range []*syntax.Node{n.Child(3), n.Child(5)} {
		if dcl != nil {
			p.Parameters = append(p.Parameters, lowerVariable(dcl))
		}
	}
	return p
}

// dcl type ID
func lowerVariable(n *syntax.Node) *Variable {
	v := &Variable{
		Syntax:     n,
		TypeClause: n.Child(0),
		Identifier: n.Child(1),
	}
	if v.Identifier != nil {
		v.Name = v.Identifier.Lexeme
	}
	return v
}

// dcls dcls dcl BECOMES (NUM|NULL) SEMI, flattened into source order.
func lowerDeclarations(n *syntax.Node) []*VariableDeclaration {
	if n == nil || n.Rule != syntax.Dcls || len(n.Children) == 0 {
		return nil
	}
	decls := lowerDeclarations(n.Child(0))
	if dcl := n.Child(1); dcl != nil {
		decls = append(decls, &VariableDeclaration{
			Syntax:      n,
			Variable:    lowerVariable(dcl),
			Initializer: n.Child(3),
		})
	}
	return decls
}

// statements statements statement, flattened into source order.
func lowerStatements(n *syntax.Node) []Statement {
	if n == nil || n.Rule != syntax.Statements || len(n.Children) == 0 {
		return nil
	}
	stmts := lowerStatements(n.Child(0))
	if stmt := n.Child(1); stmt != nil {
		stmts = append(stmts, lowerStatement(stmt))
	}
	return stmts
}

func lowerStatement(n *syntax.Node) Statement {
	first := n.Child(0)
	if n.Rule != syntax.Statement || first == nil {
		return &ErrorStatement{Syntax: n}
	}

	switch first.Rule {
	case syntax.LValue:
		return &AssignmentStatement{
			Syntax: n,
			Target: lowerExpression(first),
			Value:  lowerExpression(n.Child(2)),
		}
	case syntax.IF:
		return &IfStatement{
			Syntax:    n,
			Condition: lowerTest(n.Child(2)),
			Then:      lowerStatements(n.Child(5)),
			Else:      lowerStatements(n.Child(9)),
		}
	case syntax.WHILE:
		return &WhileStatement{
			Syntax:    n,
			Condition: lowerTest(n.Child(2)),
			Body:      lowerStatements(n.Child(5)),
		}
	case syntax.PRINTLN:
		return &PrintlnStatement{Syntax: n, Value: lowerExpression(n.Child(2))}
	case syntax.DELETE:
		return &DeleteStatement{Syntax: n, Value: lowerExpression(n.Child(3))}
	default:
		return &ErrorStatement{Syntax: n}
	}
}

// test expr (EQ|NE|LT|LE|GE|GT) expr
func lowerTest(n *syntax.Node) *Test {
	if n == nil {
		return nil
	}
	return &Test{
		Syntax:       n,
		Operator:     operatorOf(n.Child(1)),
		LeftOperand:  lowerExpression(n.Child(0)),
		RightOperand: lowerExpression(n.Child(2)),
	}
}

func lowerExpression(n *syntax.Node) Expression {
	if n == nil {
		return nil
	}

	switch n.Rule {
	case syntax.Expr, syntax.Term:
		switch len(n.Children) {
		case 0:
			return &ErrorExpression{Syntax: n}
		case 1:
			return &UnitExpression{Syntax: n, Operand: lowerExpression(n.Child(0))}
		default:
			return &BinaryOpExpression{
				Syntax:       n,
				Operator:     operatorOf(n.Child(1)),
				LeftOperand:  lowerExpression(n.Child(0)),
				RightOperand: lowerExpression(n.Child(2)),
			}
		}
	case syntax.Factor:
		return lowerFactor(n)
	case syntax.LValue:
		return lowerLValue(n)
	default:
		return &ErrorExpression{Syntax: n}
	}
}

func lowerFactor(n *syntax.Node) Expression {
	first := n.Child(0)
	if first == nil {
		return &ErrorExpression{Syntax: n}
	}

	switch first.Rule {
	case syntax.ID:
		if n.Child(1) == nil {
			return &VariableReferenceExpression{Syntax: n, Name: first.Lexeme, Identifier: first}
		}
		return &CallExpression{Syntax: n, Name: first.Lexeme, Args: lowerArguments(n.Child(2))}
	case syntax.NUM, syntax.NULL:
		return &LiteralValueExpression{Syntax: n, Token: first}
	case syntax.LPAREN:
		return &ParenthesizedExpression{Syntax: n, Inner: lowerExpression(n.Child(1))}
	case syntax.AMP:
		return &AddressOfExpression{Syntax: n, Operand: lowerExpression(n.Child(1))}
	case syntax.STAR:
		return &DereferenceExpression{Syntax: n, Operand: lowerExpression(n.Child(1))}
	case syntax.NEW:
		return &NewExpression{Syntax: n, Size: lowerExpression(n.Child(3))}
	default:
		return &ErrorExpression{Syntax: n}
	}
}

func lowerLValue(n *syntax.Node) Expression {
	first := n.Child(0)
	if first == nil {
		return &ErrorExpression{Syntax: n}
	}

	switch first.Rule {
	case syntax.ID:
		return &VariableReferenceExpression{Syntax: n, Name: first.Lexeme, Identifier: first}
	case syntax.LPAREN:
		return &ParenthesizedExpression{Syntax: n, Inner: lowerExpression(n.Child(1))}
	case syntax.STAR:
		return &DereferenceExpression{Syntax: n, Operand: lowerExpression(n.Child(1))}
	default:
		return &ErrorExpression{Syntax: n}
	}
}

// arglist expr [COMMA arglist], flattened.
func lowerArguments(n *syntax.Node) []Expression {
	var args []Expression
	for link := n; link != nil && link.Rule == syntax.ArgList; link = link.Child(2) {
		if arg := lowerExpression(link.Child(0)); arg != nil {
			args = append(args, arg)
		}
	}
	return args
}

func operatorOf(tok *syntax.Node) Operator {
	if tok == nil {
		return OpUnknown
	}
	return operatorTokens[tok.Rule]
}
