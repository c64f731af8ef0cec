package syntax

// Token kinds produced by the upstream scanner.
const (
	AMP     = "AMP"
	BECOMES = "BECOMES"
	BOF     = "BOF"
	COMMA   = "COMMA"
	DELETE  = "DELETE"
	ELSE    = "ELSE"
	EOF     = "EOF"
	EQ      = "EQ"
	GE      = "GE"
	GT      = "GT"
	ID      = "ID"
	IF      = "IF"
	INT     = "INT"
	LBRACE  = "LBRACE"
	LBRACK  = "LBRACK"
	LE      = "LE"
	LPAREN  = "LPAREN"
	LT      = "LT"
	MINUS   = "MINUS"
	NE      = "NE"
	NEW     = "NEW"
	NULL    = "NULL"
	NUM     = "NUM"
	PCT     = "PCT"
	PLUS    = "PLUS"
	PRINTLN = "PRINTLN"
	RBRACE  = "RBRACE"
	RBRACK  = "RBRACK"
	RETURN  = "RETURN"
	RPAREN  = "RPAREN"
	SEMI    = "SEMI"
	SLASH   = "SLASH"
	STAR    = "STAR"
	WAIN    = "WAIN"
	WHILE   = "WHILE"
)

// StartSymbol is the grammar's start production; every derivation begins with it.
const StartSymbol = "start"

// EmptyProduction is listed in place of children when a nonterminal derives the empty string.
const EmptyProduction = ".EMPTY"

// Productions of the WLP4 grammar.
const (
	ArgList    = "arglist"
	Dcl        = "dcl"
	Dcls       = "dcls"
	Expr       = "expr"
	Factor     = "factor"
	LValue     = "lvalue"
	Main       = "main"
	ParamList  = "paramlist"
	Params     = "params"
	Procedure  = "procedure"
	Procedures = "procedures"
	Start      = StartSymbol
	Statement  = "statement"
	Statements = "statements"
	Term       = "term"
	Test       = "test"
	TypeClause = "type"
)
