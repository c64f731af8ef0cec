package syntax

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

func errorf(subject *hcl.Range, f string, args ...interface{}) *hcl.Diagnostic {
	return diagf(hcl.DiagError, subject, f, args...)
}

func diagf(severity hcl.DiagnosticSeverity, subject *hcl.Range, f string, args ...interface{}) *hcl.Diagnostic {
	message := fmt.Sprintf(f, args...)
	return &hcl.Diagnostic{
		Severity: severity,
		Summary:  message,
		Subject:  subject,
	}
}

// lineRange returns the range covering the line with the given zero-based index.
func lineRange(filename string, index int) hcl.Range {
	pos := hcl.Pos{Line: index + 1, Column: 1}
	return hcl.Range{Filename: filename, Start: pos, End: pos}
}

// LineIndex returns the zero-based input line index a diagnostic refers to, if any.
func LineIndex(d *hcl.Diagnostic) (int, bool) {
	if d.Subject == nil {
		return 0, false
	}
	return d.Subject.Start.Line - 1, true
}

func invalidFirstExpression() *hcl.Diagnostic {
	return errorf(nil, "invalid first expression")
}

func missingLexeme(filename, rule string, index int) *hcl.Diagnostic {
	rng := lineRange(filename, index)
	return errorf(&rng, "missing lexeme for terminal symbol %s", rule)
}

func unexpectedEndOfFile(filename string, index int) *hcl.Diagnostic {
	rng := lineRange(filename, index)
	return errorf(&rng, "unexpected end of file")
}
