package syntax

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"
)

type diagnosticWriter struct {
	w io.Writer
}

// NewDiagnosticWriter returns an hcl.DiagnosticWriter that renders each diagnostic on its own line in the form
//
//	ERROR: <message>[ Index: <line index>]
//
// The index is present only for diagnostics that refer to a specific input line.
func NewDiagnosticWriter(w io.Writer) hcl.DiagnosticWriter {
	return &diagnosticWriter{w: w}
}

func (dw *diagnosticWriter) WriteDiagnostic(d *hcl.Diagnostic) error {
	label := "ERROR"
	if d.Severity == hcl.DiagWarning {
		label = "WARNING"
	}

	line := fmt.Sprintf("%s: %s", label, d.Summary)
	if index, ok := LineIndex(d); ok {
		line += fmt.Sprintf(" Index: %d", index)
	}
	_, err := fmt.Fprintln(dw.w, line)
	return err
}

func (dw *diagnosticWriter) WriteDiagnostics(diags hcl.Diagnostics) error {
	for _, d := range diags {
		if err := dw.WriteDiagnostic(d); err != nil {
			return err
		}
	}
	return nil
}
