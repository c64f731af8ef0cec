package main

import (
	"context"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/wlp4/wlp4type/pkg/util/logging"
	"github.com/wlp4/wlp4type/pkg/wlp4/config"
	"github.com/wlp4/wlp4type/pkg/wlp4/model/format"
	"github.com/wlp4/wlp4type/pkg/wlp4/syntax"
)

func runCheck(ctx context.Context, cmd *cobra.Command, args []string, settings config.Settings) error {
	results, analyzeErr := analyzeAll(ctx, inputsFor(args, cmd.InOrStdin()), settings)

	reported := 0
	var result error
	for _, a := range results {
		if a == nil {
			continue
		}
		if err := writeAnalysis(cmd.OutOrStdout(), cmd.ErrOrStderr(), a, settings); err != nil {
			result = multierror.Append(result, err)
		}
		if len(a.diagnostics) != 0 {
			reported++
		}
	}
	logging.Infof("checked %d inputs, %d with diagnostics", len(results), reported)
	if analyzeErr != nil {
		result = multierror.Append(result, analyzeErr)
	}
	if result != nil {
		return result
	}

	if settings.Strict && reported != 0 {
		return errDiagnostics
	}
	return nil
}

// writeAnalysis writes an input's diagnostics to stderr and its annotated tree to stdout.
func writeAnalysis(stdout, stderr io.Writer, a *analysis, settings config.Settings) error {
	if a.program == nil {
		return syntax.NewDiagnosticWriter(stderr).WriteDiagnostics(a.diagnostics)
	}
	if err := a.program.NewDiagnosticWriter(stderr).WriteDiagnostics(a.diagnostics); err != nil {
		return err
	}

	f := format.NewFormatter()
	if settings.DumpTree {
		f.FdumpTree(stderr, a.program.Root())
	}
	f.FprintTree(stdout, a.program.Root())
	if settings.PrintProcedures {
		f.FprintProcedureTable(stdout, a.program.ProcedureTable)
	}
	return nil
}
