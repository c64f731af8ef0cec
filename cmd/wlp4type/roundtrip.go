package main

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/wlp4/wlp4type/pkg/util/contract"
	"github.com/wlp4/wlp4type/pkg/util/logging"
	"github.com/wlp4/wlp4type/pkg/wlp4/config"
	"github.com/wlp4/wlp4type/pkg/wlp4/model"
	"github.com/wlp4/wlp4type/pkg/wlp4/model/format"
	"github.com/wlp4/wlp4type/pkg/wlp4/syntax"
)

func newRoundtripCmd(settings *config.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip [files...]",
		Short: "Verify that each annotated tree reproduces its input",
		Long: "Verify that each annotated tree reproduces its input.\n" +
			"\n" +
			"Each input is checked and printed as usual; the type annotations are then stripped and\n" +
			"the result compared with the input. Any difference is shown as a diff.",
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			inputs := inputsFor(args, cmd.InOrStdin())
			for _, in := range inputs {
				ok, err := roundTripInput(cmd.ErrOrStderr(), in, *settings)
				if err != nil {
					return err
				}
				if !ok {
					failed++
				}
			}
			if failed != 0 {
				return errors.Errorf("%d of %d inputs did not round trip", failed, len(inputs))
			}
			return nil
		},
	}
}

func roundTripInput(stderr io.Writer, in input, settings config.Settings) (bool, error) {
	rc, err := in.open()
	if err != nil {
		return false, errors.Wrapf(err, "opening %s", in.name)
	}
	defer contract.IgnoreClose(rc)

	contents, err := ioutil.ReadAll(rc)
	if err != nil {
		return false, errors.Wrapf(err, "reading %s", in.name)
	}

	want, got, ok := roundTrip(in.name, contents, settings)
	if ok {
		return true, nil
	}
	logging.Warningf("%s does not round trip", in.name)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	_, err = fmt.Fprintf(stderr, "%s: annotated tree does not reproduce the input\n%s\n", in.name, dmp.DiffPrettyText(diffs))
	return false, err
}

// roundTrip checks and prints a derivation, strips the type annotations from the printed tree, and returns the
// normalized input alongside the stripped output.
func roundTrip(name string, contents []byte, settings config.Settings) (string, string, bool) {
	want := normalizeLines(string(contents))

	file, _, err := syntax.Parse(bytes.NewReader(contents), name)
	if err != nil || file == nil {
		return want, "", false
	}
	program, _ := model.BindProgram(file, model.BindOptions{CheckReturnType: settings.CheckReturnType})

	var printed bytes.Buffer
	format.NewFormatter().FprintTree(&printed, program.Root())

	var stripped strings.Builder
	for _, line := range strings.SplitAfter(printed.String(), "\n") {
		if line == "" {
			continue
		}
		stripped.WriteString(format.StripTypeAnnotation(strings.TrimSuffix(line, "\n")))
		stripped.WriteString("\n")
	}

	got := stripped.String()
	return want, got, want == got
}

// normalizeLines splits text into lines the way the derivation reader does and joins them with single newlines.
func normalizeLines(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return strings.Join(lines, "\n") + "\n"
}
