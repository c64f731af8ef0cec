package main

import (
	"context"
	"io"
	"io/ioutil"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/wlp4/wlp4type/pkg/util/contract"
	"github.com/wlp4/wlp4type/pkg/util/logging"
	"github.com/wlp4/wlp4type/pkg/wlp4/config"
	"github.com/wlp4/wlp4type/pkg/wlp4/model"
	"github.com/wlp4/wlp4type/pkg/wlp4/syntax"
)

const stdinName = "<stdin>"

// input is a named source of a serialized derivation.
type input struct {
	name string
	open func() (io.ReadCloser, error)
}

// inputsFor returns the inputs named by the command line, or standard input if there are none.
func inputsFor(args []string, stdin io.Reader) []input {
	if len(args) == 0 {
		return []input{{
			name: stdinName,
			open: func() (io.ReadCloser, error) { return ioutil.NopCloser(stdin), nil },
		}}
	}

	inputs := make([]input, len(args))
	for i, path := range args {
		path := path
		inputs[i] = input{
			name: path,
			open: func() (io.ReadCloser, error) { return os.Open(path) },
		}
	}
	return inputs
}

// analysis is the outcome of checking one input. Program is nil if the input was not a derivation at all.
type analysis struct {
	name        string
	program     *model.Program
	diagnostics hcl.Diagnostics
}

func analyze(in input, settings config.Settings) (*analysis, error) {
	rc, err := in.open()
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", in.name)
	}
	defer contract.IgnoreClose(rc)

	file, diagnostics, err := syntax.Parse(rc, in.name)
	if err != nil {
		return nil, err
	}

	a := &analysis{name: in.name, diagnostics: diagnostics}
	if file == nil {
		return a, nil
	}

	program, bindDiags := model.BindProgram(file, model.BindOptions{
		CheckReturnType: settings.CheckReturnType,
	})
	a.program, a.diagnostics = program, append(a.diagnostics, bindDiags...)
	return a, nil
}

// analyzeAll checks each input independently, running at most settings.Parallelism analyses at once. Results are
// returned in input order. An input that cannot be read leaves a nil entry and contributes to the returned error;
// the remaining inputs are still analyzed.
func analyzeAll(ctx context.Context, inputs []input, settings config.Settings) ([]*analysis, error) {
	results := make([]*analysis, len(inputs))
	failures := make([]error, len(inputs))

	sem := semaphore.NewWeighted(int64(settings.Parallelism))
	g, ctx := errgroup.WithContext(ctx)
	for i, in := range inputs {
		i, in := i, in
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		g.Go(func() error {
			defer sem.Release(1)
			logging.V(5).Infof("analyzing %s", in.name)
			results[i], failures[i] = analyze(in, settings)
			if failures[i] != nil {
				logging.Warningf("skipping %s: %v", in.name, failures[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var result error
	for _, err := range failures {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return results, result
}
