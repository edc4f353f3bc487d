package driver

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"gwc/internal/config"
	"gwc/internal/count"
	"gwc/internal/logger"
	"gwc/internal/model"
	"gwc/internal/report"
	"gwc/internal/source"
)

// Env is everything a run reads from or writes to.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Log    *logger.Logger
}

func (e Env) log() *logger.Logger {
	if e.Log == nil {
		return logger.Nop()
	}
	return e.Log
}

// Walk counts every input in order, calling fn after each one. Failed
// inputs contribute nothing to the total. The returned error aggregates
// every per-input failure and never stops the walk early.
func Walk(inputs []source.Selector, env Env, fn func(model.Result)) (model.Summary, error) {
	log := env.log()
	summary := model.Summary{
		Results:   make([]model.Result, 0, len(inputs)),
		ShowTotal: len(inputs) > 1,
	}

	var errs *multierror.Error
	for _, sel := range inputs {
		res := model.Result{Name: sel.DisplayName()}
		inputLog := log.With("input", res.Name)
		inputLog.Debug("counting input")

		res.Counts, res.Err = count.File(sel, env.Stdin)
		if res.Err != nil {
			inputLog.Warn("skipping input", "error", res.Err)
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", res.Name, res.Err))
		} else {
			summary.Total = summary.Total.Add(res.Counts)
			inputLog.Debug("counted input",
				"lines", res.Counts.Lines, "words", res.Counts.Words, "chars", res.Counts.Chars)
		}

		summary.Results = append(summary.Results, res)
		if fn != nil {
			fn(res)
		}
	}

	return summary, errs.ErrorOrNil()
}

// Run is the text mode: one line per counted input on stdout, one
// diagnostic per failed input on stderr, and a total line when more than
// one input was given.
func Run(opts config.Options, env Env) (model.Summary, error) {
	diag := report.NewDiagnostics(env.Stderr)

	summary, err := Walk(opts.Inputs, env, func(res model.Result) {
		if res.Failed() {
			diag.Report(res.Name, res.Err)
			return
		}
		fmt.Fprintln(env.Stdout, report.Line(res.Counts, opts.Display, res.Name))
	})

	if summary.ShowTotal {
		fmt.Fprintln(env.Stdout, report.Line(summary.Total, opts.Display, report.TotalName))
	}
	return summary, err
}

// RunJSON reports failures on stderr as they happen and writes the whole
// run to stdout as one JSON document at the end.
func RunJSON(opts config.Options, env Env) (model.Summary, error) {
	diag := report.NewDiagnostics(env.Stderr)

	summary, err := Walk(opts.Inputs, env, func(res model.Result) {
		if res.Failed() {
			diag.Report(res.Name, res.Err)
		}
	})

	if encErr := report.WriteJSON(env.Stdout, summary, opts.Display); encErr != nil {
		return summary, multierror.Append(err, encErr)
	}
	return summary, err
}
