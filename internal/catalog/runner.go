package catalog

import (
	"context"
	"time"
)

type Policy int

const (
	// AbortOnError stops at the first failed step.
	AbortOnError Policy = iota
	ContinueOnError
)

// Result is the outcome of one step: Value on success, Err otherwise.
type Result struct {
	Step  string
	Value any
	Err   error
	Took  time.Duration
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Runner executes steps one at a time, waiting for each to finish before
// starting the next.
type Runner struct {
	Policy   Policy
	OnResult []func(context.Context, Result)
}

// Run returns the results of every step that executed. The error is the
// first *StepError seen, or nil when all steps succeeded.
func (r *Runner) Run(ctx context.Context, steps []Step) ([]Result, error) {
	results := make([]Result, 0, len(steps))
	var firstErr error

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			if firstErr == nil {
				firstErr = &StepError{Step: step.Name, Err: err}
			}
			break
		}

		start := time.Now()
		value, err := step.Run(ctx)
		res := Result{Step: step.Name, Value: value, Took: time.Since(start)}
		if err != nil {
			res.Value = nil
			res.Err = &StepError{Step: step.Name, Err: err}
		}
		results = append(results, res)

		for _, hook := range r.OnResult {
			hook(ctx, res)
		}

		if res.Err != nil {
			if firstErr == nil {
				firstErr = res.Err
			}
			if r.Policy == AbortOnError {
				break
			}
		}
	}
	return results, firstErr
}
