package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"plp-bookstore/internal/catalog"
)

func fakeStep(name string, value any, err error, ran *[]string) catalog.Step {
	return catalog.Step{
		Name: name,
		Run: func(context.Context) (any, error) {
			*ran = append(*ran, name)
			return value, err
		},
	}
}

func TestRunner_AbortOnError(t *testing.T) {
	boom := errors.New("boom")
	var ran []string
	steps := []catalog.Step{
		fakeStep("first", 1, nil, &ran),
		fakeStep("second", nil, boom, &ran),
		fakeStep("third", 3, nil, &ran),
	}

	r := &catalog.Runner{}
	results, err := r.Run(context.Background(), steps)

	if diff := cmp.Diff([]string{"first", "second"}, ran); diff != "" {
		t.Errorf("executed steps mismatch (-want +got):\n%s", diff)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].OK() || results[0].Value != 1 {
		t.Errorf("unexpected first result %+v", results[0])
	}

	var stepErr *catalog.StepError
	if !errors.As(err, &stepErr) || stepErr.Step != "second" {
		t.Fatalf("expected StepError for second, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected error to wrap boom, got %v", err)
	}
	if results[1].OK() || results[1].Value != nil {
		t.Errorf("failed result should carry no value: %+v", results[1])
	}
}

func TestRunner_ContinueOnError(t *testing.T) {
	first := errors.New("first failure")
	var ran []string
	steps := []catalog.Step{
		fakeStep("a", nil, first, &ran),
		fakeStep("b", "ok", nil, &ran),
		fakeStep("c", nil, errors.New("second failure"), &ran),
	}

	r := &catalog.Runner{Policy: catalog.ContinueOnError}
	results, err := r.Run(context.Background(), steps)

	if len(results) != 3 || len(ran) != 3 {
		t.Fatalf("expected every step to run, got %d results", len(results))
	}
	if !errors.Is(err, first) {
		t.Errorf("expected first failure to be reported, got %v", err)
	}
	if !results[1].OK() || results[1].Value != "ok" {
		t.Errorf("unexpected middle result %+v", results[1])
	}
}

func TestRunner_HooksSeeEveryResult(t *testing.T) {
	var ran, seen []string
	r := &catalog.Runner{OnResult: []func(context.Context, catalog.Result){
		func(_ context.Context, res catalog.Result) { seen = append(seen, res.Step) },
	}}

	_, err := r.Run(context.Background(), []catalog.Step{
		fakeStep("x", nil, nil, &ran),
		fakeStep("y", nil, nil, &ran),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if diff := cmp.Diff([]string{"x", "y"}, seen); diff != "" {
		t.Errorf("hook calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRunner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran []string
	results, err := (&catalog.Runner{}).Run(ctx, []catalog.Step{fakeStep("never", nil, nil, &ran)})

	if len(ran) != 0 || len(results) != 0 {
		t.Errorf("no step should run on a cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
