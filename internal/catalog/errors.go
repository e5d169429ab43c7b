package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPage = errors.New("page and page size must be at least 1")
	ErrEmptyTitle  = errors.New("explain needs a title to look up")
)

// StepError tags a failure with the step that produced it.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
