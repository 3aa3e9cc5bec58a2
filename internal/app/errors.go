package app

import (
	"fmt"
	"strings"
)

// Failure is one recipe that could not be compiled.
type Failure struct {
	Recipe string
	Err    error
}

// BatchError reports every failed recipe of a run that kept going past
// failures.
type BatchError struct {
	Total    int
	Failures []Failure
}

func (e *BatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d of %d recipes failed:", len(e.Failures), e.Total)
	for _, f := range e.Failures {
		fmt.Fprintf(&b, "\n  %v", f.Err)
	}
	return b.String()
}

// Unwrap exposes the individual recipe errors to errors.Is and errors.As.
func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return errs
}
