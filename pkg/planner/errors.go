package planner

import "fmt"

// diagnosticChars is how much of a malformed model response is quoted back.
const diagnosticChars = 200

// BadResponseError reports a model response that did not parse as a plan.
// The diagnostic carries a short prefix of the raw output.
type BadResponseError struct {
	Diagnostic string
	Cause      error
}

func (e *BadResponseError) Error() string {
	return fmt.Sprintf("model returned malformed plan JSON: %v (response starts: %q)", e.Cause, e.Diagnostic)
}

func (e *BadResponseError) Unwrap() error { return e.Cause }

func newBadResponse(raw string, cause error) *BadResponseError {
	diag := raw
	if len(diag) > diagnosticChars {
		diag = diag[:diagnosticChars]
	}
	return &BadResponseError{Diagnostic: diag, Cause: cause}
}
