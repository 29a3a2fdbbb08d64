package bindtest

import (
	"testing"

	"github.com/go-drift/mvvm/pkg/errors"
)

// ErrorRecorder collects errors reported through pkg/errors.
type ErrorRecorder struct {
	Errors []*errors.BindError
	Panics []*errors.PanicError
}

// HandleError implements errors.ErrorHandler.
func (r *ErrorRecorder) HandleError(err *errors.BindError) {
	r.Errors = append(r.Errors, err)
}

// HandlePanic implements errors.ErrorHandler.
func (r *ErrorRecorder) HandlePanic(err *errors.PanicError) {
	r.Panics = append(r.Panics, err)
}

// AssertNone fails the test if anything was reported.
func (r *ErrorRecorder) AssertNone(t testing.TB) {
	t.Helper()
	for _, err := range r.Errors {
		t.Errorf("unexpected reported error: %v", err)
	}
	for _, p := range r.Panics {
		t.Errorf("unexpected reported panic: %v", p)
	}
}

// CaptureErrors installs a recorder as the global error handler for the
// duration of the test. Tests using it must not run in parallel.
func CaptureErrors(t testing.TB) *ErrorRecorder {
	t.Helper()
	rec := &ErrorRecorder{}
	old := errors.DefaultHandler
	errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(old) })
	return rec
}
