// Package errors provides structured error handling for the binding engine.
//
// Configuration mistakes (a binding without a source path, a command path
// that resolves to nothing) are returned as *BindError values wrapping one of
// the sentinel errors below, so callers can test them with errors.Is.
// Failures that happen later, inside a change notification, cannot be
// returned to anyone and are sent to the global ErrorHandler via Report.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates a binding statement that can never work.
	KindConfig
	// KindState indicates misuse of a binding set lifecycle.
	KindState
	// KindPath indicates a path that could not be written.
	KindPath
	// KindConvert indicates a value converter failure.
	KindConvert
	// KindAdapter indicates a property adapter failure.
	KindAdapter
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindState:
		return "state"
	case KindPath:
		return "path"
	case KindConvert:
		return "convert"
	case KindAdapter:
		return "adapter"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors wrapped by BindError.
var (
	ErrMissingTargetProperty = stderrors.New("target property not specified")
	ErrMissingSourcePath     = stderrors.New("source path not specified")
	ErrCommandNotFound       = stderrors.New("command not found")
	ErrNotCommand            = stderrors.New("value is not a command")
	ErrUnknownEvent          = stderrors.New("no event adapter")
	ErrAlreadyBuilt          = stderrors.New("binding set already built")
	ErrSetClosed             = stderrors.New("binding set no longer accepts bindings")
	ErrUnresolvedPath        = stderrors.New("path cannot be resolved")
)

// BindError represents a structured error raised by the binding engine.
type BindError struct {
	// Op is the operation that failed (e.g., "binding.New", "bindset.Build").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Path is the property path or event name involved, if any.
	Path string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error, if captured.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BindError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Config returns a KindConfig error for op.
func Config(op, path string, err error) *BindError {
	return &BindError{Op: op, Kind: KindConfig, Path: path, Err: err, Timestamp: time.Now()}
}

// State returns a KindState error for op.
func State(op string, err error) *BindError {
	return &BindError{Op: op, Kind: KindState, Err: err, Timestamp: time.Now()}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "binding.updateTarget").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the binding engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs outside a call that could return it.
	HandleError(err *BindError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's tree matches target.
// It forwards to the standard library so callers need a single import.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}
