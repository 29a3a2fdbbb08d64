package bindset

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/go-drift/mvvm/pkg/binding"
	"github.com/go-drift/mvvm/pkg/errors"
)

// View is the lifecycle a Set attaches to.
type View interface {
	// OnDestroy registers fn to run when the view is destroyed and returns a
	// function that unregisters it.
	OnDestroy(fn func()) (unregister func())
}

// State is the lifecycle state of a Set.
type State int

const (
	// Open accepts new bindings.
	Open State = iota
	// Built is active and tied to the view lifecycle.
	Built
	// Disposed has released every binding.
	Disposed
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Built:
		return "built"
	case Disposed:
		return "disposed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option configures a Set.
type Option func(*Set)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Set) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithID overrides the generated set identifier.
func WithID(id string) Option {
	return func(s *Set) {
		if id != "" {
			s.id = id
		}
	}
}

type disposer interface {
	Dispose()
}

// Set owns the bindings between one view and one view model.
//
// A Set is not safe for concurrent use; like the widgets it binds, it
// belongs to the UI thread.
type Set struct {
	id         string
	view       View
	viewModel  any
	registry   *binding.Registry
	logger     *slog.Logger
	state      State
	bindings   []disposer
	errs       []error
	unregister func()
}

// New creates an open Set binding widgets of view to viewModel through the
// adapters of reg. view may be nil, in which case the set is only disposed
// explicitly.
func New(view View, viewModel any, reg *binding.Registry, opts ...Option) *Set {
	s := &Set{
		id:        uuid.NewString(),
		view:      view,
		viewModel: viewModel,
		registry:  reg,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("binding_set", s.id)
	return s
}

// ID returns the set identifier.
func (s *Set) ID() string { return s.id }

// State returns the lifecycle state.
func (s *Set) State() State { return s.state }

// Len returns the number of live bindings.
func (s *Set) Len() int { return len(s.bindings) }

// ViewModel returns the source object bindings resolve paths against.
func (s *Set) ViewModel() any { return s.viewModel }

// Err returns every configuration error recorded by builders, joined, or
// nil.
func (s *Set) Err() error {
	return errors.Join(s.errs...)
}

// Bind starts declaring a binding for widget.
func (s *Set) Bind(widget any) *Builder {
	return &Builder{set: s, widget: widget}
}

// Build activates the set: from now on it is disposed when the view is
// destroyed. Building twice, building a disposed set, or building after a
// binding failed to configure is an error.
func (s *Set) Build() error {
	const op = "bindset.Build"
	switch s.state {
	case Built:
		return errors.State(op, errors.ErrAlreadyBuilt)
	case Disposed:
		return errors.State(op, errors.ErrSetClosed)
	}
	if err := s.Err(); err != nil {
		return errors.Config(op, "", err)
	}

	s.state = Built
	if s.view != nil {
		s.unregister = s.view.OnDestroy(s.Dispose)
	}
	s.logger.Debug("binding set built", "bindings", len(s.bindings))
	return nil
}

// Dispose releases every binding in the order they were added and detaches
// from the view. Calling it again does nothing.
func (s *Set) Dispose() {
	if s.state == Disposed {
		return
	}
	s.state = Disposed
	if s.unregister != nil {
		s.unregister()
		s.unregister = nil
	}
	bindings := s.bindings
	s.bindings = nil
	for _, b := range bindings {
		b.Dispose()
	}
	s.logger.Debug("binding set disposed", "bindings", len(bindings))
}

func (s *Set) open(op string) error {
	if s.state != Open {
		return errors.State(op, errors.ErrSetClosed)
	}
	return nil
}

func (s *Set) add(b disposer) {
	s.bindings = append(s.bindings, b)
}

// Fail records a configuration error found while declaring bindings and
// returns it. Build refuses to activate a set with recorded errors.
func (s *Set) Fail(err error) error {
	s.errs = append(s.errs, err)
	s.logger.Warn("binding configuration failed", "error", err)
	return err
}
