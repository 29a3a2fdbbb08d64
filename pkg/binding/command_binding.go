package binding

import (
	"github.com/go-drift/mvvm/pkg/command"
	"github.com/go-drift/mvvm/pkg/errors"
)

// DefaultMirrorProperty is the widget property that receives a command's
// executability when mirroring is requested without a property name.
const DefaultMirrorProperty = "interactable"

// CommandOptions configures a CommandBinding.
type CommandOptions struct {
	// Target is the widget whose event triggers the command.
	Target any
	// Event is the logical event name, resolved through the registry.
	Event string
	// Command is executed every time the event fires.
	Command command.Command
	// Parameter is passed to Execute and CanExecute.
	Parameter any
	// MirrorExecutability writes CanExecute(Parameter) to MirrorProperty on
	// the target, immediately and whenever the command's executability changes.
	MirrorExecutability bool
	// MirrorProperty defaults to DefaultMirrorProperty.
	MirrorProperty string
}

// CommandBinding routes a widget event to a command.
type CommandBinding struct {
	target         any
	event          EventTarget
	command        command.Command
	param          any
	mirrorProperty string
	mirrorAdapter  PropertyAdapter

	eventHandler      *EventHandler
	canExecuteHandler *command.CanExecuteChangedHandler
	disposed          bool
}

// NewCommandBinding subscribes to the event and, when requested, starts
// mirroring executability.
//
// It fails with a KindConfig *errors.BindError when the command is nil or the
// event name has no adapter for the target.
func NewCommandBinding(reg *Registry, opts CommandOptions) (*CommandBinding, error) {
	const op = "binding.NewCommandBinding"
	if opts.Command == nil || isNil(opts.Command) {
		return nil, errors.Config(op, opts.Event, errors.ErrCommandNotFound)
	}
	adapter, ok := reg.Event(opts.Event, opts.Target)
	if !ok {
		return nil, errors.Config(op, opts.Event, errors.ErrUnknownEvent)
	}
	target, err := adapter.Resolve(opts.Target)
	if err != nil {
		return nil, errors.Config(op, opts.Event, err)
	}

	cb := &CommandBinding{
		target:  opts.Target,
		event:   target,
		command: opts.Command,
		param:   opts.Parameter,
	}

	if opts.MirrorExecutability {
		cb.mirrorProperty = opts.MirrorProperty
		if cb.mirrorProperty == "" {
			cb.mirrorProperty = DefaultMirrorProperty
		}
		if a, ok := reg.Property(cb.mirrorProperty, opts.Target); ok {
			cb.mirrorAdapter = a
		} else if !addressable(opts.Target) {
			return nil, errors.Config(op, cb.mirrorProperty, errors.ErrUnresolvedPath)
		}
	}

	cb.eventHandler = NewEventHandler(func(Event) {
		if cb.disposed {
			return
		}
		cb.command.Execute(cb.param)
	})
	cb.event.Source.On(cb.event.Name, cb.eventHandler)

	if opts.MirrorExecutability {
		cb.canExecuteHandler = command.NewCanExecuteChangedHandler(func(command.Command) {
			cb.updateMirror()
		})
		cb.command.OnCanExecuteChanged(cb.canExecuteHandler)
		cb.updateMirror()
	}
	return cb, nil
}

// Event returns the resolved event subscription point.
func (cb *CommandBinding) Event() EventTarget {
	return cb.event
}

// Disposed reports whether Dispose has been called.
func (cb *CommandBinding) Disposed() bool {
	return cb.disposed
}

// Dispose unsubscribes from the event and from executability changes.
// It is safe to call more than once and from inside a handler.
func (cb *CommandBinding) Dispose() {
	if cb.disposed {
		return
	}
	cb.disposed = true
	if cb.eventHandler != nil {
		cb.event.Source.Off(cb.event.Name, cb.eventHandler)
		cb.eventHandler = nil
	}
	if cb.canExecuteHandler != nil {
		cb.command.OffCanExecuteChanged(cb.canExecuteHandler)
		cb.canExecuteHandler = nil
	}
}

func (cb *CommandBinding) updateMirror() {
	const op = "binding.updateMirror"
	if cb.disposed {
		return
	}
	defer errors.Recover(op)
	can := cb.command.CanExecute(cb.param)

	var (
		current any
		err     error
	)
	if cb.mirrorAdapter != nil {
		current, err = cb.mirrorAdapter.Get(cb.target)
	} else {
		current, _ = Lookup(cb.target, cb.mirrorProperty)
	}
	if err == nil && Identical(current, can) {
		return
	}

	if cb.mirrorAdapter != nil {
		err = cb.mirrorAdapter.Set(cb.target, can)
	} else {
		err = Assign(cb.target, cb.mirrorProperty, can)
	}
	if err != nil {
		report(op, errors.KindAdapter, cb.mirrorProperty, err)
	}
}
