package binding

import (
	"fmt"

	"github.com/go-drift/mvvm/pkg/notify"
)

// ChangeHandler is notified when a widget property changes through user
// interaction. The payload is the widget.
type ChangeHandler = notify.Handler[any]

// NewChangeHandler wraps fn so it can be passed to a ChangeAdapter.
func NewChangeHandler(fn func(widget any)) *ChangeHandler {
	return notify.NewHandler(fn)
}

// Event is a fired widget event.
type Event struct {
	Name string
	Args []any
}

// EventHandler receives widget events.
type EventHandler = notify.Handler[Event]

// NewEventHandler wraps fn so it can be subscribed on an EventSource.
func NewEventHandler(fn func(Event)) *EventHandler {
	return notify.NewHandler(fn)
}

// EventSource is the capability of a widget (or the node hosting it) to
// publish named events.
type EventSource interface {
	On(event string, h *EventHandler)
	Off(event string, h *EventHandler)
}

// EventTarget is the resolved subscription point for a logical event.
type EventTarget struct {
	// Name is the concrete event name to subscribe to and unsubscribe from.
	Name string
	// Source publishes the event.
	Source EventSource
}

// PropertyAdapter reads and writes one logical property of a widget type.
type PropertyAdapter interface {
	// Accepts reports whether the adapter handles widget.
	Accepts(widget any) bool
	Get(widget any) (any, error)
	Set(widget any, value any) error
}

// ChangeAdapter is implemented by property adapters whose property can
// change through user interaction. Only such properties can act as the
// reverse leg of a TwoWay binding.
type ChangeAdapter interface {
	OnChange(widget any, h *ChangeHandler) error
	OffChange(widget any, h *ChangeHandler)
}

// EventAdapter resolves a logical event name on a widget type.
type EventAdapter interface {
	// Accepts reports whether the adapter handles widget.
	Accepts(widget any) bool
	Resolve(widget any) (EventTarget, error)
}

// PropertyOf builds a PropertyAdapter for widgets of type W holding values of
// type V. A nil set makes the property read-only.
func PropertyOf[W any, V any](get func(W) V, set func(W, V)) PropertyAdapter {
	return &typedProperty[W, V]{get: get, set: set}
}

// ObservedPropertyOf is like PropertyOf but also lets bindings subscribe to
// user-originated changes through on and off.
func ObservedPropertyOf[W any, V any](get func(W) V, set func(W, V), on, off func(W, *ChangeHandler)) PropertyAdapter {
	return &observedProperty[W, V]{
		typedProperty: typedProperty[W, V]{get: get, set: set},
		on:            on,
		off:           off,
	}
}

// EventOf builds an EventAdapter for widgets of type W. source returns the
// object that publishes event for a given widget, such as its node.
func EventOf[W any](event string, source func(W) EventSource) EventAdapter {
	return &typedEvent[W]{name: event, source: source}
}

type typedProperty[W any, V any] struct {
	get func(W) V
	set func(W, V)
}

func (p *typedProperty[W, V]) Accepts(widget any) bool {
	_, ok := widget.(W)
	return ok
}

func (p *typedProperty[W, V]) Get(widget any) (any, error) {
	w, ok := widget.(W)
	if !ok {
		return nil, fmt.Errorf("property adapter for %T cannot read %T", *new(W), widget)
	}
	return p.get(w), nil
}

func (p *typedProperty[W, V]) Set(widget any, value any) error {
	w, ok := widget.(W)
	if !ok {
		return fmt.Errorf("property adapter for %T cannot write %T", *new(W), widget)
	}
	if p.set == nil {
		return fmt.Errorf("property of %T is read-only", widget)
	}
	v, err := valueAs[V](value)
	if err != nil {
		return err
	}
	p.set(w, v)
	return nil
}

type observedProperty[W any, V any] struct {
	typedProperty[W, V]
	on  func(W, *ChangeHandler)
	off func(W, *ChangeHandler)
}

func (p *observedProperty[W, V]) OnChange(widget any, h *ChangeHandler) error {
	w, ok := widget.(W)
	if !ok {
		return fmt.Errorf("property adapter for %T cannot observe %T", *new(W), widget)
	}
	if p.on != nil {
		p.on(w, h)
	}
	return nil
}

func (p *observedProperty[W, V]) OffChange(widget any, h *ChangeHandler) {
	if w, ok := widget.(W); ok && p.off != nil {
		p.off(w, h)
	}
}

type typedEvent[W any] struct {
	name   string
	source func(W) EventSource
}

func (e *typedEvent[W]) Accepts(widget any) bool {
	_, ok := widget.(W)
	return ok
}

func (e *typedEvent[W]) Resolve(widget any) (EventTarget, error) {
	w, ok := widget.(W)
	if !ok {
		return EventTarget{}, fmt.Errorf("event adapter for %T cannot resolve %T", *new(W), widget)
	}
	src := e.source(w)
	if isNil(src) {
		return EventTarget{}, fmt.Errorf("%T has no event source for %q", widget, e.name)
	}
	return EventTarget{Name: e.name, Source: src}, nil
}
