package bindtest

import (
	"github.com/go-drift/mvvm/pkg/binding"
	"github.com/go-drift/mvvm/pkg/notify"
)

// Widget is a fake widget holding arbitrary named properties.
//
// Set simulates a programmatic write and only counts it. Edit simulates a
// user change: it stores the value and notifies change subscribers.
type Widget struct {
	Name string

	values  map[string]any
	writes  map[string]int
	changes map[string]*notify.List[any]
	events  map[string]*notify.List[binding.Event]
}

var _ binding.EventSource = (*Widget)(nil)

// NewWidget creates an empty widget.
func NewWidget(name string) *Widget {
	return &Widget{
		Name:    name,
		values:  make(map[string]any),
		writes:  make(map[string]int),
		changes: make(map[string]*notify.List[any]),
		events:  make(map[string]*notify.List[binding.Event]),
	}
}

// Get returns the value of prop.
func (w *Widget) Get(prop string) any {
	return w.values[prop]
}

// Set stores value and counts the write.
func (w *Widget) Set(prop string, value any) {
	w.values[prop] = value
	w.writes[prop]++
}

// Edit stores value as if the user changed it and notifies change handlers.
// It does not count as a write.
func (w *Widget) Edit(prop string, value any) {
	w.values[prop] = value
	if l, ok := w.changes[prop]; ok {
		l.Emit(w)
	}
}

// Writes returns how many times prop was written with Set.
func (w *Widget) Writes(prop string) int {
	return w.writes[prop]
}

// ChangeHandlers returns the number of change subscribers for prop.
func (w *Widget) ChangeHandlers(prop string) int {
	if l, ok := w.changes[prop]; ok {
		return l.Len()
	}
	return 0
}

// EventHandlers returns the number of subscribers for event.
func (w *Widget) EventHandlers(event string) int {
	if l, ok := w.events[event]; ok {
		return l.Len()
	}
	return 0
}

// On implements binding.EventSource.
func (w *Widget) On(event string, h *binding.EventHandler) {
	l, ok := w.events[event]
	if !ok {
		l = &notify.List[binding.Event]{}
		w.events[event] = l
	}
	l.Add(h)
}

// Off implements binding.EventSource.
func (w *Widget) Off(event string, h *binding.EventHandler) {
	if l, ok := w.events[event]; ok {
		l.Remove(h)
	}
}

// Fire publishes event to its subscribers.
func (w *Widget) Fire(event string, args ...any) {
	if l, ok := w.events[event]; ok {
		l.Emit(binding.Event{Name: event, Args: args})
	}
}

func (w *Widget) onChange(prop string, h *binding.ChangeHandler) {
	l, ok := w.changes[prop]
	if !ok {
		l = &notify.List[any]{}
		w.changes[prop] = l
	}
	l.Add(h)
}

func (w *Widget) offChange(prop string, h *binding.ChangeHandler) {
	if l, ok := w.changes[prop]; ok {
		l.Remove(h)
	}
}

// Observed properties registered by NewRegistry. They support TwoWay bindings.
var ObservedProperties = []string{"text", "value", "isChecked"}

// PlainProperties registered by NewRegistry. They have no change
// notification and cannot act as the reverse leg of a TwoWay binding.
var PlainProperties = []string{"caption", "active", "interactable", "enabled"}

// Events registered by NewRegistry, logical name to concrete name.
var Events = map[string]string{
	"onClick":       "click",
	"onTextChanged": "text-changed",
	"onToggle":      "toggle",
}

// NewRegistry returns a fresh registry with adapters for *Widget.
func NewRegistry() *binding.Registry {
	reg := binding.NewRegistry()
	for _, prop := range ObservedProperties {
		prop := prop
		reg.RegisterProperty(prop, binding.ObservedPropertyOf(
			func(w *Widget) any { return w.Get(prop) },
			func(w *Widget, v any) { w.Set(prop, v) },
			func(w *Widget, h *binding.ChangeHandler) { w.onChange(prop, h) },
			func(w *Widget, h *binding.ChangeHandler) { w.offChange(prop, h) },
		))
	}
	for _, prop := range PlainProperties {
		prop := prop
		reg.RegisterProperty(prop, binding.PropertyOf(
			func(w *Widget) any { return w.Get(prop) },
			func(w *Widget, v any) { w.Set(prop, v) },
		))
	}
	for logical, concrete := range Events {
		reg.RegisterEvent(logical, binding.EventOf(concrete, func(w *Widget) binding.EventSource { return w }))
	}
	return reg
}
