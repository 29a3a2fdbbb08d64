package observable

import "github.com/go-drift/mvvm/pkg/notify"

// PropertyChangedEvent describes a single property mutation.
type PropertyChangedEvent struct {
	// Name is the name of the property that changed.
	Name string
	// NewValue is the value after the change.
	NewValue any
	// OldValue is the value before the change. Only meaningful when HasOld is true.
	OldValue any
	// HasOld is false when the raiser had no previous value to report.
	HasOld bool
}

// PropertyChangedHandler receives property change events.
type PropertyChangedHandler = notify.Handler[PropertyChangedEvent]

// NewPropertyChangedHandler wraps fn so it can be registered on a Notifier.
func NewPropertyChangedHandler(fn func(PropertyChangedEvent)) *PropertyChangedHandler {
	return notify.NewHandler(fn)
}

// Notifier is implemented by objects that raise property change events.
type Notifier interface {
	// OnPropertyChanged registers h. Registering the same handler twice is a no-op.
	OnPropertyChanged(h *PropertyChangedHandler)
	// OffPropertyChanged removes h. Removing an absent handler is a no-op.
	OffPropertyChanged(h *PropertyChangedHandler)
}

// Object is an embeddable Notifier implementation.
// The zero value is ready to use.
type Object struct {
	handlers notify.List[PropertyChangedEvent]
}

var _ Notifier = (*Object)(nil)

// OnPropertyChanged registers h.
func (o *Object) OnPropertyChanged(h *PropertyChangedHandler) {
	o.handlers.Add(h)
}

// OffPropertyChanged removes h.
func (o *Object) OffPropertyChanged(h *PropertyChangedHandler) {
	o.handlers.Remove(h)
}

// HandlerCount returns the number of registered handlers.
func (o *Object) HandlerCount() int {
	return o.handlers.Len()
}

// RaisePropertyChanged notifies every handler that name changed from oldValue to newValue.
func (o *Object) RaisePropertyChanged(name string, newValue, oldValue any) {
	o.handlers.Emit(PropertyChangedEvent{
		Name:     name,
		NewValue: newValue,
		OldValue: oldValue,
		HasOld:   true,
	})
}

// RaisePropertyChangedNoOld notifies every handler that name now holds newValue
// without reporting a previous value.
func (o *Object) RaisePropertyChangedNoOld(name string, newValue any) {
	o.handlers.Emit(PropertyChangedEvent{Name: name, NewValue: newValue})
}

// Set writes next through setter and raises a change event, but only when
// next differs from current. It reports whether a change occurred.
//
// Every view model property setter should go through Set (or SetFunc) so
// that no-op writes never notify.
func Set[T comparable](o *Object, name string, current, next T, setter func(T)) bool {
	if same(current, next) {
		return false
	}
	setter(next)
	o.RaisePropertyChanged(name, next, current)
	return true
}

// same is == except that interface values holding non-comparable dynamic
// types (slices, maps, funcs) are never the same.
func same[T comparable](a, b T) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// SetFunc is like Set but compares values with equal, for types that are not
// comparable or need a custom notion of sameness.
func SetFunc[T any](o *Object, name string, current, next T, equal func(a, b T) bool, setter func(T)) bool {
	if equal != nil && equal(current, next) {
		return false
	}
	setter(next)
	o.RaisePropertyChanged(name, next, current)
	return true
}
