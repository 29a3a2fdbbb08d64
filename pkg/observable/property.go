package observable

// Property holds a single typed value and notifies listeners when it changes.
//
// A Property can optionally be attached to an Object, in which case every
// change is also raised on the object under the attached name. This lets a
// view model expose Property fields and still participate in bindings.
//
// Property is NOT thread-safe. It must only be accessed from the UI thread.
type Property[T any] struct {
	value     T
	equal     func(a, b T) bool
	listeners map[int]func(T)
	order     []int
	nextID    int
	owner     *Object
	name      string
}

// NewProperty creates a property holding initial.
// Values are compared with ==; non-comparable types must use NewPropertyWithEquality.
func NewProperty[T comparable](initial T) *Property[T] {
	return &Property[T]{
		value: initial,
		equal: func(a, b T) bool { return a == b },
	}
}

// NewPropertyWithEquality creates a property that uses equal to decide
// whether a new value is a change. A nil equal treats every Set as a change.
func NewPropertyWithEquality[T any](initial T, equal func(a, b T) bool) *Property[T] {
	return &Property[T]{value: initial, equal: equal}
}

// Attach raises every subsequent change on owner under name.
func (p *Property[T]) Attach(owner *Object, name string) *Property[T] {
	p.owner = owner
	p.name = name
	return p
}

// Value returns the current value.
func (p *Property[T]) Value() T {
	return p.value
}

// Set updates the value. Listeners and the attached owner are notified only
// when the value changed. It reports whether a change occurred.
func (p *Property[T]) Set(value T) bool {
	if p.equal != nil && p.equal(p.value, value) {
		return false
	}
	old := p.value
	p.value = value
	for _, id := range p.order {
		if fn, ok := p.listeners[id]; ok {
			fn(value)
		}
	}
	if p.owner != nil {
		p.owner.RaisePropertyChanged(p.name, value, old)
	}
	return true
}

// AddListener registers fn and returns a function that unregisters it.
func (p *Property[T]) AddListener(fn func(T)) func() {
	if p.listeners == nil {
		p.listeners = make(map[int]func(T))
	}
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	p.order = append(p.order, id)

	return func() {
		if _, ok := p.listeners[id]; !ok {
			return
		}
		delete(p.listeners, id)
		for i, existing := range p.order {
			if existing == id {
				p.order = append(p.order[:i:i], p.order[i+1:]...)
				break
			}
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (p *Property[T]) ListenerCount() int {
	return len(p.listeners)
}
