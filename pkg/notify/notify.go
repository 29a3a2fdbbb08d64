// Package notify provides ordered, identity-keyed handler lists.
//
// Go funcs are not comparable, so handlers are wrapped in a pointer whose
// identity is used for registration and removal:
//
//	h := notify.NewHandler(func(v int) { fmt.Println(v) })
//	list.Add(h)
//	list.Add(h) // no-op, already registered
//	list.Emit(1)
//	list.Remove(h)
//
// Lists are NOT thread-safe. They are meant to be used from the UI thread only.
package notify

// Handler wraps a callback so it can be registered and removed by identity.
type Handler[T any] struct {
	fn func(T)
}

// NewHandler wraps fn in a Handler. A nil fn produces a handler that does nothing.
func NewHandler[T any](fn func(T)) *Handler[T] {
	return &Handler[T]{fn: fn}
}

// Call invokes the wrapped callback.
func (h *Handler[T]) Call(v T) {
	if h == nil || h.fn == nil {
		return
	}
	h.fn(v)
}

// List is an ordered set of handlers.
// The zero value is an empty list ready to use.
type List[T any] struct {
	handlers []*Handler[T]
}

// Add appends h to the list. Adding a handler that is already registered is a no-op.
func (l *List[T]) Add(h *Handler[T]) {
	if h == nil || l.index(h) >= 0 {
		return
	}
	l.handlers = append(l.handlers, h)
}

// Remove removes h from the list. Removing an absent handler is a no-op.
func (l *List[T]) Remove(h *Handler[T]) {
	i := l.index(h)
	if i < 0 {
		return
	}
	// Copy so that an in-flight Emit keeps iterating its own snapshot.
	next := make([]*Handler[T], 0, len(l.handlers)-1)
	next = append(next, l.handlers[:i]...)
	next = append(next, l.handlers[i+1:]...)
	l.handlers = next
}

// Contains reports whether h is registered.
func (l *List[T]) Contains(h *Handler[T]) bool {
	return l.index(h) >= 0
}

// Len returns the number of registered handlers.
func (l *List[T]) Len() int {
	return len(l.handlers)
}

// Clear removes every handler.
func (l *List[T]) Clear() {
	l.handlers = nil
}

// Emit calls every handler registered at the time of the call, in
// registration order. Handlers may add or remove handlers, or emit again,
// from inside their callback. A handler removed by an earlier one is not
// called; one added during the emission is not called until the next.
func (l *List[T]) Emit(v T) {
	snapshot := l.handlers
	for _, h := range snapshot {
		if l.index(h) < 0 {
			continue
		}
		h.Call(v)
	}
}

func (l *List[T]) index(h *Handler[T]) int {
	for i, existing := range l.handlers {
		if existing == h {
			return i
		}
	}
	return -1
}
