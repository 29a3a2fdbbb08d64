package view

// Base is an embeddable view lifecycle.
//
// Hooks run once, in reverse registration order, when Destroy is called.
// Like widget state, a Base is owned by the UI thread and is not safe for
// concurrent use.
type Base struct {
	hooks     map[int]func()
	order     []int
	nextID    int
	destroyed bool
}

// OnDestroy registers fn to run when the view is destroyed and returns a
// function that unregisters it. When the view is already destroyed fn runs
// immediately and the returned function does nothing.
func (b *Base) OnDestroy(fn func()) (unregister func()) {
	if fn == nil {
		return func() {}
	}
	if b.destroyed {
		fn()
		return func() {}
	}
	if b.hooks == nil {
		b.hooks = make(map[int]func())
	}
	id := b.nextID
	b.nextID++
	b.hooks[id] = fn
	b.order = append(b.order, id)

	return func() {
		if _, ok := b.hooks[id]; !ok {
			return
		}
		delete(b.hooks, id)
		for i, existing := range b.order {
			if existing == id {
				b.order = append(b.order[:i:i], b.order[i+1:]...)
				break
			}
		}
	}
}

// Destroy runs the registered hooks in reverse order. Only the first call
// has an effect.
func (b *Base) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	hooks, order := b.hooks, b.order
	b.hooks, b.order = nil, nil
	for i := len(order) - 1; i >= 0; i-- {
		if fn, ok := hooks[order[i]]; ok {
			fn()
		}
	}
}

// IsDestroyed reports whether Destroy has been called.
func (b *Base) IsDestroyed() bool {
	return b.destroyed
}

// HookCount returns the number of live hooks.
func (b *Base) HookCount() int {
	return len(b.hooks)
}
