package view

import (
	"github.com/go-drift/mvvm/pkg/binding"
	"github.com/go-drift/mvvm/pkg/notify"
)

// DataContextChangedHandler is notified after a Context's data changed.
type DataContextChangedHandler = notify.Handler[*Context]

// NewDataContextChangedHandler wraps fn for OnDataContextChanged.
func NewDataContextChangedHandler(fn func(*Context)) *DataContextChangedHandler {
	return notify.NewHandler(fn)
}

// Context holds the data context (usually a view model) of a view.
type Context struct {
	parent   *Context
	data     any
	handlers notify.List[*Context]
}

// NewContext creates a context nested under parent, which may be nil.
func NewContext(parent *Context) *Context {
	return &Context{parent: parent}
}

// Parent returns the enclosing context, or nil for a root.
func (c *Context) Parent() *Context {
	return c.parent
}

// DataContext returns the data set on c itself, without looking at parents.
func (c *Context) DataContext() any {
	return c.data
}

// SetDataContext replaces the data and notifies handlers when it changed.
func (c *Context) SetDataContext(data any) {
	if binding.Identical(c.data, data) {
		return
	}
	c.data = data
	c.handlers.Emit(c)
}

// OnDataContextChanged subscribes h. Adding the same handler twice has no
// effect.
func (c *Context) OnDataContextChanged(h *DataContextChangedHandler) {
	c.handlers.Add(h)
}

// OffDataContextChanged unsubscribes h.
func (c *Context) OffDataContextChanged(h *DataContextChangedHandler) {
	c.handlers.Remove(h)
}

// FindDataContext returns the data of the nearest context, starting at c and
// walking up through parents, that has a non-nil data context.
func FindDataContext(c *Context) any {
	for cur := c; cur != nil; cur = cur.parent {
		if cur.data != nil {
			return cur.data
		}
	}
	return nil
}
