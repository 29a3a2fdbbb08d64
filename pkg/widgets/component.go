package widgets

import "github.com/go-drift/mvvm/pkg/binding"

// Hosted is implemented by widgets attached to a node.
type Hosted interface {
	Node() *Node
}

// Enabler is implemented by widgets with an enabled flag.
type Enabler interface {
	Enabled() bool
	SetEnabled(enabled bool)
}

// Component is the part shared by every widget: the host node, the enabled
// flag, and the bridges between node events and binding change handlers.
type Component struct {
	node    *Node
	enabled bool
	bridges map[*binding.ChangeHandler]*binding.EventHandler
}

func newComponent(name string) Component {
	return Component{node: NewNode(name), enabled: true}
}

// Node returns the host node.
func (c *Component) Node() *Node { return c.node }

// Enabled reports whether the widget reacts to input.
func (c *Component) Enabled() bool { return c.enabled }

// SetEnabled enables or disables the widget.
func (c *Component) SetEnabled(enabled bool) { c.enabled = enabled }

// watch forwards the given node events to h, passing widget as payload.
func (c *Component) watch(widget any, h *binding.ChangeHandler, events ...string) {
	if c.bridges == nil {
		c.bridges = make(map[*binding.ChangeHandler]*binding.EventHandler)
	}
	if _, ok := c.bridges[h]; ok {
		return
	}
	bridge := binding.NewEventHandler(func(binding.Event) { h.Call(widget) })
	c.bridges[h] = bridge
	for _, e := range events {
		c.node.On(e, bridge)
	}
}

func (c *Component) unwatch(h *binding.ChangeHandler, events ...string) {
	bridge, ok := c.bridges[h]
	if !ok {
		return
	}
	delete(c.bridges, h)
	for _, e := range events {
		c.node.Off(e, bridge)
	}
}
