package widgets

import (
	"github.com/go-drift/mvvm/pkg/binding"
	"github.com/go-drift/mvvm/pkg/notify"
)

// Event names published by nodes.
const (
	EventClick           = "click"
	EventTextChanged     = "text-changed"
	EventEditingDidEnded = "editing-did-ended"
	EventToggle          = "toggle"
	EventDestroyed       = "node-destroyed"
)

// Node is an element of the scene tree. It owns the event channels of the
// widgets attached to it.
type Node struct {
	name      string
	active    bool
	parent    *Node
	children  []*Node
	events    map[string]*notify.List[binding.Event]
	destroyed bool
}

var _ binding.EventSource = (*Node)(nil)

// NewNode creates an active node with no parent.
func NewNode(name string) *Node {
	return &Node{
		name:   name,
		active: true,
		events: make(map[string]*notify.List[binding.Event]),
	}
}

// Name returns the node name.
func (n *Node) Name() string { return n.name }

// Active reports whether the node is active.
func (n *Node) Active() bool { return n.active }

// SetActive shows or hides the node.
func (n *Node) SetActive(active bool) { n.active = active }

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes in insertion order.
func (n *Node) Children() []*Node { return n.children }

// AddChild appends child, detaching it from its previous parent.
func (n *Node) AddChild(child *Node) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child. It does nothing when child is not a child of n.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Find returns the first descendant with the given name, depth first.
func (n *Node) Find(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// On subscribes h to event. Subscribing the same handler twice has no effect.
func (n *Node) On(event string, h *binding.EventHandler) {
	l, ok := n.events[event]
	if !ok {
		l = &notify.List[binding.Event]{}
		n.events[event] = l
	}
	l.Add(h)
}

// Off unsubscribes h from event.
func (n *Node) Off(event string, h *binding.EventHandler) {
	if l, ok := n.events[event]; ok {
		l.Remove(h)
	}
}

// Emit publishes event with args to its subscribers in subscription order.
func (n *Node) Emit(event string, args ...any) {
	if l, ok := n.events[event]; ok {
		l.Emit(binding.Event{Name: event, Args: args})
	}
}

// Listeners returns the number of subscribers to event.
func (n *Node) Listeners(event string) int {
	if l, ok := n.events[event]; ok {
		return l.Len()
	}
	return 0
}

// OnDestroy runs fn when the node is destroyed and returns a function that
// cancels it. A node that is already destroyed runs fn immediately.
func (n *Node) OnDestroy(fn func()) (unregister func()) {
	if fn == nil {
		return func() {}
	}
	if n.destroyed {
		fn()
		return func() {}
	}
	h := binding.NewEventHandler(func(binding.Event) { fn() })
	n.On(EventDestroyed, h)
	return func() { n.Off(EventDestroyed, h) }
}

// Destroy destroys the children, publishes EventDestroyed and detaches the
// node from its parent. Only the first call has an effect.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	n.destroyed = true
	for _, c := range append([]*Node(nil), n.children...) {
		c.Destroy()
	}
	n.Emit(EventDestroyed)
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
	for _, l := range n.events {
		l.Clear()
	}
}

// IsDestroyed reports whether Destroy has been called.
func (n *Node) IsDestroyed() bool { return n.destroyed }
