package binding

import "sort"

// Registry maps logical property and event names to adapters.
//
// Several adapters can share a name, one per widget type; lookups return the
// first registered adapter that accepts the widget. A Registry is built once
// at startup and passed to every binding, which keeps tests free to use
// isolated fakes.
type Registry struct {
	properties map[string][]PropertyAdapter
	events     map[string][]EventAdapter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		properties: make(map[string][]PropertyAdapter),
		events:     make(map[string][]EventAdapter),
	}
}

// RegisterProperty adds a property adapter under name.
func (r *Registry) RegisterProperty(name string, adapter PropertyAdapter) *Registry {
	r.properties[name] = append(r.properties[name], adapter)
	return r
}

// RegisterEvent adds an event adapter under name.
func (r *Registry) RegisterEvent(name string, adapter EventAdapter) *Registry {
	r.events[name] = append(r.events[name], adapter)
	return r
}

// Property returns the adapter for property name on widget.
func (r *Registry) Property(name string, widget any) (PropertyAdapter, bool) {
	if r == nil {
		return nil, false
	}
	for _, a := range r.properties[name] {
		if a.Accepts(widget) {
			return a, true
		}
	}
	return nil, false
}

// Event returns the adapter for event name on widget.
func (r *Registry) Event(name string, widget any) (EventAdapter, bool) {
	if r == nil {
		return nil, false
	}
	for _, a := range r.events[name] {
		if a.Accepts(widget) {
			return a, true
		}
	}
	return nil, false
}

// PropertyNames returns the registered property names, sorted.
func (r *Registry) PropertyNames() []string {
	if r == nil {
		return nil
	}
	return sortedKeys(r.properties)
}

// EventNames returns the registered event names, sorted.
func (r *Registry) EventNames() []string {
	if r == nil {
		return nil
	}
	return sortedKeys(r.events)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
