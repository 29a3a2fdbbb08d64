package bindtest

import (
	"github.com/go-drift/mvvm/pkg/binding"
	"github.com/go-drift/mvvm/pkg/observable"
)

// ViewModel is a dynamic view model backed by a map. Every property is
// readable and writable through binding.Resolver, and writes go through
// observable.SetFunc so no-op writes never notify.
type ViewModel struct {
	observable.Object
	values map[string]any
	writes map[string]int
}

var (
	_ binding.Resolver    = (*ViewModel)(nil)
	_ observable.Notifier = (*ViewModel)(nil)
)

// NewViewModel creates a view model holding a copy of values.
func NewViewModel(values map[string]any) *ViewModel {
	vm := &ViewModel{
		values: make(map[string]any, len(values)),
		writes: make(map[string]int),
	}
	for k, v := range values {
		vm.values[k] = v
	}
	return vm
}

// Get returns the value of name.
func (vm *ViewModel) Get(name string) any {
	return vm.values[name]
}

// Set writes name and raises a change event when the value differs.
func (vm *ViewModel) Set(name string, value any) bool {
	return observable.SetFunc(&vm.Object, name, vm.values[name], value, binding.Identical, func(v any) {
		vm.values[name] = v
		vm.writes[name]++
	})
}

// Writes returns how many effective writes name received.
func (vm *ViewModel) Writes(name string) int {
	return vm.writes[name]
}

// Property implements binding.Resolver.
func (vm *ViewModel) Property(name string) (binding.Accessor, bool) {
	if _, ok := vm.values[name]; !ok {
		return binding.Accessor{}, false
	}
	return binding.Accessor{
		Get: func() any { return vm.values[name] },
		Set: func(v any) error {
			vm.Set(name, v)
			return nil
		},
	}, true
}
