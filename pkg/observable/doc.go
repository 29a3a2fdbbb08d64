// Package observable provides property-change notification for view models.
//
// A view model embeds Object and routes every property write through Set,
// which only notifies when the value actually changes:
//
//	type PlayerViewModel struct {
//	    observable.Object
//	    name string
//	}
//
//	func (vm *PlayerViewModel) SetName(v string) {
//	    observable.Set(&vm.Object, "name", vm.name, v, func(v string) { vm.name = v })
//	}
//
// Handlers subscribe to the object as a whole and receive the name of the
// changed property along with its new and old values. Handlers are invoked
// synchronously, in registration order.
//
// For single values that do not belong to a view model, Property offers a
// typed alternative with AddListener/unsubscribe semantics.
//
// Nothing in this package is thread-safe. Mutate view models from the UI
// thread only.
package observable
