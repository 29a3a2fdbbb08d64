package binding

import (
	"fmt"
	"strings"

	"github.com/go-drift/mvvm/pkg/errors"
)

// Accessor reads and writes one named property.
// A nil Set makes the property read-only.
type Accessor struct {
	Get func() any
	Set func(value any) error
}

// Resolver is implemented by objects that expose named properties to
// bindings, typically view models.
type Resolver interface {
	Property(name string) (Accessor, bool)
}

// Properties is a Resolver backed by a map of accessors.
//
// Example:
//
//	vm.props = binding.Properties{
//	    "name": binding.Prop(vm.Name, vm.SetName),
//	}
//
//	func (vm *PlayerViewModel) Property(name string) (binding.Accessor, bool) {
//	    return vm.props.Property(name)
//	}
type Properties map[string]Accessor

// Property implements Resolver.
func (p Properties) Property(name string) (Accessor, bool) {
	a, ok := p[name]
	return a, ok
}

// Prop builds an Accessor from typed getter and setter functions.
// A nil set produces a read-only accessor. Writing a value of the wrong type
// fails; writing nil stores the zero value of T.
func Prop[T any](get func() T, set func(T)) Accessor {
	a := Accessor{Get: func() any { return get() }}
	if set != nil {
		a.Set = func(value any) error {
			v, err := valueAs[T](value)
			if err != nil {
				return err
			}
			set(v)
			return nil
		}
	}
	return a
}

// ReadOnly builds an Accessor exposing a constant-producing getter.
func ReadOnly[T any](get func() T) Accessor {
	return Prop[T](get, nil)
}

func valueAs[T any](value any) (T, error) {
	var zero T
	if value == nil {
		return zero, nil
	}
	v, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("cannot use %T as %T", value, zero)
	}
	return v, nil
}

// Lookup resolves a dotted path starting at root. It reports false as soon
// as any segment is missing; it never fails otherwise.
func Lookup(root any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	cur := root
	for _, seg := range strings.Split(path, ".") {
		next, ok := lookupSegment(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Assign writes value at a dotted path starting at root. Missing
// intermediate segments inside a map[string]any are created as empty maps.
// Segments that cannot be created, and read-only properties, produce an
// error wrapping errors.ErrUnresolvedPath.
func Assign(root any, path string, value any) error {
	if path == "" || isNil(root) {
		return fmt.Errorf("%w: %q", errors.ErrUnresolvedPath, path)
	}
	segs := strings.Split(path, ".")
	cur := root
	for _, seg := range segs[:len(segs)-1] {
		next, ok := lookupSegment(cur, seg)
		if !ok || isNil(next) {
			m, isMap := cur.(map[string]any)
			if !isMap {
				return fmt.Errorf("%w: %q at %q", errors.ErrUnresolvedPath, path, seg)
			}
			created := make(map[string]any)
			m[seg] = created
			next = created
		}
		cur = next
	}

	last := segs[len(segs)-1]
	switch c := cur.(type) {
	case Resolver:
		a, ok := c.Property(last)
		if !ok || a.Set == nil {
			return fmt.Errorf("%w: %q is not writable", errors.ErrUnresolvedPath, path)
		}
		return a.Set(value)
	case map[string]any:
		if existing, ok := c[last]; ok && Identical(existing, value) {
			return nil
		}
		c[last] = value
		return nil
	}
	return fmt.Errorf("%w: %q on %T", errors.ErrUnresolvedPath, path, cur)
}

func lookupSegment(cur any, seg string) (any, bool) {
	if isNil(cur) {
		return nil, false
	}
	switch c := cur.(type) {
	case Resolver:
		a, ok := c.Property(seg)
		if !ok || a.Get == nil {
			return nil, false
		}
		return a.Get(), true
	case map[string]any:
		v, ok := c[seg]
		return v, ok
	}
	return nil, false
}

// addressable reports whether generic path access can reach into v.
func addressable(v any) bool {
	switch v.(type) {
	case Resolver, map[string]any:
		return !isNil(v)
	}
	return false
}
