package binding

import "reflect"

// Identical is the default equality used to suppress redundant writes.
//
// Values of comparable types are compared with ==. Values of non-comparable
// types (slices, maps, funcs, structs holding them) are never identical, so a
// collection mutated in place is always written through rather than mistaken
// for a no-op. Supply Options.Equal to compare such values by content.
func Identical(a, b any) (same bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	// Comparable types can still hold non-comparable dynamic values in
	// interface fields; treat those as different.
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
