package manifest

import (
	"errors"
	"fmt"

	"github.com/go-drift/mvvm/pkg/binding"
	"github.com/go-drift/mvvm/pkg/bindset"
)

// Apply validates m and declares its bindings on set. widgets maps entry
// targets to widget values; converters maps converter names to converters.
//
// Every entry is attempted. The returned error joins all failures; the
// failures are also recorded on set, so set.Build refuses to activate it.
// An invalid manifest declares nothing.
func (m *Manifest) Apply(set *bindset.Set, widgets map[string]any, converters map[string]binding.Converter) error {
	if err := m.Validate(); err != nil {
		return set.Fail(err)
	}

	var errs []error
	for i, e := range m.Bindings {
		if err := e.apply(set, widgets, converters); err != nil {
			errs = append(errs, fmt.Errorf("bindings[%d] (%s): %w", i, e.Target, err))
		}
	}
	return errors.Join(errs...)
}

func (e Entry) apply(set *bindset.Set, widgets map[string]any, converters map[string]binding.Converter) error {
	widget, ok := widgets[e.Target]
	if !ok {
		return set.Fail(fmt.Errorf("unknown target %q", e.Target))
	}

	if e.IsCommand() {
		b := set.Bind(widget)
		if e.Event != "" {
			b.For(e.Event)
		}
		cb := b.ToCommand(e.Command).WithParameter(e.Parameter)
		if e.Mirror {
			if e.MirrorProperty != "" {
				cb.MirrorExecutabilityTo(e.MirrorProperty)
			} else {
				cb.MirrorExecutability()
			}
		}
		return cb.Build()
	}

	mode, err := e.BindingMode()
	if err != nil {
		return set.Fail(err)
	}
	b := set.Bind(widget).For(e.Property).To(e.Path).WithMode(mode)
	if e.Converter != "" {
		conv, ok := converters[e.Converter]
		if !ok {
			return set.Fail(fmt.Errorf("unknown converter %q", e.Converter))
		}
		b.WithConverter(conv, e.Parameter)
	}
	return b.Build()
}
