package bindset

import (
	"github.com/go-drift/mvvm/pkg/binding"
	"github.com/go-drift/mvvm/pkg/command"
	"github.com/go-drift/mvvm/pkg/errors"
)

// DefaultEvent is the event a command binding listens to when For was not
// called.
const DefaultEvent = "onClick"

// Builder declares one binding of a Set.
type Builder struct {
	set       *Set
	widget    any
	prop      string
	path      string
	accessor  *binding.Accessor
	mode      binding.Mode
	converter binding.Converter
	param     any
	equal     func(a, b any) bool
}

// For names the widget property, or the event for command bindings.
func (b *Builder) For(prop string) *Builder {
	b.prop = prop
	return b
}

// To sets the dotted source path on the view model.
func (b *Builder) To(path string) *Builder {
	b.path = path
	b.accessor = nil
	return b
}

// ToProperty binds to an explicit accessor. name is the property name the
// view model raises change notifications under.
func (b *Builder) ToProperty(name string, accessor binding.Accessor) *Builder {
	b.path = name
	b.accessor = &accessor
	return b
}

// OneWay selects binding.OneWay, the default.
func (b *Builder) OneWay() *Builder { return b.WithMode(binding.OneWay) }

// TwoWay selects binding.TwoWay.
func (b *Builder) TwoWay() *Builder { return b.WithMode(binding.TwoWay) }

// OneTime selects binding.OneTime.
func (b *Builder) OneTime() *Builder { return b.WithMode(binding.OneTime) }

// WithMode selects the binding mode.
func (b *Builder) WithMode(mode binding.Mode) *Builder {
	b.mode = mode
	return b
}

// WithConverter transforms values with c, passing param to every call.
func (b *Builder) WithConverter(c binding.Converter, param any) *Builder {
	b.converter = c
	b.param = param
	return b
}

// WithEqual replaces the equality used to suppress redundant source writes.
func (b *Builder) WithEqual(equal func(a, b any) bool) *Builder {
	b.equal = equal
	return b
}

// Build creates the binding and adds it to the set. The binding is live
// immediately.
func (b *Builder) Build() error {
	const op = "bindset.Bind"
	if err := b.set.open(op); err != nil {
		return err
	}
	bnd, err := binding.New(b.set.registry, binding.Options{
		Source:             b.set.viewModel,
		SourcePath:         b.path,
		SourceAccessor:     b.accessor,
		Target:             b.widget,
		TargetPath:         b.prop,
		Mode:               b.mode,
		Converter:          b.converter,
		ConverterParameter: b.param,
		Equal:              b.equal,
	})
	if err != nil {
		return b.set.Fail(err)
	}
	b.set.add(bnd)
	b.set.logger.Debug("binding added", "target", b.prop, "source", b.path, "mode", b.mode)
	return nil
}

// ToCommand binds the event named by For to the command found at path on
// the view model.
func (b *Builder) ToCommand(path string) *CommandBuilder {
	return &CommandBuilder{builder: b, path: path}
}

// ToCommandValue binds the event named by For to cmd.
func (b *Builder) ToCommandValue(cmd command.Command) *CommandBuilder {
	return &CommandBuilder{builder: b, command: cmd, direct: true}
}

// CommandBuilder declares a command binding.
type CommandBuilder struct {
	builder        *Builder
	path           string
	command        command.Command
	direct         bool
	param          any
	mirror         bool
	mirrorProperty string
}

// MirrorExecutability keeps the widget's "interactable" property equal to
// the command's CanExecute.
func (c *CommandBuilder) MirrorExecutability() *CommandBuilder {
	return c.MirrorExecutabilityTo(binding.DefaultMirrorProperty)
}

// MirrorExecutabilityTo is like MirrorExecutability with another property.
func (c *CommandBuilder) MirrorExecutabilityTo(prop string) *CommandBuilder {
	c.mirror = true
	c.mirrorProperty = prop
	return c
}

// WithParameter sets the parameter passed to Execute and CanExecute.
func (c *CommandBuilder) WithParameter(param any) *CommandBuilder {
	c.param = param
	return c
}

// Build creates the command binding and adds it to the set.
func (c *CommandBuilder) Build() error {
	const op = "bindset.BindCommand"
	set := c.builder.set
	if err := set.open(op); err != nil {
		return err
	}
	cmd, err := c.resolve(op)
	if err != nil {
		return set.Fail(err)
	}
	event := c.builder.prop
	if event == "" {
		event = DefaultEvent
	}
	cb, err := binding.NewCommandBinding(set.registry, binding.CommandOptions{
		Target:              c.builder.widget,
		Event:               event,
		Command:             cmd,
		Parameter:           c.param,
		MirrorExecutability: c.mirror,
		MirrorProperty:      c.mirrorProperty,
	})
	if err != nil {
		return set.Fail(err)
	}
	set.add(cb)
	set.logger.Debug("command binding added", "event", event, "command", c.path, "mirror", c.mirror)
	return nil
}

func (c *CommandBuilder) resolve(op string) (command.Command, error) {
	if c.direct {
		if c.command == nil {
			return nil, errors.Config(op, c.path, errors.ErrCommandNotFound)
		}
		return c.command, nil
	}
	v, ok := binding.Lookup(c.builder.set.viewModel, c.path)
	if !ok || v == nil {
		return nil, errors.Config(op, c.path, errors.ErrCommandNotFound)
	}
	cmd, ok := v.(command.Command)
	if !ok {
		return nil, errors.Config(op, c.path, errors.ErrNotCommand)
	}
	return cmd, nil
}
