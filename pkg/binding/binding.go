package binding

import (
	"fmt"
	"strings"

	"github.com/go-drift/mvvm/pkg/errors"
	"github.com/go-drift/mvvm/pkg/observable"
)

// Options configures a Binding.
type Options struct {
	// Source is the root object the source path is resolved against,
	// usually a view model.
	Source any
	// SourcePath is the dotted path of the source property. It is also the
	// property name matched against change notifications.
	SourcePath string
	// SourceAccessor, when set, reads and writes the source value instead of
	// resolving SourcePath on Source.
	SourceAccessor *Accessor
	// Target is the widget (or any Resolver / map[string]any) to write to.
	Target any
	// TargetPath is the logical target property name.
	TargetPath string
	// Mode defaults to OneWay.
	Mode Mode
	// Converter optionally transforms values between source and target.
	Converter Converter
	// ConverterParameter is passed to every Converter call.
	ConverterParameter any
	// Equal decides whether a value coming back from the target is already
	// held by the source. Defaults to Identical.
	Equal func(a, b any) bool
}

type pathLevel struct {
	depth    int
	node     any
	notifier observable.Notifier
	handler  *observable.PropertyChangedHandler
}

// Binding keeps one target property synchronized with one source path.
//
// A Binding is active as soon as New returns and stays active until Dispose.
type Binding struct {
	source     any
	sourcePath string
	segments   []string
	accessor   *Accessor
	target     any
	targetPath string
	mode       Mode
	converter  Converter
	param      any
	equal      func(a, b any) bool

	adapter       PropertyAdapter
	levels        []pathLevel
	targetHandler *ChangeHandler
	disposed      bool
}

// New creates a Binding and performs the initial source to target
// synchronization. A nil reg means no adapters: the target is then accessed
// through generic path access only.
//
// It fails with a KindConfig *errors.BindError when a path is missing, the
// mode is invalid, or the target property cannot be reached.
func New(reg *Registry, opts Options) (*Binding, error) {
	const op = "binding.New"
	if opts.TargetPath == "" {
		return nil, errors.Config(op, opts.SourcePath, errors.ErrMissingTargetProperty)
	}
	if opts.SourcePath == "" {
		return nil, errors.Config(op, opts.TargetPath, errors.ErrMissingSourcePath)
	}
	if !opts.Mode.Valid() {
		return nil, errors.Config(op, opts.SourcePath, fmt.Errorf("invalid binding mode %s", opts.Mode))
	}

	b := &Binding{
		source:     opts.Source,
		sourcePath: opts.SourcePath,
		segments:   strings.Split(opts.SourcePath, "."),
		accessor:   opts.SourceAccessor,
		target:     opts.Target,
		targetPath: opts.TargetPath,
		mode:       opts.Mode,
		converter:  opts.Converter,
		param:      opts.ConverterParameter,
		equal:      opts.Equal,
	}
	if b.equal == nil {
		b.equal = Identical
	}

	if adapter, ok := reg.Property(opts.TargetPath, opts.Target); ok {
		b.adapter = adapter
	} else if !addressable(opts.Target) {
		return nil, errors.Config(op, opts.TargetPath, errors.ErrUnresolvedPath)
	}

	switch b.mode {
	case OneWay:
		b.observe(0, b.source)
	case TwoWay:
		b.observe(0, b.source)
		if err := b.observeTarget(); err != nil {
			b.Dispose()
			return nil, errors.Config(op, opts.TargetPath, err)
		}
	}
	b.updateTarget()
	return b, nil
}

// Mode returns the binding mode.
func (b *Binding) Mode() Mode {
	return b.mode
}

// SourcePath returns the source path.
func (b *Binding) SourcePath() string {
	return b.sourcePath
}

// TargetPath returns the target property name.
func (b *Binding) TargetPath() string {
	return b.targetPath
}

// Disposed reports whether Dispose has been called.
func (b *Binding) Disposed() bool {
	return b.disposed
}

// Dispose removes every subscription held by the binding.
// It is safe to call more than once and from inside a change handler.
func (b *Binding) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.unobserve(0)
	if b.targetHandler != nil {
		if ca, ok := b.adapter.(ChangeAdapter); ok {
			ca.OffChange(b.target, b.targetHandler)
		}
		b.targetHandler = nil
	}
}

// observe subscribes to every notifier on the source path from depth on,
// starting at node, which is the object found at that depth.
func (b *Binding) observe(depth int, node any) {
	b.unobserve(depth)
	for i := depth; i < len(b.segments); i++ {
		if n, ok := node.(observable.Notifier); ok && !isNil(node) {
			level := pathLevel{depth: i, node: node, notifier: n}
			rest := strings.Join(b.segments[i:], ".")
			level.handler = observable.NewPropertyChangedHandler(func(e observable.PropertyChangedEvent) {
				b.onSourceChanged(level, rest, e)
			})
			n.OnPropertyChanged(level.handler)
			b.levels = append(b.levels, level)
		}
		if i == len(b.segments)-1 {
			return
		}
		next, ok := lookupSegment(node, b.segments[i])
		if !ok {
			return
		}
		node = next
	}
}

// unobserve drops the subscriptions at depth and deeper.
func (b *Binding) unobserve(depth int) {
	kept := make([]pathLevel, 0, len(b.levels))
	for _, l := range b.levels {
		if l.depth < depth {
			kept = append(kept, l)
			continue
		}
		l.notifier.OffPropertyChanged(l.handler)
	}
	b.levels = kept
}

func (b *Binding) onSourceChanged(level pathLevel, rest string, e observable.PropertyChangedEvent) {
	if b.disposed {
		return
	}
	if e.Name != rest && !strings.HasPrefix(rest, e.Name+".") {
		return
	}
	// An intermediate object may have been replaced; follow the new chain.
	if level.depth < len(b.segments)-1 {
		next, ok := lookupSegment(level.node, b.segments[level.depth])
		if ok {
			b.observe(level.depth+1, next)
		} else {
			b.unobserve(level.depth + 1)
		}
	}
	b.updateTarget()
}

func (b *Binding) observeTarget() error {
	ca, ok := b.adapter.(ChangeAdapter)
	if !ok {
		return nil
	}
	h := NewChangeHandler(func(any) { b.updateSource() })
	if err := ca.OnChange(b.target, h); err != nil {
		return err
	}
	b.targetHandler = h
	return nil
}

func (b *Binding) readSource() any {
	if b.accessor != nil {
		if b.accessor.Get == nil {
			return nil
		}
		return b.accessor.Get()
	}
	v, _ := Lookup(b.source, b.sourcePath)
	return v
}

func (b *Binding) writeSource(value any) error {
	if b.accessor != nil {
		if b.accessor.Set == nil {
			return errors.ErrUnresolvedPath
		}
		return b.accessor.Set(value)
	}
	return Assign(b.source, b.sourcePath, value)
}

func (b *Binding) readTarget() (any, error) {
	if b.adapter != nil {
		return b.adapter.Get(b.target)
	}
	v, _ := Lookup(b.target, b.targetPath)
	return v, nil
}

func (b *Binding) writeTarget(value any) error {
	if b.adapter != nil {
		return b.adapter.Set(b.target, value)
	}
	return Assign(b.target, b.targetPath, value)
}

func (b *Binding) updateTarget() {
	const op = "binding.updateTarget"
	if b.disposed {
		return
	}
	defer errors.Recover(op)
	value := b.readSource()
	if b.converter != nil {
		converted, err := b.converter.Convert(value, b.param)
		if err != nil {
			report(op, errors.KindConvert, b.sourcePath, err)
			return
		}
		value = converted
	}
	if err := b.writeTarget(value); err != nil {
		report(op, errors.KindAdapter, b.targetPath, err)
	}
}

func (b *Binding) updateSource() {
	const op = "binding.updateSource"
	if b.disposed {
		return
	}
	defer errors.Recover(op)
	value, err := b.readTarget()
	if err != nil {
		report(op, errors.KindAdapter, b.targetPath, err)
		return
	}
	if back, ok := b.converter.(BackConverter); ok {
		converted, err := back.ConvertBack(value, b.param)
		if err != nil {
			report(op, errors.KindConvert, b.targetPath, err)
			return
		}
		value = converted
	}
	if b.equal(b.readSource(), value) {
		return
	}
	if err := b.writeSource(value); err != nil {
		report(op, errors.KindPath, b.sourcePath, err)
	}
}

func report(op string, kind errors.Kind, path string, err error) {
	errors.Report(&errors.BindError{Op: op, Kind: kind, Path: path, Err: err, StackTrace: errors.CaptureStack()})
}
