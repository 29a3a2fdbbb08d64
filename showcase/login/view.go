package login

import (
	"fmt"
	"log/slog"

	"github.com/go-drift/mvvm/pkg/binding"
	"github.com/go-drift/mvvm/pkg/bindset"
	"github.com/go-drift/mvvm/pkg/converters"
	"github.com/go-drift/mvvm/pkg/manifest"
	"github.com/go-drift/mvvm/pkg/view"
	"github.com/go-drift/mvvm/pkg/widgets"
)

// LoginView is the login form. Its bindings follow the data context: when
// the context's view model is replaced the view rebinds to the new one.
type LoginView struct {
	view.Base

	Root          *widgets.Node
	UsernameInput *widgets.TextInput
	PasswordInput *widgets.TextInput
	StatusLabel   *widgets.Label
	Spinner       *widgets.Node
	LoginButton   *widgets.Button
	ClearButton   *widgets.Button

	ctx      *view.Context
	registry *binding.Registry
	logger   *slog.Logger
	bindings *bindset.Set
	onChange *view.DataContextChangedHandler
	manifest *manifest.Manifest
}

// ViewOption configures a LoginView.
type ViewOption func(*LoginView)

// WithManifest declares the bindings from m instead of in code.
func WithManifest(m *manifest.Manifest) ViewOption {
	return func(v *LoginView) { v.manifest = m }
}

// NewLoginView builds the widget tree and binds it to the view model found
// in ctx.
func NewLoginView(ctx *view.Context, reg *binding.Registry, logger *slog.Logger, opts ...ViewOption) (*LoginView, error) {
	if logger == nil {
		logger = slog.Default()
	}
	v := &LoginView{
		Root:          widgets.NewNode("login"),
		UsernameInput: widgets.NewTextInput("username"),
		PasswordInput: widgets.NewTextInput("password"),
		StatusLabel:   widgets.NewLabel("status"),
		Spinner:       widgets.NewNode("spinner"),
		LoginButton:   widgets.NewButton("login"),
		ClearButton:   widgets.NewButton("clear"),
		ctx:           ctx,
		registry:      reg,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.UsernameInput.SetPlaceholder("Username")
	v.PasswordInput.SetPlaceholder("Password")
	v.PasswordInput.SetPassword(true)
	v.LoginButton.SetTitle("Log in")
	v.ClearButton.SetTitle("Clear")
	for _, n := range []*widgets.Node{
		v.UsernameInput.Node(), v.PasswordInput.Node(), v.StatusLabel.Node(),
		v.Spinner, v.LoginButton.Node(), v.ClearButton.Node(),
	} {
		v.Root.AddChild(n)
	}

	if err := v.bind(); err != nil {
		return nil, err
	}
	v.onChange = view.NewDataContextChangedHandler(func(*view.Context) { v.rebind() })
	ctx.OnDataContextChanged(v.onChange)
	v.OnDestroy(func() { ctx.OffDataContextChanged(v.onChange) })
	v.OnDestroy(v.Root.Destroy)
	return v, nil
}

// ViewModel returns the view model the view is bound to, or nil.
func (v *LoginView) ViewModel() *LoginViewModel {
	vm, _ := view.FindDataContext(v.ctx).(*LoginViewModel)
	return vm
}

// Bindings returns the current binding set.
func (v *LoginView) Bindings() *bindset.Set {
	return v.bindings
}

func (v *LoginView) bind() error {
	vm := v.ViewModel()
	if vm == nil {
		return fmt.Errorf("login view: data context is %T, want *LoginViewModel", view.FindDataContext(v.ctx))
	}

	set := bindset.New(v, vm, v.registry, bindset.WithLogger(v.logger))
	if v.manifest != nil {
		if err := v.manifest.Apply(set, v.Widgets(), converters.Named()); err != nil {
			set.Dispose()
			return err
		}
	} else {
		v.bindInCode(set)
	}
	if err := set.Build(); err != nil {
		set.Dispose()
		return err
	}
	v.bindings = set
	return nil
}

func (v *LoginView) bindInCode(set *bindset.Set) {
	set.Bind(v.UsernameInput).For(widgets.PropText).To("username").TwoWay().Build()
	set.Bind(v.PasswordInput).For(widgets.PropText).To("password").TwoWay().Build()
	set.Bind(v.StatusLabel).For(widgets.PropText).To("message").OneWay().Build()
	set.Bind(v.StatusLabel).For(widgets.PropColor).To("messageColor").WithConverter(converters.Color, nil).Build()
	set.Bind(v.Spinner).For(widgets.PropActive).To("busy").Build()
	set.Bind(v.LoginButton).For(widgets.OnClick).ToCommand("loginCommand").MirrorExecutability().Build()
	set.Bind(v.ClearButton).For(widgets.OnClick).ToCommand("clearCommand").Build()
}

func (v *LoginView) rebind() {
	if v.bindings != nil {
		v.bindings.Dispose()
		v.bindings = nil
	}
	if err := v.bind(); err != nil {
		v.logger.Warn("login view unbound", "error", err)
	}
}

// Widgets returns the bindable widgets by name, as referenced by the
// manifest form of the view.
func (v *LoginView) Widgets() map[string]any {
	return map[string]any{
		"username": v.UsernameInput,
		"password": v.PasswordInput,
		"status":   v.StatusLabel,
		"spinner":  v.Spinner,
		"login":    v.LoginButton,
		"clear":    v.ClearButton,
	}
}
