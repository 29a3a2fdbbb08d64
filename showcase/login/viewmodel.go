// Package login is a complete binding example: a login form whose view model
// validates credentials asynchronously while the view disables the login
// button and shows a spinner.
package login

import (
	"context"
	"errors"

	"github.com/go-drift/mvvm/pkg/binding"
	"github.com/go-drift/mvvm/pkg/command"
	"github.com/go-drift/mvvm/pkg/observable"
)

// Prompt is the message shown before any login attempt.
const Prompt = "Please enter your credentials"

// ErrInvalidCredentials is returned by an Authenticator rejecting a login.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator checks credentials. It runs off the UI thread.
type Authenticator func(ctx context.Context, username, password string) error

// LoginViewModel holds the state of the login form.
type LoginViewModel struct {
	observable.Object

	username     string
	password     string
	message      string
	messageColor string
	busy         bool

	loginCommand *command.AsyncCommand
	clearCommand *command.RelayCommand

	ctx   context.Context
	auth  Authenticator
	post  func(func())
	props binding.Properties
}

// NewLoginViewModel creates the view model. auth runs in its own goroutine
// and post must deliver its result back to the UI thread. A nil post runs
// auth synchronously.
func NewLoginViewModel(ctx context.Context, auth Authenticator, post func(func())) *LoginViewModel {
	vm := &LoginViewModel{
		message:      Prompt,
		messageColor: "black",
		ctx:          ctx,
		auth:         auth,
		post:         post,
	}
	vm.loginCommand = command.NewAsync(vm.onLogin, func(any) bool { return vm.canLogin() })
	vm.clearCommand = command.New(func(any) { vm.onClear() }, nil)
	vm.props = binding.Properties{
		"username":     binding.Prop(vm.Username, vm.SetUsername),
		"password":     binding.Prop(vm.Password, vm.SetPassword),
		"message":      binding.Prop(vm.Message, vm.SetMessage),
		"messageColor": binding.ReadOnly(func() string { return vm.messageColor }),
		"busy":         binding.ReadOnly(vm.Busy),
		"loginCommand": binding.ReadOnly(vm.LoginCommand),
		"clearCommand": binding.ReadOnly(vm.ClearCommand),
	}
	return vm
}

// Property implements binding.Resolver.
func (vm *LoginViewModel) Property(name string) (binding.Accessor, bool) {
	return vm.props.Property(name)
}

func (vm *LoginViewModel) Username() string { return vm.username }

// SetUsername updates the username and re-evaluates the login command.
func (vm *LoginViewModel) SetUsername(v string) {
	if observable.Set(&vm.Object, "username", vm.username, v, func(v string) { vm.username = v }) {
		vm.loginCommand.RaiseCanExecuteChanged()
	}
}

func (vm *LoginViewModel) Password() string { return vm.password }

// SetPassword updates the password and re-evaluates the login command.
func (vm *LoginViewModel) SetPassword(v string) {
	if observable.Set(&vm.Object, "password", vm.password, v, func(v string) { vm.password = v }) {
		vm.loginCommand.RaiseCanExecuteChanged()
	}
}

func (vm *LoginViewModel) Message() string { return vm.message }

func (vm *LoginViewModel) SetMessage(v string) {
	observable.Set(&vm.Object, "message", vm.message, v, func(v string) { vm.message = v })
}

// MessageColor is a CSS color name for the status message.
func (vm *LoginViewModel) MessageColor() string { return vm.messageColor }

func (vm *LoginViewModel) setMessageColor(v string) {
	observable.Set(&vm.Object, "messageColor", vm.messageColor, v, func(v string) { vm.messageColor = v })
}

func (vm *LoginViewModel) Busy() bool { return vm.busy }

func (vm *LoginViewModel) setBusy(v bool) {
	observable.Set(&vm.Object, "busy", vm.busy, v, func(v bool) { vm.busy = v })
}

// LoginCommand submits the credentials.
func (vm *LoginViewModel) LoginCommand() *command.AsyncCommand { return vm.loginCommand }

// ClearCommand resets the form.
func (vm *LoginViewModel) ClearCommand() *command.RelayCommand { return vm.clearCommand }

func (vm *LoginViewModel) canLogin() bool {
	return !vm.busy && vm.username != "" && vm.password != ""
}

func (vm *LoginViewModel) onLogin(_ any, done func()) {
	vm.setBusy(true)
	vm.SetMessage("Logging in...")
	vm.setMessageColor("gray")

	username, password := vm.username, vm.password
	finish := func(err error) {
		switch {
		case err == nil:
			vm.SetMessage("Welcome, " + username + "!")
			vm.setMessageColor("seagreen")
		case errors.Is(err, ErrInvalidCredentials):
			vm.SetMessage("Invalid credentials. Try admin/password")
			vm.setMessageColor("crimson")
		default:
			vm.SetMessage("Login failed. Please try again.")
			vm.setMessageColor("crimson")
		}
		vm.setBusy(false)
		done()
	}

	if vm.post == nil {
		finish(vm.auth(vm.ctx, username, password))
		return
	}
	go func() {
		err := vm.auth(vm.ctx, username, password)
		vm.post(func() { finish(err) })
	}()
}

func (vm *LoginViewModel) onClear() {
	vm.SetUsername("")
	vm.SetPassword("")
	vm.SetMessage(Prompt)
	vm.setMessageColor("black")
}
