package login

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-drift/mvvm/pkg/binding"
	"github.com/go-drift/mvvm/pkg/converters"
	"github.com/go-drift/mvvm/pkg/view"
	"github.com/go-drift/mvvm/pkg/widgets"
)

// DemoAuthenticator accepts admin/password after delay.
func DemoAuthenticator(delay time.Duration) Authenticator {
	return func(ctx context.Context, username, password string) error {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if username != "admin" || password != "password" {
			return ErrInvalidCredentials
		}
		return nil
	}
}

// Run drives the login form through a scripted session, printing the
// visible state of the form after each step. opts configure the view.
func Run(ctx context.Context, out io.Writer, logger *slog.Logger, delay time.Duration, opts ...ViewOption) error {
	ui := NewDispatcher(8)
	vm := NewLoginViewModel(ctx, DemoAuthenticator(delay), ui.Post)

	root := view.NewContext(nil)
	root.SetDataContext(vm)
	v, err := NewLoginView(root, widgets.Register(binding.NewRegistry()), logger, opts...)
	if err != nil {
		return err
	}
	defer v.Destroy()

	idle := func() bool { return !vm.Busy() }
	steps := []struct {
		name string
		act  func()
	}{
		{"initial", func() {}},
		{"type username", func() { v.UsernameInput.Edit("admin") }},
		{"type wrong password", func() { v.PasswordInput.Edit("hunter2") }},
		{"click login", func() { v.LoginButton.Click() }},
		{"fix password", func() { v.PasswordInput.Edit("password"); v.PasswordInput.EndEditing() }},
		{"click login", func() { v.LoginButton.Click() }},
		{"click clear", func() { v.ClearButton.Click() }},
	}
	for _, step := range steps {
		step.act()
		if vm.Busy() {
			Print(out, "  "+step.name+" (pending)", v)
			if err := ui.RunUntil(ctx, idle); err != nil {
				return err
			}
		}
		Print(out, step.name, v)
	}
	return nil
}

// Print writes the visible state of the form.
func Print(out io.Writer, step string, v *LoginView) {
	fmt.Fprintf(out, "%s:\n", step)
	fmt.Fprintf(out, "  username=%q password=%q\n", v.UsernameInput.Text(), v.PasswordInput.Display())
	fmt.Fprintf(out, "  status=%q color=%s spinner=%t\n", v.StatusLabel.Text(), converters.Hex(v.StatusLabel.Color()), v.Spinner.Active())
	fmt.Fprintf(out, "  login.interactable=%t\n", v.LoginButton.Interactable())
}
