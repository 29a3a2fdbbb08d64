package binding_test

import (
	"testing"

	"github.com/go-drift/mvvm/pkg/binding"
	"github.com/go-drift/mvvm/pkg/bindtest"
	"github.com/go-drift/mvvm/pkg/command"
	"github.com/go-drift/mvvm/pkg/errors"
)

func TestCommandBinding_ExecutesOnEvent(t *testing.T) {
	button := bindtest.NewWidget("button")
	var got []any
	cmd := command.New(func(p any) { got = append(got, p) }, nil)

	cb, err := binding.NewCommandBinding(bindtest.NewRegistry(), binding.CommandOptions{
		Target: button, Event: "onClick", Command: cmd, Parameter: "login",
	})
	if err != nil {
		t.Fatalf("NewCommandBinding() error = %v", err)
	}
	if cb.Event().Name != "click" {
		t.Errorf("Event().Name = %q, want click", cb.Event().Name)
	}

	button.Fire("click")
	button.Fire("click")
	if len(got) != 2 || got[0] != "login" {
		t.Fatalf("executions = %v, want two with parameter", got)
	}

	cb.Dispose()
	cb.Dispose()
	button.Fire("click")
	if len(got) != 2 {
		t.Errorf("disposed binding executed the command")
	}
	if button.EventHandlers("click") != 0 {
		t.Errorf("EventHandlers(click) = %d, want 0", button.EventHandlers("click"))
	}
}

func TestCommandBinding_RespectsCanExecute(t *testing.T) {
	button := bindtest.NewWidget("button")
	allowed := false
	runs := 0
	cmd := command.New(func(any) { runs++ }, func(any) bool { return allowed })
	_, err := binding.NewCommandBinding(bindtest.NewRegistry(), binding.CommandOptions{
		Target: button, Event: "onClick", Command: cmd,
	})
	if err != nil {
		t.Fatalf("NewCommandBinding() error = %v", err)
	}

	button.Fire("click")
	allowed = true
	button.Fire("click")

	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
}

func TestCommandBinding_MirrorsExecutability(t *testing.T) {
	button := bindtest.NewWidget("button")
	allowed := false
	cmd := command.New(nil, func(any) bool { return allowed })

	cb, err := binding.NewCommandBinding(bindtest.NewRegistry(), binding.CommandOptions{
		Target: button, Event: "onClick", Command: cmd, MirrorExecutability: true,
	})
	if err != nil {
		t.Fatalf("NewCommandBinding() error = %v", err)
	}
	if got := button.Get(binding.DefaultMirrorProperty); got != false {
		t.Fatalf("interactable = %v, want false", got)
	}

	allowed = true
	cmd.RaiseCanExecuteChanged()
	if got := button.Get("interactable"); got != true {
		t.Errorf("interactable = %v, want true", got)
	}

	// Raising without a change writes nothing.
	writes := button.Writes("interactable")
	cmd.RaiseCanExecuteChanged()
	if button.Writes("interactable") != writes {
		t.Error("unchanged executability was written again")
	}

	cb.Dispose()
	if cmd.HandlerCount() != 0 {
		t.Errorf("command handlers = %d, want 0", cmd.HandlerCount())
	}
	allowed = false
	cmd.RaiseCanExecuteChanged()
	if got := button.Get("interactable"); got != true {
		t.Errorf("disposed binding still mirrors: interactable = %v", got)
	}
}

func TestCommandBinding_MirrorCustomProperty(t *testing.T) {
	button := bindtest.NewWidget("button")
	cmd := command.New(nil, func(any) bool { return false })
	_, err := binding.NewCommandBinding(bindtest.NewRegistry(), binding.CommandOptions{
		Target: button, Event: "onClick", Command: cmd,
		MirrorExecutability: true, MirrorProperty: "enabled",
	})
	if err != nil {
		t.Fatalf("NewCommandBinding() error = %v", err)
	}
	if got := button.Get("enabled"); got != false {
		t.Errorf("enabled = %v, want false", got)
	}
	if button.Writes("interactable") != 0 {
		t.Error("default mirror property was written")
	}
}

func TestCommandBinding_AsyncDisablesWhileRunning(t *testing.T) {
	errs := bindtest.CaptureErrors(t)
	button := bindtest.NewWidget("button")
	var finish func()
	runs := 0
	cmd := command.NewAsync(func(_ any, done func()) {
		runs++
		finish = done
	}, nil)

	_, err := binding.NewCommandBinding(bindtest.NewRegistry(), binding.CommandOptions{
		Target: button, Event: "onClick", Command: cmd, MirrorExecutability: true,
	})
	if err != nil {
		t.Fatalf("NewCommandBinding() error = %v", err)
	}
	if got := button.Get("interactable"); got != true {
		t.Fatalf("interactable = %v, want true", got)
	}

	button.Fire("click")
	if got := button.Get("interactable"); got != false {
		t.Errorf("while running interactable = %v, want false", got)
	}
	button.Fire("click")
	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}

	finish()
	if got := button.Get("interactable"); got != true {
		t.Errorf("after completion interactable = %v, want true", got)
	}
	finish()
	if got := button.Writes("interactable"); got != 3 {
		t.Errorf("Writes(interactable) = %d, want 3", got)
	}
	errs.AssertNone(t)
}

func TestCommandBinding_ConfigErrors(t *testing.T) {
	button := bindtest.NewWidget("button")
	cmd := command.New(nil, nil)
	var nilCmd *command.RelayCommand
	tests := []struct {
		name string
		opts binding.CommandOptions
		want error
	}{
		{"nil command", binding.CommandOptions{Target: button, Event: "onClick"}, errors.ErrCommandNotFound},
		{"typed nil command", binding.CommandOptions{Target: button, Event: "onClick", Command: nilCmd}, errors.ErrCommandNotFound},
		{"unknown event", binding.CommandOptions{Target: button, Event: "onSwipe", Command: cmd}, errors.ErrUnknownEvent},
		{"foreign widget", binding.CommandOptions{Target: "button", Event: "onClick", Command: cmd}, errors.ErrUnknownEvent},
		{"unreachable mirror", binding.CommandOptions{
			Target: button, Event: "onClick", Command: cmd,
			MirrorExecutability: true, MirrorProperty: "glow",
		}, errors.ErrUnresolvedPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := binding.NewCommandBinding(bindtest.NewRegistry(), tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewCommandBinding() error = %v, want %v", err, tt.want)
			}
		})
	}
	if button.EventHandlers("click") != 0 {
		t.Error("failed constructions left event subscriptions behind")
	}
}

func TestCommandBinding_DisposeDuringExecution(t *testing.T) {
	button := bindtest.NewWidget("button")
	var cb *binding.CommandBinding
	runs := 0
	cmd := command.New(func(any) {
		runs++
		cb.Dispose()
	}, nil)
	cb, err := binding.NewCommandBinding(bindtest.NewRegistry(), binding.CommandOptions{
		Target: button, Event: "onClick", Command: cmd,
	})
	if err != nil {
		t.Fatalf("NewCommandBinding() error = %v", err)
	}

	button.Fire("click")
	button.Fire("click")

	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
}
