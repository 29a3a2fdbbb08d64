package bindset_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-drift/mvvm/pkg/binding"
	"github.com/go-drift/mvvm/pkg/bindset"
	"github.com/go-drift/mvvm/pkg/bindtest"
	"github.com/go-drift/mvvm/pkg/command"
	"github.com/go-drift/mvvm/pkg/errors"
	"github.com/go-drift/mvvm/pkg/view"
)

func newSet(t *testing.T, vm any) (*bindset.Set, *view.Base) {
	t.Helper()
	v := &view.Base{}
	return bindset.New(v, vm, bindtest.NewRegistry()), v
}

func TestSet_DisposedWithView(t *testing.T) {
	errs := bindtest.CaptureErrors(t)
	vm := bindtest.NewViewModel(map[string]any{"name": "Player", "password": ""})
	label := bindtest.NewWidget("label")
	field := bindtest.NewWidget("field")
	set, v := newSet(t, vm)

	if err := set.Bind(label).For("text").To("name").Build(); err != nil {
		t.Fatalf("Bind(label) error = %v", err)
	}
	if err := set.Bind(field).For("text").To("password").TwoWay().Build(); err != nil {
		t.Fatalf("Bind(field) error = %v", err)
	}
	if err := set.Build(); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if set.State() != bindset.Built || set.Len() != 2 {
		t.Fatalf("State() = %v, Len() = %d", set.State(), set.Len())
	}

	vm.Set("name", "Hero")
	field.Edit("text", "secret")
	if label.Get("text") != "Hero" || vm.Get("password") != "secret" {
		t.Fatalf("bindings not live: text=%v password=%v", label.Get("text"), vm.Get("password"))
	}

	v.Destroy()

	if set.State() != bindset.Disposed || set.Len() != 0 {
		t.Errorf("after destroy State() = %v, Len() = %d", set.State(), set.Len())
	}
	vm.Set("name", "Villain")
	if got := label.Get("text"); got != "Hero" {
		t.Errorf("text = %v, want Hero", got)
	}
	if vm.HandlerCount() != 0 || field.ChangeHandlers("text") != 0 {
		t.Error("subscriptions survived disposal")
	}
	errs.AssertNone(t)
}

func TestSet_BuildTwice(t *testing.T) {
	set, _ := newSet(t, bindtest.NewViewModel(nil))
	if err := set.Build(); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	err := set.Build()
	if !errors.Is(err, errors.ErrAlreadyBuilt) {
		t.Errorf("second Build() = %v, want ErrAlreadyBuilt", err)
	}
	var be *errors.BindError
	if !errors.As(err, &be) || be.Kind != errors.KindState {
		t.Errorf("second Build() kind = %v, want state", err)
	}
}

func TestSet_BuildAfterDispose(t *testing.T) {
	set, _ := newSet(t, bindtest.NewViewModel(nil))
	set.Dispose()
	if err := set.Build(); !errors.Is(err, errors.ErrSetClosed) {
		t.Errorf("Build() = %v, want ErrSetClosed", err)
	}
}

func TestSet_BindAfterBuildFails(t *testing.T) {
	vm := bindtest.NewViewModel(map[string]any{"name": "x"})
	set, _ := newSet(t, vm)
	if err := set.Build(); err != nil {
		t.Fatal(err)
	}
	err := set.Bind(bindtest.NewWidget("w")).For("text").To("name").Build()
	if !errors.Is(err, errors.ErrSetClosed) {
		t.Errorf("Bind after Build = %v, want ErrSetClosed", err)
	}
	if set.Len() != 0 {
		t.Errorf("Len() = %d, want 0", set.Len())
	}
}

func TestSet_ConfigErrorsCollected(t *testing.T) {
	vm := bindtest.NewViewModel(map[string]any{"name": "x"})
	set, v := newSet(t, vm)
	w := bindtest.NewWidget("w")

	if err := set.Bind(w).To("name").Build(); !errors.Is(err, errors.ErrMissingTargetProperty) {
		t.Errorf("missing For() = %v", err)
	}
	if err := set.Bind(w).For("text").Build(); !errors.Is(err, errors.ErrMissingSourcePath) {
		t.Errorf("missing To() = %v", err)
	}
	if err := set.Bind(w).For("text").To("name").Build(); err != nil {
		t.Errorf("valid binding = %v", err)
	}

	if !errors.Is(set.Err(), errors.ErrMissingTargetProperty) || !errors.Is(set.Err(), errors.ErrMissingSourcePath) {
		t.Errorf("Err() = %v, want both configuration errors", set.Err())
	}
	if err := set.Build(); err == nil {
		t.Fatal("Build() succeeded with failed bindings")
	}
	if set.State() != bindset.Open || v.HookCount() != 0 {
		t.Error("failed Build() changed state or hooked the view")
	}
	set.Dispose()
}

func TestSet_DisposeOrderAndIdempotence(t *testing.T) {
	vm := bindtest.NewViewModel(map[string]any{"a": 1, "b": 2})
	set, v := newSet(t, vm)
	wa, wb := bindtest.NewWidget("a"), bindtest.NewWidget("b")
	set.Bind(wa).For("value").To("a").Build()
	set.Bind(wb).For("value").To("b").Build()
	if err := set.Build(); err != nil {
		t.Fatal(err)
	}

	set.Dispose()
	set.Dispose()
	v.Destroy()

	if set.State() != bindset.Disposed {
		t.Errorf("State() = %v", set.State())
	}
	if v.HookCount() != 0 {
		t.Errorf("view hooks = %d, want 0", v.HookCount())
	}
	if vm.HandlerCount() != 0 {
		t.Errorf("source handlers = %d, want 0", vm.HandlerCount())
	}
	if err := set.Bind(wa).For("value").To("a").Build(); !errors.Is(err, errors.ErrSetClosed) {
		t.Errorf("Bind after Dispose = %v", err)
	}
}

func TestSet_ViewAlreadyDestroyed(t *testing.T) {
	vm := bindtest.NewViewModel(map[string]any{"name": "x"})
	set, v := newSet(t, vm)
	set.Bind(bindtest.NewWidget("w")).For("text").To("name").Build()
	v.Destroy()

	if err := set.Build(); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if set.State() != bindset.Disposed {
		t.Errorf("State() = %v, want disposed", set.State())
	}
}

func TestSet_NilView(t *testing.T) {
	set := bindset.New(nil, bindtest.NewViewModel(nil), bindtest.NewRegistry())
	if err := set.Build(); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	set.Dispose()
}

func TestBuilder_ModesAndConverter(t *testing.T) {
	vm := bindtest.NewViewModel(map[string]any{"hp": 3, "name": "a"})
	set, _ := newSet(t, vm)
	hp := bindtest.NewWidget("hp")
	name := bindtest.NewWidget("name")

	double := binding.ConverterFuncs{Forward: func(v, p any) (any, error) { return v.(int) * p.(int), nil }}
	if err := set.Bind(hp).For("value").To("hp").WithConverter(double, 2).Build(); err != nil {
		t.Fatal(err)
	}
	if err := set.Bind(name).For("text").To("name").OneTime().Build(); err != nil {
		t.Fatal(err)
	}

	vm.Set("hp", 5)
	vm.Set("name", "b")

	if got := hp.Get("value"); got != 10 {
		t.Errorf("value = %v, want 10", got)
	}
	if got := name.Get("text"); got != "a" {
		t.Errorf("OneTime text = %v, want a", got)
	}
}

func TestBuilder_ToProperty(t *testing.T) {
	var vm struct{ score int }
	acc := binding.Prop(func() int { return vm.score }, func(v int) { vm.score = v })
	set := bindset.New(nil, nil, bindtest.NewRegistry())
	w := bindtest.NewWidget("score")

	if err := set.Bind(w).For("value").ToProperty("score", acc).TwoWay().WithEqual(func(a, b any) bool { return a == b }).Build(); err != nil {
		t.Fatal(err)
	}
	w.Edit("value", 42)
	if vm.score != 42 {
		t.Errorf("score = %d, want 42", vm.score)
	}
}

func TestCommandBuilder(t *testing.T) {
	runs := 0
	var param any
	login := command.New(func(p any) { runs++; param = p }, nil)
	vm := bindtest.NewViewModel(map[string]any{"login": login, "name": "x"})
	set, _ := newSet(t, vm)
	button := bindtest.NewWidget("button")

	err := set.Bind(button).ToCommand("login").MirrorExecutability().WithParameter("p").Build()
	if err != nil {
		t.Fatalf("ToCommand() error = %v", err)
	}
	if err := set.Build(); err != nil {
		t.Fatal(err)
	}

	button.Fire("click")
	if runs != 1 || param != "p" {
		t.Errorf("runs = %d, param = %v", runs, param)
	}
	if button.Get("interactable") != true {
		t.Errorf("interactable = %v, want true", button.Get("interactable"))
	}

	set.Dispose()
	button.Fire("click")
	if runs != 1 {
		t.Error("command ran after Dispose")
	}
}

func TestCommandBuilder_Errors(t *testing.T) {
	vm := bindtest.NewViewModel(map[string]any{"name": "x"})
	set, _ := newSet(t, vm)
	button := bindtest.NewWidget("button")
	cmd := command.New(nil, nil)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"missing command", set.Bind(button).ToCommand("login").Build(), errors.ErrCommandNotFound},
		{"not a command", set.Bind(button).ToCommand("name").Build(), errors.ErrNotCommand},
		{"nil value", set.Bind(button).ToCommandValue(nil).Build(), errors.ErrCommandNotFound},
		{"unknown event", set.Bind(button).For("onSwipe").ToCommandValue(cmd).Build(), errors.ErrUnknownEvent},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, tt.err, tt.want)
		}
	}
	if set.Len() != 0 {
		t.Errorf("Len() = %d, want 0", set.Len())
	}
}

func TestSet_LogsWithID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	set := bindset.New(nil, bindtest.NewViewModel(nil), nil, bindset.WithLogger(logger), bindset.WithID("login-view"))

	if set.ID() != "login-view" {
		t.Errorf("ID() = %q", set.ID())
	}
	if err := set.Build(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "binding_set=login-view") {
		t.Errorf("log output %q lacks set id", buf.String())
	}
}

func TestSet_GeneratedIDsDiffer(t *testing.T) {
	a := bindset.New(nil, nil, nil)
	b := bindset.New(nil, nil, nil)
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("IDs %q and %q", a.ID(), b.ID())
	}
}

func TestState_String(t *testing.T) {
	if bindset.Built.String() != "built" || bindset.State(9).String() != "State(9)" {
		t.Error("State.String() mismatch")
	}
}
