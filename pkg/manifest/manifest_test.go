package manifest

import (
	"image/color"
	"strings"
	"testing"

	"github.com/go-drift/mvvm/pkg/binding"
	"github.com/go-drift/mvvm/pkg/bindset"
	"github.com/go-drift/mvvm/pkg/bindtest"
	"github.com/go-drift/mvvm/pkg/command"
	"github.com/go-drift/mvvm/pkg/converters"
	"github.com/go-drift/mvvm/pkg/widgets"
)

func TestLoad(t *testing.T) {
	m, err := Load("testdata/login.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.View != "login" || len(m.Bindings) != 4 {
		t.Fatalf("got view %q with %d bindings", m.View, len(m.Bindings))
	}
	if !m.Bindings[3].IsCommand() || !m.Bindings[3].Mirror {
		t.Errorf("bindings[3] = %+v, want mirrored command", m.Bindings[3])
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load("testdata/nope.yaml"); err == nil {
		t.Error("Load() of missing file should fail")
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := ParseBytes([]byte("version: v1.0.0\nbindings:\n  - target: a\n    propety: text\n"))
	if err == nil || !strings.Contains(err.Error(), "propety") {
		t.Errorf("Parse() error = %v, want unknown field error", err)
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := ParseBytes(nil); err == nil {
		t.Error("Parse(empty) should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       Manifest
		wantErr []string
	}{
		{"ok without v prefix", Manifest{Version: "1.4.0"}, nil},
		{"missing version", Manifest{}, []string{"version is required"}},
		{"bad version", Manifest{Version: "one"}, []string{"not a semantic version"}},
		{"unsupported major", Manifest{Version: "v2.0.0"}, []string{"not supported"}},
		{
			"property binding problems",
			Manifest{Version: "v1.0.0", Bindings: []Entry{{Mode: "sideways"}}},
			[]string{"target is required", "property is required", "path is required", "unknown binding mode"},
		},
		{
			"command binding problems",
			Manifest{Version: "v1.0.0", Bindings: []Entry{{Target: "b", Command: "go", Path: "x", MirrorProperty: "glow"}}},
			[]string{"no property or path", "mirrorProperty requires mirror"},
		},
		{
			"event without command",
			Manifest{Version: "v1.0.0", Bindings: []Entry{{Target: "b", Property: "text", Path: "x", Event: "onClick"}}},
			[]string{"need a command"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want errors")
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("Validate() = %v, missing %q", err, want)
				}
			}
		})
	}
}

func TestApply(t *testing.T) {
	errs := bindtest.CaptureErrors(t)
	m, err := Load("testdata/login.yaml")
	if err != nil {
		t.Fatal(err)
	}

	runs := 0
	vm := bindtest.NewViewModel(map[string]any{
		"username":     "",
		"message":      "Welcome",
		"messageColor": "teal",
		"login":        command.New(func(any) { runs++ }, nil),
	})
	username := widgets.NewTextInput("username")
	message := widgets.NewLabel("message")
	login := widgets.NewButton("login")
	set := bindset.New(nil, vm, widgets.Register(binding.NewRegistry()))

	err = m.Apply(set, map[string]any{
		"username": username,
		"message":  message,
		"login":    login,
	}, converters.Named())
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if err := set.Build(); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if set.Len() != 4 {
		t.Errorf("Len() = %d, want 4", set.Len())
	}

	username.Edit("ada")
	login.Click()

	if vm.Get("username") != "ada" {
		t.Errorf("username = %v, want ada", vm.Get("username"))
	}
	if message.Text() != "Welcome" {
		t.Errorf("message = %q", message.Text())
	}
	if message.Color() != (color.RGBA{G: 0x80, B: 0x80, A: 0xff}) {
		t.Errorf("color = %v", message.Color())
	}
	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
	errs.AssertNone(t)
}

func TestApply_CollectsFailures(t *testing.T) {
	m := &Manifest{Version: "v1.0.0", Bindings: []Entry{
		{Target: "ghost", Property: "text", Path: "name"},
		{Target: "label", Property: "text", Path: "name", Converter: "shout"},
		{Target: "label", Command: "missing"},
		{Target: "label", Property: "text", Path: "name"},
	}}
	vm := bindtest.NewViewModel(map[string]any{"name": "x"})
	set := bindset.New(nil, vm, bindtest.NewRegistry())
	label := bindtest.NewWidget("label")

	err := m.Apply(set, map[string]any{"label": label}, converters.Named())
	if err == nil {
		t.Fatal("Apply() = nil, want errors")
	}
	for _, want := range []string{"unknown target", "unknown converter", "command not found"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Apply() = %v, missing %q", err, want)
		}
	}
	if set.Len() != 1 {
		t.Errorf("Len() = %d, want the one valid binding", set.Len())
	}
	for _, want := range []string{"unknown target", "unknown converter", "command not found"} {
		if !strings.Contains(set.Err().Error(), want) {
			t.Errorf("Err() = %v, missing %q", set.Err(), want)
		}
	}
	if err := set.Build(); err == nil {
		t.Error("Build() should refuse a set with failed bindings")
	}
}

func TestApply_InvalidManifest(t *testing.T) {
	m := &Manifest{Version: "v9.0.0"}
	set := bindset.New(nil, nil, nil)
	if err := m.Apply(set, nil, nil); err == nil {
		t.Error("Apply() of invalid manifest should fail")
	}
	if set.Err() == nil {
		t.Error("Err() = nil, want the validation error recorded on the set")
	}
	if err := set.Build(); err == nil {
		t.Error("Build() after an invalid manifest should fail")
	}
}
