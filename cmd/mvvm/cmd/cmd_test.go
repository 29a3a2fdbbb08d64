package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-drift/mvvm/cmd/mvvm/internal/config"
)

const validManifest = `version: v1.0.0
view: profile
bindings:
  - target: name
    property: text
    path: name
`

const invalidManifest = `version: v3.0.0
bindings:
  - target: name
    property: text
`

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testEnv(dir string, out io.Writer) *Env {
	return &Env{
		Config: &config.Resolved{Root: dir, AppName: "test", ManifestDir: dir},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Stdout: out,
		Stderr: io.Discard,
	}
}

func TestRun_HelpAndVersion(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, "Commands:"},
		{[]string{"--help"}, "check"},
		{[]string{"-v"}, "mvvm version " + Version},
		{[]string{"check", "--help"}, "mvvm check [manifest...]"},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		if err := run(tt.args, &out, io.Discard); err != nil {
			t.Errorf("run(%v) error = %v", tt.args, err)
		}
		if !strings.Contains(out.String(), tt.want) {
			t.Errorf("run(%v) output lacks %q:\n%s", tt.args, tt.want, out.String())
		}
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	var stderr bytes.Buffer
	if err := run([]string{"deploy"}, io.Discard, &stderr); err == nil {
		t.Error("run(deploy) = nil error")
	}
	if !strings.Contains(stderr.String(), `unknown command "deploy"`) {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeManifest(t, dir, "profile.yaml", validManifest)
	bad := writeManifest(t, dir, "broken.yml", invalidManifest)
	writeManifest(t, dir, config.FileName, "log:\n  level: info\n")

	var out bytes.Buffer
	if err := runCheck(testEnv(dir, &out), []string{good}); err != nil {
		t.Errorf("check(good) error = %v", err)
	}
	if !strings.Contains(out.String(), `ok   `+good+` (view "profile", 1 bindings)`) {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	err := runCheck(testEnv(dir, &out), nil)
	if err == nil || !strings.Contains(err.Error(), "1 of 2 manifests invalid") {
		t.Errorf("check(dir) error = %v", err)
	}
	for _, want := range []string{"FAIL " + bad, "not supported", "path is required"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output lacks %q:\n%s", want, out.String())
		}
	}
}

func TestCheck_NoManifests(t *testing.T) {
	dir := t.TempDir()
	if err := runCheck(testEnv(dir, io.Discard), nil); err == nil {
		t.Error("check on empty dir = nil error")
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, out *syncBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(out.String(), want) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q; output:\n%s", want, out.String())
}

func TestWatch_RevalidatesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "profile.yaml", validManifest)

	ctx, cancel := context.WithCancel(context.Background())
	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() { done <- watchManifests(ctx, testEnv(dir, out), []string{path}) }()

	waitFor(t, out, "ok   "+path)
	writeManifest(t, dir, "profile.yaml", invalidManifest)
	waitFor(t, out, "FAIL "+path)

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchManifests() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watchManifests did not stop")
	}
}

func TestParseDemoArgs(t *testing.T) {
	tests := []struct {
		args    []string
		want    demoOptions
		wantErr bool
	}{
		{nil, demoOptions{delay: 300 * time.Millisecond}, false},
		{[]string{"--delay", "1s"}, demoOptions{delay: time.Second}, false},
		{[]string{"--delay=0", "--manifest"}, demoOptions{manifest: true}, false},
		{[]string{"--delay"}, demoOptions{}, true},
		{[]string{"--delay", "soon"}, demoOptions{}, true},
		{[]string{"--fast"}, demoOptions{}, true},
	}
	for _, tt := range tests {
		got, err := parseDemoArgs(tt.args)
		if (err != nil) != tt.wantErr || (!tt.wantErr && got != tt.want) {
			t.Errorf("parseDemoArgs(%v) = %v, %v", tt.args, got, err)
		}
	}
}

func TestDemo(t *testing.T) {
	var out bytes.Buffer
	if err := runDemo(testEnv(t.TempDir(), &out), []string{"--delay", "1ms"}); err != nil {
		t.Fatalf("demo error = %v", err)
	}
	if !strings.Contains(out.String(), "Welcome, admin!") {
		t.Errorf("output = %s", out.String())
	}
}

func TestDemo_Manifest(t *testing.T) {
	var out bytes.Buffer
	if err := runDemo(testEnv(t.TempDir(), &out), []string{"--delay=1ms", "--manifest"}); err != nil {
		t.Fatalf("demo error = %v", err)
	}
	if !strings.Contains(out.String(), "Welcome, admin!") {
		t.Errorf("output = %s", out.String())
	}
}
