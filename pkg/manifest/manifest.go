// Package manifest loads declarative binding manifests: YAML documents that
// list the bindings of a view so they can be checked and applied without
// writing builder code.
//
//	version: v1.0.0
//	view: login
//	bindings:
//	  - target: username
//	    property: text
//	    path: username
//	    mode: two-way
//	  - target: login
//	    event: onClick
//	    command: login
//	    mirror: true
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/mvvm/pkg/binding"
)

// SupportedMajor is the manifest major version this package understands.
const SupportedMajor = "v1"

// Manifest describes the bindings of one view.
type Manifest struct {
	Version  string  `yaml:"version"`
	View     string  `yaml:"view"`
	Bindings []Entry `yaml:"bindings"`
}

// Entry is either a property binding (Property and Path set) or a command
// binding (Command set, Event defaulting to onClick).
type Entry struct {
	Target    string `yaml:"target"`
	Property  string `yaml:"property,omitempty"`
	Path      string `yaml:"path,omitempty"`
	Mode      string `yaml:"mode,omitempty"`
	Converter string `yaml:"converter,omitempty"`
	Parameter any    `yaml:"parameter,omitempty"`

	Event          string `yaml:"event,omitempty"`
	Command        string `yaml:"command,omitempty"`
	Mirror         bool   `yaml:"mirror,omitempty"`
	MirrorProperty string `yaml:"mirrorProperty,omitempty"`
}

// IsCommand reports whether e declares a command binding.
func (e Entry) IsCommand() bool {
	return e.Command != ""
}

// BindingMode parses Mode. An empty mode is binding.OneWay.
func (e Entry) BindingMode() (binding.Mode, error) {
	if strings.TrimSpace(e.Mode) == "" {
		return binding.OneWay, nil
	}
	return binding.ParseMode(e.Mode)
}

// Parse decodes a manifest. Unknown fields are rejected.
func Parse(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest is empty")
		}
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

// ParseBytes is Parse for in-memory data.
func ParseBytes(data []byte) (*Manifest, error) {
	return Parse(bytes.NewReader(data))
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Validate reports every problem in m, joined, or nil.
func (m *Manifest) Validate() error {
	var errs []error

	version := m.Version
	if version != "" && !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	switch {
	case m.Version == "":
		errs = append(errs, fmt.Errorf("version is required"))
	case !semver.IsValid(version):
		errs = append(errs, fmt.Errorf("version %q is not a semantic version", m.Version))
	case semver.Major(version) != SupportedMajor:
		errs = append(errs, fmt.Errorf("version %q is not supported, want %s.x", m.Version, SupportedMajor))
	}

	for i, e := range m.Bindings {
		if err := e.validate(); err != nil {
			errs = append(errs, fmt.Errorf("bindings[%d] (%s): %w", i, e.Target, err))
		}
	}
	return errors.Join(errs...)
}

func (e Entry) validate() error {
	var errs []error
	if e.Target == "" {
		errs = append(errs, fmt.Errorf("target is required"))
	}
	if e.IsCommand() {
		if e.Property != "" || e.Path != "" {
			errs = append(errs, fmt.Errorf("command bindings take no property or path"))
		}
		if e.MirrorProperty != "" && !e.Mirror {
			errs = append(errs, fmt.Errorf("mirrorProperty requires mirror"))
		}
		return errors.Join(errs...)
	}

	if e.Event != "" || e.Mirror {
		errs = append(errs, fmt.Errorf("event and mirror need a command"))
	}
	if e.Property == "" {
		errs = append(errs, fmt.Errorf("property is required"))
	}
	if e.Path == "" {
		errs = append(errs, fmt.Errorf("path is required"))
	}
	if _, err := e.BindingMode(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
