package login

import (
	_ "embed"

	"github.com/go-drift/mvvm/pkg/manifest"
)

// Manifest is the declarative form of the bindings LoginView builds in code.
//
//go:embed login.yaml
var Manifest []byte

// ParseManifest decodes and validates Manifest.
func ParseManifest() (*manifest.Manifest, error) {
	m, err := manifest.ParseBytes(Manifest)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
