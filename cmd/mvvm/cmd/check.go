package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-drift/mvvm/cmd/mvvm/internal/config"
	"github.com/go-drift/mvvm/pkg/manifest"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate binding manifests",
		Long: `Validate binding manifests.

Each manifest is parsed (unknown fields are errors) and validated: the
version must be a v1 semantic version, and every binding must be either a
property binding (target, property, path, optional mode) or a command
binding (target, command, optional event and mirror).

Without arguments, every *.yaml and *.yml file in the manifest directory
(MVVM_MANIFEST_DIR or manifests.dir in mvvm.yaml) is checked.`,
		Usage: "mvvm check [manifest...]",
		Run:   runCheck,
	})
}

func runCheck(env *Env, args []string) error {
	paths, err := manifestPaths(env.Config.ManifestDir, args)
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range paths {
		if err := checkManifest(env.Stdout, path); err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d manifests invalid", failed, len(paths))
	}
	return nil
}

// checkManifest loads and validates path, reporting the outcome on w.
func checkManifest(w io.Writer, path string) error {
	m, err := manifest.Load(path)
	if err == nil {
		err = m.Validate()
	}
	if err != nil {
		fmt.Fprintf(w, "FAIL %s\n", path)
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(w, "     %s\n", line)
		}
		return err
	}
	fmt.Fprintf(w, "ok   %s (view %q, %d bindings)\n", path, m.View, len(m.Bindings))
	return nil
}

func manifestPaths(dir string, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if filepath.Base(m) != config.FileName {
				paths = append(paths, m)
			}
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no manifests found in %s", dir)
	}
	sort.Strings(paths)
	return paths, nil
}
