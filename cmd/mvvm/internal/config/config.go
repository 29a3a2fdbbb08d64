// Package config resolves the mvvm CLI configuration: an optional mvvm.yaml
// at the project root, overridden by MVVM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the optional configuration file looked up at the project root.
const FileName = "mvvm.yaml"

// Config represents the optional mvvm.yaml configuration.
type Config struct {
	App       AppConfig      `yaml:"app"`
	Log       LogConfig      `yaml:"log"`
	Manifests ManifestConfig `yaml:"manifests"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty" env:"MVVM_APP_NAME"`
}

// LogConfig controls CLI logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level,omitempty" env:"MVVM_LOG_LEVEL"`
	// Format is text or json.
	Format string `yaml:"format,omitempty" env:"MVVM_LOG_FORMAT"`
}

// ManifestConfig locates binding manifests.
type ManifestConfig struct {
	Dir string `yaml:"dir,omitempty" env:"MVVM_MANIFEST_DIR"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root        string
	ModulePath  string
	AppName     string
	LogLevel    slog.Level
	LogFormat   string
	ManifestDir string
}

// LoadOptional reads mvvm.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads mvvm.yaml (if present), applies environment overrides and
// resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// A go.mod is optional: manifests can be checked anywhere.
	modPath, _ := modulePath(dir)

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modPath, dir)
	}

	level, err := parseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	switch format {
	case "":
		format = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be text or json", cfg.Log.Format)
	}

	manifestDir := strings.TrimSpace(cfg.Manifests.Dir)
	if manifestDir == "" {
		manifestDir = "."
	}
	if !filepath.IsAbs(manifestDir) {
		manifestDir = filepath.Join(dir, manifestDir)
	}

	return &Resolved{
		Root:        dir,
		ModulePath:  modPath,
		AppName:     appName,
		LogLevel:    level,
		LogFormat:   format,
		ManifestDir: manifestDir,
	}, nil
}

// NewLogger builds the CLI logger described by r.
func (r *Resolved) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: r.LogLevel}
	var h slog.Handler
	if r.LogFormat == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("app", r.AppName)
}

// FindProjectRoot walks up from the current directory to find go.mod. When
// there is none, the current directory is the root.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		modName, _, ok := module.SplitPathVersion(modulePath)
		if ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "mvvm_app"
	}
	return base
}
