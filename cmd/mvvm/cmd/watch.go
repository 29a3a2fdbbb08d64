package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Revalidate manifests when they change",
		Long: `Validate manifests, then validate them again every time one is
written, until interrupted.

The containing directories are watched rather than the files themselves,
so editors that save by renaming a temporary file are handled.`,
		Usage: "mvvm watch [manifest...]",
		Run:   runWatch,
	})
}

func runWatch(env *Env, args []string) error {
	paths, err := manifestPaths(env.Config.ManifestDir, args)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchManifests(ctx, env, paths)
}

func watchManifests(ctx context.Context, env *Env, paths []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer func() {
		_ = w.Close()
	}()

	targets := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = p
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	for _, p := range paths {
		_ = checkManifest(env.Stdout, p)
	}
	env.Logger.Info("watching manifests", "count", len(paths))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			path, watched := targets[filepath.Clean(ev.Name)]
			if !watched || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			env.Logger.Debug("manifest changed", "path", path, "op", ev.Op.String())
			_ = checkManifest(env.Stdout, path)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			env.Logger.Warn("watch error", "error", err)
		}
	}
}
