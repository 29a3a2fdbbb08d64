package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/go-drift/mvvm/showcase/login"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Run the headless login form",
		Long: `Run the login form without a renderer.

A scripted user types credentials, logs in with a wrong and then the right
password, and clears the form. The state of every widget is printed after
each step, showing the login button being disabled while the asynchronous
login is pending.

Flags:
  --delay DURATION   Simulated authentication latency (default: 300ms)
  --manifest         Bind the form from its embedded YAML manifest`,
		Usage: "mvvm demo [--delay DURATION] [--manifest]",
		Run:   runDemo,
	})
}

func runDemo(env *Env, args []string) error {
	opts, err := parseDemoArgs(args)
	if err != nil {
		return err
	}
	var viewOpts []login.ViewOption
	if opts.manifest {
		m, err := login.ParseManifest()
		if err != nil {
			return fmt.Errorf("embedded manifest: %w", err)
		}
		env.Logger.Debug("binding from manifest", "view", m.View, "bindings", len(m.Bindings))
		viewOpts = append(viewOpts, login.WithManifest(m))
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return login.Run(ctx, env.Stdout, env.Logger, opts.delay, viewOpts...)
}

type demoOptions struct {
	delay    time.Duration
	manifest bool
}

func parseDemoArgs(args []string) (demoOptions, error) {
	opts := demoOptions{delay: 300 * time.Millisecond}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		var value string
		switch {
		case arg == "--manifest":
			opts.manifest = true
			continue
		case arg == "--delay":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--delay requires a duration")
			}
			value = args[i+1]
			i++
		case strings.HasPrefix(arg, "--delay="):
			value = strings.TrimPrefix(arg, "--delay=")
		default:
			return opts, fmt.Errorf("unknown argument %q", arg)
		}
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return opts, fmt.Errorf("invalid --delay %q", value)
		}
		opts.delay = d
	}
	return opts, nil
}
