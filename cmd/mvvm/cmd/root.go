// Package cmd implements the mvvm CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (check, watch, demo).
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-drift/mvvm/cmd/mvvm/internal/config"
	"github.com/go-drift/mvvm/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(env *Env, args []string) error
}

// Env is what a command runs with.
type Env struct {
	Config *config.Resolved
	Logger *slog.Logger
	Stdout io.Writer
	Stderr io.Writer
}

var rootCmd = &Command{
	Name:  "mvvm",
	Short: "mvvm - data binding for Go views",
	Long: `mvvm validates declarative binding manifests and demonstrates the
binding engine with a headless login form.

Use "mvvm <command> --help" for more information about a command.`,
	Usage: "mvvm <command> [flags]",
}

// Commands registered with the CLI, in registration order.
var (
	commands    = make(map[string]*Command)
	subcommands []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	subcommands = append(subcommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printHelp(stdout)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(stdout)
		return nil
	case "-v", "--version", "version":
		fmt.Fprintf(stdout, "mvvm version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(stderr)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" {
			printCommandHelp(stdout, cmd)
			return nil
		}
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}
	logger := cfg.NewLogger(stderr)
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: cfg.LogLevel <= slog.LevelDebug})

	return cmd.Run(&Env{Config: cfg, Logger: logger, Stdout: stdout, Stderr: stderr}, cmdArgs)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, rootCmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range subcommands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MVVM_LOG_LEVEL       debug, info, warn or error (default: info)")
	fmt.Fprintln(w, "  MVVM_LOG_FORMAT      text or json (default: text)")
	fmt.Fprintln(w, "  MVVM_MANIFEST_DIR    Directory searched by check and watch")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  mvvm check login.yaml     Validate a manifest")
	fmt.Fprintln(w, "  mvvm watch login.yaml     Revalidate on every save")
	fmt.Fprintln(w, "  mvvm demo                 Run the headless login form")
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
}
