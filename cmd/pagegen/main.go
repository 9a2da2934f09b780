package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand is returned for a first argument that is neither a
// command nor a flag.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	env := DefaultEnv()

	if err := loadDotEnv(dotEnvFile); err != nil {
		fmt.Fprintf(env.Stderr, "warning: %v\n", err)
	}

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if wantsVerbose(os.Args) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, env))
}

// runMain dispatches a command line and returns the process exit code.
// args includes the program name. A bare invocation, or one starting with a
// flag, runs the build command.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := "build", args
	if len(args) > 0 && isCommand(args[0]) {
		cmd, rest = args[0], args[1:]
	} else if len(args) > 0 && !looksLikeFlag(args[0]) {
		err := fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	var err error
	switch cmd {
	case "build":
		err = runBuild(ctx, rest, env)
	case "init":
		err = runInit(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "pagegen %s\n", Version)
	case "help":
		err = runHelp(rest, env)
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

var commands = []string{"build", "init", "version", "help"}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	return slices.Contains(commands, arg)
}

func looksLikeFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

// wantsVerbose scans raw arguments for the verbose flag before parsing.
func wantsVerbose(args []string) bool {
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			return true
		}
		if a == "--" {
			break
		}
	}
	return false
}
