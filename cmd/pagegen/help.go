package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pagegen [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Generate city and service pages (default)")
	fmt.Fprintln(w, "  init       Create a starter project")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pagegen help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pagegen [build] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate one HTML page per city and service record.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: ./pagegen.yaml if present)")
	fmt.Fprintln(w, "  -o, --output <dir>        Root directory for both output directories")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generation:")
	fmt.Fprintln(w, "      --only <pass>         Generate only city or service pages (repeatable)")
	fmt.Fprintln(w, "      --strict              Fail when a page still contains one of its tokens")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show resolved settings and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PAGEGEN_CONFIG, PAGEGEN_OUTPUT_DIR, PAGEGEN_ONLY, PAGEGEN_STRICT,")
	fmt.Fprintln(w, "  PAGEGEN_CITY_DATA, PAGEGEN_SERVICE_DATA,")
	fmt.Fprintln(w, "  PAGEGEN_CITY_TEMPLATE, PAGEGEN_SERVICE_TEMPLATE")
	fmt.Fprintln(w, "  Variables are also read from a .env file in the working directory.")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pagegen init [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write starter templates, data, and pagegen.yaml into dir (default: .).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -f, --force               Overwrite existing files")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: pagegen version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: pagegen help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
