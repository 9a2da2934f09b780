package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-pagegen/internal/assets"
)

// runInit writes the starter project into the target directory.
func runInit(args []string, env *Environment) error {
	flags, positional, err := parseInitFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printInitUsage(env.Stdout)
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: %v", ErrUnexpectedArgs, positional[1:])
	}

	dir := "."
	if len(positional) == 1 {
		dir = positional[0]
	}

	written, err := assets.Scaffold(dir, flags.force)
	for _, path := range written {
		fmt.Fprintf(env.Stdout, "Created %s\n", path)
	}
	if err != nil {
		return withHint(err, "")
	}

	fmt.Fprintf(env.Stdout, "Run 'pagegen' in %s to generate pages.\n", dir)
	return nil
}
