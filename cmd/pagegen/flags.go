package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common commonFlags
	output string
	only   []string
	strict bool
}

// initFlags holds flags for the init command.
type initFlags struct {
	force bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show resolved settings and timing")
}

// addBuildFlags adds generation flags to a FlagSet.
func addBuildFlags(fs *flag.FlagSet, f *buildFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "root directory for both output directories")
	fs.StringSliceVar(&f.only, "only", nil, "generate only these passes: city, service")
	fs.BoolVar(&f.strict, "strict", false, "fail when a page still contains one of its tokens")
}

// parseBuildFlags parses build command arguments.
// Returns flag.ErrHelp when -h or --help is given.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	f := &buildFlags{}
	addCommonFlags(fs, &f.common)
	addBuildFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseInitFlags parses init command arguments.
func parseInitFlags(args []string) (*initFlags, []string, error) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	f := &initFlags{}
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite existing files")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
