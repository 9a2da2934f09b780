package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	pagegen "github.com/alnah/go-pagegen"
	"github.com/alnah/go-pagegen/internal/assets"
	"github.com/alnah/go-pagegen/internal/config"
	"github.com/alnah/go-pagegen/internal/datasource"
	"github.com/alnah/go-pagegen/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidFlags   = errors.New("invalid flags")
	ErrUnexpectedArgs = errors.New("unexpected arguments")
)

// buildParams is the fully resolved input of one build run.
type buildParams struct {
	cfg        *config.Config
	configPath string // empty when running on defaults
	passes     []pagegen.Pass
}

// runBuild generates every page the resolved configuration describes.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printBuildUsage(env.Stdout)
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(positional, " "))
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	params, err := resolveBuildParams(flags, envCfg)
	if err != nil {
		return withHint(err, configName(flags, envCfg))
	}

	if flags.common.verbose {
		printSettings(env.Stderr, params)
	}

	gen, err := newGenerator(params, flags, env)
	if err != nil {
		return withHint(err, "")
	}

	start := env.Now()
	result, err := gen.Run(ctx, params.passes...)
	if flags.common.verbose && result != nil {
		fmt.Fprintf(env.Stderr, "Wrote %d city and %d service pages in %v\n",
			len(result.Cities), len(result.Services), env.Now().Sub(start).Round(time.Millisecond))
	}
	if err != nil {
		return withHint(err, "")
	}
	return nil
}

// resolveBuildParams merges defaults, config file, environment, and flags.
// Precedence: CLI flags > env vars > config file > defaults.
func resolveBuildParams(flags *buildFlags, envCfg *envConfig) (*buildParams, error) {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if name := configName(flags, envCfg); name != "" {
		cfg, err = config.LoadConfig(name)
		path = name
	} else {
		cfg, path, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	// Output root applies after the file so it relocates configured dirs too
	root := flags.output
	if root == "" {
		root = envCfg.OutputDir
	}
	cfg.SetOutputRoot(root)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	only := flags.only
	if len(only) == 0 {
		only = envCfg.Only
	}
	passes := make([]pagegen.Pass, 0, len(only))
	for _, name := range only {
		p, err := pagegen.ParsePass(name)
		if err != nil {
			return nil, err
		}
		passes = append(passes, p)
	}

	return &buildParams{cfg: cfg, configPath: path, passes: passes}, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.strict {
		cfg.Build.Strict = true
	}
}

// configName returns the explicitly requested config, flag first.
func configName(flags *buildFlags, envCfg *envConfig) string {
	if flags.common.config != "" {
		return flags.common.config
	}
	return envCfg.ConfigPath
}

// newGenerator wires the filesystem data source, template loader, and sink.
func newGenerator(params *buildParams, flags *buildFlags, env *Environment) (*pagegen.Generator, error) {
	cfg := params.cfg

	templates, err := assets.NewFilesystemLoader("")
	if err != nil {
		return nil, err
	}

	var progress io.Writer = env.Stdout
	if flags.common.quiet {
		progress = io.Discard
	}

	opts := []pagegen.Option{
		pagegen.WithPaths(toPaths(cfg)),
		pagegen.WithLayout(toLayout(cfg.Layout)),
		pagegen.WithStrict(cfg.Build.Strict),
		pagegen.WithProgress(progress),
	}
	if len(cfg.Markdown.Fields) > 0 {
		md, err := pagegen.NewMarkdownFields(cfg.Markdown.Fields, cfg.Markdown.Unsafe)
		if err != nil {
			return nil, err
		}
		opts = append(opts, pagegen.WithFieldTransformer(md))
	}

	return pagegen.NewGenerator(datasource.NewFileSource(""), templates, pagegen.FileSink{}, opts...), nil
}

func toPaths(cfg *config.Config) pagegen.Paths {
	return pagegen.Paths{
		CityData:         cfg.Data.Cities,
		ServiceData:      cfg.Data.Services,
		CityTemplate:     cfg.Templates.City,
		ServiceTemplate:  cfg.Templates.Service,
		CityOutputDir:    cfg.Output.CityDir,
		ServiceOutputDir: cfg.Output.ServiceDir,
	}
}

func toLayout(l config.LayoutConfig) pagegen.Layout {
	return pagegen.Layout{
		MenuIndent:     l.MenuIndent,
		BenefitsIndent: l.BenefitsIndent,
		UsesIndent:     l.UsesIndent,
		SpecsIndent:    l.SpecsIndent,
		SidebarIndent:  l.SidebarIndent,
		FooterIndent:   l.FooterIndent,
		RelatedIndent:  l.RelatedIndent,
	}
}

// printSettings reports the resolved run configuration for --verbose.
func printSettings(w io.Writer, params *buildParams) {
	cfg := params.cfg
	source := params.configPath
	if source == "" {
		source = "(defaults)"
	}
	fmt.Fprintf(w, "Config: %s\n", source)
	fmt.Fprintf(w, "City pages: %s + %s -> %s\n", cfg.Data.Cities, cfg.Templates.City, cfg.Output.CityDir)
	fmt.Fprintf(w, "Service pages: %s + %s -> %s\n", cfg.Data.Services, cfg.Templates.Service, cfg.Output.ServiceDir)
	if len(cfg.Markdown.Fields) > 0 {
		fmt.Fprintf(w, "Markdown fields: %s\n", strings.Join(cfg.Markdown.Fields, ", "))
	}
	if cfg.Build.Strict {
		fmt.Fprintln(w, "Strict: on")
	}
}

// hintedError appends an actionable hint to an error message while keeping
// the original chain for errors.Is.
type hintedError struct {
	err  error
	hint string
}

func (e *hintedError) Error() string { return e.err.Error() + e.hint }
func (e *hintedError) Unwrap() error { return e.err }

// withHint attaches the hint matching err, if any. configName is the
// explicitly requested config, used to suggest where to create it.
func withHint(err error, configName string) error {
	var hint string
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		var searched []string
		if configName != "" && !strings.ContainsAny(configName, `/\`) {
			searched = config.SearchPaths(configName)
		}
		hint = hints.ForConfigNotFound(searched)
	case errors.Is(err, pagegen.ErrMissingInputFile):
		wd, _ := os.Getwd()
		hint = hints.ForMissingInput(wd)
	case errors.Is(err, pagegen.ErrMalformedRecord):
		hint = hints.ForMalformedRecord()
	case errors.Is(err, pagegen.ErrUnresolvedPlaceholder):
		hint = hints.ForUnresolved()
	case errors.Is(err, pagegen.ErrWriteFailure):
		hint = hints.ForWriteFailure()
	case errors.Is(err, assets.ErrFileExists):
		hint = hints.ForFileExists()
	}
	if hint == "" {
		return err
	}
	return &hintedError{err: err, hint: hint}
}
