package pagegen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
)

// DataSource returns the ordered records stored under name.
type DataSource interface {
	Records(name string) ([]Record, error)
}

// TemplateLoader returns the text of the template stored under name.
type TemplateLoader interface {
	LoadTemplate(name string) (string, error)
}

// Pass selects a page type to generate.
type Pass string

// Generation passes, in the order they always run.
const (
	PassCity    Pass = "city"
	PassService Pass = "service"
)

// ParsePass converts a pass name ("city", "service") to a Pass.
func ParsePass(s string) (Pass, error) {
	switch p := Pass(strings.ToLower(strings.TrimSpace(s))); p {
	case PassCity, PassService:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q (must be city or service)", ErrInvalidPass, s)
	}
}

// Paths names the inputs and output directories of both passes.
type Paths struct {
	CityData         string
	ServiceData      string
	CityTemplate     string
	ServiceTemplate  string
	CityOutputDir    string
	ServiceOutputDir string
}

// Default input names and output directories.
const (
	DefaultCityData         = "data.json"
	DefaultServiceData      = "data_services.json"
	DefaultCityTemplate     = "template_city.html"
	DefaultServiceTemplate  = "template_service.html"
	DefaultCityOutputDir    = "service-areas"
	DefaultServiceOutputDir = "services"
)

// DefaultPaths returns the conventional project layout.
func DefaultPaths() Paths {
	return Paths{
		CityData:         DefaultCityData,
		ServiceData:      DefaultServiceData,
		CityTemplate:     DefaultCityTemplate,
		ServiceTemplate:  DefaultServiceTemplate,
		CityOutputDir:    DefaultCityOutputDir,
		ServiceOutputDir: DefaultServiceOutputDir,
	}
}

// DoneMessage closes the progress output of a successful run.
const DoneMessage = "Done! All pages created successfully."

// Result lists the pages written by a run, in write order.
type Result struct {
	Cities   []string
	Services []string
}

// Total returns the number of pages written.
func (r *Result) Total() int {
	return len(r.Cities) + len(r.Services)
}

// Generator runs the city and service passes.
type Generator struct {
	source    DataSource
	templates TemplateLoader
	sink      Sink
	paths     Paths
	layout    Layout
	transform FieldTransformer
	strict    bool
	progress  io.Writer
}

// Option configures a Generator.
type Option func(*Generator)

// WithPaths sets input names and output directories.
func WithPaths(p Paths) Option {
	return func(g *Generator) { g.paths = p }
}

// WithLayout sets the fragment indentation widths for service pages.
func WithLayout(l Layout) Option {
	return func(g *Generator) { g.layout = l }
}

// WithFieldTransformer rewrites scalar fields (e.g. Markdown) before substitution.
func WithFieldTransformer(t FieldTransformer) Option {
	return func(g *Generator) { g.transform = t }
}

// WithStrict fails a page whose output still contains one of its own tokens.
func WithStrict(strict bool) Option {
	return func(g *Generator) { g.strict = strict }
}

// WithProgress sets where "Created ... page" lines are written.
func WithProgress(w io.Writer) Option {
	return func(g *Generator) { g.progress = w }
}

// NewGenerator creates a Generator with DefaultPaths and DefaultLayout.
func NewGenerator(source DataSource, templates TemplateLoader, sink Sink, opts ...Option) *Generator {
	g := &Generator{
		source:    source,
		templates: templates,
		sink:      sink,
		paths:     DefaultPaths(),
		layout:    DefaultLayout(),
		progress:  io.Discard,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.progress == nil {
		g.progress = io.Discard
	}
	return g
}

// Run generates the selected passes, all of them when none are given.
// City pages are always generated before service pages. The first error
// aborts the run; pages already written stay on disk. A completed run ends
// with DoneMessage on the progress writer.
func (g *Generator) Run(ctx context.Context, passes ...Pass) (*Result, error) {
	if err := g.layout.Validate(); err != nil {
		return nil, err
	}

	want := map[Pass]bool{PassCity: len(passes) == 0, PassService: len(passes) == 0}
	for _, p := range passes {
		parsed, err := ParsePass(string(p))
		if err != nil {
			return nil, err
		}
		want[parsed] = true
	}

	result := &Result{}
	if want[PassCity] {
		written, err := g.BuildCities(ctx)
		result.Cities = written
		if err != nil {
			return result, err
		}
	}
	if want[PassService] {
		written, err := g.BuildServices(ctx)
		result.Services = written
		if err != nil {
			return result, err
		}
	}
	fmt.Fprintln(g.progress, DoneMessage)
	return result, nil
}

// BuildCities writes one page per city record and returns the written paths.
func (g *Generator) BuildCities(ctx context.Context) ([]string, error) {
	raw, tmpl, err := g.loadInputs(g.paths.CityData, g.paths.CityTemplate)
	if err != nil {
		return nil, err
	}
	if err := g.ensureDir(g.paths.CityOutputDir); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(raw))
	for i, rec := range raw {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		city, err := DecodeCity(i, rec)
		if err != nil {
			return written, err
		}
		page, err := AssembleCity(tmpl, city, g.transform)
		if err != nil {
			return written, err
		}

		path, err := g.emit("city", g.paths.CityOutputDir, page)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// BuildServices writes one page per service record and returns the written
// paths. Navigation is computed from all records before the first write.
func (g *Generator) BuildServices(ctx context.Context) ([]string, error) {
	raw, tmpl, err := g.loadInputs(g.paths.ServiceData, g.paths.ServiceTemplate)
	if err != nil {
		return nil, err
	}
	entries, err := DecodeNavEntries(raw)
	if err != nil {
		return nil, err
	}
	nav := NewNavigation(entries)
	if err := g.ensureDir(g.paths.ServiceOutputDir); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(raw))
	for i, rec := range raw {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		svc, err := DecodeService(i, rec)
		if err != nil {
			return written, err
		}
		page, err := AssembleService(tmpl, svc, nav, g.layout, g.transform)
		if err != nil {
			return written, err
		}

		path, err := g.emit("service", g.paths.ServiceOutputDir, page)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// loadInputs reads a pass's records and template before anything is written.
func (g *Generator) loadInputs(dataName, tmplName string) ([]Record, string, error) {
	raw, err := g.source.Records(dataName)
	if err != nil {
		return nil, "", inputError(err)
	}
	tmpl, err := g.templates.LoadTemplate(tmplName)
	if err != nil {
		return nil, "", inputError(err)
	}
	return raw, tmpl, nil
}

// inputError classifies a load failure as missing or unreadable input.
func inputError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrMissingInputFile, err)
	}
	return fmt.Errorf("%w: %w", ErrReadInput, err)
}

func (g *Generator) ensureDir(dir string) error {
	d, ok := g.sink.(dirEnsurer)
	if !ok {
		return nil
	}
	if err := d.EnsureDir(dir); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	return nil
}

// emit writes page under dir and reports it.
func (g *Generator) emit(kind, dir string, page Page) (string, error) {
	if g.strict && len(page.Unresolved) > 0 {
		return "", fmt.Errorf("%w: %s page %q: %s",
			ErrUnresolvedPlaceholder, kind, page.Filename, strings.Join(page.Unresolved, ", "))
	}

	path := filepath.Join(dir, page.Filename)
	if err := g.sink.Write(path, page.Content); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}
	fmt.Fprintf(g.progress, "Created %s page: %s\n", kind, path)
	return path, nil
}
