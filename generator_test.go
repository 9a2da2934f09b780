package pagegen

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/alnah/go-pagegen/internal/assets"
	"github.com/alnah/go-pagegen/internal/datasource"
)

// ---------------------------------------------------------------------------
// Test doubles
// ---------------------------------------------------------------------------

type memSource map[string][]Record

func (m memSource) Records(name string) ([]Record, error) {
	recs, ok := m[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return recs, nil
}

type memTemplates map[string]string

func (m memTemplates) LoadTemplate(name string) (string, error) {
	tmpl, ok := m[name]
	if !ok {
		return "", fs.ErrNotExist
	}
	return tmpl, nil
}

type memSink struct {
	pages  map[string]string
	order  []string
	dirs   []string
	failOn string
}

func newMemSink() *memSink {
	return &memSink{pages: map[string]string{}}
}

func (s *memSink) Write(path, content string) error {
	if s.failOn != "" && path == s.failOn {
		return fs.ErrPermission
	}
	s.pages[path] = content
	s.order = append(s.order, path)
	return nil
}

func (s *memSink) EnsureDir(dir string) error {
	s.dirs = append(s.dirs, dir)
	return nil
}

// brokenSource fails every read with a non-missing error.
type brokenSource struct{}

func (brokenSource) Records(string) ([]Record, error) { return nil, fs.ErrPermission }

const (
	testCityTemplate    = "<h1>{city_name}, {region}</h1>"
	testServiceTemplate = "<h1>{service_name}</h1>\n<ul>\n{sidebar_links}\n</ul>\n<footer>\n{footer_service_links}\n</footer>"
)

func testInputs() (memSource, memTemplates) {
	second := cityRaw()
	second["filename"] = "skip-hire-boise.html"
	second["city_name"] = "Boise"
	second["region"] = "Idaho"

	src := memSource{
		DefaultCityData: {cityRaw(), second},
		DefaultServiceData: {
			serviceRaw("mini.html", "Mini", "primary"),
			serviceRaw("midi.html", "Midi", ""),
		},
	}
	tmpls := memTemplates{
		DefaultCityTemplate:    testCityTemplate,
		DefaultServiceTemplate: testServiceTemplate,
	}
	return src, tmpls
}

// ---------------------------------------------------------------------------
// TestParsePass
// ---------------------------------------------------------------------------

func TestParsePass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Pass
		wantErr bool
	}{
		{"city", PassCity, false},
		{" Service ", PassService, false},
		{"CITY", PassCity, false},
		{"all", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePass(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPass) {
					t.Errorf("ParsePass(%q) error = %v, want ErrInvalidPass", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParsePass(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerator_Run - Pass ordering and output
// ---------------------------------------------------------------------------

func TestGenerator_Run(t *testing.T) {
	t.Parallel()

	src, tmpls := testInputs()
	sink := newMemSink()
	var progress bytes.Buffer

	gen := NewGenerator(src, tmpls, sink, WithProgress(&progress))
	result, err := gen.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	cityA := filepath.Join(DefaultCityOutputDir, "skip-hire-austin.html")
	cityB := filepath.Join(DefaultCityOutputDir, "skip-hire-boise.html")
	mini := filepath.Join(DefaultServiceOutputDir, "mini.html")
	midi := filepath.Join(DefaultServiceOutputDir, "midi.html")

	if !slices.Equal(sink.order, []string{cityA, cityB, mini, midi}) {
		t.Errorf("write order = %v, want cities then services in record order", sink.order)
	}
	if result.Total() != 4 || !slices.Equal(result.Cities, []string{cityA, cityB}) {
		t.Errorf("Result = %+v", result)
	}
	if !slices.Equal(sink.dirs, []string{DefaultCityOutputDir, DefaultServiceOutputDir}) {
		t.Errorf("dirs = %v", sink.dirs)
	}

	if got := sink.pages[cityB]; got != "<h1>Boise, Idaho</h1>" {
		t.Errorf("city page = %q", got)
	}
	page := sink.pages[mini]
	sidebar, _, _ := strings.Cut(strings.SplitN(page, "<ul>\n", 2)[1], "\n</ul>")
	if strings.Contains(sidebar, "mini.html") || !strings.Contains(sidebar, `href="midi.html"`) {
		t.Errorf("sidebar of mini.html = %q, want only midi.html", sidebar)
	}
	if !strings.Contains(page, `<footer>`+"\n"+RenderLinks(NewNavigation([]NavEntry{
		{Filename: "mini.html", ServiceName: "Mini"}, {Filename: "midi.html", ServiceName: "Midi"},
	}).Footer, DefaultFooterIndent, "")) {
		t.Errorf("footer missing a service:\n%s", page)
	}

	wantProgress := "Created city page: " + cityA + "\n" +
		"Created city page: " + cityB + "\n" +
		"Created service page: " + mini + "\n" +
		"Created service page: " + midi + "\n" +
		DoneMessage + "\n"
	if progress.String() != wantProgress {
		t.Errorf("progress =\n%s\nwant\n%s", progress.String(), wantProgress)
	}
}

func TestGenerator_Run_Idempotent(t *testing.T) {
	t.Parallel()

	src, tmpls := testInputs()
	first, second := newMemSink(), newMemSink()

	if _, err := NewGenerator(src, tmpls, first).Run(context.Background()); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	if _, err := NewGenerator(src, tmpls, second).Run(context.Background()); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	for path, content := range first.pages {
		if second.pages[path] != content {
			t.Errorf("%s differs between runs", path)
		}
	}
}

func TestGenerator_Run_SelectedPasses(t *testing.T) {
	t.Parallel()

	t.Run("service only", func(t *testing.T) {
		t.Parallel()

		src, tmpls := testInputs()
		delete(src, DefaultCityData)
		sink := newMemSink()

		result, err := NewGenerator(src, tmpls, sink).Run(context.Background(), PassService)
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if len(result.Cities) != 0 || len(result.Services) != 2 {
			t.Errorf("Result = %+v", result)
		}
	})

	t.Run("order is fixed regardless of argument order", func(t *testing.T) {
		t.Parallel()

		src, tmpls := testInputs()
		sink := newMemSink()

		if _, err := NewGenerator(src, tmpls, sink).Run(context.Background(), PassService, PassCity); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if !strings.HasPrefix(sink.order[0], DefaultCityOutputDir) {
			t.Errorf("first write = %s, want a city page", sink.order[0])
		}
	})

	t.Run("invalid pass", func(t *testing.T) {
		t.Parallel()

		src, tmpls := testInputs()
		_, err := NewGenerator(src, tmpls, newMemSink()).Run(context.Background(), Pass("blog"))
		if !errors.Is(err, ErrInvalidPass) {
			t.Errorf("Run() error = %v, want ErrInvalidPass", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestGenerator_Run_Errors - Failures abort without rollback
// ---------------------------------------------------------------------------

func TestGenerator_Run_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing city data", func(t *testing.T) {
		t.Parallel()

		src, tmpls := testInputs()
		delete(src, DefaultCityData)
		sink := newMemSink()

		_, err := NewGenerator(src, tmpls, sink).Run(context.Background())
		if !errors.Is(err, ErrMissingInputFile) || !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Run() error = %v, want ErrMissingInputFile", err)
		}
		if len(sink.order) != 0 || len(sink.dirs) != 0 {
			t.Errorf("sink touched before inputs loaded: %v %v", sink.order, sink.dirs)
		}
	})

	t.Run("missing service template after city pass", func(t *testing.T) {
		t.Parallel()

		src, tmpls := testInputs()
		delete(tmpls, DefaultServiceTemplate)
		sink := newMemSink()

		result, err := NewGenerator(src, tmpls, sink).Run(context.Background())
		if !errors.Is(err, ErrMissingInputFile) {
			t.Errorf("Run() error = %v, want ErrMissingInputFile", err)
		}
		if len(result.Cities) != 2 || len(sink.order) != 2 {
			t.Errorf("city pages not kept: %+v", result)
		}
	})

	t.Run("unreadable data", func(t *testing.T) {
		t.Parallel()

		_, tmpls := testInputs()
		_, err := NewGenerator(brokenSource{}, tmpls, newMemSink()).Run(context.Background())
		if !errors.Is(err, ErrReadInput) {
			t.Errorf("Run() error = %v, want ErrReadInput", err)
		}
	})

	t.Run("malformed record keeps earlier pages", func(t *testing.T) {
		t.Parallel()

		src, tmpls := testInputs()
		bad := cityRaw()
		bad["filename"] = "bad.html"
		delete(bad, "region")
		src[DefaultCityData] = append(src[DefaultCityData], bad)
		sink := newMemSink()

		result, err := NewGenerator(src, tmpls, sink).Run(context.Background())
		if !errors.Is(err, ErrMalformedRecord) {
			t.Fatalf("Run() error = %v, want ErrMalformedRecord", err)
		}
		if len(result.Cities) != 2 || len(sink.order) != 2 {
			t.Errorf("written = %v, want the two valid city pages", sink.order)
		}
		if len(result.Services) != 0 {
			t.Errorf("service pass ran after failure: %v", result.Services)
		}
	})

	t.Run("malformed navigation fails before any service write", func(t *testing.T) {
		t.Parallel()

		src, tmpls := testInputs()
		src[DefaultServiceData] = append(src[DefaultServiceData], Record{"filename": "x.html"})
		sink := newMemSink()

		_, err := NewGenerator(src, tmpls, sink).Run(context.Background(), PassService)
		if !errors.Is(err, ErrMalformedRecord) {
			t.Fatalf("Run() error = %v, want ErrMalformedRecord", err)
		}
		if len(sink.order) != 0 {
			t.Errorf("written = %v, want none", sink.order)
		}
	})

	t.Run("write failure", func(t *testing.T) {
		t.Parallel()

		src, tmpls := testInputs()
		sink := newMemSink()
		sink.failOn = filepath.Join(DefaultCityOutputDir, "skip-hire-boise.html")

		_, err := NewGenerator(src, tmpls, sink).Run(context.Background())
		if !errors.Is(err, ErrWriteFailure) || !errors.Is(err, fs.ErrPermission) {
			t.Errorf("Run() error = %v, want ErrWriteFailure wrapping the cause", err)
		}
		if len(sink.order) != 1 {
			t.Errorf("written = %v, want only the first page", sink.order)
		}
	})

	t.Run("invalid layout", func(t *testing.T) {
		t.Parallel()

		src, tmpls := testInputs()
		l := DefaultLayout()
		l.MenuIndent = -1

		_, err := NewGenerator(src, tmpls, newMemSink(), WithLayout(l)).Run(context.Background())
		if !errors.Is(err, ErrInvalidLayout) {
			t.Errorf("Run() error = %v, want ErrInvalidLayout", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		src, tmpls := testInputs()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var progress bytes.Buffer

		_, err := NewGenerator(src, tmpls, newMemSink(), WithProgress(&progress)).Run(ctx)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
		if strings.Contains(progress.String(), DoneMessage) {
			t.Error("DoneMessage printed for a cancelled run")
		}
	})
}

// ---------------------------------------------------------------------------
// TestGenerator_Options - Strict mode, transformers, paths
// ---------------------------------------------------------------------------

func TestGenerator_Strict(t *testing.T) {
	t.Parallel()

	src, tmpls := testInputs()
	src[DefaultCityData][0]["region"] = "{city_name}"

	// Lenient: the reintroduced token stays in the page.
	sink := newMemSink()
	if _, err := NewGenerator(src, tmpls, sink, WithPaths(DefaultPaths())).Run(context.Background(), PassCity); err != nil {
		t.Fatalf("lenient Run() error = %v", err)
	}
	if got := sink.pages[filepath.Join(DefaultCityOutputDir, "skip-hire-austin.html")]; got != "<h1>Austin, {city_name}</h1>" {
		t.Errorf("page = %q", got)
	}

	_, err := NewGenerator(src, tmpls, newMemSink(), WithStrict(true)).Run(context.Background(), PassCity)
	if !errors.Is(err, ErrUnresolvedPlaceholder) {
		t.Fatalf("strict Run() error = %v, want ErrUnresolvedPlaceholder", err)
	}
	if !strings.Contains(err.Error(), "{city_name}") {
		t.Errorf("error = %q, want the token named", err)
	}
}

func TestGenerator_FieldTransformer(t *testing.T) {
	t.Parallel()

	src, tmpls := testInputs()
	tmpls[DefaultCityTemplate] = "{unique_paragraph_1}"
	src[DefaultCityData][0]["unique_paragraph_1"] = "**P1**"

	md, err := NewMarkdownFields([]string{"unique_paragraph_1"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sink := newMemSink()
	if _, err := NewGenerator(src, tmpls, sink, WithFieldTransformer(md)).Run(context.Background(), PassCity); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := sink.pages[filepath.Join(DefaultCityOutputDir, "skip-hire-austin.html")]; got != "<p><strong>P1</strong></p>" {
		t.Errorf("page = %q", got)
	}
}

func TestGenerator_EmptyDataSet(t *testing.T) {
	t.Parallel()

	src, tmpls := testInputs()
	src[DefaultCityData] = []Record{}
	sink := newMemSink()
	var progress bytes.Buffer

	result, err := NewGenerator(src, tmpls, sink, WithProgress(&progress)).Run(context.Background(), PassCity)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Total() != 0 || !slices.Equal(sink.dirs, []string{DefaultCityOutputDir}) {
		t.Errorf("Result = %+v, dirs = %v", result, sink.dirs)
	}
	if progress.String() != DoneMessage+"\n" {
		t.Errorf("progress = %q", progress.String())
	}
}

// ---------------------------------------------------------------------------
// TestGenerator_Filesystem - Real data files, templates, and sink
// ---------------------------------------------------------------------------

func TestGenerator_Filesystem(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if _, err := assets.Scaffold(dir, false); err != nil {
		t.Fatalf("Scaffold() error = %v", err)
	}
	templates, err := assets.NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	paths := DefaultPaths()
	paths.CityOutputDir = filepath.Join(dir, "public", DefaultCityOutputDir)
	paths.ServiceOutputDir = filepath.Join(dir, "public", DefaultServiceOutputDir)

	gen := NewGenerator(datasource.NewFileSource(dir), templates, FileSink{}, WithPaths(paths), WithStrict(true))
	result, err := gen.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Cities) != 2 || len(result.Services) != 3 {
		t.Fatalf("Result = %+v, want 2 city and 3 service pages", result)
	}

	check := func(paths []string, fields []string) {
		t.Helper()
		for _, path := range paths {
			content, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read %s: %v", path, err)
			}
			for _, f := range fields {
				if strings.Contains(string(content), Token(f)) {
					t.Errorf("%s still contains %s", path, Token(f))
				}
			}
		}
	}
	check(result.Cities, CityFields)
	check(result.Services, append(slices.Clone(ServiceScalarFields), ServiceFragmentFields...))

	harrogate, err := os.ReadFile(filepath.Join(paths.CityOutputDir, "skip-hire-harrogate.html"))
	if err != nil {
		t.Fatalf("failed to read city page: %v", err)
	}
	if !strings.Contains(string(harrogate), "Harrogate") {
		t.Error("city page missing city name")
	}

	mini, err := os.ReadFile(filepath.Join(paths.ServiceOutputDir, "mini-skips.html"))
	if err != nil {
		t.Fatalf("failed to read service page: %v", err)
	}
	if strings.Contains(string(mini), `<a href="mini-skips.html" class="related-service-card">`) {
		t.Error("service page lists itself as related")
	}
}

func TestGenerator_FormatParity(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	spec := `[{"label": "Weight", "value": 1.50}, {"label": "Max", "value": 1000000000000000000000}]`
	if err := os.WriteFile(filepath.Join(dir, "d.json"), []byte(`[{"specs": `+spec+`}]`), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	yamlData := "- specs:\n    - label: Weight\n      value: 1.50\n    - label: Max\n      value: 1000000000000000000000\n"
	if err := os.WriteFile(filepath.Join(dir, "d.yaml"), []byte(yamlData), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	src := datasource.NewFileSource(dir)
	var rendered []string
	for _, name := range []string{"d.json", "d.yaml"} {
		recs, err := src.Records(name)
		if err != nil {
			t.Fatalf("Records(%s) error = %v", name, err)
		}
		raw := serviceRaw("x.html", "X", "")
		raw["specs"] = recs[0]["specs"]
		svc, err := DecodeService(0, raw)
		if err != nil {
			t.Fatalf("DecodeService(%s) error = %v", name, err)
		}
		rendered = append(rendered, RenderSpecs(svc.Specs, 0))
	}

	for _, want := range []string{
		`<span class="spec-value">1.50</span>`,
		`<span class="spec-value">1000000000000000000000</span>`,
	} {
		if !strings.Contains(rendered[0], want) {
			t.Errorf("json page missing %s:\n%s", want, rendered[0])
		}
	}
	if rendered[0] != rendered[1] {
		t.Errorf("json and yaml render differently:\n%s\n---\n%s", rendered[0], rendered[1])
	}
}

// Notes:
// - The filesystem test runs with strict mode so a starter template that
//   reintroduces a token fails loudly.
// - Atomic replacement of existing pages is covered by fileutil tests.
