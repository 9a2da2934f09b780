// Package pagegen generates static HTML pages by substituting structured
// records into reusable HTML templates, one output file per record.
//
// # Quick Start
//
// Wire a data source, a template loader, and a sink, then run both passes.
// Any type with a Records method is a DataSource and any type with a
// LoadTemplate method is a TemplateLoader; the pagegen command reads both
// from the working directory.
//
//	gen := pagegen.NewGenerator(source, templates, pagegen.FileSink{},
//	    pagegen.WithProgress(os.Stdout),
//	)
//	result, err := gen.Run(ctx)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Total(), "pages")
//
// # Rendering Pipeline
//
// Each record flows through the same stages:
//
//  1. Decoding: raw records are checked for required fields (DecodeCity, DecodeService)
//  2. Fragment rendering: nested collections become indented markup (RenderLinks, RenderSpecs, ...)
//  3. Placeholder assembly: scalars and fragments are keyed by {token} (CityPlaceholders, ServicePlaceholders)
//  4. Substitution: tokens are replaced literally in one pass (Substitute, via AssembleCity and AssembleService)
//  5. Persistence: the page is written under its output directory (Sink)
//
// City pages are fully generated before service pages begin. Service
// navigation (primary menu, secondary menu, footer subset) is computed once
// per run by NewNavigation and shared read-only across records.
//
// # Templates
//
// Templates are plain text with {name} tokens. There are no loops or
// conditionals: every repeated structure is rendered by a fragment renderer
// and spliced in as a single value. Tokens the page type does not know about
// pass through unchanged.
//
// Substitution relies on an invariant of the data: no replacement value
// contains a token from the same page type. Strict mode (WithStrict) turns a
// violation into ErrUnresolvedPlaceholder instead of silently emitting it.
//
// # Failure Semantics
//
// Generation is all-or-nothing per run: a missing input file, a malformed
// record, or a failed write aborts immediately. Pages written before the
// failure are left in place; each individual write is atomic.
package pagegen
