package pagegen

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// FieldTransformer rewrites scalar field values before substitution.
// Fragment tokens are never passed to it.
type FieldTransformer interface {
	TransformField(field, value string) (string, error)
}

// MarkdownFields converts the named fields from Markdown to HTML with
// goldmark. Fields not in the set are returned unchanged.
type MarkdownFields struct {
	md     goldmark.Markdown
	fields map[string]bool
}

// NewMarkdownFields creates a transformer for the given field names.
// Raw HTML in field values is dropped unless unsafe is set.
// Returns ErrUnknownField for names that are not scalar page fields.
func NewMarkdownFields(fields []string, unsafe bool) (*MarkdownFields, error) {
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		if !isScalarField(f) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
		set[f] = true
	}

	var rendererOpts []goldmark.Option
	if unsafe {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}
	md := goldmark.New(append(rendererOpts,
		goldmark.WithExtensions(extension.GFM),
	)...)

	return &MarkdownFields{md: md, fields: set}, nil
}

// Fields returns the configured field names, sorted.
func (m *MarkdownFields) Fields() []string {
	out := make([]string, 0, len(m.fields))
	for f := range m.fields {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// TransformField renders value as Markdown when field is configured.
// The trailing newline goldmark emits after the last block is trimmed so
// the value sits inline in the template.
func (m *MarkdownFields) TransformField(field, value string) (string, error) {
	if !m.fields[field] {
		return value, nil
	}
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(value), &buf); err != nil {
		return "", fmt.Errorf("%w: field %q: %v", ErrMarkdownRender, field, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// applyTransform runs t over the listed scalar fields of p in place.
func applyTransform(p Placeholders, fields []string, t FieldTransformer) error {
	if t == nil {
		return nil
	}
	for _, f := range fields {
		v, ok := p.Get(f)
		if !ok {
			continue
		}
		out, err := t.TransformField(f, v)
		if err != nil {
			return err
		}
		p.Set(f, out)
	}
	return nil
}

// Compile-time interface check.
var _ FieldTransformer = (*MarkdownFields)(nil)
