package pagegen

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
)

// Record is one undecoded entry from a data source, keyed by field name.
type Record = map[string]any

// recordReader extracts typed fields from a raw record and remembers the
// first failure, so decoding a record reads as a flat list of fields.
type recordReader struct {
	kind  string
	index int
	raw   Record
	err   error
}

func newRecordReader(kind string, index int, raw Record) *recordReader {
	return &recordReader{kind: kind, index: index, raw: raw}
}

// fail records the first error, naming the record by position and filename.
func (r *recordReader) fail(format string, args ...any) {
	if r.err != nil {
		return
	}
	where := fmt.Sprintf("%s record %d", r.kind, r.index)
	if name, ok := r.raw["filename"].(string); ok && name != "" {
		where += fmt.Sprintf(" (%q)", name)
	}
	r.err = fmt.Errorf("%w: %s: %s", ErrMalformedRecord, where, fmt.Sprintf(format, args...))
}

// str returns a required string field. Empty strings are accepted.
func (r *recordReader) str(field string) string {
	v, ok := r.raw[field]
	if !ok {
		r.fail("missing field %q", field)
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail("field %q: want string, got %s", field, typeName(v))
		return ""
	}
	return s
}

// optStr returns an optional string field; absent and null both yield "".
func (r *recordReader) optStr(field string) string {
	v, ok := r.raw[field]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail("field %q: want string, got %s", field, typeName(v))
		return ""
	}
	return s
}

// filename returns the required filename field, which must be a local path
// so the page lands inside its output directory.
func (r *recordReader) filename() string {
	name := r.str("filename")
	if r.err == nil && !filepath.IsLocal(name) {
		r.fail("field %q: %q is not a relative path inside the output directory", "filename", name)
	}
	return name
}

// list returns a required sequence field.
func (r *recordReader) list(field string) []any {
	v, ok := r.raw[field]
	if !ok {
		r.fail("missing field %q", field)
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		r.fail("field %q: want list, got %s", field, typeName(v))
		return nil
	}
	return items
}

// texts returns a required sequence of scalar items rendered as text.
func (r *recordReader) texts(field string) []string {
	items := r.list(field)
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := scalarText(item)
		if !ok {
			r.fail("%s[%d]: want text, got %s", field, i, typeName(item))
			return nil
		}
		out = append(out, s)
	}
	return out
}

// objects returns a required sequence of mappings.
func (r *recordReader) objects(field string) []Record {
	items := r.list(field)
	out := make([]Record, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			r.fail("%s[%d]: want object, got %s", field, i, typeName(item))
			return nil
		}
		out = append(out, m)
	}
	return out
}

// member returns a required text member of a nested object.
func (r *recordReader) member(field string, i int, obj Record, key string) string {
	v, ok := obj[key]
	if !ok {
		r.fail("%s[%d]: missing field %q", field, i, key)
		return ""
	}
	s, ok := scalarText(v)
	if !ok {
		r.fail("%s[%d].%s: want text, got %s", field, i, key, typeName(v))
		return ""
	}
	return s
}

// scalarText formats a leaf value spliced into a fragment. Numbers and
// booleans are accepted there, unlike top-level fields which must be strings.
func scalarText(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case bool:
		return strconv.FormatBool(x), true
	case int, int64, uint64, float64:
		return fmt.Sprint(x), true
	default:
		return "", false
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// DecodeCity converts one raw record into a city record.
func DecodeCity(index int, raw Record) (CityRecord, error) {
	r := newRecordReader("city", index, raw)
	city := CityRecord{
		Filename:         r.filename(),
		CityName:         r.str("city_name"),
		Region:           r.str("region"),
		SEODescStart:     r.str("seo_desc_start"),
		UniqueParagraph1: r.str("unique_paragraph_1"),
		UniqueParagraph2: r.str("unique_paragraph_2"),
	}
	if r.err != nil {
		return CityRecord{}, r.err
	}
	return city, nil
}

// DecodeService converts one raw record into a service record.
func DecodeService(index int, raw Record) (ServiceRecord, error) {
	r := newRecordReader("service", index, raw)
	svc := ServiceRecord{
		Filename:          r.filename(),
		MetaTitle:         r.str("meta_title"),
		MetaDescription:   r.str("meta_description"),
		MetaKeywords:      r.str("meta_keywords"),
		Canonical:         r.str("canonical"),
		ServiceName:       r.str("service_name"),
		SchemaDescription: r.str("schema_description"),
		HeroTitle:         r.str("hero_title"),
		HeroSubtitle:      r.str("hero_subtitle"),
		IntroHeading:      r.str("intro_heading"),
		IntroParagraph:    r.str("intro_paragraph"),
		BenefitsHeading:   r.str("benefits_heading"),
		UsesHeading:       r.str("uses_heading"),
		UsesIntro:         r.str("uses_intro"),
		SpecsHeading:      r.str("specs_heading"),
		CTAHeading:        r.str("cta_heading"),
		CTAText:           r.str("cta_text"),
		RelatedHeading:    r.str("related_heading"),
		MenuGroup:         r.optStr("menu_group"),
		Benefits:          r.texts("benefits"),
		Uses:              r.texts("uses"),
	}

	for i, obj := range r.objects("specs") {
		svc.Specs = append(svc.Specs, SpecRow{
			Label: r.member("specs", i, obj, "label"),
			Value: r.member("specs", i, obj, "value"),
		})
	}
	for i, obj := range r.objects("related") {
		svc.Related = append(svc.Related, RelatedItem{
			Filename: r.member("related", i, obj, "filename"),
			Icon:     r.member("related", i, obj, "icon"),
			Title:    r.member("related", i, obj, "title"),
		})
	}

	if r.err != nil {
		return ServiceRecord{}, r.err
	}
	return svc, nil
}

// DecodeNavEntries extracts the navigation fields of every service record.
// Every service page links to every other service, so these fields are
// needed before any page can be rendered. Duplicate filenames are rejected
// because the sidebar excludes the current page by filename.
func DecodeNavEntries(raw []Record) ([]NavEntry, error) {
	out := make([]NavEntry, 0, len(raw))
	seen := make(map[string]int, len(raw))
	for i, rec := range raw {
		r := newRecordReader("service", i, rec)
		entry := NavEntry{
			Filename:    r.filename(),
			ServiceName: r.str("service_name"),
			MenuGroup:   r.optStr("menu_group"),
		}
		if r.err != nil {
			return nil, r.err
		}
		if first, dup := seen[entry.Filename]; dup {
			return nil, fmt.Errorf("%w: service record %d (%q): filename already used by record %d",
				ErrMalformedRecord, i, entry.Filename, first)
		}
		seen[entry.Filename] = i
		out = append(out, entry)
	}
	return out, nil
}
