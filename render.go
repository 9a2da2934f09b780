package pagegen

import "strings"

// NestedIndent is the extra indentation applied to lines nested inside a
// fragment's container element.
const NestedIndent = 4

// BenefitIcon is the decorative marker placed before each benefit.
const BenefitIcon = `<i class="fas fa-check"></i>`

// pad returns the leading whitespace for a line at the given width.
// Negative widths are treated as zero.
func pad(indent int) string {
	if indent <= 0 {
		return ""
	}
	return strings.Repeat(" ", indent)
}

// joinLines renders each item with fn and joins the results with newlines.
// An empty input yields an empty string, never a bare separator.
func joinLines[T any](items []T, fn func(*strings.Builder, T)) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fn(&b, item)
	}
	return b.String()
}

// RenderLinks renders one list item per link. When exclude is non-empty, the
// link whose Href equals it is skipped; relative order is preserved.
func RenderLinks(links []Link, indent int, exclude string) string {
	kept := links
	if exclude != "" {
		kept = make([]Link, 0, len(links))
		for _, l := range links {
			if l.Href != exclude {
				kept = append(kept, l)
			}
		}
	}

	p := pad(indent)
	return joinLines(kept, func(b *strings.Builder, l Link) {
		b.WriteString(p)
		b.WriteString(`<li><a href="`)
		b.WriteString(l.Href)
		b.WriteString(`">`)
		b.WriteString(l.Text)
		b.WriteString(`</a></li>`)
	})
}

// RenderBenefits renders one list item per benefit, each prefixed with
// BenefitIcon.
func RenderBenefits(items []string, indent int) string {
	p := pad(indent)
	return joinLines(items, func(b *strings.Builder, text string) {
		b.WriteString(p)
		b.WriteString("<li>")
		b.WriteString(BenefitIcon)
		b.WriteByte(' ')
		b.WriteString(text)
		b.WriteString("</li>")
	})
}

// RenderList renders one plain list item per string.
func RenderList(items []string, indent int) string {
	p := pad(indent)
	return joinLines(items, func(b *strings.Builder, text string) {
		b.WriteString(p)
		b.WriteString("<li>")
		b.WriteString(text)
		b.WriteString("</li>")
	})
}

// RenderSpecs renders each row as a spec-row container holding a label span
// and a value span, the spans nested one level deeper.
func RenderSpecs(rows []SpecRow, indent int) string {
	p, inner := pad(indent), pad(indent+NestedIndent)
	return joinLines(rows, func(b *strings.Builder, row SpecRow) {
		b.WriteString(p + `<div class="spec-row">` + "\n")
		b.WriteString(inner + `<span class="spec-label">` + row.Label + "</span>\n")
		b.WriteString(inner + `<span class="spec-value">` + row.Value + "</span>\n")
		b.WriteString(p + "</div>")
	})
}

// RenderRelated renders each item as a clickable card with an icon and a
// heading nested one level deeper than the anchor.
func RenderRelated(items []RelatedItem, indent int) string {
	p, inner := pad(indent), pad(indent+NestedIndent)
	return joinLines(items, func(b *strings.Builder, item RelatedItem) {
		b.WriteString(p + `<a href="` + item.Filename + `" class="related-service-card">` + "\n")
		b.WriteString(inner + `<i class="` + item.Icon + `"></i>` + "\n")
		b.WriteString(inner + "<h4>" + item.Title + "</h4>\n")
		b.WriteString(p + "</a>")
	})
}
