package pagegen

import (
	"fmt"
	"slices"
)

// Default indentation widths, matching the nesting depth of each token in
// the stock service template.
const (
	DefaultMenuIndent     = 32
	DefaultBenefitsIndent = 24
	DefaultUsesIndent     = 24
	DefaultSpecsIndent    = 28
	DefaultSidebarIndent  = 28
	DefaultFooterIndent   = 24
	DefaultRelatedIndent  = 20
)

// MaxIndent bounds every Layout width.
const MaxIndent = 120

// Layout holds the indentation width used for each service-page fragment.
// Widths are a property of where the token sits in the template, so they are
// passed to the renderers rather than baked into them.
type Layout struct {
	MenuIndent     int // primary and secondary menu links
	BenefitsIndent int
	UsesIndent     int
	SpecsIndent    int
	SidebarIndent  int
	FooterIndent   int
	RelatedIndent  int
}

// DefaultLayout returns the widths used by the stock service template.
func DefaultLayout() Layout {
	return Layout{
		MenuIndent:     DefaultMenuIndent,
		BenefitsIndent: DefaultBenefitsIndent,
		UsesIndent:     DefaultUsesIndent,
		SpecsIndent:    DefaultSpecsIndent,
		SidebarIndent:  DefaultSidebarIndent,
		FooterIndent:   DefaultFooterIndent,
		RelatedIndent:  DefaultRelatedIndent,
	}
}

// Validate checks that every width is within [0, MaxIndent].
func (l Layout) Validate() error {
	widths := []struct {
		name  string
		value int
	}{
		{"menu", l.MenuIndent},
		{"benefits", l.BenefitsIndent},
		{"uses", l.UsesIndent},
		{"specs", l.SpecsIndent},
		{"sidebar", l.SidebarIndent},
		{"footer", l.FooterIndent},
		{"related", l.RelatedIndent},
	}
	for _, w := range widths {
		if w.value < 0 || w.value > MaxIndent {
			return fmt.Errorf("%w: %sIndent must be between 0 and %d, got %d", ErrInvalidLayout, w.name, MaxIndent, w.value)
		}
	}
	return nil
}

// NavEntry holds the fields of a service that other pages link to.
type NavEntry struct {
	Filename    string
	ServiceName string
	MenuGroup   string
}

// IsPrimary reports whether the service belongs to the primary menu.
func (e NavEntry) IsPrimary() bool {
	return e.MenuGroup == MenuGroupPrimary
}

// Link returns the anchor for the entry.
func (e NavEntry) Link() Link {
	return Link{Href: e.Filename, Text: e.ServiceName}
}

// Navigation is the cross-record link data shared by every service page.
// It is computed once per run and read-only afterwards.
type Navigation struct {
	All       []Link // every service, source order
	Primary   []Link // menu_group == "primary", source order
	Secondary []Link // everything else, source order
	Footer    []Link // first FooterServiceCount services
}

// NewNavigation partitions entries into menus and selects the footer subset.
// The footer is recomputed from the current order, never from a name list.
func NewNavigation(entries []NavEntry) Navigation {
	nav := Navigation{All: make([]Link, 0, len(entries))}
	for _, e := range entries {
		l := e.Link()
		nav.All = append(nav.All, l)
		if e.IsPrimary() {
			nav.Primary = append(nav.Primary, l)
		} else {
			nav.Secondary = append(nav.Secondary, l)
		}
	}
	nav.Footer = slices.Clip(nav.All[:min(FooterServiceCount, len(nav.All))])
	return nav
}

// ServicePlaceholders returns every service template token for rec.
// Fragments are rendered fresh per record: the sidebar omits rec itself, so
// it cannot be shared across pages. Menus do not exclude rec.
func ServicePlaceholders(rec ServiceRecord, nav Navigation, layout Layout) Placeholders {
	p := make(Placeholders, len(ServiceScalarFields)+len(ServiceFragmentFields))

	p.Set("meta_title", rec.MetaTitle)
	p.Set("meta_description", rec.MetaDescription)
	p.Set("meta_keywords", rec.MetaKeywords)
	p.Set("canonical", rec.Canonical)
	p.Set("service_name", rec.ServiceName)
	p.Set("schema_description", rec.SchemaDescription)
	p.Set("hero_title", rec.HeroTitle)
	p.Set("hero_subtitle", rec.HeroSubtitle)
	p.Set("intro_heading", rec.IntroHeading)
	p.Set("intro_paragraph", rec.IntroParagraph)
	p.Set("benefits_heading", rec.BenefitsHeading)
	p.Set("uses_heading", rec.UsesHeading)
	p.Set("uses_intro", rec.UsesIntro)
	p.Set("specs_heading", rec.SpecsHeading)
	p.Set("cta_heading", rec.CTAHeading)
	p.Set("cta_text", rec.CTAText)
	p.Set("related_heading", rec.RelatedHeading)

	p.Set("menu_primary_links", RenderLinks(nav.Primary, layout.MenuIndent, ""))
	p.Set("menu_secondary_links", RenderLinks(nav.Secondary, layout.MenuIndent, ""))
	p.Set("benefits_list", RenderBenefits(rec.Benefits, layout.BenefitsIndent))
	p.Set("uses_list", RenderList(rec.Uses, layout.UsesIndent))
	p.Set("spec_rows", RenderSpecs(rec.Specs, layout.SpecsIndent))
	p.Set("sidebar_links", RenderLinks(nav.All, layout.SidebarIndent, rec.Filename))
	p.Set("footer_service_links", RenderLinks(nav.Footer, layout.FooterIndent, ""))
	p.Set("related_cards", RenderRelated(rec.Related, layout.RelatedIndent))

	return p
}

// AssembleService substitutes rec and its fragments into the service
// template. A non-nil t rewrites the scalar fields first; fragments are
// never passed to it.
func AssembleService(tmpl string, rec ServiceRecord, nav Navigation, layout Layout, t FieldTransformer) (Page, error) {
	p := ServicePlaceholders(rec, nav, layout)
	if err := applyTransform(p, ServiceScalarFields, t); err != nil {
		return Page{}, err
	}
	return newPage(tmpl, rec.Filename, p), nil
}
