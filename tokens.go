package pagegen

import "slices"

// Field names recognized by the city template, in data-file order.
var CityFields = []string{
	"city_name",
	"region",
	"seo_desc_start",
	"unique_paragraph_1",
	"unique_paragraph_2",
}

// Scalar field names recognized by the service template. Each is copied
// verbatim from the record under the token of the same name.
var ServiceScalarFields = []string{
	"meta_title",
	"meta_description",
	"meta_keywords",
	"canonical",
	"service_name",
	"schema_description",
	"hero_title",
	"hero_subtitle",
	"intro_heading",
	"intro_paragraph",
	"benefits_heading",
	"uses_heading",
	"uses_intro",
	"specs_heading",
	"cta_heading",
	"cta_text",
	"related_heading",
}

// Fragment token names of the service template. Their values are rendered
// markup, not record fields.
var ServiceFragmentFields = []string{
	"benefits_list",
	"uses_list",
	"spec_rows",
	"related_cards",
	"menu_primary_links",
	"menu_secondary_links",
	"sidebar_links",
	"footer_service_links",
}

// isScalarField reports whether name is a plain-text field of some page type.
func isScalarField(name string) bool {
	return slices.Contains(CityFields, name) || slices.Contains(ServiceScalarFields, name)
}
