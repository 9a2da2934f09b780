package pagegen

// CityPlaceholders returns the five tokens of the city template.
// City pages have no nested collections, so no fragments are rendered.
func CityPlaceholders(rec CityRecord) Placeholders {
	p := make(Placeholders, len(CityFields))
	p.Set("city_name", rec.CityName)
	p.Set("region", rec.Region)
	p.Set("seo_desc_start", rec.SEODescStart)
	p.Set("unique_paragraph_1", rec.UniqueParagraph1)
	p.Set("unique_paragraph_2", rec.UniqueParagraph2)
	return p
}

// AssembleCity substitutes rec into the city template. A non-nil t
// rewrites the fields first.
func AssembleCity(tmpl string, rec CityRecord, t FieldTransformer) (Page, error) {
	p := CityPlaceholders(rec)
	if err := applyTransform(p, CityFields, t); err != nil {
		return Page{}, err
	}
	return newPage(tmpl, rec.Filename, p), nil
}
