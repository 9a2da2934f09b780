package pagegen

// MenuGroupPrimary is the menu_group value that places a service in the
// primary navigation menu. Any other value, or none, means secondary.
const MenuGroupPrimary = "primary"

// FooterServiceCount is how many services, in source order, are linked from
// the footer. The selection is positional, not a "featured" flag.
const FooterServiceCount = 6

// CityRecord describes one service-area page.
type CityRecord struct {
	Filename         string
	CityName         string
	Region           string
	SEODescStart     string
	UniqueParagraph1 string
	UniqueParagraph2 string
}

// SpecRow is one label/value pair in a service's specification table.
type SpecRow struct {
	Label string
	Value string
}

// RelatedItem is a card linking to another page from a service page.
type RelatedItem struct {
	Filename string
	Icon     string // CSS class list for the icon element
	Title    string
}

// ServiceRecord describes one service page.
type ServiceRecord struct {
	Filename          string
	MetaTitle         string
	MetaDescription   string
	MetaKeywords      string
	Canonical         string
	ServiceName       string
	SchemaDescription string
	HeroTitle         string
	HeroSubtitle      string
	IntroHeading      string
	IntroParagraph    string
	BenefitsHeading   string
	UsesHeading       string
	UsesIntro         string
	SpecsHeading      string
	CTAHeading        string
	CTAText           string
	RelatedHeading    string
	MenuGroup         string // optional

	Benefits []string
	Uses     []string
	Specs    []SpecRow
	Related  []RelatedItem
}

// Link is an anchor target and its visible text.
type Link struct {
	Href string
	Text string
}

// Page is a fully substituted document ready to be written.
type Page struct {
	Filename string // relative to the page type's output directory
	Content  string

	// Unresolved lists the page type's own tokens still present in Content,
	// which happens only when a field value reintroduced one.
	Unresolved []string
}
