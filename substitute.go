package pagegen

import (
	"sort"
	"strings"
)

// Placeholders maps brace-delimited tokens ("{name}") to replacement values.
type Placeholders map[string]string

// Token returns the template token for a field name: "city_name" -> "{city_name}".
func Token(name string) string {
	return "{" + name + "}"
}

// isToken reports whether key already carries its surrounding braces.
func isToken(key string) bool {
	return len(key) >= 2 && key[0] == '{' && key[len(key)-1] == '}'
}

// Set stores value under the token for name.
func (p Placeholders) Set(name, value string) {
	p[Token(name)] = value
}

// Get returns the value stored for name and whether it was present.
func (p Placeholders) Get(name string) (string, bool) {
	v, ok := p[Token(name)]
	return v, ok
}

// Tokens returns the map's tokens in sorted order. Keys missing their braces
// are reported wrapped, matching how Substitute treats them.
func (p Placeholders) Tokens() []string {
	seen := make(map[string]bool, len(p))
	tokens := make([]string, 0, len(p))
	for key := range p {
		if key == "" {
			continue
		}
		if !isToken(key) {
			key = Token(key)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		tokens = append(tokens, key)
	}
	sort.Strings(tokens)
	return tokens
}

// Substitute returns tmpl with every occurrence of every token in p replaced
// by its value. Replacement is literal and happens in a single pass over
// tmpl, so values are never rescanned and the result does not depend on map
// iteration order. Tokens missing from p pass through unchanged; entries of
// p absent from tmpl are ignored.
func Substitute(tmpl string, p Placeholders) string {
	if len(p) == 0 || tmpl == "" {
		return tmpl
	}

	tokens := p.Tokens()
	pairs := make([]string, 0, len(tokens)*2)
	for _, tok := range tokens {
		v, ok := p[tok]
		if !ok {
			v = p[strings.TrimSuffix(strings.TrimPrefix(tok, "{"), "}")]
		}
		pairs = append(pairs, tok, v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// Unresolved returns the tokens of p that still occur in output, sorted.
// After Substitute this is empty unless a value reintroduced a token.
func Unresolved(output string, p Placeholders) []string {
	var left []string
	for _, tok := range p.Tokens() {
		if strings.Contains(output, tok) {
			left = append(left, tok)
		}
	}
	return left
}

// newPage substitutes p into tmpl and records which of p's tokens survived.
func newPage(tmpl, filename string, p Placeholders) Page {
	content := Substitute(tmpl, p)
	return Page{Filename: filename, Content: content, Unresolved: Unresolved(content, p)}
}
