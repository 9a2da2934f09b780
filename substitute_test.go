package pagegen

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

func TestToken(t *testing.T) {
	t.Parallel()

	if got := Token("city_name"); got != "{city_name}" {
		t.Errorf("Token() = %q, want %q", got, "{city_name}")
	}
}

func TestPlaceholders_SetGet(t *testing.T) {
	t.Parallel()

	p := Placeholders{}
	p.Set("region", "Texas")

	if v, ok := p["{region}"]; !ok || v != "Texas" {
		t.Errorf(`p["{region}"] = %q, %v; want "Texas", true`, v, ok)
	}
	if v, ok := p.Get("region"); !ok || v != "Texas" {
		t.Errorf("Get(region) = %q, %v; want Texas, true", v, ok)
	}
	if _, ok := p.Get("city_name"); ok {
		t.Error("Get(city_name) ok = true, want false")
	}
}

func TestPlaceholders_Tokens(t *testing.T) {
	t.Parallel()

	p := Placeholders{"{b}": "1", "{a}": "2", "c": "3", "{c}": "4", "": "skip"}
	want := []string{"{a}", "{b}", "{c}"}

	if got := p.Tokens(); !slices.Equal(got, want) {
		t.Errorf("Tokens() = %v, want %v", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestSubstitute - Literal single-pass replacement
// ---------------------------------------------------------------------------

func TestSubstitute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tmpl string
		p    Placeholders
		want string
	}{
		{
			name: "every occurrence replaced",
			tmpl: "{a}-{a}-{b}",
			p:    Placeholders{"{a}": "x", "{b}": "y"},
			want: "x-x-y",
		},
		{
			name: "unknown tokens pass through",
			tmpl: "{a} {unknown}",
			p:    Placeholders{"{a}": "x"},
			want: "x {unknown}",
		},
		{
			name: "unused placeholders ignored",
			tmpl: "plain",
			p:    Placeholders{"{a}": "x"},
			want: "plain",
		},
		{
			name: "empty value removes token",
			tmpl: "<ul>\n{list}\n</ul>",
			p:    Placeholders{"{list}": ""},
			want: "<ul>\n\n</ul>",
		},
		{
			name: "regex and format metacharacters are literal",
			tmpl: "{a}",
			p:    Placeholders{"{a}": `$1 \n %s .* (x)`},
			want: `$1 \n %s .* (x)`,
		},
		{
			name: "literal braces that are not tokens are untouched",
			tmpl: `{"@type": "Service", "name": "{name}"}`,
			p:    Placeholders{"{name}": "Skips"},
			want: `{"@type": "Service", "name": "Skips"}`,
		},
		{
			name: "brace-less key is treated as its token",
			tmpl: "{a}",
			p:    Placeholders{"a": "x"},
			want: "x",
		},
		{
			name: "empty template",
			tmpl: "",
			p:    Placeholders{"{a}": "x"},
			want: "",
		},
		{
			name: "empty placeholders",
			tmpl: "{a}",
			p:    Placeholders{},
			want: "{a}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Substitute(tt.tmpl, tt.p); got != tt.want {
				t.Errorf("Substitute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubstitute_ValuesAreNotRescanned(t *testing.T) {
	t.Parallel()

	// A value containing another token stays as written, whatever the map
	// iteration order.
	p := Placeholders{"{a}": "{b}", "{b}": "B"}
	for range 50 {
		if got := Substitute("{a}|{b}", p); got != "{b}|B" {
			t.Fatalf("Substitute() = %q, want %q", got, "{b}|B")
		}
	}
}

func TestSubstitute_MatchesAnySequentialOrder(t *testing.T) {
	t.Parallel()

	services := sampleServices()
	p := ServicePlaceholders(services[0], navFor(services), DefaultLayout())
	tokens := p.Tokens()
	if len(tokens) != 25 {
		t.Fatalf("len(tokens) = %d, want 25", len(tokens))
	}

	var tmpl strings.Builder
	for i, tok := range tokens {
		fmt.Fprintf(&tmpl, "<!-- %d -->\n%s\n%s|", i, tok, tok)
	}
	want := Substitute(tmpl.String(), p)

	sequential := func(order []string) string {
		out := tmpl.String()
		for _, tok := range order {
			out = strings.ReplaceAll(out, tok, p[tok])
		}
		return out
	}

	reversed := slices.Clone(tokens)
	slices.Reverse(reversed)
	rotated := append(slices.Clone(tokens[12:]), tokens[:12]...)
	interleaved := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i += 2 {
		interleaved = append(interleaved, tokens[i])
	}
	for i := 1; i < len(tokens); i += 2 {
		interleaved = append(interleaved, tokens[i])
	}
	shuffled := slices.Clone(tokens)
	rand.New(rand.NewPCG(1, 2)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	orders := map[string][]string{
		"sorted":      tokens,
		"reversed":    reversed,
		"rotated":     rotated,
		"interleaved": interleaved,
		"shuffled":    shuffled,
	}
	for name, order := range orders {
		if got := sequential(order); got != want {
			t.Errorf("%s order differs from Substitute:\n%s\nwant\n%s", name, got, want)
		}
	}
}

func TestSubstitute_NoKnownTokenRemains(t *testing.T) {
	t.Parallel()

	rec := CityRecord{
		Filename:         "x.html",
		CityName:         "Ripon",
		Region:           "North Yorkshire",
		SEODescStart:     "Skip hire in",
		UniqueParagraph1: "One.",
		UniqueParagraph2: "Two.",
	}
	tmpl := "{city_name}{region}{seo_desc_start}{unique_paragraph_1}{unique_paragraph_2}{city_name}"

	out := Substitute(tmpl, CityPlaceholders(rec))

	if left := Unresolved(out, CityPlaceholders(rec)); len(left) != 0 {
		t.Errorf("Unresolved() = %v, want none", left)
	}
	if out != "RiponNorth YorkshireSkip hire inOne.Two.Ripon" {
		t.Errorf("Substitute() = %q", out)
	}
}

func TestUnresolved(t *testing.T) {
	t.Parallel()

	p := Placeholders{"{a}": "{b}", "{b}": "x", "{c}": "y"}
	out := Substitute("{a} {c}", p)

	if got := Unresolved(out, p); !slices.Equal(got, []string{"{b}"}) {
		t.Errorf("Unresolved() = %v, want [{b}]", got)
	}
	if got := Unresolved("clean", p); got != nil {
		t.Errorf("Unresolved(clean) = %v, want nil", got)
	}
}
