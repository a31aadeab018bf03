package generator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FallbackProductName is used when no token in the prompt looks like a name.
const FallbackProductName = "YourBrand"

// Tone holds the independent tone flags inferred from a prompt.
// Several may be set at once; the composer decides precedence.
type Tone struct {
	Dark    bool `json:"dark" yaml:"dark"`
	Minimal bool `json:"minimal" yaml:"minimal"`
	SaaS    bool `json:"saas" yaml:"saas"`
	Product bool `json:"product" yaml:"product"`
	Agency  bool `json:"agency" yaml:"agency"`
}

// Sections gates the optional regions of the document.
type Sections struct {
	Features     bool `json:"features" yaml:"features"`
	Pricing      bool `json:"pricing" yaml:"pricing"`
	Testimonials bool `json:"testimonials" yaml:"testimonials"`
	CTA          bool `json:"cta" yaml:"cta"`
}

// Signals is everything the composer needs to build a page.
type Signals struct {
	Tone        Tone        `json:"tone" yaml:"tone"`
	Scheme      ColorScheme `json:"scheme" yaml:"scheme"`
	ProductName string      `json:"productName" yaml:"productName"`
	Sections    Sections    `json:"sections" yaml:"sections"`
}

var (
	darkKeywords        = []string{"dark", "black"}
	minimalKeywords     = []string{"minimal", "clean"}
	saasKeywords        = []string{"saas", "software"}
	productKeywords     = []string{"product", "app"}
	agencyKeywords      = []string{"agency", "service"}
	featureKeywords     = []string{"feature"}
	pricingKeywords     = []string{"pricing", "price"}
	testimonialKeywords = []string{"testimonial", "review"}
)

// Extract derives Signals from free text. It never fails: empty or
// keyword-free input yields the defaults.
//
// Matching is plain substring containment on the lowercased prompt, so
// "credit" selects the red scheme and "happy" counts as an app.
func Extract(text string) Signals {
	lower := strings.ToLower(text)

	tone := Tone{
		Dark:    containsAny(lower, darkKeywords),
		Minimal: containsAny(lower, minimalKeywords),
		SaaS:    containsAny(lower, saasKeywords),
		Product: containsAny(lower, productKeywords),
		Agency:  containsAny(lower, agencyKeywords),
	}

	return Signals{
		Tone:        tone,
		Scheme:      selectScheme(lower, tone),
		ProductName: productName(text),
		Sections: Sections{
			Features:     containsAny(lower, featureKeywords) || tone.SaaS || tone.Product,
			Pricing:      containsAny(lower, pricingKeywords),
			Testimonials: containsAny(lower, testimonialKeywords),
			CTA:          true,
		},
	}
}

// selectScheme applies the fixed priority: dark, then the first named
// color in namedSchemes order, then the default.
func selectScheme(lower string, tone Tone) ColorScheme {
	if tone.Dark {
		return SchemeDark
	}
	for _, s := range namedSchemes {
		if strings.Contains(lower, string(s)) {
			return s
		}
	}
	return SchemeDefault
}

// productName returns the first whitespace-separated token longer than three
// runes whose first rune is unchanged by upper-casing. The opening word is
// capitalized by grammar alone, so it is only used when nothing later
// qualifies: "Introducing Acme today" names Acme, "Acme launches" names Acme.
func productName(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		if i > 0 && looksLikeName(word) {
			return word
		}
	}
	if len(words) > 0 && looksLikeName(words[0]) {
		return words[0]
	}
	return FallbackProductName
}

func looksLikeName(word string) bool {
	if utf8.RuneCountInString(word) <= 3 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(word)
	return unicode.ToUpper(first) == first
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// Names lists the included sections in document order.
func (s Sections) Names() []string {
	names := make([]string, 0, 4)
	if s.Features {
		names = append(names, "features")
	}
	if s.Pricing {
		names = append(names, "pricing")
	}
	if s.Testimonials {
		names = append(names, "testimonials")
	}
	if s.CTA {
		names = append(names, "cta")
	}
	return names
}
