package generator

// ColorScheme names one of the fixed palettes a page can be rendered with.
type ColorScheme string

const (
	SchemeDefault ColorScheme = "default"
	SchemeDark    ColorScheme = "dark"
	SchemeBlue    ColorScheme = "blue"
	SchemeGreen   ColorScheme = "green"
	SchemePurple  ColorScheme = "purple"
	SchemeRed     ColorScheme = "red"
)

// namedSchemes is checked in order; the first color found in the prompt wins.
var namedSchemes = []ColorScheme{SchemeBlue, SchemeGreen, SchemePurple, SchemeRed}

// Palette is the four-color tuple applied across the style sheet.
type Palette struct {
	Primary    string // Brand color, gradients start here
	Secondary  string // Gradient end
	Background string // Page background
	Text       string // Body text
}

var palettes = map[ColorScheme]Palette{
	SchemeDefault: {Primary: "#4F46E5", Secondary: "#3B82F6", Background: "#FFFFFF", Text: "#1F2937"},
	SchemeDark:    {Primary: "#6366F1", Secondary: "#8B5CF6", Background: "#111827", Text: "#F9FAFB"},
	SchemeBlue:    {Primary: "#3B82F6", Secondary: "#2563EB", Background: "#FFFFFF", Text: "#1F2937"},
	SchemeGreen:   {Primary: "#10B981", Secondary: "#059669", Background: "#FFFFFF", Text: "#1F2937"},
	SchemePurple:  {Primary: "#8B5CF6", Secondary: "#7C3AED", Background: "#FFFFFF", Text: "#1F2937"},
	SchemeRed:     {Primary: "#EF4444", Secondary: "#DC2626", Background: "#FFFFFF", Text: "#1F2937"},
}

// Palette returns the colors for s. Unknown schemes fall back to the default.
func (s ColorScheme) Palette() Palette {
	if p, ok := palettes[s]; ok {
		return p
	}
	return palettes[SchemeDefault]
}

// Surfaces are the scheme-independent colors that flip in dark mode.
type Surfaces struct {
	Nav         string
	Border      string
	Card        string
	Band        string // pricing background and footer
	PricingCard string
	Muted       string // paragraph text on cards and hero
	Subtle      string // captions, footer text
}

var (
	lightSurfaces = Surfaces{
		Nav:         "rgba(255, 255, 255, 0.95)",
		Border:      "#E5E7EB",
		Card:        "#FFFFFF",
		Band:        "#F9FAFB",
		PricingCard: "#FFFFFF",
		Muted:       "#6B7280",
		Subtle:      "#6B7280",
	}
	darkSurfaces = Surfaces{
		Nav:         "rgba(17, 24, 39, 0.9)",
		Border:      "#374151",
		Card:        "#1F2937",
		Band:        "#1F2937",
		PricingCard: "#111827",
		Muted:       "#D1D5DB",
		Subtle:      "#9CA3AF",
	}
)

// SurfacesFor returns the dark surfaces for the dark scheme and the light
// ones otherwise.
func SurfacesFor(s ColorScheme) Surfaces {
	if s == SchemeDark {
		return darkSurfaces
	}
	return lightSurfaces
}
