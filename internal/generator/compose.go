package generator

import (
	"fmt"
	"html/template"
	"strings"

	"landing_page_server/internal/generator/templates"
)

// page is parsed once and only ever executed afterwards, which html/template
// allows from many goroutines at once.
var page = template.Must(template.New("landing").Parse(templates.LandingPage()))

const (
	heroFontSize        = "56px"
	minimalHeroFontSize = "48px"
)

// Hero is the headline and supporting copy at the top of the page.
type Hero struct {
	Headline string
	Copy     string
}

type navLink struct {
	Href  string
	Label string
}

type cssPalette struct {
	Primary, Secondary, Background, Text template.CSS
}

type cssSurfaces struct {
	Nav, Border, Card, Band, PricingCard, Muted, Subtle template.CSS
}

type view struct {
	ProductName  string
	Year         int
	Palette      cssPalette
	Surfaces     cssSurfaces
	HeroFontSize template.CSS
	Nav          []navLink
	Hero         Hero
	Sections     Sections
	Features     []feature
	Tiers        []tier
	Testimonials []testimonial
}

// Generate runs Extract and Compose on a prompt.
func Generate(prompt string) (string, error) {
	return Compose(Extract(prompt))
}

// Compose renders the landing page for s. The output depends only on s.
// An error means the page template itself is broken.
func Compose(s Signals) (string, error) {
	if s.ProductName == "" {
		s.ProductName = FallbackProductName
	}

	p := s.Scheme.Palette()
	surf := SurfacesFor(s.Scheme)

	v := view{
		ProductName: s.ProductName,
		Year:        copyrightYear,
		Palette: cssPalette{
			Primary:    template.CSS(p.Primary),
			Secondary:  template.CSS(p.Secondary),
			Background: template.CSS(p.Background),
			Text:       template.CSS(p.Text),
		},
		Surfaces: cssSurfaces{
			Nav:         template.CSS(surf.Nav),
			Border:      template.CSS(surf.Border),
			Card:        template.CSS(surf.Card),
			Band:        template.CSS(surf.Band),
			PricingCard: template.CSS(surf.PricingCard),
			Muted:       template.CSS(surf.Muted),
			Subtle:      template.CSS(surf.Subtle),
		},
		HeroFontSize: heroFontSize,
		Nav:          navLinks(s.Sections),
		Hero:         HeroFor(s),
		Sections:     s.Sections,
		Features:     features,
		Tiers:        tiers,
		Testimonials: testimonials,
	}
	if s.Tone.Minimal {
		v.HeroFontSize = minimalHeroFontSize
	}

	var b strings.Builder
	if err := page.ExecuteTemplate(&b, "page", v); err != nil {
		return "", fmt.Errorf("render landing page: %w", err)
	}
	return b.String(), nil
}

// HeroFor picks the hero copy. Order matters: SaaS beats product, product
// beats agency, and the generic welcome is the fallback.
func HeroFor(s Signals) Hero {
	switch {
	case s.Tone.SaaS:
		return Hero{
			Headline: "Transform Your Workflow",
			Copy:     "Streamline your business operations with our powerful SaaS platform. Increase productivity and collaboration across your entire team.",
		}
	case s.Tone.Product:
		return Hero{
			Headline: "The Future of Innovation",
			Copy:     "Experience the next generation of technology designed to simplify your life and boost your productivity.",
		}
	case s.Tone.Agency:
		return Hero{
			Headline: "Elevate Your Brand",
			Copy:     "We create exceptional digital experiences that drive results and grow your business.",
		}
	}
	name := s.ProductName
	if name == "" {
		name = FallbackProductName
	}
	return Hero{
		Headline: "Welcome to " + name,
		Copy:     "Discover amazing solutions tailored to your needs. Join thousands of satisfied customers today.",
	}
}

// navLinks only links to sections that will be rendered.
func navLinks(sec Sections) []navLink {
	links := make([]navLink, 0, 4)
	if sec.Features {
		links = append(links, navLink{Href: "#features", Label: "Features"})
	}
	if sec.Pricing {
		links = append(links, navLink{Href: "#pricing", Label: "Pricing"})
	}
	if sec.Testimonials {
		links = append(links, navLink{Href: "#testimonials", Label: "Testimonials"})
	}
	if sec.CTA {
		links = append(links, navLink{Href: "#contact", Label: "Contact"})
	}
	return links
}
