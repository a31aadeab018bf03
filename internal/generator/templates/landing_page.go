package templates

// LandingPage returns the html/template source for a generated landing page.
// The "page" template expects the view built by generator.Compose.
func LandingPage() string {
	return pageTemplate + styleTemplate + navTemplate + heroTemplate +
		featuresTemplate + pricingTemplate + testimonialsTemplate +
		ctaTemplate + footerTemplate
}

const pageTemplate = `{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.ProductName}} - Landing Page</title>
{{template "style" .}}
</head>
<body>
{{template "nav" .}}
{{template "hero" .}}
{{- if .Sections.Features}}
{{template "features" .}}
{{- end}}
{{- if .Sections.Pricing}}
{{template "pricing" .}}
{{- end}}
{{- if .Sections.Testimonials}}
{{template "testimonials" .}}
{{- end}}
{{- if .Sections.CTA}}
{{template "cta" .}}
{{- end}}
{{template "footer" .}}
</body>
</html>
{{end}}`

const styleTemplate = `{{define "style"}}    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
            line-height: 1.6;
            color: {{.Palette.Text}};
            background-color: {{.Palette.Background}};
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 0 20px;
        }

        /* Navigation */
        nav {
            padding: 20px 0;
            background: {{.Surfaces.Nav}};
            backdrop-filter: blur(10px);
            position: sticky;
            top: 0;
            z-index: 1000;
            border-bottom: 1px solid {{.Surfaces.Border}};
        }

        nav .container {
            display: flex;
            justify-content: space-between;
            align-items: center;
        }

        .logo {
            font-size: 24px;
            font-weight: bold;
            color: {{.Palette.Primary}};
        }

        nav ul {
            display: flex;
            list-style: none;
            gap: 30px;
        }

        nav a {
            text-decoration: none;
            color: {{.Palette.Text}};
            font-weight: 500;
            transition: color 0.3s;
        }

        nav a:hover {
            color: {{.Palette.Primary}};
        }

        /* Hero */
        .hero {
            padding: 100px 0;
            text-align: center;
            background: linear-gradient(135deg, {{.Palette.Primary}}15 0%, {{.Palette.Secondary}}15 100%);
        }

        .hero h1 {
            font-size: {{.HeroFontSize}};
            font-weight: 800;
            margin-bottom: 20px;
            background: linear-gradient(135deg, {{.Palette.Primary}} 0%, {{.Palette.Secondary}} 100%);
            -webkit-background-clip: text;
            -webkit-text-fill-color: transparent;
            background-clip: text;
        }

        .hero p {
            font-size: 20px;
            margin-bottom: 40px;
            color: {{.Surfaces.Muted}};
            max-width: 600px;
            margin-left: auto;
            margin-right: auto;
        }

        .cta-button {
            display: inline-block;
            padding: 16px 40px;
            background: linear-gradient(135deg, {{.Palette.Primary}} 0%, {{.Palette.Secondary}} 100%);
            color: white;
            text-decoration: none;
            border-radius: 8px;
            font-weight: 600;
            font-size: 18px;
            transition: transform 0.2s, box-shadow 0.2s;
            box-shadow: 0 4px 6px -1px rgba(0, 0, 0, 0.1);
        }

        .cta-button:hover {
            transform: translateY(-2px);
            box-shadow: 0 10px 15px -3px rgba(0, 0, 0, 0.2);
        }

        .secondary-button {
            display: inline-block;
            padding: 16px 40px;
            background: transparent;
            color: {{.Palette.Primary}};
            text-decoration: none;
            border-radius: 8px;
            font-weight: 600;
            font-size: 18px;
            border: 2px solid {{.Palette.Primary}};
            margin-left: 15px;
            transition: all 0.2s;
        }

        .secondary-button:hover {
            background: {{.Palette.Primary}};
            color: white;
        }

        /* Features */
        .features {
            padding: 80px 0;
        }

        .section-title {
            text-align: center;
            font-size: 42px;
            font-weight: 700;
            margin-bottom: 60px;
        }

        .features-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
            gap: 40px;
        }

        .feature-card {
            padding: 30px;
            border-radius: 12px;
            background: {{.Surfaces.Card}};
            box-shadow: 0 4px 6px -1px rgba(0, 0, 0, 0.1);
            transition: transform 0.2s;
        }

        .feature-card:hover {
            transform: translateY(-5px);
            box-shadow: 0 10px 15px -3px rgba(0, 0, 0, 0.2);
        }

        .feature-icon {
            width: 50px;
            height: 50px;
            background: linear-gradient(135deg, {{.Palette.Primary}} 0%, {{.Palette.Secondary}} 100%);
            border-radius: 10px;
            display: flex;
            align-items: center;
            justify-content: center;
            color: white;
            font-size: 24px;
            margin-bottom: 20px;
        }

        .feature-card h3 {
            font-size: 24px;
            margin-bottom: 15px;
        }

        .feature-card p {
            color: {{.Surfaces.Muted}};
            line-height: 1.7;
        }

        /* Pricing */
        .pricing {
            padding: 80px 0;
            background: {{.Surfaces.Band}};
        }

        .pricing-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(280px, 1fr));
            gap: 30px;
            max-width: 1000px;
            margin: 0 auto;
        }

        .pricing-card {
            padding: 40px 30px;
            border-radius: 12px;
            background: {{.Surfaces.PricingCard}};
            box-shadow: 0 4px 6px -1px rgba(0, 0, 0, 0.1);
            text-align: center;
        }

        .pricing-card.featured {
            border: 3px solid {{.Palette.Primary}};
            transform: scale(1.05);
        }

        .pricing-card h3 {
            font-size: 24px;
            margin-bottom: 15px;
        }

        .price {
            font-size: 48px;
            font-weight: 700;
            color: {{.Palette.Primary}};
            margin: 20px 0;
        }

        .price span {
            font-size: 20px;
            color: {{.Surfaces.Subtle}};
        }

        .pricing-features {
            list-style: none;
            margin: 30px 0;
            text-align: left;
        }

        .pricing-features li {
            padding: 10px 0;
            color: {{.Surfaces.Muted}};
        }

        .pricing-features li:before {
            content: "✓ ";
            color: {{.Palette.Primary}};
            font-weight: bold;
            margin-right: 10px;
        }

        /* Testimonials */
        .testimonials {
            padding: 80px 0;
        }

        .testimonials-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
            gap: 30px;
        }

        .testimonial-card {
            padding: 30px;
            border-radius: 12px;
            background: {{.Surfaces.Card}};
            box-shadow: 0 4px 6px -1px rgba(0, 0, 0, 0.1);
        }

        .testimonial-text {
            font-style: italic;
            margin-bottom: 20px;
            color: {{.Surfaces.Muted}};
        }

        .testimonial-author {
            display: flex;
            align-items: center;
            gap: 15px;
        }

        .author-avatar {
            width: 50px;
            height: 50px;
            border-radius: 50%;
            background: linear-gradient(135deg, {{.Palette.Primary}} 0%, {{.Palette.Secondary}} 100%);
        }

        .author-name {
            font-weight: 600;
        }

        .author-title {
            font-size: 14px;
            color: {{.Surfaces.Subtle}};
        }

        /* Call to action */
        .cta-section {
            padding: 100px 0;
            text-align: center;
            background: linear-gradient(135deg, {{.Palette.Primary}} 0%, {{.Palette.Secondary}} 100%);
            color: white;
        }

        .cta-section h2 {
            font-size: 42px;
            margin-bottom: 20px;
        }

        .cta-section p {
            font-size: 20px;
            margin-bottom: 40px;
            opacity: 0.9;
        }

        .cta-section .cta-button {
            background: white;
            color: {{.Palette.Primary}};
        }

        /* Footer */
        footer {
            padding: 40px 0;
            text-align: center;
            background: {{.Surfaces.Band}};
            color: {{.Surfaces.Subtle}};
        }

        @media (max-width: 768px) {
            .hero h1 {
                font-size: 36px;
            }

            .secondary-button {
                display: block;
                margin: 15px auto 0;
            }

            nav ul {
                gap: 15px;
                font-size: 14px;
            }
        }
    </style>{{end}}`

const navTemplate = `{{define "nav"}}    <nav>
        <div class="container">
            <div class="logo">{{.ProductName}}</div>
            <ul>
{{- range .Nav}}
                <li><a href="{{.Href}}">{{.Label}}</a></li>
{{- end}}
            </ul>
        </div>
    </nav>{{end}}`

const heroTemplate = `{{define "hero"}}
    <section class="hero">
        <div class="container">
            <h1>{{.Hero.Headline}}</h1>
            <p>{{.Hero.Copy}}</p>
            <a href="#" class="cta-button">Get Started Free</a>
            <a href="#" class="secondary-button">Learn More</a>
        </div>
    </section>{{end}}`

const featuresTemplate = `{{define "features"}}
    <section class="features" id="features">
        <div class="container">
            <h2 class="section-title">Powerful Features</h2>
            <div class="features-grid">
{{- range .Features}}
                <div class="feature-card">
                    <div class="feature-icon">{{.Icon}}</div>
                    <h3>{{.Title}}</h3>
                    <p>{{.Description}}</p>
                </div>
{{- end}}
            </div>
        </div>
    </section>{{end}}`

const pricingTemplate = `{{define "pricing"}}
    <section class="pricing" id="pricing">
        <div class="container">
            <h2 class="section-title">Simple, Transparent Pricing</h2>
            <div class="pricing-grid">
{{- range .Tiers}}
                <div class="pricing-card{{if .Featured}} featured{{end}}">
                    <h3>{{.Name}}</h3>
                    <div class="price">{{.Price}}<span>/mo</span></div>
                    <ul class="pricing-features">
{{- range .Includes}}
                        <li>{{.}}</li>
{{- end}}
                    </ul>
                    <a href="#" class="cta-button">Choose Plan</a>
                </div>
{{- end}}
            </div>
        </div>
    </section>{{end}}`

const testimonialsTemplate = `{{define "testimonials"}}
    <section class="testimonials" id="testimonials">
        <div class="container">
            <h2 class="section-title">What Our Customers Say</h2>
            <div class="testimonials-grid">
{{- range .Testimonials}}
                <div class="testimonial-card">
                    <p class="testimonial-text">"{{.Quote}}"</p>
                    <div class="testimonial-author">
                        <div class="author-avatar"></div>
                        <div>
                            <div class="author-name">{{.Author}}</div>
                            <div class="author-title">{{.Title}}</div>
                        </div>
                    </div>
                </div>
{{- end}}
            </div>
        </div>
    </section>{{end}}`

const ctaTemplate = `{{define "cta"}}
    <section class="cta-section" id="contact">
        <div class="container">
            <h2>Ready to Get Started?</h2>
            <p>Join thousands of satisfied customers and transform your business today.</p>
            <a href="#" class="cta-button">Start Your Free Trial</a>
        </div>
    </section>{{end}}`

const footerTemplate = `{{define "footer"}}
    <footer>
        <div class="container">
            <p>&copy; {{.Year}} {{.ProductName}}. All rights reserved.</p>
        </div>
    </footer>{{end}}`
