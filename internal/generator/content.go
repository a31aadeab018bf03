package generator

// Static page copy. None of it depends on the prompt.

type feature struct {
	Icon        string
	Title       string
	Description string
}

type tier struct {
	Name     string
	Price    string
	Featured bool
	Includes []string
}

type testimonial struct {
	Quote  string
	Author string
	Title  string
}

// copyrightYear is fixed so output stays byte-identical across runs.
const copyrightYear = 2024

var features = []feature{
	{Icon: "⚡", Title: "Lightning Fast", Description: "Experience blazing-fast performance that keeps your workflow smooth and efficient."},
	{Icon: "🔒", Title: "Secure & Private", Description: "Your data is protected with enterprise-grade security and encryption."},
	{Icon: "📊", Title: "Advanced Analytics", Description: "Get deep insights with powerful analytics and reporting tools."},
	{Icon: "🎨", Title: "Customizable", Description: "Tailor every aspect to match your brand and workflow perfectly."},
	{Icon: "🤝", Title: "Team Collaboration", Description: "Work together seamlessly with real-time collaboration features."},
	{Icon: "🚀", Title: "Easy Integration", Description: "Connect with your favorite tools and services effortlessly."},
}

var tiers = []tier{
	{
		Name:     "Starter",
		Price:    "$29",
		Includes: []string{"Up to 10 users", "Basic features", "Email support", "5GB storage"},
	},
	{
		Name:     "Professional",
		Price:    "$79",
		Featured: true,
		Includes: []string{"Up to 50 users", "All features", "Priority support", "50GB storage", "Advanced analytics"},
	},
	{
		Name:     "Enterprise",
		Price:    "$199",
		Includes: []string{"Unlimited users", "All features", "24/7 support", "Unlimited storage", "Custom integrations", "Dedicated manager"},
	},
}

var testimonials = []testimonial{
	{
		Quote:  "This product has completely transformed how we work. The team collaboration features are outstanding!",
		Author: "Sarah Johnson",
		Title:  "CEO, TechCorp",
	},
	{
		Quote:  "Outstanding support and incredible features. We've seen a 300% increase in productivity since switching.",
		Author: "Michael Chen",
		Title:  "CTO, InnovateLabs",
	},
	{
		Quote:  "The best investment we've made for our business. Simple, powerful, and reliable.",
		Author: "Emily Rodriguez",
		Title:  "Founder, StartupHub",
	},
}
