package knowledge

import "github.com/jonathan/site-generator/internal/types"

// Copy templates may reference {name}, {industry}, {audience} and {description};
// the copy generator interpolates them from the business profile.

// HeroTemplate is the hero copy of one industry
type HeroTemplate struct {
	Headline     string
	Subheadline  string
	PrimaryCTA   string
	SecondaryCTA string
}

// ServicesTemplate is the services copy of one industry
type ServicesTemplate struct {
	Heading string
	Intro   string
	Items   []types.ServiceItem
}

// AboutTemplate is the about copy of one industry
type AboutTemplate struct {
	Story   string
	Mission string
	Values  []string
	Stats   []types.Stat
}

// MenuTemplate is the menu copy of one industry
type MenuTemplate struct {
	Intro      string
	Categories []types.MenuCategory
}

// ContactTemplate is the contact copy of one industry
type ContactTemplate struct {
	Heading    string
	Message    string
	Hours      string
	FormFields []string
}

// ReservationsTemplate is the reservations copy of one industry
type ReservationsTemplate struct {
	Heading  string
	Message  string
	CTA      string
	Policies []string
}

var heroCopy = map[string]HeroTemplate{
	"restaurant": {
		Headline:     "Welcome to {name}",
		Subheadline:  "{description}. Made fresh every day for {audience}.",
		PrimaryCTA:   "Reserve a table",
		SecondaryCTA: "View the menu",
	},
	"e-commerce": {
		Headline:     "Discover {name}",
		Subheadline:  "{description}. Curated for {audience}, delivered to your door.",
		PrimaryCTA:   "Shop now",
		SecondaryCTA: "Browse categories",
	},
	"consulting": {
		Headline:     "{name}: clarity for complex decisions",
		Subheadline:  "{description}. We partner with {audience} to deliver measurable results.",
		PrimaryCTA:   "Book a consultation",
		SecondaryCTA: "See our work",
	},
	"fitness": {
		Headline:     "Train with {name}",
		Subheadline:  "{description}. Programs built for {audience}.",
		PrimaryCTA:   "Start your free trial",
		SecondaryCTA: "See classes",
	},
	"technology": {
		Headline:     "{name} helps your team move faster",
		Subheadline:  "{description}. Built for {audience}.",
		PrimaryCTA:   "Get started",
		SecondaryCTA: "Learn more",
	},
	DefaultIndustry: {
		Headline:     "Welcome to {name}",
		Subheadline:  "{description}. Proudly serving {audience}.",
		PrimaryCTA:   "Get in touch",
		SecondaryCTA: "Learn more",
	},
}

var servicesCopy = map[string]ServicesTemplate{
	"consulting": {
		Heading: "How we help",
		Intro:   "{name} offers focused engagements for {audience}.",
		Items: []types.ServiceItem{
			{Name: "Strategy", Description: "Define where to play and how to win.", Icon: "compass"},
			{Name: "Operations", Description: "Streamline processes and cut waste.", Icon: "gear"},
			{Name: "Growth", Description: "Find and execute on new revenue.", Icon: "chart"},
		},
	},
	"fitness": {
		Heading: "Programs",
		Intro:   "Every program at {name} is led by certified coaches.",
		Items: []types.ServiceItem{
			{Name: "Group classes", Description: "High-energy sessions for every level.", Icon: "users"},
			{Name: "Personal training", Description: "One-to-one coaching toward your goals.", Icon: "target"},
			{Name: "Nutrition coaching", Description: "Simple plans that fit your life.", Icon: "leaf"},
		},
	},
	"technology": {
		Heading: "What {name} does",
		Intro:   "Everything your team needs in one platform.",
		Items: []types.ServiceItem{
			{Name: "Automation", Description: "Remove repetitive manual work.", Icon: "bolt"},
			{Name: "Integrations", Description: "Connect the tools you already use.", Icon: "plug"},
			{Name: "Analytics", Description: "Understand what drives results.", Icon: "chart"},
		},
	},
	DefaultIndustry: {
		Heading: "Our services",
		Intro:   "What {name} can do for you.",
		Items: []types.ServiceItem{
			{Name: "Consultation", Description: "Talk through your needs with our team.", Icon: "chat"},
			{Name: "Tailored solutions", Description: "Work shaped around your goals.", Icon: "star"},
			{Name: "Ongoing support", Description: "We stay with you after the job is done.", Icon: "heart"},
		},
	},
}

var aboutCopy = map[string]AboutTemplate{
	"restaurant": {
		Story:   "{name} started as a family kitchen. {description}.",
		Mission: "To serve honest food that brings {audience} together.",
		Values:  []string{"Fresh ingredients", "Hospitality", "Community"},
		Stats: []types.Stat{
			{Label: "Years serving", Value: "10+"},
			{Label: "Dishes on the menu", Value: "40"},
			{Label: "Happy guests", Value: "25k"},
		},
	},
	"technology": {
		Story:   "{name} was founded by engineers who were tired of brittle tools. {description}.",
		Mission: "To give {audience} software they can rely on.",
		Values:  []string{"Reliability", "Simplicity", "Transparency"},
		Stats: []types.Stat{
			{Label: "Teams onboarded", Value: "1,200"},
			{Label: "Uptime", Value: "99.9%"},
			{Label: "Integrations", Value: "60+"},
		},
	},
	DefaultIndustry: {
		Story:   "{name} is built on a simple idea: {description}.",
		Mission: "To deliver real value to {audience}.",
		Values:  []string{"Quality", "Integrity", "Care"},
		Stats: []types.Stat{
			{Label: "Years in business", Value: "5+"},
			{Label: "Customers served", Value: "1,000+"},
		},
	},
}

var menuCopy = map[string]MenuTemplate{
	"restaurant": {
		Intro: "Seasonal dishes from the {name} kitchen.",
		Categories: []types.MenuCategory{
			{Name: "Starters", Items: []types.MenuItem{
				{Name: "Bruschetta", Description: "Grilled bread, tomato, basil.", Price: "$9"},
				{Name: "Burrata", Description: "Creamy burrata with olive oil.", Price: "$14"},
			}},
			{Name: "Mains", Items: []types.MenuItem{
				{Name: "Tagliatelle al ragù", Description: "Slow-cooked beef and pork ragù.", Price: "$22"},
				{Name: "Margherita", Description: "Wood-fired, San Marzano tomato.", Price: "$17"},
			}},
			{Name: "Desserts", Items: []types.MenuItem{
				{Name: "Tiramisu", Description: "Espresso, mascarpone, cocoa.", Price: "$10"},
			}},
		},
	},
	DefaultIndustry: {
		Intro: "A selection of what {name} offers.",
		Categories: []types.MenuCategory{
			{Name: "Favourites", Items: []types.MenuItem{
				{Name: "House special", Description: "Ask us about today's special.", Price: "Ask"},
			}},
		},
	},
}

var testimonialsCopy = map[string][]types.Testimonial{
	"e-commerce": {
		{Quote: "Fast delivery and great quality. I order from {name} every month.", Author: "Priya S.", Role: "Verified buyer"},
		{Quote: "The easiest returns I have ever made.", Author: "Tom R.", Role: "Verified buyer"},
	},
	"fitness": {
		{Quote: "The coaches at {name} changed how I train.", Author: "Jordan K.", Role: "Member since 2021"},
		{Quote: "Friendly community and great classes.", Author: "Ana M.", Role: "Member"},
	},
	"technology": {
		{Quote: "{name} saved our team hours every week.", Author: "Chris L.", Role: "Engineering lead"},
		{Quote: "Onboarding took an afternoon.", Author: "Maya T.", Role: "Product manager"},
	},
	DefaultIndustry: {
		{Quote: "{name} went above and beyond for us.", Author: "A happy customer"},
		{Quote: "Professional, friendly and reliable.", Author: "A returning customer"},
	},
}

var contactCopy = map[string]ContactTemplate{
	"restaurant": {
		Heading:    "Visit us",
		Message:    "Find {name} in the heart of the neighbourhood.",
		Hours:      "Tue-Sun 12:00-22:00",
		FormFields: []string{"name", "email", "message"},
	},
	"consulting": {
		Heading:    "Start the conversation",
		Message:    "Tell {name} about your challenge and we will be in touch within one business day.",
		Hours:      "Mon-Fri 9:00-18:00",
		FormFields: []string{"name", "email", "company", "message"},
	},
	DefaultIndustry: {
		Heading:    "Contact us",
		Message:    "We would love to hear from you. Reach out to {name} today.",
		Hours:      "Mon-Fri 9:00-17:00",
		FormFields: []string{"name", "email", "message"},
	},
}

var caseStudiesCopy = map[string][]types.CaseStudy{
	"consulting": {
		{Title: "Regional retailer", Challenge: "Margins eroding across 40 stores.", Result: "Operating margin up 4 points in a year."},
		{Title: "SaaS scale-up", Challenge: "Sales cycle stretching past six months.", Result: "Cycle cut to 10 weeks."},
	},
	DefaultIndustry: {
		{Title: "A recent project", Challenge: "A customer needed a faster way to get results.", Result: "{name} delivered on time and on budget."},
	},
}

var teamCopy = map[string][]types.TeamMember{
	"consulting": {
		{Name: "Alex Morgan", Role: "Managing partner", Bio: "Twenty years advising growth companies."},
		{Name: "Sam Patel", Role: "Operations lead", Bio: "Former COO turned advisor."},
	},
	"fitness": {
		{Name: "Jamie Cruz", Role: "Head coach", Bio: "Certified strength and conditioning specialist."},
		{Name: "Riley Chen", Role: "Yoga instructor", Bio: "Ten years teaching mindful movement."},
	},
	DefaultIndustry: {
		{Name: "Our founder", Role: "Founder", Bio: "Started {name} to serve {audience}."},
	},
}

var featuredCopy = map[string][]types.Product{
	"e-commerce": {
		{Name: "Best seller", Description: "Our most loved product.", Price: "$49"},
		{Name: "New arrival", Description: "Fresh in this season.", Price: "$39"},
		{Name: "Staff pick", Description: "Chosen by the {name} team.", Price: "$29"},
	},
	DefaultIndustry: {
		{Name: "Featured offer", Description: "Hand-picked by {name}.", Price: "Ask"},
	},
}

var categoriesCopy = map[string][]types.Category{
	"e-commerce": {
		{Name: "New in", Description: "The latest arrivals."},
		{Name: "Best sellers", Description: "What everyone is buying."},
		{Name: "Sale", Description: "Great value, limited time."},
	},
	DefaultIndustry: {
		{Name: "Popular", Description: "What our customers choose most."},
		{Name: "Everything else", Description: "The full range from {name}."},
	},
}

var reservationsCopy = map[string]ReservationsTemplate{
	"restaurant": {
		Heading:  "Book your table",
		Message:  "Reserve online and we will have your table ready at {name}.",
		CTA:      "Reserve now",
		Policies: []string{"Tables are held for 15 minutes", "Groups of 8 or more please call ahead"},
	},
	DefaultIndustry: {
		Heading:  "Book an appointment",
		Message:  "Choose a time that suits you and {name} will confirm by email.",
		CTA:      "Book now",
		Policies: []string{"Free cancellation up to 24 hours before"},
	},
}

// HeroCopy returns the hero copy for industry, or the default copy
func HeroCopy(industry string) (HeroTemplate, string) { return lookup(heroCopy, industry) }

// ServicesCopy returns the services copy for industry, or the default copy
func ServicesCopy(industry string) (ServicesTemplate, string) { return lookup(servicesCopy, industry) }

// AboutCopy returns the about copy for industry, or the default copy
func AboutCopy(industry string) (AboutTemplate, string) { return lookup(aboutCopy, industry) }

// MenuCopy returns the menu copy for industry, or the default copy
func MenuCopy(industry string) (MenuTemplate, string) { return lookup(menuCopy, industry) }

// TestimonialsCopy returns the testimonials for industry, or the default testimonials
func TestimonialsCopy(industry string) ([]types.Testimonial, string) {
	return lookup(testimonialsCopy, industry)
}

// ContactCopy returns the contact copy for industry, or the default copy
func ContactCopy(industry string) (ContactTemplate, string) { return lookup(contactCopy, industry) }

// CaseStudiesCopy returns the case studies for industry, or the default case studies
func CaseStudiesCopy(industry string) ([]types.CaseStudy, string) {
	return lookup(caseStudiesCopy, industry)
}

// TeamCopy returns the team members for industry, or the default team
func TeamCopy(industry string) ([]types.TeamMember, string) { return lookup(teamCopy, industry) }

// FeaturedCopy returns the featured products for industry, or the default products
func FeaturedCopy(industry string) ([]types.Product, string) { return lookup(featuredCopy, industry) }

// CategoriesCopy returns the categories for industry, or the default categories
func CategoriesCopy(industry string) ([]types.Category, string) {
	return lookup(categoriesCopy, industry)
}

// ReservationsCopy returns the reservations copy for industry, or the default copy
func ReservationsCopy(industry string) (ReservationsTemplate, string) {
	return lookup(reservationsCopy, industry)
}
