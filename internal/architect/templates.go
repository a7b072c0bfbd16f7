package architect

import "github.com/jonathan/site-generator/internal/types"

// NavigationMaxPriority is the highest priority still listed in the navigation
const NavigationMaxPriority = 4

// sectionTemplate is the static shape of one section type
type sectionTemplate struct {
	Title       string
	Priority    int
	Layout      string
	Placeholder func(title string) types.SectionPayload
}

var sectionTemplates = map[types.SectionType]sectionTemplate{
	types.SectionHero: {
		Title: "Welcome", Priority: 1, Layout: "full-bleed",
		Placeholder: func(title string) types.SectionPayload {
			return types.HeroContent{Headline: title, PrimaryCTA: types.CTA{Label: "Contact us", Href: "#contact"}}
		},
	},
	types.SectionServices: {
		Title: "Services", Priority: 2, Layout: "grid-3",
		Placeholder: func(title string) types.SectionPayload { return types.ServicesContent{Heading: title} },
	},
	types.SectionMenu: {
		Title: "Menu", Priority: 2, Layout: "two-column",
		Placeholder: func(string) types.SectionPayload { return types.MenuContent{} },
	},
	types.SectionFeatured: {
		Title: "Featured", Priority: 2, Layout: "grid-3",
		Placeholder: func(title string) types.SectionPayload { return types.FeaturedContent{Heading: title} },
	},
	types.SectionAbout: {
		Title: "About Us", Priority: 3, Layout: "split",
		Placeholder: func(string) types.SectionPayload { return types.AboutContent{} },
	},
	types.SectionCategories: {
		Title: "Shop by Category", Priority: 3, Layout: "grid-4",
		Placeholder: func(title string) types.SectionPayload { return types.CategoriesContent{Heading: title} },
	},
	types.SectionTestimonials: {
		Title: "Testimonials", Priority: 4, Layout: "carousel",
		Placeholder: func(title string) types.SectionPayload { return types.TestimonialsContent{Heading: title} },
	},
	types.SectionCaseStudies: {
		Title: "Case Studies", Priority: 4, Layout: "stacked",
		Placeholder: func(title string) types.SectionPayload { return types.CaseStudiesContent{Heading: title} },
	},
	types.SectionTeam: {
		Title: "Our Team", Priority: 4, Layout: "grid-4",
		Placeholder: func(string) types.SectionPayload { return types.TeamContent{} },
	},
	types.SectionReservations: {
		Title: "Reservations", Priority: 4, Layout: "centered",
		Placeholder: func(title string) types.SectionPayload {
			return types.ReservationsContent{Heading: title, CTA: types.CTA{Label: "Reserve", Href: "#contact"}}
		},
	},
	types.SectionContact: {
		Title: "Contact", Priority: 5, Layout: "split",
		Placeholder: func(title string) types.SectionPayload { return types.ContactContent{Heading: title} },
	},
}

// genericPriority is used for section types without a template
const genericPriority = 6

// templateFor returns the template of sectionType, or a generic template titled with the raw type
func templateFor(sectionType types.SectionType) sectionTemplate {
	if tmpl, ok := sectionTemplates[sectionType]; ok {
		return tmpl
	}
	return sectionTemplate{
		Title:    string(sectionType),
		Priority: genericPriority,
		Layout:   "stacked",
		Placeholder: func(title string) types.SectionPayload {
			return types.GenericContent{Title: title}
		},
	}
}
