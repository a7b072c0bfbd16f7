// Package knowledge holds the static, industry-keyed lookup tables every generator reads from.
// Every table has a DefaultIndustry entry, so lookups never fail.
package knowledge

import (
	"sort"
	"strings"
)

// DefaultIndustry is the mandatory fallback key of every table
const DefaultIndustry = "default"

// IndustryProfile is what a business in one industry typically needs
type IndustryProfile struct {
	KeyFeatures           []string
	UserJourney           []string
	CompetitiveAdvantages []string
	RequiredSections      []string
	BusinessGoals         []string
	TargetPersonas        []string
	Keywords              []string
	Tagline               string
}

var industryProfiles = map[string]IndustryProfile{
	"restaurant": {
		KeyFeatures:           []string{"Online menu", "Table reservations", "Opening hours", "Location map"},
		UserJourney:           []string{"Discover", "Browse menu", "Check availability", "Reserve a table", "Visit"},
		CompetitiveAdvantages: []string{"Fresh local ingredients", "Family recipes", "Warm atmosphere"},
		RequiredSections:      []string{"hero", "menu", "about", "reservations", "contact"},
		BusinessGoals:         []string{"Increase reservations", "Grow repeat visits", "Promote seasonal dishes"},
		TargetPersonas:        []string{"Local families", "Food enthusiasts", "Couples on a date night"},
		Keywords:              []string{"restaurant", "dining", "menu", "reservations", "local food"},
		Tagline:               "Good food, good company",
	},
	"e-commerce": {
		KeyFeatures:           []string{"Product catalogue", "Secure checkout", "Order tracking", "Customer reviews"},
		UserJourney:           []string{"Land", "Browse categories", "Compare products", "Add to cart", "Check out"},
		CompetitiveAdvantages: []string{"Curated selection", "Fast shipping", "Easy returns"},
		RequiredSections:      []string{"hero", "featured", "categories", "testimonials", "contact"},
		BusinessGoals:         []string{"Increase conversion rate", "Raise average order value", "Build customer loyalty"},
		TargetPersonas:        []string{"Online shoppers", "Gift buyers", "Repeat customers"},
		Keywords:              []string{"shop", "online store", "buy online", "free shipping"},
		Tagline:               "Shop what you love",
	},
	"consulting": {
		KeyFeatures:           []string{"Service overview", "Case studies", "Team profiles", "Consultation booking"},
		UserJourney:           []string{"Identify a problem", "Research experts", "Review results", "Book a consultation"},
		CompetitiveAdvantages: []string{"Proven track record", "Senior expertise", "Measurable outcomes"},
		RequiredSections:      []string{"hero", "services", "case-studies", "team", "contact"},
		BusinessGoals:         []string{"Generate qualified leads", "Establish authority", "Book discovery calls"},
		TargetPersonas:        []string{"Business owners", "Operations leaders", "Growing startups"},
		Keywords:              []string{"consulting", "strategy", "advisory", "business growth"},
		Tagline:               "Expert guidance, measurable results",
	},
	"fitness": {
		KeyFeatures:           []string{"Class schedule", "Membership plans", "Trainer profiles", "Free trial signup"},
		UserJourney:           []string{"Get motivated", "Compare gyms", "Try a class", "Join"},
		CompetitiveAdvantages: []string{"Certified trainers", "Flexible schedules", "Supportive community"},
		RequiredSections:      []string{"hero", "services", "team", "testimonials", "contact"},
		BusinessGoals:         []string{"Grow memberships", "Fill classes", "Improve retention"},
		TargetPersonas:        []string{"Beginners", "Busy professionals", "Athletes"},
		Keywords:              []string{"gym", "fitness classes", "personal training", "workout"},
		Tagline:               "Stronger every day",
	},
	"technology": {
		KeyFeatures:           []string{"Product overview", "Integrations", "Pricing", "Customer stories"},
		UserJourney:           []string{"Hit a pain point", "Evaluate tools", "Start a trial", "Adopt"},
		CompetitiveAdvantages: []string{"Modern architecture", "Reliable support", "Fast onboarding"},
		RequiredSections:      []string{"hero", "services", "about", "testimonials", "contact"},
		BusinessGoals:         []string{"Drive trial signups", "Shorten sales cycle", "Expand into new markets"},
		TargetPersonas:        []string{"Engineering leads", "Product managers", "IT decision makers"},
		Keywords:              []string{"software", "platform", "saas", "automation"},
		Tagline:               "Software that works for you",
	},
	DefaultIndustry: {
		KeyFeatures:           []string{"Clear service overview", "Contact form", "About the business"},
		UserJourney:           []string{"Discover", "Learn more", "Get in touch"},
		CompetitiveAdvantages: []string{"Personal service", "Local expertise"},
		RequiredSections:      []string{"hero", "services", "about", "contact"},
		BusinessGoals:         []string{"Build awareness", "Generate enquiries"},
		TargetPersonas:        []string{"Local customers"},
		Keywords:              nil,
		Tagline:               "Welcome",
	},
}

// Normalize turns a free-text industry into a table key
func Normalize(industry string) string {
	return strings.ToLower(strings.TrimSpace(industry))
}

// lookup resolves industry against table, falling back to the default entry.
// The second return value is the key that matched.
func lookup[T any](table map[string]T, industry string) (T, string) {
	key := Normalize(industry)
	if entry, ok := table[key]; ok {
		return entry, key
	}
	return table[DefaultIndustry], DefaultIndustry
}

// Profile returns the industry profile for industry, or the default profile
func Profile(industry string) (IndustryProfile, string) {
	return lookup(industryProfiles, industry)
}

// IsKnown reports whether industry has its own entry in the profile table
func IsKnown(industry string) bool {
	key := Normalize(industry)
	_, ok := industryProfiles[key]
	return ok && key != DefaultIndustry
}

// Industries returns the recognised industry keys, sorted, without the default entry
func Industries() []string {
	keys := make([]string, 0, len(industryProfiles))
	for key := range industryProfiles {
		if key == DefaultIndustry {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
