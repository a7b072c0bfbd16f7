package copywriting

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/site-generator/internal/knowledge"
	"github.com/jonathan/site-generator/internal/types"
)

// writeContext is what a section writer sees
type writeContext struct {
	section   types.SiteSection
	structure types.SiteStructure
	profile   types.BusinessProfile
	industry  string
	fill      *strings.Replacer
}

// writer produces the payload of one section type
type writer func(wc writeContext) types.SectionPayload

// TemplateGenerator fills static per-industry copy templates with profile fields.
// It performs no I/O and is deterministic.
type TemplateGenerator struct {
	writers map[types.SectionType]writer
}

// NewTemplateGenerator creates a generator with a writer for every known section type
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{
		writers: map[types.SectionType]writer{
			types.SectionHero:         writeHero,
			types.SectionServices:     writeServices,
			types.SectionAbout:        writeAbout,
			types.SectionMenu:         writeMenu,
			types.SectionTestimonials: writeTestimonials,
			types.SectionContact:      writeContact,
			types.SectionCaseStudies:  writeCaseStudies,
			types.SectionTeam:         writeTeam,
			types.SectionFeatured:     writeFeatured,
			types.SectionCategories:   writeCategories,
			types.SectionReservations: writeReservations,
		},
	}
}

// GenerateContent writes one payload per section, keyed by section id
func (g *TemplateGenerator) GenerateContent(ctx context.Context, structure types.SiteStructure, profile types.BusinessProfile) (types.SiteContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fill := newFiller(profile)
	content := make(types.SiteContent, len(structure.Sections))
	for _, section := range structure.Sections {
		write, ok := g.writers[section.Type]
		if !ok {
			write = writeGeneric
		}
		content[section.ID] = write(writeContext{
			section:   section,
			structure: structure,
			profile:   profile,
			industry:  profile.Industry,
			fill:      fill,
		})
	}
	return content, nil
}

// newFiller interpolates {name}, {industry}, {audience} and {description}
func newFiller(profile types.BusinessProfile) *strings.Replacer {
	audience := strings.TrimSpace(profile.TargetAudience)
	if audience == "" {
		audience = "our customers"
	}
	description := sentence(profile.Description)
	if description == "" {
		description = "Quality you can count on"
	}
	return strings.NewReplacer(
		"{name}", strings.TrimSpace(profile.Name),
		"{industry}", strings.TrimSpace(profile.Industry),
		"{audience}", audience,
		"{description}", description,
	)
}

// sentence trims s, drops a trailing period and upper-cases the first letter
func sentence(s string) string {
	s = strings.TrimSuffix(strings.TrimSpace(s), ".")
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// anchor returns the href of the first section of one of the given types, or fallback
func anchor(structure types.SiteStructure, fallback string, sectionTypes ...types.SectionType) string {
	for _, want := range sectionTypes {
		for _, section := range structure.Sections {
			if section.Type == want {
				return "#" + section.ID
			}
		}
	}
	return fallback
}

func fillAll(fill *strings.Replacer, items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = fill.Replace(item)
	}
	return out
}

func writeHero(wc writeContext) types.SectionPayload {
	tmpl, _ := knowledge.HeroCopy(wc.industry)
	hero := types.HeroContent{
		Headline:    wc.fill.Replace(tmpl.Headline),
		Subheadline: wc.fill.Replace(tmpl.Subheadline),
		PrimaryCTA: types.CTA{
			Label: tmpl.PrimaryCTA,
			Href:  anchor(wc.structure, "#", types.SectionReservations, types.SectionContact),
		},
	}
	if tmpl.SecondaryCTA != "" {
		hero.SecondaryCTA = &types.CTA{
			Label: tmpl.SecondaryCTA,
			Href: anchor(wc.structure, "#",
				types.SectionMenu, types.SectionServices, types.SectionFeatured, types.SectionCategories, types.SectionAbout),
		}
	}
	return hero
}

func writeServices(wc writeContext) types.SectionPayload {
	tmpl, _ := knowledge.ServicesCopy(wc.industry)
	items := make([]types.ServiceItem, len(tmpl.Items))
	for i, item := range tmpl.Items {
		items[i] = types.ServiceItem{
			Name:        wc.fill.Replace(item.Name),
			Description: wc.fill.Replace(item.Description),
			Icon:        item.Icon,
		}
	}
	return types.ServicesContent{
		Heading: wc.fill.Replace(tmpl.Heading),
		Intro:   wc.fill.Replace(tmpl.Intro),
		Items:   items,
	}
}

func writeAbout(wc writeContext) types.SectionPayload {
	tmpl, _ := knowledge.AboutCopy(wc.industry)
	return types.AboutContent{
		Story:   wc.fill.Replace(tmpl.Story),
		Mission: wc.fill.Replace(tmpl.Mission),
		Values:  fillAll(wc.fill, tmpl.Values),
		Stats:   append([]types.Stat(nil), tmpl.Stats...),
	}
}

func writeMenu(wc writeContext) types.SectionPayload {
	tmpl, _ := knowledge.MenuCopy(wc.industry)
	categories := make([]types.MenuCategory, len(tmpl.Categories))
	for i, category := range tmpl.Categories {
		categories[i] = types.MenuCategory{
			Name:  category.Name,
			Items: append([]types.MenuItem(nil), category.Items...),
		}
	}
	return types.MenuContent{
		Intro:      wc.fill.Replace(tmpl.Intro),
		Categories: categories,
	}
}

func writeTestimonials(wc writeContext) types.SectionPayload {
	quotes, _ := knowledge.TestimonialsCopy(wc.industry)
	items := make([]types.Testimonial, len(quotes))
	for i, quote := range quotes {
		items[i] = types.Testimonial{
			Quote:  wc.fill.Replace(quote.Quote),
			Author: quote.Author,
			Role:   quote.Role,
		}
	}
	return types.TestimonialsContent{Heading: wc.section.Title, Items: items}
}

func writeContact(wc writeContext) types.SectionPayload {
	tmpl, _ := knowledge.ContactCopy(wc.industry)
	return types.ContactContent{
		Heading:    wc.fill.Replace(tmpl.Heading),
		Message:    wc.fill.Replace(tmpl.Message),
		Hours:      tmpl.Hours,
		FormFields: append([]string(nil), tmpl.FormFields...),
	}
}

func writeCaseStudies(wc writeContext) types.SectionPayload {
	studies, _ := knowledge.CaseStudiesCopy(wc.industry)
	items := make([]types.CaseStudy, len(studies))
	for i, study := range studies {
		items[i] = types.CaseStudy{
			Title:     wc.fill.Replace(study.Title),
			Challenge: wc.fill.Replace(study.Challenge),
			Result:    wc.fill.Replace(study.Result),
		}
	}
	return types.CaseStudiesContent{Heading: wc.section.Title, Items: items}
}

func writeTeam(wc writeContext) types.SectionPayload {
	team, _ := knowledge.TeamCopy(wc.industry)
	members := make([]types.TeamMember, len(team))
	for i, member := range team {
		members[i] = types.TeamMember{
			Name: member.Name,
			Role: member.Role,
			Bio:  wc.fill.Replace(member.Bio),
		}
	}
	return types.TeamContent{
		Intro:   wc.fill.Replace("Meet the people behind {name}."),
		Members: members,
	}
}

func writeFeatured(wc writeContext) types.SectionPayload {
	products, _ := knowledge.FeaturedCopy(wc.industry)
	items := make([]types.Product, len(products))
	for i, product := range products {
		items[i] = types.Product{
			Name:        wc.fill.Replace(product.Name),
			Description: wc.fill.Replace(product.Description),
			Price:       product.Price,
		}
	}
	return types.FeaturedContent{Heading: wc.section.Title, Products: items}
}

func writeCategories(wc writeContext) types.SectionPayload {
	categories, _ := knowledge.CategoriesCopy(wc.industry)
	items := make([]types.Category, len(categories))
	for i, category := range categories {
		items[i] = types.Category{
			Name:        category.Name,
			Description: wc.fill.Replace(category.Description),
		}
	}
	return types.CategoriesContent{Heading: wc.section.Title, Items: items}
}

func writeReservations(wc writeContext) types.SectionPayload {
	tmpl, _ := knowledge.ReservationsCopy(wc.industry)
	return types.ReservationsContent{
		Heading:  wc.fill.Replace(tmpl.Heading),
		Message:  wc.fill.Replace(tmpl.Message),
		CTA:      types.CTA{Label: tmpl.CTA, Href: anchor(wc.structure, "#", types.SectionContact)},
		Policies: append([]string(nil), tmpl.Policies...),
	}
}

// writeGeneric echoes the section title with a sentence about the business
func writeGeneric(wc writeContext) types.SectionPayload {
	return types.GenericContent{
		Title: wc.section.Title,
		Body:  fmt.Sprintf("Find out more about %s from %s.", strings.ToLower(wc.section.Title), strings.TrimSpace(wc.profile.Name)),
	}
}
