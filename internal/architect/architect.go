// Package architect derives industry insights and the ordered section structure of a site.
package architect

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/jonathan/site-generator/internal/knowledge"
	"github.com/jonathan/site-generator/internal/types"
)

// AnalyzeBusiness returns the insights for the profile's industry, falling back to the default
// entry. Requested features and the target audience are folded into the result.
func AnalyzeBusiness(profile types.BusinessProfile) types.IndustryInsights {
	entry, _ := knowledge.Profile(profile.Industry)

	insights := types.IndustryInsights{
		KeyFeatures:           slices.Clone(entry.KeyFeatures),
		UserJourneySteps:      slices.Clone(entry.UserJourney),
		CompetitiveAdvantages: slices.Clone(entry.CompetitiveAdvantages),
		RequiredSectionTypes:  slices.Clone(entry.RequiredSections),
		BusinessGoals:         slices.Clone(entry.BusinessGoals),
		TargetPersonas:        slices.Clone(entry.TargetPersonas),
	}

	for _, feature := range profile.RequestedFeatures {
		feature = strings.TrimSpace(feature)
		if feature == "" {
			continue
		}
		if !containsFold(insights.KeyFeatures, feature) {
			insights.KeyFeatures = append(insights.KeyFeatures, feature)
		}
		sectionType := types.SectionType(knowledge.Normalize(feature))
		if sectionType.IsKnown() && !slices.Contains(insights.RequiredSectionTypes, string(sectionType)) {
			insights.RequiredSectionTypes = append(insights.RequiredSectionTypes, string(sectionType))
		}
	}

	if audience := strings.TrimSpace(profile.TargetAudience); audience != "" && !containsFold(insights.TargetPersonas, audience) {
		insights.TargetPersonas = append([]string{audience}, insights.TargetPersonas...)
	}

	return insights
}

// GenerateStructure maps the required section types of insights onto sections and derives
// navigation and metadata from them
func GenerateStructure(businessName, industry string, insights types.IndustryInsights) types.SiteStructure {
	sections := make([]types.SiteSection, 0, len(insights.RequiredSectionTypes))
	used := make(map[string]int)

	for _, raw := range insights.RequiredSectionTypes {
		sectionType := types.SectionType(raw)
		tmpl := templateFor(sectionType)
		sections = append(sections, types.SiteSection{
			ID:       uniqueID(slugify(raw), used),
			Type:     sectionType,
			Title:    tmpl.Title,
			Priority: tmpl.Priority,
			Layout:   tmpl.Layout,
			Content:  tmpl.Placeholder(tmpl.Title),
		})
	}

	return types.SiteStructure{
		BusinessName: businessName,
		Industry:     industry,
		Sections:     sections,
		Navigation:   BuildNavigation(sections),
		Metadata:     buildMetadata(businessName, industry, insights),
	}
}

// BuildNavigation lists sections with priority at most NavigationMaxPriority, stable-sorted by priority
func BuildNavigation(sections []types.SiteSection) []types.NavItem {
	visible := make([]types.SiteSection, 0, len(sections))
	for _, section := range sections {
		if section.Priority <= NavigationMaxPriority {
			visible = append(visible, section)
		}
	}
	slices.SortStableFunc(visible, func(a, b types.SiteSection) int {
		return a.Priority - b.Priority
	})

	nav := make([]types.NavItem, 0, len(visible))
	for _, section := range visible {
		nav = append(nav, types.NavItem{Label: section.Title, Href: "#" + section.ID})
	}
	return nav
}

func buildMetadata(businessName, industry string, insights types.IndustryInsights) types.SiteMetadata {
	entry, _ := knowledge.Profile(industry)

	keywords := []string{businessName, industry}
	keywords = append(keywords, entry.Keywords...)

	description := businessName
	if n := min(len(insights.KeyFeatures), 3); n > 0 {
		description = fmt.Sprintf("%s: %s.", businessName, strings.Join(insights.KeyFeatures[:n], ", "))
	}

	return types.SiteMetadata{
		Title:       fmt.Sprintf("%s | %s", businessName, entry.Tagline),
		Description: description,
		Keywords:    keywords,
	}
}

// slugify lower-cases s and collapses every run of non-alphanumerics into a single hyphen
func slugify(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingDash = false
			continue
		}
		pendingDash = true
	}
	if b.Len() == 0 {
		return "section"
	}
	return b.String()
}

// uniqueID returns base, or base suffixed -2, -3... if it was already handed out
func uniqueID(base string, used map[string]int) string {
	used[base]++
	if used[base] == 1 {
		return base
	}
	for {
		candidate := fmt.Sprintf("%s-%d", base, used[base])
		if used[candidate] == 0 {
			used[candidate] = 1
			return candidate
		}
		used[base]++
	}
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
