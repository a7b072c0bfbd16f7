// Package types provides type definitions for structured data used throughout the site generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

// NavItem is one entry of the site navigation
type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// SiteMetadata holds document-level metadata
type SiteMetadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// SiteStructure is the ordered section layout of a site.
// Navigation is derived from Sections and never edited independently.
type SiteStructure struct {
	BusinessName string        `json:"business_name"`
	Industry     string        `json:"industry"`
	Sections     []SiteSection `json:"sections"`
	Navigation   []NavItem     `json:"navigation"`
	Metadata     SiteMetadata  `json:"metadata"`
}

// SectionByID returns the section with the given id
func (s *SiteStructure) SectionByID(id string) (SiteSection, bool) {
	for _, section := range s.Sections {
		if section.ID == id {
			return section, true
		}
	}
	return SiteSection{}, false
}
