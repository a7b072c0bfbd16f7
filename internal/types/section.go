// Package types provides type definitions for structured data used throughout the site generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
)

// SectionType identifies the kind of block a section renders as.
// Values outside the known set are kept verbatim and resolve to the generic fallback.
type SectionType string

// Known section types
const (
	SectionHero         SectionType = "hero"
	SectionServices     SectionType = "services"
	SectionAbout        SectionType = "about"
	SectionMenu         SectionType = "menu"
	SectionTestimonials SectionType = "testimonials"
	SectionContact      SectionType = "contact"
	SectionCaseStudies  SectionType = "case-studies"
	SectionTeam         SectionType = "team"
	SectionFeatured     SectionType = "featured"
	SectionCategories   SectionType = "categories"
	SectionReservations SectionType = "reservations"

	// SectionGeneric is the payload kind used for unknown section types
	SectionGeneric SectionType = "generic"
)

// KnownSectionTypes lists every section type with a dedicated template, writer and renderer
var KnownSectionTypes = []SectionType{
	SectionHero,
	SectionServices,
	SectionAbout,
	SectionMenu,
	SectionTestimonials,
	SectionContact,
	SectionCaseStudies,
	SectionTeam,
	SectionFeatured,
	SectionCategories,
	SectionReservations,
}

// IsKnown reports whether t has a dedicated payload variant
func (t SectionType) IsKnown() bool {
	for _, known := range KnownSectionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// SiteSection is one named, typed, prioritized block of a generated site
type SiteSection struct {
	ID       string         `json:"id"`
	Type     SectionType    `json:"type"`
	Title    string         `json:"title"`
	Priority int            `json:"priority"`
	Layout   string         `json:"layout"`
	Content  SectionPayload `json:"-"` // placeholder attached at structure-generation time
}

// siteSectionJSON is the wire form of SiteSection with an enveloped payload
type siteSectionJSON struct {
	ID       string          `json:"id"`
	Type     SectionType     `json:"type"`
	Title    string          `json:"title"`
	Priority int             `json:"priority"`
	Layout   string          `json:"layout"`
	Content  json.RawMessage `json:"content,omitempty"`
}

// MarshalJSON encodes the section with its placeholder payload as a typed envelope
func (s SiteSection) MarshalJSON() ([]byte, error) {
	wire := siteSectionJSON{
		ID:       s.ID,
		Type:     s.Type,
		Title:    s.Title,
		Priority: s.Priority,
		Layout:   s.Layout,
	}
	if s.Content != nil {
		raw, err := MarshalPayload(s.Content)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal content of section %s: %w", s.ID, err)
		}
		wire.Content = raw
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes a section and its enveloped payload
func (s *SiteSection) UnmarshalJSON(data []byte) error {
	var wire siteSectionJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*s = SiteSection{
		ID:       wire.ID,
		Type:     wire.Type,
		Title:    wire.Title,
		Priority: wire.Priority,
		Layout:   wire.Layout,
	}
	if len(wire.Content) > 0 && string(wire.Content) != "null" {
		payload, err := UnmarshalPayload(wire.Content)
		if err != nil {
			return fmt.Errorf("failed to unmarshal content of section %s: %w", wire.ID, err)
		}
		s.Content = payload
	}
	return nil
}
