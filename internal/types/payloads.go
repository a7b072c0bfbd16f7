// Package types provides type definitions for structured data used throughout the site generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
)

// SectionPayload is the textual content of one section.
// Each variant corresponds to exactly one SectionType.
type SectionPayload interface {
	Kind() SectionType
}

// CTA is a call-to-action link
type CTA struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// HeroContent is the payload of a hero section
type HeroContent struct {
	Headline     string `json:"headline"`
	Subheadline  string `json:"subheadline"`
	PrimaryCTA   CTA    `json:"primary_cta"`
	SecondaryCTA *CTA   `json:"secondary_cta,omitempty"`
}

// ServiceItem is a single offered service
type ServiceItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// ServicesContent is the payload of a services section
type ServicesContent struct {
	Heading string        `json:"heading"`
	Intro   string        `json:"intro"`
	Items   []ServiceItem `json:"items"`
}

// Stat is a labelled headline number
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// AboutContent is the payload of an about section
type AboutContent struct {
	Story   string   `json:"story"`
	Mission string   `json:"mission"`
	Values  []string `json:"values"`
	Stats   []Stat   `json:"stats"`
}

// MenuItem is a single dish or drink
type MenuItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// MenuCategory groups menu items
type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// MenuContent is the payload of a menu section
type MenuContent struct {
	Intro      string         `json:"intro"`
	Categories []MenuCategory `json:"categories"`
}

// Testimonial is a customer quote
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role,omitempty"`
}

// TestimonialsContent is the payload of a testimonials section
type TestimonialsContent struct {
	Heading string        `json:"heading"`
	Items   []Testimonial `json:"items"`
}

// ContactContent is the payload of a contact section
type ContactContent struct {
	Heading    string   `json:"heading"`
	Message    string   `json:"message"`
	Email      string   `json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Address    string   `json:"address,omitempty"`
	Hours      string   `json:"hours,omitempty"`
	FormFields []string `json:"form_fields"`
}

// CaseStudy describes one client engagement
type CaseStudy struct {
	Title     string `json:"title"`
	Challenge string `json:"challenge"`
	Result    string `json:"result"`
}

// CaseStudiesContent is the payload of a case-studies section
type CaseStudiesContent struct {
	Heading string      `json:"heading"`
	Items   []CaseStudy `json:"items"`
}

// TeamMember is a person shown in a team section
type TeamMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Bio  string `json:"bio"`
}

// TeamContent is the payload of a team section
type TeamContent struct {
	Intro   string       `json:"intro"`
	Members []TeamMember `json:"members"`
}

// Product is a featured catalogue entry
type Product struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// FeaturedContent is the payload of a featured-products section
type FeaturedContent struct {
	Heading  string    `json:"heading"`
	Products []Product `json:"products"`
}

// Category is a browsable catalogue category
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoriesContent is the payload of a categories section
type CategoriesContent struct {
	Heading string     `json:"heading"`
	Items   []Category `json:"items"`
}

// ReservationsContent is the payload of a reservations section
type ReservationsContent struct {
	Heading  string   `json:"heading"`
	Message  string   `json:"message"`
	CTA      CTA      `json:"cta"`
	Policies []string `json:"policies"`
}

// GenericContent is the payload used for section types without a dedicated variant
type GenericContent struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (HeroContent) Kind() SectionType         { return SectionHero }
func (ServicesContent) Kind() SectionType     { return SectionServices }
func (AboutContent) Kind() SectionType        { return SectionAbout }
func (MenuContent) Kind() SectionType         { return SectionMenu }
func (TestimonialsContent) Kind() SectionType { return SectionTestimonials }
func (ContactContent) Kind() SectionType      { return SectionContact }
func (CaseStudiesContent) Kind() SectionType  { return SectionCaseStudies }
func (TeamContent) Kind() SectionType         { return SectionTeam }
func (FeaturedContent) Kind() SectionType     { return SectionFeatured }
func (CategoriesContent) Kind() SectionType   { return SectionCategories }
func (ReservationsContent) Kind() SectionType { return SectionReservations }
func (GenericContent) Kind() SectionType      { return SectionGeneric }

// NewPayload returns a zero pointer value of the payload variant for kind.
// Unknown kinds yield a *GenericContent.
func NewPayload(kind SectionType) any {
	switch kind {
	case SectionHero:
		return &HeroContent{}
	case SectionServices:
		return &ServicesContent{}
	case SectionAbout:
		return &AboutContent{}
	case SectionMenu:
		return &MenuContent{}
	case SectionTestimonials:
		return &TestimonialsContent{}
	case SectionContact:
		return &ContactContent{}
	case SectionCaseStudies:
		return &CaseStudiesContent{}
	case SectionTeam:
		return &TeamContent{}
	case SectionFeatured:
		return &FeaturedContent{}
	case SectionCategories:
		return &CategoriesContent{}
	case SectionReservations:
		return &ReservationsContent{}
	default:
		return &GenericContent{}
	}
}

// DecodePayload decodes raw JSON data into the payload variant for kind
func DecodePayload(kind SectionType, data []byte) (SectionPayload, error) {
	target := NewPayload(kind)
	if err := json.Unmarshal(data, target); err != nil {
		return nil, fmt.Errorf("failed to decode %s payload: %w", kind, err)
	}
	return deref(target), nil
}

// deref converts the pointer returned by NewPayload back to a value payload
func deref(target any) SectionPayload {
	switch p := target.(type) {
	case *HeroContent:
		return *p
	case *ServicesContent:
		return *p
	case *AboutContent:
		return *p
	case *MenuContent:
		return *p
	case *TestimonialsContent:
		return *p
	case *ContactContent:
		return *p
	case *CaseStudiesContent:
		return *p
	case *TeamContent:
		return *p
	case *FeaturedContent:
		return *p
	case *CategoriesContent:
		return *p
	case *ReservationsContent:
		return *p
	case *GenericContent:
		return *p
	default:
		return nil
	}
}

// payloadEnvelope tags a payload with its kind on the wire
type payloadEnvelope struct {
	Type SectionType     `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MarshalPayload encodes a payload as {"type": kind, "data": {...}}
func MarshalPayload(p SectionPayload) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return json.Marshal(payloadEnvelope{Type: p.Kind(), Data: data})
}

// UnmarshalPayload decodes an enveloped payload
func UnmarshalPayload(raw []byte) (SectionPayload, error) {
	var env payloadEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to decode payload envelope: %w", err)
	}
	if env.Type == "" {
		return nil, fmt.Errorf("payload envelope has no type")
	}
	return DecodePayload(env.Type, env.Data)
}
