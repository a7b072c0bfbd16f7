// Package types provides type definitions for structured data used throughout the site generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

// IndustryInsights summarises what a business in a given industry typically needs
type IndustryInsights struct {
	KeyFeatures           []string `json:"key_features"`
	UserJourneySteps      []string `json:"user_journey_steps"`
	CompetitiveAdvantages []string `json:"competitive_advantages"`
	RequiredSectionTypes  []string `json:"required_section_types"`
	BusinessGoals         []string `json:"business_goals"`
	TargetPersonas        []string `json:"target_personas"`
}
