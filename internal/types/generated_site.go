// Package types provides type definitions for structured data used throughout the site generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// GenerationMetadata records how a site was produced
type GenerationMetadata struct {
	GeneratedAt time.Time        `json:"generated_at"`
	StageNames  []string         `json:"stage_names"`
	Insights    IndustryInsights `json:"insights"`
}

// GeneratedSite is the terminal artifact of a generation run
type GeneratedSite struct {
	Document           string             `json:"document"`
	Stylesheet         string             `json:"stylesheet"`
	Structure          SiteStructure      `json:"structure"`
	DesignSystem       DesignSystem       `json:"design_system"`
	Content            SiteContent        `json:"content"`
	GenerationMetadata GenerationMetadata `json:"generation_metadata"`
}

// ValidationReport is the advisory health check of a GeneratedSite
type ValidationReport struct {
	IsValid bool     `json:"is_valid"`
	Issues  []string `json:"issues"`
	Score   int      `json:"score"`
}
