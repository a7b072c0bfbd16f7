package validation

import (
	"unicode/utf8"

	"github.com/jonathan/site-generator/internal/types"
)

// Thresholds of the structural checks
const (
	MinDocumentLength   = 100
	MinStylesheetLength = 50
	MinSections         = 3
	MaxScore            = 100
)

// Issue messages reported by Validate
const (
	IssueDocumentTooShort   = "document is too short (under 100 characters)"
	IssueStylesheetTooShort = "stylesheet is too short (under 50 characters)"
	IssueTooFewSections     = "site has fewer than 3 sections"
	IssueContentEmpty       = "site content is empty"
	IssuePaletteMissing     = "design system has no color palette"
)

// check is one structural completeness test and the points it costs when it fails
type check struct {
	issue   string
	penalty int
	failed  func(site *types.GeneratedSite) bool
}

var checks = []check{
	{
		issue:   IssueDocumentTooShort,
		penalty: 20,
		failed: func(site *types.GeneratedSite) bool {
			return site == nil || utf8.RuneCountInString(site.Document) < MinDocumentLength
		},
	},
	{
		issue:   IssueStylesheetTooShort,
		penalty: 15,
		failed: func(site *types.GeneratedSite) bool {
			return site == nil || utf8.RuneCountInString(site.Stylesheet) < MinStylesheetLength
		},
	},
	{
		issue:   IssueTooFewSections,
		penalty: 25,
		failed: func(site *types.GeneratedSite) bool {
			return site == nil || len(site.Structure.Sections) < MinSections
		},
	},
	{
		issue:   IssueContentEmpty,
		penalty: 30,
		failed: func(site *types.GeneratedSite) bool {
			return site == nil || len(site.Content) == 0
		},
	},
	{
		issue:   IssuePaletteMissing,
		penalty: 10,
		failed: func(site *types.GeneratedSite) bool {
			return site == nil || site.DesignSystem.ColorPalette == nil
		},
	},
}

// Validate scores site against the structural checks. The score starts at MaxScore, loses
// each failed check's penalty and never drops below zero. The site is valid only if no
// check failed, whatever the score. A nil site fails every check.
func Validate(site *types.GeneratedSite) types.ValidationReport {
	score := MaxScore
	issues := []string{}
	for _, c := range checks {
		if c.failed(site) {
			issues = append(issues, c.issue)
			score -= c.penalty
		}
	}
	if score < 0 {
		score = 0
	}
	return types.ValidationReport{
		IsValid: len(issues) == 0,
		Issues:  issues,
		Score:   score,
	}
}
