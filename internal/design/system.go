// Package design builds the design system of a site and serializes it to a stylesheet.
package design

import (
	"github.com/jonathan/site-generator/internal/knowledge"
	"github.com/jonathan/site-generator/internal/types"
)

var neutralRamp = []types.Token{
	{Name: "50", Value: "#f9fafb"},
	{Name: "100", Value: "#f3f4f6"},
	{Name: "200", Value: "#e5e7eb"},
	{Name: "300", Value: "#d1d5db"},
	{Name: "400", Value: "#9ca3af"},
	{Name: "500", Value: "#6b7280"},
	{Name: "600", Value: "#4b5563"},
	{Name: "700", Value: "#374151"},
	{Name: "800", Value: "#1f2937"},
	{Name: "900", Value: "#111827"},
}

var fontSizes = []types.Token{
	{Name: "xs", Value: "0.75rem"},
	{Name: "sm", Value: "0.875rem"},
	{Name: "base", Value: "1rem"},
	{Name: "lg", Value: "1.125rem"},
	{Name: "xl", Value: "1.25rem"},
	{Name: "2xl", Value: "1.5rem"},
	{Name: "3xl", Value: "1.875rem"},
	{Name: "4xl", Value: "2.25rem"},
	{Name: "5xl", Value: "3rem"},
}

var fontWeights = []types.Token{
	{Name: "light", Value: "300"},
	{Name: "normal", Value: "400"},
	{Name: "medium", Value: "500"},
	{Name: "semibold", Value: "600"},
	{Name: "bold", Value: "700"},
}

var lineHeights = []types.Token{
	{Name: "tight", Value: "1.25"},
	{Name: "normal", Value: "1.5"},
	{Name: "relaxed", Value: "1.75"},
}

var spacingScale = []types.Token{
	{Name: "0", Value: "0"},
	{Name: "1", Value: "0.25rem"},
	{Name: "2", Value: "0.5rem"},
	{Name: "3", Value: "0.75rem"},
	{Name: "4", Value: "1rem"},
	{Name: "6", Value: "1.5rem"},
	{Name: "8", Value: "2rem"},
	{Name: "12", Value: "3rem"},
	{Name: "16", Value: "4rem"},
	{Name: "24", Value: "6rem"},
}

var componentStyles = types.ComponentStyles{
	Button: types.ComponentStyle{
		Base: "display: inline-block; padding: var(--space-3) var(--space-6); border: none; border-radius: 0.5rem; " +
			"background: var(--color-primary); color: #ffffff; font-weight: var(--weight-semibold); " +
			"text-decoration: none; cursor: pointer; transition: transform 150ms ease, box-shadow 150ms ease;",
		Interactive: "transform: translateY(-1px); box-shadow: 0 4px 12px rgba(0, 0, 0, 0.15);",
	},
	Card: types.ComponentStyle{
		Base: "padding: var(--space-6); border: 1px solid var(--color-neutral-200); border-radius: 0.75rem; " +
			"background: #ffffff; transition: box-shadow 200ms ease;",
		Interactive: "box-shadow: 0 8px 24px rgba(0, 0, 0, 0.08);",
	},
	Input: types.ComponentStyle{
		Base: "width: 100%; padding: var(--space-2) var(--space-3); border: 1px solid var(--color-neutral-300); " +
			"border-radius: 0.375rem; font: inherit;",
		Interactive: "outline: none; border-color: var(--color-primary); box-shadow: 0 0 0 3px var(--color-neutral-100);",
	},
}

var animations = []types.Animation{
	{
		Name:      "fade-in",
		Keyframes: "from { opacity: 0; } to { opacity: 1; }",
		Duration:  "400ms",
		Easing:    "ease-out",
	},
	{
		Name:      "slide-up",
		Keyframes: "from { opacity: 0; transform: translateY(16px); } to { opacity: 1; transform: translateY(0); }",
		Duration:  "500ms",
		Easing:    "ease-out",
	},
	{
		Name:      "scale-in",
		Keyframes: "from { opacity: 0; transform: scale(0.96); } to { opacity: 1; transform: scale(1); }",
		Duration:  "300ms",
		Easing:    "ease-in-out",
	},
}

var breakpoints = []types.Token{
	{Name: "sm", Value: "640px"},
	{Name: "md", Value: "768px"},
	{Name: "lg", Value: "1024px"},
	{Name: "xl", Value: "1280px"},
}

// CreateDesignSystem returns the design system for industry. Palette and fonts come from the
// knowledge tables with default fallback; every other scale is constant.
// Personality tags are accepted but do not influence the result.
func CreateDesignSystem(businessName, industry string, personality ...string) types.DesignSystem {
	colors, _ := knowledge.Palette(industry)
	fontStacks, _ := knowledge.Fonts(industry)

	return types.DesignSystem{
		ColorPalette: &types.ColorPalette{
			Primary:   colors.Primary,
			Secondary: colors.Secondary,
			Accent:    colors.Accent,
			Success:   colors.Success,
			Warning:   colors.Warning,
			Error:     colors.Error,
			Info:      colors.Info,
			Neutral:   cloneTokens(neutralRamp),
		},
		Typography: types.Typography{
			Families: types.FontFamilies{
				Heading: fontStacks.Heading,
				Body:    fontStacks.Body,
				Mono:    fontStacks.Mono,
			},
			Sizes:       cloneTokens(fontSizes),
			Weights:     cloneTokens(fontWeights),
			LineHeights: cloneTokens(lineHeights),
		},
		Spacing:         cloneTokens(spacingScale),
		ComponentStyles: componentStyles,
		Animations:      append([]types.Animation(nil), animations...),
		Breakpoints:     cloneTokens(breakpoints),
	}
}

func cloneTokens(tokens []types.Token) []types.Token {
	return append([]types.Token(nil), tokens...)
}
