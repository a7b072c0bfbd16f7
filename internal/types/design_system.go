// Package types provides type definitions for structured data used throughout the site generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Token is a named design value. Scales are ordered slices of tokens.
type Token struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ColorPalette holds the semantic colors and a 10-step neutral ramp
type ColorPalette struct {
	Primary   string  `json:"primary"`
	Secondary string  `json:"secondary"`
	Accent    string  `json:"accent"`
	Success   string  `json:"success"`
	Warning   string  `json:"warning"`
	Error     string  `json:"error"`
	Info      string  `json:"info"`
	Neutral   []Token `json:"neutral"`
}

// Named returns the semantic colors in their canonical order
func (p *ColorPalette) Named() []Token {
	return []Token{
		{Name: "primary", Value: p.Primary},
		{Name: "secondary", Value: p.Secondary},
		{Name: "accent", Value: p.Accent},
		{Name: "success", Value: p.Success},
		{Name: "warning", Value: p.Warning},
		{Name: "error", Value: p.Error},
		{Name: "info", Value: p.Info},
	}
}

// FontFamilies holds the font stacks per role
type FontFamilies struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Mono    string `json:"mono"`
}

// Typography holds font stacks and the type scales
type Typography struct {
	Families    FontFamilies `json:"families"`
	Sizes       []Token      `json:"sizes"`
	Weights     []Token      `json:"weights"`
	LineHeights []Token      `json:"line_heights"`
}

// ComponentStyle is a textual rule set with its interactive-state variant
type ComponentStyle struct {
	Base        string `json:"base"`
	Interactive string `json:"interactive"`
}

// ComponentStyles holds the rules for the styled primitives
type ComponentStyles struct {
	Button ComponentStyle `json:"button"`
	Card   ComponentStyle `json:"card"`
	Input  ComponentStyle `json:"input"`
}

// Animation is a named keyframe effect
type Animation struct {
	Name      string `json:"name"`
	Keyframes string `json:"keyframes"`
	Duration  string `json:"duration"`
	Easing    string `json:"easing"`
}

// DesignSystem is the complete set of visual tokens for a generated site
type DesignSystem struct {
	ColorPalette    *ColorPalette   `json:"color_palette,omitempty"`
	Typography      Typography      `json:"typography"`
	Spacing         []Token         `json:"spacing"`
	ComponentStyles ComponentStyles `json:"component_styles"`
	Animations      []Animation     `json:"animations"`
	Breakpoints     []Token         `json:"breakpoints"`
}
