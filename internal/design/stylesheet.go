package design

import (
	"fmt"
	"strings"

	"github.com/jonathan/site-generator/internal/types"
)

const resetBlock = `*, *::before, *::after { box-sizing: border-box; }
html, body, h1, h2, h3, h4, p, ul, ol, figure, blockquote { margin: 0; padding: 0; }
ul, ol { list-style: none; }
img { display: block; max-width: 100%; }
a { color: inherit; }
button, input, textarea, select { font: inherit; }
`

const baseRules = `body { font-family: var(--font-body); font-size: var(--text-base); line-height: var(--leading-normal); color: var(--color-neutral-900); background: var(--color-neutral-50); }
h1, h2, h3, h4 { font-family: var(--font-heading); line-height: var(--leading-tight); font-weight: var(--weight-bold); }
h1 { font-size: var(--text-4xl); }
h2 { font-size: var(--text-3xl); margin-bottom: var(--space-6); }
h3 { font-size: var(--text-xl); margin-bottom: var(--space-2); }
p { margin-bottom: var(--space-4); }
code, pre { font-family: var(--font-mono); }
a:hover { color: var(--color-primary); }
`

// layoutUtilities covers the named layouts the architect assigns to sections
const layoutUtilities = `.container { width: 100%; margin: 0 auto; padding: 0 var(--space-4); }
.section { padding: var(--space-16) var(--space-4); animation: slide-up 500ms ease-out both; }
.site-nav { display: flex; flex-wrap: wrap; gap: var(--space-4); padding: var(--space-4); background: var(--color-secondary); }
.site-nav a { color: #ffffff; text-decoration: none; }
.site-footer { padding: var(--space-8) var(--space-4); text-align: center; color: var(--color-neutral-500); }
.layout-full-bleed { padding: var(--space-24) var(--space-4); text-align: center; background: var(--color-primary); color: #ffffff; }
.layout-centered { text-align: center; }
.layout-stacked > * + * { margin-top: var(--space-6); }
.layout-grid-3, .layout-grid-4, .layout-two-column, .layout-split, .layout-carousel { display: grid; gap: var(--space-6); grid-template-columns: 1fr; }
.layout-carousel { grid-auto-flow: column; grid-auto-columns: 85%; overflow-x: auto; }
`

// responsiveRules holds the per-breakpoint rules beyond the container width
var responsiveRules = map[string]string{
	"sm": ".layout-grid-4 { grid-template-columns: repeat(2, 1fr); }",
	"md": ".layout-grid-3, .layout-two-column, .layout-split { grid-template-columns: repeat(2, 1fr); }\n" +
		"  .layout-carousel { grid-auto-columns: 45%; }",
	"lg": ".layout-grid-3 { grid-template-columns: repeat(3, 1fr); }\n" +
		"  .layout-grid-4 { grid-template-columns: repeat(4, 1fr); }\n" +
		"  .layout-carousel { grid-auto-columns: 30%; }",
	"xl": "h1 { font-size: var(--text-5xl); }",
}

// componentSelectors maps each component to its class and interactive-state selector
var componentSelectors = []struct {
	class       string
	interactive string
	style       func(types.ComponentStyles) types.ComponentStyle
}{
	{".btn", ".btn:hover, .btn:focus-visible", func(c types.ComponentStyles) types.ComponentStyle { return c.Button }},
	{".card", ".card:hover", func(c types.ComponentStyles) types.ComponentStyle { return c.Card }},
	{".input", ".input:focus", func(c types.ComponentStyles) types.ComponentStyle { return c.Input }},
}

// RenderStylesheet serializes ds into a stylesheet. Blocks are emitted in a fixed order and scales
// in slice order, so equal inputs produce byte-identical output.
func RenderStylesheet(ds types.DesignSystem) string {
	var b strings.Builder

	b.WriteString("/* reset */\n")
	b.WriteString(resetBlock)

	b.WriteString("\n/* tokens */\n:root {\n")
	if ds.ColorPalette != nil {
		for _, token := range ds.ColorPalette.Named() {
			writeProperty(&b, "color-"+token.Name, token.Value)
		}
		for _, token := range ds.ColorPalette.Neutral {
			writeProperty(&b, "color-neutral-"+token.Name, token.Value)
		}
	}
	writeProperty(&b, "font-heading", ds.Typography.Families.Heading)
	writeProperty(&b, "font-body", ds.Typography.Families.Body)
	writeProperty(&b, "font-mono", ds.Typography.Families.Mono)
	writeTokens(&b, "text-", ds.Typography.Sizes)
	writeTokens(&b, "weight-", ds.Typography.Weights)
	writeTokens(&b, "leading-", ds.Typography.LineHeights)
	writeTokens(&b, "space-", ds.Spacing)
	b.WriteString("}\n")

	b.WriteString("\n/* base */\n")
	b.WriteString(baseRules)

	b.WriteString("\n/* animations */\n")
	for _, anim := range ds.Animations {
		fmt.Fprintf(&b, "@keyframes %s { %s }\n", anim.Name, anim.Keyframes)
		fmt.Fprintf(&b, ".animate-%s { animation: %s %s %s both; }\n", anim.Name, anim.Name, anim.Duration, anim.Easing)
	}

	b.WriteString("\n/* components */\n")
	for _, component := range componentSelectors {
		style := component.style(ds.ComponentStyles)
		fmt.Fprintf(&b, "%s { %s }\n", component.class, style.Base)
		fmt.Fprintf(&b, "%s { %s }\n", component.interactive, style.Interactive)
	}

	b.WriteString("\n/* layout */\n")
	b.WriteString(layoutUtilities)

	b.WriteString("\n/* responsive */\n")
	for _, bp := range ds.Breakpoints {
		fmt.Fprintf(&b, "@media (min-width: %s) {\n", bp.Value)
		fmt.Fprintf(&b, "  .container { max-width: %s; }\n", bp.Value)
		if rules, ok := responsiveRules[bp.Name]; ok {
			fmt.Fprintf(&b, "  %s\n", rules)
		}
		b.WriteString("}\n")
	}

	return b.String()
}

func writeProperty(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "  --%s: %s;\n", name, value)
}

func writeTokens(b *strings.Builder, prefix string, tokens []types.Token) {
	for _, token := range tokens {
		writeProperty(b, prefix+token.Name, token.Value)
	}
}
