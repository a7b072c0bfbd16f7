package rendering

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/site-generator/internal/architect"
	"github.com/jonathan/site-generator/internal/copywriting"
	"github.com/jonathan/site-generator/internal/design"
	"github.com/jonathan/site-generator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lunaBistroInputs(t *testing.T) (types.SiteStructure, types.DesignSystem, types.SiteContent) {
	t.Helper()
	profile := types.BusinessProfile{
		Name:           "Luna Bistro",
		Industry:       "restaurant",
		Description:    "family-owned Italian restaurant",
		TargetAudience: "local families",
	}
	structure := architect.GenerateStructure(profile.Name, profile.Industry, architect.AnalyzeBusiness(profile))
	content, err := copywriting.NewTemplateGenerator().GenerateContent(context.Background(), structure, profile)
	require.NoError(t, err)
	return structure, design.CreateDesignSystem(profile.Name, profile.Industry), content
}

func TestBuildDocument_LunaBistro(t *testing.T) {
	structure, ds, content := lunaBistroInputs(t)

	result, err := BuildDocument(structure, ds, content)
	require.NoError(t, err)

	assert.Equal(t, []string{"hero", "menu", "about", "reservations", "contact"}, result.SectionsRendered)

	outline, err := Outline(result.Document)
	require.NoError(t, err)
	assert.Equal(t, result.SectionsRendered, outline)

	targets, err := NavTargets(result.Document)
	require.NoError(t, err)
	assert.Equal(t, []string{"#hero", "#menu", "#about", "#reservations"}, targets)

	hero, found, err := SectionText(result.Document, "hero")
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, hero, "Welcome to Luna Bistro")

	assert.Contains(t, result.Document, `<footer class="site-footer">`)
	assert.Contains(t, result.Document, "Luna Bistro. All rights reserved.")
	assert.NotContains(t, result.Document, "<style")
	assert.NotContains(t, result.Document, "style=")
}

func TestBuildDocument_StructureOrderNotPriorityOrder(t *testing.T) {
	structure := types.SiteStructure{
		BusinessName: "Order Co",
		Sections: []types.SiteSection{
			{ID: "contact", Type: types.SectionContact, Title: "Contact", Priority: 5, Content: types.ContactContent{Heading: "Contact"}},
			{ID: "hero", Type: types.SectionHero, Title: "Welcome", Priority: 1, Content: types.HeroContent{Headline: "Hi"}},
		},
	}
	structure.Navigation = architect.BuildNavigation(structure.Sections)

	result, err := BuildDocument(structure, types.DesignSystem{}, types.SiteContent{})
	require.NoError(t, err)

	assert.Equal(t, []string{"contact", "hero"}, result.SectionsRendered)
	outline, err := Outline(result.Document)
	require.NoError(t, err)
	assert.Equal(t, []string{"contact", "hero"}, outline)
}

func TestBuildDocument_MissingContentUsesPlaceholder(t *testing.T) {
	structure, ds, content := lunaBistroInputs(t)
	delete(content, "hero")

	result, err := BuildDocument(structure, ds, content)
	require.NoError(t, err)

	text, found, err := SectionText(result.Document, "hero")
	require.NoError(t, err)
	require.True(t, found)
	// placeholder headline is the section title
	assert.Contains(t, text, "Welcome")
	assert.NotContains(t, text, "Luna Bistro")
}

func TestBuildDocument_NilContentMap(t *testing.T) {
	structure, ds, _ := lunaBistroInputs(t)

	result, err := BuildDocument(structure, ds, nil)
	require.NoError(t, err)
	assert.Len(t, result.SectionsRendered, len(structure.Sections))
}

func TestBuildDocument_UnknownTypeUsesGenericRenderer(t *testing.T) {
	structure := types.SiteStructure{
		BusinessName: "X",
		Sections: []types.SiteSection{
			{ID: "pricing", Type: "pricing", Title: "pricing", Priority: 6, Content: types.GenericContent{Title: "pricing"}},
		},
	}
	content := types.SiteContent{"pricing": types.GenericContent{Title: "Plans", Body: "Three tiers <b>for</b> everyone"}}

	result, err := BuildDocument(structure, types.DesignSystem{}, content)
	require.NoError(t, err)

	assert.Contains(t, result.Document, `<h2>Plans</h2>`)
	assert.Contains(t, result.Document, "Three tiers &lt;b&gt;for&lt;/b&gt; everyone")
	assert.Contains(t, result.Document, `data-section-type="pricing"`)
}

func TestBuildDocument_MismatchedPayloadUsesGenericRenderer(t *testing.T) {
	structure := types.SiteStructure{
		BusinessName: "X",
		Sections: []types.SiteSection{
			{ID: "hero", Type: types.SectionHero, Title: "Welcome", Priority: 1},
		},
	}
	content := types.SiteContent{"hero": types.MenuContent{Intro: "Seasonal dishes"}}

	result, err := BuildDocument(structure, types.DesignSystem{}, content)
	require.NoError(t, err)

	assert.Contains(t, result.Document, `<pre class="section-text">`)
	assert.Contains(t, result.Document, "Seasonal dishes")
	assert.NotContains(t, result.Document, "<h1>")
}

func TestBuildDocument_EscapesContent(t *testing.T) {
	structure := types.SiteStructure{
		BusinessName: `<script>alert("x")</script>`,
		Sections: []types.SiteSection{
			{ID: "hero", Type: types.SectionHero, Title: "Welcome", Priority: 1},
		},
	}
	content := types.SiteContent{"hero": types.HeroContent{
		Headline:   "<img src=x onerror=alert(1)>",
		PrimaryCTA: types.CTA{Label: "Go", Href: "javascript:alert(1)"},
	}}

	result, err := BuildDocument(structure, types.DesignSystem{}, content)
	require.NoError(t, err)

	assert.NotContains(t, result.Document, "<script>")
	assert.NotContains(t, result.Document, "<img")
	assert.NotContains(t, result.Document, "javascript:")
}

func TestBuildDocument_SectionWithoutID(t *testing.T) {
	structure := types.SiteStructure{Sections: []types.SiteSection{{Type: types.SectionHero}}}

	_, err := BuildDocument(structure, types.DesignSystem{}, nil)

	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Contains(t, err.Error(), "has no id")
}

func TestBuildDocument_AllKnownTypesRender(t *testing.T) {
	profile := types.BusinessProfile{Name: "Everything Inc", Industry: "e-commerce"}
	required := make([]string, 0, len(types.KnownSectionTypes))
	for _, st := range types.KnownSectionTypes {
		required = append(required, string(st))
	}
	structure := architect.GenerateStructure(profile.Name, profile.Industry, types.IndustryInsights{RequiredSectionTypes: required})
	content, err := copywriting.NewTemplateGenerator().GenerateContent(context.Background(), structure, profile)
	require.NoError(t, err)

	result, err := BuildDocument(structure, types.DesignSystem{}, content)
	require.NoError(t, err)

	assert.Len(t, result.SectionsRendered, len(types.KnownSectionTypes))
	// only the generic template emits a pre block
	assert.False(t, strings.Contains(result.Document, `class="section-text"`))
}

func TestBuildDocument_Deterministic(t *testing.T) {
	structure, ds, content := lunaBistroInputs(t)

	first, err := BuildDocument(structure, ds, content)
	require.NoError(t, err)
	second, err := BuildDocument(structure, ds, content)
	require.NoError(t, err)
	assert.Equal(t, first.Document, second.Document)
}
