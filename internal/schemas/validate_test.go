package schemas

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jonathan/site-generator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSite() types.GeneratedSite {
	sections := []types.SiteSection{
		{ID: "hero", Type: types.SectionHero, Title: "Welcome", Priority: 1, Layout: "full-bleed",
			Content: types.HeroContent{Headline: "Welcome"}},
		{ID: "contact", Type: types.SectionContact, Title: "Contact", Priority: 5, Layout: "split"},
	}
	return types.GeneratedSite{
		Document:   "<main></main>",
		Stylesheet: ":root {}",
		Structure: types.SiteStructure{
			BusinessName: "Luna Bistro",
			Industry:     "restaurant",
			Sections:     sections,
			Navigation:   []types.NavItem{{Label: "Welcome", Href: "#hero"}},
			Metadata:     types.SiteMetadata{Title: "Luna Bistro", Keywords: []string{"Luna Bistro"}},
		},
		DesignSystem: types.DesignSystem{
			ColorPalette: &types.ColorPalette{Primary: "#000", Neutral: []types.Token{{Name: "50", Value: "#fff"}}},
			Spacing:      []types.Token{{Name: "1", Value: "0.25rem"}},
		},
		Content: types.SiteContent{
			"hero":    types.HeroContent{Headline: "Welcome to Luna Bistro"},
			"contact": types.ContactContent{Heading: "Visit us"},
		},
		GenerationMetadata: types.GenerationMetadata{
			GeneratedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
			StageNames:  []string{"validate_profile"},
		},
	}
}

func marshal(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestValidateGeneratedSite_Valid(t *testing.T) {
	assert.NoError(t, ValidateGeneratedSite(marshal(t, sampleSite())))
}

func TestValidateGeneratedSite_MissingField(t *testing.T) {
	var raw map[string]any
	require.NoError(t, json.Unmarshal(marshal(t, sampleSite()), &raw))
	delete(raw, "document")

	err := ValidateGeneratedSite(marshal(t, raw))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Contains(t, validationErr.Error(), "document")
}

func TestValidateGeneratedSite_NavigationHrefMustBeAnchor(t *testing.T) {
	site := sampleSite()
	site.Structure.Navigation = []types.NavItem{{Label: "Welcome", Href: "https://example.com"}}

	err := ValidateGeneratedSite(marshal(t, site))
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

func TestValidateGeneratedSite_ContentEnvelopeRequiresType(t *testing.T) {
	var raw map[string]any
	require.NoError(t, json.Unmarshal(marshal(t, sampleSite()), &raw))
	raw["content"] = map[string]any{"hero": map[string]any{"data": map[string]any{}}}

	err := ValidateGeneratedSite(marshal(t, raw))
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

func TestValidateGeneratedSite_NotJSON(t *testing.T) {
	err := ValidateGeneratedSite([]byte("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name": "x"}`))

	err := ValidateJSONString(schema, `{"name": 1}`)
	require.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "name", validationErr.Errors[0].Field)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 12}`, `{}`)
	require.Error(t, err)
	assert.IsType(t, &SchemaLoadError{}, err)
}

func TestGeneratedSiteSchemaIsValidJSON(t *testing.T) {
	assert.True(t, json.Valid([]byte(GeneratedSiteSchema())))
}

func TestValidateGeneratedSite_BlankBusinessNameAllowed(t *testing.T) {
	site := sampleSite()
	site.Structure.BusinessName = ""
	site.Structure.Industry = ""
	assert.NoError(t, ValidateGeneratedSite(marshal(t, site)))
}
