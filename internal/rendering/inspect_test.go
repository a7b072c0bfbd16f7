package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/site-generator/internal/types"
)

func TestVerifyDocument_BuiltDocument(t *testing.T) {
	structure, ds, content := lunaBistroInputs(t)
	result, err := BuildDocument(structure, ds, content)
	require.NoError(t, err)

	assert.NoError(t, VerifyDocument(result.Document, structure))
}

func TestVerifyDocument_SectionMismatch(t *testing.T) {
	structure, ds, content := lunaBistroInputs(t)
	result, err := BuildDocument(structure, ds, content)
	require.NoError(t, err)

	reordered := structure
	reordered.Sections = append([]types.SiteSection{structure.Sections[1], structure.Sections[0]}, structure.Sections[2:]...)

	err = VerifyDocument(result.Document, reordered)

	var outlineErr *OutlineError
	require.ErrorAs(t, err, &outlineErr)
	assert.Equal(t, "sections", outlineErr.Part)
	assert.Equal(t, []string{"hero", "menu", "about", "reservations", "contact"}, outlineErr.Got)
	assert.Equal(t, "menu", outlineErr.Want[0])
}

func TestVerifyDocument_NavigationMismatch(t *testing.T) {
	structure, ds, content := lunaBistroInputs(t)
	result, err := BuildDocument(structure, ds, content)
	require.NoError(t, err)

	trimmed := structure
	trimmed.Navigation = structure.Navigation[:2]

	err = VerifyDocument(result.Document, trimmed)

	var outlineErr *OutlineError
	require.ErrorAs(t, err, &outlineErr)
	assert.Equal(t, "navigation", outlineErr.Part)
	assert.Contains(t, err.Error(), "document does not match structure navigation")
}

func TestVerifyDocument_EmptyDocument(t *testing.T) {
	structure := types.SiteStructure{Sections: []types.SiteSection{{ID: "hero"}}}

	var outlineErr *OutlineError
	require.ErrorAs(t, VerifyDocument("", structure), &outlineErr)
	assert.Empty(t, outlineErr.Got)
}
