package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/site-generator/internal/types"
)

func TestMergeStylesheet(t *testing.T) {
	meta := types.SiteMetadata{
		Title:       `Tom & Jerry's | "Best" Cheese`,
		Description: "Cheese <shop>",
		Keywords:    []string{"cheese", "deli"},
	}

	page := MergeStylesheet(meta, "<main>body</main>", ":root { --x: 1; }")

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>\n"))
	assert.Contains(t, page, "<title>Tom &amp; Jerry&#39;s | &#34;Best&#34; Cheese</title>")
	assert.Contains(t, page, `<meta name="description" content="Cheese &lt;shop&gt;">`)
	assert.Contains(t, page, `<meta name="keywords" content="cheese, deli">`)
	assert.Contains(t, page, "<style>\n:root { --x: 1; }\n</style>")
	assert.Contains(t, page, "<body>\n<main>body</main>\n</body>")
}

func TestMergeStylesheet_OmitsEmptyMetadata(t *testing.T) {
	page := MergeStylesheet(types.SiteMetadata{}, "", "")

	assert.NotContains(t, page, `name="description"`)
	assert.NotContains(t, page, `name="keywords"`)
	assert.Contains(t, page, "<title></title>")
}

func TestMergeStylesheet_CannotCloseStyleEarly(t *testing.T) {
	page := MergeStylesheet(types.SiteMetadata{}, "", "a{}</style><script>x</script>")

	assert.Equal(t, 1, strings.Count(page, "</style>"))
}
