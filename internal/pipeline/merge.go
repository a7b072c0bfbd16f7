package pipeline

import (
	"html"
	"strings"

	"github.com/jonathan/site-generator/internal/types"
)

// MergeStylesheet wraps a builder document into a complete HTML page with the stylesheet
// inlined in the head
func MergeStylesheet(meta types.SiteMetadata, document, stylesheet string) string {
	var b strings.Builder
	b.Grow(len(document) + len(stylesheet) + 512)

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("<title>" + html.EscapeString(meta.Title) + "</title>\n")
	if meta.Description != "" {
		b.WriteString("<meta name=\"description\" content=\"" + html.EscapeString(meta.Description) + "\">\n")
	}
	if len(meta.Keywords) > 0 {
		b.WriteString("<meta name=\"keywords\" content=\"" + html.EscapeString(strings.Join(meta.Keywords, ", ")) + "\">\n")
	}
	b.WriteString("<style>\n")
	// </ would close the style element early
	b.WriteString(strings.ReplaceAll(stylesheet, "</", `<\/`))
	b.WriteString("\n</style>\n</head>\n<body>\n")
	b.WriteString(document)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
