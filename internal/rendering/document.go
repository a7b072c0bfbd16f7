package rendering

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/site-generator/internal/types"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var documentTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl"))

// BuildResult is the composed document and the ids of the sections it contains, in order
type BuildResult struct {
	Document         string
	SectionsRendered []string
}

// sectionData is what a section body template sees
type sectionData struct {
	ID      string
	Type    types.SectionType
	Title   string
	Layout  string
	Content types.SectionPayload
}

// genericData is what the generic section template sees
type genericData struct {
	Title string
	Text  string
}

// wrapperData is what the section wrapper template sees
type wrapperData struct {
	ID     string
	Type   types.SectionType
	Layout string
	Body   template.HTML
}

// BuildDocument renders the navigation, every section in structure order and the footer.
// A section without an entry in content is rendered from its placeholder payload.
// The design system is not embedded; styling is merged by the caller.
func BuildDocument(structure types.SiteStructure, designSystem types.DesignSystem, content types.SiteContent) (*BuildResult, error) {
	var doc strings.Builder
	if err := documentTemplates.ExecuteTemplate(&doc, "nav", structure); err != nil {
		return nil, &TemplateError{Template: "nav", Cause: err}
	}

	doc.WriteString("<main>\n")
	rendered := make([]string, 0, len(structure.Sections))
	for i, section := range structure.Sections {
		if section.ID == "" {
			return nil, &RenderError{Message: fmt.Sprintf("section %d (%s) has no id", i, section.Type)}
		}

		payload, ok := content[section.ID]
		if !ok || payload == nil {
			payload = section.Content
		}

		body, err := renderSectionBody(section, payload)
		if err != nil {
			return nil, err
		}

		err = documentTemplates.ExecuteTemplate(&doc, "section", wrapperData{
			ID:     section.ID,
			Type:   section.Type,
			Layout: section.Layout,
			Body:   body,
		})
		if err != nil {
			return nil, &TemplateError{Template: "section", Section: section.ID, Cause: err}
		}
		rendered = append(rendered, section.ID)
	}
	doc.WriteString("</main>\n")

	if err := documentTemplates.ExecuteTemplate(&doc, "footer", structure.BusinessName); err != nil {
		return nil, &TemplateError{Template: "footer", Cause: err}
	}

	return &BuildResult{Document: doc.String(), SectionsRendered: rendered}, nil
}

// renderSectionBody dispatches to the template named after the section type. Unknown types,
// missing payloads and payloads of another kind go through the generic template.
func renderSectionBody(section types.SiteSection, payload types.SectionPayload) (template.HTML, error) {
	var buf strings.Builder

	if section.Type.IsKnown() && payload != nil && payload.Kind() == section.Type {
		err := documentTemplates.ExecuteTemplate(&buf, string(section.Type), sectionData{
			ID:      section.ID,
			Type:    section.Type,
			Title:   section.Title,
			Layout:  section.Layout,
			Content: payload,
		})
		if err != nil {
			return "", &TemplateError{Template: string(section.Type), Section: section.ID, Cause: err}
		}
		//nolint:gosec // output of html/template is already escaped
		return template.HTML(buf.String()), nil
	}

	data, err := genericFor(section, payload)
	if err != nil {
		return "", &RenderError{Message: fmt.Sprintf("failed to serialize content of section %s", section.ID), Cause: err}
	}
	if err := documentTemplates.ExecuteTemplate(&buf, "generic", data); err != nil {
		return "", &TemplateError{Template: "generic", Section: section.ID, Cause: err}
	}
	//nolint:gosec // output of html/template is already escaped
	return template.HTML(buf.String()), nil
}

// genericFor turns any payload into a heading and plain text
func genericFor(section types.SiteSection, payload types.SectionPayload) (genericData, error) {
	data := genericData{Title: section.Title}
	switch p := payload.(type) {
	case nil:
		return data, nil
	case types.GenericContent:
		if p.Title != "" {
			data.Title = p.Title
		}
		data.Text = p.Body
		return data, nil
	default:
		raw, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return data, err
		}
		data.Text = string(raw)
		return data, nil
	}
}
