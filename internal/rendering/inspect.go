package rendering

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/site-generator/internal/types"
)

// Outline returns the ids of the sections of document in document order
func Outline(document string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return nil, &RenderError{Message: "failed to parse document", Cause: err}
	}

	var ids []string
	doc.Find("section[id]").Each(func(_ int, s *goquery.Selection) {
		if id, ok := s.Attr("id"); ok {
			ids = append(ids, id)
		}
	})
	return ids, nil
}

// NavTargets returns the href of every navigation link in document order
func NavTargets(document string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return nil, &RenderError{Message: "failed to parse document", Cause: err}
	}

	var hrefs []string
	doc.Find("nav.site-nav li a").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok {
			hrefs = append(hrefs, href)
		}
	})
	return hrefs, nil
}

// SectionText returns the visible text of the section with the given id
func SectionText(document, id string) (string, bool, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return "", false, &RenderError{Message: "failed to parse document", Cause: err}
	}

	var text string
	found := false
	doc.Find("section[id]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if sid, _ := s.Attr("id"); sid == id {
			text = strings.Join(strings.Fields(s.Text()), " ")
			found = true
			return false
		}
		return true
	})
	return text, found, nil
}

// VerifyDocument checks that document renders every section of structure, in structure order,
// and links exactly the structure's navigation
func VerifyDocument(document string, structure types.SiteStructure) error {
	outline, err := Outline(document)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(structure.Sections))
	for _, section := range structure.Sections {
		ids = append(ids, section.ID)
	}
	if !slices.Equal(ids, outline) {
		return &OutlineError{Part: "sections", Want: ids, Got: outline}
	}

	targets, err := NavTargets(document)
	if err != nil {
		return err
	}
	hrefs := make([]string, 0, len(structure.Navigation))
	for _, item := range structure.Navigation {
		hrefs = append(hrefs, item.Href)
	}
	if !slices.Equal(hrefs, targets) {
		return &OutlineError{Part: "navigation", Want: hrefs, Got: targets}
	}
	return nil
}
