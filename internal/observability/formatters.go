// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/site-generator/internal/rendering"
	"github.com/jonathan/site-generator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for _, line := range lines {
		// Truncate long lines
		if utf8.RuneCountInString(line) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList writes up to maxItemsToShow bullet items under heading
func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// PrintInsights outputs the derived industry insights
func (p *Printer) PrintInsights(insights *types.IndustryInsights) {
	if insights == nil {
		return
	}

	var sb strings.Builder
	writeList(&sb, "Required Sections", insights.RequiredSectionTypes)
	writeList(&sb, "Key Features", insights.KeyFeatures)
	writeList(&sb, "Target Personas", insights.TargetPersonas)
	writeList(&sb, "Business Goals", insights.BusinessGoals)

	p.printBox("INDUSTRY INSIGHTS", sb.String())
}

// PrintStructure outputs the section layout and navigation of a site
func (p *Printer) PrintStructure(structure *types.SiteStructure) {
	if structure == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Business: %s\n", structure.BusinessName))
	sb.WriteString(fmt.Sprintf("Industry: %s\n", structure.Industry))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", structure.Metadata.Title))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Sections (%d):\n", len(structure.Sections)))
	for i, section := range structure.Sections {
		sb.WriteString(fmt.Sprintf("  %d. #%s [%s] p%d %s\n", i+1, section.ID, section.Type, section.Priority, section.Layout))
	}

	if len(structure.Navigation) > 0 {
		labels := make([]string, len(structure.Navigation))
		for i, item := range structure.Navigation {
			labels[i] = item.Label
		}
		sb.WriteString("\nNavigation: " + strings.Join(labels, " · ") + "\n")
	}

	p.printBox("SITE STRUCTURE", sb.String())
}

// PrintDesignSystem outputs the palette and fonts of a design system
func (p *Printer) PrintDesignSystem(ds *types.DesignSystem) {
	if ds == nil {
		return
	}

	var sb strings.Builder
	if ds.ColorPalette != nil {
		sb.WriteString("Colors:\n")
		for _, token := range ds.ColorPalette.Named() {
			sb.WriteString(fmt.Sprintf("  %-10s %s\n", token.Name, token.Value))
		}
	} else {
		sb.WriteString("Colors: none\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Heading font: %s\n", ds.Typography.Families.Heading))
	sb.WriteString(fmt.Sprintf("Body font:    %s\n", ds.Typography.Families.Body))

	p.printBox("DESIGN SYSTEM", sb.String())
}

// PrintContent outputs the payload kind of every section, in section id order
func (p *Printer) PrintContent(content types.SiteContent) {
	if len(content) == 0 {
		return
	}

	ids := make([]string, 0, len(content))
	for id := range content {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sb strings.Builder
	for _, id := range ids {
		kind := "none"
		if payload := content[id]; payload != nil {
			kind = string(payload.Kind())
		}
		sb.WriteString(fmt.Sprintf("  • %s: %s\n", id, kind))
	}

	p.printBox(fmt.Sprintf("SECTION COPY (%d)", len(content)), sb.String())
}

// PrintValidationReport outputs a validation report
func (p *Printer) PrintValidationReport(report *types.ValidationReport) {
	if report == nil {
		return
	}

	if report.IsValid {
		p.printBox("VALIDATION PASSED", fmt.Sprintf("Score: %d/100", report.Score))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d/100\n\n", report.Score))
	for _, issue := range report.Issues {
		sb.WriteString(fmt.Sprintf("  ✗ %s\n", issue))
	}

	p.printBox(fmt.Sprintf("VALIDATION FAILED (%d issues)", len(report.Issues)), sb.String())
}

// PrintSite outputs every part of a generated site
func (p *Printer) PrintSite(site *types.GeneratedSite) {
	if site == nil {
		return
	}
	p.PrintInsights(&site.GenerationMetadata.Insights)
	p.PrintStructure(&site.Structure)
	p.PrintDesignSystem(&site.DesignSystem)
	p.PrintContent(site.Content)

	summary := fmt.Sprintf("Document:   %d bytes\nStylesheet: %d bytes\nStages:     %s\nGenerated:  %s",
		len(site.Document), len(site.Stylesheet),
		strings.Join(site.GenerationMetadata.StageNames, " → "),
		site.GenerationMetadata.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	p.printBox("GENERATED SITE", summary)
}

// PrintDocumentOutline outputs the sections rendered in document, each with the start of its text
func (p *Printer) PrintDocumentOutline(document string) error {
	ids, err := rendering.Outline(document)
	if err != nil {
		return err
	}

	var sb strings.Builder
	if len(ids) == 0 {
		sb.WriteString("(no sections)\n")
	}
	for i, id := range ids {
		text, _, err := rendering.SectionText(document, id)
		if err != nil {
			return err
		}
		sb.WriteString(fmt.Sprintf("%d. #%s %s\n", i+1, id, text))
	}

	p.printBox(fmt.Sprintf("DOCUMENT OUTLINE (%d sections)", len(ids)), sb.String())
	return nil
}
