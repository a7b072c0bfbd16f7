package llm

import (
	"fmt"
	"strings"
)

// PromptField is one field of the JSON object the model must return
type PromptField struct {
	Name        string // JSON field name
	Type        string // Type hint, e.g. "string" or "[{\"name\": string}]"
	Description string
	Required    bool
}

// PromptFact is a labelled piece of context handed to the model
type PromptFact struct {
	Label string
	Value string
}

// JSONPrompt describes a request for a single JSON object
type JSONPrompt struct {
	Task   string
	Facts  []PromptFact
	Fields []PromptField
}

// Build renders the prompt text. Facts with empty values are omitted.
func (p JSONPrompt) Build() string {
	var sb strings.Builder

	sb.WriteString(p.Task)
	sb.WriteString("\n\n")

	if len(p.Facts) > 0 {
		sb.WriteString("Context:\n")
		for _, fact := range p.Facts {
			if strings.TrimSpace(fact.Value) == "" {
				continue
			}
			fmt.Fprintf(&sb, "- %s: %s\n", fact.Label, fact.Value)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range p.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		fmt.Fprintf(&sb, "  %q: %s", field.Name, typeHint)
		if field.Required {
			sb.WriteString(" (required)")
		}
		if field.Description != "" {
			fmt.Fprintf(&sb, " // %s", field.Description)
		}
		if i < len(p.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Write concise marketing copy grounded in the context above.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n")

	return sb.String()
}
