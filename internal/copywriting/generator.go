// Package copywriting produces the per-section copy of a site.
//
// Two strategies satisfy ContentGenerator: TemplateGenerator fills static per-industry
// templates, LLMGenerator asks a generative model for each section. Both must return
// exactly one payload per section id.
package copywriting

import (
	"context"
	"fmt"
	"sort"

	"github.com/jonathan/site-generator/internal/llm"
	"github.com/jonathan/site-generator/internal/types"
)

// ContentGenerator turns a site structure and business profile into per-section copy
type ContentGenerator interface {
	GenerateContent(ctx context.Context, structure types.SiteStructure, profile types.BusinessProfile) (types.SiteContent, error)
}

// Strategy names accepted by configuration
const (
	StrategyTemplate = "template"
	StrategyLLM      = "llm"
)

// CheckCardinality verifies that content holds one entry per section and nothing else
func CheckCardinality(structure types.SiteStructure, content types.SiteContent) error {
	ids := make(map[string]bool, len(structure.Sections))
	var missing []string
	for _, section := range structure.Sections {
		ids[section.ID] = true
		if _, ok := content[section.ID]; !ok {
			missing = append(missing, section.ID)
		}
	}

	var extra []string
	for id := range content {
		if !ids[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)

	if len(missing) == 0 && len(extra) == 0 && len(content) == len(structure.Sections) {
		return nil
	}
	return &CardinalityError{
		Expected: len(structure.Sections),
		Got:      len(content),
		Missing:  missing,
		Extra:    extra,
	}
}

// New returns the generator for strategy. The llm strategy requires a client.
func New(strategy string, client llm.Client, opts ...LLMOption) (ContentGenerator, error) {
	switch strategy {
	case "", StrategyTemplate:
		return NewTemplateGenerator(), nil
	case StrategyLLM:
		if client == nil {
			return nil, fmt.Errorf("copy strategy %q requires an LLM client", strategy)
		}
		return NewLLMGenerator(client, opts...), nil
	default:
		return nil, fmt.Errorf("unknown copy strategy %q", strategy)
	}
}
