package copywriting

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/site-generator/internal/llm"
	"github.com/jonathan/site-generator/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency bounds the number of in-flight model calls per site
const defaultConcurrency = 4

// LLMGenerator asks a generative model for the copy of every section.
// Any failed or undecodable response fails the whole generation.
type LLMGenerator struct {
	client      llm.Client
	tier        llm.ModelTier
	concurrency int
	logger      *zap.Logger
}

// LLMOption configures an LLMGenerator
type LLMOption func(*LLMGenerator)

// WithTier selects the model tier used for section copy
func WithTier(tier llm.ModelTier) LLMOption {
	return func(g *LLMGenerator) { g.tier = tier }
}

// WithConcurrency bounds the number of concurrent model calls
func WithConcurrency(n int) LLMOption {
	return func(g *LLMGenerator) {
		if n > 0 {
			g.concurrency = n
		}
	}
}

// WithLogger sets the logger used for per-section diagnostics
func WithLogger(logger *zap.Logger) LLMOption {
	return func(g *LLMGenerator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewLLMGenerator creates a generator backed by client
func NewLLMGenerator(client llm.Client, opts ...LLMOption) *LLMGenerator {
	g := &LLMGenerator{
		client:      client,
		tier:        llm.TierStandard,
		concurrency: defaultConcurrency,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateContent issues one JSON request per section and decodes each response into the
// section's payload variant
func (g *LLMGenerator) GenerateContent(ctx context.Context, structure types.SiteStructure, profile types.BusinessProfile) (types.SiteContent, error) {
	payloads := make([]types.SectionPayload, len(structure.Sections))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(g.concurrency)
	for i, section := range structure.Sections {
		group.Go(func() error {
			payload, err := g.generateSection(gctx, structure, section, profile)
			if err != nil {
				return err
			}
			payloads[i] = payload
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	content := make(types.SiteContent, len(structure.Sections))
	for i, section := range structure.Sections {
		content[section.ID] = payloads[i]
	}
	return content, nil
}

func (g *LLMGenerator) generateSection(ctx context.Context, structure types.SiteStructure, section types.SiteSection, profile types.BusinessProfile) (types.SectionPayload, error) {
	kind := section.Type
	if !kind.IsKnown() {
		kind = types.SectionGeneric
	}

	prompt := buildSectionPrompt(structure, section, kind, profile)
	raw, err := g.client.GenerateJSON(ctx, prompt, g.tier)
	if err != nil {
		return nil, &GenerationError{SectionID: section.ID, Message: "model request failed", Cause: err}
	}

	payload, err := types.DecodePayload(kind, []byte(raw))
	if err != nil {
		return nil, &GenerationError{SectionID: section.ID, Message: "response does not match section shape", Cause: err}
	}

	g.logger.Debug("generated section copy",
		zap.String("section", section.ID),
		zap.String("type", string(section.Type)),
		zap.String("model", g.client.GetModel(g.tier)))
	return payload, nil
}

func buildSectionPrompt(structure types.SiteStructure, section types.SiteSection, kind types.SectionType, profile types.BusinessProfile) string {
	return llm.JSONPrompt{
		Task: fmt.Sprintf("Write the %q section of a one-page website for the business below.", section.Title),
		Facts: []llm.PromptFact{
			{Label: "Business name", Value: profile.Name},
			{Label: "Industry", Value: profile.Industry},
			{Label: "Description", Value: profile.Description},
			{Label: "Target audience", Value: profile.TargetAudience},
			{Label: "Requested features", Value: strings.Join(profile.RequestedFeatures, ", ")},
			{Label: "Site sections", Value: sectionList(structure)},
		},
		Fields: promptFields(kind),
	}.Build()
}

func sectionList(structure types.SiteStructure) string {
	titles := make([]string, 0, len(structure.Sections))
	for _, section := range structure.Sections {
		titles = append(titles, fmt.Sprintf("%s (#%s)", section.Title, section.ID))
	}
	return strings.Join(titles, ", ")
}

const ctaType = `{"label": string, "href": string}`

// sectionFields describes the JSON shape of every payload variant
var sectionFields = map[types.SectionType][]llm.PromptField{
	types.SectionHero: {
		{Name: "headline", Required: true, Description: "at most 8 words"},
		{Name: "subheadline", Required: true},
		{Name: "primary_cta", Type: ctaType, Required: true, Description: "href is an anchor of one of the site sections"},
		{Name: "secondary_cta", Type: ctaType},
	},
	types.SectionServices: {
		{Name: "heading", Required: true},
		{Name: "intro"},
		{Name: "items", Type: `[{"name": string, "description": string, "icon": string}]`, Required: true, Description: "3 items"},
	},
	types.SectionAbout: {
		{Name: "story", Required: true},
		{Name: "mission", Required: true},
		{Name: "values", Type: "[string]", Required: true},
		{Name: "stats", Type: `[{"label": string, "value": string}]`},
	},
	types.SectionMenu: {
		{Name: "intro"},
		{Name: "categories", Type: `[{"name": string, "items": [{"name": string, "description": string, "price": string}]}]`, Required: true},
	},
	types.SectionTestimonials: {
		{Name: "heading", Required: true},
		{Name: "items", Type: `[{"quote": string, "author": string, "role": string}]`, Required: true},
	},
	types.SectionContact: {
		{Name: "heading", Required: true},
		{Name: "message", Required: true},
		{Name: "hours"},
		{Name: "form_fields", Type: "[string]", Required: true},
	},
	types.SectionCaseStudies: {
		{Name: "heading", Required: true},
		{Name: "items", Type: `[{"title": string, "challenge": string, "result": string}]`, Required: true},
	},
	types.SectionTeam: {
		{Name: "intro"},
		{Name: "members", Type: `[{"name": string, "role": string, "bio": string}]`, Required: true},
	},
	types.SectionFeatured: {
		{Name: "heading", Required: true},
		{Name: "products", Type: `[{"name": string, "description": string, "price": string}]`, Required: true},
	},
	types.SectionCategories: {
		{Name: "heading", Required: true},
		{Name: "items", Type: `[{"name": string, "description": string}]`, Required: true},
	},
	types.SectionReservations: {
		{Name: "heading", Required: true},
		{Name: "message", Required: true},
		{Name: "cta", Type: ctaType, Required: true},
		{Name: "policies", Type: "[string]"},
	},
	types.SectionGeneric: {
		{Name: "title", Required: true},
		{Name: "body", Required: true},
	},
}

func promptFields(kind types.SectionType) []llm.PromptField {
	if fields, ok := sectionFields[kind]; ok {
		return fields
	}
	return sectionFields[types.SectionGeneric]
}
