// Package llm provides the generative model client used by the LLM copy strategy.
package llm

import "time"

// ModelTier represents the capability level of a model
type ModelTier string

const (
	// TierLite is for short, formulaic copy such as headings and calls to action
	TierLite ModelTier = "lite"
	// TierStandard is for full section copy
	TierStandard ModelTier = "standard"
)

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider
const ProviderGemini Provider = "gemini"

// DefaultSystemInstruction frames every request as website copywriting
const DefaultSystemInstruction = "You are a marketing copywriter for small-business websites. " +
	"Write warm, concrete copy in plain language. Never invent prices, awards or contact details. " +
	"Answer with a single JSON object and nothing else."

// Config holds the model configuration of a client
type Config struct {
	Provider          Provider
	Models            map[ModelTier]string
	Temperature       float32
	MaxOutputTokens   int32
	SystemInstruction string
	Timeout           time.Duration
}

// DefaultConfig returns the default Gemini configuration
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
		Temperature:       0.7,
		MaxOutputTokens:   1024,
		SystemInstruction: DefaultSystemInstruction,
		Timeout:           30 * time.Second,
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of c with model set for tier.
// An empty model leaves the tier unchanged.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider:          c.Provider,
		Models:            make(map[ModelTier]string, len(c.Models)+1),
		Temperature:       c.Temperature,
		MaxOutputTokens:   c.MaxOutputTokens,
		SystemInstruction: c.SystemInstruction,
		Timeout:           c.Timeout,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	if model != "" {
		newConfig.Models[tier] = model
	}
	return newConfig
}

// WithTimeout returns a copy of c with the per-call timeout set
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	newConfig := c.WithModel(TierStandard, "")
	newConfig.Timeout = timeout
	return newConfig
}
