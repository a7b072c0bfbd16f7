package main

import (
	"context"
	"fmt"

	"github.com/jonathan/site-generator/internal/config"
	"github.com/jonathan/site-generator/internal/copywriting"
	"github.com/jonathan/site-generator/internal/llm"
	"github.com/jonathan/site-generator/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadSettings reads the config file and environment, applies the persistent flags and
// the command's own overrides, then builds the logger
func loadSettings(cmd *cobra.Command, overrides func(cfg *config.Config)) (*config.Config, *zap.Logger, error) {
	loaded, err := config.LoadConfig(rootConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Only override if the flag was explicitly set
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.LogLevel = rootLogLevel
	}
	if flags.Changed("log-format") {
		loaded.LogFormat = rootLogFormat
	}
	if overrides != nil {
		overrides(loaded)
	}

	cfg := loaded.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return &cfg, logger, nil
}

// newContentGenerator returns the copy generator selected by cfg and a cleanup func
func newContentGenerator(ctx context.Context, cfg *config.Config, logger *zap.Logger) (copywriting.ContentGenerator, func(), error) {
	if cfg.CopyStrategy != config.CopyStrategyLLM {
		gen, err := copywriting.New(cfg.CopyStrategy, nil)
		return gen, func() {}, err
	}

	llmCfg := llm.DefaultConfig().
		WithModel(llm.TierStandard, cfg.Model).
		WithTimeout(cfg.LLMTimeout())
	client, err := llm.NewClient(ctx, llmCfg, cfg.APIKey)
	if err != nil {
		return nil, nil, err
	}

	gen, err := copywriting.New(cfg.CopyStrategy, client, copywriting.WithLogger(logger))
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return gen, func() { _ = client.Close() }, nil
}
