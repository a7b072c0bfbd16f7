package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jonathan/site-generator/internal/config"
	"github.com/jonathan/site-generator/internal/observability"
	"github.com/jonathan/site-generator/internal/pipeline"
	"github.com/jonathan/site-generator/internal/rendering"
	"github.com/jonathan/site-generator/internal/store"
	"github.com/jonathan/site-generator/internal/types"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a site for a business",
	Long: `Runs the full generation pipeline for one business profile and validates the result.

The site is written as JSON to --out (or stdout when no output is requested), the page to --html,
and with --save it is persisted to the configured store.`,
	RunE: runGenerate,
}

var (
	generateName         string
	generateIndustry     string
	generateDescription  string
	generateAudience     string
	generateFeatures     []string
	generatePersonality  []string
	generateCopyStrategy string
	generateOutput       string
	generateHTML         string
	generateSave         bool
	generateProjectID    string
	generateVerbose      bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateName, "name", "n", "", "Business name (required)")
	generateCmd.Flags().StringVarP(&generateIndustry, "industry", "i", "", "Industry, e.g. restaurant or saas (required)")
	generateCmd.Flags().StringVarP(&generateDescription, "description", "d", "", "Short description of the business")
	generateCmd.Flags().StringVarP(&generateAudience, "audience", "a", "", "Target audience")
	generateCmd.Flags().StringSliceVar(&generateFeatures, "features", nil, "Requested features (comma separated)")
	generateCmd.Flags().StringSliceVar(&generatePersonality, "personality", nil, "Brand personality hints (overrides config)")
	generateCmd.Flags().StringVar(&generateCopyStrategy, "copy-strategy", "", "Copy strategy: template or llm (overrides config)")
	generateCmd.Flags().StringVarP(&generateOutput, "out", "o", "", "Path to write the GeneratedSite JSON")
	generateCmd.Flags().StringVar(&generateHTML, "html", "", "Path to write the HTML page")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "Persist the site to the configured store")
	generateCmd.Flags().StringVar(&generateProjectID, "project-id", "", "Project id used with --save (default: new UUID)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print every stage result")

	if err := generateCmd.MarkFlagRequired("name"); err != nil {
		panic(fmt.Sprintf("failed to mark name flag as required: %v", err))
	}
	if err := generateCmd.MarkFlagRequired("industry"); err != nil {
		panic(fmt.Sprintf("failed to mark industry flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, logger, err := loadSettings(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("copy-strategy") {
			cfg.CopyStrategy = generateCopyStrategy
		}
		if cmd.Flags().Changed("personality") {
			cfg.Personality = generatePersonality
		}
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	generator, cleanup, err := newContentGenerator(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	status := cmd.ErrOrStderr()

	opts := pipeline.Options{
		ContentGenerator: generator,
		Personality:      cfg.Personality,
		Logger:           logger,
	}
	if generateVerbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(status, "[%s] %s: %s\n", event.Category, event.Step, event.Message)
		}
	}
	orchestrator := pipeline.NewOrchestrator(opts)

	profile := types.BusinessProfile{
		Name:              generateName,
		Industry:          generateIndustry,
		Description:       generateDescription,
		TargetAudience:    generateAudience,
		RequestedFeatures: generateFeatures,
	}

	site, err := orchestrator.GenerateSite(ctx, profile)
	if err != nil {
		return err
	}
	report := orchestrator.Validate(site)

	if generateVerbose {
		printer := observability.NewPrinter(status)
		printer.PrintSite(site)
		printer.PrintValidationReport(&report)
		if err := printer.PrintDocumentOutline(site.Document); err != nil {
			return err
		}
	}
	if err := rendering.VerifyDocument(site.Document, site.Structure); err != nil {
		return err
	}

	siteJSON, err := json.MarshalIndent(site, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal site: %w", err)
	}

	wrote := false
	if generateOutput != "" {
		if err := writeFile(generateOutput, siteJSON); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(status, "Wrote site to %s\n", generateOutput)
		wrote = true
	}
	if generateHTML != "" {
		if err := writeFile(generateHTML, []byte(site.Document)); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(status, "Wrote page to %s\n", generateHTML)
		wrote = true
	}
	if generateSave {
		projectID, err := saveSite(ctx, cfg, site)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(status, "Saved site as %s (%s store)\n", projectID, cfg.Store)
		wrote = true
	}
	if !wrote {
		if _, err := out.Write(append(siteJSON, '\n')); err != nil {
			return fmt.Errorf("failed to write site: %w", err)
		}
	}

	printSummary(status, site, report)
	return nil
}

func saveSite(ctx context.Context, cfg *config.Config, site *types.GeneratedSite) (string, error) {
	projectID := generateProjectID
	if projectID == "" {
		projectID = uuid.New().String()
	}

	sites, err := store.Open(ctx, cfg)
	if err != nil {
		return "", fmt.Errorf("failed to open %s store: %w", cfg.Store, err)
	}
	defer func() { _ = sites.Close() }()

	if err := sites.Save(ctx, projectID, site); err != nil {
		return "", fmt.Errorf("failed to save site: %w", err)
	}
	return projectID, nil
}

func printSummary(w io.Writer, site *types.GeneratedSite, report types.ValidationReport) {
	_, _ = fmt.Fprintf(w, "Generated %d sections for %s (score %d/100", len(site.Structure.Sections), site.Structure.BusinessName, report.Score)
	if report.IsValid {
		_, _ = fmt.Fprintln(w, ", valid)")
		return
	}
	_, _ = fmt.Fprintf(w, ", %d issues)\n", len(report.Issues))
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
