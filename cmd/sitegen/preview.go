package main

import (
	"context"
	"fmt"

	"github.com/jonathan/site-generator/internal/preview"
	"github.com/jonathan/site-generator/internal/validation"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Screenshot a generated site",
	Long:  "Renders the page of a GeneratedSite JSON file in headless Chrome and saves a full-page PNG. Requires Chrome/Chromium.",
	RunE:  runPreview,
}

var (
	previewInput  string
	previewOutput string
	previewWidth  int
)

func init() {
	previewCmd.Flags().StringVarP(&previewInput, "in", "i", "", "Path to GeneratedSite JSON file (required)")
	previewCmd.Flags().StringVar(&previewOutput, "png", "", "Path to output PNG file (required)")
	previewCmd.Flags().IntVar(&previewWidth, "width", 1280, "Viewport width in pixels")

	if err := previewCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := previewCmd.MarkFlagRequired("png"); err != nil {
		panic(fmt.Sprintf("failed to mark png flag as required: %v", err))
	}

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	site, err := validation.LoadSite(previewInput)
	if err != nil {
		return err
	}

	_, logger, err := loadSettings(cmd, nil)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	png, err := preview.Screenshot(ctx, site.Document, preview.Options{Width: previewWidth, Logger: logger})
	if err != nil {
		return err
	}
	if err := writeFile(previewOutput, png); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote preview to %s\n", previewOutput)
	return nil
}
