package main

import (
	"fmt"

	"github.com/jonathan/site-generator/internal/observability"
	"github.com/jonathan/site-generator/internal/rendering"
	"github.com/jonathan/site-generator/internal/validation"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a generated site",
	Long: `Checks a GeneratedSite JSON file against the site schema, scores it and checks that the
document renders the sections and navigation of its structure.
Exits non-zero when the file does not match the schema, the site has issues or the document
disagrees with the structure.`,
	RunE: runValidate,
}

var validateInput string

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to GeneratedSite JSON file (required)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	site, err := validation.LoadSite(validateInput)
	if err != nil {
		return err
	}

	report := validation.Validate(site)
	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintValidationReport(&report)
	if err := printer.PrintDocumentOutline(site.Document); err != nil {
		return err
	}

	if !report.IsValid {
		return fmt.Errorf("site has %d validation issues (score %d)", len(report.Issues), report.Score)
	}
	return rendering.VerifyDocument(site.Document, site.Structure)
}
