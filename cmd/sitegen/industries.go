package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/site-generator/internal/knowledge"
	"github.com/spf13/cobra"
)

var industriesCmd = &cobra.Command{
	Use:   "industries",
	Short: "List the industries with dedicated knowledge tables",
	Long:  "Lists every recognised industry and its required sections. Any other industry uses the default tables.",
	Args:  cobra.NoArgs,
	RunE:  runIndustries,
}

func init() {
	rootCmd.AddCommand(industriesCmd)
}

func runIndustries(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, industry := range knowledge.Industries() {
		profile, _ := knowledge.Profile(industry)
		if _, err := fmt.Fprintf(out, "%-14s %s\n", industry, strings.Join(profile.RequiredSections, ", ")); err != nil {
			return err
		}
	}
	return nil
}
