// Package main provides the entry point for the sitegen CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	rootConfigPath string
	rootLogLevel   string
	rootLogFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "sitegen",
	Short: "Marketing site generator",
	Long: `sitegen turns a short business description into a complete, styled, multi-section marketing site:
industry analysis -> structure -> {design system || copy} -> stylesheet -> document -> page.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to a config file (JSON or YAML); SITEGEN_* env vars override it")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&rootLogFormat, "log-format", "", "Log format: console or json (overrides config)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
