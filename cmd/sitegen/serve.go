package main

import (
	"context"
	"fmt"

	"github.com/jonathan/site-generator/internal/config"
	"github.com/jonathan/site-generator/internal/pipeline"
	"github.com/jonathan/site-generator/internal/server"
	"github.com/jonathan/site-generator/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that generates, stores and serves sites.

Requires SITEGEN_JWT_SECRET and SITEGEN_ADMIN_PASSWORD (or SITEGEN_ADMIN_PASSWORD_HASH).`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config, default 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, logger, err := loadSettings(cmd, func(cfg *config.Config) {
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	passwords, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to load password config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to load JWT config: %w", err)
	}

	generator, cleanup, err := newContentGenerator(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	sites, err := store.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store, err)
	}
	defer func() { _ = sites.Close() }()

	orchestrator := pipeline.NewOrchestrator(pipeline.Options{
		ContentGenerator: generator,
		Personality:      cfg.Personality,
		Logger:           logger.Named("pipeline"),
	})

	srv, err := server.New(server.Config{
		Port:         cfg.Port,
		Orchestrator: orchestrator,
		Store:        sites,
		Passwords:    passwords,
		JWT:          jwtConfig,
		Logger:       logger.Named("http"),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	logger.Info("server configured",
		zap.Int("port", cfg.Port),
		zap.String("store", cfg.Store),
		zap.String("copy_strategy", cfg.CopyStrategy))
	return srv.Start(ctx)
}
