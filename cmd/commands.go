package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lshigami/examdesk/config"
	"github.com/lshigami/examdesk/database"
	"github.com/lshigami/examdesk/internal/logger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "examdesk",
		Short:        "Exam administration API server",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("env-file", ".env", "dotenv file with configuration; the process environment overrides it")

	serve := serveCmd()
	root.AddCommand(serve, migrateCmd())

	// "serve" runs when no subcommand is given.
	root.RunE = serve.RunE

	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			app := newApp(cfg)
			if err := app.Start(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to start application")
				return err
			}

			<-app.Done()
			log.Info().Msg("Application shutting down gracefully...")
			stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			return app.Stop(stopCtx)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			db, err := database.NewDatabase(cfg)
			if err != nil {
				return err
			}
			if err := AutoMigrateDB(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
			return nil
		},
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
	return cfg, nil
}
