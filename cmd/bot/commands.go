package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tracker-tv/github-compliance-bot/internal/config"
	"github.com/tracker-tv/github-compliance-bot/internal/github"
	"github.com/tracker-tv/github-compliance-bot/internal/orchestrator"
	"github.com/tracker-tv/github-compliance-bot/internal/service"
	"github.com/tracker-tv/github-compliance-bot/internal/slack"
	"github.com/tracker-tv/github-compliance-bot/internal/store"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bot",
		Short: "GitHub rule suite compliance bot",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newMigrateCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			db, err := store.Open(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer db.Close()

			return store.Migrate(db)
		},
	}
}

func newRunCmd() *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Ingest and evaluate bypassed rule suites",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync()

			db, err := store.Open(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := store.Migrate(db); err != nil {
				return fmt.Errorf("migrating database: %w", err)
			}

			ghClient := github.New(cfg.GithubPAT, cfg.GithubOrg)
			repoSvc := service.NewRepositoriesService(ghClient, cfg.ExcludeRepos)

			bot := orchestrator.NewComplianceBot(
				repoSvc,
				ghClient,
				store.New(db),
				slack.New(cfg.SlackToken),
				cfg,
				logger,
			)

			if repo != "" {
				return bot.Run(cmd.Context(), cfg.GithubOrg+"/"+repo, repo)
			}
			return bot.RunAll(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&repo, "repo", "", "process a single repository by name")
	return cmd
}
