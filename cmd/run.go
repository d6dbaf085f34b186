package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/sqlcoach/internal/app"
	"github.com/abhisek/sqlcoach/internal/coach"
	"github.com/abhisek/sqlcoach/internal/curriculum"
	"github.com/abhisek/sqlcoach/internal/dataset"
	"github.com/abhisek/sqlcoach/internal/logger"
	"github.com/abhisek/sqlcoach/internal/store"
)

// runApp prepares the dataset, opens the activity log, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogMode, cfg.LogPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer log.Sync()

	var (
		created bool
		st      *store.Store
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if created, err = dataset.Ensure(gctx, cfg.DatasetPath); err != nil {
			return fmt.Errorf("prepare dataset: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if st, err = store.Open(cfg.EventsPath); err != nil {
			return fmt.Errorf("open activity log: %w", err)
		}
		return nil
	})
	err = g.Wait()
	if st != nil {
		defer st.Close()
	}
	if err != nil {
		return err
	}
	if created {
		log.Info("dataset created", "path", cfg.DatasetPath)
	}

	session, err := coach.New(ctx, coach.Options{
		Catalog:  curriculum.Default(),
		Queries:  dataset.NewExecutor(cfg.DatasetPath),
		Progress: store.NewFileProgressRepo(cfg.ProgressPath),
		Events:   st.EventRepo(),
		Logger:   log,
	})
	if err != nil {
		return err
	}
	log.Info("session started", "session_id", session.ID(), "progress", cfg.ProgressPath)

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	if err := app.Run(ctx, app.Options{
		Session:      session,
		Logger:       log,
		Events:       st.EventRepo(),
		MaxCellWidth: cfg.MaxColumnWidth,
		SkipWelcome:  noSplash,
	}); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Progress saved! Goodbye.")
	return nil
}
