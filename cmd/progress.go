package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/abhisek/sqlcoach/internal/coach"
	"github.com/abhisek/sqlcoach/internal/curriculum"
	lessonscreen "github.com/abhisek/sqlcoach/internal/screens/coach"
	"github.com/abhisek/sqlcoach/internal/store"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show overall progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat := curriculum.Default()
		p, err := store.NewFileProgressRepo(cfg.ProgressPath).Load(cmd.Context())
		if err != nil {
			return err
		}

		r := &coach.Report{Total: cat.Total(), Current: cat.First()}
		if p != nil {
			r.Completed = len(p.CompletedLessons)
			r.CompletedIDs = slices.Clone(p.CompletedLessons)
			r.Current = p.CurrentLesson
		}
		fmt.Fprintln(cmd.OutOrStdout(), lessonscreen.RenderReport(r))
		return nil
	},
}
