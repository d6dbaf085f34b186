package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sqlcoach/internal/curriculum"
	"github.com/abhisek/sqlcoach/internal/store"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the curriculum",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		p, err := store.NewFileProgressRepo(cfg.ProgressPath).Load(cmd.Context())
		if err != nil {
			return err
		}

		cat := curriculum.Default()
		out := cmd.OutOrStdout()
		for _, ph := range cat.Phases() {
			fmt.Fprintf(out, "Phase %d: %s\n", ph.ID, ph.Title)
			fmt.Fprintln(out, strings.Repeat("─", 60))
			for _, l := range ph.Lessons {
				mark := " "
				if p != nil && p.IsCompleted(l.ID) {
					mark = "✓"
				}
				current := ""
				if p != nil && p.CurrentLesson == l.ID {
					current = "  ← current"
				}
				fmt.Fprintf(out, "  %s %-5s %s%s\n", mark, l.ID, l.Title, current)
			}
			fmt.Fprintln(out)
		}

		fmt.Fprintf(out, "%d lessons\n", cat.Total())
		return nil
	},
}
