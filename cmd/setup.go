package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/sqlcoach/internal/dataset"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Recreate the practice database with the sample data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if err := dataset.Setup(ctx, cfg.DatasetPath); err != nil {
			return fmt.Errorf("setup dataset: %w", err)
		}

		counts, err := dataset.NewExecutor(cfg.DatasetPath).TableCounts(ctx)
		if err != nil {
			return fmt.Errorf("count rows: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Database created successfully at: %s\n\n", cfg.DatasetPath)
		fmt.Fprintln(out, "Tables created:")
		for _, tc := range counts {
			fmt.Fprintf(out, "  - %s (%d rows)\n", tc.Table, tc.Rows)
		}
		return nil
	},
}
