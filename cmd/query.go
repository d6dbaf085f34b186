package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sqlcoach/internal/dataset"
	"github.com/abhisek/sqlcoach/internal/ui/components"
)

var queryCmd = &cobra.Command{
	Use:   "query <sql>",
	Short: "Run one statement against the practice database",
	Long:  "Run one statement against the practice database and print the result table.\nProgress and the activity log are not touched.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if _, err := dataset.Ensure(ctx, cfg.DatasetPath); err != nil {
			return fmt.Errorf("prepare dataset: %w", err)
		}

		sql := strings.Join(args, " ")
		res, err := dataset.NewExecutor(cfg.DatasetPath).Query(ctx, sql)
		if err != nil {
			var qe *dataset.QueryError
			if errors.As(err, &qe) {
				return fmt.Errorf("SQL error: %w", qe)
			}
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), components.NewResultTable(res, cfg.MaxColumnWidth).View())
		return nil
	},
}
