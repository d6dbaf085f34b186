package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sqlcoach/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete saved progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		out := cmd.OutOrStdout()

		if !yes {
			fmt.Fprintf(out, "Delete saved progress at %s? [y/N] ", cfg.ProgressPath)
			line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "y", "yes":
			default:
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		if err := store.NewFileProgressRepo(cfg.ProgressPath).Delete(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(out, "Progress reset. The next session starts at the first lesson.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
