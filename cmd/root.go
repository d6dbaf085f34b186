package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/sqlcoach/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "sqlcoach",
	Short: "Interactive SQL tutor",
	Long: "SQL Coach is a terminal tutor for SQL interview prep. It walks through lessons on a\n" +
		"Google Ads sample database with progressive hints, step-by-step solutions and answer checks.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data-dir", "", "Directory for the dataset, progress and logs (overrides SQLCOACH_DATA_DIR)")
	rootCmd.PersistentFlags().String("db", "", "Path to the practice database (overrides SQLCOACH_DB)")
	rootCmd.PersistentFlags().String("progress", "", "Path to the progress file (overrides SQLCOACH_PROGRESS)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads env configuration and applies flag overrides, highest
// priority last: --data-dir, then the explicit file paths.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.SetDataDir(dir)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DatasetPath = p
	}
	if p, _ := cmd.Flags().GetString("progress"); p != "" {
		cfg.ProgressPath = p
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.EnsureDirs(); err != nil {
		return nil, err
	}
	return cfg, nil
}
