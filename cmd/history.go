package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sqlcoach/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		session, _ := cmd.Flags().GetString("session")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := store.Open(cfg.EventsPath)
		if err != nil {
			return fmt.Errorf("open activity log: %w", err)
		}
		defer s.Close()

		events, err := s.EventRepo().RecentLessonEvents(cmd.Context(), store.QueryOpts{Limit: limit, SessionID: session})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No activity recorded yet.")
			return nil
		}

		// Header.
		fmt.Fprintf(out, "%-6s  %-19s  %-8s  %-6s  %-10s  %-3s  %s\n",
			"Seq", "Timestamp", "Session", "Lesson", "Action", "OK", "Detail")
		fmt.Fprintln(out, strings.Repeat("─", 100))

		for _, e := range events {
			ok := ""
			if e.Matched {
				ok = "✓"
			}
			sid := e.SessionID
			if len(sid) > 8 {
				sid = sid[:8]
			}
			detail := strings.Join(strings.Fields(e.Detail), " ")
			if len(detail) > 40 {
				detail = detail[:37] + "..."
			}
			fmt.Fprintf(out, "%-6d  %-19s  %-8s  %-6s  %-10s  %-3s  %s\n",
				e.Sequence,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				sid,
				e.LessonID,
				e.Action,
				ok,
				detail,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of events to show")
	historyCmd.Flags().String("session", "", "Only show events from one session id")
}
