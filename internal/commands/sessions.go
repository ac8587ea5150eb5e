package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"designtrack/internal/db"
	"designtrack/internal/timer"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List open sessions (the resume list)",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		sessions, err := db.ListInProgressSessions(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(sessions) == 0 {
			fmt.Println("No open sessions")
			return
		}

		fmt.Println("Open sessions:")
		for _, s := range sessions {
			badge := "OPEN"
			if s.Paused() {
				badge = "PAUSED"
			}
			client := s.ClientName
			if client == "" {
				client = "-"
			}
			fmt.Printf("  %s  NS %-10s %-8s %s · %s · started %s\n",
				shortID(s.ID), s.NS, badge, client, s.Type,
				s.StartTime.Format("Jan 02 15:04"))
		}
	},
}

var sessionsHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed sessions",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		sessions, err := db.ListCompletedSessions(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(sessions) == 0 {
			fmt.Println("No completed sessions")
			return
		}

		for _, s := range sessions {
			fmt.Printf("  %s  NS %-10s %s · %s · %d variation(s)\n",
				shortID(s.ID), s.NS, timer.FormatSeconds(s.TotalActiveSeconds),
				s.StartTime.Format("Jan 02 2006"), len(s.Variations))
		}
	},
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete [session-id]",
	Short: "Delete a session record",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		session, err := db.GetSessionByID(ctx, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := db.DeleteSession(ctx, session.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted session NS %s (started %s)\n",
			session.NS, session.StartTime.Format(time.DateOnly))
	},
}

func init() {
	sessionsCmd.AddCommand(sessionsHistoryCmd)
	sessionsCmd.AddCommand(sessionsDeleteCmd)
}
