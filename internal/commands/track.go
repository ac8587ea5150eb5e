package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"designtrack/internal/db"
	"designtrack/internal/models"
	"designtrack/internal/timer"
	"designtrack/internal/tracker"
	"designtrack/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start [ns]",
	Short: "Start timing a new project session",
	Long: `Start timing a new project session. With no arguments an interactive
wizard collects the fields; passing the work-order number plus flags skips it.

Examples:
  designtrack start                      # interactive wizard
  designtrack start 123456 --client "ACME" --type release --implement van
  designtrack start 123456 --no-ui       # start without the timer screen`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		var input tracker.StartInput
		if len(args) == 0 {
			collected, ok, err := tui.RunStartWizard()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if !ok {
				fmt.Println("Cancelled.")
				return
			}
			input = collected
		} else {
			input = tracker.StartInput{NS: args[0]}
			input.ClientName, _ = cmd.Flags().GetString("client")
			input.ProjectCode, _ = cmd.Flags().GetString("code")
			input.FlooringType, _ = cmd.Flags().GetString("flooring")
			input.Notes, _ = cmd.Flags().GetString("notes")
			typeFlag, _ := cmd.Flags().GetString("type")
			implementFlag, _ := cmd.Flags().GetString("implement")
			input.Type = models.ProjectType(typeFlag)
			input.ImplementType = models.ImplementType(implementFlag)
		}
		input.UserID = settings.DefaultUser

		trk := newTracker()
		session, err := trk.Start(ctx, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			fmt.Printf("⏱️  Started session for NS %s\n", session.NS)
			fmt.Printf("Started at: %s\n", session.StartTime.Format("15:04:05"))
			fmt.Printf("Use 'designtrack pause %s' or 'designtrack finish %s' later.\n",
				shortID(session.ID), shortID(session.ID))
			return
		}

		runAttached(ctx, trk)
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume [session-id]",
	Short: "Resume a pending session",
	Long: `Resume a session from the pending list, closing its open pause if it
has one. Works across restarts and day boundaries: the elapsed time is
derived from the start instant, so nothing drifts while detached.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		session, err := loadOpenSession(ctx, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		trk := newTracker()
		if err := trk.Resume(ctx, session); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			elapsed := trk.Elapsed(time.Now())
			fmt.Printf("▶️  Resumed session for NS %s\n", session.NS)
			fmt.Printf("Active time so far: %s\n", timer.FormatSeconds(int(elapsed/time.Second)))
			return
		}

		runAttached(ctx, trk)
	},
}

var pauseCmd = &cobra.Command{
	Use:   "pause [session-id]",
	Short: "Pause a running session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		session, err := loadOpenSession(ctx, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if session.Paused() {
			fmt.Printf("Error: session NS %s is already paused\n", session.NS)
			return
		}

		reason, _ := cmd.Flags().GetString("reason")
		trk := newTracker()
		if err := trk.Resume(ctx, session); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := trk.Pause(ctx, reason); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("⏸️  Paused session for NS %s\n", session.NS)
		fmt.Printf("Resume it later with 'designtrack resume %s'.\n", shortID(session.ID))
	},
}

var finishCmd = &cobra.Command{
	Use:   "finish [session-id]",
	Short: "Complete a running session",
	Long: `Complete a running session, fixing its total active time. A paused
session cannot be finished directly: resume it first.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		session, err := loadOpenSession(ctx, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if session.Paused() {
			fmt.Printf("Error: session NS %s is paused, resume it before finishing\n", session.NS)
			return
		}

		trk := newTracker()
		if err := trk.Resume(ctx, session); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		finished, err := trk.Finish(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		printFinished(finished)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show open sessions and their derived elapsed time",
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

		now := time.Now()
		for _, s := range sessions {
			elapsed := timer.ElapsedSeconds(s.StartTime, now, s.Ledger())
			if s.Paused() {
				last := s.Pauses[len(s.Pauses)-1]
				fmt.Printf("⏸️  %s  NS %-10s paused (%s) · active %s\n",
					shortID(s.ID), s.NS, last.Reason, timer.FormatSeconds(elapsed))
			} else {
				fmt.Printf("⏱️  %s  NS %-10s running · active %s\n",
					shortID(s.ID), s.NS, timer.FormatSeconds(elapsed))
			}
		}
	},
}

// runAttached shows the timer screen and applies the transition the user
// picked when it closed.
func runAttached(ctx context.Context, trk *tracker.Tracker) {
	session := trk.Active()
	outcome, reason, err := tui.RunTimerTUI(trk)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	switch outcome {
	case tui.OutcomePause:
		if err := trk.Pause(ctx, reason); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("⏸️  Paused session for NS %s\n", session.NS)
		fmt.Printf("Resume it later with 'designtrack resume %s'.\n", shortID(session.ID))

	case tui.OutcomeFinish:
		finished, err := trk.Finish(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		printFinished(finished)

	case tui.OutcomeDetached:
		fmt.Printf("\n💡 Session for NS %s keeps running in the background.\n", session.NS)
		fmt.Printf("   Use 'designtrack status' to check it or 'designtrack resume %s' to reattach.\n",
			shortID(session.ID))
	}
}

func printFinished(session *models.ProjectSession) {
	fmt.Printf("✅ Completed session for NS %s\n", session.NS)
	fmt.Printf("Active time: %s", timer.FormatSeconds(session.TotalActiveSeconds))
	if n := len(session.Pauses); n > 0 {
		fmt.Printf(" (%d pause(s) excluded)", n)
	}
	fmt.Println()
	if n := len(session.Variations); n > 0 {
		fmt.Printf("Variations recorded: %d\n", n)
	}
}

// loadOpenSession resolves an id (or unique prefix) to an IN_PROGRESS
// session.
func loadOpenSession(ctx context.Context, id string) (*models.ProjectSession, error) {
	session, err := db.GetSessionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status == models.StatusCompleted {
		return nil, fmt.Errorf("session NS %s is already completed", session.NS)
	}
	return session, nil
}

// shortID returns the first id segment, enough for prefix lookup.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	startCmd.Flags().String("client", "", "Client name")
	startCmd.Flags().String("code", "", "Project code")
	startCmd.Flags().String("type", string(models.TypeRelease), "Project type: release, variation, development")
	startCmd.Flags().String("implement", string(models.ImplementBase), "Implement type")
	startCmd.Flags().String("flooring", "", "Flooring type (base, van and sider only)")
	startCmd.Flags().String("notes", "", "Additional notes")
	startCmd.Flags().Bool("no-ui", false, "Start without the timer screen")

	resumeCmd.Flags().Bool("no-ui", false, "Resume without the timer screen")

	pauseCmd.Flags().StringP("reason", "r", "", "Pause reason")
}
