package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"designtrack/internal/models"
	"designtrack/internal/tracker"
)

var variationCmd = &cobra.Command{
	Use:   "variation",
	Short: "Manage the variation list of a running session",
}

// attachForVariation reattaches a running session so a variation edit can
// go through the state machine. Paused sessions are rejected: editing them
// would silently close the open pause.
func attachForVariation(ctx context.Context, id string) (*tracker.Tracker, error) {
	session, err := loadOpenSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Paused() {
		return nil, fmt.Errorf("session NS %s is paused, resume it before editing variations", session.NS)
	}

	trk := newTracker()
	if err := trk.Resume(ctx, session); err != nil {
		return nil, err
	}
	return trk, nil
}

var variationAddCmd = &cobra.Command{
	Use:   "add [session-id]",
	Short: "Add a variation record",
	Long: `Add a derived part or assembly record to a running session. At least
one of --old or --new is required.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		trk, err := attachForVariation(ctx, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		input := tracker.VariationInput{Type: "part"}
		input.OldCode, _ = cmd.Flags().GetString("old")
		input.NewCode, _ = cmd.Flags().GetString("new")
		input.Description, _ = cmd.Flags().GetString("desc")
		input.FilesGenerated, _ = cmd.Flags().GetBool("files")
		if assembly, _ := cmd.Flags().GetBool("assembly"); assembly {
			input.Type = "assembly"
		}

		record, err := trk.AddVariation(ctx, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		code := record.NewCode
		if code == "" {
			code = record.OldCode
		}
		fmt.Printf("➕ Added %s variation %s (%s)\n", record.Type, code, shortID(record.ID))
	},
}

var variationToggleCmd = &cobra.Command{
	Use:   "toggle [session-id] [variation-id]",
	Short: "Toggle a variation's files-generated flag",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		trk, err := attachForVariation(ctx, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		id := resolveVariationID(trk.Active().Variations, args[1])
		if err := trk.ToggleVariationFiles(ctx, id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("✅ Toggled files-generated flag")
	},
}

var variationRemoveCmd = &cobra.Command{
	Use:   "remove [session-id] [variation-id]",
	Short: "Remove a variation record",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		trk, err := attachForVariation(ctx, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		id := resolveVariationID(trk.Active().Variations, args[1])
		if err := trk.RemoveVariation(ctx, id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("🗑️  Removed variation")
	},
}

var variationListCmd = &cobra.Command{
	Use:   "list [session-id]",
	Short: "List a session's variation records",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		session, err := loadOpenSession(ctx, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(session.Variations) == 0 {
			fmt.Println("No variations recorded")
			return
		}
		for _, v := range session.Variations {
			mark := "○ pending"
			if v.FilesGenerated {
				mark = "✓ files ok"
			}
			fmt.Printf("  %s  %-12s → %-12s %-8s %s  %s\n",
				shortID(v.ID), orDash(v.OldCode), orDash(v.NewCode), v.Type, mark, v.Description)
		}
	},
}

// resolveVariationID lets commands take a short id prefix.
func resolveVariationID(variations []models.VariationRecord, id string) string {
	for _, v := range variations {
		if v.ID == id || (len(id) >= 4 && len(v.ID) >= len(id) && v.ID[:len(id)] == id) {
			return v.ID
		}
	}
	return id
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	variationCmd.AddCommand(variationAddCmd)
	variationCmd.AddCommand(variationToggleCmd)
	variationCmd.AddCommand(variationRemoveCmd)
	variationCmd.AddCommand(variationListCmd)

	variationAddCmd.Flags().String("old", "", "Old part code")
	variationAddCmd.Flags().String("new", "", "New part code")
	variationAddCmd.Flags().String("desc", "", "Description")
	variationAddCmd.Flags().Bool("assembly", false, "Record an assembly instead of a part")
	variationAddCmd.Flags().Bool("files", false, "Mark DXF/PDF files as already generated")
}
