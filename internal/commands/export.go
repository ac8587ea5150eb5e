package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"designtrack/internal/db"
	"designtrack/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export completed sessions as CSV",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()

		sessions, err := db.ListCompletedSessions(context.Background())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(sessions) == 0 {
			fmt.Println("No completed sessions to export.")
			return
		}

		if len(args) == 0 {
			if err := export.SessionsCSV(os.Stdout, sessions); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		f, err := os.Create(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer f.Close()

		if err := export.SessionsCSV(f, sessions); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("📄 Exported %d sessions to %s\n", len(sessions), args[0])
	},
}
