package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"designtrack/internal/db"
	"designtrack/internal/models"
)

var issueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Track production quality issues",
}

var issueReportCmd = &cobra.Command{
	Use:   "report [ns]",
	Short: "Report a quality issue against a work order",
	Long: `Report a quality issue against a work-order number.

Issue types: design-error, bending-error, cutting-error, material-error,
assembly-error.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		typeFlag, _ := cmd.Flags().GetString("type")
		description, _ := cmd.Flags().GetString("desc")

		issue, err := db.CreateIssue(ctx, db.CreateIssueRequest{
			ProjectNS:   args[0],
			Type:        models.IssueType(typeFlag),
			Description: description,
			ReportedBy:  settings.DefaultUser,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("⚠️  Reported %s on NS %s (%s)\n", issue.Type, issue.ProjectNS, shortID(issue.ID))
	},
}

var issueListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reported issues",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		issues, err := db.ListIssues(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(issues) == 0 {
			fmt.Println("No issues reported")
			return
		}
		for _, i := range issues {
			fmt.Printf("  %s  NS %-10s %-16s %s  %s\n",
				shortID(i.ID), i.ProjectNS, i.Type,
				i.Date.Format(time.DateOnly), i.Description)
		}
	},
}

var issueDeleteCmd = &cobra.Command{
	Use:   "delete [issue-id]",
	Short: "Delete an issue record",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		if err := db.DeleteIssue(ctx, args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("🗑️  Deleted issue")
	},
}

func init() {
	issueCmd.AddCommand(issueReportCmd)
	issueCmd.AddCommand(issueListCmd)
	issueCmd.AddCommand(issueDeleteCmd)

	issueReportCmd.Flags().String("type", string(models.IssueDesignError), "Issue type")
	issueReportCmd.Flags().String("desc", "", "Description of the issue")
}
