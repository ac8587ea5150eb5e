package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"designtrack/internal/db"
	"designtrack/internal/models"
)

var innovationCmd = &cobra.Command{
	Use:   "innovation",
	Short: "Track cost-saving proposals",
}

var innovationAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a cost-saving proposal",
	Long: `Add a cost-saving proposal. The annual savings are snapshotted at
creation time: per-unit and recurring-monthly values multiply by --quantity,
one-time values do not.

Examples:
  designtrack innovation add "Laser nesting layout" --type process-optimization \
    --calc per-unit --savings 12.50 --quantity 4800
  designtrack innovation add "New bracket supplier" --calc recurring-monthly \
    --savings 900 --quantity 12 --investment 15000`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		req := db.CreateInnovationRequest{
			Title:    strings.Join(args, " "),
			AuthorID: settings.DefaultUser,
		}
		req.Description, _ = cmd.Flags().GetString("desc")
		typeFlag, _ := cmd.Flags().GetString("type")
		calcFlag, _ := cmd.Flags().GetString("calc")
		req.Type = models.InnovationType(typeFlag)
		req.CalculationType = models.CalculationType(calcFlag)
		req.UnitSavings, _ = cmd.Flags().GetFloat64("savings")
		req.Quantity, _ = cmd.Flags().GetFloat64("quantity")
		req.InvestmentCost, _ = cmd.Flags().GetFloat64("investment")

		innovation, err := db.CreateInnovation(ctx, req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("💡 Added proposal %q (%s)\n", innovation.Title, shortID(innovation.ID))
		fmt.Printf("Annual savings: %.2f\n", innovation.TotalAnnualSavings)
		if payback := innovation.PaybackMonths(); payback > 0 {
			fmt.Printf("Payback: %.1f month(s)\n", payback)
		}
	},
}

var innovationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List proposals",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		innovations, err := db.ListInnovations(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(innovations) == 0 {
			fmt.Println("No proposals recorded")
			return
		}
		for _, inv := range innovations {
			fmt.Printf("  %s  %-11s %-22s %10.2f/yr  %s\n",
				shortID(inv.ID), inv.Status, inv.Type, inv.TotalAnnualSavings, inv.Title)
		}
	},
}

func innovationStatusCmd(use string, status models.InnovationStatus) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [innovation-id]",
		Short: fmt.Sprintf("Mark a proposal %s", strings.ToLower(string(status))),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			initApp()
			ctx := context.Background()

			innovation, err := db.SetInnovationStatus(ctx, args[0], status)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("✅ %q is now %s\n", innovation.Title, innovation.Status)
		},
	}
}

var innovationDeleteCmd = &cobra.Command{
	Use:   "delete [innovation-id]",
	Short: "Delete a proposal",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		if err := db.DeleteInnovation(ctx, args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("🗑️  Deleted proposal")
	},
}

func init() {
	innovationCmd.AddCommand(innovationAddCmd)
	innovationCmd.AddCommand(innovationListCmd)
	innovationCmd.AddCommand(innovationStatusCmd("approve", models.InnovationApproved))
	innovationCmd.AddCommand(innovationStatusCmd("reject", models.InnovationRejected))
	innovationCmd.AddCommand(innovationStatusCmd("implement", models.InnovationImplemented))
	innovationCmd.AddCommand(innovationDeleteCmd)

	innovationAddCmd.Flags().String("desc", "", "Description")
	innovationAddCmd.Flags().String("type", string(models.InnovationProcessOptim),
		"Proposal type: new-project, product-improvement, process-optimization")
	innovationAddCmd.Flags().String("calc", string(models.CalcRecurringMonthly),
		"Calculation: per-unit, recurring-monthly, one-time")
	innovationAddCmd.Flags().Float64("savings", 0, "Savings per unit/month, or the one-time value")
	innovationAddCmd.Flags().Float64("quantity", 0, "Units per year or months (ignored for one-time)")
	innovationAddCmd.Flags().Float64("investment", 0, "Implementation cost")
}
