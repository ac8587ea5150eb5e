package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"designtrack/internal/db"
	"designtrack/internal/models"
	"designtrack/internal/report"
	"designtrack/internal/timer"
	"designtrack/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show department totals",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()
		ctx := context.Background()

		completed, err := db.ListCompletedSessions(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		open, err := db.ListInProgressSessions(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		issues, err := db.ListIssues(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		innovations, err := db.ListInnovations(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		sessions := append(append([]models.ProjectSession{}, completed...), open...)
		fmt.Println(renderDashboard(
			report.ComputeSessionStats(sessions),
			report.ComputeIssueStats(issues),
			report.ComputeInnovationStats(innovations),
		))
	},
}

func renderDashboard(sessions report.SessionStats, issues report.IssueStats, innovations report.InnovationStats) string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(tui.ColorAccentBright)).
		Bold(true)
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorSecondaryText))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(tui.ColorPrimaryText)).Bold(true)

	var b strings.Builder
	line := func(name, val string) {
		b.WriteString(fmt.Sprintf("  %s %s\n", label.Render(name+":"), value.Render(val)))
	}

	b.WriteString(header.Render("📊 Sessions") + "\n")
	line("Completed", fmt.Sprintf("%d", sessions.Completed))
	line("In progress", fmt.Sprintf("%d", sessions.InProgress))
	line("Total active time", timer.FormatSeconds(sessions.TotalActiveSeconds))
	line("Average per session", timer.FormatSeconds(sessions.AverageActiveSeconds()))
	line("Variations produced", fmt.Sprintf("%d", sessions.TotalVariations))

	if len(sessions.ByType) > 0 {
		b.WriteString("\n" + header.Render("By project type") + "\n")
		for _, t := range sessions.ByType {
			line(t.Label, fmt.Sprintf("%d · %s", t.Count, timer.FormatSeconds(t.Seconds)))
		}
	}
	if len(sessions.ByDesigner) > 0 {
		b.WriteString("\n" + header.Render("By designer") + "\n")
		for _, d := range sessions.ByDesigner {
			line(d.Label, fmt.Sprintf("%d · %s", d.Count, timer.FormatSeconds(d.Seconds)))
		}
	}

	b.WriteString("\n" + header.Render("⚠️  Issues") + "\n")
	line("Reported", fmt.Sprintf("%d", issues.Total))
	for _, t := range issues.ByType {
		line(t.Label, fmt.Sprintf("%d", t.Count))
	}

	b.WriteString("\n" + header.Render("💡 Innovations") + "\n")
	line("Proposals", fmt.Sprintf("%d", innovations.Proposals))
	line("Implemented", fmt.Sprintf("%d", innovations.Implemented))
	line("Pending savings/yr", fmt.Sprintf("%.2f", innovations.PendingSavings))
	line("Approved savings/yr", fmt.Sprintf("%.2f", innovations.ApprovedSavings))
	line("Implemented savings/yr", fmt.Sprintf("%.2f", innovations.ImplementedSavings))

	return b.String()
}
