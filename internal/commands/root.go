package commands

import (
	"github.com/spf13/cobra"

	"designtrack/internal/config"
	"designtrack/internal/db"
	"designtrack/internal/logging"
	"designtrack/internal/notify"
	"designtrack/internal/tracker"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var settings config.Settings

var rootCmd = &cobra.Command{
	Use:   "designtrack",
	Short: "A design-department session tracker",
	Long: `designtrack times design-release work sessions, logs quality issues,
records cost-saving innovation proposals and renders department dashboards.
Sessions survive pauses, client restarts and day boundaries: elapsed time is
always derived from the start instant and the recorded pauses.`,
}

// initApp loads settings, logging and the database, panicking on a broken
// environment since no command can run without them
func initApp() {
	var err error
	settings, err = config.Load()
	if err != nil {
		panic(err)
	}
	if err := logging.Initialize(settings.Debug); err != nil {
		panic(err)
	}
	if err := db.Initialize(settings.DatabasePath); err != nil {
		panic(err)
	}
}

// newTracker builds the session state machine wired to the gateway and,
// when a webhook is configured, the Teams notifier.
func newTracker() *tracker.Tracker {
	var notifier tracker.Notifier
	if settings.WebhookURL != "" {
		notifier = notify.NewTeamsNotifier(settings.WebhookURL)
	}
	return tracker.New(db.SessionStore{}, notifier)
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(finishCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(variationCmd)
	rootCmd.AddCommand(issueCmd)
	rootCmd.AddCommand(innovationCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
