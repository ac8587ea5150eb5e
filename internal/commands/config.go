package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"designtrack/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Config file:   %s\n", configPathOrDash())
		fmt.Printf("Database path: %s\n", orDefault(cfg.DatabasePath, "(default)"))
		fmt.Printf("Webhook URL:   %s\n", orDefault(cfg.WebhookURL, "(not set)"))
		fmt.Printf("Default user:  %s\n", orDefault(cfg.DefaultUser, "(not set)"))
		fmt.Printf("Debug logging: %v\n", cfg.Debug)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value (webhook, user, database, debug)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		key, value := args[0], args[1]
		switch key {
		case "webhook":
			cfg.WebhookURL = value
		case "user":
			cfg.DefaultUser = value
		case "database":
			cfg.DatabasePath = value
		case "debug":
			cfg.Debug = value == "true" || value == "1"
		default:
			fmt.Printf("Unknown key %q. Valid keys: webhook, user, database, debug\n", key)
			return
		}

		if err := config.Save(cfg); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Set %s\n", key)
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Clear a config value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		switch args[0] {
		case "webhook":
			cfg.WebhookURL = ""
		case "user":
			cfg.DefaultUser = ""
		case "database":
			cfg.DatabasePath = ""
		case "debug":
			cfg.Debug = false
		default:
			fmt.Printf("Unknown key %q. Valid keys: webhook, user, database, debug\n", args[0])
			return
		}

		if err := config.Save(cfg); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Cleared %s\n", args[0])
	},
}

func configPathOrDash() string {
	path, err := config.Path()
	if err != nil {
		return "-"
	}
	return path
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
}
