package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings represents the structure of ~/.designtrack/config.json.
type Settings struct {
	// DatabasePath overrides the default sqlite location.
	DatabasePath string `json:"database_path,omitempty"`
	// WebhookURL is the Teams incoming-webhook endpoint notified when a
	// session completes. Empty disables the notification.
	WebhookURL string `json:"webhook_url,omitempty"`
	// DefaultUser is the username stamped on sessions, issues and
	// innovations created from this machine.
	DefaultUser string `json:"default_user,omitempty"`
	// Debug enables JSON file logging without the env variable.
	Debug bool `json:"debug,omitempty"`
}

// Path returns the settings file location.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".designtrack", "config.json"), nil
}

// Load reads the settings file, returning zero-value defaults when the file
// does not exist.
func Load() (Settings, error) {
	var settings Settings

	path, err := Path()
	if err != nil {
		return settings, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

// Save writes the settings file, creating its directory if needed.
func Save(settings Settings) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
