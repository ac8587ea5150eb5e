package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"designtrack/internal/models"
	"designtrack/internal/timer"
)

// TeamsNotifier posts a MessageCard to a Teams incoming webhook when a
// session completes. It is a fire-and-forget collaborator: callers log its
// errors and move on.
type TeamsNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewTeamsNotifier creates a notifier for the given webhook URL.
func NewTeamsNotifier(webhookURL string) *TeamsNotifier {
	return &TeamsNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type messageCard struct {
	Type       string        `json:"@type"`
	Context    string        `json:"@context"`
	ThemeColor string        `json:"themeColor"`
	Summary    string        `json:"summary"`
	Sections   []cardSection `json:"sections"`
}

type cardSection struct {
	ActivityTitle    string     `json:"activityTitle"`
	ActivitySubtitle string     `json:"activitySubtitle"`
	Facts            []cardFact `json:"facts"`
	Markdown         bool       `json:"markdown"`
}

type cardFact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SessionCompleted posts the completion card.
func (n *TeamsNotifier) SessionCompleted(ctx context.Context, session *models.ProjectSession) error {
	client := "-"
	if session.ClientName != "" {
		client = session.ClientName
	}

	card := messageCard{
		Type:       "MessageCard",
		Context:    "http://schema.org/extensions",
		ThemeColor: "0076D7",
		Summary:    "Project completed",
		Sections: []cardSection{{
			ActivityTitle:    "✅ Project completed",
			ActivitySubtitle: "DesignTrack",
			Facts: []cardFact{
				{Name: "NS:", Value: session.NS},
				{Name: "Client:", Value: client},
				{Name: "Type:", Value: string(session.Type)},
				{Name: "Variations:", Value: strconv.Itoa(len(session.Variations))},
				{Name: "Duration:", Value: timer.FormatSeconds(session.TotalActiveSeconds)},
			},
			Markdown: true,
		}},
	}

	body, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("failed to encode message card: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook post failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
