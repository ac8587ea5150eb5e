package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"designtrack/internal/models"
	"designtrack/internal/timer"
)

// SessionsCSV writes completed sessions as CSV. Timestamps are RFC 3339 so
// the export round-trips through spreadsheets without losing the timezone.
func SessionsCSV(w io.Writer, sessions []models.ProjectSession) error {
	cw := csv.NewWriter(w)

	header := []string{
		"id", "ns", "client", "project_code", "type", "implement_type",
		"flooring_type", "start_time", "end_time", "active_time",
		"active_seconds", "pauses", "variations", "designer", "notes",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, s := range sessions {
		if s.Status != models.StatusCompleted {
			continue
		}
		endTime := ""
		if s.EndTime != nil {
			endTime = s.EndTime.Format(time.RFC3339)
		}
		row := []string{
			s.ID,
			s.NS,
			s.ClientName,
			s.ProjectCode,
			string(s.Type),
			string(s.ImplementType),
			s.FlooringType,
			s.StartTime.Format(time.RFC3339),
			endTime,
			timer.FormatSeconds(s.TotalActiveSeconds),
			strconv.Itoa(s.TotalActiveSeconds),
			strconv.Itoa(len(s.Pauses)),
			strconv.Itoa(len(s.Variations)),
			s.UserID,
			s.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
