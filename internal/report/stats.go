package report

import (
	"sort"

	"designtrack/internal/models"
)

// TypeCount is one rollup line of the dashboard.
type TypeCount struct {
	Label   string
	Count   int
	Seconds int
}

// SessionStats summarizes completed work for the dashboard. Only COMPLETED
// sessions count: an in-progress record's stored seconds are a cache, not
// ground truth.
type SessionStats struct {
	Completed          int
	InProgress         int
	TotalActiveSeconds int
	TotalVariations    int
	ByType             []TypeCount
	ByDesigner         []TypeCount
}

// AverageActiveSeconds is the mean duration of completed sessions.
func (s SessionStats) AverageActiveSeconds() int {
	if s.Completed == 0 {
		return 0
	}
	return s.TotalActiveSeconds / s.Completed
}

// ComputeSessionStats aggregates session records for display.
func ComputeSessionStats(sessions []models.ProjectSession) SessionStats {
	var stats SessionStats
	byType := map[string]*TypeCount{}
	byDesigner := map[string]*TypeCount{}

	for _, s := range sessions {
		if s.Status != models.StatusCompleted {
			stats.InProgress++
			continue
		}
		stats.Completed++
		stats.TotalActiveSeconds += s.TotalActiveSeconds
		stats.TotalVariations += len(s.Variations)

		bump(byType, string(s.Type), s.TotalActiveSeconds)
		designer := s.UserID
		if designer == "" {
			designer = "unassigned"
		}
		bump(byDesigner, designer, s.TotalActiveSeconds)
	}

	stats.ByType = sorted(byType)
	stats.ByDesigner = sorted(byDesigner)
	return stats
}

// IssueStats rolls up quality issues per type.
type IssueStats struct {
	Total  int
	ByType []TypeCount
}

// ComputeIssueStats aggregates issue records for display.
func ComputeIssueStats(issues []models.IssueRecord) IssueStats {
	byType := map[string]*TypeCount{}
	for _, i := range issues {
		bump(byType, string(i.Type), 0)
	}
	return IssueStats{Total: len(issues), ByType: sorted(byType)}
}

// InnovationStats totals proposal savings per review state.
type InnovationStats struct {
	Proposals          int
	Implemented        int
	PendingSavings     float64
	ApprovedSavings    float64
	ImplementedSavings float64
}

// ComputeInnovationStats aggregates innovation records for display.
func ComputeInnovationStats(innovations []models.InnovationRecord) InnovationStats {
	var stats InnovationStats
	stats.Proposals = len(innovations)
	for _, inv := range innovations {
		switch inv.Status {
		case models.InnovationPending:
			stats.PendingSavings += inv.TotalAnnualSavings
		case models.InnovationApproved:
			stats.ApprovedSavings += inv.TotalAnnualSavings
		case models.InnovationImplemented:
			stats.Implemented++
			stats.ImplementedSavings += inv.TotalAnnualSavings
		}
	}
	return stats
}

func bump(m map[string]*TypeCount, label string, seconds int) {
	entry, ok := m[label]
	if !ok {
		entry = &TypeCount{Label: label}
		m[label] = entry
	}
	entry.Count++
	entry.Seconds += seconds
}

func sorted(m map[string]*TypeCount) []TypeCount {
	out := make([]TypeCount, 0, len(m))
	for _, entry := range m {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}
