package db

import (
	"context"
	"fmt"
	"strings"

	"designtrack/internal/models"
)

// SessionStore is the persistence gateway for project sessions. The tracker
// treats it as an at-least-once write sink: a failed call leaves the
// in-memory session untouched and the same action can simply be retried.
type SessionStore struct{}

// CreateSession inserts a new session record.
func (SessionStore) CreateSession(ctx context.Context, session *models.ProjectSession) error {
	if err := DB.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// UpdateSession replaces the full persisted record, pauses and variations
// included. Full-record replace keeps the call idempotent.
func (SessionStore) UpdateSession(ctx context.Context, session *models.ProjectSession) error {
	if err := DB.WithContext(ctx).Save(session).Error; err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

// ListInProgressSessions returns every session still open (running or
// paused), oldest first. This populates the resume list.
func ListInProgressSessions(ctx context.Context) ([]models.ProjectSession, error) {
	var sessions []models.ProjectSession
	err := DB.WithContext(ctx).
		Where("status = ?", models.StatusInProgress).
		Order("start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list in-progress sessions: %w", err)
	}
	return sessions, nil
}

// ListCompletedSessions returns finished sessions, most recent first.
func ListCompletedSessions(ctx context.Context) ([]models.ProjectSession, error) {
	var sessions []models.ProjectSession
	err := DB.WithContext(ctx).
		Where("status = ?", models.StatusCompleted).
		Order("start_time DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list completed sessions: %w", err)
	}
	return sessions, nil
}

// GetSessionByID loads a single session by its full id or a unique prefix.
func GetSessionByID(ctx context.Context, id string) (*models.ProjectSession, error) {
	var session models.ProjectSession
	err := DB.WithContext(ctx).First(&session, "id = ?", id).Error
	if err == nil {
		return &session, nil
	}

	// Fall back to prefix matching so commands can take short ids
	var matches []models.ProjectSession
	err = DB.WithContext(ctx).
		Where("id LIKE ?", strings.ReplaceAll(id, "%", "")+"%").
		Limit(2).
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to look up session %q: %w", id, err)
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("session %q not found", id)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("session id %q is ambiguous", id)
	}
}

// DeleteSession removes a session record. Used by history management.
func DeleteSession(ctx context.Context, id string) error {
	result := DB.WithContext(ctx).Delete(&models.ProjectSession{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("session %q not found", id)
	}
	return nil
}
