package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"designtrack/internal/models"
)

// CreateIssueRequest carries the fields needed to report a quality issue.
type CreateIssueRequest struct {
	ProjectNS   string
	Type        models.IssueType
	Description string
	ReportedBy  string
}

// CreateIssue records a new quality issue against a work-order number.
func CreateIssue(ctx context.Context, req CreateIssueRequest) (*models.IssueRecord, error) {
	if req.ProjectNS == "" {
		return nil, fmt.Errorf("issue needs a work-order number")
	}

	issue := models.IssueRecord{
		ID:          uuid.New().String(),
		ProjectNS:   req.ProjectNS,
		Type:        req.Type,
		Description: req.Description,
		Date:        time.Now(),
		ReportedBy:  req.ReportedBy,
	}

	if err := DB.WithContext(ctx).Create(&issue).Error; err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}
	return &issue, nil
}

// ListIssues returns all issues, newest first.
func ListIssues(ctx context.Context) ([]models.IssueRecord, error) {
	var issues []models.IssueRecord
	err := DB.WithContext(ctx).Order("date DESC").Find(&issues).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	return issues, nil
}

// DeleteIssue removes an issue record.
func DeleteIssue(ctx context.Context, id string) error {
	result := DB.WithContext(ctx).Delete(&models.IssueRecord{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete issue: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("issue %q not found", id)
	}
	return nil
}
