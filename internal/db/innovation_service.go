package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"designtrack/internal/models"
)

// CreateInnovationRequest carries the fields for a new cost-saving proposal.
type CreateInnovationRequest struct {
	Title           string
	Description     string
	Type            models.InnovationType
	CalculationType models.CalculationType
	UnitSavings     float64
	Quantity        float64
	InvestmentCost  float64
	AuthorID        string
}

// CreateInnovation records a proposal, snapshotting the annual savings at
// creation time. One-time values ignore the quantity multiplier.
func CreateInnovation(ctx context.Context, req CreateInnovationRequest) (*models.InnovationRecord, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("innovation needs a title")
	}

	quantity := req.Quantity
	if req.CalculationType == models.CalcOneTime {
		quantity = 1
	}

	innovation := models.InnovationRecord{
		ID:                 uuid.New().String(),
		Title:              req.Title,
		Description:        req.Description,
		Type:               req.Type,
		CalculationType:    req.CalculationType,
		UnitSavings:        req.UnitSavings,
		Quantity:           quantity,
		TotalAnnualSavings: models.AnnualSavings(req.CalculationType, req.UnitSavings, quantity),
		InvestmentCost:     req.InvestmentCost,
		Status:             models.InnovationPending,
		AuthorID:           req.AuthorID,
	}

	if err := DB.WithContext(ctx).Create(&innovation).Error; err != nil {
		return nil, fmt.Errorf("failed to create innovation: %w", err)
	}
	return &innovation, nil
}

// ListInnovations returns all proposals, newest first.
func ListInnovations(ctx context.Context) ([]models.InnovationRecord, error) {
	var innovations []models.InnovationRecord
	err := DB.WithContext(ctx).Order("created_at DESC").Find(&innovations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list innovations: %w", err)
	}
	return innovations, nil
}

// SetInnovationStatus moves a proposal through its review states.
func SetInnovationStatus(ctx context.Context, id string, status models.InnovationStatus) (*models.InnovationRecord, error) {
	var innovation models.InnovationRecord
	if err := DB.WithContext(ctx).First(&innovation, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("innovation %q not found", id)
	}

	innovation.Status = status
	if err := DB.WithContext(ctx).Save(&innovation).Error; err != nil {
		return nil, fmt.Errorf("failed to update innovation status: %w", err)
	}
	return &innovation, nil
}

// DeleteInnovation removes a proposal.
func DeleteInnovation(ctx context.Context, id string) error {
	result := DB.WithContext(ctx).Delete(&models.InnovationRecord{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete innovation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("innovation %q not found", id)
	}
	return nil
}
