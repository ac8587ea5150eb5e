package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designtrack/internal/models"
)

func TestCreateIssue(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	issue, err := CreateIssue(ctx, CreateIssueRequest{
		ProjectNS:   "NS-4821",
		Type:        models.IssueBendingError,
		Description: "Wrong bend radius on side panel",
		ReportedBy:  "joao",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, issue.ID)
	assert.False(t, issue.Date.IsZero())

	issues, err := ListIssues(ctx)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, models.IssueBendingError, issues[0].Type)

	require.NoError(t, DeleteIssue(ctx, issue.ID))
	assert.Error(t, DeleteIssue(ctx, issue.ID))
}

func TestCreateIssueRequiresNS(t *testing.T) {
	setupTestDB(t)

	_, err := CreateIssue(context.Background(), CreateIssueRequest{Type: models.IssueDesignError})
	assert.Error(t, err)
}

func TestCreateInnovationSnapshotsSavings(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	innovation, err := CreateInnovation(ctx, CreateInnovationRequest{
		Title:           "Shared bracket across van models",
		Type:            models.InnovationProductImprovement,
		CalculationType: models.CalcPerUnit,
		UnitSavings:     12.5,
		Quantity:        480,
		InvestmentCost:  2000,
		AuthorID:        "ana",
	})
	require.NoError(t, err)

	assert.Equal(t, models.InnovationPending, innovation.Status)
	assert.Equal(t, 6000.0, innovation.TotalAnnualSavings)
	assert.Equal(t, 4.0, innovation.PaybackMonths())
}

func TestCreateInnovationOneTimeForcesQuantity(t *testing.T) {
	setupTestDB(t)

	innovation, err := CreateInnovation(context.Background(), CreateInnovationRequest{
		Title:           "Scrap steel resale",
		Type:            models.InnovationProcessOptim,
		CalculationType: models.CalcOneTime,
		UnitSavings:     750,
		Quantity:        40,
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, innovation.Quantity)
	assert.Equal(t, 750.0, innovation.TotalAnnualSavings)
}

func TestSetInnovationStatus(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	innovation, err := CreateInnovation(ctx, CreateInnovationRequest{
		Title:           "Laser nesting template",
		Type:            models.InnovationProcessOptim,
		CalculationType: models.CalcRecurringMonthly,
		UnitSavings:     100,
		Quantity:        12,
	})
	require.NoError(t, err)

	updated, err := SetInnovationStatus(ctx, innovation.ID, models.InnovationApproved)
	require.NoError(t, err)
	assert.Equal(t, models.InnovationApproved, updated.Status)

	_, err = SetInnovationStatus(ctx, "missing", models.InnovationRejected)
	assert.Error(t, err)
}

func TestUserUniqueness(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, "joao", "João Pereira", models.RoleDesigner)
	require.NoError(t, err)
	assert.Equal(t, models.RoleDesigner, user.Role)

	_, err = CreateUser(ctx, "joao", "Someone Else", models.RoleManager)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")

	loaded, err := GetUserByUsername(ctx, "joao")
	require.NoError(t, err)
	assert.Equal(t, "João Pereira", loaded.Name)

	_, err = GetUserByUsername(ctx, "ghost")
	assert.Error(t, err)

	users, err := ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
}
