package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnualSavings(t *testing.T) {
	// per-unit and recurring-monthly scale with quantity
	assert.Equal(t, 6000.0, AnnualSavings(CalcPerUnit, 12.5, 480))
	assert.Equal(t, 3000.0, AnnualSavings(CalcRecurringMonthly, 250, 12))

	// one-time ignores quantity entirely
	assert.Equal(t, 750.0, AnnualSavings(CalcOneTime, 750, 40))
	assert.Equal(t, 0.0, AnnualSavings(CalcPerUnit, 100, 0))
}

func TestPaybackMonths(t *testing.T) {
	record := &InnovationRecord{TotalAnnualSavings: 12000, InvestmentCost: 3000}
	assert.Equal(t, 3.0, record.PaybackMonths())

	assert.Zero(t, (&InnovationRecord{TotalAnnualSavings: 12000}).PaybackMonths())
	assert.Zero(t, (&InnovationRecord{InvestmentCost: 3000}).PaybackMonths())
}
