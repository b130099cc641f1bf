package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyAmount_PrefillFromCategory(t *testing.T) {
	// Membre rattaché à une catégorie à 2000 FCFA
	amount, err := MonthlyAmount(0, 2000)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), amount)

	// Changement de membre : catégorie à 5000 FCFA
	amount, err = MonthlyAmount(0, 5000)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), amount)
}

func TestMonthlyAmount_ExplicitWins(t *testing.T) {
	amount, err := MonthlyAmount(1500, 2000)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), amount)
}

func TestMonthlyAmount_NoTariff(t *testing.T) {
	_, err := MonthlyAmount(0, 0)
	assert.Error(t, err)
}

func TestDefaultPeriod(t *testing.T) {
	now := time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC)

	month, year := DefaultPeriod(nil, nil, now)
	assert.Equal(t, 8, month)
	assert.Equal(t, 2026, year)

	m, y := 2, 2025
	month, year = DefaultPeriod(&m, &y, now)
	assert.Equal(t, 2, month)
	assert.Equal(t, 2025, year)
}
