package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contributions/model"
)

func row(status string, amount int64) model.ContributionModel {
	return model.ContributionModel{ContributionStatus: status, ContributionAmount: amount}
}

func TestComputeStats_TotalCollected(t *testing.T) {
	rows := []model.ContributionModel{
		row(constants.ContributionStatusPayee, 1000),
		row(constants.ContributionStatusEnAttente, 500),
		row(constants.ContributionStatusPayee, 2000),
	}

	s := ComputeStats(rows)

	assert.Equal(t, int64(3000), s.TotalCollected)
	assert.Equal(t, 2, s.PaidCount)
	assert.Equal(t, 1, s.PendingCount)
	assert.Equal(t, 0, s.LateCount)
}

func TestComputeStats_Empty(t *testing.T) {
	s := ComputeStats(nil)
	assert.Equal(t, ContributionStats{}, s)
}

func TestComputeStats_LateAndCancelled(t *testing.T) {
	rows := []model.ContributionModel{
		row(constants.ContributionStatusEnRetard, 2000),
		row(constants.ContributionStatusEnRetard, 2000),
		row(constants.ContributionStatusAnnulee, 1000),
	}

	s := ComputeStats(rows)

	// Ni les retards ni les annulations n'entrent dans le total encaissé.
	assert.Equal(t, int64(0), s.TotalCollected)
	assert.Equal(t, 2, s.LateCount)
	assert.Equal(t, 1, s.CancelledCount)
}
