package dto

import (
	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contributions/model"
)

// ContributionStats : agrégats d'une liste de cotisations.
// Seules les cotisations payées comptent dans TotalCollected.
type ContributionStats struct {
	TotalCollected int64 `json:"total_collected"`
	PaidCount      int   `json:"paid_count"`
	PendingCount   int   `json:"pending_count"`
	LateCount      int   `json:"late_count"`
	CancelledCount int   `json:"cancelled_count"`
}

// ComputeStats parcourt les cotisations en un seul passage.
func ComputeStats(rows []model.ContributionModel) ContributionStats {
	var s ContributionStats
	for _, r := range rows {
		switch r.ContributionStatus {
		case constants.ContributionStatusPayee:
			s.PaidCount++
			s.TotalCollected += r.ContributionAmount
		case constants.ContributionStatusEnAttente:
			s.PendingCount++
		case constants.ContributionStatusEnRetard:
			s.LateCount++
		case constants.ContributionStatusAnnulee:
			s.CancelledCount++
		}
	}
	return s
}
