package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
)

func strPtr(s string) *string { return &s }

func TestNeedsReminder_Eligibility(t *testing.T) {
	pending := constants.ContributionStatusEnAttente
	overdue := constants.ContributionStatusEnRetard
	paid := constants.ContributionStatusPayee

	cases := []struct {
		name string
		cand Candidate
		want bool
	}{
		{
			name: "aucune ligne, tarif et contact présents",
			cand: Candidate{CategoryAmount: 2000, Email: strPtr("a@b.ci")},
			want: true,
		},
		{
			name: "cotisation en attente",
			cand: Candidate{CategoryAmount: 2000, Phone: strPtr("0708"), ExistingStatus: &pending},
			want: true,
		},
		{
			name: "cotisation en retard",
			cand: Candidate{CategoryAmount: 2000, Phone: strPtr("0708"), ExistingStatus: &overdue},
			want: true,
		},
		{
			name: "cotisation déjà payée",
			cand: Candidate{CategoryAmount: 2000, Email: strPtr("a@b.ci"), ExistingStatus: &paid},
			want: false,
		},
		{
			name: "tarif de catégorie nul malgré deux canaux de contact",
			cand: Candidate{CategoryAmount: 0, Email: strPtr("a@b.ci"), Phone: strPtr("0708")},
			want: false,
		},
		{
			name: "aucun canal de contact",
			cand: Candidate{CategoryAmount: 2000},
			want: false,
		},
		{
			name: "email vide compté comme absent",
			cand: Candidate{CategoryAmount: 2000, Email: strPtr("")},
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cand.NeedsReminder())
		})
	}
}

func TestShouldEscalate_DayThreshold(t *testing.T) {
	day15 := time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)
	day16 := time.Date(2026, 3, 16, 0, 1, 0, 0, time.UTC)

	assert.False(t, ShouldEscalate(day15))
	assert.True(t, ShouldEscalate(day16))
	assert.True(t, ShouldEscalate(time.Date(2026, 3, 28, 12, 0, 0, 0, time.UTC)))
}

func TestEscalatedStatus_SecondPassIsNoOp(t *testing.T) {
	// Premier passage : en_attente bascule en retard
	status, changed := EscalatedStatus(constants.ContributionStatusEnAttente)
	assert.True(t, changed)
	assert.Equal(t, constants.ContributionStatusEnRetard, status)

	// Second passage sur le résultat : plus rien ne bouge
	status, changed = EscalatedStatus(status)
	assert.False(t, changed)
	assert.Equal(t, constants.ContributionStatusEnRetard, status)

	// Les statuts terminaux sont conservés
	for _, s := range []string{constants.ContributionStatusPayee, constants.ContributionStatusAnnulee} {
		out, changed := EscalatedStatus(s)
		assert.False(t, changed)
		assert.Equal(t, s, out)
	}
}

func TestReminderMessage_French(t *testing.T) {
	c := Candidate{FirstName: "Awa", LastName: "Koné", CategoryAmount: 2000}
	subject, body := ReminderMessage(c, 3, 2026)

	assert.Equal(t, "Rappel de cotisation 03/2026", subject)
	assert.Contains(t, body, "Awa Koné")
	assert.Contains(t, body, "2000 FCFA")
	assert.Contains(t, body, "03/2026")
}
