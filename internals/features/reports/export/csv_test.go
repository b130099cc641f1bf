package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	contributionModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contributions/model"
	memberModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/members/model"
)

func TestMembersToCSV_CommaInLastName(t *testing.T) {
	m := memberModel.MemberModel{
		MemberNumber:    "AJB-0001",
		MemberLastName:  "Koné, Jean",
		MemberFirstName: "Awa",
		MemberGender:    constants.GenderFemme,
		MemberZone:      constants.ZoneCapitale,
		MemberStatus:    constants.MemberStatusActif,
		MemberJoinedAt:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	out := MembersToCSV([]memberModel.MemberModel{m})

	// BOM en tête pour les tableurs
	assert.True(t, strings.HasPrefix(out, "\uFEFF"))
	// Le champ à virgule est entouré de guillemets
	assert.Contains(t, out, `"Koné, Jean"`)

	// Round-trip : un parseur CSV standard restitue la valeur exacte
	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, "\uFEFF")))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Koné, Jean", records[1][1])
	assert.Equal(t, "AJB-0001", records[1][0])
}

func TestMembersToCSV_QuoteDoubling(t *testing.T) {
	m := memberModel.MemberModel{
		MemberNumber:    "AJB-0002",
		MemberLastName:  `Dite "Nina"`,
		MemberFirstName: "Fanta",
		MemberJoinedAt:  time.Now(),
	}

	out := MembersToCSV([]memberModel.MemberModel{m})
	assert.Contains(t, out, `"Dite ""Nina"""`)
}

func TestContributionsToCSV_Period(t *testing.T) {
	month, year := 3, 2026
	paid := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	method := "espèces"
	row := contributionModel.ContributionModel{
		ContributionType:          constants.ContributionTypeMensuelle,
		ContributionAmount:        2000,
		ContributionMonth:         &month,
		ContributionYear:          &year,
		ContributionStatus:        constants.ContributionStatusPayee,
		ContributionPaymentMethod: &method,
		ContributionPaidAt:        &paid,
		Member: &memberModel.MemberModel{
			MemberNumber:    "AJB-0001",
			MemberLastName:  "Traoré",
			MemberFirstName: "Moussa",
		},
	}

	out := ContributionsToCSV([]contributionModel.ContributionModel{row})

	assert.Contains(t, out, "03/2026")
	assert.Contains(t, out, "Traoré Moussa")
	assert.Contains(t, out, "2000")
	assert.Contains(t, out, "10/03/2026")
}

func TestExportFileName(t *testing.T) {
	name := ExportFileName("Membres", time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "membres_2026-08-29.csv", name)
}
