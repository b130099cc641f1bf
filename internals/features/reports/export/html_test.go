package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	contributionModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contributions/model"
	memberModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/members/model"
)

func activeMember() memberModel.MemberModel {
	return memberModel.MemberModel{
		MemberNumber:    "AJB-0001",
		MemberFirstName: "Awa",
		MemberLastName:  "Koné",
		MemberGender:    constants.GenderFemme,
		MemberZone:      constants.ZoneCapitale,
		MemberStatus:    constants.MemberStatusActif,
		MemberJoinedAt:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestVerificationPageHTML_InactiveBanner(t *testing.T) {
	m := activeMember()
	m.MemberStatus = constants.MemberStatusInactif

	out := VerificationPageHTML(m)

	assert.Contains(t, out, "Membre inactif")
	assert.NotContains(t, out, "Vérifié")
	assert.NotContains(t, out, "#16a34a")
}

func TestVerificationPageHTML_ActiveBanner(t *testing.T) {
	out := VerificationPageHTML(activeMember())

	assert.Contains(t, out, "Vérifié : membre actif")
	assert.Contains(t, out, "#16a34a")
	assert.Contains(t, out, "AJB-0001")
}

func TestVerificationPageHTML_EscapesFields(t *testing.T) {
	m := activeMember()
	m.MemberFirstName = "<script>alert(1)</script>"

	out := VerificationPageHTML(m)

	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestMemberCardHTML_EmbedsQRCode(t *testing.T) {
	out, err := MemberCardHTML(activeMember(), "https://assojereb.org/verify/abc")
	require.NoError(t, err)

	assert.Contains(t, out, "data:image/png;base64,")
	assert.Contains(t, out, "CARTE DE MEMBRE")
	assert.Contains(t, out, "AJB-0001")
}

func TestMemberListHTML_Aggregates(t *testing.T) {
	actif := activeMember()
	inactif := activeMember()
	inactif.MemberStatus = constants.MemberStatusInactif
	inactif.MemberGender = constants.GenderHomme

	out := MemberListHTML([]memberModel.MemberModel{actif, inactif}, time.Now())

	assert.Contains(t, out, "<b>2</b> membres")
	assert.Contains(t, out, "1 actifs")
	assert.Contains(t, out, "1 inactifs")
	assert.Contains(t, out, "1 hommes")
	assert.Contains(t, out, "1 femmes")
}

func TestContributionsReportHTML_Totals(t *testing.T) {
	rows := []contributionModel.ContributionModel{
		{ContributionStatus: constants.ContributionStatusPayee, ContributionAmount: 1000},
		{ContributionStatus: constants.ContributionStatusPayee, ContributionAmount: 2000},
		{ContributionStatus: constants.ContributionStatusEnAttente, ContributionAmount: 500},
	}

	out := ContributionsReportHTML(rows, "cotisations du mois", time.Now())

	assert.Contains(t, out, "Encaissé : <b>3000 FCFA</b>")
	assert.Contains(t, out, "2 payées")
	assert.Contains(t, out, "1 en attente")
	assert.True(t, strings.Contains(out, "<table>"))
}
