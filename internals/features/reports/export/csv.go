package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	contributionModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contributions/model"
	memberModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/members/model"
)

// Les exports sont préfixés d'un BOM UTF-8 pour qu'Excel détecte l'encodage.
const utf8BOM = "\uFEFF"

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// MembersToCSV formate la liste des membres en CSV téléchargeable.
// L'échappement (guillemets doublés, champs à virgule entre guillemets) est
// celui de RFC 4180.
func MembersToCSV(members []memberModel.MemberModel) string {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Write([]string{
		"Numéro", "Nom", "Prénom", "Genre", "Famille", "Concession",
		"Zone", "Statut", "Téléphone", "Email", "Adhésion",
	})

	for _, m := range members {
		family, house := "", ""
		if m.Family != nil {
			family = m.Family.FamilyName
		}
		if m.House != nil {
			house = strconv.Itoa(m.House.HouseNumber)
		}
		zone := constants.ZoneLabels[m.MemberZone]
		if zone == "" {
			zone = m.MemberZone
		}
		w.Write([]string{
			m.MemberNumber,
			m.MemberLastName,
			m.MemberFirstName,
			m.MemberGender,
			family,
			house,
			zone,
			constants.MemberStatusLabel(m.MemberStatus),
			deref(m.MemberPhone),
			deref(m.MemberEmail),
			m.MemberJoinedAt.Format("02/01/2006"),
		})
	}

	w.Flush()
	return buf.String()
}

// ContributionsToCSV formate la liste des cotisations en CSV téléchargeable.
func ContributionsToCSV(rows []contributionModel.ContributionModel) string {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Write([]string{
		"Membre", "Numéro", "Type", "Période", "Montant (FCFA)",
		"Statut", "Moyen de paiement", "Payée le",
	})

	for _, r := range rows {
		name, number := "", ""
		if r.Member != nil {
			name = r.Member.MemberLastName + " " + r.Member.MemberFirstName
			number = r.Member.MemberNumber
		}
		period := ""
		if r.ContributionMonth != nil && r.ContributionYear != nil {
			period = fmt.Sprintf("%02d/%d", *r.ContributionMonth, *r.ContributionYear)
		}
		paidAt := ""
		if r.ContributionPaidAt != nil {
			paidAt = r.ContributionPaidAt.Format("02/01/2006")
		}
		w.Write([]string{
			name,
			number,
			r.ContributionType,
			period,
			fmt.Sprintf("%d", r.ContributionAmount),
			r.ContributionStatus,
			deref(r.ContributionPaymentMethod),
			paidAt,
		})
	}

	w.Flush()
	return buf.String()
}

// ExportFileName fabrique un nom daté pour le téléchargement.
func ExportFileName(prefix string, now time.Time) string {
	return strings.ToLower(prefix) + "_" + now.Format("2006-01-02") + ".csv"
}
