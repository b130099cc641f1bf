package export

import (
	"encoding/base64"
	"fmt"
	"html"
	"strings"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	contributionDTO "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contributions/dto"
	contributionModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contributions/model"
	memberModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/members/model"
)

// Les documents HTML sont autoportants (styles inline) pour l'impression.

const pageStyle = `body{font-family:Arial,Helvetica,sans-serif;margin:24px;color:#111}
h1{font-size:20px;margin-bottom:4px}
.sub{color:#555;font-size:12px;margin-bottom:16px}
table{border-collapse:collapse;width:100%;font-size:12px}
th,td{border:1px solid #cbd5e1;padding:6px 8px;text-align:left}
th{background:#f1f5f9}
.totaux{margin:12px 0;font-size:13px}
.totaux span{margin-right:16px}`

func esc(s string) string { return html.EscapeString(s) }

func htmlHeader(b *strings.Builder, title, subtitle string) {
	b.WriteString("<!DOCTYPE html><html lang=\"fr\"><head><meta charset=\"utf-8\">")
	b.WriteString("<title>" + esc(title) + "</title>")
	b.WriteString("<style>" + pageStyle + "</style></head><body>")
	b.WriteString("<h1>" + esc(title) + "</h1>")
	b.WriteString("<div class=\"sub\">" + esc(subtitle) + "</div>")
}

// MemberListHTML produit la liste imprimable des membres avec les totaux
// par statut et par genre.
func MemberListHTML(members []memberModel.MemberModel, now time.Time) string {
	actifs, inactifs, sympathisants := 0, 0, 0
	hommes, femmes := 0, 0
	for _, m := range members {
		switch m.MemberStatus {
		case constants.MemberStatusActif:
			actifs++
		case constants.MemberStatusInactif:
			inactifs++
		case constants.MemberStatusSympathisant:
			sympathisants++
		}
		switch m.MemberGender {
		case constants.GenderHomme:
			hommes++
		case constants.GenderFemme:
			femmes++
		}
	}

	var b strings.Builder
	htmlHeader(&b, "AssoJereb : liste des membres", "Éditée le "+now.Format("02/01/2006"))

	b.WriteString("<div class=\"totaux\">")
	b.WriteString(fmt.Sprintf("<span><b>%d</b> membres</span>", len(members)))
	b.WriteString(fmt.Sprintf("<span>%d actifs</span><span>%d inactifs</span><span>%d sympathisants</span>", actifs, inactifs, sympathisants))
	b.WriteString(fmt.Sprintf("<span>%d hommes</span><span>%d femmes</span>", hommes, femmes))
	b.WriteString("</div>")

	b.WriteString("<table><tr><th>Numéro</th><th>Nom</th><th>Prénom</th><th>Famille</th><th>Zone</th><th>Statut</th><th>Téléphone</th></tr>")
	for _, m := range members {
		family := ""
		if m.Family != nil {
			family = m.Family.FamilyName
		}
		zone := constants.ZoneLabels[m.MemberZone]
		if zone == "" {
			zone = m.MemberZone
		}
		b.WriteString("<tr>")
		b.WriteString("<td>" + esc(m.MemberNumber) + "</td>")
		b.WriteString("<td>" + esc(m.MemberLastName) + "</td>")
		b.WriteString("<td>" + esc(m.MemberFirstName) + "</td>")
		b.WriteString("<td>" + esc(family) + "</td>")
		b.WriteString("<td>" + esc(zone) + "</td>")
		b.WriteString("<td>" + esc(constants.MemberStatusLabel(m.MemberStatus)) + "</td>")
		b.WriteString("<td>" + esc(deref(m.MemberPhone)) + "</td>")
		b.WriteString("</tr>")
	}
	b.WriteString("</table></body></html>")
	return b.String()
}

// ContributionsReportHTML produit le rapport imprimable des cotisations avec
// les agrégats calculés en un passage.
func ContributionsReportHTML(rows []contributionModel.ContributionModel, title string, now time.Time) string {
	stats := contributionDTO.ComputeStats(rows)

	var b strings.Builder
	htmlHeader(&b, "AssoJereb : "+title, "Édité le "+now.Format("02/01/2006"))

	b.WriteString("<div class=\"totaux\">")
	b.WriteString(fmt.Sprintf("<span>Encaissé : <b>%d FCFA</b></span>", stats.TotalCollected))
	b.WriteString(fmt.Sprintf("<span>%d payées</span><span>%d en attente</span><span>%d en retard</span><span>%d annulées</span>",
		stats.PaidCount, stats.PendingCount, stats.LateCount, stats.CancelledCount))
	b.WriteString("</div>")

	b.WriteString("<table><tr><th>Membre</th><th>Numéro</th><th>Type</th><th>Période</th><th>Montant</th><th>Statut</th></tr>")
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
		b.WriteString("<tr>")
		b.WriteString("<td>" + esc(name) + "</td>")
		b.WriteString("<td>" + esc(number) + "</td>")
		b.WriteString("<td>" + esc(r.ContributionType) + "</td>")
		b.WriteString("<td>" + esc(period) + "</td>")
		b.WriteString(fmt.Sprintf("<td>%d FCFA</td>", r.ContributionAmount))
		b.WriteString("<td>" + esc(r.ContributionStatus) + "</td>")
		b.WriteString("</tr>")
	}
	b.WriteString("</table></body></html>")
	return b.String()
}

// MemberCardHTML produit la carte de membre imprimable. Le QR code pointe
// vers la page publique de vérification.
func MemberCardHTML(m memberModel.MemberModel, verifyURL string) (string, error) {
	png, err := qrcode.Encode(verifyURL, qrcode.Medium, 160)
	if err != nil {
		return "", fmt.Errorf("génération du QR code: %w", err)
	}
	qrDataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)

	family := ""
	if m.Family != nil {
		family = m.Family.FamilyName
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html lang=\"fr\"><head><meta charset=\"utf-8\">")
	b.WriteString("<title>Carte de membre</title>")
	b.WriteString(`<style>body{font-family:Arial,sans-serif;display:flex;justify-content:center;padding:40px}
.carte{width:340px;border:2px solid #1e3a5f;border-radius:12px;padding:16px;background:linear-gradient(#ffffff,#eef4fb)}
.entete{font-weight:bold;color:#1e3a5f;font-size:14px;margin-bottom:10px;text-align:center}
.nom{font-size:18px;font-weight:bold;margin:4px 0}
.ligne{font-size:12px;color:#334155;margin:2px 0}
.qr{float:right;margin-left:10px}</style></head><body>`)
	b.WriteString("<div class=\"carte\">")
	b.WriteString("<div class=\"entete\">ASSOJEREB : CARTE DE MEMBRE</div>")
	b.WriteString("<img class=\"qr\" src=\"" + qrDataURI + "\" alt=\"QR de vérification\" width=\"110\" height=\"110\">")
	b.WriteString("<div class=\"nom\">" + esc(m.MemberFirstName+" "+m.MemberLastName) + "</div>")
	b.WriteString("<div class=\"ligne\">N° " + esc(m.MemberNumber) + "</div>")
	if family != "" {
		b.WriteString("<div class=\"ligne\">Famille " + esc(family) + "</div>")
	}
	b.WriteString("<div class=\"ligne\">Membre depuis le " + m.MemberJoinedAt.Format("02/01/2006") + "</div>")
	b.WriteString("<div class=\"ligne\">" + esc(constants.MemberStatusLabel(m.MemberStatus)) + "</div>")
	b.WriteString("</div></body></html>")
	return b.String(), nil
}

// VerificationPageHTML rend la page publique atteinte via le QR code.
// Un membre actif reçoit le bandeau vert "Vérifié", un inactif le bandeau
// "Membre inactif", un sympathisant un bandeau neutre.
func VerificationPageHTML(m memberModel.MemberModel) string {
	var bannerColor, bannerText string
	switch m.MemberStatus {
	case constants.MemberStatusActif:
		bannerColor, bannerText = "#16a34a", "Vérifié : membre actif"
	case constants.MemberStatusInactif:
		bannerColor, bannerText = "#dc2626", "Membre inactif"
	default:
		bannerColor, bannerText = "#6b7280", "Sympathisant"
	}

	zone := constants.ZoneLabels[m.MemberZone]
	if zone == "" {
		zone = m.MemberZone
	}
	family := ""
	if m.Family != nil {
		family = m.Family.FamilyName
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html lang=\"fr\"><head><meta charset=\"utf-8\">")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width,initial-scale=1\">")
	b.WriteString("<title>Vérification de membre</title>")
	b.WriteString(`<style>body{font-family:Arial,sans-serif;margin:0;background:#f8fafc}
.bandeau{color:#fff;padding:16px;text-align:center;font-size:18px;font-weight:bold}
.fiche{max-width:420px;margin:24px auto;background:#fff;border-radius:8px;padding:20px;box-shadow:0 1px 4px rgba(0,0,0,.1)}
.ligne{margin:6px 0;font-size:14px;color:#334155}</style></head><body>`)
	b.WriteString("<div class=\"bandeau\" style=\"background:" + bannerColor + "\">" + esc(bannerText) + "</div>")
	b.WriteString("<div class=\"fiche\">")
	b.WriteString("<div class=\"ligne\"><b>" + esc(m.MemberFirstName+" "+m.MemberLastName) + "</b></div>")
	b.WriteString("<div class=\"ligne\">N° " + esc(m.MemberNumber) + "</div>")
	if family != "" {
		b.WriteString("<div class=\"ligne\">Famille " + esc(family) + "</div>")
	}
	b.WriteString("<div class=\"ligne\">Zone : " + esc(zone) + "</div>")
	b.WriteString("<div class=\"ligne\">Genre : " + esc(m.MemberGender) + "</div>")
	if m.MemberPhone != nil && *m.MemberPhone != "" {
		b.WriteString("<div class=\"ligne\">Téléphone : " + esc(*m.MemberPhone) + "</div>")
	}
	b.WriteString("<div class=\"ligne\">Membre depuis le " + m.MemberJoinedAt.Format("02/01/2006") + "</div>")
	b.WriteString("</div></body></html>")
	return b.String()
}
