package service

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	contributionModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contributions/model"
	notificationModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/home/notifications/model"
)

// Seuil de bascule en retard : à partir du 16 du mois.
const OverdueDayThreshold = 16

// ReminderStats : résumé renvoyé par une exécution du job.
type ReminderStats struct {
	TotalActiveMembers          int `json:"totalActiveMembers"`
	MembersNeedingReminder      int `json:"membersNeedingReminder"`
	NotificationsQueued         int `json:"notificationsQueued"`
	PendingContributionsCreated int `json:"pendingContributionsCreated"`
	OverdueEscalated            int `json:"overdueEscalated"`
}

// Candidate : vue d'un membre actif jointe à sa catégorie, suffisante pour
// décider de la relance sans retoucher la base.
type Candidate struct {
	MemberID       uuid.UUID
	FirstName      string
	LastName       string
	Email          *string
	Phone          *string
	CategoryAmount int64

	// Statut de la cotisation mensuelle du mois courant, nil si aucune ligne
	ExistingStatus *string
}

// NeedsReminder : un membre est relancé si et seulement si il est actif
// (les candidats sont déjà filtrés sur le statut), sa catégorie a un tarif
// non nul, il a au moins un canal de contact, et sa cotisation du mois est
// absente, en attente ou en retard.
func (c Candidate) NeedsReminder() bool {
	if c.CategoryAmount <= 0 {
		return false
	}
	if !c.HasContactChannel() {
		return false
	}
	if c.ExistingStatus == nil {
		return true
	}
	return *c.ExistingStatus == constants.ContributionStatusEnAttente ||
		*c.ExistingStatus == constants.ContributionStatusEnRetard
}

func (c Candidate) HasContactChannel() bool {
	return (c.Email != nil && *c.Email != "") || (c.Phone != nil && *c.Phone != "")
}

// ShouldEscalate : la bascule en retard n'a lieu qu'à partir du 16 du mois.
func ShouldEscalate(now time.Time) bool {
	return now.Day() >= OverdueDayThreshold
}

// EscalatedStatus : seule une cotisation "en_attente" bascule en "en_retard".
// Tout autre statut (y compris "en_retard") est conservé tel quel, une
// seconde passe sur la même période ne change donc plus rien.
func EscalatedStatus(status string) (string, bool) {
	if status == constants.ContributionStatusEnAttente {
		return constants.ContributionStatusEnRetard, true
	}
	return status, false
}

// ReminderMessage : corps localisé de la relance pour un canal donné.
func ReminderMessage(c Candidate, month, year int) (subject, body string) {
	subject = fmt.Sprintf("Rappel de cotisation %02d/%d", month, year)
	body = fmt.Sprintf(
		"Bonjour %s %s, votre cotisation de %d FCFA pour %02d/%d est en attente de paiement. Merci de vous rapprocher de la trésorerie.",
		c.FirstName, c.LastName, c.CategoryAmount, month, year,
	)
	return subject, body
}

// Run exécute le job de relance pour le mois de `now`.
//
//  1. Charge les membres actifs et le tarif de leur catégorie.
//  2. Charge les cotisations mensuelles de la période et les projette par membre.
//  3. Pour chaque membre éligible, une notification par canal disponible.
//  4. Les membres sans ligne du tout reçoivent une cotisation "en_attente",
//     insérée avec ON CONFLICT DO NOTHING : deux exécutions concurrentes ne
//     peuvent pas doubler la période.
//  5. À partir du 16, les "en_attente" de la période passent en "en_retard",
//     mais uniquement pour les membres éligibles et les lignes antérieures au
//     démarrage du job, pour ne pas basculer celles créées par une autre
//     invocation en cours.
func Run(db *gorm.DB, now time.Time) (ReminderStats, error) {
	stats := ReminderStats{}
	month, year := int(now.Month()), now.Year()
	jobStart := now

	// 1. Membres actifs + tarif de catégorie
	var candidates []Candidate
	err := db.Table("members").
		Select(`members.member_id AS member_id,
			members.member_first_name AS first_name,
			members.member_last_name AS last_name,
			members.member_email AS email,
			members.member_phone AS phone,
			COALESCE(contribution_categories.category_monthly_amount, 0) AS category_amount`).
		Joins("LEFT JOIN contribution_categories ON contribution_categories.category_id = members.member_category_id AND contribution_categories.category_deleted_at IS NULL").
		Where("members.member_status = ?", constants.MemberStatusActif).
		Where("members.member_deleted_at IS NULL").
		Scan(&candidates).Error
	if err != nil {
		return stats, fmt.Errorf("chargement des membres actifs: %w", err)
	}
	stats.TotalActiveMembers = len(candidates)

	// 2. Cotisations mensuelles de la période
	var existing []contributionModel.ContributionModel
	err = db.
		Where("contribution_type = ?", constants.ContributionTypeMensuelle).
		Where("contribution_month = ? AND contribution_year = ?", month, year).
		Find(&existing).Error
	if err != nil {
		return stats, fmt.Errorf("chargement des cotisations de la période: %w", err)
	}
	statusByMember := make(map[uuid.UUID]string, len(existing))
	for _, row := range existing {
		statusByMember[row.ContributionMemberID] = row.ContributionStatus
	}
	for i := range candidates {
		if s, ok := statusByMember[candidates[i].MemberID]; ok {
			status := s
			candidates[i].ExistingStatus = &status
		}
	}

	// 3 + 4. Relances et lignes manquantes
	var notifications []notificationModel.NotificationQueueModel
	var pendingRows []contributionModel.ContributionModel
	eligibleIDs := make([]uuid.UUID, 0, len(candidates))

	for _, cand := range candidates {
		if !cand.NeedsReminder() {
			continue
		}
		stats.MembersNeedingReminder++
		eligibleIDs = append(eligibleIDs, cand.MemberID)

		subject, body := ReminderMessage(cand, month, year)
		payload := datatypes.JSONMap{
			"month":  month,
			"year":   year,
			"amount": cand.CategoryAmount,
		}
		memberID := cand.MemberID
		if cand.Email != nil && *cand.Email != "" {
			notifications = append(notifications, notificationModel.NotificationQueueModel{
				NotificationMemberID:    &memberID,
				NotificationChannel:     constants.NotificationChannelEmail,
				NotificationRecipient:   *cand.Email,
				NotificationSubject:     subject,
				NotificationBody:        body,
				NotificationStatus:      constants.NotificationStatusEnAttente,
				NotificationPayload:     payload,
				NotificationScheduledAt: now,
			})
		}
		if cand.Phone != nil && *cand.Phone != "" {
			notifications = append(notifications, notificationModel.NotificationQueueModel{
				NotificationMemberID:    &memberID,
				NotificationChannel:     constants.NotificationChannelSMS,
				NotificationRecipient:   *cand.Phone,
				NotificationSubject:     subject,
				NotificationBody:        body,
				NotificationStatus:      constants.NotificationStatusEnAttente,
				NotificationPayload:     payload,
				NotificationScheduledAt: now,
			})
		}

		if cand.ExistingStatus == nil {
			m, y := month, year
			pendingRows = append(pendingRows, contributionModel.ContributionModel{
				ContributionMemberID: cand.MemberID,
				ContributionType:     constants.ContributionTypeMensuelle,
				ContributionAmount:   cand.CategoryAmount,
				ContributionMonth:    &m,
				ContributionYear:     &y,
				ContributionStatus:   constants.ContributionStatusEnAttente,
			})
		}
	}

	if len(notifications) > 0 {
		if err := db.Create(&notifications).Error; err != nil {
			return stats, fmt.Errorf("mise en file des relances: %w", err)
		}
		stats.NotificationsQueued = len(notifications)
	}

	if len(pendingRows) > 0 {
		// S'appuie sur l'index unique partiel (membre, mois, année) des
		// cotisations mensuelles.
		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&pendingRows)
		if res.Error != nil {
			return stats, fmt.Errorf("création des cotisations en attente: %w", res.Error)
		}
		stats.PendingContributionsCreated = int(res.RowsAffected)
	}

	// 5. Bascule en retard. Les lignes candidates viennent de `existing`,
	// chargées avant toute écriture du job : les cotisations créées à
	// l'étape 4 ne peuvent donc pas basculer dans la même exécution.
	if ShouldEscalate(now) && len(eligibleIDs) > 0 {
		eligible := make(map[uuid.UUID]bool, len(eligibleIDs))
		for _, id := range eligibleIDs {
			eligible[id] = true
		}
		var escalateIDs []uuid.UUID
		for _, row := range existing {
			if !eligible[row.ContributionMemberID] {
				continue
			}
			if _, ok := EscalatedStatus(row.ContributionStatus); ok {
				escalateIDs = append(escalateIDs, row.ContributionID)
			}
		}
		if len(escalateIDs) > 0 {
			res := db.Model(&contributionModel.ContributionModel{}).
				Where("contribution_id IN ?", escalateIDs).
				Where("contribution_status = ?", constants.ContributionStatusEnAttente).
				Where("contribution_created_at < ?", jobStart).
				Update("contribution_status", constants.ContributionStatusEnRetard)
			if res.Error != nil {
				return stats, fmt.Errorf("bascule en retard: %w", res.Error)
			}
			stats.OverdueEscalated = int(res.RowsAffected)
		}
	}

	log.Printf("🔔 Relances %02d/%d : %d membre(s) actif(s), %d à relancer, %d notification(s), %d cotisation(s) créée(s), %d retard(s)",
		month, year, stats.TotalActiveMembers, stats.MembersNeedingReminder,
		stats.NotificationsQueued, stats.PendingContributionsCreated, stats.OverdueEscalated)

	return stats, nil
}

// StartScheduler déclenche le job une fois par jour.
func StartScheduler(db *gorm.DB, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			if _, err := Run(db, time.Now()); err != nil {
				log.Printf("⚠️ Job de relance: %v", err)
			}
		}
	}()
}
