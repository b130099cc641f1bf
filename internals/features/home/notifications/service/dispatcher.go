package service

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/home/notifications/model"
)

const (
	dispatchBatchSize = 50
	maxSendAttempts   = 3
)

// DispatchPending consomme un lot de notifications en attente dont l'heure
// d'envoi est passée. Après maxSendAttempts échecs la ligne passe en
// "abandonnee" et n'est plus jamais retentée.
func DispatchPending(db *gorm.DB) (sent, failed int) {
	var batch []model.NotificationQueueModel
	err := db.
		Where("notification_status IN ?", []string{
			constants.NotificationStatusEnAttente,
			constants.NotificationStatusEchouee,
		}).
		Where("notification_scheduled_at <= ?", time.Now()).
		Where("notification_retry_count < ?", maxSendAttempts).
		Order("notification_scheduled_at ASC").
		Limit(dispatchBatchSize).
		Find(&batch).Error
	if err != nil {
		log.Printf("⚠️ Lecture de la file de notifications: %v", err)
		return 0, 0
	}

	for _, n := range batch {
		sender, err := SenderFor(n.NotificationChannel)
		if err != nil {
			msg := err.Error()
			db.Model(&model.NotificationQueueModel{}).
				Where("notification_id = ?", n.NotificationID).
				Updates(map[string]interface{}{
					"notification_status":     constants.NotificationStatusAbandonnee,
					"notification_last_error": msg,
				})
			failed++
			continue
		}

		if err := sender.Send(n); err != nil {
			failed++
			msg := err.Error()
			patch := map[string]interface{}{
				"notification_status":      constants.NotificationStatusEchouee,
				"notification_retry_count": n.NotificationRetryCount + 1,
				"notification_last_error":  msg,
			}
			if n.NotificationRetryCount+1 >= maxSendAttempts {
				patch["notification_status"] = constants.NotificationStatusAbandonnee
			}
			db.Model(&model.NotificationQueueModel{}).
				Where("notification_id = ?", n.NotificationID).
				Updates(patch)
			continue
		}

		now := time.Now()
		db.Model(&model.NotificationQueueModel{}).
			Where("notification_id = ?", n.NotificationID).
			Updates(map[string]interface{}{
				"notification_status":  constants.NotificationStatusEnvoyee,
				"notification_sent_at": now,
			})
		sent++
	}
	return sent, failed
}

// StartDispatcher lance la boucle d'envoi en tâche de fond.
func StartDispatcher(db *gorm.DB, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			if sent, failed := DispatchPending(db); sent > 0 || failed > 0 {
				log.Printf("📨 Notifications: %d envoyée(s), %d en échec", sent, failed)
			}
		}
	}()
}
