package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler purge chaque heure les tokens révoqués
// expirés et les refresh tokens périmés.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()

			res := db.Unscoped().
				Where("token_blacklist_expired_at < ?", now).
				Delete(&model.TokenBlacklistModel{})
			if res.Error != nil {
				log.Printf("⚠️ Purge de la blacklist: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("🧹 Blacklist: %d token(s) expiré(s) purgé(s)", res.RowsAffected)
			}

			res = db.Unscoped().
				Where("refresh_token_expires_at < ?", now).
				Delete(&model.RefreshTokenModel{})
			if res.Error != nil {
				log.Printf("⚠️ Purge des refresh tokens: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("🧹 Refresh tokens: %d purgé(s)", res.RowsAffected)
			}
		}
	}()
}
