package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationQueueModel : file d'envoi (email / SMS). Les lignes sont
// produites par le job de relance et consommées par le dispatcher.
type NotificationQueueModel struct {
	NotificationID       uuid.UUID  `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`
	NotificationMemberID *uuid.UUID `gorm:"column:notification_member_id;type:uuid;index" json:"notification_member_id,omitempty"`

	NotificationChannel   string `gorm:"column:notification_channel;type:varchar(10);not null" json:"notification_channel"`
	NotificationRecipient string `gorm:"column:notification_recipient;size:255;not null" json:"notification_recipient"`
	NotificationSubject   string `gorm:"column:notification_subject;size:255" json:"notification_subject"`
	NotificationBody      string `gorm:"column:notification_body;type:text;not null" json:"notification_body"`

	NotificationStatus     string     `gorm:"column:notification_status;type:varchar(20);not null;default:'en_attente';index" json:"notification_status"`
	NotificationRetryCount int        `gorm:"column:notification_retry_count;not null;default:0" json:"notification_retry_count"`
	NotificationLastError  *string    `gorm:"column:notification_last_error;type:text" json:"notification_last_error,omitempty"`
	NotificationSentAt     *time.Time `gorm:"column:notification_sent_at" json:"notification_sent_at,omitempty"`

	// Contexte libre (période concernée, montant…)
	NotificationPayload datatypes.JSONMap `gorm:"column:notification_payload;type:jsonb" json:"notification_payload,omitempty"`

	NotificationScheduledAt time.Time `gorm:"column:notification_scheduled_at;not null;default:now();index" json:"notification_scheduled_at"`
	NotificationCreatedAt   time.Time `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
	NotificationUpdatedAt   time.Time `gorm:"column:notification_updated_at;autoUpdateTime" json:"notification_updated_at"`
}

func (NotificationQueueModel) TableName() string { return "notification_queue" }
