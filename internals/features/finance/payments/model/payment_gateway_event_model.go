package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentGatewayEventModel : trace brute de chaque notification reçue de la
// passerelle de paiement, conservée pour l'audit des commissaires aux comptes.
type PaymentGatewayEventModel struct {
	EventID        uuid.UUID         `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventOrderID   string            `gorm:"column:event_order_id;size:100;not null;index" json:"event_order_id"`
	EventStatus    string            `gorm:"column:event_status;size:50;not null" json:"event_status"`
	EventValidSig  bool              `gorm:"column:event_valid_sig;not null;default:false" json:"event_valid_sig"`
	EventPayload   datatypes.JSONMap `gorm:"column:event_payload;type:jsonb" json:"event_payload,omitempty"`
	EventCreatedAt time.Time         `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
}

func (PaymentGatewayEventModel) TableName() string { return "payment_gateway_events" }
