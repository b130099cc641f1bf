package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	memberModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/members/model"
)

// ContributionModel : une cotisation due ou payée par un membre.
// Pour le type "mensuelle", le couple (membre, mois, année) est unique ;
// l'index partiel est posé par la migration SQL (uq_contributions_monthly).
type ContributionModel struct {
	ContributionID     uuid.UUID `gorm:"column:contribution_id;type:uuid;default:gen_random_uuid();primaryKey" json:"contribution_id"`
	ContributionMemberID uuid.UUID `gorm:"column:contribution_member_id;type:uuid;not null;index" json:"contribution_member_id"`

	ContributionType   string `gorm:"column:contribution_type;type:varchar(20);not null" json:"contribution_type"`
	ContributionAmount int64  `gorm:"column:contribution_amount;not null" json:"contribution_amount"`

	// Période : renseignée uniquement pour les cotisations mensuelles
	ContributionMonth *int `gorm:"column:contribution_month" json:"contribution_month,omitempty"`
	ContributionYear  *int `gorm:"column:contribution_year" json:"contribution_year,omitempty"`

	// Campagne : renseignée uniquement pour les cotisations exceptionnelles
	ContributionExceptionalID *uuid.UUID `gorm:"column:contribution_exceptional_id;type:uuid" json:"contribution_exceptional_id,omitempty"`

	ContributionStatus string `gorm:"column:contribution_status;type:varchar(20);not null;default:'en_attente';index" json:"contribution_status"`

	ContributionPaymentMethod *string    `gorm:"column:contribution_payment_method;size:50" json:"contribution_payment_method,omitempty"`
	ContributionPaymentRef    *string    `gorm:"column:contribution_payment_ref;size:100" json:"contribution_payment_ref,omitempty"`
	ContributionPaidAt        *time.Time `gorm:"column:contribution_paid_at" json:"contribution_paid_at,omitempty"`

	ContributionGatewayOrderID *string `gorm:"column:contribution_gateway_order_id;size:100;index" json:"contribution_gateway_order_id,omitempty"`

	ContributionRecordedBy *uuid.UUID `gorm:"column:contribution_recorded_by;type:uuid" json:"contribution_recorded_by,omitempty"`
	ContributionNotes      *string    `gorm:"column:contribution_notes;type:text" json:"contribution_notes,omitempty"`

	ContributionCreatedAt time.Time      `gorm:"column:contribution_created_at;autoCreateTime" json:"contribution_created_at"`
	ContributionUpdatedAt time.Time      `gorm:"column:contribution_updated_at;autoUpdateTime" json:"contribution_updated_at"`
	ContributionDeletedAt gorm.DeletedAt `gorm:"column:contribution_deleted_at;index" json:"-"`

	Member *memberModel.MemberModel `gorm:"foreignKey:ContributionMemberID;references:MemberID" json:"member,omitempty"`
}

func (ContributionModel) TableName() string { return "contributions" }
