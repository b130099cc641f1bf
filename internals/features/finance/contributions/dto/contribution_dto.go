package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contributions/model"
)

// ========================= REQUESTS =========================

// CreateContributionRequest : montant à 0 = "appliquer le tarif de la
// catégorie du membre" (résolu côté contrôleur).
type CreateContributionRequest struct {
	ContributionMemberID uuid.UUID `json:"contribution_member_id" validate:"required"`
	ContributionType     string    `json:"contribution_type" validate:"required,oneof=mensuelle exceptionnelle droit_adhesion"`
	ContributionAmount   int64     `json:"contribution_amount" validate:"gte=0"`

	ContributionMonth *int `json:"contribution_month" validate:"omitempty,min=1,max=12"`
	ContributionYear  *int `json:"contribution_year" validate:"omitempty,min=2000,max=2100"`

	ContributionExceptionalID *uuid.UUID `json:"contribution_exceptional_id"`

	// "payee" pour un encaissement direct, sinon "en_attente"
	ContributionStatus        string  `json:"contribution_status" validate:"omitempty,oneof=payee en_attente"`
	ContributionPaymentMethod *string `json:"contribution_payment_method" validate:"omitempty,max=50"`
	ContributionPaymentRef    *string `json:"contribution_payment_ref" validate:"omitempty,max=100"`
	ContributionNotes         *string `json:"contribution_notes"`
}

type MarkPaidRequest struct {
	ContributionPaymentMethod string  `json:"contribution_payment_method" validate:"required,max=50"`
	ContributionPaymentRef    *string `json:"contribution_payment_ref" validate:"omitempty,max=100"`
	ContributionNotes         *string `json:"contribution_notes"`
}

// ========================= RESPONSES =========================

type ContributionResponse struct {
	ContributionID       uuid.UUID `json:"contribution_id"`
	ContributionMemberID uuid.UUID `json:"contribution_member_id"`
	MemberNumber         string    `json:"member_number,omitempty"`
	MemberFullName       string    `json:"member_full_name,omitempty"`

	ContributionType   string `json:"contribution_type"`
	ContributionAmount int64  `json:"contribution_amount"`

	ContributionMonth *int `json:"contribution_month,omitempty"`
	ContributionYear  *int `json:"contribution_year,omitempty"`

	ContributionExceptionalID *uuid.UUID `json:"contribution_exceptional_id,omitempty"`

	ContributionStatus        string     `json:"contribution_status"`
	ContributionPaymentMethod *string    `json:"contribution_payment_method,omitempty"`
	ContributionPaymentRef    *string    `json:"contribution_payment_ref,omitempty"`
	ContributionPaidAt        *time.Time `json:"contribution_paid_at,omitempty"`
	ContributionNotes         *string    `json:"contribution_notes,omitempty"`
	ContributionCreatedAt     time.Time  `json:"contribution_created_at"`
}

// ========================= CONVERTERS =========================

func (r CreateContributionRequest) ToModel(recordedBy *uuid.UUID) model.ContributionModel {
	m := model.ContributionModel{
		ContributionMemberID:      r.ContributionMemberID,
		ContributionType:          r.ContributionType,
		ContributionAmount:        r.ContributionAmount,
		ContributionMonth:         r.ContributionMonth,
		ContributionYear:          r.ContributionYear,
		ContributionExceptionalID: r.ContributionExceptionalID,
		ContributionStatus:        r.ContributionStatus,
		ContributionPaymentMethod: r.ContributionPaymentMethod,
		ContributionPaymentRef:    r.ContributionPaymentRef,
		ContributionNotes:         r.ContributionNotes,
		ContributionRecordedBy:    recordedBy,
	}
	if m.ContributionStatus == "" {
		m.ContributionStatus = "en_attente"
	}
	if m.ContributionStatus == "payee" {
		now := time.Now()
		m.ContributionPaidAt = &now
	}
	return m
}

func FromModel(m model.ContributionModel) ContributionResponse {
	resp := ContributionResponse{
		ContributionID:            m.ContributionID,
		ContributionMemberID:      m.ContributionMemberID,
		ContributionType:          m.ContributionType,
		ContributionAmount:        m.ContributionAmount,
		ContributionMonth:         m.ContributionMonth,
		ContributionYear:          m.ContributionYear,
		ContributionExceptionalID: m.ContributionExceptionalID,
		ContributionStatus:        m.ContributionStatus,
		ContributionPaymentMethod: m.ContributionPaymentMethod,
		ContributionPaymentRef:    m.ContributionPaymentRef,
		ContributionPaidAt:        m.ContributionPaidAt,
		ContributionNotes:         m.ContributionNotes,
		ContributionCreatedAt:     m.ContributionCreatedAt,
	}
	if m.Member != nil {
		resp.MemberNumber = m.Member.MemberNumber
		resp.MemberFullName = m.Member.MemberFirstName + " " + m.Member.MemberLastName
	}
	return resp
}

func FromModels(ms []model.ContributionModel) []ContributionResponse {
	out := make([]ContributionResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
