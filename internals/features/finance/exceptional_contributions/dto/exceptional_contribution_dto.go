package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/exceptional_contributions/model"
)

type CreateExceptionalRequest struct {
	ExceptionalTitle       string  `json:"exceptional_title" validate:"required,min=3,max=200"`
	ExceptionalDescription *string `json:"exceptional_description"`
	ExceptionalAmount      int64   `json:"exceptional_amount" validate:"required,gt=0"`
	ExceptionalDueDate     *string `json:"exceptional_due_date" validate:"omitempty,datetime=2006-01-02"`
	ExceptionalIsMandatory bool    `json:"exceptional_is_mandatory"`
}

type UpdateExceptionalRequest struct {
	ExceptionalTitle       *string `json:"exceptional_title" validate:"omitempty,min=3,max=200"`
	ExceptionalDescription *string `json:"exceptional_description"`
	ExceptionalAmount      *int64  `json:"exceptional_amount" validate:"omitempty,gt=0"`
	ExceptionalDueDate     *string `json:"exceptional_due_date" validate:"omitempty,datetime=2006-01-02"`
	ExceptionalIsMandatory *bool   `json:"exceptional_is_mandatory"`
	ExceptionalIsActive    *bool   `json:"exceptional_is_active"`
}

type ExceptionalResponse struct {
	ExceptionalID          uuid.UUID `json:"exceptional_id"`
	ExceptionalTitle       string    `json:"exceptional_title"`
	ExceptionalDescription *string   `json:"exceptional_description,omitempty"`
	ExceptionalAmount      int64     `json:"exceptional_amount"`
	ExceptionalDueDate     *string   `json:"exceptional_due_date,omitempty"`
	ExceptionalIsMandatory bool      `json:"exceptional_is_mandatory"`
	ExceptionalIsActive    bool      `json:"exceptional_is_active"`
	ExceptionalCreatedAt   time.Time `json:"exceptional_created_at"`
}

func (r CreateExceptionalRequest) ToModel(createdBy *uuid.UUID) model.ExceptionalContributionModel {
	m := model.ExceptionalContributionModel{
		ExceptionalTitle:       r.ExceptionalTitle,
		ExceptionalDescription: r.ExceptionalDescription,
		ExceptionalAmount:      r.ExceptionalAmount,
		ExceptionalIsMandatory: r.ExceptionalIsMandatory,
		ExceptionalIsActive:    true,
		ExceptionalCreatedBy:   createdBy,
	}
	if r.ExceptionalDueDate != nil {
		if t, err := time.Parse("2006-01-02", *r.ExceptionalDueDate); err == nil {
			m.ExceptionalDueDate = &t
		}
	}
	return m
}

func ToExceptionalDTO(m model.ExceptionalContributionModel) ExceptionalResponse {
	resp := ExceptionalResponse{
		ExceptionalID:          m.ExceptionalID,
		ExceptionalTitle:       m.ExceptionalTitle,
		ExceptionalDescription: m.ExceptionalDescription,
		ExceptionalAmount:      m.ExceptionalAmount,
		ExceptionalIsMandatory: m.ExceptionalIsMandatory,
		ExceptionalIsActive:    m.ExceptionalIsActive,
		ExceptionalCreatedAt:   m.ExceptionalCreatedAt,
	}
	if m.ExceptionalDueDate != nil {
		s := m.ExceptionalDueDate.Format("2006-01-02")
		resp.ExceptionalDueDate = &s
	}
	return resp
}

func ToExceptionalDTOs(ms []model.ExceptionalContributionModel) []ExceptionalResponse {
	out := make([]ExceptionalResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToExceptionalDTO(m))
	}
	return out
}
