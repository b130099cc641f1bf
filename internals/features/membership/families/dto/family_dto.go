package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/families/model"
)

type FamilyDTO struct {
	FamilyID           uuid.UUID `json:"family_id"`
	FamilyName         string    `json:"family_name"`
	FamilyDescription  *string   `json:"family_description,omitempty"`
	FamilyDisplayOrder int       `json:"family_display_order"`
	FamilyCreatedAt    time.Time `json:"family_created_at"`
}

type CreateFamilyRequest struct {
	FamilyName         string  `json:"family_name" validate:"required,min=2,max=150"`
	FamilyDescription  *string `json:"family_description"`
	FamilyDisplayOrder int     `json:"family_display_order" validate:"gte=0"`
}

type UpdateFamilyRequest struct {
	FamilyName         *string `json:"family_name" validate:"omitempty,min=2,max=150"`
	FamilyDescription  *string `json:"family_description"`
	FamilyDisplayOrder *int    `json:"family_display_order" validate:"omitempty,gte=0"`
}

func ToFamilyDTO(m model.FamilyModel) FamilyDTO {
	return FamilyDTO{
		FamilyID:           m.FamilyID,
		FamilyName:         m.FamilyName,
		FamilyDescription:  m.FamilyDescription,
		FamilyDisplayOrder: m.FamilyDisplayOrder,
		FamilyCreatedAt:    m.FamilyCreatedAt,
	}
}

func ToFamilyDTOs(models []model.FamilyModel) []FamilyDTO {
	out := make([]FamilyDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToFamilyDTO(m))
	}
	return out
}

func (r CreateFamilyRequest) ToModel() model.FamilyModel {
	return model.FamilyModel{
		FamilyName:         r.FamilyName,
		FamilyDescription:  r.FamilyDescription,
		FamilyDisplayOrder: r.FamilyDisplayOrder,
	}
}
