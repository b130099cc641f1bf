package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/houses/model"
)

type HouseDTO struct {
	HouseID          uuid.UUID  `json:"house_id"`
	HouseNumber      int        `json:"house_number"`
	HouseName        *string    `json:"house_name,omitempty"`
	HouseDescription *string    `json:"house_description,omitempty"`
	HouseFamilyID    *uuid.UUID `json:"house_family_id,omitempty"`
	HouseCreatedAt   time.Time  `json:"house_created_at"`
}

type CreateHouseRequest struct {
	HouseNumber      int        `json:"house_number" validate:"required,gt=0"`
	HouseName        *string    `json:"house_name" validate:"omitempty,max=150"`
	HouseDescription *string    `json:"house_description"`
	HouseFamilyID    *uuid.UUID `json:"house_family_id"`
}

type UpdateHouseRequest struct {
	HouseNumber      *int       `json:"house_number" validate:"omitempty,gt=0"`
	HouseName        *string    `json:"house_name" validate:"omitempty,max=150"`
	HouseDescription *string    `json:"house_description"`
	HouseFamilyID    *uuid.UUID `json:"house_family_id"`
}

func ToHouseDTO(m model.HouseModel) HouseDTO {
	return HouseDTO{
		HouseID:          m.HouseID,
		HouseNumber:      m.HouseNumber,
		HouseName:        m.HouseName,
		HouseDescription: m.HouseDescription,
		HouseFamilyID:    m.HouseFamilyID,
		HouseCreatedAt:   m.HouseCreatedAt,
	}
}

func ToHouseDTOs(models []model.HouseModel) []HouseDTO {
	out := make([]HouseDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToHouseDTO(m))
	}
	return out
}

func (r CreateHouseRequest) ToModel() model.HouseModel {
	return model.HouseModel{
		HouseNumber:      r.HouseNumber,
		HouseName:        r.HouseName,
		HouseDescription: r.HouseDescription,
		HouseFamilyID:    r.HouseFamilyID,
	}
}
