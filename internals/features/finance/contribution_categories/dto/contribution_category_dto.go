package dto

import (
	"github.com/google/uuid"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contribution_categories/model"
)

type CreateCategoryRequest struct {
	CategoryName          string  `json:"category_name" validate:"required,min=2,max=100"`
	CategoryDescription   *string `json:"category_description"`
	CategoryMonthlyAmount int64   `json:"category_monthly_amount" validate:"gte=0"`
	CategoryDisplayOrder  int     `json:"category_display_order"`
}

type UpdateCategoryRequest struct {
	CategoryName          *string `json:"category_name" validate:"omitempty,min=2,max=100"`
	CategoryDescription   *string `json:"category_description"`
	CategoryMonthlyAmount *int64  `json:"category_monthly_amount" validate:"omitempty,gte=0"`
	CategoryIsActive      *bool   `json:"category_is_active"`
	CategoryDisplayOrder  *int    `json:"category_display_order"`
}

type CategoryResponse struct {
	CategoryID            uuid.UUID `json:"category_id"`
	CategoryName          string    `json:"category_name"`
	CategoryDescription   *string   `json:"category_description,omitempty"`
	CategoryMonthlyAmount int64     `json:"category_monthly_amount"`
	CategoryIsActive      bool      `json:"category_is_active"`
	CategoryDisplayOrder  int       `json:"category_display_order"`
}

func (r CreateCategoryRequest) ToModel() model.ContributionCategoryModel {
	return model.ContributionCategoryModel{
		CategoryName:          r.CategoryName,
		CategoryDescription:   r.CategoryDescription,
		CategoryMonthlyAmount: r.CategoryMonthlyAmount,
		CategoryIsActive:      true,
		CategoryDisplayOrder:  r.CategoryDisplayOrder,
	}
}

func ToCategoryDTO(m model.ContributionCategoryModel) CategoryResponse {
	return CategoryResponse{
		CategoryID:            m.CategoryID,
		CategoryName:          m.CategoryName,
		CategoryDescription:   m.CategoryDescription,
		CategoryMonthlyAmount: m.CategoryMonthlyAmount,
		CategoryIsActive:      m.CategoryIsActive,
		CategoryDisplayOrder:  m.CategoryDisplayOrder,
	}
}

func ToCategoryDTOs(ms []model.ContributionCategoryModel) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToCategoryDTO(m))
	}
	return out
}
