package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/user_roles/model"
)

// ============================
// Response DTO
// ============================
type UserRoleDTO struct {
	UserRoleID       uuid.UUID  `json:"user_role_id"`
	UserRoleUserID   uuid.UUID  `json:"user_role_user_id"`
	UserRoleRole     string     `json:"user_role_role"`
	UserRoleFamilyID *uuid.UUID `json:"user_role_family_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ============================
// Create Request DTO
// ============================
type CreateUserRoleRequest struct {
	UserRoleUserID   uuid.UUID  `json:"user_role_user_id" validate:"required"`
	UserRoleRole     string     `json:"user_role_role" validate:"required,oneof=admin president vice_president tresorier tresorier_adjoint commissaire_comptes chef_famille responsable_famille membre"`
	UserRoleFamilyID *uuid.UUID `json:"user_role_family_id"`
}

// ============================
// Update Request DTO
// ============================
type UpdateUserRoleRequest struct {
	UserRoleRole     *string    `json:"user_role_role" validate:"omitempty,oneof=admin president vice_president tresorier tresorier_adjoint commissaire_comptes chef_famille responsable_famille membre"`
	UserRoleFamilyID *uuid.UUID `json:"user_role_family_id"`
}

// ============================
// Converter
// ============================
func ToUserRoleDTO(m model.UserRoleModel) UserRoleDTO {
	return UserRoleDTO{
		UserRoleID:       m.UserRoleID,
		UserRoleUserID:   m.UserRoleUserID,
		UserRoleRole:     m.UserRoleRole,
		UserRoleFamilyID: m.UserRoleFamilyID,
		CreatedAt:        m.UserRoleCreatedAt,
	}
}

func ToUserRoleDTOs(models []model.UserRoleModel) []UserRoleDTO {
	out := make([]UserRoleDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToUserRoleDTO(m))
	}
	return out
}

func (r CreateUserRoleRequest) ToModel() model.UserRoleModel {
	return model.UserRoleModel{
		UserRoleUserID:   r.UserRoleUserID,
		UserRoleRole:     r.UserRoleRole,
		UserRoleFamilyID: r.UserRoleFamilyID,
	}
}
