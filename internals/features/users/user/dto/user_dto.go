package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/user/model"
)

// ============================
// Response DTO
// ============================
type UserDTO struct {
	UserID             uuid.UUID `json:"user_id"`
	UserEmail          string    `json:"user_email"`
	UserIsActive       bool      `json:"user_is_active"`
	FullName           string    `json:"full_name"`
	Phone              *string   `json:"phone,omitempty"`
	AvatarURL          *string   `json:"avatar_url,omitempty"`
	MustChangePassword bool      `json:"must_change_password"`
	CreatedAt          time.Time `json:"created_at"`
}

// ============================
// Create Request DTO (compte créé par un admin)
// ============================
type CreateUserRequest struct {
	Email        string  `json:"email" validate:"required,email"`
	TempPassword string  `json:"temp_password" validate:"required,min=8"`
	FullName     string  `json:"full_name" validate:"required,min=3,max=255"`
	Phone        *string `json:"phone" validate:"omitempty,max=30"`
}

// ============================
// Update Profile Request DTO
// ============================
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name" validate:"omitempty,min=3,max=255"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	AvatarURL *string `json:"avatar_url"`
}

// ============================
// Converter
// ============================
func ToUserDTO(u model.UserModel, p *model.ProfileModel) UserDTO {
	out := UserDTO{
		UserID:       u.UserID,
		UserEmail:    u.UserEmail,
		UserIsActive: u.UserIsActive,
		FullName:     u.UserEmail,
		CreatedAt:    u.UserCreatedAt,
	}
	if p != nil {
		out.FullName = p.ProfileFullName
		out.Phone = p.ProfilePhone
		out.AvatarURL = p.ProfileAvatarURL
		out.MustChangePassword = p.ProfileMustChangePassword
	}
	return out
}
