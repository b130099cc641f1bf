package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel : 1-1 avec users. must_change_password force le client à
// afficher la modale de changement au premier login (compte créé par un admin).
type ProfileModel struct {
	ProfileID                 uuid.UUID `gorm:"column:profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"profile_id"`
	ProfileUserID             uuid.UUID `gorm:"column:profile_user_id;type:uuid;not null;uniqueIndex" json:"profile_user_id"`
	ProfileFullName           string    `gorm:"column:profile_full_name;size:255;not null" json:"profile_full_name"`
	ProfilePhone              *string   `gorm:"column:profile_phone;size:30" json:"profile_phone,omitempty"`
	ProfileAvatarURL          *string   `gorm:"column:profile_avatar_url;type:text" json:"profile_avatar_url,omitempty"`
	ProfileMustChangePassword bool      `gorm:"column:profile_must_change_password;not null;default:false" json:"profile_must_change_password"`
	ProfileCreatedAt          time.Time `gorm:"column:profile_created_at;autoCreateTime" json:"profile_created_at"`
	ProfileUpdatedAt          time.Time `gorm:"column:profile_updated_at;autoUpdateTime" json:"profile_updated_at"`
}

func (ProfileModel) TableName() string { return "profiles" }
