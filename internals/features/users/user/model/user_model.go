package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel représente la table users (comptes applicatifs).
type UserModel struct {
	UserID        uuid.UUID      `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserEmail     string         `gorm:"column:user_email;size:255;unique;not null" json:"user_email"`
	UserPassword  string         `gorm:"column:user_password;not null" json:"-"`
	UserGoogleID  *string        `gorm:"column:user_google_id;size:255;unique" json:"user_google_id,omitempty"`
	UserIsActive  bool           `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`

	// Relations
	Profile *ProfileModel `gorm:"foreignKey:ProfileUserID;references:UserID" json:"profile,omitempty"`
}

func (UserModel) TableName() string { return "users" }
