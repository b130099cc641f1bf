package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Le refresh token est stocké haché (HMAC-SHA256), jamais en clair.
type RefreshTokenModel struct {
	RefreshTokenID        uuid.UUID      `gorm:"column:refresh_token_id;type:uuid;default:gen_random_uuid();primaryKey" json:"refresh_token_id"`
	RefreshTokenUserID    uuid.UUID      `gorm:"column:refresh_token_user_id;type:uuid;not null;index" json:"refresh_token_user_id"`
	RefreshTokenHash      []byte         `gorm:"column:refresh_token_hash;type:bytea;not null;uniqueIndex" json:"-"`
	RefreshTokenExpiresAt time.Time      `gorm:"column:refresh_token_expires_at;not null" json:"refresh_token_expires_at"`
	RefreshTokenCreatedAt time.Time      `gorm:"column:refresh_token_created_at;autoCreateTime" json:"refresh_token_created_at"`
	RefreshTokenDeletedAt gorm.DeletedAt `gorm:"column:refresh_token_deleted_at;index" json:"-"`
}

func (RefreshTokenModel) TableName() string { return "refresh_tokens" }
