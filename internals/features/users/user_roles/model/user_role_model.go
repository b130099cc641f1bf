package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRoleModel : rôle porté par un compte. Le scope famille n'a de sens
// que pour chef_famille / responsable_famille.
// Contrainte : au plus une ligne par (user, famille), index unique partiel
// côté DB + garde applicative dans le controller.
type UserRoleModel struct {
	UserRoleID        uuid.UUID  `gorm:"column:user_role_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_role_id"`
	UserRoleUserID    uuid.UUID  `gorm:"column:user_role_user_id;type:uuid;not null;index" json:"user_role_user_id"`
	UserRoleRole      string     `gorm:"column:user_role_role;type:varchar(30);not null" json:"user_role_role"`
	UserRoleFamilyID  *uuid.UUID `gorm:"column:user_role_family_id;type:uuid" json:"user_role_family_id,omitempty"`
	UserRoleCreatedAt time.Time  `gorm:"column:user_role_created_at;autoCreateTime" json:"user_role_created_at"`
	UserRoleUpdatedAt time.Time  `gorm:"column:user_role_updated_at;autoUpdateTime" json:"user_role_updated_at"`
}

func (UserRoleModel) TableName() string { return "user_roles" }
