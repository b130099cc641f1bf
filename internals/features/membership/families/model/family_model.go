package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FamilyModel : les grandes familles de l'association (six lignes en pratique).
type FamilyModel struct {
	FamilyID           uuid.UUID      `gorm:"column:family_id;type:uuid;default:gen_random_uuid();primaryKey" json:"family_id"`
	FamilyName         string         `gorm:"column:family_name;size:150;not null;unique" json:"family_name"`
	FamilyDescription  *string        `gorm:"column:family_description;type:text" json:"family_description,omitempty"`
	FamilyDisplayOrder int            `gorm:"column:family_display_order;not null;default:0" json:"family_display_order"`
	FamilyCreatedAt    time.Time      `gorm:"column:family_created_at;autoCreateTime" json:"family_created_at"`
	FamilyUpdatedAt    time.Time      `gorm:"column:family_updated_at;autoUpdateTime" json:"family_updated_at"`
	FamilyDeletedAt    gorm.DeletedAt `gorm:"column:family_deleted_at;index" json:"-"`
}

func (FamilyModel) TableName() string { return "families" }
