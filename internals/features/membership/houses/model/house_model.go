package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HouseModel : concession numérotée, rattachée (ou non) à une famille.
// Le numéro est unique par déploiement.
type HouseModel struct {
	HouseID          uuid.UUID      `gorm:"column:house_id;type:uuid;default:gen_random_uuid();primaryKey" json:"house_id"`
	HouseNumber      int            `gorm:"column:house_number;not null;uniqueIndex" json:"house_number"`
	HouseName        *string        `gorm:"column:house_name;size:150" json:"house_name,omitempty"`
	HouseDescription *string        `gorm:"column:house_description;type:text" json:"house_description,omitempty"`
	HouseFamilyID    *uuid.UUID     `gorm:"column:house_family_id;type:uuid" json:"house_family_id,omitempty"`
	HouseCreatedAt   time.Time      `gorm:"column:house_created_at;autoCreateTime" json:"house_created_at"`
	HouseUpdatedAt   time.Time      `gorm:"column:house_updated_at;autoUpdateTime" json:"house_updated_at"`
	HouseDeletedAt   gorm.DeletedAt `gorm:"column:house_deleted_at;index" json:"-"`
}

func (HouseModel) TableName() string { return "houses" }
