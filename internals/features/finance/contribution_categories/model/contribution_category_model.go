package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContributionCategoryModel : catégorie de cotisant, porte le montant mensuel
// par défaut appliqué quand une cotisation est créée sans montant.
type ContributionCategoryModel struct {
	CategoryID            uuid.UUID      `gorm:"column:category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"category_id"`
	CategoryName          string         `gorm:"column:category_name;size:100;not null;uniqueIndex" json:"category_name"`
	CategoryDescription   *string        `gorm:"column:category_description;type:text" json:"category_description,omitempty"`
	CategoryMonthlyAmount int64          `gorm:"column:category_monthly_amount;not null;default:0" json:"category_monthly_amount"`
	CategoryIsActive      bool           `gorm:"column:category_is_active;not null;default:true" json:"category_is_active"`
	CategoryDisplayOrder  int            `gorm:"column:category_display_order;not null;default:0" json:"category_display_order"`
	CategoryCreatedAt     time.Time      `gorm:"column:category_created_at;autoCreateTime" json:"category_created_at"`
	CategoryUpdatedAt     time.Time      `gorm:"column:category_updated_at;autoUpdateTime" json:"category_updated_at"`
	CategoryDeletedAt     gorm.DeletedAt `gorm:"column:category_deleted_at;index" json:"-"`
}

func (ContributionCategoryModel) TableName() string { return "contribution_categories" }
