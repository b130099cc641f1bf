package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExceptionalContributionModel : campagne de cotisation exceptionnelle
// (funérailles, fêtes, projets du village…).
type ExceptionalContributionModel struct {
	ExceptionalID          uuid.UUID      `gorm:"column:exceptional_id;type:uuid;default:gen_random_uuid();primaryKey" json:"exceptional_id"`
	ExceptionalTitle       string         `gorm:"column:exceptional_title;size:200;not null" json:"exceptional_title"`
	ExceptionalDescription *string        `gorm:"column:exceptional_description;type:text" json:"exceptional_description,omitempty"`
	ExceptionalAmount      int64          `gorm:"column:exceptional_amount;not null" json:"exceptional_amount"`
	ExceptionalDueDate     *time.Time     `gorm:"column:exceptional_due_date;type:date" json:"exceptional_due_date,omitempty"`
	ExceptionalIsMandatory bool           `gorm:"column:exceptional_is_mandatory;not null;default:false" json:"exceptional_is_mandatory"`
	ExceptionalIsActive    bool           `gorm:"column:exceptional_is_active;not null;default:true" json:"exceptional_is_active"`
	ExceptionalCreatedBy   *uuid.UUID     `gorm:"column:exceptional_created_by;type:uuid" json:"exceptional_created_by,omitempty"`
	ExceptionalCreatedAt   time.Time      `gorm:"column:exceptional_created_at;autoCreateTime" json:"exceptional_created_at"`
	ExceptionalUpdatedAt   time.Time      `gorm:"column:exceptional_updated_at;autoUpdateTime" json:"exceptional_updated_at"`
	ExceptionalDeletedAt   gorm.DeletedAt `gorm:"column:exceptional_deleted_at;index" json:"-"`
}

func (ExceptionalContributionModel) TableName() string { return "exceptional_contributions" }
