package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// NewsModel : actualités et annonces de l'association.
type NewsModel struct {
	NewsID      uuid.UUID `gorm:"column:news_id;type:uuid;default:gen_random_uuid();primaryKey" json:"news_id"`
	NewsTitle   string    `gorm:"column:news_title;size:200;not null" json:"news_title"`
	NewsSlug    string    `gorm:"column:news_slug;size:220;not null;uniqueIndex" json:"news_slug"`
	NewsContent string    `gorm:"column:news_content;type:text;not null" json:"news_content"`
	NewsSummary *string   `gorm:"column:news_summary;type:text" json:"news_summary,omitempty"`

	NewsCategory string `gorm:"column:news_category;type:varchar(30);not null;default:'annonce'" json:"news_category"`

	// URLs des images/documents joints
	NewsMedia pq.StringArray `gorm:"column:news_media;type:text[]" json:"news_media,omitempty"`

	NewsIsPublished bool       `gorm:"column:news_is_published;not null;default:false;index" json:"news_is_published"`
	NewsPublishedAt *time.Time `gorm:"column:news_published_at" json:"news_published_at,omitempty"`

	NewsAuthorID  *uuid.UUID     `gorm:"column:news_author_id;type:uuid" json:"news_author_id,omitempty"`
	NewsCreatedAt time.Time      `gorm:"column:news_created_at;autoCreateTime" json:"news_created_at"`
	NewsUpdatedAt time.Time      `gorm:"column:news_updated_at;autoUpdateTime" json:"news_updated_at"`
	NewsDeletedAt gorm.DeletedAt `gorm:"column:news_deleted_at;index" json:"-"`
}

func (NewsModel) TableName() string { return "news" }
