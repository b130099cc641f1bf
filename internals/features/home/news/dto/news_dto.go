package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/home/news/model"
)

// Catégories éditoriales avec leur couleur d'affichage.
var NewsCategories = map[string]string{
	"annonce":     "#2563eb",
	"evenement":   "#16a34a",
	"funerailles": "#475569",
	"projet":      "#d97706",
	"autre":       "#6b7280",
}

type CreateNewsRequest struct {
	NewsTitle    string   `json:"news_title" validate:"required,min=3,max=200"`
	NewsContent  string   `json:"news_content" validate:"required,min=10"`
	NewsSummary  *string  `json:"news_summary"`
	NewsCategory string   `json:"news_category" validate:"omitempty,oneof=annonce evenement funerailles projet autre"`
	NewsMedia    []string `json:"news_media" validate:"omitempty,dive,url"`
	NewsPublish  bool     `json:"news_publish"`
}

type UpdateNewsRequest struct {
	NewsTitle    *string  `json:"news_title" validate:"omitempty,min=3,max=200"`
	NewsContent  *string  `json:"news_content" validate:"omitempty,min=10"`
	NewsSummary  *string  `json:"news_summary"`
	NewsCategory *string  `json:"news_category" validate:"omitempty,oneof=annonce evenement funerailles projet autre"`
	NewsMedia    []string `json:"news_media" validate:"omitempty,dive,url"`
	NewsPublish  *bool    `json:"news_publish"`
}

type NewsResponse struct {
	NewsID            uuid.UUID  `json:"news_id"`
	NewsTitle         string     `json:"news_title"`
	NewsSlug          string     `json:"news_slug"`
	NewsContent       string     `json:"news_content"`
	NewsSummary       *string    `json:"news_summary,omitempty"`
	NewsCategory      string     `json:"news_category"`
	NewsCategoryColor string     `json:"news_category_color"`
	NewsMedia         []string   `json:"news_media,omitempty"`
	NewsIsPublished   bool       `json:"news_is_published"`
	NewsPublishedAt   *time.Time `json:"news_published_at,omitempty"`
	NewsCreatedAt     time.Time  `json:"news_created_at"`
}

func (r CreateNewsRequest) ToModel(authorID *uuid.UUID) model.NewsModel {
	m := model.NewsModel{
		NewsTitle:    r.NewsTitle,
		NewsContent:  r.NewsContent,
		NewsSummary:  r.NewsSummary,
		NewsCategory: r.NewsCategory,
		NewsMedia:    pq.StringArray(r.NewsMedia),
		NewsAuthorID: authorID,
	}
	if m.NewsCategory == "" {
		m.NewsCategory = "annonce"
	}
	if r.NewsPublish {
		now := time.Now()
		m.NewsIsPublished = true
		m.NewsPublishedAt = &now
	}
	return m
}

func FromModel(m model.NewsModel) NewsResponse {
	color, ok := NewsCategories[m.NewsCategory]
	if !ok {
		color = NewsCategories["autre"]
	}
	return NewsResponse{
		NewsID:            m.NewsID,
		NewsTitle:         m.NewsTitle,
		NewsSlug:          m.NewsSlug,
		NewsContent:       m.NewsContent,
		NewsSummary:       m.NewsSummary,
		NewsCategory:      m.NewsCategory,
		NewsCategoryColor: color,
		NewsMedia:         []string(m.NewsMedia),
		NewsIsPublished:   m.NewsIsPublished,
		NewsPublishedAt:   m.NewsPublishedAt,
		NewsCreatedAt:     m.NewsCreatedAt,
	}
}

func FromModels(ms []model.NewsModel) []NewsResponse {
	out := make([]NewsResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
