package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dto "github.com/Legal-Form-ci/assojereb-sub000/internals/features/home/news/dto"
	model "github.com/Legal-Form-ci/assojereb-sub000/internals/features/home/news/model"
	helper "github.com/Legal-Form-ci/assojereb-sub000/internals/helpers"
)

type NewsController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNewsController(db *gorm.DB) *NewsController {
	return &NewsController{DB: db, Validate: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /api/a/news
func (h *NewsController) Create(c *fiber.Ctx) error {
	var req dto.CreateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	authorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	m := req.ToModel(&authorID)

	slug, err := helper.EnsureUniqueSlug(h.DB, helper.GenerateSlug(m.NewsTitle), "news", "news_slug", "news_deleted_at")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la génération du slug")
	}
	m.NewsSlug = slug

	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la création de l'actualité")
	}

	return helper.Created(c, "Actualité créée", dto.FromModel(m))
}

/* ======================== LIST (PUBLIÉES) ======================== */
// GET /api/u/news?category=&page=
func (h *NewsController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	q := h.DB.Model(&model.NewsModel{}).Where("news_is_published = TRUE")
	if v := strings.TrimSpace(c.Query("category")); v != "" {
		q = q.Where("news_category = ?", v)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.NewsModel
	if err := q.Order("news_published_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"news":       dto.FromModels(rows),
		"pagination": helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

/* ======================== LIST (ADMIN, BROUILLONS INCLUS) ======================== */
// GET /api/a/news
func (h *NewsController) ListAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 50)

	var total int64
	if err := h.DB.Model(&model.NewsModel{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.NewsModel
	if err := h.DB.Order("news_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"news":       dto.FromModels(rows),
		"pagination": helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

/* ======================== GET BY SLUG ======================== */
// GET /api/u/news/:slug
func (h *NewsController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Slug manquant")
	}

	var row model.NewsModel
	if err := h.DB.Where("news_slug = ? AND news_is_published = TRUE", slug).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Actualité introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE ======================== */
// PUT /api/a/news/:id
func (h *NewsController) Update(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	var req dto.UpdateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var curr model.NewsModel
	if err := h.DB.Where("news_id = ?", idStr).First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Actualité introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := map[string]interface{}{}
	if req.NewsTitle != nil {
		patch["news_title"] = *req.NewsTitle
		slug, err := helper.EnsureUniqueSlug(h.DB, helper.GenerateSlug(*req.NewsTitle), "news", "news_slug", "news_deleted_at")
		if err == nil && slug != curr.NewsSlug {
			patch["news_slug"] = slug
		}
	}
	if req.NewsContent != nil {
		patch["news_content"] = *req.NewsContent
	}
	if req.NewsSummary != nil {
		patch["news_summary"] = *req.NewsSummary
	}
	if req.NewsCategory != nil {
		patch["news_category"] = *req.NewsCategory
	}
	if req.NewsMedia != nil {
		patch["news_media"] = pq.StringArray(req.NewsMedia)
	}
	if req.NewsPublish != nil {
		patch["news_is_published"] = *req.NewsPublish
		if *req.NewsPublish && curr.NewsPublishedAt == nil {
			patch["news_published_at"] = time.Now()
		}
	}
	if len(patch) == 0 {
		return helper.Success(c, "Aucune modification", dto.FromModel(curr))
	}

	if err := h.DB.Model(&model.NewsModel{}).
		Where("news_id = ?", idStr).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la mise à jour")
	}

	var updated model.NewsModel
	if err := h.DB.Where("news_id = ?", idStr).First(&updated).Error; err != nil {
		return helper.Success(c, "Actualité mise à jour", dto.FromModel(curr))
	}
	return helper.Success(c, "Actualité mise à jour", dto.FromModel(updated))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/news/:id
func (h *NewsController) Delete(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	res := h.DB.Where("news_id = ?", idStr).Delete(&model.NewsModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Actualité introuvable")
	}

	return helper.Success(c, "Actualité supprimée", fiber.Map{"id": idStr})
}
