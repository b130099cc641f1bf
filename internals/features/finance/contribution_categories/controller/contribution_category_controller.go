package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contribution_categories/dto"
	model "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contribution_categories/model"
	helper "github.com/Legal-Form-ci/assojereb-sub000/internals/helpers"
)

type CategoryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db, Validate: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /api/a/contribution-categories
func (h *CategoryController) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Une catégorie porte déjà ce nom")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la création de la catégorie")
	}

	return helper.Created(c, "Catégorie créée", dto.ToCategoryDTO(m))
}

/* ======================== LIST ======================== */
// GET /api/u/contribution-categories?active=true
func (h *CategoryController) List(c *fiber.Ctx) error {
	q := h.DB.Model(&model.ContributionCategoryModel{})
	if c.Query("active") == "true" {
		q = q.Where("category_is_active = TRUE")
	}

	var list []model.ContributionCategoryModel
	if err := q.Order("category_display_order ASC, category_name ASC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.ToCategoryDTOs(list))
}

/* ======================== UPDATE ======================== */
// PUT /api/a/contribution-categories/:id
func (h *CategoryController) Update(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var curr model.ContributionCategoryModel
	if err := h.DB.Where("category_id = ?", idStr).First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Catégorie introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := map[string]interface{}{}
	if req.CategoryName != nil {
		patch["category_name"] = *req.CategoryName
	}
	if req.CategoryDescription != nil {
		patch["category_description"] = *req.CategoryDescription
	}
	if req.CategoryMonthlyAmount != nil {
		patch["category_monthly_amount"] = *req.CategoryMonthlyAmount
	}
	if req.CategoryIsActive != nil {
		patch["category_is_active"] = *req.CategoryIsActive
	}
	if req.CategoryDisplayOrder != nil {
		patch["category_display_order"] = *req.CategoryDisplayOrder
	}
	if len(patch) == 0 {
		return helper.Success(c, "Aucune modification", dto.ToCategoryDTO(curr))
	}

	if err := h.DB.Model(&model.ContributionCategoryModel{}).
		Where("category_id = ?", idStr).
		Updates(patch).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Une catégorie porte déjà ce nom")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la mise à jour")
	}

	var updated model.ContributionCategoryModel
	if err := h.DB.Where("category_id = ?", idStr).First(&updated).Error; err != nil {
		return helper.Success(c, "Catégorie mise à jour", dto.ToCategoryDTO(curr))
	}
	return helper.Success(c, "Catégorie mise à jour", dto.ToCategoryDTO(updated))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/contribution-categories/:id
func (h *CategoryController) Delete(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	res := h.DB.Where("category_id = ?", idStr).Delete(&model.ContributionCategoryModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Catégorie introuvable")
	}

	return helper.Success(c, "Catégorie supprimée", fiber.Map{"id": idStr})
}
