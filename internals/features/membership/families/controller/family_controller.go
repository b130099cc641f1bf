package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/families/dto"
	model "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/families/model"
	helper "github.com/Legal-Form-ci/assojereb-sub000/internals/helpers"
)

type FamilyController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFamilyController(db *gorm.DB) *FamilyController {
	return &FamilyController{DB: db, Validate: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /api/a/families
func (h *FamilyController) Create(c *fiber.Ctx) error {
	var req dto.CreateFamilyRequest
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
			return fiber.NewError(fiber.StatusConflict, "Une famille porte déjà ce nom")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la création de la famille")
	}

	return helper.Created(c, "Famille créée", dto.ToFamilyDTO(m))
}

/* ======================== LIST (public pour les membres connectés) ======================== */
// GET /api/u/families
func (h *FamilyController) List(c *fiber.Ctx) error {
	var list []model.FamilyModel
	if err := h.DB.Order("family_display_order ASC, family_name ASC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.ToFamilyDTOs(list))
}

/* ======================== GET BY ID ======================== */
// GET /api/u/families/:id
func (h *FamilyController) GetByID(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	var row model.FamilyModel
	if err := h.DB.Where("family_id = ?", idStr).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Famille introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.ToFamilyDTO(row))
}

/* ======================== UPDATE ======================== */
// PUT /api/a/families/:id
func (h *FamilyController) Update(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	var req dto.UpdateFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var curr model.FamilyModel
	if err := h.DB.Where("family_id = ?", idStr).First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Famille introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := map[string]interface{}{}
	if req.FamilyName != nil {
		patch["family_name"] = *req.FamilyName
	}
	if req.FamilyDescription != nil {
		patch["family_description"] = *req.FamilyDescription
	}
	if req.FamilyDisplayOrder != nil {
		patch["family_display_order"] = *req.FamilyDisplayOrder
	}
	if len(patch) == 0 {
		return helper.Success(c, "Aucune modification", dto.ToFamilyDTO(curr))
	}

	if err := h.DB.Model(&model.FamilyModel{}).
		Where("family_id = ?", idStr).
		Updates(patch).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Une famille porte déjà ce nom")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la mise à jour")
	}

	var updated model.FamilyModel
	if err := h.DB.Where("family_id = ?", idStr).First(&updated).Error; err != nil {
		return helper.Success(c, "Famille mise à jour", dto.ToFamilyDTO(curr))
	}
	return helper.Success(c, "Famille mise à jour", dto.ToFamilyDTO(updated))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/families/:id
func (h *FamilyController) Delete(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	res := h.DB.Where("family_id = ?", idStr).Delete(&model.FamilyModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Famille introuvable")
	}

	return helper.Success(c, "Famille supprimée", fiber.Map{"id": idStr})
}
