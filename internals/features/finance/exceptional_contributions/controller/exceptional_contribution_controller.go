package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/exceptional_contributions/dto"
	model "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/exceptional_contributions/model"
	helper "github.com/Legal-Form-ci/assojereb-sub000/internals/helpers"
)

type ExceptionalController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewExceptionalController(db *gorm.DB) *ExceptionalController {
	return &ExceptionalController{DB: db, Validate: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /api/a/exceptional-contributions
func (h *ExceptionalController) Create(c *fiber.Ctx) error {
	var req dto.CreateExceptionalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	createdBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	m := req.ToModel(&createdBy)
	if err := h.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la création de la campagne")
	}

	return helper.Created(c, "Campagne de cotisation créée", dto.ToExceptionalDTO(m))
}

/* ======================== LIST ======================== */
// GET /api/u/exceptional-contributions?active=true
func (h *ExceptionalController) List(c *fiber.Ctx) error {
	q := h.DB.Model(&model.ExceptionalContributionModel{})
	if c.Query("active") == "true" {
		q = q.Where("exceptional_is_active = TRUE")
	}

	var list []model.ExceptionalContributionModel
	if err := q.Order("exceptional_created_at DESC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.ToExceptionalDTOs(list))
}

/* ======================== GET BY ID ======================== */
// GET /api/u/exceptional-contributions/:id
func (h *ExceptionalController) GetByID(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	var row model.ExceptionalContributionModel
	if err := h.DB.Where("exceptional_id = ?", idStr).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Campagne introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.ToExceptionalDTO(row))
}

/* ======================== UPDATE ======================== */
// PUT /api/a/exceptional-contributions/:id
func (h *ExceptionalController) Update(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	var req dto.UpdateExceptionalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var curr model.ExceptionalContributionModel
	if err := h.DB.Where("exceptional_id = ?", idStr).First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Campagne introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := map[string]interface{}{}
	if req.ExceptionalTitle != nil {
		patch["exceptional_title"] = *req.ExceptionalTitle
	}
	if req.ExceptionalDescription != nil {
		patch["exceptional_description"] = *req.ExceptionalDescription
	}
	if req.ExceptionalAmount != nil {
		patch["exceptional_amount"] = *req.ExceptionalAmount
	}
	if req.ExceptionalDueDate != nil {
		patch["exceptional_due_date"] = *req.ExceptionalDueDate
	}
	if req.ExceptionalIsMandatory != nil {
		patch["exceptional_is_mandatory"] = *req.ExceptionalIsMandatory
	}
	if req.ExceptionalIsActive != nil {
		patch["exceptional_is_active"] = *req.ExceptionalIsActive
	}
	if len(patch) == 0 {
		return helper.Success(c, "Aucune modification", dto.ToExceptionalDTO(curr))
	}

	if err := h.DB.Model(&model.ExceptionalContributionModel{}).
		Where("exceptional_id = ?", idStr).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la mise à jour")
	}

	var updated model.ExceptionalContributionModel
	if err := h.DB.Where("exceptional_id = ?", idStr).First(&updated).Error; err != nil {
		return helper.Success(c, "Campagne mise à jour", dto.ToExceptionalDTO(curr))
	}
	return helper.Success(c, "Campagne mise à jour", dto.ToExceptionalDTO(updated))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/exceptional-contributions/:id
func (h *ExceptionalController) Delete(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	res := h.DB.Where("exceptional_id = ?", idStr).Delete(&model.ExceptionalContributionModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Campagne introuvable")
	}

	return helper.Success(c, "Campagne supprimée", fiber.Map{"id": idStr})
}
