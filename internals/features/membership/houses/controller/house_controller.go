package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/houses/dto"
	model "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/houses/model"
	helper "github.com/Legal-Form-ci/assojereb-sub000/internals/helpers"
)

type HouseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewHouseController(db *gorm.DB) *HouseController {
	return &HouseController{DB: db, Validate: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /api/a/houses
func (h *HouseController) Create(c *fiber.Ctx) error {
	var req dto.CreateHouseRequest
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
			return fiber.NewError(fiber.StatusConflict, "Ce numéro de concession est déjà pris")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la création de la concession")
	}

	return helper.Created(c, "Concession créée", dto.ToHouseDTO(m))
}

/* ======================== LIST ======================== */
// GET /api/u/houses?family_id=
func (h *HouseController) List(c *fiber.Ctx) error {
	base := h.DB.Model(&model.HouseModel{})
	if v := strings.TrimSpace(c.Query("family_id")); v != "" {
		base = base.Where("house_family_id = ?", v)
	}

	var list []model.HouseModel
	if err := base.Order("house_number ASC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.ToHouseDTOs(list))
}

/* ======================== GET BY ID ======================== */
// GET /api/u/houses/:id
func (h *HouseController) GetByID(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	var row model.HouseModel
	if err := h.DB.Where("house_id = ?", idStr).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Concession introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.ToHouseDTO(row))
}

/* ======================== UPDATE ======================== */
// PUT /api/a/houses/:id
func (h *HouseController) Update(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	var req dto.UpdateHouseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var curr model.HouseModel
	if err := h.DB.Where("house_id = ?", idStr).First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Concession introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := map[string]interface{}{}
	if req.HouseNumber != nil {
		patch["house_number"] = *req.HouseNumber
	}
	if req.HouseName != nil {
		patch["house_name"] = *req.HouseName
	}
	if req.HouseDescription != nil {
		patch["house_description"] = *req.HouseDescription
	}
	if req.HouseFamilyID != nil {
		patch["house_family_id"] = *req.HouseFamilyID
	}
	if len(patch) == 0 {
		return helper.Success(c, "Aucune modification", dto.ToHouseDTO(curr))
	}

	if err := h.DB.Model(&model.HouseModel{}).
		Where("house_id = ?", idStr).
		Updates(patch).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Ce numéro de concession est déjà pris")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la mise à jour")
	}

	var updated model.HouseModel
	if err := h.DB.Where("house_id = ?", idStr).First(&updated).Error; err != nil {
		return helper.Success(c, "Concession mise à jour", dto.ToHouseDTO(curr))
	}
	return helper.Success(c, "Concession mise à jour", dto.ToHouseDTO(updated))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/houses/:id
func (h *HouseController) Delete(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	res := h.DB.Where("house_id = ?", idStr).Delete(&model.HouseModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Concession introuvable")
	}

	return helper.Success(c, "Concession supprimée", fiber.Map{"id": idStr})
}
