package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	categoryModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contribution_categories/model"
	dto "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contributions/dto"
	model "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contributions/model"
	memberModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/members/model"
	helper "github.com/Legal-Form-ci/assojereb-sub000/internals/helpers"
)

type ContributionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewContributionController(db *gorm.DB) *ContributionController {
	return &ContributionController{DB: db, Validate: validator.New()}
}

// categoryTariff charge le tarif mensuel de la catégorie du membre.
func (h *ContributionController) categoryTariff(member *memberModel.MemberModel) (int64, error) {
	if member.MemberCategoryID == nil {
		return 0, errors.New("le membre n'a pas de catégorie de cotisant")
	}
	var cat categoryModel.ContributionCategoryModel
	if err := h.DB.Where("category_id = ?", *member.MemberCategoryID).First(&cat).Error; err != nil {
		return 0, errors.New("catégorie de cotisant introuvable")
	}
	return cat.CategoryMonthlyAmount, nil
}

/* ======================= CREATE ======================= */
// POST /api/a/contributions
func (h *ContributionController) Create(c *fiber.Ctx) error {
	var req dto.CreateContributionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	recordedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var member memberModel.MemberModel
	if err := h.DB.Where("member_id = ?", req.ContributionMemberID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Membre introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	m := req.ToModel(&recordedBy)

	switch m.ContributionType {
	case constants.ContributionTypeMensuelle:
		month, year := dto.DefaultPeriod(m.ContributionMonth, m.ContributionYear, time.Now())
		m.ContributionMonth, m.ContributionYear = &month, &year
		if m.ContributionAmount == 0 {
			tariff, err := h.categoryTariff(&member)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			amount, err := dto.MonthlyAmount(m.ContributionAmount, tariff)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			m.ContributionAmount = amount
		}
	case constants.ContributionTypeExceptionnelle:
		if m.ContributionAmount == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Montant obligatoire pour une cotisation exceptionnelle")
		}
	default: // droit_adhesion
		if m.ContributionAmount == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Montant obligatoire pour un droit d'adhésion")
		}
	}

	if err := h.DB.Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Une cotisation existe déjà pour ce membre sur cette période")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de l'enregistrement de la cotisation")
	}

	m.Member = &member
	return helper.Created(c, "Cotisation enregistrée", dto.FromModel(m))
}

/* ======================== LIST ======================== */
// GET /api/u/contributions?member_id=&status=&type=&month=&year=&page=
// Les rôles à portée familiale ne voient que les cotisations de leur famille.
func (h *ContributionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.Model(&model.ContributionModel{}).Preload("Member")

	role, _ := helper.GetRoleFromToken(c)
	if constants.RoleIn(role, constants.FamilyRoles) {
		if scope := helper.GetFamilyScopeFromToken(c); scope != nil {
			q = q.Joins("JOIN members ON members.member_id = contributions.contribution_member_id").
				Where("members.member_family_id = ?", *scope)
		}
	}

	if v := strings.TrimSpace(c.Query("member_id")); v != "" {
		q = q.Where("contribution_member_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("contribution_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("type")); v != "" {
		q = q.Where("contribution_type = ?", v)
	}
	if v := c.QueryInt("month"); v > 0 {
		q = q.Where("contribution_month = ?", v)
	}
	if v := c.QueryInt("year"); v > 0 {
		q = q.Where("contribution_year = ?", v)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ContributionModel
	if err := q.Order("contribution_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"contributions": dto.FromModels(rows),
		"stats":         dto.ComputeStats(rows),
		"pagination":    helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

/* ======================== GET BY ID ======================== */
// GET /api/u/contributions/:id
func (h *ContributionController) GetByID(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	var row model.ContributionModel
	if err := h.DB.Preload("Member").
		Where("contribution_id = ?", idStr).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Cotisation introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	role, _ := helper.GetRoleFromToken(c)
	if constants.RoleIn(role, constants.FamilyRoles) {
		scope := helper.GetFamilyScopeFromToken(c)
		if scope != nil && (row.Member == nil || row.Member.MemberFamilyID != *scope) {
			return fiber.NewError(fiber.StatusForbidden, "Cette cotisation n'appartient pas à votre famille")
		}
	}

	return helper.Success(c, "OK", dto.FromModel(row))
}

/* ======================== MARK PAID ======================== */
// POST /api/a/contributions/:id/pay
// en_attente | en_retard → payee. Les cotisations annulées sont figées.
func (h *ContributionController) MarkPaid(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	var req dto.MarkPaidRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.ContributionModel
	if err := h.DB.Where("contribution_id = ?", idStr).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Cotisation introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	switch row.ContributionStatus {
	case constants.ContributionStatusPayee:
		return fiber.NewError(fiber.StatusConflict, "Cotisation déjà payée")
	case constants.ContributionStatusAnnulee:
		return fiber.NewError(fiber.StatusConflict, "Cotisation annulée, paiement impossible")
	}

	now := time.Now()
	patch := map[string]interface{}{
		"contribution_status":         constants.ContributionStatusPayee,
		"contribution_payment_method": req.ContributionPaymentMethod,
		"contribution_paid_at":        now,
	}
	if req.ContributionPaymentRef != nil {
		patch["contribution_payment_ref"] = *req.ContributionPaymentRef
	}
	if req.ContributionNotes != nil {
		patch["contribution_notes"] = *req.ContributionNotes
	}

	if err := h.DB.Model(&model.ContributionModel{}).
		Where("contribution_id = ?", idStr).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de l'encaissement")
	}

	var updated model.ContributionModel
	if err := h.DB.Preload("Member").Where("contribution_id = ?", idStr).First(&updated).Error; err != nil {
		return helper.Success(c, "Cotisation encaissée", fiber.Map{"id": idStr})
	}
	return helper.Success(c, "Cotisation encaissée", dto.FromModel(updated))
}

/* ======================== CANCEL ======================== */
// POST /api/a/contributions/:id/cancel
func (h *ContributionController) Cancel(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	var row model.ContributionModel
	if err := h.DB.Where("contribution_id = ?", idStr).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Cotisation introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if row.ContributionStatus == constants.ContributionStatusPayee {
		return fiber.NewError(fiber.StatusConflict, "Une cotisation payée ne peut pas être annulée")
	}
	if row.ContributionStatus == constants.ContributionStatusAnnulee {
		return fiber.NewError(fiber.StatusConflict, "Cotisation déjà annulée")
	}

	if err := h.DB.Model(&model.ContributionModel{}).
		Where("contribution_id = ?", idStr).
		Update("contribution_status", constants.ContributionStatusAnnulee).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de l'annulation")
	}

	return helper.Success(c, "Cotisation annulée", fiber.Map{"id": idStr})
}
