package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/user_roles"
	dto "github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/user_roles/dto"
	model "github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/user_roles/model"
	helper "github.com/Legal-Form-ci/assojereb-sub000/internals/helpers"
)

type UserRoleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserRoleController(db *gorm.DB) *UserRoleController {
	return &UserRoleController{DB: db, Validate: validator.New()}
}

/* ======================= CREATE ======================= */
// POST /api/a/user-roles
func (h *UserRoleController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Le scope famille n'a de sens que pour les rôles familiaux
	if req.UserRoleFamilyID != nil && !constants.RoleIn(req.UserRoleRole, constants.FamilyRoles) {
		return fiber.NewError(fiber.StatusBadRequest, "Le scope famille n'est autorisé que pour les rôles chef_famille et responsable_famille")
	}

	// Garde : au plus une ligne par (user, scope)
	q := h.DB.Model(&model.UserRoleModel{}).
		Where("user_role_user_id = ?", req.UserRoleUserID)
	if req.UserRoleFamilyID == nil {
		q = q.Where("user_role_family_id IS NULL")
	} else {
		q = q.Where("user_role_family_id = ?", *req.UserRoleFamilyID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "Cet utilisateur a déjà un rôle pour ce scope")
	}

	m := req.ToModel()
	if err := h.DB.Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Cet utilisateur a déjà un rôle pour ce scope")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la création du rôle")
	}

	return helper.Created(c, "Rôle attribué", dto.ToUserRoleDTO(m))
}

/* ======================== LIST ======================== */
// GET /api/a/user-roles?user_id=&role=
func (h *UserRoleController) List(c *fiber.Ctx) error {
	base := h.DB.Model(&model.UserRoleModel{})

	if v := strings.TrimSpace(c.Query("user_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "user_id invalide")
		}
		base = base.Where("user_role_user_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("role")); v != "" {
		base = base.Where("user_role_role = ?", v)
	}

	var list []model.UserRoleModel
	if err := base.Order("user_role_created_at DESC").Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.ToUserRoleDTOs(list))
}

/* ======================== UPDATE ======================== */
// PUT /api/a/user-roles/:id
func (h *UserRoleController) Update(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	var req dto.UpdateUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var curr model.UserRoleModel
	if err := h.DB.Where("user_role_id = ?", idStr).First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Rôle introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := map[string]interface{}{}
	if req.UserRoleRole != nil {
		patch["user_role_role"] = *req.UserRoleRole
	}
	if req.UserRoleFamilyID != nil {
		patch["user_role_family_id"] = *req.UserRoleFamilyID
	}
	if len(patch) == 0 {
		return helper.Success(c, "Aucune modification", dto.ToUserRoleDTO(curr))
	}

	if err := h.DB.Model(&model.UserRoleModel{}).
		Where("user_role_id = ?", idStr).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la mise à jour du rôle")
	}

	var updated model.UserRoleModel
	if err := h.DB.Where("user_role_id = ?", idStr).First(&updated).Error; err != nil {
		return helper.Success(c, "Rôle mis à jour", dto.ToUserRoleDTO(curr))
	}
	return helper.Success(c, "Rôle mis à jour", dto.ToUserRoleDTO(updated))
}

/* ======================== DELETE ======================== */
// DELETE /api/a/user-roles/:id
func (h *UserRoleController) Delete(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	res := h.DB.Where("user_role_id = ?", idStr).Delete(&model.UserRoleModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Rôle introuvable")
	}

	return helper.Success(c, "Rôle retiré", fiber.Map{"id": idStr})
}

/* ======================== MES PERMISSIONS ======================== */
// GET /api/u/permissions
// RPC DB d'abord, fallback local en cas d'indisponibilité.
func (h *UserRoleController) MyPermissions(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, _ := helper.GetRoleFromToken(c)

	perms := user_roles.ResolvePermissionsDB(h.DB, userID, role)
	return helper.Success(c, "OK", perms)
}
