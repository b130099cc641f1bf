package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/auth/service"
	dto "github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/user/dto"
	model "github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/user/model"
	helper "github.com/Legal-Form-ci/assojereb-sub000/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

/* ======================= CREATE (admin) ======================= */
// POST /api/a/users : compte avec mot de passe provisoire
func (h *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := authService.HashPassword(req.TempPassword)
	if err != nil {
		return err
	}

	user := model.UserModel{
		UserEmail:    strings.ToLower(strings.TrimSpace(req.Email)),
		UserPassword: hashed,
		UserIsActive: true,
	}
	profile := model.ProfileModel{
		ProfileFullName:           strings.TrimSpace(req.FullName),
		ProfilePhone:              req.Phone,
		ProfileMustChangePassword: true,
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile.ProfileUserID = user.UserID
		return tx.Create(&profile).Error
	})
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Un compte existe déjà pour cet email")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la création du compte")
	}

	return helper.Created(c, "Compte créé, mot de passe provisoire à changer au premier login", dto.ToUserDTO(user, &profile))
}

/* ======================== LIST (admin) ======================== */
// GET /api/a/users?q=&page=&per_page=
func (h *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.UserModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		base = base.Where("user_email ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var users []model.UserModel
	if err := base.Preload("Profile").
		Order("user_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserDTO(u, u.Profile))
	}

	return helper.Success(c, "OK", fiber.Map{
		"users":      out,
		"pagination": helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

/* ======================== ME ======================== */
// GET /api/u/me
func (h *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := h.DB.Preload("Profile").Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Compte introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.ToUserDTO(user, user.Profile))
}

/* ======================== UPDATE PROFILE ======================== */
// PUT /api/u/me/profile
func (h *UserController) UpdateMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	patch := map[string]interface{}{}
	if req.FullName != nil {
		patch["profile_full_name"] = strings.TrimSpace(*req.FullName)
	}
	if req.Phone != nil {
		patch["profile_phone"] = *req.Phone
	}
	if req.AvatarURL != nil {
		patch["profile_avatar_url"] = *req.AvatarURL
	}
	if len(patch) == 0 {
		return helper.Success(c, "Aucune modification", nil)
	}

	if err := h.DB.Model(&model.ProfileModel{}).
		Where("profile_user_id = ?", userID).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la mise à jour du profil")
	}

	return helper.Success(c, "Profil mis à jour", nil)
}

/* ======================== DEACTIVATE (admin) ======================== */
// PUT /api/a/users/:id/deactivate
func (h *UserController) Deactivate(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	res := h.DB.Model(&model.UserModel{}).
		Where("user_id = ?", idStr).
		Update("user_is_active", false)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Compte introuvable")
	}

	return helper.Success(c, "Compte désactivé", fiber.Map{"id": idStr})
}
