package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/auth/service"
	helper "github.com/Legal-Form-ci/assojereb-sub000/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type googleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

/* ======================= LOGIN ======================= */
// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := authService.Login(h.DB, req.Email, req.Password)
	if err != nil {
		return err
	}

	return helper.Success(c, "Connexion réussie", result)
}

/* ======================= LOGIN GOOGLE ======================= */
// POST /api/auth/login-google
func (h *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req googleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := authService.LoginGoogle(h.DB, req.IDToken)
	if err != nil {
		return err
	}

	return helper.Success(c, "Connexion réussie", result)
}

/* ======================= REFRESH ======================= */
// POST /api/auth/refresh
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, err := authService.ConsumeRefreshToken(h.DB, req.RefreshToken)
	if err != nil {
		return err
	}

	result, err := authService.LoginByUserID(h.DB, userID)
	if err != nil {
		return err
	}

	return helper.Success(c, "Token renouvelé", result)
}

/* ======================= LOGOUT ======================= */
// POST /api/u/auth/logout
func (h *AuthController) Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[1] == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Token manquant")
	}

	if err := authService.BlacklistToken(h.DB, parts[1]); err != nil {
		return err
	}

	return helper.Success(c, "Déconnexion réussie", nil)
}

/* ======================= CHANGE PASSWORD ======================= */
// POST /api/u/auth/change-password
func (h *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload invalide")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := authService.ChangePassword(h.DB, userID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	return helper.Success(c, "Mot de passe modifié", nil)
}

/* ======================= BOOTSTRAP ADMIN ======================= */
// POST /api/auth/bootstrap-admin : idempotent, sans body.
func (h *AuthController) BootstrapAdmin(c *fiber.Ctx) error {
	created, err := authService.BootstrapAdmin(h.DB)
	if err != nil {
		return err
	}

	if !created {
		return helper.Success(c, "Le compte administrateur existe déjà", fiber.Map{
			"created": false,
			"email":   authService.SeedAdminEmail,
		})
	}

	return helper.Created(c, "Compte administrateur créé", fiber.Map{
		"created": true,
		"email":   authService.SeedAdminEmail,
	})
}
