package service

import (
	"errors"
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/configs"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	userModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/user/model"
	roleModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/user_roles/model"
)

// Compte graine créé par le bootstrap. Le mot de passe doit être changé au
// premier login (profile_must_change_password).
const (
	SeedAdminEmail    = "admin@assojereb.org"
	SeedAdminPassword = "AssoJereb#2024"
	SeedAdminFullName = "Administrateur AssoJereb"
)

type LoginResult struct {
	AccessToken        string             `json:"access_token"`
	RefreshToken       string             `json:"refresh_token"`
	User               userModel.UserModel `json:"user"`
	Role               string             `json:"role"`
	FamilyID           *uuid.UUID         `json:"family_id,omitempty"`
	MustChangePassword bool               `json:"must_change_password"`
}

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Hachage du mot de passe impossible")
	}
	return string(hashed), nil
}

// primaryRole renvoie le rôle non scopé du compte, "membre" par défaut,
// plus le scope famille éventuel.
func primaryRole(db *gorm.DB, userID uuid.UUID) (string, *uuid.UUID) {
	var rows []roleModel.UserRoleModel
	if err := db.Where("user_role_user_id = ?", userID).
		Order("user_role_created_at ASC").
		Find(&rows).Error; err != nil || len(rows) == 0 {
		return constants.RoleMembre, nil
	}

	// rôle global d'abord, sinon premier rôle scopé
	for _, r := range rows {
		if r.UserRoleFamilyID == nil {
			return r.UserRoleRole, nil
		}
	}
	return rows[0].UserRoleRole, rows[0].UserRoleFamilyID
}

func buildLoginResult(db *gorm.DB, user userModel.UserModel) (*LoginResult, error) {
	role, familyID := primaryRole(db, user.UserID)

	fullName := user.UserEmail
	mustChange := false
	var profile userModel.ProfileModel
	if err := db.Where("profile_user_id = ?", user.UserID).First(&profile).Error; err == nil {
		fullName = profile.ProfileFullName
		mustChange = profile.ProfileMustChangePassword
	}

	access, err := CreateAccessToken(user.UserID, role, fullName, familyID)
	if err != nil {
		return nil, err
	}
	refresh, err := CreateRefreshToken(db, user.UserID)
	if err != nil {
		return nil, err
	}

	user.UserPassword = ""
	return &LoginResult{
		AccessToken:        access,
		RefreshToken:       refresh,
		User:               user,
		Role:               role,
		FamilyID:           familyID,
		MustChangePassword: mustChange,
	}, nil
}

// Login : email + mot de passe.
func Login(db *gorm.DB, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user userModel.UserModel
	if err := db.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Email ou mot de passe incorrect")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if !user.UserIsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Ce compte a été désactivé")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(password)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Email ou mot de passe incorrect")
	}

	return buildLoginResult(db, user)
}

// LoginByUserID reconstruit une session après rotation du refresh token.
func LoginByUserID(db *gorm.DB, userID uuid.UUID) (*LoginResult, error) {
	var user userModel.UserModel
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Compte introuvable")
	}
	if !user.UserIsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Ce compte a été désactivé")
	}
	return buildLoginResult(db, user)
}

// LoginGoogle : connexion par ID token Google. Les comptes étant créés par
// les administrateurs, un email inconnu est refusé.
func LoginGoogle(db *gorm.DB, idToken string) (*LoginResult, error) {
	clientID := strings.TrimSpace(configs.GoogleClientID)
	if clientID == "" {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "GOOGLE_CLIENT_ID non défini")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{clientID}); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "ID token Google invalide")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil || claimSet.Email == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "ID token Google illisible")
	}

	var user userModel.UserModel
	if err := db.Where("user_email = ?", strings.ToLower(claimSet.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusForbidden, "Aucun compte pour cet email. Contactez un administrateur.")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if !user.UserIsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Ce compte a été désactivé")
	}

	// lie le compte Google au premier passage
	if user.UserGoogleID == nil && claimSet.Sub != "" {
		sub := claimSet.Sub
		_ = db.Model(&user).Update("user_google_id", sub).Error
	}

	return buildLoginResult(db, user)
}

// BootstrapAdmin crée le compte administrateur graine s'il n'existe pas.
// Idempotent : renvoie created=false si le compte est déjà là.
func BootstrapAdmin(db *gorm.DB) (created bool, err error) {
	var existing userModel.UserModel
	findErr := db.Where("user_email = ?", SeedAdminEmail).First(&existing).Error
	if findErr == nil {
		return false, nil
	}
	if !errors.Is(findErr, gorm.ErrRecordNotFound) {
		return false, fiber.NewError(fiber.StatusInternalServerError, findErr.Error())
	}

	hashed, err := HashPassword(SeedAdminPassword)
	if err != nil {
		return false, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		user := userModel.UserModel{
			UserEmail:    SeedAdminEmail,
			UserPassword: hashed,
			UserIsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		profile := userModel.ProfileModel{
			ProfileUserID:             user.UserID,
			ProfileFullName:           SeedAdminFullName,
			ProfileMustChangePassword: true,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		role := roleModel.UserRoleModel{
			UserRoleUserID: user.UserID,
			UserRoleRole:   constants.RoleAdmin,
		}
		return tx.Create(&role).Error
	})
	if err != nil {
		log.Printf("[BOOTSTRAP] échec création admin: %v", err)
		return false, fiber.NewError(fiber.StatusInternalServerError, "Création du compte administrateur impossible")
	}

	return true, nil
}

// ChangePassword vérifie l'ancien mot de passe, enregistre le nouveau et
// lève le flag must_change_password.
func ChangePassword(db *gorm.DB, userID uuid.UUID, oldPassword, newPassword string) error {
	var user userModel.UserModel
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Compte introuvable")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(oldPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Ancien mot de passe incorrect")
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_id = ?", userID).
			Update("user_password", hashed).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Mise à jour du mot de passe impossible")
		}
		return tx.Model(&userModel.ProfileModel{}).
			Where("profile_user_id = ?", userID).
			Update("profile_must_change_password", false).Error
	})
}
