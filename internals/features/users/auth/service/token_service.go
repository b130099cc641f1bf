package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/configs"
	authModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/auth/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET non défini")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET non défini")
	}
	return secret, nil
}

// CreateAccessToken signe un JWT HS256 : user_id, role, user_name, family_id.
func CreateAccessToken(userID uuid.UUID, role, userName string, familyID *uuid.UUID) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"user_id":   userID.String(),
		"role":      role,
		"user_name": userName,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(accessTTLDefault).Unix(),
	}
	if familyID != nil {
		claims["family_id"] = familyID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

// CreateRefreshToken génère un token opaque, stocke son hash HMAC.
func CreateRefreshToken(db *gorm.DB, userID uuid.UUID) (string, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return "", err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Génération du refresh token impossible")
	}
	token := hex.EncodeToString(raw)

	row := authModel.RefreshTokenModel{
		RefreshTokenUserID:    userID,
		RefreshTokenHash:      computeRefreshHash(token, secret),
		RefreshTokenExpiresAt: time.Now().Add(refreshTTLDefault),
	}
	if err := db.Create(&row).Error; err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Enregistrement du refresh token impossible")
	}

	return token, nil
}

// ConsumeRefreshToken vérifie puis révoque le token fourni (rotation).
func ConsumeRefreshToken(db *gorm.DB, token string) (uuid.UUID, error) {
	secret, err := getRefreshSecret()
	if err != nil {
		return uuid.Nil, err
	}

	var row authModel.RefreshTokenModel
	if err := db.Where("refresh_token_hash = ?", computeRefreshHash(token, secret)).
		First(&row).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token inconnu")
	}
	if time.Now().After(row.RefreshTokenExpiresAt) {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token expiré")
	}

	if err := db.Delete(&row).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Rotation du refresh token impossible")
	}

	return row.RefreshTokenUserID, nil
}

// BlacklistToken enregistre l'access token pour le restant de sa durée de vie.
func BlacklistToken(db *gorm.DB, token string) error {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	_, _ = parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})

	expiredAt := time.Now().Add(accessTTLDefault)
	if expFloat, ok := claims["exp"].(float64); ok {
		expiredAt = time.Unix(int64(expFloat), 0)
	}

	row := authModel.TokenBlacklistModel{
		TokenBlacklistToken:     token,
		TokenBlacklistExpiredAt: expiredAt,
	}
	if err := db.Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Révocation du token impossible")
	}
	return nil
}
