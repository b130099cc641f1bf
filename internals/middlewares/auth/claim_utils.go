package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// storeClaimsToLocals recopie les claims utiles dans les locals de la requête.
// Clés attendues dans le token : user_id, role, user_name, family_id (optionnel).
func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if v, ok := claims["user_id"].(string); ok && strings.TrimSpace(v) != "" {
		c.Locals("user_id", v)
	}
	if v, ok := claims["role"].(string); ok && strings.TrimSpace(v) != "" {
		c.Locals("userRole", v)
	}
	if v, ok := claims["user_name"].(string); ok && strings.TrimSpace(v) != "" {
		c.Locals("user_name", v)
	}
	if v, ok := claims["family_id"].(string); ok && strings.TrimSpace(v) != "" {
		c.Locals("family_id", v)
	}
}
