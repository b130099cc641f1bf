package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Réponse succès (200 par défaut)
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Réponse succès avec code custom (ex: 201 pour une création)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func Created(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusCreated, message, data)
}

// ✅ Réponse erreur simple
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// ✅ Réponse erreur détaillée (erreurs multiples par champ)
func ErrorWithDetails(c *fiber.Ctx, code int, message string, errors interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  errors,
	})
}

// ✅ Erreurs de validation (validator.v10)
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Error(c, fiber.StatusBadRequest, "Requête invalide")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		switch fieldErr.Tag() {
		case "required":
			errorsMap[fieldErr.Field()] = "Ce champ est obligatoire."
		case "email":
			errorsMap[fieldErr.Field()] = "Format d'email invalide."
		case "min":
			errorsMap[fieldErr.Field()] = "Minimum " + fieldErr.Param() + " caractères."
		case "max":
			errorsMap[fieldErr.Field()] = "Maximum " + fieldErr.Param() + " caractères."
		case "oneof":
			errorsMap[fieldErr.Field()] = "Doit être l'une des valeurs : " + fieldErr.Param() + "."
		default:
			errorsMap[fieldErr.Field()] = "Format invalide."
		}
	}

	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validation échouée", errorsMap)
}
