package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/user/controller"
	authMiddleware "github.com/Legal-Form-ci/assojereb-sub000/internals/middlewares/auth"
)

// 🔐 Admin – gestion des comptes
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	admin := api.Group("/users",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("la gestion des comptes"),
			constants.AdminOnly,
		),
	)
	admin.Post("/", ctrl.Create)
	admin.Get("/", ctrl.List)
	admin.Put("/:id/deactivate", ctrl.Deactivate)
}

// 👤 Utilisateur connecté – son propre compte
func UserSelfRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	api.Get("/me", ctrl.Me)
	api.Put("/me/profile", ctrl.UpdateMyProfile)
}
