package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/user_roles/controller"
	authMiddleware "github.com/Legal-Form-ci/assojereb-sub000/internals/middlewares/auth"
)

// 🔐 Admin uniquement – attribution des rôles
func UserRoleAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserRoleController(db)

	admin := api.Group("/user-roles",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("la gestion des rôles"),
			constants.AdminOnly,
		),
	)
	admin.Post("/", ctrl.Create)
	admin.Get("/", ctrl.List)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
}

// 👤 Tout utilisateur connecté – ses propres permissions
func UserRoleUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserRoleController(db)
	api.Get("/permissions", ctrl.MyPermissions)
}
