package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/families/controller"
	authMiddleware "github.com/Legal-Form-ci/assojereb-sub000/internals/middlewares/auth"
)

// 🔐 Bureau – gestion des familles
func FamilyAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFamilyController(db)

	admin := api.Group("/families",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorBureau("la gestion des familles"),
			constants.AdminRoles,
		),
	)
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
}

// 👤 Utilisateur connecté – lecture
func FamilyUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFamilyController(db)

	families := api.Group("/families")
	families.Get("/", ctrl.List)
	families.Get("/:id", ctrl.GetByID)
}
