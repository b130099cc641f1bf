package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/houses/controller"
	authMiddleware "github.com/Legal-Form-ci/assojereb-sub000/internals/middlewares/auth"
)

// 🔐 Bureau – gestion des concessions
func HouseAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHouseController(db)

	admin := api.Group("/houses",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorBureau("la gestion des concessions"),
			constants.AdminRoles,
		),
	)
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
}

// 👤 Utilisateur connecté – lecture
func HouseUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHouseController(db)

	houses := api.Group("/houses")
	houses.Get("/", ctrl.List)
	houses.Get("/:id", ctrl.GetByID)
}
