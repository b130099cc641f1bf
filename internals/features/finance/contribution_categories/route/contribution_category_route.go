package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contribution_categories/controller"
	authMiddleware "github.com/Legal-Form-ci/assojereb-sub000/internals/middlewares/auth"
)

// 🔐 Trésorerie – gestion des catégories de cotisants
func CategoryAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCategoryController(db)

	admin := api.Group("/contribution-categories",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorFinance("la gestion des catégories de cotisation"),
			constants.FinanceRoles,
		),
	)
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
}

// 👤 Utilisateur connecté – lecture
func CategoryUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCategoryController(db)

	api.Get("/contribution-categories", ctrl.List)
}
