package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/exceptional_contributions/controller"
	authMiddleware "github.com/Legal-Form-ci/assojereb-sub000/internals/middlewares/auth"
)

// 🔐 Trésorerie – campagnes de cotisation exceptionnelle
func ExceptionalAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExceptionalController(db)

	admin := api.Group("/exceptional-contributions",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorFinance("la gestion des campagnes exceptionnelles"),
			constants.FinanceRoles,
		),
	)
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
}

// 👤 Utilisateur connecté – lecture
func ExceptionalUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExceptionalController(db)

	grp := api.Group("/exceptional-contributions")
	grp.Get("/", ctrl.List)
	grp.Get("/:id", ctrl.GetByID)
}
