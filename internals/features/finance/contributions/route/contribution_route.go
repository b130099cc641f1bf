package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contributions/controller"
	authMiddleware "github.com/Legal-Form-ci/assojereb-sub000/internals/middlewares/auth"
)

// 🔐 Trésorerie – saisie et encaissement des cotisations
func ContributionAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContributionController(db)

	admin := api.Group("/contributions",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorFinance("la gestion des cotisations"),
			constants.FinanceRoles,
		),
	)
	admin.Post("/", ctrl.Create)
	admin.Post("/:id/pay", ctrl.MarkPaid)
	admin.Post("/:id/cancel", ctrl.Cancel)
}

// 👤 Utilisateur connecté – consultation (portée famille appliquée au contrôleur)
func ContributionUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContributionController(db)

	grp := api.Group("/contributions")
	grp.Get("/", ctrl.List)
	grp.Get("/:id", ctrl.GetByID)
}
