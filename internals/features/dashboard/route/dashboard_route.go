package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/dashboard/controller"
	authMiddleware "github.com/Legal-Form-ci/assojereb-sub000/internals/middlewares/auth"
)

// 🔐 Tableau de bord – mêmes habilitations que les rapports
func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)

	api.Get("/dashboard",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAudit("le tableau de bord"),
			constants.ReportRoles,
		),
		ctrl.Overview,
	)
}
