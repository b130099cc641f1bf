package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/reminders/controller"
	authMiddleware "github.com/Legal-Form-ci/assojereb-sub000/internals/middlewares/auth"
)

// 🔐 Trésorerie – déclenchement manuel des relances
func ReminderAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReminderController(db)

	admin := api.Group("/reminders",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorFinance("le déclenchement des relances"),
			constants.FinanceRoles,
		),
	)
	admin.Post("/run", ctrl.Run)
}
