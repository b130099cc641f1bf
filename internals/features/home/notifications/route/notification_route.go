package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/home/notifications/controller"
	authMiddleware "github.com/Legal-Form-ci/assojereb-sub000/internals/middlewares/auth"
)

// 🔐 Bureau – suivi de la file d'envoi
func NotificationAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	admin := api.Group("/notifications",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorBureau("la file de notifications"),
			constants.AdminRoles,
		),
	)
	admin.Get("/", ctrl.List)
	admin.Post("/dispatch", ctrl.DispatchNow)
}
