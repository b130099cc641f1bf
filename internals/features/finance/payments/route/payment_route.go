package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/payments/controller"
	authMiddleware "github.com/Legal-Form-ci/assojereb-sub000/internals/middlewares/auth"
)

// 🌍 Webhook passerelle – exclu de l'authentification par le middleware
func PaymentWebhookRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	app.Post("/api/payments/notification", ctrl.HandleNotification)
}

// 👤 Utilisateur connecté – paiement en ligne d'une cotisation
func PaymentUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	api.Post("/payments/contributions/:id", ctrl.CreateTransaction)
}

// 🔐 Audit – journal des événements de la passerelle
func PaymentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	admin := api.Group("/payments",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAudit("le journal des paiements"),
			constants.AuditRoles,
		),
	)
	admin.Get("/events", ctrl.ListEvents)
}
