package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryRoute "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contribution_categories/route"
	contributionRoute "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contributions/route"
	exceptionalRoute "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/exceptional_contributions/route"
	paymentRoute "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/payments/route"
	reminderRoute "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/reminders/route"
)

// Webhook passerelle : monté hors groupe, exclu de l'authentification
func FinanceWebhookRoutes(app *fiber.App, db *gorm.DB) {
	paymentRoute.PaymentWebhookRoutes(app, db)
}

func FinanceUserRoutes(api fiber.Router, db *gorm.DB) {
	categoryRoute.CategoryUserRoutes(api, db)
	contributionRoute.ContributionUserRoutes(api, db)
	exceptionalRoute.ExceptionalUserRoutes(api, db)
	paymentRoute.PaymentUserRoutes(api, db)
}

func FinanceAdminRoutes(api fiber.Router, db *gorm.DB) {
	categoryRoute.CategoryAdminRoutes(api, db)
	contributionRoute.ContributionAdminRoutes(api, db)
	exceptionalRoute.ExceptionalAdminRoutes(api, db)
	paymentRoute.PaymentAdminRoutes(api, db)
	reminderRoute.ReminderAdminRoutes(api, db)
}
