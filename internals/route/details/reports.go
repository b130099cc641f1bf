package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assistantRoute "github.com/Legal-Form-ci/assojereb-sub000/internals/features/assistant/route"
	dashboardRoute "github.com/Legal-Form-ci/assojereb-sub000/internals/features/dashboard/route"
	reportRoute "github.com/Legal-Form-ci/assojereb-sub000/internals/features/reports/route"
)

// Pages et endpoints publics (vérification par QR code, assistant IA)
func ReportsPublicRoutes(app *fiber.App, db *gorm.DB) {
	reportRoute.ReportPublicRoutes(app, db)
	assistantRoute.AssistantRoutes(app, db)
}

func ReportsAdminRoutes(api fiber.Router, db *gorm.DB) {
	reportRoute.ReportAdminRoutes(api, db)
	dashboardRoute.DashboardRoutes(api, db)
}
