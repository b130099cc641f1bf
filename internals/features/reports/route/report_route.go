package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/reports/controller"
	authMiddleware "github.com/Legal-Form-ci/assojereb-sub000/internals/middlewares/auth"
)

// 🔐 Rapports – bureau, trésorerie et commissaires aux comptes
func ReportAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	reports := api.Group("/reports",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAudit("les rapports et exports"),
			constants.ReportRoles,
		),
	)
	reports.Get("/members.csv", ctrl.MembersCSV)
	reports.Get("/members.html", ctrl.MembersHTML)
	reports.Get("/members/:id/card", ctrl.MemberCard)
	reports.Get("/contributions.csv", ctrl.ContributionsCSV)
	reports.Get("/contributions.html", ctrl.ContributionsHTML)
}

// 🌍 Public – page de vérification atteinte via le QR code
func ReportPublicRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	app.Get("/verify/:id", ctrl.VerifyPage)
}
