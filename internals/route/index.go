package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "github.com/Legal-Form-ci/assojereb-sub000/internals/middlewares/auth"
	routeDetails "github.com/Legal-Form-ci/assojereb-sub000/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH / WEBHOOK / PUBLIC PAGES =====================
	log.Println("[INFO] Montage des routes d'authentification...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Montage du webhook de paiement...")
	routeDetails.FinanceWebhookRoutes(app, db)

	log.Println("[INFO] Montage des pages publiques (vérification, assistant)...")
	routeDetails.ReportsPublicRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → sans JWT
	public := app.Group("/api/public")

	// PRIVÉ (utilisateur connecté)
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	// ADMIN (connecté + contrôle de rôle par feature)
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Montage des routes utilisateurs...")
	routeDetails.UsersUserRoutes(private, db)
	routeDetails.UsersAdminRoutes(admin, db)

	log.Println("[INFO] Montage des routes adhésion...")
	routeDetails.MembershipPublicRoutes(public, db)
	routeDetails.MembershipUserRoutes(private, db)
	routeDetails.MembershipAdminRoutes(admin, db)

	log.Println("[INFO] Montage des routes finance...")
	routeDetails.FinanceUserRoutes(private, db)
	routeDetails.FinanceAdminRoutes(admin, db)

	log.Println("[INFO] Montage des routes actualités & notifications...")
	routeDetails.HomeUserRoutes(private, db)
	routeDetails.HomeAdminRoutes(admin, db)

	log.Println("[INFO] Montage des rapports & tableau de bord...")
	routeDetails.ReportsAdminRoutes(admin, db)
}
