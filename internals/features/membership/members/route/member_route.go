package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/members/controller"
	authMiddleware "github.com/Legal-Form-ci/assojereb-sub000/internals/middlewares/auth"
)

// 🔐 Bureau – enregistrement et gestion des membres
func MemberAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMemberController(db)

	admin := api.Group("/members",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorBureau("la gestion des membres"),
			constants.AdminRoles,
		),
	)
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
	admin.Post("/:id/photo", ctrl.UploadPhoto)
}

// 👤 Utilisateur connecté – consultation (portée famille appliquée au contrôleur)
func MemberUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMemberController(db)

	members := api.Group("/members")
	members.Get("/", ctrl.List)
	members.Get("/:id", ctrl.GetByID)
}

// 🌍 Public – vérification de la carte de membre (cible du QR code)
func MemberPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMemberController(db)

	api.Get("/members/verify/:id", ctrl.Verify)
}
