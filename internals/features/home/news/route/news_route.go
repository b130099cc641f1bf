package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/home/news/controller"
	authMiddleware "github.com/Legal-Form-ci/assojereb-sub000/internals/middlewares/auth"
)

// 🔐 Bureau – rédaction et publication des actualités
func NewsAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNewsController(db)

	admin := api.Group("/news",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorBureau("la publication des actualités"),
			constants.AdminRoles,
		),
	)
	admin.Post("/", ctrl.Create)
	admin.Get("/", ctrl.ListAll)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
}

// 👤 Utilisateur connecté – lecture des actualités publiées
func NewsUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNewsController(db)

	news := api.Group("/news")
	news.Get("/", ctrl.List)
	news.Get("/:slug", ctrl.GetBySlug)
}
