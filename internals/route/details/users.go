package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/auth/route"
	userRoute "github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/user/route"
	userRoleRoute "github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/user_roles/route"
)

// Authentification : routes hors groupe (login, refresh, bootstrap)
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthPublicRoutes(app, db)
}

func UsersUserRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthUserRoutes(api, db)
	userRoute.UserSelfRoutes(api, db)
	userRoleRoute.UserRoleUserRoutes(api, db)
}

func UsersAdminRoutes(api fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(api, db)
	userRoleRoute.UserRoleAdminRoutes(api, db)
}
