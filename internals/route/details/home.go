package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	newsRoute "github.com/Legal-Form-ci/assojereb-sub000/internals/features/home/news/route"
	notificationRoute "github.com/Legal-Form-ci/assojereb-sub000/internals/features/home/notifications/route"
)

func HomeUserRoutes(api fiber.Router, db *gorm.DB) {
	newsRoute.NewsUserRoutes(api, db)
}

func HomeAdminRoutes(api fiber.Router, db *gorm.DB) {
	newsRoute.NewsAdminRoutes(api, db)
	notificationRoute.NotificationAdminRoutes(api, db)
}
