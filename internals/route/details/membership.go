package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	familyRoute "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/families/route"
	houseRoute "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/houses/route"
	memberRoute "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/members/route"
)

func MembershipPublicRoutes(api fiber.Router, db *gorm.DB) {
	memberRoute.MemberPublicRoutes(api, db)
}

func MembershipUserRoutes(api fiber.Router, db *gorm.DB) {
	familyRoute.FamilyUserRoutes(api, db)
	houseRoute.HouseUserRoutes(api, db)
	memberRoute.MemberUserRoutes(api, db)
}

func MembershipAdminRoutes(api fiber.Router, db *gorm.DB) {
	familyRoute.FamilyAdminRoutes(api, db)
	houseRoute.HouseAdminRoutes(api, db)
	memberRoute.MemberAdminRoutes(api, db)
}
