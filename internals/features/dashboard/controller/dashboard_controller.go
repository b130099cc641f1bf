package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	contributionModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contributions/model"
	memberModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/members/model"
	helper "github.com/Legal-Form-ci/assojereb-sub000/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

/* ======================== OVERVIEW ======================== */
// GET /api/a/dashboard : agrégats calculés en base, pas côté client.
func (h *DashboardController) Overview(c *fiber.Ctx) error {
	now := time.Now()
	month, year := int(now.Month()), now.Year()

	var membersByStatus []statusCount
	if err := h.DB.Model(&memberModel.MemberModel{}).
		Select("member_status AS status, COUNT(*) AS count").
		Group("member_status").
		Scan(&membersByStatus).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var membersByZone []statusCount
	if err := h.DB.Model(&memberModel.MemberModel{}).
		Select("member_zone AS status, COUNT(*) AS count").
		Group("member_zone").
		Scan(&membersByZone).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	monthly := h.DB.Model(&contributionModel.ContributionModel{}).
		Where("contribution_type = ?", constants.ContributionTypeMensuelle).
		Where("contribution_month = ? AND contribution_year = ?", month, year)

	var contributionsByStatus []statusCount
	if err := monthly.Session(&gorm.Session{}).
		Select("contribution_status AS status, COUNT(*) AS count").
		Group("contribution_status").
		Scan(&contributionsByStatus).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var collectedThisMonth int64
	if err := monthly.Session(&gorm.Session{}).
		Where("contribution_status = ?", constants.ContributionStatusPayee).
		Select("COALESCE(SUM(contribution_amount), 0)").
		Scan(&collectedThisMonth).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var collectedThisYear int64
	if err := h.DB.Model(&contributionModel.ContributionModel{}).
		Where("contribution_year = ? AND contribution_status = ?", year, constants.ContributionStatusPayee).
		Select("COALESCE(SUM(contribution_amount), 0)").
		Scan(&collectedThisYear).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var pendingNotifications int64
	h.DB.Table("notification_queue").
		Where("notification_status = ?", constants.NotificationStatusEnAttente).
		Count(&pendingNotifications)

	return helper.Success(c, "OK", fiber.Map{
		"period":                 fiber.Map{"month": month, "year": year},
		"members_by_status":      membersByStatus,
		"members_by_zone":        membersByZone,
		"contributions_by_status": contributionsByStatus,
		"collected_this_month":   collectedThisMonth,
		"collected_this_year":    collectedThisYear,
		"pending_notifications":  pendingNotifications,
	})
}
