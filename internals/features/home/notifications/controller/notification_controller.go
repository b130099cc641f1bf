package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "github.com/Legal-Form-ci/assojereb-sub000/internals/features/home/notifications/model"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/home/notifications/service"
	helper "github.com/Legal-Form-ci/assojereb-sub000/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

/* ======================== LIST ======================== */
// GET /api/a/notifications?status=&channel=&page=
func (h *NotificationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.Model(&model.NotificationQueueModel{})
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("notification_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("channel")); v != "" {
		q = q.Where("notification_channel = ?", v)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.NotificationQueueModel
	if err := q.Order("notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"notifications": rows,
		"pagination":    helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

/* ======================== DISPATCH NOW ======================== */
// POST /api/a/notifications/dispatch : vide un lot sans attendre le ticker.
func (h *NotificationController) DispatchNow(c *fiber.Ctx) error {
	sent, failed := service.DispatchPending(h.DB)
	return helper.Success(c, "Lot traité", fiber.Map{
		"sent":   sent,
		"failed": failed,
	})
}
