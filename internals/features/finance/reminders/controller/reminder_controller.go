package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/reminders/service"
)

type ReminderController struct {
	DB *gorm.DB
}

func NewReminderController(db *gorm.DB) *ReminderController {
	return &ReminderController{DB: db}
}

/* ======================== RUN ======================== */
// POST /api/a/reminders/run : déclenchement manuel du job de relance.
// Le contrat de réponse est celui du planificateur : { success, timestamp, stats }.
func (h *ReminderController) Run(c *fiber.Ctx) error {
	now := time.Now()
	stats, err := service.Run(h.DB, now)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success":   false,
			"timestamp": now.Format(time.RFC3339),
			"error":     err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"timestamp": now.Format(time.RFC3339),
		"stats":     stats,
	})
}
