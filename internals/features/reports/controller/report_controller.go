package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/configs"
	contributionModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contributions/model"
	memberModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/members/model"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/reports/export"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func (h *ReportController) fetchMembers(c *fiber.Ctx) ([]memberModel.MemberModel, error) {
	q := h.DB.Preload("Family").Preload("House")
	if v := strings.TrimSpace(c.Query("family_id")); v != "" {
		q = q.Where("member_family_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("member_status = ?", v)
	}

	var rows []memberModel.MemberModel
	err := q.Order("member_last_name ASC, member_first_name ASC").Find(&rows).Error
	return rows, err
}

func (h *ReportController) fetchContributions(c *fiber.Ctx) ([]contributionModel.ContributionModel, error) {
	q := h.DB.Preload("Member")
	if v := c.QueryInt("month"); v > 0 {
		q = q.Where("contribution_month = ?", v)
	}
	if v := c.QueryInt("year"); v > 0 {
		q = q.Where("contribution_year = ?", v)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("contribution_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("type")); v != "" {
		q = q.Where("contribution_type = ?", v)
	}

	var rows []contributionModel.ContributionModel
	err := q.Order("contribution_created_at DESC").Find(&rows).Error
	return rows, err
}

/* ======================== CSV ======================== */
// GET /api/a/reports/members.csv
func (h *ReportController) MembersCSV(c *fiber.Ctx) error {
	rows, err := h.fetchMembers(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.ExportFileName("membres", time.Now())+`"`)
	return c.SendString(export.MembersToCSV(rows))
}

// GET /api/a/reports/contributions.csv
func (h *ReportController) ContributionsCSV(c *fiber.Ctx) error {
	rows, err := h.fetchContributions(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.ExportFileName("cotisations", time.Now())+`"`)
	return c.SendString(export.ContributionsToCSV(rows))
}

/* ======================== HTML IMPRIMABLE ======================== */
// GET /api/a/reports/members.html
func (h *ReportController) MembersHTML(c *fiber.Ctx) error {
	rows, err := h.fetchMembers(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(export.MemberListHTML(rows, time.Now()))
}

// GET /api/a/reports/contributions.html
func (h *ReportController) ContributionsHTML(c *fiber.Ctx) error {
	rows, err := h.fetchContributions(c)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	title := "cotisations"
	if m, y := c.QueryInt("month"), c.QueryInt("year"); m > 0 && y > 0 {
		title = "cotisations " + time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC).Format("01/2006")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(export.ContributionsReportHTML(rows, title, time.Now()))
}

/* ======================== CARTE DE MEMBRE ======================== */
// GET /api/a/reports/members/:id/card
func (h *ReportController) MemberCard(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	var row memberModel.MemberModel
	if err := h.DB.Preload("Family").Where("member_id = ?", idStr).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Membre introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	verifyURL := configs.PublicBaseURL + "/verify/" + row.MemberID.String()
	page, err := export.MemberCardHTML(row, verifyURL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la génération de la carte")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(page)
}

/* ======================== VÉRIFICATION PUBLIQUE (HTML) ======================== */
// GET /verify/:id : page atteinte en scannant le QR code de la carte.
func (h *ReportController) VerifyPage(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	var row memberModel.MemberModel
	if err := h.DB.Preload("Family").Where("member_id = ?", idStr).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
			return c.Status(fiber.StatusNotFound).
				SendString("<!DOCTYPE html><html lang=\"fr\"><body><h1>Membre introuvable</h1></body></html>")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(export.VerificationPageHTML(row))
}
