package controller

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/configs"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/constants"
	contributionModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/contributions/model"
	model "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/payments/model"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/payments/service"
	memberModel "github.com/Legal-Form-ci/assojereb-sub000/internals/features/membership/members/model"
	helper "github.com/Legal-Form-ci/assojereb-sub000/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* ======================== CREATE TRANSACTION ======================== */
// POST /api/u/payments/contributions/:id
// Ouvre un paiement en ligne pour une cotisation en attente ou en retard.
func (h *PaymentController) CreateTransaction(c *fiber.Ctx) error {
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID manquant")
	}

	var contribution contributionModel.ContributionModel
	if err := h.DB.Where("contribution_id = ?", idStr).First(&contribution).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Cotisation introuvable")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	switch contribution.ContributionStatus {
	case constants.ContributionStatusPayee:
		return fiber.NewError(fiber.StatusConflict, "Cotisation déjà payée")
	case constants.ContributionStatusAnnulee:
		return fiber.NewError(fiber.StatusConflict, "Cotisation annulée, paiement impossible")
	}

	var member memberModel.MemberModel
	if err := h.DB.Where("member_id = ?", contribution.ContributionMemberID).First(&member).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Membre introuvable")
	}

	orderID := fmt.Sprintf("COTIS-%s-%d", contribution.ContributionID.String()[:8], time.Now().UnixNano())

	email := ""
	if member.MemberEmail != nil {
		email = *member.MemberEmail
	}
	token, err := service.GenerateSnapToken(orderID, contribution, member.MemberFirstName+" "+member.MemberLastName, email)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de la création du paiement")
	}

	if err := h.DB.Model(&contributionModel.ContributionModel{}).
		Where("contribution_id = ?", contribution.ContributionID).
		Update("contribution_gateway_order_id", orderID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Échec de l'enregistrement du paiement")
	}

	return helper.Success(c, "Paiement initialisé, poursuivez sur la passerelle", fiber.Map{
		"order_id":   orderID,
		"snap_token": token,
	})
}

// validSignature vérifie la signature Midtrans :
// sha512(order_id + status_code + gross_amount + server_key)
func validSignature(orderID, statusCode, grossAmount, signature string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + configs.MidtransServerKey))
	return hex.EncodeToString(sum[:]) == signature
}

/* ======================== WEBHOOK ======================== */
// POST /api/payments/notification : appelé par la passerelle, hors auth.
// Chaque notification est archivée dans payment_gateway_events.
func (h *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Webhook invalide"})
	}

	orderID, _ := body["order_id"].(string)
	transactionStatus, _ := body["transaction_status"].(string)
	statusCode, _ := body["status_code"].(string)
	grossAmount, _ := body["gross_amount"].(string)
	signature, _ := body["signature_key"].(string)
	if orderID == "" || transactionStatus == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Webhook incomplet"})
	}

	sigOK := validSignature(orderID, statusCode, grossAmount, signature)

	event := model.PaymentGatewayEventModel{
		EventOrderID:  orderID,
		EventStatus:   transactionStatus,
		EventValidSig: sigOK,
		EventPayload:  datatypes.JSONMap(body),
	}
	if err := h.DB.Create(&event).Error; err != nil {
		log.Printf("⚠️ Archivage de l'événement passerelle: %v", err)
	}

	if !sigOK {
		log.Printf("⚠️ Signature passerelle invalide pour %s", orderID)
		return c.SendStatus(fiber.StatusForbidden)
	}

	var contribution contributionModel.ContributionModel
	if err := h.DB.Where("contribution_gateway_order_id = ?", orderID).First(&contribution).Error; err != nil {
		log.Printf("⚠️ Cotisation inconnue pour l'ordre %s", orderID)
		return c.SendStatus(fiber.StatusOK)
	}

	switch transactionStatus {
	case "settlement", "capture", "success":
		now := time.Now()
		method := "passerelle"
		h.DB.Model(&contributionModel.ContributionModel{}).
			Where("contribution_id = ?", contribution.ContributionID).
			Updates(map[string]interface{}{
				"contribution_status":         constants.ContributionStatusPayee,
				"contribution_payment_method": method,
				"contribution_payment_ref":    orderID,
				"contribution_paid_at":        now,
			})
	case "deny", "cancel", "expire", "failure":
		// La cotisation reste due, seul le paiement en ligne a échoué.
		log.Printf("💳 Paiement %s: %s", orderID, transactionStatus)
	}

	return c.SendStatus(fiber.StatusOK)
}

/* ======================== EVENTS (AUDIT) ======================== */
// GET /api/a/payments/events
func (h *PaymentController) ListEvents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := h.DB.Model(&model.PaymentGatewayEventModel{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PaymentGatewayEventModel
	if err := h.DB.Order("event_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"events":     rows,
		"pagination": helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}
