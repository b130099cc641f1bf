package controller

import (
	"bufio"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"gorm.io/gorm"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/configs"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/features/assistant/service"
)

type AssistantController struct {
	DB *gorm.DB
}

func NewAssistantController(db *gorm.DB) *AssistantController {
	return &AssistantController{DB: db}
}

type chatRequest struct {
	Messages []service.ChatMessage `json:"messages"`
	Type     string                `json:"type"`
}

/* ======================== CHAT (SSE) ======================== */
// POST /api/assistant/chat : relaie la complétion en flux SSE.
func (h *AssistantController) Chat(c *fiber.Ctx) error {
	if configs.AIGatewayKey == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Assistant non configuré",
		})
	}

	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload invalide"})
	}
	if len(req.Messages) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Aucun message"})
	}

	context := ""
	if req.Type == service.TypeChatWithContext {
		context = service.BuildContext(h.DB)
	}
	systemPrompt := service.SystemPromptFor(req.Type, context)

	upstream, status, err := service.OpenStream(
		configs.AIGatewayURL, configs.AIGatewayKey, configs.AIGatewayModel,
		systemPrompt, req.Messages,
	)
	if err != nil {
		code, body := service.MapUpstreamError(status)
		return c.Status(code).JSON(body)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set("Connection", "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer upstream.Close()
		if err := service.CopyStream(upstream, w); err != nil {
			log.Printf("⚠️ Relais assistant interrompu: %v", err)
		}
		w.Flush()
	}))
	return nil
}
