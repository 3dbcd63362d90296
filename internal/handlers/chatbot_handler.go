package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"smartrecruit/recruitflow/internal/models"
	"smartrecruit/recruitflow/internal/repositories"
	"smartrecruit/recruitflow/internal/services"
)

type ChatbotHandler struct {
	faqRepo repositories.FAQRepository
	chatbot services.ChatbotService
}

func NewChatbotHandler(faqRepo repositories.FAQRepository, chatbot services.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{
		faqRepo: faqRepo,
		chatbot: chatbot,
	}
}

// HandleAsk handles POST /chatbot/ask
func (h *ChatbotHandler) HandleAsk(c *fiber.Ctx) error {
	var req models.ChatRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "question is required",
		})
	}

	response, err := h.chatbot.Ask(c.Context(), req.Question, req.TopK)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to answer question",
		})
	}

	return c.JSON(response)
}

// HandleCreateFAQ handles POST /faq/create. The entry is persisted and
// immediately indexed for retrieval.
func (h *ChatbotHandler) HandleCreateFAQ(c *fiber.Ctx) error {
	var entry models.FAQ

	if err := c.BodyParser(&entry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if entry.Question == "" || entry.Answer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "question and answer are required",
		})
	}

	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()

	if err := h.faqRepo.Create(&entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save FAQ entry",
		})
	}

	if err := h.chatbot.IndexFAQ(c.Context(), &entry); err != nil {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"faq":     entry,
			"warning": "entry saved but indexing failed; re-run the FAQ seeding script",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}
