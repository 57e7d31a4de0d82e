package handlers

import (
	"github.com/dukkaniai/dukkani-ai-be/internal/core/genai"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	aiService *genai.Service
}

func NewHealthHandler(aiService *genai.Service) *HealthHandler {
	return &HealthHandler{aiService: aiService}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"service":  "store-api",
		"provider": h.aiService.GetProviderName(),
	})
}
