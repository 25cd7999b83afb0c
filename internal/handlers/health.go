package handlers

import (
	"net/http"

	"github.com/costlens-dev/costlens/internal/ai"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	AIConfigured bool
}

func NewHealthHandler(aiConfigured bool) *HealthHandler {
	return &HealthHandler{AIConfigured: aiConfigured}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":               "OK",
		"message":              "Server is running",
		"google_ai_configured": h.AIConfigured,
		"available_models":     ai.DefaultModels,
		"ai_provider":          "Google AI Studio (Gemini)",
	})
}
