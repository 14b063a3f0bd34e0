package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/penomovu/Unveil/internal/model"
	"github.com/penomovu/Unveil/internal/service"
)

// AskHandler question/answer endpoint
type AskHandler struct {
	assistant *service.AssistantService
	logger    *zap.Logger
}

// NewAskHandler creates the ask handler
func NewAskHandler(assistant *service.AssistantService, logger *zap.Logger) *AskHandler {
	return &AskHandler{
		assistant: assistant,
		logger:    logger,
	}
}

// Ask answers a question.
// An empty question is valid input: the engine always produces an
// answer, so only malformed JSON is rejected.
func (h *AskHandler) Ask(c *gin.Context) {
	var req model.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}

	result := h.assistant.Ask(c.Request.Context(), userIDFromQuery(c), req.Question)

	c.JSON(200, model.AskResponse{
		Response:     result.Text,
		Category:     result.Category.String(),
		ResponseTime: float64(result.Elapsed.Microseconds()) / 1000.0,
	})
}

// userIDFromQuery optional uid for history attribution, 0 if absent
func userIDFromQuery(c *gin.Context) int64 {
	uid, err := strconv.ParseInt(c.Query("uid"), 10, 64)
	if err != nil {
		return 0
	}
	return uid
}
