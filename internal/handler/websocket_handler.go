package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/penomovu/Unveil/internal/model"
	"github.com/penomovu/Unveil/internal/service"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: check an Origin whitelist in production
		return true
	},
}

// WebSocketHandler websocket chat surface
type WebSocketHandler struct {
	sessionService *service.SessionService
	assistant      *service.AssistantService
	logger         *zap.Logger
}

// NewWebSocketHandler creates the websocket handler
func NewWebSocketHandler(sessionService *service.SessionService, assistant *service.AssistantService, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		sessionService: sessionService,
		assistant:      assistant,
		logger:         logger,
	}
}

// HandleWebSocket websocket connection entry point
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	userIDStr := c.Query("uid")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid uid"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sessionID := uuid.New().String()
	username := "player" + userIDStr
	h.sessionService.Register(userID, username, conn, sessionID, c.ClientIP())
	defer h.sessionService.RemoveBySessionID(sessionID)

	h.logger.Info("websocket connected",
		zap.Int64("userId", userID),
		zap.String("sessionId", sessionID))

	for {
		var msg model.ChatMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("websocket read error", zap.Error(err))
			}
			break
		}

		h.handleMessage(userID, &msg)
	}

	h.logger.Info("websocket disconnected", zap.Int64("userId", userID))
}

// handleMessage dispatches one inbound chat message
func (h *WebSocketHandler) handleMessage(userID int64, msg *model.ChatMessage) {
	switch msg.Type {
	case "CHAT":
		// acknowledge immediately, answer asynchronously
		h.sessionService.Send(userID, model.ChatAck{
			Success:   true,
			MessageID: msg.MessageID,
			Message:   "Message received, working on it...",
		})

		go h.answer(userID, msg.Content)

	case "HEARTBEAT":
		h.sessionService.Heartbeat(userID)

	default:
		h.logger.Warn("unknown message type",
			zap.Int64("userId", userID),
			zap.String("type", msg.Type))
	}
}

// answer runs the assistant and pushes the result to the user
func (h *WebSocketHandler) answer(userID int64, question string) {
	result := h.assistant.Ask(context.Background(), userID, question)

	response := model.ChatMessage{
		MessageID:  uuid.New().String(),
		Type:       "AI_RESPONSE",
		Content:    result.Text,
		Category:   result.Category.String(),
		Sender:     0,
		SenderName: "CTF Assistant",
		Timestamp:  time.Now(),
	}

	if err := h.sessionService.Send(userID, response); err != nil {
		h.logger.Error("answer push failed",
			zap.Int64("userId", userID),
			zap.Error(err))
	}
}
