package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"health-chatbot-backend/models"
	"health-chatbot-backend/services"
	"health-chatbot-backend/utils"
)

type WebSocketController struct {
	chatbotService *services.ChatbotService
	upgrader       websocket.Upgrader
	logger         *zap.Logger
}

func NewWebSocketController(chatbotService *services.ChatbotService, allowedOrigins []string, logger *zap.Logger) *WebSocketController {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origins[origin] = true
	}

	return &WebSocketController{
		chatbotService: chatbotService,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origins[origin]
			},
		},
		logger: logger,
	}
}

// HandleWebSocket serves a persistent chat session. Each inbound JSON frame
// is one chat message; the reply frame mirrors the REST response shape.
func (wc *WebSocketController) HandleWebSocket(c *gin.Context) {
	conn, err := wc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		wc.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = utils.GenerateSessionID()
	}

	for {
		var msg map[string]string
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wc.logger.Warn("WebSocket read failed", zap.Error(err))
			}
			break
		}

		req := models.ChatRequest{
			Message:   msg["message"],
			Language:  msg["language"],
			SessionID: sessionID,
			UserID:    msg["user_id"],
			Channel:   models.ChannelWeb,
		}

		response, err := wc.chatbotService.ProcessMessage(c.Request.Context(), req)
		if err != nil {
			conn.WriteJSON(map[string]interface{}{
				"error": "Failed to process message",
			})
			continue
		}

		if err := conn.WriteJSON(response); err != nil {
			wc.logger.Warn("WebSocket write failed", zap.Error(err))
			break
		}
	}
}
