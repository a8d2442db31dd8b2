package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"health-chatbot-backend/models"
	"health-chatbot-backend/services"
)

const webhookProcessTimeout = 30 * time.Second

type WhatsAppController struct {
	whatsappService *services.WhatsAppService
	chatbotService  *services.ChatbotService
	logger          *zap.Logger
}

func NewWhatsAppController(whatsappService *services.WhatsAppService, chatbotService *services.ChatbotService, logger *zap.Logger) *WhatsAppController {
	return &WhatsAppController{
		whatsappService: whatsappService,
		chatbotService:  chatbotService,
		logger:          logger,
	}
}

// VerifyWebhook handles the webhook verification request from WhatsApp
func (wc *WhatsAppController) VerifyWebhook(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == wc.whatsappService.GetVerifyToken() {
		c.String(http.StatusOK, challenge)
		return
	}

	c.JSON(http.StatusForbidden, gin.H{"error": "Verification failed"})
}

// HandleWebhook processes incoming WhatsApp messages
func (wc *WhatsAppController) HandleWebhook(c *gin.Context) {
	var webhookData models.WhatsAppWebhookData

	if err := c.ShouldBindJSON(&webhookData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook data"})
		return
	}

	// Process webhook asynchronously to respond quickly; WhatsApp retries
	// webhooks that take too long.
	go wc.processWebhookData(webhookData)

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

// SendMessage sends a text message on behalf of an operator
func (wc *WhatsAppController) SendMessage(c *gin.Context) {
	var req struct {
		To      string `json:"to" binding:"required"`
		Message string `json:"message" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	if err := wc.whatsappService.SendTextMessage(req.To, req.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

// GetStatus reports WhatsApp channel health
func (wc *WhatsAppController) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, wc.whatsappService.GetStatus())
}

func (wc *WhatsAppController) processWebhookData(webhookData models.WhatsAppWebhookData) {
	ctx, cancel := context.WithTimeout(context.Background(), webhookProcessTimeout)
	defer cancel()

	for _, entry := range webhookData.Entry {
		for _, change := range entry.Changes {
			if change.Field != "messages" {
				continue
			}
			for _, message := range change.Value.Messages {
				wc.handleMessage(ctx, message)
			}
			for _, status := range change.Value.Statuses {
				wc.logger.Debug("message status update",
					zap.String("message_id", status.ID),
					zap.String("status", status.Status))
			}
		}
	}
}

func (wc *WhatsAppController) handleMessage(ctx context.Context, message models.WhatsAppMessage) {
	// Only text messages are understood; anything else gets a gentle nudge.
	if message.Type != "text" || message.Text == nil {
		if err := wc.whatsappService.SendTextMessage(message.From,
			"I can only understand text messages right now. Please type your health question."); err != nil {
			wc.logger.Warn("failed to send unsupported-type reply", zap.Error(err))
		}
		return
	}

	if err := wc.whatsappService.MarkMessageAsRead(message.ID); err != nil {
		wc.logger.Debug("failed to mark message as read", zap.Error(err))
	}

	response, err := wc.chatbotService.ProcessMessage(ctx, models.ChatRequest{
		Message:   message.Text.Body,
		SessionID: "whatsapp:" + message.From,
		Channel:   models.ChannelWhatsApp,
	})
	if err != nil {
		wc.logger.Error("failed to process WhatsApp message",
			zap.String("from", message.From),
			zap.Error(err))
		return
	}

	if err := wc.whatsappService.SendTextMessage(message.From, response.Response); err != nil {
		wc.logger.Error("failed to send WhatsApp reply",
			zap.String("from", message.From),
			zap.Error(err))
	}
}
