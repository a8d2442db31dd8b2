package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"health-chatbot-backend/models"
	"health-chatbot-backend/services"
)

type SMSController struct {
	chatbotService *services.ChatbotService
	smsService     *services.SMSService
	logger         *zap.Logger
}

func NewSMSController(chatbotService *services.ChatbotService, smsService *services.SMSService, logger *zap.Logger) *SMSController {
	return &SMSController{
		chatbotService: chatbotService,
		smsService:     smsService,
		logger:         logger,
	}
}

// SendMessage sends a text message on behalf of an operator
func (sc *SMSController) SendMessage(c *gin.Context) {
	var req struct {
		To      string `json:"to" binding:"required"`
		Message string `json:"message" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	if !sc.smsService.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "SMS service is not configured"})
		return
	}

	if err := sc.smsService.SendSMS(req.To, req.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

// HandleInbound answers an incoming Twilio SMS with a TwiML reply. Twilio
// delivers the reply itself, so no outbound API call is needed here.
func (sc *SMSController) HandleInbound(c *gin.Context) {
	var inbound models.TwilioInboundSMS

	if err := c.ShouldBind(&inbound); err != nil {
		c.XML(http.StatusBadRequest, models.TwiMLResponse{})
		return
	}

	body := strings.TrimSpace(inbound.Body)

	// Carrier keywords are handled before the pipeline sees the text.
	switch strings.ToUpper(body) {
	case "STOP", "UNSUBSCRIBE":
		c.XML(http.StatusOK, models.TwiMLResponse{
			Message: "You have been unsubscribed from the health information service. Reply START to resubscribe.",
		})
		return
	case "HELP":
		c.XML(http.StatusOK, models.TwiMLResponse{
			Message: "Text your health question and I will answer. Examples: symptoms, disease info, vaccination schedules. Reply STOP to unsubscribe.",
		})
		return
	}

	response, err := sc.chatbotService.ProcessMessage(c.Request.Context(), models.ChatRequest{
		Message:   body,
		SessionID: "sms:" + inbound.From,
		Channel:   models.ChannelSMS,
	})
	if err != nil {
		sc.logger.Error("failed to process SMS message",
			zap.String("from", inbound.From),
			zap.Error(err))
		c.XML(http.StatusOK, models.TwiMLResponse{
			Message: "Sorry, I could not process your message. Please try again later.",
		})
		return
	}

	c.XML(http.StatusOK, models.TwiMLResponse{
		Message: services.TruncateForSMS(response.Response),
	})
}
