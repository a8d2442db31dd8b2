package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"health-chatbot-backend/knowledge"
	"health-chatbot-backend/models"
	"health-chatbot-backend/services"
)

type ChatbotController struct {
	chatbotService *services.ChatbotService
	tables         *knowledge.Tables
}

func NewChatbotController(chatbotService *services.ChatbotService, tables *knowledge.Tables) *ChatbotController {
	return &ChatbotController{
		chatbotService: chatbotService,
		tables:         tables,
	}
}

// HandleChat processes chat messages
func (cc *ChatbotController) HandleChat(c *gin.Context) {
	var req models.ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	// Get user ID from context if authenticated
	userID, _ := c.Get("userID")
	if userID != nil {
		req.UserID = userID.(string)
	}

	response, err := cc.chatbotService.ProcessMessage(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process message",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// AssessSymptoms runs a direct symptom assessment
func (cc *ChatbotController) AssessSymptoms(c *gin.Context) {
	var req models.AssessmentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	assessment := cc.chatbotService.AssessSymptoms(req)
	c.JSON(http.StatusOK, assessment)
}

// GetChatHistory retrieves recent exchanges for a session
func (cc *ChatbotController) GetChatHistory(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	limit := int64(20)
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.ParseInt(limitStr, 10, 64); err == nil {
			limit = l
		}
	}

	history, err := cc.chatbotService.History(c.Request.Context(), sessionID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve chat history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"history": history,
		"count":   len(history),
	})
}

// GetStats reports message volume per channel
func (cc *ChatbotController) GetStats(c *gin.Context) {
	counts, err := cc.chatbotService.ChannelCounts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages_by_channel": counts})
}

// ListIntents returns the intents the classifier can produce
func (cc *ChatbotController) ListIntents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"intents": models.AllIntents()})
}

// ListLanguages returns the supported language codes
func (cc *ChatbotController) ListLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"languages": cc.tables.Languages,
		"default":   cc.tables.DefaultLanguage,
	})
}

// ListVaccinations returns the vaccination schedule table
func (cc *ChatbotController) ListVaccinations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"vaccinations": cc.tables.Vaccines})
}
