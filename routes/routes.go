package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"health-chatbot-backend/config"
	"health-chatbot-backend/controllers"
	"health-chatbot-backend/knowledge"
	"health-chatbot-backend/middleware"
	"health-chatbot-backend/services"
)

// Deps carries the shared components the routes need.
type Deps struct {
	Config          *config.Config
	Tables          *knowledge.Tables
	ChatbotService  *services.ChatbotService
	WhatsAppService *services.WhatsAppService
	SMSService      *services.SMSService
	Logger          *zap.Logger
}

func SetupRoutes(router *gin.Engine, deps Deps) {
	// Initialize controllers
	chatbotController := controllers.NewChatbotController(deps.ChatbotService, deps.Tables)
	wsController := controllers.NewWebSocketController(deps.ChatbotService, deps.Config.AllowedOrigins, deps.Logger)
	whatsappController := controllers.NewWhatsAppController(deps.WhatsAppService, deps.ChatbotService, deps.Logger)
	smsController := controllers.NewSMSController(deps.ChatbotService, deps.SMSService, deps.Logger)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		// Chatbot
		public.POST("/chat", chatbotController.HandleChat)
		public.POST("/assess-symptoms", chatbotController.AssessSymptoms)
		public.GET("/history", chatbotController.GetChatHistory)
		public.GET("/stats", chatbotController.GetStats)

		// Knowledge catalog
		public.GET("/intents", chatbotController.ListIntents)
		public.GET("/languages", chatbotController.ListLanguages)
		public.GET("/vaccinations", chatbotController.ListVaccinations)

		// WebSocket for real-time chat
		public.GET("/ws", wsController.HandleWebSocket)
	}

	// WhatsApp routes
	whatsapp := router.Group("/api/whatsapp")
	{
		// Webhook endpoints (no auth required for WhatsApp to call)
		whatsapp.GET("/webhook", whatsappController.VerifyWebhook)
		whatsapp.POST("/webhook",
			middleware.VerifyWhatsAppSignature(deps.Config.WhatsApp.AppSecret),
			whatsappController.HandleWebhook)

		whatsapp.POST("/admin/send", whatsappController.SendMessage)
		whatsapp.GET("/admin/status", whatsappController.GetStatus)
	}

	// SMS routes
	sms := router.Group("/api/sms")
	{
		sms.POST("/webhook", smsController.HandleInbound)
		sms.POST("/admin/send", smsController.SendMessage)
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})
}
