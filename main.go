package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"health-chatbot-backend/config"
	"health-chatbot-backend/database"
	"health-chatbot-backend/knowledge"
	"health-chatbot-backend/logger"
	"health-chatbot-backend/nlp"
	"health-chatbot-backend/routes"
	"health-chatbot-backend/services"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cfg := config.Get()

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format, "health-chatbot-backend")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Load knowledge tables
	tables, err := knowledge.Load(cfg.Chatbot.KnowledgeFile)
	if err != nil {
		zapLogger.Fatal("Failed to load knowledge tables", zap.Error(err))
	}
	if cfg.Chatbot.DefaultLanguage != "" && tables.IsSupported(cfg.Chatbot.DefaultLanguage) {
		tables.DefaultLanguage = cfg.Chatbot.DefaultLanguage
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	if err := database.ConnectMongoDB(cfg); err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.DisconnectMongoDB()

	// Translation service, with a Redis cache when one is configured
	var translator nlp.Translator = services.NewTranslationService(cfg.Translation, zapLogger)
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		translator = services.NewCachedTranslator(translator, redisClient, cfg.Redis.TTL, zapLogger)
	}

	// Core pipeline and services
	pipeline := nlp.NewPipeline(tables, translator, zapLogger)
	messageRepo := database.NewMessageRepository(database.GetMongoDB())
	chatbotService := services.NewChatbotService(pipeline, messageRepo, zapLogger)
	whatsappService := services.NewWhatsAppService(cfg.WhatsApp, zapLogger)
	smsService := services.NewSMSService(cfg.SMS, zapLogger)

	if !whatsappService.Enabled() {
		zapLogger.Warn("WhatsApp integration is not configured")
	}
	if !smsService.Enabled() {
		zapLogger.Warn("SMS integration is not configured")
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// CORS middleware
	allowedOrigins := strings.Join(cfg.AllowedOrigins, ", ")
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		if err := database.HealthCheck(); err != nil {
			dbStatus = "unavailable"
		}
		c.JSON(200, gin.H{
			"status":              "ok",
			"timestamp":           time.Now(),
			"database":            dbStatus,
			"whatsapp_configured": whatsappService.Enabled(),
			"sms_configured":      smsService.Enabled(),
		})
	})

	// Setup all routes
	routes.SetupRoutes(router, routes.Deps{
		Config:          cfg,
		Tables:          tables,
		ChatbotService:  chatbotService,
		WhatsAppService: whatsappService,
		SMSService:      smsService,
		Logger:          zapLogger,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		zapLogger.Info("Server starting", zap.String("port", cfg.Port))

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}
