package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port           string
	Environment    string
	AllowedOrigins []string

	// Database
	Database DatabaseConfig

	// Redis cache
	Redis RedisConfig

	// Translation Service
	Translation TranslationConfig

	// WhatsApp Cloud API
	WhatsApp WhatsAppConfig

	// SMS Service
	SMS SMSConfig

	// Chatbot behavior
	Chatbot ChatbotConfig

	// Logging
	Log LogConfig
}

type DatabaseConfig struct {
	URI      string
	Name     string
	Host     string
	Port     string
	Username string
	Password string

	// Connection pool settings
	MaxConnections int
	MinConnections int
	MaxIdleTime    time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type TranslationConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type WhatsAppConfig struct {
	AccessToken   string
	PhoneNumberID string
	VerifyToken   string
	AppSecret     string
	APIVersion    string
}

type SMSConfig struct {
	Provider   string // "twilio"
	AccountSID string
	AuthToken  string
	FromNumber string
}

type ChatbotConfig struct {
	KnowledgeFile   string
	DefaultLanguage string
	SessionTTL      time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

var cfg *Config

// Load initializes the configuration
func Load() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg = &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),

		Database: DatabaseConfig{
			URI:      getEnv("DATABASE_URL", ""),
			Name:     getEnv("DB_NAME", "health_chatbot"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "27017"),
			Username: getEnv("DB_USERNAME", ""),
			Password: getEnv("DB_PASSWORD", ""),

			MaxConnections: getEnvAsInt("DB_MAX_CONNECTIONS", 100),
			MinConnections: getEnvAsInt("DB_MIN_CONNECTIONS", 10),
			MaxIdleTime:    getEnvAsDuration("DB_MAX_IDLE_TIME", "30m"),
		},

		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      getEnvAsDuration("REDIS_TRANSLATION_TTL", "24h"),
		},

		Translation: TranslationConfig{
			BaseURL: getEnv("TRANSLATION_API_URL", ""),
			APIKey:  getEnv("TRANSLATION_API_KEY", ""),
			Timeout: getEnvAsDuration("TRANSLATION_TIMEOUT", "10s"),
		},

		WhatsApp: WhatsAppConfig{
			AccessToken:   getEnv("WHATSAPP_ACCESS_TOKEN", ""),
			PhoneNumberID: getEnv("WHATSAPP_PHONE_NUMBER_ID", ""),
			VerifyToken:   getEnv("WHATSAPP_VERIFY_TOKEN", ""),
			AppSecret:     getEnv("WHATSAPP_APP_SECRET", ""),
			APIVersion:    getEnv("WHATSAPP_API_VERSION", "v18.0"),
		},

		SMS: SMSConfig{
			Provider:   getEnv("SMS_PROVIDER", "twilio"),
			AccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
			FromNumber: getEnv("TWILIO_FROM_NUMBER", ""),
		},

		Chatbot: ChatbotConfig{
			KnowledgeFile:   getEnv("KNOWLEDGE_FILE", ""),
			DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
			SessionTTL:      getEnvAsDuration("SESSION_TTL", "1h"),
		},

		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate configuration
	if err := validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	return nil
}

// Get returns the loaded configuration
func Get() *Config {
	if cfg == nil {
		log.Fatal("Configuration not loaded. Call Load() first")
	}
	return cfg
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	// Simple comma-separated parsing
	return strings.Split(value, ",")
}

func validate() error {
	// Validate required fields
	if cfg.Database.URI == "" {
		if cfg.Database.Host == "" || cfg.Database.Port == "" {
			return fmt.Errorf("database URI or host/port must be provided")
		}
	}

	if cfg.WhatsApp.AccessToken != "" && cfg.WhatsApp.PhoneNumberID == "" {
		return fmt.Errorf("WHATSAPP_PHONE_NUMBER_ID is required when WhatsApp is enabled")
	}

	if cfg.SMS.AccountSID != "" && cfg.SMS.FromNumber == "" {
		return fmt.Errorf("TWILIO_FROM_NUMBER is required when SMS is enabled")
	}

	return nil
}

// BuildDatabaseURI constructs the database URI if not provided
func (c *Config) BuildDatabaseURI() string {
	if c.Database.URI != "" {
		return c.Database.URI
	}

	if c.Database.Username != "" && c.Database.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s",
			c.Database.Username,
			c.Database.Password,
			c.Database.Host,
			c.Database.Port,
			c.Database.Name,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}
