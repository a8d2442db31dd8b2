package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageChannel represents the communication channel a query arrived on.
type MessageChannel string

const (
	ChannelWeb      MessageChannel = "web"
	ChannelWhatsApp MessageChannel = "whatsapp"
	ChannelSMS      MessageChannel = "sms"
)

// Query is the immutable input unit handed to the pipeline.
type Query struct {
	RawText          string
	DeclaredLanguage string // language code, "auto", or empty for auto-detect
	Channel          MessageChannel
	SessionID        string
}

// QueryResult is what the pipeline returns to callers.
type QueryResult struct {
	ResponseText     string     `json:"response"`
	Suggestions      []string   `json:"suggestions"`
	DetectedIntent   IntentKind `json:"detected_intent"`
	Confidence       float64    `json:"confidence"`
	DetectedLanguage string     `json:"detected_language"`
}

// ChatRequest is the REST/WebSocket chat payload.
type ChatRequest struct {
	Message   string         `json:"message" binding:"required"`
	Language  string         `json:"language,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
	UserID    string         `json:"user_id,omitempty"`
	Channel   MessageChannel `json:"channel,omitempty"`
}

// ChatResponse is the chat payload returned to web and channel clients.
type ChatResponse struct {
	Response         string     `json:"response"`
	Suggestions      []string   `json:"suggestions"`
	DetectedIntent   IntentKind `json:"detected_intent"`
	Confidence       float64    `json:"confidence"`
	DetectedLanguage string     `json:"detected_language"`
	SessionID        string     `json:"session_id"`
}

// Message is the persisted record of one processed exchange.
type Message struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID   string             `bson:"session_id" json:"session_id"`
	UserMessage string             `bson:"user_message" json:"user_message"`
	BotResponse string             `bson:"bot_response" json:"bot_response"`
	Intent      IntentKind         `bson:"intent" json:"intent"`
	Confidence  float64            `bson:"confidence" json:"confidence"`
	Language    string             `bson:"language" json:"language"`
	Channel     MessageChannel     `bson:"channel" json:"channel"`
	UserID      string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}
