package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"health-chatbot-backend/database"
	"health-chatbot-backend/models"
	"health-chatbot-backend/nlp"
	"health-chatbot-backend/utils"
)

const persistTimeout = 5 * time.Second

// ChatbotService fronts the query pipeline for every channel. It owns session
// identifiers and message persistence; persistence is best effort and never
// blocks or fails a reply.
type ChatbotService struct {
	pipeline *nlp.Pipeline
	messages *database.MessageRepository
	logger   *zap.Logger
}

func NewChatbotService(pipeline *nlp.Pipeline, messages *database.MessageRepository, logger *zap.Logger) *ChatbotService {
	return &ChatbotService{
		pipeline: pipeline,
		messages: messages,
		logger:   logger,
	}
}

// ProcessMessage answers one chat message. A missing session ID gets a fresh
// one so the client can thread the conversation.
func (s *ChatbotService) ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = utils.GenerateSessionID()
	}

	channel := req.Channel
	if channel == "" {
		channel = models.ChannelWeb
	}

	result := s.pipeline.ProcessQuery(ctx, models.Query{
		RawText:          req.Message,
		DeclaredLanguage: req.Language,
		Channel:          channel,
		SessionID:        sessionID,
	})

	s.saveMessage(&models.Message{
		SessionID:   sessionID,
		UserMessage: req.Message,
		BotResponse: result.ResponseText,
		Intent:      result.DetectedIntent,
		Confidence:  result.Confidence,
		Language:    result.DetectedLanguage,
		Channel:     channel,
		UserID:      req.UserID,
		Timestamp:   time.Now(),
	})

	return &models.ChatResponse{
		Response:         result.ResponseText,
		Suggestions:      result.Suggestions,
		DetectedIntent:   result.DetectedIntent,
		Confidence:       result.Confidence,
		DetectedLanguage: result.DetectedLanguage,
		SessionID:        sessionID,
	}, nil
}

// AssessSymptoms runs a direct symptom assessment outside the chat flow.
func (s *ChatbotService) AssessSymptoms(req models.AssessmentRequest) models.Assessment {
	return s.pipeline.Assess(req.Symptoms)
}

// ChannelCounts returns message totals per channel.
func (s *ChatbotService) ChannelCounts(ctx context.Context) (map[models.MessageChannel]int64, error) {
	if s.messages == nil {
		return map[models.MessageChannel]int64{}, nil
	}
	return s.messages.CountByChannel(ctx)
}

// History returns the recent exchanges of a session, newest first.
func (s *ChatbotService) History(ctx context.Context, sessionID string, limit int64) ([]models.Message, error) {
	if s.messages == nil {
		return nil, nil
	}
	return s.messages.RecentBySession(ctx, sessionID, limit)
}

func (s *ChatbotService) saveMessage(message *models.Message) {
	if s.messages == nil {
		return
	}

	// Detached context: the reply has already been composed and a slow or
	// down database must not delay it.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if err := s.messages.Save(ctx, message); err != nil {
			s.logger.Warn("failed to persist message",
				zap.String("session_id", message.SessionID),
				zap.Error(err))
		}
	}()
}
