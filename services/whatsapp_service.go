package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"health-chatbot-backend/config"
	"health-chatbot-backend/models"
	"health-chatbot-backend/utils"
)

// WhatsAppService sends replies through the WhatsApp Cloud API.
type WhatsAppService struct {
	apiURL        string
	apiVersion    string
	accessToken   string
	phoneNumberID string
	verifyToken   string
	httpClient    *http.Client
	logger        *zap.Logger

	// Status tracking
	statusMu        sync.RWMutex
	lastMessageTime time.Time
	messageCount    int64
	dailyCount      map[string]int
}

func NewWhatsAppService(cfg config.WhatsAppConfig, logger *zap.Logger) *WhatsAppService {
	return &WhatsAppService{
		apiURL:        "https://graph.facebook.com",
		apiVersion:    cfg.APIVersion,
		accessToken:   cfg.AccessToken,
		phoneNumberID: cfg.PhoneNumberID,
		verifyToken:   cfg.VerifyToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:     logger,
		dailyCount: make(map[string]int),
	}
}

// Enabled reports whether the Cloud API credentials are configured.
func (ws *WhatsAppService) Enabled() bool {
	return ws.accessToken != "" && ws.phoneNumberID != ""
}

// GetVerifyToken returns the webhook verification token
func (ws *WhatsAppService) GetVerifyToken() string {
	return ws.verifyToken
}

// SendTextMessage sends a simple text message
func (ws *WhatsAppService) SendTextMessage(to string, message string) error {
	// Clean and validate phone number
	to = utils.CleanPhoneNumber(to)

	payload := models.WhatsAppSendMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text: &models.WhatsAppText{
			Body: message,
		},
	}

	return ws.sendRequest(payload)
}

// MarkMessageAsRead marks a message as read
func (ws *WhatsAppService) MarkMessageAsRead(messageID string) error {
	payload := map[string]interface{}{
		"messaging_product": "whatsapp",
		"status":            "read",
		"message_id":        messageID,
	}

	return ws.sendRequest(payload)
}

// sendRequest sends HTTP request to WhatsApp API
func (ws *WhatsAppService) sendRequest(payload interface{}) error {
	url := fmt.Sprintf("%s/%s/%s/messages", ws.apiURL, ws.apiVersion, ws.phoneNumberID)

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+ws.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ws.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errorResp map[string]interface{}
		if err := json.Unmarshal(body, &errorResp); err == nil {
			ws.logger.Error("WhatsApp API request rejected",
				zap.Int("status", resp.StatusCode),
				zap.Any("error", errorResp["error"]))
			return fmt.Errorf("WhatsApp API error: %v", errorResp)
		}
		return fmt.Errorf("WhatsApp API error: %s", string(body))
	}

	ws.updateMessageStatus()
	return nil
}

// updateMessageStatus updates internal message tracking
func (ws *WhatsAppService) updateMessageStatus() {
	ws.statusMu.Lock()
	defer ws.statusMu.Unlock()

	ws.lastMessageTime = time.Now()
	ws.messageCount++

	// Update daily count
	today := time.Now().Format("2006-01-02")
	ws.dailyCount[today]++
}

// GetStatus returns the service status
func (ws *WhatsAppService) GetStatus() models.WhatsAppServiceStatus {
	ws.statusMu.RLock()
	defer ws.statusMu.RUnlock()

	today := time.Now().Format("2006-01-02")

	return models.WhatsAppServiceStatus{
		Enabled:             ws.Enabled(),
		LastMessageReceived: ws.lastMessageTime,
		MessageCountToday:   ws.dailyCount[today],
	}
}
