package services

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"health-chatbot-backend/config"
	"health-chatbot-backend/utils"
)

// An SMS segment is 160 GSM-7 characters; longer replies are truncated so a
// single health answer never fans out into a long concatenated message.
const maxSMSLength = 160

// SMSService sends outbound messages through the Twilio REST API.
type SMSService struct {
	accountSID string
	authToken  string
	fromNumber string
	apiURL     string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewSMSService(cfg config.SMSConfig, logger *zap.Logger) *SMSService {
	return &SMSService{
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		fromNumber: cfg.FromNumber,
		apiURL:     "https://api.twilio.com/2010-04-01",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Enabled reports whether Twilio credentials are configured.
func (s *SMSService) Enabled() bool {
	return s.accountSID != "" && s.authToken != "" && s.fromNumber != ""
}

// SendSMS sends one text message, truncated to a single SMS segment.
func (s *SMSService) SendSMS(to string, message string) error {
	to = utils.CleanPhoneNumber(to)
	message = TruncateForSMS(message)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", s.apiURL, s.accountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", s.fromNumber)
	form.Set("Body", message)

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		s.logger.Error("Twilio API request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("to", to))
		return fmt.Errorf("Twilio API error: %s", string(body))
	}

	return nil
}

// TruncateForSMS caps a message at one SMS segment on a rune boundary.
func TruncateForSMS(message string) string {
	runes := []rune(message)
	if len(runes) <= maxSMSLength {
		return message
	}
	return string(runes[:maxSMSLength-3]) + "..."
}
