package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"health-chatbot-backend/config"
	"health-chatbot-backend/nlp"
)

// TranslationService talks to an external machine-translation API. It is a
// best-effort collaborator: every failure path returns a usable fallback
// instead of an error, so the chat pipeline keeps answering in the working
// language when the API is down or unconfigured.
type TranslationService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewTranslationService(cfg config.TranslationConfig, logger *zap.Logger) *TranslationService {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &TranslationService{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type detectResponse struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// DetectLanguage returns the detected language code and confidence. An empty
// language code signals the caller to fall back to its default.
func (s *TranslationService) DetectLanguage(ctx context.Context, text string) (string, float64) {
	if s.baseURL == "" || text == "" {
		return "", 0
	}

	var result detectResponse
	if err := s.post(ctx, "/detect", map[string]string{"q": text}, &result); err != nil {
		s.logger.Warn("language detection failed", zap.Error(err))
		return "", 0
	}

	return result.Language, result.Confidence
}

// Translate returns text translated from source to target, or the input
// unchanged when translation is unavailable.
func (s *TranslationService) Translate(ctx context.Context, text, target, source string) string {
	if s.baseURL == "" || text == "" || target == source {
		return text
	}

	var result translateResponse
	payload := map[string]string{
		"q":      text,
		"source": source,
		"target": target,
	}
	if err := s.post(ctx, "/translate", payload, &result); err != nil {
		s.logger.Warn("translation failed",
			zap.String("source", source),
			zap.String("target", target),
			zap.Error(err))
		return text
	}
	if result.TranslatedText == "" {
		return text
	}

	return result.TranslatedText
}

func (s *TranslationService) post(ctx context.Context, path string, payload any, out any) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("translation API error: %s", string(body))
	}

	return json.Unmarshal(body, out)
}

// CachedTranslator wraps a translator with a Redis cache keyed on the text
// and language pair. Cache errors are ignored; the wrapped translator is the
// source of truth.
type CachedTranslator struct {
	inner  nlp.Translator
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedTranslator(inner nlp.Translator, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedTranslator {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &CachedTranslator{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (c *CachedTranslator) DetectLanguage(ctx context.Context, text string) (string, float64) {
	return c.inner.DetectLanguage(ctx, text)
}

func (c *CachedTranslator) Translate(ctx context.Context, text, target, source string) string {
	key := translationCacheKey(text, target, source)

	if cached, err := c.client.Get(ctx, key).Result(); err == nil {
		return cached
	}

	translated := c.inner.Translate(ctx, text, target, source)

	// Only cache real translations; an unchanged result usually means the
	// upstream call failed and should be retried next time.
	if translated != text {
		if err := c.client.Set(ctx, key, translated, c.ttl).Err(); err != nil {
			c.logger.Warn("translation cache write failed", zap.Error(err))
		}
	}

	return translated
}

func translationCacheKey(text, target, source string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("translation:%s:%s:%s", source, target, hex.EncodeToString(sum[:]))
}
