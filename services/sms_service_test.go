package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"health-chatbot-backend/config"
)

func TestTruncateForSMS(t *testing.T) {
	short := "Take rest and stay hydrated."
	assert.Equal(t, short, TruncateForSMS(short))

	long := strings.Repeat("a", 300)
	truncated := TruncateForSMS(long)
	assert.Len(t, truncated, 160)
	assert.True(t, strings.HasSuffix(truncated, "..."))
}

func TestTruncateForSMS_RuneBoundary(t *testing.T) {
	long := strings.Repeat("बुखार ", 60)

	truncated := TruncateForSMS(long)

	assert.LessOrEqual(t, len([]rune(truncated)), 160)
	assert.True(t, strings.HasSuffix(truncated, "..."))
}

func TestSMSService_Enabled(t *testing.T) {
	disabled := NewSMSService(config.SMSConfig{}, zap.NewNop())
	assert.False(t, disabled.Enabled())

	enabled := NewSMSService(config.SMSConfig{
		AccountSID: "AC123",
		AuthToken:  "token",
		FromNumber: "+15005550006",
	}, zap.NewNop())
	assert.True(t, enabled.Enabled())
}
