package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	unsafeRe     = regexp.MustCompile("[<>\"'`]")
	nonDigitRe   = regexp.MustCompile(`[^\d]`)
)

const maxMessageLength = 1000

// SanitizeMessage normalizes whitespace, strips markup-sensitive characters
// and caps the message length. The cap counts runes, not bytes, so multi-byte
// scripts are never cut mid-character.
func SanitizeMessage(message string) string {
	message = whitespaceRe.ReplaceAllString(strings.TrimSpace(message), " ")
	message = unsafeRe.ReplaceAllString(message, "")

	if runes := []rune(message); len(runes) > maxMessageLength {
		message = string(runes[:maxMessageLength]) + "..."
	}

	return message
}

// CleanPhoneNumber strips formatting and returns the number in E.164 form.
// Ten-digit numbers get the Indian country code.
func CleanPhoneNumber(phone string) string {
	cleaned := nonDigitRe.ReplaceAllString(phone, "")

	if len(cleaned) == 10 {
		cleaned = "91" + cleaned
	}

	return "+" + cleaned
}

// GenerateSessionID returns a fresh opaque session identifier.
func GenerateSessionID() string {
	return uuid.NewString()
}
