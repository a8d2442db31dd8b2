package nlp

import (
	"strings"

	"health-chatbot-backend/knowledge"
	"health-chatbot-backend/models"
)

// UrgencyAssessor maps a symptom set to a severity level using the tiered
// phrase tables. A pure function over static tables; no scoring, no state.
type UrgencyAssessor struct {
	phrases knowledge.UrgencyPhrases
}

func NewUrgencyAssessor(phrases knowledge.UrgencyPhrases) *UrgencyAssessor {
	return &UrgencyAssessor{phrases: phrases}
}

// Assess checks the tiers in order of severity, first match wins. The
// emergency tier takes absolute precedence: any emergency phrase in the
// symptom set yields CRITICAL no matter what else is present.
func (u *UrgencyAssessor) Assess(symptoms []string) models.SeverityLevel {
	joined := strings.ToLower(strings.Join(symptoms, ", "))

	switch {
	case containsAnyPhrase(joined, u.phrases.Emergency):
		return models.SeverityCritical
	case containsAnyPhrase(joined, u.phrases.High):
		return models.SeverityHigh
	case containsAnyPhrase(joined, u.phrases.Moderate):
		return models.SeverityModerate
	default:
		return models.SeverityLow
	}
}

func containsAnyPhrase(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
