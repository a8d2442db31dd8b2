package nlp

import (
	"regexp"
	"strings"

	"health-chatbot-backend/knowledge"
	"health-chatbot-backend/models"
)

// IntentClassifier scores candidate intents from per-language regex patterns,
// boosted by the density of domain keywords in the text. Patterns are
// compiled once at construction; classification is pure and deterministic.
type IntentClassifier struct {
	tables   *knowledge.Tables
	patterns map[string]map[models.IntentKind][]*regexp.Regexp
}

func NewIntentClassifier(tables *knowledge.Tables) *IntentClassifier {
	return &IntentClassifier{
		tables:   tables,
		patterns: tables.CompilePatterns(),
	}
}

const (
	patternBaseConfidence = 0.7
	keywordMatchBonus     = 0.05
	keywordBoost          = 0.1
)

// Classify returns the winning intent and its confidence in [0,1]. Intents
// are evaluated in the fixed order of knowledge.IntentOrder and ties resolve
// to the earliest intent; when no pattern matches the result is
// (general, 0.0). Unsupported languages use the working-language tables.
func (c *IntentClassifier) Classify(text, lang string) (models.IntentKind, float64) {
	if strings.TrimSpace(text) == "" {
		return models.IntentGeneral, 0.0
	}

	lower := strings.ToLower(text)
	keywordCount := countKeywords(lower, c.tables.KeywordsFor(lang))

	patterns, ok := c.patterns[lang]
	if !ok {
		patterns = c.patterns[c.tables.WorkingLanguage]
	}

	bestIntent := models.IntentGeneral
	bestConfidence := 0.0
	for _, intent := range knowledge.IntentOrder {
		for _, re := range patterns[intent] {
			if !re.MatchString(text) {
				continue
			}
			confidence := capConfidence(patternBaseConfidence + keywordMatchBonus*float64(keywordCount))
			if confidence > bestConfidence {
				bestConfidence = confidence
				bestIntent = intent
			}
			break
		}
	}

	if bestConfidence == 0.0 {
		return models.IntentGeneral, 0.0
	}

	// Keyword density boosts the winner, but never lifts a zero base.
	if keywordCount > 0 {
		bestConfidence = capConfidence(bestConfidence + keywordBoost*float64(keywordCount))
	}

	return bestIntent, bestConfidence
}

func countKeywords(lower string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			count++
		}
	}
	return count
}

func capConfidence(c float64) float64 {
	if c > 1.0 {
		return 1.0
	}
	return c
}
