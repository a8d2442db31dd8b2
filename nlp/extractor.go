package nlp

import (
	"strings"

	"health-chatbot-backend/knowledge"
	"health-chatbot-backend/models"
)

// EntityExtractor pulls symptom, disease, body-part and medication mentions
// out of free text by substring containment against the controlled
// vocabularies. There is no stemming and no negation handling, so "no fever"
// still matches "fever".
type EntityExtractor struct {
	vocab knowledge.Vocabulary
}

func NewEntityExtractor(vocab knowledge.Vocabulary) *EntityExtractor {
	return &EntityExtractor{vocab: vocab}
}

// Extract returns every vocabulary term contained in text, deduplicated and
// lowercased, grouped by category. Deterministic and side-effect free.
func (e *EntityExtractor) Extract(text string) models.EntityBag {
	lower := strings.ToLower(text)

	return models.EntityBag{
		Symptoms:    matchTerms(lower, e.vocab.Symptoms),
		Diseases:    matchTerms(lower, e.vocab.Diseases),
		BodyParts:   matchTerms(lower, e.vocab.BodyParts),
		Medications: matchTerms(lower, e.vocab.Medications),
	}
}

func matchTerms(lower string, terms []string) []string {
	var matched []string
	seen := make(map[string]bool, len(terms))
	for _, term := range terms {
		t := strings.ToLower(term)
		if seen[t] {
			continue
		}
		if strings.Contains(lower, t) {
			matched = append(matched, t)
			seen[t] = true
		}
	}
	return matched
}
