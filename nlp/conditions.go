package nlp

import (
	"strings"

	"health-chatbot-backend/knowledge"
	"health-chatbot-backend/models"
)

// ConditionMatcher suggests candidate conditions by the overlap between the
// user's symptom set and each condition's canonical symptom set. Matches are
// returned in table-declaration order, not sorted by overlap size.
type ConditionMatcher struct {
	conditions []knowledge.Condition
}

func NewConditionMatcher(conditions []knowledge.Condition) *ConditionMatcher {
	return &ConditionMatcher{conditions: conditions}
}

// Match includes a condition when the intersection with its canonical
// symptoms meets that condition's own minimum threshold. The thresholds are
// deliberately not uniform: a condition with common symptoms needs more
// distinguishing matches before it is suggested.
func (m *ConditionMatcher) Match(symptoms []string) []models.ConditionMatch {
	symptomSet := make(map[string]bool, len(symptoms))
	for _, s := range symptoms {
		symptomSet[strings.ToLower(strings.TrimSpace(s))] = true
	}

	var matches []models.ConditionMatch
	for _, c := range m.conditions {
		overlap := 0
		for _, canonical := range c.Symptoms {
			if symptomSet[strings.ToLower(canonical)] {
				overlap++
			}
		}
		if overlap >= c.MinMatch {
			matches = append(matches, models.ConditionMatch{
				Name:           c.Name,
				Description:    c.Description,
				SymptomOverlap: overlap,
				Prevention:     c.Prevention,
				Treatment:      c.Treatment,
				SeverityLevel:  c.Severity,
			})
		}
	}
	return matches
}
