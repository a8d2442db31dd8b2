package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-chatbot-backend/knowledge"
	"health-chatbot-backend/models"
)

func TestConditionMatcher_MalariaThreshold(t *testing.T) {
	_, matcher := newTestAssessorParts()

	// Five of malaria's canonical terms, threshold is three.
	matches := matcher.Match([]string{"fever", "chills", "sweating", "headache", "nausea"})

	names := matchNames(matches)
	assert.Contains(t, names, "Malaria")
}

func TestConditionMatcher_BelowThresholdExcluded(t *testing.T) {
	_, matcher := newTestAssessorParts()

	// Two matches, below malaria's threshold of three.
	matches := matcher.Match([]string{"fever", "chills"})

	names := matchNames(matches)
	assert.NotContains(t, names, "Malaria")
}

func TestConditionMatcher_DisjointSymptomsMatchNothing(t *testing.T) {
	_, matcher := newTestAssessorParts()

	matches := matcher.Match([]string{"itchy scalp", "hiccups"})

	assert.Empty(t, matches)
}

func TestConditionMatcher_DeclarationOrderPreserved(t *testing.T) {
	_, matcher := newTestAssessorParts()

	// Hits Common Cold (2), COVID-19 (2) and Malaria (4); result order must
	// follow the table, not overlap size.
	matches := matcher.Match([]string{"fever", "cough", "sore throat", "headache", "nausea", "vomiting"})

	require.Len(t, matches, 3)
	assert.Equal(t, "Common Cold", matches[0].Name)
	assert.Equal(t, "COVID-19", matches[1].Name)
	assert.Equal(t, "Malaria", matches[2].Name)
	assert.Equal(t, 4, matches[2].SymptomOverlap)
}

func TestConditionMatcher_ExactTermMembership(t *testing.T) {
	_, matcher := newTestAssessorParts()

	// "fever" is not "mild fever"; it must not count toward Common Cold.
	matches := matcher.Match([]string{"fever", "runny nose"})

	names := matchNames(matches)
	assert.NotContains(t, names, "Common Cold")
}

func matchNames(matches []models.ConditionMatch) []string {
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Name)
	}
	return names
}

func TestConditionMatcher_CustomTable(t *testing.T) {
	matcher := NewConditionMatcher([]knowledge.Condition{
		{
			Name:     "Test Condition",
			Symptoms: []string{"a", "b", "c"},
			Severity: models.SeverityLow,
			MinMatch: 2,
		},
	})

	assert.Len(t, matcher.Match([]string{"a", "b"}), 1)
	assert.Empty(t, matcher.Match([]string{"a"}))
}
