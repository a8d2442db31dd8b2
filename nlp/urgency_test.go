package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"health-chatbot-backend/knowledge"
	"health-chatbot-backend/models"
)

func newTestAssessorParts() (*UrgencyAssessor, *ConditionMatcher) {
	tables := knowledge.Default()
	return NewUrgencyAssessor(tables.Urgency), NewConditionMatcher(tables.Conditions)
}

func TestUrgencyAssessor_EmergencyIsCritical(t *testing.T) {
	urgency, _ := newTestAssessorParts()

	level := urgency.Assess([]string{"severe chest pain", "difficulty breathing"})

	assert.Equal(t, models.SeverityCritical, level)
}

func TestUrgencyAssessor_EmergencyWinsOverMilderSymptoms(t *testing.T) {
	urgency, _ := newTestAssessorParts()

	// Any emergency phrase forces CRITICAL regardless of what else is present.
	level := urgency.Assess([]string{"runny nose", "mild fever", "loss of consciousness", "sore throat"})

	assert.Equal(t, models.SeverityCritical, level)
}

func TestUrgencyAssessor_EveryEmergencyPhraseIsCritical(t *testing.T) {
	tables := knowledge.Default()
	urgency := NewUrgencyAssessor(tables.Urgency)

	for _, phrase := range tables.Urgency.Emergency {
		level := urgency.Assess([]string{phrase})
		assert.Equal(t, models.SeverityCritical, level, "phrase %q", phrase)
	}
}

func TestUrgencyAssessor_High(t *testing.T) {
	urgency, _ := newTestAssessorParts()

	level := urgency.Assess([]string{"severe fever", "weakness"})

	assert.Equal(t, models.SeverityHigh, level)
}

func TestUrgencyAssessor_Moderate(t *testing.T) {
	urgency, _ := newTestAssessorParts()

	level := urgency.Assess([]string{"fever", "persistent cough"})

	assert.Equal(t, models.SeverityModerate, level)
}

func TestUrgencyAssessor_Low(t *testing.T) {
	urgency, _ := newTestAssessorParts()

	level := urgency.Assess([]string{"runny nose", "sneezing"})

	assert.Equal(t, models.SeverityLow, level)
}

func TestUrgencyAssessor_EmptySymptomsAreLow(t *testing.T) {
	urgency, _ := newTestAssessorParts()

	assert.Equal(t, models.SeverityLow, urgency.Assess(nil))
}

func TestSeverityLevel_Order(t *testing.T) {
	assert.True(t, models.SeverityCritical.AtLeast(models.SeverityHigh))
	assert.True(t, models.SeverityHigh.AtLeast(models.SeverityModerate))
	assert.True(t, models.SeverityModerate.AtLeast(models.SeverityLow))
	assert.False(t, models.SeverityLow.AtLeast(models.SeverityModerate))
}
