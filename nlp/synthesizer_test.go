package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-chatbot-backend/knowledge"
	"health-chatbot-backend/models"
)

func newTestSynthesizer() *ResponseSynthesizer {
	tables := knowledge.Default()
	return NewResponseSynthesizer(tables, NewAssessor(tables))
}

func TestResponseSynthesizer_Emergency(t *testing.T) {
	synthesizer := newTestSynthesizer()

	response, suggestions := synthesizer.Synthesize(models.IntentEmergency, models.EntityBag{}, 0.9)

	assert.Contains(t, response, "108")
	assert.Contains(t, response, "emergency services")
	assert.Len(t, suggestions, 3)
}

func TestResponseSynthesizer_SymptomQueryWithSymptoms(t *testing.T) {
	synthesizer := newTestSynthesizer()

	entities := models.EntityBag{Symptoms: []string{"fever", "cough"}}
	response, suggestions := synthesizer.Synthesize(models.IntentSymptomQuery, entities, 0.8)

	assert.Contains(t, response, "recommendations")
	assert.NotEmpty(t, suggestions)
	// At most two recommendations are embedded, so at most one separator
	// beyond the template's own comma usage is fine; just check it is short.
	assert.Less(t, len(response), 400)
}

func TestResponseSynthesizer_SymptomQueryWithoutSymptomsAsksForDetail(t *testing.T) {
	synthesizer := newTestSynthesizer()

	response, suggestions := synthesizer.Synthesize(models.IntentSymptomQuery, models.EntityBag{}, 0.8)

	assert.Contains(t, response, "more specifically")
	assert.Len(t, suggestions, 3)
}

func TestResponseSynthesizer_DiseaseInfoKnownDisease(t *testing.T) {
	synthesizer := newTestSynthesizer()

	entities := models.EntityBag{Diseases: []string{"malaria"}}
	response, suggestions := synthesizer.Synthesize(models.IntentDiseaseInfo, entities, 0.8)

	assert.Contains(t, response, "malaria")
	require.NotEmpty(t, suggestions)
	assert.Contains(t, suggestions[0], "malaria")
}

func TestResponseSynthesizer_DiseaseInfoUnknownDiseaseFallsBack(t *testing.T) {
	tables := knowledge.Default()
	tables.Vocabulary.Diseases = append(tables.Vocabulary.Diseases, "scurvy")
	synthesizer := NewResponseSynthesizer(tables, NewAssessor(tables))

	entities := models.EntityBag{Diseases: []string{"scurvy"}}
	response, _ := synthesizer.Synthesize(models.IntentDiseaseInfo, entities, 0.8)

	assert.Contains(t, response, "scurvy")
	assert.Contains(t, response, "proper medical attention")
}

func TestResponseSynthesizer_DiseaseInfoWithoutDisease(t *testing.T) {
	synthesizer := newTestSynthesizer()

	response, _ := synthesizer.Synthesize(models.IntentDiseaseInfo, models.EntityBag{}, 0.8)

	assert.Contains(t, response, "Which disease")
}

func TestResponseSynthesizer_Vaccination(t *testing.T) {
	synthesizer := newTestSynthesizer()

	response, suggestions := synthesizer.Synthesize(models.IntentVaccination, models.EntityBag{}, 0.8)

	assert.Contains(t, response, "vaccinations")
	assert.Len(t, suggestions, 3)
}

func TestResponseSynthesizer_Prevention(t *testing.T) {
	synthesizer := newTestSynthesizer()

	response, _ := synthesizer.Synthesize(models.IntentPrevention, models.EntityBag{}, 0.8)

	assert.Contains(t, response, "Prevention")
}

func TestResponseSynthesizer_GeneralDefault(t *testing.T) {
	synthesizer := newTestSynthesizer()

	response, suggestions := synthesizer.Synthesize(models.IntentGeneral, models.EntityBag{}, 0.0)

	assert.Contains(t, response, "health assistant")
	assert.Len(t, suggestions, 4)
}

func TestResponseSynthesizer_LowConfidenceSuffix(t *testing.T) {
	synthesizer := newTestSynthesizer()

	low, _ := synthesizer.Synthesize(models.IntentPrevention, models.EntityBag{}, 0.5)
	high, _ := synthesizer.Synthesize(models.IntentPrevention, models.EntityBag{}, 0.7)

	assert.True(t, strings.HasSuffix(low, lowConfidenceSuffix))
	assert.False(t, strings.HasSuffix(high, lowConfidenceSuffix))
}

func TestResponseSynthesizer_EmergencyIndependentOfSymptoms(t *testing.T) {
	synthesizer := newTestSynthesizer()

	// Emergency intent takes the emergency branch even with benign symptoms.
	entities := models.EntityBag{Symptoms: []string{"runny nose"}}
	response, _ := synthesizer.Synthesize(models.IntentEmergency, entities, 0.9)

	assert.Contains(t, response, "108")
}
