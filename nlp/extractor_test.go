package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"health-chatbot-backend/knowledge"
)

func newTestExtractor() *EntityExtractor {
	return NewEntityExtractor(knowledge.Default().Vocabulary)
}

func TestEntityExtractor_Extract(t *testing.T) {
	extractor := newTestExtractor()

	entities := extractor.Extract("I have fever, cough and chest pain")

	assert.Contains(t, entities.Symptoms, "fever")
	assert.Contains(t, entities.Symptoms, "cough")
	assert.Contains(t, entities.Symptoms, "chest pain")
	assert.Contains(t, entities.BodyParts, "chest")
	assert.Empty(t, entities.Diseases)
	assert.Empty(t, entities.Medications)
}

func TestEntityExtractor_CaseInsensitive(t *testing.T) {
	extractor := newTestExtractor()

	entities := extractor.Extract("FEVER and Malaria after taking Paracetamol")

	assert.Contains(t, entities.Symptoms, "fever")
	assert.Contains(t, entities.Diseases, "malaria")
	assert.Contains(t, entities.Medications, "paracetamol")
}

func TestEntityExtractor_EmptyText(t *testing.T) {
	extractor := newTestExtractor()

	entities := extractor.Extract("")

	assert.True(t, entities.IsEmpty())
}

func TestEntityExtractor_Deterministic(t *testing.T) {
	extractor := newTestExtractor()

	first := extractor.Extract("fever and cough with headache")
	second := extractor.Extract("fever and cough with headache")

	assert.Equal(t, first, second)
}

func TestEntityExtractor_ConcatenationYieldsSuperset(t *testing.T) {
	extractor := newTestExtractor()

	a := "I have fever and cough"
	b := "what is malaria"
	combined := extractor.Extract(a + " " + b)
	fromA := extractor.Extract(a)
	fromB := extractor.Extract(b)

	for _, s := range append(fromA.Symptoms, fromB.Symptoms...) {
		assert.Contains(t, combined.Symptoms, s)
	}
	for _, d := range append(fromA.Diseases, fromB.Diseases...) {
		assert.Contains(t, combined.Diseases, d)
	}
}

// Negation is a known limitation: "no fever" still matches "fever".
func TestEntityExtractor_NoNegationHandling(t *testing.T) {
	extractor := newTestExtractor()

	entities := extractor.Extract("I have no fever")

	assert.Contains(t, entities.Symptoms, "fever")
}

func TestEntityExtractor_EmergencyPhrasesPreserved(t *testing.T) {
	extractor := newTestExtractor()

	entities := extractor.Extract("severe chest pain and difficulty breathing")

	assert.Contains(t, entities.Symptoms, "severe chest pain")
	assert.Contains(t, entities.Symptoms, "difficulty breathing")
}
