package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"health-chatbot-backend/knowledge"
	"health-chatbot-backend/models"
)

func newTestClassifier() *IntentClassifier {
	return NewIntentClassifier(knowledge.Default())
}

func TestIntentClassifier_SymptomQuery(t *testing.T) {
	classifier := newTestClassifier()

	intent, confidence := classifier.Classify("I have fever and cough", "en")

	assert.Equal(t, models.IntentSymptomQuery, intent)
	assert.Greater(t, confidence, 0.5)
}

func TestIntentClassifier_DiseaseInfo(t *testing.T) {
	classifier := newTestClassifier()

	intent, confidence := classifier.Classify("What is malaria?", "en")

	assert.Equal(t, models.IntentDiseaseInfo, intent)
	assert.Greater(t, confidence, 0.5)
}

func TestIntentClassifier_Vaccination(t *testing.T) {
	classifier := newTestClassifier()

	intent, confidence := classifier.Classify("When should I get COVID vaccine?", "en")

	assert.Equal(t, models.IntentVaccination, intent)
	assert.Greater(t, confidence, 0.5)
}

func TestIntentClassifier_Emergency(t *testing.T) {
	classifier := newTestClassifier()

	intent, confidence := classifier.Classify("This is an emergency, I need help me now", "en")

	assert.Equal(t, models.IntentEmergency, intent)
	assert.GreaterOrEqual(t, confidence, 0.7)
}

func TestIntentClassifier_NoMatchIsGeneralAtZero(t *testing.T) {
	classifier := newTestClassifier()

	intent, confidence := classifier.Classify("xyzzy plugh", "en")

	assert.Equal(t, models.IntentGeneral, intent)
	assert.Equal(t, 0.0, confidence)
}

func TestIntentClassifier_EmptyText(t *testing.T) {
	classifier := newTestClassifier()

	intent, confidence := classifier.Classify("", "en")

	assert.Equal(t, models.IntentGeneral, intent)
	assert.Equal(t, 0.0, confidence)
}

func TestIntentClassifier_Deterministic(t *testing.T) {
	classifier := newTestClassifier()

	intent1, conf1 := classifier.Classify("I have fever and headache", "en")
	intent2, conf2 := classifier.Classify("I have fever and headache", "en")

	assert.Equal(t, intent1, intent2)
	assert.Equal(t, conf1, conf2)
}

func TestIntentClassifier_TieResolvesToEvaluationOrder(t *testing.T) {
	classifier := newTestClassifier()

	// Matches both the disease_info and vaccination patterns with the same
	// base confidence; disease_info is evaluated first and must win.
	intent, _ := classifier.Classify("vaccine disease", "en")

	assert.Equal(t, models.IntentDiseaseInfo, intent)
}

func TestIntentClassifier_UnsupportedLanguageFallsBackToEnglish(t *testing.T) {
	classifier := newTestClassifier()

	intent, confidence := classifier.Classify("I have fever and cough", "fr")

	assert.Equal(t, models.IntentSymptomQuery, intent)
	assert.Greater(t, confidence, 0.5)
}

func TestIntentClassifier_HindiPatterns(t *testing.T) {
	classifier := newTestClassifier()

	intent, confidence := classifier.Classify("मुझे बुखार और खांसी है", "hi")

	assert.Equal(t, models.IntentSymptomQuery, intent)
	assert.Greater(t, confidence, 0.5)
}

func TestIntentClassifier_KeywordBoostCapped(t *testing.T) {
	classifier := newTestClassifier()

	// Heavy keyword density must never push confidence past 1.0.
	_, confidence := classifier.Classify(
		"fever cough headache pain nausea vomiting diarrhea malaria dengue doctor hospital treatment", "en")

	assert.LessOrEqual(t, confidence, 1.0)
}
