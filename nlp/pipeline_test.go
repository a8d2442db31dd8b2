package nlp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"health-chatbot-backend/knowledge"
	"health-chatbot-backend/models"
)

// fakeTranslator records calls and applies a fixed mapping, standing in for
// the external translation service.
type fakeTranslator struct {
	detectLang       string
	detectConfidence float64
	mapping          map[string]string
	translated       []string
}

func (f *fakeTranslator) DetectLanguage(_ context.Context, _ string) (string, float64) {
	return f.detectLang, f.detectConfidence
}

func (f *fakeTranslator) Translate(_ context.Context, text, target, source string) string {
	f.translated = append(f.translated, text)
	if out, ok := f.mapping[text]; ok {
		return out
	}
	return text
}

func newTestPipeline(translator Translator) *Pipeline {
	return NewPipeline(knowledge.Default(), translator, zap.NewNop())
}

func TestPipeline_SymptomQueryEndToEnd(t *testing.T) {
	pipeline := newTestPipeline(&fakeTranslator{detectLang: "en", detectConfidence: 0.9})

	result := pipeline.ProcessQuery(context.Background(), models.Query{
		RawText:          "I have fever and cough",
		DeclaredLanguage: "en",
	})

	assert.Equal(t, models.IntentSymptomQuery, result.DetectedIntent)
	assert.Greater(t, result.Confidence, 0.5)
	assert.Equal(t, "en", result.DetectedLanguage)
	assert.Contains(t, result.ResponseText, "recommendations")
	assert.NotEmpty(t, result.Suggestions)
}

func TestPipeline_EmergencySymptomsAssessCritical(t *testing.T) {
	pipeline := newTestPipeline(&fakeTranslator{detectLang: "en", detectConfidence: 0.9})

	processed := pipeline.Analyze(context.Background(), models.Query{
		RawText:          "I have severe chest pain and difficulty breathing",
		DeclaredLanguage: "en",
	})

	require.Contains(t, processed.Entities.Symptoms, "severe chest pain")
	require.Contains(t, processed.Entities.Symptoms, "difficulty breathing")

	assessment := pipeline.Assess(processed.Entities.Symptoms)
	assert.Equal(t, models.SeverityCritical, assessment.Urgency)
	require.NotEmpty(t, assessment.NextSteps)
	assert.Contains(t, assessment.NextSteps[0], "108")
}

func TestPipeline_EmptyTextYieldsGeneralResponse(t *testing.T) {
	pipeline := newTestPipeline(&fakeTranslator{detectLang: "en", detectConfidence: 0.9})

	result := pipeline.ProcessQuery(context.Background(), models.Query{RawText: "   "})

	assert.Equal(t, models.IntentGeneral, result.DetectedIntent)
	assert.Equal(t, 0.0, result.Confidence)
	assert.NotEmpty(t, result.ResponseText)
}

func TestPipeline_DeclaredLanguageSkipsDetection(t *testing.T) {
	translator := &fakeTranslator{detectLang: "ta", detectConfidence: 0.9}
	pipeline := newTestPipeline(translator)

	processed := pipeline.Analyze(context.Background(), models.Query{
		RawText:          "I have fever",
		DeclaredLanguage: "hi",
	})

	assert.Equal(t, "hi", processed.DetectedLanguage)
	assert.Equal(t, 1.0, processed.LanguageConfidence)
}

func TestPipeline_UnsupportedDetectionFallsBackToDefault(t *testing.T) {
	translator := &fakeTranslator{detectLang: "xx", detectConfidence: 0.9}
	pipeline := newTestPipeline(translator)

	processed := pipeline.Analyze(context.Background(), models.Query{
		RawText:          "I have fever",
		DeclaredLanguage: "auto",
	})

	assert.Equal(t, "en", processed.DetectedLanguage)
	assert.Equal(t, 0.5, processed.LanguageConfidence)
}

func TestPipeline_TranslatesQueryInAndResponseOut(t *testing.T) {
	translator := &fakeTranslator{
		detectLang:       "hi",
		detectConfidence: 0.95,
		mapping: map[string]string{
			"मुझे बुखार है": "I have fever",
		},
	}
	pipeline := newTestPipeline(translator)

	result := pipeline.ProcessQuery(context.Background(), models.Query{
		RawText:          "मुझे बुखार है",
		DeclaredLanguage: "auto",
	})

	assert.Equal(t, models.IntentSymptomQuery, result.DetectedIntent)
	assert.Equal(t, "hi", result.DetectedLanguage)
	// One inbound translation plus one outbound for the response text.
	assert.Len(t, translator.translated, 2)
}

func TestPipeline_SuggestionsNotTranslated(t *testing.T) {
	translator := &fakeTranslator{
		detectLang:       "hi",
		detectConfidence: 0.95,
		mapping: map[string]string{
			"अपनी सुरक्षा कैसे करें": "how to protect yourself",
		},
	}
	pipeline := newTestPipeline(translator)

	englishResult := newTestPipeline(&fakeTranslator{detectLang: "en", detectConfidence: 0.9}).
		ProcessQuery(context.Background(), models.Query{RawText: "how to protect yourself", DeclaredLanguage: "en"})
	hindiResult := pipeline.
		ProcessQuery(context.Background(), models.Query{RawText: "अपनी सुरक्षा कैसे करें", DeclaredLanguage: "hi"})

	// Both resolve to the prevention intent; the reply text is translated
	// back but the suggestion list stays in the working language.
	assert.Equal(t, models.IntentPrevention, englishResult.DetectedIntent)
	assert.Equal(t, models.IntentPrevention, hindiResult.DetectedIntent)
	assert.Equal(t, englishResult.Suggestions, hindiResult.Suggestions)
}

func TestPipeline_WorkingLanguageSkipsTranslation(t *testing.T) {
	translator := &fakeTranslator{detectLang: "en", detectConfidence: 0.9}
	pipeline := newTestPipeline(translator)

	pipeline.ProcessQuery(context.Background(), models.Query{
		RawText:          "I have fever",
		DeclaredLanguage: "en",
	})

	assert.Empty(t, translator.translated)
}

func TestPipeline_SanitizesInput(t *testing.T) {
	pipeline := newTestPipeline(&fakeTranslator{detectLang: "en", detectConfidence: 0.9})

	processed := pipeline.Analyze(context.Background(), models.Query{
		RawText:          "  I   have <b>fever</b>  ",
		DeclaredLanguage: "en",
	})

	assert.Equal(t, "I have bfever/b", processed.NormalizedText)
	assert.Contains(t, processed.Entities.Symptoms, "fever")
}
