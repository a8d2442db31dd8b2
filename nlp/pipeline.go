package nlp

import (
	"context"

	"go.uber.org/zap"

	"health-chatbot-backend/knowledge"
	"health-chatbot-backend/models"
	"health-chatbot-backend/utils"
)

// Translator is the external translation capability the pipeline depends on.
// Implementations must degrade gracefully instead of failing: Translate
// returns the input text unchanged when translation is unavailable, and
// DetectLanguage falls back to the default language at low confidence.
type Translator interface {
	DetectLanguage(ctx context.Context, text string) (lang string, confidence float64)
	Translate(ctx context.Context, text, target, source string) string
}

// Pipeline orchestrates query understanding and response generation:
// normalize, resolve language, translate to the working language, classify
// intent, extract entities, synthesize, translate back. All components are
// stateless, so a single Pipeline is safe for concurrent use.
type Pipeline struct {
	tables      *knowledge.Tables
	classifier  *IntentClassifier
	extractor   *EntityExtractor
	assessor    *Assessor
	synthesizer *ResponseSynthesizer
	translator  Translator
	logger      *zap.Logger
}

func NewPipeline(tables *knowledge.Tables, translator Translator, logger *zap.Logger) *Pipeline {
	assessor := NewAssessor(tables)
	return &Pipeline{
		tables:      tables,
		classifier:  NewIntentClassifier(tables),
		extractor:   NewEntityExtractor(tables.Vocabulary),
		assessor:    assessor,
		synthesizer: NewResponseSynthesizer(tables, assessor),
		translator:  translator,
		logger:      logger,
	}
}

// ProcessQuery runs the full pipeline for one query. It never returns an
// error: data-quality problems (empty text, unknown language, failed
// translation) all degrade to well-defined fallbacks, so the worst case is
// the generic capability response at zero confidence.
func (p *Pipeline) ProcessQuery(ctx context.Context, query models.Query) *models.QueryResult {
	processed := p.Analyze(ctx, query)

	responseText, suggestions := p.synthesizer.Synthesize(
		processed.Intent, processed.Entities, processed.IntentConfidence)

	// The composed response is translated back to the user's language.
	// Suggestions stay in the working language.
	if processed.DetectedLanguage != p.tables.WorkingLanguage {
		responseText = p.translator.Translate(ctx, responseText, processed.DetectedLanguage, p.tables.WorkingLanguage)
	}

	p.logger.Debug("query processed",
		zap.String("intent", string(processed.Intent)),
		zap.Float64("confidence", processed.IntentConfidence),
		zap.String("language", processed.DetectedLanguage),
		zap.Int("symptoms", len(processed.Entities.Symptoms)))

	return &models.QueryResult{
		ResponseText:     responseText,
		Suggestions:      suggestions,
		DetectedIntent:   processed.Intent,
		Confidence:       processed.IntentConfidence,
		DetectedLanguage: processed.DetectedLanguage,
	}
}

// Analyze performs the understanding half of the pipeline and returns the
// per-query working object.
func (p *Pipeline) Analyze(ctx context.Context, query models.Query) models.ProcessedQuery {
	text := utils.SanitizeMessage(query.RawText)

	lang, langConfidence := p.resolveLanguage(ctx, text, query.DeclaredLanguage)

	// Intent patterns and keywords are per language, so classification runs
	// on the original text. Entity vocabularies exist only in the working
	// language, so extraction runs on the best-effort translation; on failure
	// the translator returns the original text and extraction proceeds
	// degraded but never blocked.
	intent, intentConfidence := p.classifier.Classify(text, lang)

	working := text
	if text != "" && lang != p.tables.WorkingLanguage {
		working = p.translator.Translate(ctx, text, p.tables.WorkingLanguage, lang)
	}

	entities := p.extractor.Extract(working)

	return models.ProcessedQuery{
		OriginalText:       query.RawText,
		NormalizedText:     working,
		DetectedLanguage:   lang,
		LanguageConfidence: langConfidence,
		Intent:             intent,
		IntentConfidence:   intentConfidence,
		Entities:           entities,
	}
}

// Assess exposes symptom assessment for direct callers such as the
// assessment endpoint.
func (p *Pipeline) Assess(symptoms []string) models.Assessment {
	return p.assessor.Assess(symptoms)
}

func (p *Pipeline) resolveLanguage(ctx context.Context, text, declared string) (string, float64) {
	if declared != "" && declared != "auto" {
		return declared, 1.0
	}

	if text == "" {
		return p.tables.DefaultLanguage, 0.5
	}

	lang, confidence := p.translator.DetectLanguage(ctx, text)
	if !p.tables.IsSupported(lang) {
		return p.tables.DefaultLanguage, 0.5
	}
	return lang, confidence
}
