package knowledge

import (
	"fmt"
	"regexp"

	"health-chatbot-backend/models"
)

// Tables is the static knowledge the NLP core runs on: intent patterns and
// domain keywords per language, entity vocabularies, urgency phrase tiers,
// the condition table, the vaccination schedule, and disease descriptions.
// Tables are configuration data, loaded once at startup and never mutated;
// every component receives them injected so languages and thresholds can be
// tuned without code changes.
type Tables struct {
	Languages       map[string]string                        `yaml:"languages"`
	DefaultLanguage string                                   `yaml:"default_language"`
	WorkingLanguage string                                   `yaml:"working_language"`
	IntentPatterns  map[string]map[models.IntentKind][]string `yaml:"intent_patterns"`
	HealthKeywords  map[string][]string                      `yaml:"health_keywords"`
	Vocabulary      Vocabulary                               `yaml:"vocabulary"`
	Urgency         UrgencyPhrases                           `yaml:"urgency"`
	Conditions      []Condition                              `yaml:"conditions"`
	Vaccines        []Vaccine                                `yaml:"vaccines"`
	DiseaseInfo     map[string]string                        `yaml:"disease_info"`
	EmergencyNumber string                                   `yaml:"emergency_number"`
}

// Vocabulary holds the controlled terms for entity extraction, one list per
// entity category.
type Vocabulary struct {
	Symptoms    []string `yaml:"symptoms"`
	Diseases    []string `yaml:"diseases"`
	BodyParts   []string `yaml:"body_parts"`
	Medications []string `yaml:"medications"`
}

// UrgencyPhrases holds the tiered phrase lists for urgency assessment.
// Emergency phrases take absolute precedence; the High list is kept distinct
// from it so an emergency phrase can never score as merely high.
type UrgencyPhrases struct {
	Emergency []string `yaml:"emergency"`
	High      []string `yaml:"high"`
	Moderate  []string `yaml:"moderate"`
}

// Condition is one row of the condition table: a named condition with its
// canonical symptom set and the minimum overlap needed to suggest it.
type Condition struct {
	Name        string               `yaml:"name"`
	Description string               `yaml:"description"`
	Symptoms    []string             `yaml:"symptoms"`
	Prevention  string               `yaml:"prevention"`
	Treatment   string               `yaml:"treatment"`
	Severity    models.SeverityLevel `yaml:"severity"`
	MinMatch    int                  `yaml:"min_match"`
}

// Vaccine is one row of the vaccination schedule table.
type Vaccine struct {
	Name         string `yaml:"name"`
	AgeGroup     string `yaml:"age_group"`
	Schedule     string `yaml:"schedule"`
	DosesRequired int   `yaml:"doses_required"`
	IntervalDays int    `yaml:"interval_days"`
}

// IntentOrder is the fixed evaluation order for intent classification.
// Ties in confidence resolve to the earliest intent in this order.
var IntentOrder = []models.IntentKind{
	models.IntentSymptomQuery,
	models.IntentDiseaseInfo,
	models.IntentVaccination,
	models.IntentPrevention,
	models.IntentEmergency,
}

// IsSupported reports whether lang is a configured language code.
func (t *Tables) IsSupported(lang string) bool {
	_, ok := t.Languages[lang]
	return ok
}

// PatternsFor returns the intent pattern set for lang, falling back to the
// working language for unsupported languages.
func (t *Tables) PatternsFor(lang string) map[models.IntentKind][]string {
	if p, ok := t.IntentPatterns[lang]; ok {
		return p
	}
	return t.IntentPatterns[t.WorkingLanguage]
}

// KeywordsFor returns the domain keyword list for lang, falling back to the
// working language for unsupported languages.
func (t *Tables) KeywordsFor(lang string) []string {
	if kw, ok := t.HealthKeywords[lang]; ok {
		return kw
	}
	return t.HealthKeywords[t.WorkingLanguage]
}

// Validate checks the structural invariants of the tables. A failure here is
// a fatal configuration error at startup; per-query processing never
// validates tables.
func (t *Tables) Validate() error {
	if len(t.Languages) == 0 {
		return fmt.Errorf("no languages configured")
	}
	if !t.IsSupported(t.DefaultLanguage) {
		return fmt.Errorf("default language %q is not in the language table", t.DefaultLanguage)
	}
	if !t.IsSupported(t.WorkingLanguage) {
		return fmt.Errorf("working language %q is not in the language table", t.WorkingLanguage)
	}
	if _, ok := t.IntentPatterns[t.WorkingLanguage]; !ok {
		return fmt.Errorf("no intent patterns for working language %q", t.WorkingLanguage)
	}
	if _, ok := t.HealthKeywords[t.WorkingLanguage]; !ok {
		return fmt.Errorf("no health keywords for working language %q", t.WorkingLanguage)
	}
	for lang, intents := range t.IntentPatterns {
		for intent, patterns := range intents {
			for _, p := range patterns {
				if _, err := regexp.Compile(p); err != nil {
					return fmt.Errorf("invalid pattern for %s/%s: %w", lang, intent, err)
				}
			}
		}
	}
	if len(t.Urgency.Emergency) == 0 {
		return fmt.Errorf("emergency phrase list is empty")
	}
	emergency := make(map[string]bool, len(t.Urgency.Emergency))
	for _, p := range t.Urgency.Emergency {
		emergency[p] = true
	}
	for _, p := range t.Urgency.High {
		if emergency[p] {
			return fmt.Errorf("phrase %q appears in both emergency and high urgency tiers", p)
		}
	}
	for i, c := range t.Conditions {
		if c.Name == "" {
			return fmt.Errorf("condition %d has no name", i)
		}
		if len(c.Symptoms) == 0 {
			return fmt.Errorf("condition %q has no canonical symptoms", c.Name)
		}
		if c.MinMatch < 1 || c.MinMatch > len(c.Symptoms) {
			return fmt.Errorf("condition %q has invalid min_match %d", c.Name, c.MinMatch)
		}
		if c.Severity.Rank() < 0 {
			return fmt.Errorf("condition %q has unknown severity %q", c.Name, c.Severity)
		}
	}
	return nil
}

// CompilePatterns compiles the per-language intent patterns, preserving the
// declaration order of each pattern list. Tables must have been validated.
func (t *Tables) CompilePatterns() map[string]map[models.IntentKind][]*regexp.Regexp {
	compiled := make(map[string]map[models.IntentKind][]*regexp.Regexp, len(t.IntentPatterns))
	for lang, intents := range t.IntentPatterns {
		compiled[lang] = make(map[models.IntentKind][]*regexp.Regexp, len(intents))
		for intent, patterns := range intents {
			res := make([]*regexp.Regexp, 0, len(patterns))
			for _, p := range patterns {
				res = append(res, regexp.MustCompile(p))
			}
			compiled[lang][intent] = res
		}
	}
	return compiled
}
