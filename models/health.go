package models

// IntentKind is the coarse-grained purpose category assigned to a user message.
type IntentKind string

const (
	IntentSymptomQuery IntentKind = "symptom_query"
	IntentDiseaseInfo  IntentKind = "disease_info"
	IntentVaccination  IntentKind = "vaccination"
	IntentPrevention   IntentKind = "prevention"
	IntentEmergency    IntentKind = "emergency"
	IntentGeneral      IntentKind = "general"
)

// AllIntents lists every intent the classifier can produce.
func AllIntents() []IntentKind {
	return []IntentKind{
		IntentSymptomQuery,
		IntentDiseaseInfo,
		IntentVaccination,
		IntentPrevention,
		IntentEmergency,
		IntentGeneral,
	}
}

// SeverityLevel is an ordered classification of how quickly a user should
// seek care. The order LOW < MODERATE < HIGH < CRITICAL is total.
type SeverityLevel string

const (
	SeverityLow      SeverityLevel = "low"
	SeverityModerate SeverityLevel = "moderate"
	SeverityHigh     SeverityLevel = "high"
	SeverityCritical SeverityLevel = "critical"
)

var severityRank = map[SeverityLevel]int{
	SeverityLow:      0,
	SeverityModerate: 1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

// Rank returns the position of the level in the severity order.
// Unknown values rank below SeverityLow.
func (s SeverityLevel) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return -1
}

// AtLeast reports whether s is equal to or more severe than other.
func (s SeverityLevel) AtLeast(other SeverityLevel) bool {
	return s.Rank() >= other.Rank()
}

// EntityBag holds the medical entities recognized inside a single message.
// Values are deduplicated lowercase terms from the controlled vocabularies;
// empty slices are valid.
type EntityBag struct {
	Symptoms    []string `json:"symptoms"`
	Diseases    []string `json:"diseases"`
	BodyParts   []string `json:"body_parts"`
	Medications []string `json:"medications"`
}

// IsEmpty reports whether no entities were detected in any category.
func (e EntityBag) IsEmpty() bool {
	return len(e.Symptoms) == 0 && len(e.Diseases) == 0 &&
		len(e.BodyParts) == 0 && len(e.Medications) == 0
}

// ProcessedQuery is the pipeline working object for one query. It is created
// fresh per query and never persisted by the core.
type ProcessedQuery struct {
	OriginalText       string     `json:"original_text"`
	NormalizedText     string     `json:"normalized_text"`
	DetectedLanguage   string     `json:"detected_language"`
	LanguageConfidence float64    `json:"language_confidence"`
	Intent             IntentKind `json:"intent"`
	IntentConfidence   float64    `json:"intent_confidence"`
	Entities           EntityBag  `json:"entities"`
}

// ConditionMatch is a candidate health-topic suggestion derived from symptom
// overlap. It is not a diagnosis and is always paired with a disclaimer.
type ConditionMatch struct {
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	SymptomOverlap int           `json:"symptom_overlap"`
	Prevention     string        `json:"prevention"`
	Treatment      string        `json:"treatment"`
	SeverityLevel  SeverityLevel `json:"severity_level"`
}

// Assessment is the result of a symptom assessment. Once built it is never
// modified; a CRITICAL urgency is never downgraded by later stages.
type Assessment struct {
	PossibleConditions []ConditionMatch `json:"possible_conditions"`
	Urgency            SeverityLevel    `json:"urgency_level"`
	Recommendations    []string         `json:"recommendations"`
	NextSteps          []string         `json:"next_steps"`
	Disclaimer         string           `json:"disclaimer"`
}

// AssessmentRequest is the input to the symptom assessment endpoint.
type AssessmentRequest struct {
	Symptoms []string `json:"symptoms" binding:"required"`
	Age      int      `json:"age,omitempty"`
	Gender   string   `json:"gender,omitempty"`
}
