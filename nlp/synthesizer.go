package nlp

import (
	"fmt"
	"strings"

	"health-chatbot-backend/knowledge"
	"health-chatbot-backend/models"
)

const lowConfidenceSuffix = "\n\nIf I didn't understand your question correctly, please rephrase it or choose from the suggestions below."

// confidence below this threshold appends the rephrasing disclaimer
const lowConfidenceThreshold = 0.6

// ResponseSynthesizer turns (intent, entities, confidence) into a reply and a
// list of follow-up suggestions, pulling from the knowledge tables and the
// symptom assessor.
type ResponseSynthesizer struct {
	tables   *knowledge.Tables
	assessor *Assessor
}

func NewResponseSynthesizer(tables *knowledge.Tables, assessor *Assessor) *ResponseSynthesizer {
	return &ResponseSynthesizer{tables: tables, assessor: assessor}
}

// Synthesize composes the working-language response. Exactly one branch
// applies per intent; the emergency branch is independent of any urgency
// computation.
func (s *ResponseSynthesizer) Synthesize(intent models.IntentKind, entities models.EntityBag, confidence float64) (string, []string) {
	var response string
	var suggestions []string

	switch {
	case intent == models.IntentEmergency:
		response = fmt.Sprintf(
			"If this is a medical emergency, please call emergency services immediately at %s. "+
				"For urgent but non-emergency situations, contact your healthcare provider or visit the nearest hospital.",
			s.tables.EmergencyNumber,
		)
		suggestions = []string{
			"Emergency contact numbers",
			"Nearest hospital locations",
			"First aid information",
		}

	case intent == models.IntentSymptomQuery && len(entities.Symptoms) > 0:
		assessment := s.assessor.Assess(entities.Symptoms)
		recommendations := assessment.Recommendations
		if len(recommendations) > 2 {
			recommendations = recommendations[:2]
		}
		response = fmt.Sprintf(
			"Based on the symptoms you mentioned, here are some recommendations: %s",
			strings.Join(recommendations, ", "),
		)
		suggestions = []string{
			"Tell me more about your symptoms",
			"When did these symptoms start?",
			"Get vaccination information",
		}

	case intent == models.IntentSymptomQuery:
		response = "I understand you're asking about symptoms. Can you tell me more specifically what symptoms you're experiencing?"
		suggestions = []string{
			"I have fever and cough",
			"I have headache and nausea",
			"I'm feeling dizzy and weak",
		}

	case intent == models.IntentDiseaseInfo && len(entities.Diseases) > 0:
		disease := entities.Diseases[0]
		if description, ok := s.tables.DiseaseInfo[disease]; ok {
			response = fmt.Sprintf("Here is what I know about %s: %s.", disease, description)
		} else {
			response = fmt.Sprintf("I can provide information about %s. This is a condition that requires proper medical attention.", disease)
		}
		suggestions = []string{
			fmt.Sprintf("How to prevent %s", disease),
			fmt.Sprintf("Treatment options for %s", disease),
			"Find nearby healthcare facilities",
		}

	case intent == models.IntentDiseaseInfo:
		response = "I can help you learn about various health conditions. Which disease or condition would you like to know about?"
		suggestions = []string{
			"Tell me about COVID-19",
			"What is malaria?",
			"Information about diabetes",
		}

	case intent == models.IntentVaccination:
		names := make([]string, 0, 3)
		for _, v := range s.tables.Vaccines {
			if len(names) == 3 {
				break
			}
			names = append(names, v.Name)
		}
		if len(names) > 0 {
			response = fmt.Sprintf(
				"Here are some important vaccinations: %s. Would you like specific information about any of these?",
				strings.Join(names, ", "),
			)
		} else {
			response = "Vaccination is crucial for preventing diseases. I can help you with vaccination schedules and information."
		}
		suggestions = []string{
			"COVID-19 vaccination schedule",
			"Childhood vaccination schedule",
			"Where to get vaccinated",
		}

	case intent == models.IntentPrevention:
		response = "Prevention is the best medicine! Here are general preventive measures: maintain good hygiene, eat healthy food, exercise regularly, and get regular check-ups."
		suggestions = []string{
			"How to prevent infectious diseases",
			"Healthy lifestyle tips",
			"Vaccination information",
		}

	default:
		response = "I'm your AI health assistant. I can help you with symptoms, disease information, vaccination schedules, and health advice. What would you like to know?"
		suggestions = []string{
			"I have symptoms to report",
			"Tell me about a disease",
			"Vaccination information",
			"Health prevention tips",
		}
	}

	if confidence < lowConfidenceThreshold {
		response += lowConfidenceSuffix
	}

	return response, suggestions
}
