package nlp

import (
	"fmt"

	"health-chatbot-backend/knowledge"
	"health-chatbot-backend/models"
)

const (
	assessmentDisclaimer = "This assessment is for informational purposes only and does not replace professional medical advice."
	emergencyDisclaimer  = "This is an emergency situation. Seek immediate medical care."
)

// Assessor composes urgency assessment and condition matching into a full
// symptom assessment.
type Assessor struct {
	urgency         *UrgencyAssessor
	matcher         *ConditionMatcher
	emergencyNumber string
}

func NewAssessor(tables *knowledge.Tables) *Assessor {
	return &Assessor{
		urgency:         NewUrgencyAssessor(tables.Urgency),
		matcher:         NewConditionMatcher(tables.Conditions),
		emergencyNumber: tables.EmergencyNumber,
	}
}

// Assess builds the assessment for a symptom set. When an emergency phrase is
// present the urgency is CRITICAL, condition matching is skipped entirely and
// the fixed emergency template is used; a CRITICAL result is never downgraded
// by anything that follows.
func (a *Assessor) Assess(symptoms []string) models.Assessment {
	urgency := a.urgency.Assess(symptoms)

	if urgency == models.SeverityCritical {
		return models.Assessment{
			PossibleConditions: []models.ConditionMatch{},
			Urgency:            models.SeverityCritical,
			Recommendations: []string{
				"Seek immediate medical attention",
				"Call emergency services if necessary",
				"Do not delay medical care",
			},
			NextSteps: []string{
				fmt.Sprintf("Contact emergency services: %s", a.emergencyNumber),
				"Go to nearest hospital emergency room",
				"Have someone accompany you if possible",
			},
			Disclaimer: emergencyDisclaimer,
		}
	}

	return models.Assessment{
		PossibleConditions: a.matcher.Match(symptoms),
		Urgency:            urgency,
		Recommendations:    a.recommendations(urgency),
		NextSteps:          a.nextSteps(urgency),
		Disclaimer:         assessmentDisclaimer,
	}
}

func (a *Assessor) recommendations(urgency models.SeverityLevel) []string {
	switch urgency {
	case models.SeverityHigh:
		return []string{
			"Seek medical attention promptly",
			"Monitor symptoms closely",
			"Have someone stay with you if possible",
			"Keep emergency contacts readily available",
		}
	case models.SeverityModerate:
		return []string{
			"Monitor your symptoms closely",
			"Stay hydrated and get adequate rest",
			"Maintain good hygiene practices",
			"Consider consulting a healthcare provider",
			"Isolate if symptoms suggest infectious illness",
		}
	default:
		return []string{
			"Monitor your symptoms closely",
			"Stay hydrated and get adequate rest",
			"Maintain good hygiene practices",
			"Seek medical care if symptoms worsen or persist",
		}
	}
}

func (a *Assessor) nextSteps(urgency models.SeverityLevel) []string {
	switch urgency {
	case models.SeverityHigh:
		return []string{
			"Contact your healthcare provider within 24 hours",
			"Go to urgent care or hospital if provider unavailable",
			"Keep monitoring symptoms",
		}
	case models.SeverityModerate:
		return []string{
			"Schedule appointment with healthcare provider",
			"Continue monitoring symptoms",
			"Call provider if symptoms worsen",
		}
	default:
		return []string{
			"Continue home care",
			"Monitor symptoms for 2-3 days",
			"Consult healthcare provider if no improvement",
		}
	}
}
