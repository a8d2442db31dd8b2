package knowledge

import "health-chatbot-backend/models"

// Default returns the built-in knowledge tables. English is the working
// language; Hindi and Tamil carry their own pattern and keyword sets, the
// remaining languages fall back to English tables while still being valid
// reply languages through translation.
func Default() *Tables {
	return &Tables{
		Languages: map[string]string{
			"en": "English",
			"hi": "हिन्दी (Hindi)",
			"ta": "தமிழ் (Tamil)",
			"te": "తెలుగు (Telugu)",
			"bn": "বাংলা (Bengali)",
			"gu": "ગુજરાતી (Gujarati)",
			"mr": "मराठी (Marathi)",
			"ml": "മലയാളം (Malayalam)",
			"kn": "ಕನ್ನಡ (Kannada)",
			"pa": "ਪੰਜਾਬੀ (Punjabi)",
		},
		DefaultLanguage: "en",
		WorkingLanguage: "en",

		IntentPatterns: map[string]map[models.IntentKind][]string{
			"en": {
				models.IntentSymptomQuery: {
					`(?i)(symptoms?|signs?|feeling|pain|hurt|ache|fever|cough|cold)`,
				},
				models.IntentDiseaseInfo: {
					`(?i)(what is|tell me about|information about|disease|illness|condition)`,
				},
				models.IntentVaccination: {
					`(?i)(vaccin|immuni|shot|inject|dose schedule)`,
				},
				models.IntentPrevention: {
					`(?i)(prevent|avoid|protect|precaution|safety)`,
				},
				models.IntentEmergency: {
					`(?i)(emergency|urgent|critical|help me|serious)`,
				},
			},
			"hi": {
				models.IntentSymptomQuery: {
					`(बुखार|खांसी|दर्द|बीमारी|लक्षण)`,
				},
				models.IntentDiseaseInfo: {
					`(क्या है|बारे में|बीमारी के बारे में)`,
				},
				models.IntentVaccination: {
					`(टीका|वैक्सीन|इंजेक्शन)`,
				},
				models.IntentPrevention: {
					`(बचाव|सुरक्षा|बचना)`,
				},
				models.IntentEmergency: {
					`(आपातकाल|गंभीर|मदद|तुरंत)`,
				},
			},
			"ta": {
				models.IntentSymptomQuery: {
					`(காய்ச்சல்|இருமல்|வலி|அறிகுறி)`,
				},
				models.IntentDiseaseInfo: {
					`(என்ன|பற்றி|நோய்)`,
				},
				models.IntentVaccination: {
					`(தடுப்பூசி|ஊசி)`,
				},
				models.IntentPrevention: {
					`(தடுப்பு|பாதுகாப்பு)`,
				},
				models.IntentEmergency: {
					`(அவசரம்|கடுமையான|உதவி)`,
				},
			},
		},

		HealthKeywords: map[string][]string{
			"en": {
				"fever", "cough", "headache", "pain", "nausea", "vomiting", "diarrhea",
				"diabetes", "hypertension", "covid", "malaria", "dengue", "tuberculosis",
				"vaccination", "medicine", "doctor", "hospital", "treatment",
			},
			"hi": {
				"बुखार", "खांसी", "सिरदर्द", "दर्द", "उल्टी", "दस्त",
				"मधुमेह", "उच्च रक्तचाप", "कोविड", "मलेरिया", "डेंगू", "तपेदिक",
				"टीकाकरण", "दवा", "डॉक्टर", "अस्पताल", "इलाज",
			},
			"ta": {
				"காய்ச்சல்", "இருமல்", "தலைவலி", "வலி", "வாந்தி", "வயிற்றுப்போக்கு",
				"நீரிழிவு", "உயர் இரத்த அழுத்தம்", "கோவிட்", "மலேரியா", "டெங்கு",
				"தடுப்பூசி", "மருந்து", "மருத்துவர்", "மருத்துவமனை", "சிகிச்சை",
			},
		},

		Vocabulary: Vocabulary{
			// Emergency phrases are part of the symptom vocabulary so that a
			// message like "severe chest pain" carries the full phrase into
			// urgency assessment, not just "chest pain".
			Symptoms: []string{
				"fever", "mild fever", "cough", "headache", "pain", "nausea",
				"vomiting", "diarrhea", "fatigue", "weakness", "dizziness",
				"chills", "sweating", "runny nose", "sneezing", "sore throat",
				"rash", "chest pain", "shortness of breath",
				"loss of taste", "loss of smell",
				"severe chest pain", "difficulty breathing", "loss of consciousness",
				"severe bleeding", "severe allergic reaction",
			},
			Diseases: []string{
				"covid", "covid-19", "coronavirus", "flu", "influenza",
				"common cold", "malaria", "dengue", "tuberculosis", "diabetes",
				"hypertension", "pneumonia", "bronchitis", "asthma",
			},
			BodyParts: []string{
				"head", "chest", "stomach", "abdomen", "throat", "nose",
				"ear", "eye", "back", "leg", "arm", "hand", "foot", "skin",
			},
			Medications: []string{
				"paracetamol", "ibuprofen", "aspirin", "antibiotics",
				"antihistamine", "ors", "insulin",
			},
		},

		Urgency: UrgencyPhrases{
			Emergency: []string{
				"severe chest pain", "difficulty breathing", "loss of consciousness",
				"severe bleeding", "severe allergic reaction", "stroke symptoms",
				"heart attack symptoms", "severe burns", "poisoning",
			},
			High: []string{
				"severe fever", "severe headache", "severe abdominal pain",
				"persistent vomiting", "high fever",
			},
			Moderate: []string{
				"fever", "persistent cough", "vomiting", "nausea", "dizziness",
			},
		},

		Conditions: []Condition{
			{
				Name:        "Common Cold",
				Description: "A viral infection of the upper respiratory tract",
				Symptoms:    []string{"runny nose", "cough", "sneezing", "sore throat", "mild fever"},
				Prevention:  "Wash hands frequently, avoid close contact with sick people",
				Treatment:   "Rest, fluids, over-the-counter medications for symptom relief",
				Severity:    models.SeverityLow,
				MinMatch:    2,
			},
			{
				Name:        "COVID-19",
				Description: "Infectious disease caused by the SARS-CoV-2 virus",
				Symptoms:    []string{"fever", "cough", "fatigue", "loss of taste", "loss of smell", "difficulty breathing"},
				Prevention:  "Vaccination, mask wearing, social distancing, hand hygiene",
				Treatment:   "Supportive care, antiviral medications in severe cases",
				Severity:    models.SeverityModerate,
				MinMatch:    2,
			},
			{
				Name:        "Malaria",
				Description: "Mosquito-borne infectious disease",
				Symptoms:    []string{"fever", "chills", "sweating", "headache", "nausea", "vomiting"},
				Prevention:  "Use mosquito nets, antimalarial medications, eliminate standing water",
				Treatment:   "Antimalarial medications as prescribed by healthcare provider",
				Severity:    models.SeverityHigh,
				MinMatch:    3,
			},
		},

		Vaccines: []Vaccine{
			{
				Name:          "COVID-19 Vaccine",
				AgeGroup:      "18+ years",
				Schedule:      "Two doses, 4-12 weeks apart, with boosters as recommended",
				DosesRequired: 2,
				IntervalDays:  28,
			},
			{
				Name:          "Influenza Vaccine",
				AgeGroup:      "6+ months",
				Schedule:      "Annual vaccination",
				DosesRequired: 1,
				IntervalDays:  365,
			},
			{
				Name:          "Hepatitis B",
				AgeGroup:      "Infants",
				Schedule:      "Birth, 1-2 months, 6-18 months",
				DosesRequired: 3,
				IntervalDays:  30,
			},
		},

		DiseaseInfo: map[string]string{
			"covid":        "Infectious disease caused by the SARS-CoV-2 virus, spread mainly through respiratory droplets",
			"covid-19":     "Infectious disease caused by the SARS-CoV-2 virus, spread mainly through respiratory droplets",
			"coronavirus":  "Infectious disease caused by the SARS-CoV-2 virus, spread mainly through respiratory droplets",
			"common cold":  "A viral infection of the upper respiratory tract, usually mild and self-limiting",
			"flu":          "A contagious respiratory illness caused by influenza viruses",
			"influenza":    "A contagious respiratory illness caused by influenza viruses",
			"malaria":      "A mosquito-borne infectious disease causing fever, chills and flu-like illness",
			"dengue":       "A mosquito-borne viral infection causing high fever, severe headache and joint pain",
			"tuberculosis": "A bacterial infection that mainly affects the lungs and spreads through the air",
			"diabetes":     "A chronic condition affecting how the body turns food into energy",
			"hypertension": "Persistently high blood pressure that increases the risk of heart disease and stroke",
			"pneumonia":    "An infection that inflames the air sacs in one or both lungs",
			"bronchitis":   "Inflammation of the lining of the bronchial tubes that carry air to the lungs",
			"asthma":       "A chronic condition in which airways narrow, swell and produce extra mucus",
		},

		EmergencyNumber: "108",
	}
}
