package catalog

import "symptomcheck/internal/models"

var defaultCommonSymptoms = []string{
	"headache", "fever", "cough", "fatigue", "stomach pain",
	"sore throat", "nausea", "dizziness", "chest pain", "back pain",
}

var defaultEntries = []Entry{
	{
		Keyword: "headache",
		Ailments: []models.Ailment{
			{
				ID:              "1",
				Name:            "Tension Headache",
				Severity:        models.SeverityLow,
				Description:     "Most common type of headache caused by muscle tension and stress.",
				CommonSymptoms:  []string{"Dull, aching pain", "Pressure around forehead", "Tenderness in scalp and neck"},
				Treatments:      []string{"Over-the-counter pain relievers", "Rest in a quiet, dark room", "Apply cold or warm compress", "Stay hydrated"},
				WhenToSeeDoctor: "If headaches occur more than 15 days per month or don't improve with treatment",
			},
			{
				ID:              "2",
				Name:            "Migraine",
				Severity:        models.SeverityMedium,
				Description:     "A neurological condition that can cause intense throbbing pain, usually on one side.",
				CommonSymptoms:  []string{"Throbbing pain", "Sensitivity to light and sound", "Nausea", "Visual disturbances"},
				Treatments:      []string{"Prescription medications", "Rest in dark room", "Cold compress", "Caffeine in small amounts"},
				WhenToSeeDoctor: "If migraines are severe, frequent, or accompanied by fever, stiff neck, or confusion",
			},
		},
	},
	{
		Keyword: "fever",
		Ailments: []models.Ailment{
			{
				ID:              "3",
				Name:            "Common Cold",
				Severity:        models.SeverityLow,
				Description:     "Viral infection of the upper respiratory tract.",
				CommonSymptoms:  []string{"Low-grade fever", "Runny nose", "Sore throat", "Cough"},
				Treatments:      []string{"Rest", "Fluids", "Over-the-counter cold medicines", "Honey for cough"},
				WhenToSeeDoctor: "If fever exceeds 103°F (39.4°C) or lasts more than 3 days",
			},
			{
				ID:              "4",
				Name:            "Influenza (Flu)",
				Severity:        models.SeverityMedium,
				Description:     "Contagious respiratory illness caused by influenza viruses.",
				CommonSymptoms:  []string{"High fever", "Body aches", "Fatigue", "Chills", "Headache"},
				Treatments:      []string{"Antiviral medications (if caught early)", "Rest", "Fluids", "Pain relievers"},
				WhenToSeeDoctor: "If you have difficulty breathing, chest pain, or persistent vomiting",
			},
		},
	},
	{
		Keyword: "stomach pain",
		Ailments: []models.Ailment{
			{
				ID:              "5",
				Name:            "Indigestion",
				Severity:        models.SeverityLow,
				Description:     "Discomfort in the upper abdomen, often after eating.",
				CommonSymptoms:  []string{"Bloating", "Nausea", "Burning sensation", "Feeling full quickly"},
				Treatments:      []string{"Antacids", "Avoid trigger foods", "Eat slowly", "Reduce stress"},
				WhenToSeeDoctor: "If symptoms persist for more than 2 weeks or are accompanied by weight loss",
			},
			{
				ID:              "6",
				Name:            "Gastritis",
				Severity:        models.SeverityMedium,
				Description:     "Inflammation of the stomach lining.",
				CommonSymptoms:  []string{"Burning stomach pain", "Nausea", "Vomiting", "Loss of appetite"},
				Treatments:      []string{"Acid-reducing medications", "Antibiotics if H. pylori", "Dietary changes"},
				WhenToSeeDoctor: "If you have bloody vomit or stool, or severe abdominal pain",
			},
		},
	},
	{
		Keyword: "fatigue",
		Ailments: []models.Ailment{
			{
				ID:              "7",
				Name:            "Sleep Deprivation",
				Severity:        models.SeverityLow,
				Description:     "Not getting enough quality sleep over time.",
				CommonSymptoms:  []string{"Tiredness", "Difficulty concentrating", "Mood changes", "Reduced immunity"},
				Treatments:      []string{"Improve sleep hygiene", "Regular sleep schedule", "Limit screen time", "Exercise"},
				WhenToSeeDoctor: "If fatigue persists despite adequate sleep or interferes with daily life",
			},
			{
				ID:              "8",
				Name:            "Iron Deficiency Anemia",
				Severity:        models.SeverityMedium,
				Description:     "A condition where blood lacks adequate healthy red blood cells.",
				CommonSymptoms:  []string{"Extreme fatigue", "Pale skin", "Shortness of breath", "Dizziness"},
				Treatments:      []string{"Iron supplements", "Iron-rich diet", "Treat underlying cause"},
				WhenToSeeDoctor: "If you experience persistent fatigue, weakness, or pale skin",
			},
		},
	},
	{
		Keyword: "cough",
		Ailments: []models.Ailment{
			{
				ID:              "9",
				Name:            "Acute Bronchitis",
				Severity:        models.SeverityLow,
				Description:     "Inflammation of the bronchial tubes, usually from a viral infection.",
				CommonSymptoms:  []string{"Persistent cough", "Mucus production", "Chest discomfort", "Mild fever"},
				Treatments:      []string{"Rest", "Fluids", "Honey", "Humidifier", "OTC cough medicine"},
				WhenToSeeDoctor: "If cough lasts more than 3 weeks or produces blood",
			},
		},
	},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultEntries, defaultCommonSymptoms)
	if err != nil {
		panic("catalog: invalid built-in data: " + err.Error())
	}
	return c
}
