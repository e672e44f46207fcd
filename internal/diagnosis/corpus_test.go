package diagnosis

// referenceCorpus mirrors the built-in corpus shipped by the dataset package.
func referenceCorpus() []TrainingExample {
	return []TrainingExample{
		{Symptoms: []string{"Fever", "Headache", "Cough", "Sore throat", "Runny nose", "Sneezing", "Fatigue"}, Condition: "Common Cold", ReferenceConfidence: 85},
		{Symptoms: []string{"Runny nose", "Sneezing", "Sore throat", "Cough", "Headache"}, Condition: "Common Cold", ReferenceConfidence: 80},
		{Symptoms: []string{"Fever", "Chills", "Muscle pain", "Sore throat", "Runny nose"}, Condition: "Common Cold", ReferenceConfidence: 75},
		{Symptoms: []string{"Fever", "Chills", "Muscle pain", "Fatigue", "Headache", "Dry cough"}, Condition: "Influenza", ReferenceConfidence: 90},
		{Symptoms: []string{"High fever", "Body aches", "Fatigue", "Headache", "Dry cough", "Sore throat"}, Condition: "Influenza", ReferenceConfidence: 88},
		{Symptoms: []string{"Fever", "Muscle pain", "Joint pain", "Headache", "Cough", "Weakness"}, Condition: "Influenza", ReferenceConfidence: 85},
		{Symptoms: []string{"Severe headache", "Light sensitivity", "Nausea", "Vomiting"}, Condition: "Migraine", ReferenceConfidence: 92},
		{Symptoms: []string{"Headache", "Blurred vision", "Light sensitivity", "Nausea"}, Condition: "Migraine", ReferenceConfidence: 88},
		{Symptoms: []string{"Throbbing headache", "Sensitivity to sounds", "Nausea", "Dizziness"}, Condition: "Migraine", ReferenceConfidence: 85},
		{Symptoms: []string{"Headache", "Dizziness", "Shortness of breath", "Chest pain"}, Condition: "Hypertension", ReferenceConfidence: 80},
		{Symptoms: []string{"Fatigue", "Confusion", "Vision problems", "Chest pain"}, Condition: "Hypertension", ReferenceConfidence: 75},
		{Symptoms: []string{"Nosebleeds", "Headache", "Difficulty breathing"}, Condition: "Hypertension", ReferenceConfidence: 70},
		{Symptoms: []string{"Excessive thirst", "Frequent urination", "Excessive hunger", "Weight loss"}, Condition: "Diabetes Type 2", ReferenceConfidence: 95},
		{Symptoms: []string{"Fatigue", "Blurred vision", "Slow healing", "Frequent infections"}, Condition: "Diabetes Type 2", ReferenceConfidence: 88},
		{Symptoms: []string{"Excessive thirst", "Frequent urination", "Fatigue", "Numbness in hands"}, Condition: "Diabetes Type 2", ReferenceConfidence: 90},
		{Symptoms: []string{"Shortness of breath", "Wheezing", "Chest tightness", "Cough"}, Condition: "Asthma", ReferenceConfidence: 92},
		{Symptoms: []string{"Difficulty breathing", "Wheezing", "Chest pain", "Cough at night"}, Condition: "Asthma", ReferenceConfidence: 90},
		{Symptoms: []string{"Breathlessness", "Chest congestion", "Cough", "Fatigue"}, Condition: "Asthma", ReferenceConfidence: 85},
		{Symptoms: []string{"Abdominal pain", "Nausea", "Vomiting", "Bloating", "Loss of appetite"}, Condition: "Gastritis", ReferenceConfidence: 88},
		{Symptoms: []string{"Stomach pain", "Heartburn", "Nausea", "Indigestion"}, Condition: "Gastritis", ReferenceConfidence: 85},
		{Symptoms: []string{"Upper abdominal pain", "Bloating", "Belching", "Nausea"}, Condition: "Gastritis", ReferenceConfidence: 82},
		{Symptoms: []string{"Anxiety", "Rapid heartbeat", "Sweating", "Tremors", "Difficulty concentrating"}, Condition: "Anxiety Disorder", ReferenceConfidence: 90},
		{Symptoms: []string{"Panic attacks", "Fear", "Restlessness", "Sleep disturbances"}, Condition: "Anxiety Disorder", ReferenceConfidence: 88},
		{Symptoms: []string{"Worry", "Muscle tension", "Fatigue", "Irritability"}, Condition: "Anxiety Disorder", ReferenceConfidence: 85},
		{Symptoms: []string{"Fever", "Cough", "Shortness of breath", "Chest pain", "Fatigue"}, Condition: "Pneumonia", ReferenceConfidence: 92},
		{Symptoms: []string{"Productive cough", "Fever", "Chills", "Chest pain", "Difficulty breathing"}, Condition: "Pneumonia", ReferenceConfidence: 90},
		{Symptoms: []string{"High fever", "Wet cough", "Chest congestion", "Rapid breathing"}, Condition: "Pneumonia", ReferenceConfidence: 88},
		{Symptoms: []string{"Painful urination", "Frequent urination", "Burning sensation", "Cloudy urine"}, Condition: "Urinary Tract Infection", ReferenceConfidence: 92},
		{Symptoms: []string{"Urinary urgency", "Pelvic pain", "Blood in urine", "Strong urine odor"}, Condition: "Urinary Tract Infection", ReferenceConfidence: 90},
		{Symptoms: []string{"Burning urination", "Frequent urination", "Lower abdominal pain"}, Condition: "Urinary Tract Infection", ReferenceConfidence: 88},
		{Symptoms: []string{"Muscle pain", "Joint pain", "Fatigue", "Low-grade fever"}, Condition: "Viral Infection", ReferenceConfidence: 78},
		{Symptoms: []string{"Skin rash", "Itching", "Redness", "Swelling"}, Condition: "Allergic Reaction", ReferenceConfidence: 85},
		{Symptoms: []string{"Back pain", "Muscle stiffness", "Limited mobility"}, Condition: "Muscle Strain", ReferenceConfidence: 80},
		{Symptoms: []string{"Dizziness", "Nausea", "Balance problems", "Hearing changes"}, Condition: "Inner Ear Infection", ReferenceConfidence: 82},
		{Symptoms: []string{"Dry skin", "Hair loss", "Fatigue", "Weight gain"}, Condition: "Hypothyroidism", ReferenceConfidence: 85},
		{Symptoms: []string{"Rapid heartbeat", "Weight loss", "Anxiety", "Heat intolerance"}, Condition: "Hyperthyroidism", ReferenceConfidence: 88},
		{Symptoms: []string{"Joint pain", "Morning stiffness", "Swelling", "Limited range of motion"}, Condition: "Arthritis", ReferenceConfidence: 85},
		{Symptoms: []string{"Abdominal pain", "Diarrhea", "Weight loss", "Fatigue"}, Condition: "Inflammatory Bowel Disease", ReferenceConfidence: 80},
		{Symptoms: []string{"Chest pain", "Shortness of breath", "Palpitations", "Sweating"}, Condition: "Heart Disease", ReferenceConfidence: 88},
		{Symptoms: []string{"Memory loss", "Confusion", "Difficulty concentrating", "Mood changes"}, Condition: "Dementia", ReferenceConfidence: 82},
		{Symptoms: []string{"Severe headache", "Fever", "Neck stiffness", "Light sensitivity"}, Condition: "Meningitis", ReferenceConfidence: 95},
		{Symptoms: []string{"Sudden severe headache", "Vision changes", "Speech problems"}, Condition: "Stroke", ReferenceConfidence: 92},
		{Symptoms: []string{"Persistent cough", "Weight loss", "Night sweats", "Fatigue"}, Condition: "Tuberculosis", ReferenceConfidence: 88},
		{Symptoms: []string{"Yellow skin", "Yellow eyes", "Dark urine", "Fatigue"}, Condition: "Hepatitis", ReferenceConfidence: 90},
		{Symptoms: []string{"Excessive bleeding", "Easy bruising", "Fatigue", "Pale skin"}, Condition: "Anemia", ReferenceConfidence: 85},
		{Symptoms: []string{"Chronic fatigue", "Muscle pain", "Sleep disturbances", "Memory problems"}, Condition: "Fibromyalgia", ReferenceConfidence: 80},
		{Symptoms: []string{"Mood swings", "Depression", "Fatigue", "Sleep changes"}, Condition: "Bipolar Disorder", ReferenceConfidence: 82},
		{Symptoms: []string{"Persistent sadness", "Loss of interest", "Fatigue", "Sleep problems"}, Condition: "Major Depression", ReferenceConfidence: 85},
		{Symptoms: []string{"Chronic pain", "Stiffness", "Fatigue", "Sleep problems"}, Condition: "Chronic Pain Syndrome", ReferenceConfidence: 78},
		{Symptoms: []string{"Frequent infections", "Fatigue", "Enlarged lymph nodes", "Weight loss"}, Condition: "Immunodeficiency", ReferenceConfidence: 80},
	}
}
