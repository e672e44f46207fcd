package diagnosis

// AdvisoryTable maps condition names to advisory entries. A lookup miss
// resolves to the table's fallback entry.
type AdvisoryTable struct {
	entries  map[string]Advisory
	fallback Advisory
}

func NewAdvisoryTable(entries map[string]Advisory, fallback Advisory) AdvisoryTable {
	copied := make(map[string]Advisory, len(entries))
	for k, v := range entries {
		copied[k] = cloneAdvisory(v)
	}
	return AdvisoryTable{entries: copied, fallback: cloneAdvisory(fallback)}
}

// Lookup reports the entry for condition and whether the table has one.
func (t AdvisoryTable) Lookup(condition string) (Advisory, bool) {
	a, ok := t.entries[condition]
	if !ok {
		return Advisory{}, false
	}
	return cloneAdvisory(a), true
}

// Resolve returns the entry for condition, or the fallback entry.
func (t AdvisoryTable) Resolve(condition string) Advisory {
	if a, ok := t.Lookup(condition); ok {
		return a
	}
	return cloneAdvisory(t.fallback)
}

func (t AdvisoryTable) Fallback() Advisory {
	return cloneAdvisory(t.fallback)
}

func cloneAdvisory(a Advisory) Advisory {
	a.Medicines = append([]string(nil), a.Medicines...)
	if a.Prevention != nil {
		a.Prevention = append([]string(nil), a.Prevention...)
	}
	return a
}

// GeneralPractitionerReferral is the entry used for conditions without a
// dedicated advisory.
var GeneralPractitionerReferral = Advisory{
	Specialist: Specialist{Type: "General Practitioner", Description: "A primary care physician for comprehensive health assessment and proper diagnosis."},
	Medicines:  []string{"Symptomatic treatment as appropriate", "Rest and monitoring", "Healthy lifestyle measures", "Follow-up consultation recommended"},
	Info:       "This condition requires professional medical evaluation for proper diagnosis and treatment. Symptoms can be associated with multiple conditions.",
	Prevention: []string{"Maintain healthy lifestyle", "Regular medical check-ups", "Follow medical advice", "Monitor symptoms", "Practice good hygiene", "Stay informed about health conditions"},
}

func DefaultAdvisories() AdvisoryTable {
	return NewAdvisoryTable(defaultAdvisoryEntries(), GeneralPractitionerReferral)
}

func defaultAdvisoryEntries() map[string]Advisory {
	return map[string]Advisory{
		"Common Cold": {
			Specialist: Specialist{Type: "General Practitioner", Description: "A primary care physician who can diagnose and treat common illnesses like colds and flu."},
			Medicines:  []string{"Paracetamol 500mg", "Vitamin C 1000mg", "Decongestant nasal spray", "Rest and increased fluid intake"},
			Info:       "The common cold is a viral infection of the upper respiratory tract. It's highly contagious and typically lasts 7-10 days. Most adults get 2-3 colds per year.",
			Prevention: []string{"Wash hands frequently", "Avoid close contact with sick people", "Don't touch face with unwashed hands", "Get adequate sleep", "Maintain good nutrition"},
		},
		"Influenza": {
			Specialist: Specialist{Type: "General Practitioner", Description: "A primary care physician for flu diagnosis and antiviral treatment."},
			Medicines:  []string{"Oseltamivir (Tamiflu) 75mg", "Paracetamol 500mg", "Ibuprofen 400mg", "Complete bed rest"},
			Info:       "Influenza is a viral infection that attacks the respiratory system. It's more severe than a common cold and can lead to serious complications, especially in high-risk groups.",
			Prevention: []string{"Annual flu vaccination", "Frequent handwashing", "Avoid crowded places during flu season", "Cover coughs and sneezes", "Stay home when sick"},
		},
		"Migraine": {
			Specialist: Specialist{Type: "Neurologist", Description: "A specialist in nervous system disorders including chronic headaches and migraines."},
			Medicines:  []string{"Sumatriptan 50mg", "Ibuprofen 600mg", "Ergotamine tartrate", "Dark room rest therapy"},
			Info:       "Migraines are severe, recurring headaches often accompanied by nausea, vomiting, and sensitivity to light and sound. They can last from hours to days and significantly impact quality of life.",
			Prevention: []string{"Identify and avoid triggers", "Maintain regular sleep schedule", "Stay hydrated", "Manage stress", "Regular exercise", "Limit caffeine and alcohol"},
		},
		"Hypertension": {
			Specialist: Specialist{Type: "Cardiologist", Description: "A heart specialist who treats blood pressure and cardiovascular conditions."},
			Medicines:  []string{"ACE inhibitors (Lisinopril)", "Beta blockers (Metoprolol)", "Hydrochlorothiazide", "Lifestyle modifications"},
			Info:       "Hypertension (high blood pressure) is often called the 'silent killer' because it usually has no symptoms but can lead to heart disease, stroke, and kidney problems if untreated.",
			Prevention: []string{"Maintain healthy weight", "Regular physical activity", "Limit sodium intake", "Limit alcohol consumption", "Don't smoke", "Manage stress", "Regular blood pressure monitoring"},
		},
		"Diabetes Type 2": {
			Specialist: Specialist{Type: "Endocrinologist", Description: "A specialist in hormonal disorders and metabolic conditions including diabetes."},
			Medicines:  []string{"Metformin 500mg", "Insulin therapy", "Glipizide 5mg", "Strict diet management"},
			Info:       "Type 2 diabetes occurs when the body becomes resistant to insulin or doesn't produce enough insulin. It's a chronic condition that affects how the body processes blood sugar (glucose).",
			Prevention: []string{"Maintain healthy weight", "Regular physical activity", "Healthy diet low in refined sugars", "Regular health screenings", "Don't smoke", "Limit alcohol", "Manage stress levels"},
		},
		"Asthma": {
			Specialist: Specialist{Type: "Pulmonologist", Description: "A lung specialist who treats chronic respiratory conditions."},
			Medicines:  []string{"Inhaled corticosteroids", "Short-acting bronchodilators", "Albuterol inhaler", "Long-term controller medications"},
			Info:       "Asthma is a chronic respiratory condition where airways become inflamed, narrow, and produce extra mucus, making breathing difficult. It affects people of all ages and can be life-threatening if severe.",
			Prevention: []string{"Identify and avoid triggers", "Take controller medications as prescribed", "Monitor air quality", "Get vaccinated against flu and pneumonia", "Maintain healthy weight", "Regular exercise as tolerated"},
		},
		"Gastritis": {
			Specialist: Specialist{Type: "Gastroenterologist", Description: "A specialist in digestive system disorders and stomach conditions."},
			Medicines:  []string{"Proton pump inhibitors (Omeprazole)", "Antacids (Mylanta)", "H2 receptor blockers", "Dietary modifications"},
			Info:       "Gastritis is inflammation of the stomach lining that can be acute or chronic. It's often caused by H. pylori bacteria, certain medications, or excessive alcohol consumption.",
			Prevention: []string{"Avoid excessive alcohol", "Don't overuse NSAIDs", "Manage stress", "Eat regular meals", "Avoid spicy and acidic foods", "Don't smoke", "Practice good hygiene"},
		},
		"Anxiety Disorder": {
			Specialist: Specialist{Type: "Psychiatrist", Description: "A mental health specialist who treats anxiety disorders and mood conditions."},
			Medicines:  []string{"SSRIs (Sertraline)", "Short-term Benzodiazepines", "Cognitive behavioral therapy", "Mindfulness techniques"},
			Info:       "Anxiety disorders involve excessive fear, worry, and related behavioral disturbances. They're among the most common mental health conditions and can significantly impact daily functioning.",
			Prevention: []string{"Regular exercise", "Adequate sleep", "Stress management techniques", "Limit caffeine and alcohol", "Social support", "Mindfulness practice", "Professional counseling when needed"},
		},
		"Pneumonia": {
			Specialist: Specialist{Type: "Pulmonologist", Description: "A lung specialist for serious respiratory infections requiring specialized care."},
			Medicines:  []string{"Broad-spectrum antibiotics", "Cough suppressants", "Pain relief medication", "Oxygen therapy if needed"},
			Info:       "Pneumonia is an infection that inflames air sacs in one or both lungs, which may fill with fluid. It can be life-threatening, especially for infants, elderly, and those with compromised immune systems.",
			Prevention: []string{"Get vaccinated (pneumococcal and flu)", "Wash hands frequently", "Don't smoke", "Maintain good health", "Avoid close contact with sick people", "Cover coughs and sneezes"},
		},
		"Urinary Tract Infection": {
			Specialist: Specialist{Type: "Urologist", Description: "A specialist in urinary system disorders and infections."},
			Medicines:  []string{"Nitrofurantoin 100mg", "Cranberry extract supplements", "Ibuprofen for pain", "Increased water intake"},
			Info:       "UTIs occur when bacteria enter the urinary tract through the urethra and multiply in the bladder. Women are at higher risk due to their shorter urethra. Most UTIs are easily treatable with antibiotics.",
			Prevention: []string{"Drink plenty of water", "Urinate after sexual activity", "Wipe from front to back", "Avoid holding urine", "Wear breathable underwear", "Avoid harsh feminine products", "Take showers instead of baths"},
		},
		"Heart Disease": {
			Specialist: Specialist{Type: "Cardiologist", Description: "A cardiac specialist for comprehensive heart health evaluation."},
			Medicines:  []string{"Beta blockers", "ACE inhibitors", "Statins", "Antiplatelet therapy"},
			Info:       "Heart disease refers to several types of heart conditions, including coronary artery disease, heart rhythm problems, and heart defects. It's the leading cause of death globally.",
			Prevention: []string{"Healthy diet low in saturated fat", "Regular exercise", "Don't smoke", "Limit alcohol", "Maintain healthy weight", "Manage stress", "Control blood pressure and cholesterol", "Regular check-ups"},
		},
		"Stroke": {
			Specialist: Specialist{Type: "Neurologist", Description: "Emergency neurological specialist for immediate stroke assessment."},
			Medicines:  []string{"Thrombolytics (if acute)", "Anticoagulants", "Rehabilitation therapy", "Emergency care required"},
			Info:       "A stroke occurs when blood supply to part of the brain is interrupted or reduced, preventing brain tissue from getting oxygen and nutrients. Brain cells begin to die in minutes. IMMEDIATE MEDICAL ATTENTION IS CRITICAL.",
			Prevention: []string{"Control blood pressure", "Don't smoke", "Manage diabetes", "Lower cholesterol", "Maintain healthy weight", "Exercise regularly", "Limit alcohol", "Prevent atrial fibrillation"},
		},
		"Meningitis": {
			Specialist: Specialist{Type: "Emergency Medicine", Description: "Immediate emergency care for suspected meningitis - this is a medical emergency."},
			Medicines:  []string{"IV antibiotics", "Corticosteroids", "Emergency hospitalization", "Immediate medical attention"},
			Info:       "Meningitis is inflammation of the protective membranes covering the brain and spinal cord. It can be life-threatening and requires IMMEDIATE EMERGENCY MEDICAL TREATMENT. Time is critical.",
			Prevention: []string{"Get vaccinated (meningococcal, pneumococcal, Hib)", "Avoid close contact with infected individuals", "Practice good hygiene", "Don't share personal items", "Boost immune system", "Avoid crowded places during outbreaks"},
		},
	}
}
