package dataset

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

type Category struct {
	Name     string
	Symptoms []string
}

type Entry struct {
	Symptom  string `json:"symptom"`
	Category string `json:"category"`
}

// Catalog is the browsable list of symptom labels grouped by body system.
// It is read-only after construction.
type Catalog struct {
	entries    []Entry
	categories []string
	folded     []string
}

// NewCatalog flattens categories in order. A symptom listed in several
// categories keeps the first one.
func NewCatalog(categories []Category) *Catalog {
	c := &Catalog{}
	seen := make(map[string]struct{})
	for _, cat := range categories {
		c.categories = append(c.categories, cat.Name)
		for _, s := range cat.Symptoms {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			c.entries = append(c.entries, Entry{Symptom: s, Category: cat.Name})
			c.folded = append(c.folded, fold(s))
		}
	}
	return c
}

func DefaultCatalog() *Catalog {
	return NewCatalog(defaultCategories)
}

func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

func (c *Catalog) Len() int { return len(c.entries) }

// Search returns entries whose label contains query, ignoring case and
// Unicode width differences. An empty category matches all categories.
func (c *Catalog) Search(query, category string) []Entry {
	q := fold(strings.TrimSpace(query))
	category = strings.TrimSpace(category)
	out := []Entry{}
	for i, e := range c.entries {
		if category != "" && !strings.EqualFold(e.Category, category) {
			continue
		}
		if q != "" && !strings.Contains(c.folded[i], q) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (c *Catalog) Lookup(symptom string) (Entry, bool) {
	for _, e := range c.entries {
		if e.Symptom == symptom {
			return e, true
		}
	}
	return Entry{}, false
}

// fold builds a search key only; model labels are always compared verbatim.
func fold(s string) string {
	return cases.Fold().String(norm.NFKC.String(s))
}

var defaultCategories = []Category{
	{
		Name:     "Respiratory",
		Symptoms: []string{
			"Fever", "Headache", "Cough", "Sore throat", "Runny nose", "Sneezing", "Chills", "Fatigue",
			"Shortness of breath", "Chest pain", "Wheezing", "Productive cough", "Dry cough",
			"Breathlessness", "Chest congestion", "Sputum production", "Night coughing", "Rapid breathing",
			"Chest tightness",
		},
	},
	{
		Name:     "Gastrointestinal",
		Symptoms: []string{
			"Nausea", "Vomiting", "Diarrhea", "Abdominal pain", "Bloating", "Constipation", "Gas",
			"Heartburn", "Loss of appetite", "Indigestion", "Belching", "Hiccups", "Stomach gurgling",
			"Bloating after meals", "Early satiety", "Rectal bleeding", "Anal pain", "Hemorrhoids",
			"Gas retention",
		},
	},
	{
		Name:     "Neurological",
		Symptoms: []string{
			"Dizziness", "Confusion", "Memory loss", "Seizures", "Tremors", "Muscle weakness",
			"Facial droop", "Slurred speech", "Loss of balance", "Difficulty walking", "Numbness",
			"Tingling", "Head pressure", "Lightheadedness", "Fainting", "Hallucinations", "Paranoia",
			"Flashbacks", "Difficulty concentrating",
		},
	},
	{
		Name:     "Musculoskeletal",
		Symptoms: []string{
			"Muscle pain", "Joint pain", "Back pain", "Neck pain", "Shoulder pain", "Elbow pain",
			"Wrist pain", "Hip pain", "Knee pain", "Ankle pain", "Foot pain", "Heel pain", "Leg cramps",
			"Back stiffness", "Joint locking", "Hip stiffness", "Shoulder stiffness", "Arm weakness",
			"Cracking joints", "General weakness", "Muscle stiffness", "Joint swelling", "Bone pain",
			"Muscle spasms",
		},
	},
	{
		Name:     "Dermatological",
		Symptoms: []string{
			"Rash", "Itching", "Dry skin", "Redness", "Swelling", "Bruising", "Skin peeling",
			"Skin discoloration", "Acne", "Warts", "Boils", "Blisters", "Cold sores", "Sun sensitivity",
			"Hair loss", "Brittle nails", "Hair thinning", "Brittle hair", "Scalp itching", "Flaky scalp",
			"Discolored nails", "Skin thickening", "Excessive sweating", "Dry patches", "Skin tags",
			"Moles changing", "Stretch marks",
		},
	},
	{
		Name:     "Eye",
		Symptoms: []string{
			"Blurred vision", "Double vision", "Eye pain", "Watery eyes", "Light sensitivity", "Dry eyes",
			"Discharge from eyes", "Puffy eyelids", "Burning eyes", "Eye redness", "Eye twitching",
			"Photophobia", "Floaters", "Tunnel vision", "Eye watering", "Night blindness",
			"Color blindness", "Eye strain", "Tearing", "Eyelid drooping",
		},
	},
	{
		Name:     "Ear",
		Symptoms: []string{
			"Hearing loss", "Ringing in ears", "Ear pain", "Ear discharge", "Ear fullness", "Vertigo",
			"Balance problems", "Ear itching", "Hearing sensitivity", "Ear pressure", "Earwax buildup",
		},
	},
	{
		Name:     "Cardiovascular",
		Symptoms: []string{
			"Palpitations", "Rapid heartbeat", "Slow heartbeat", "Chest fluttering", "Swelling in legs",
			"Cold hands", "Cold feet", "Cyanosis", "Irregular heartbeat", "Heart murmur", "Leg swelling",
			"Ankle swelling", "Cold sensation in limbs", "Poor circulation", "Blood clots",
		},
	},
	{
		Name:     "Genitourinary",
		Symptoms: []string{
			"Frequent urination", "Painful urination", "Blood in urine", "Incontinence", "Urinary urgency",
			"Bedwetting", "Kidney pain", "Bladder pain", "Burning urination", "Cloudy urine",
			"Strong urine odor", "Reduced urine output", "Nocturnal urination", "Urinary retention",
			"Pelvic pain",
		},
	},
	{
		Name:     "Reproductive",
		Symptoms: []string{
			"Irregular periods", "Heavy periods", "Missed periods", "Vaginal discharge", "Genital itching",
			"Erectile dysfunction", "Low libido", "Breast pain", "Breast lump", "Painful intercourse",
			"Testicular pain", "Ovarian pain", "Menstrual cramps", "Vaginal dryness", "Prostate problems",
		},
	},
	{
		Name:     "Psychological",
		Symptoms: []string{
			"Anxiety", "Depression", "Mood swings", "Irritability", "Restlessness", "Overthinking",
			"Suicidal thoughts", "Fear", "Guilt", "Shame", "Compulsive behaviors", "Tics",
			"Obsessive thoughts", "Uncontrollable crying", "Panic attacks", "Feeling of doom",
			"Social withdrawal", "Agitation", "Emotional numbness", "Hopelessness",
		},
	},
	{
		Name:     "Sleep-related",
		Symptoms: []string{
			"Sleep disturbances", "Insomnia", "Excessive sleepiness", "Snoring", "Nightmares",
			"Night sweats", "Sleep walking", "Sleep talking", "Restless legs", "Sleep apnea",
			"Daytime fatigue",
		},
	},
	{
		Name:     "Weight and metabolic",
		Symptoms: []string{
			"Weight loss", "Weight gain", "Excessive thirst", "Excessive hunger", "Hot flashes",
			"Chills without fever", "Heat intolerance", "Cold intolerance", "Metabolic slowdown",
			"Appetite changes", "Sugar cravings", "Salt cravings",
		},
	},
	{
		Name:     "Oral and throat",
		Symptoms: []string{
			"Hoarseness", "Difficulty swallowing", "Dry mouth", "Metallic taste", "Sore tongue",
			"Mouth ulcers", "Bad breath", "Bleeding gums", "Jaw pain", "Tooth pain", "Gum recession",
			"Dry throat", "Frequent clearing throat", "Voice changes", "Trouble speaking", "Clenched jaw",
			"Tongue swelling", "Throat tightness",
		},
	},
	{
		Name:     "Lymphatic and immune",
		Symptoms: []string{
			"Enlarged lymph nodes", "Easy bruising", "Excessive bleeding", "Delayed healing",
			"Frequent infections", "Chronic fatigue", "Autoimmune reactions", "Allergic reactions",
			"Hypersensitivity",
		},
	},
	{
		Name:     "Miscellaneous",
		Symptoms: []string{
			"Nosebleeds", "Loss of smell", "Loss of taste", "Yawning", "Sensitivity to smells",
			"Yellow eyes", "Yellow skin", "Dark urine", "Light-colored stools", "Finger twitching",
			"Hand numbness", "Finger stiffness", "Numb toes", "Clumsiness", "Persistent hiccups",
			"Chronic pain", "Phantom pain", "Burning sensation", "Pins and needles",
			"Electric shock sensations",
		},
	},
}
