// internal/matching/reference.go
package matching

import "strings"

// Range is a personality ideal range on the 0-100 scale.
type Range struct {
	Low  float64
	High float64
}

// ReferenceProfile is the idealized target profile a career or program is
// matched against. Interest weights are on the 0-1 scale, aptitude
// requirements and personality ranges on 0-100.
type ReferenceProfile struct {
	InterestWeights      map[string]float64
	PersonalityRanges    map[string]Range
	AptitudeRequirements map[string]float64
}

// ProgramReference extends the career-style profile with the grade gate.
type ProgramReference struct {
	ReferenceProfile
	MinimumGrade     float64
	RequiredSubjects []string
}

const defaultMinimumGrade = 6.0

// referenceBucket binds a keyword set to fixed profile constants. Buckets
// are evaluated in declaration order and the first substring match wins, so
// more specific keywords must come before broader ones.
type referenceBucket struct {
	name     string
	keywords []string
	profile  ReferenceProfile
}

var careerBuckets = []referenceBucket{
	{
		name:     "technology",
		keywords: []string{"software", "developer", "programmer", "engineer", "it ", "informat", "data", "computer", "tech"},
		profile: ReferenceProfile{
			InterestWeights: map[string]float64{
				"investigative": 0.9, "realistic": 0.6, "conventional": 0.5,
			},
			PersonalityRanges: map[string]Range{
				"openness":          {Low: 55, High: 100},
				"conscientiousness": {Low: 50, High: 95},
			},
			AptitudeRequirements: map[string]float64{
				"logical": 75, "numerical": 65,
			},
		},
	},
	{
		name:     "health",
		keywords: []string{"doctor", "medic", "nurse", "pharma", "dentist", "veterinar", "health", "therapist"},
		profile: ReferenceProfile{
			InterestWeights: map[string]float64{
				"investigative": 0.8, "social": 0.8, "realistic": 0.4,
			},
			PersonalityRanges: map[string]Range{
				"conscientiousness": {Low: 65, High: 100},
				"agreeableness":     {Low: 55, High: 100},
				"stability":         {Low: 55, High: 100},
			},
			AptitudeRequirements: map[string]float64{
				"verbal": 65, "logical": 70,
			},
		},
	},
	{
		name:     "law",
		keywords: []string{"lawyer", "attorney", "legal", "judge", "notary", "law"},
		profile: ReferenceProfile{
			InterestWeights: map[string]float64{
				"enterprising": 0.8, "investigative": 0.7, "conventional": 0.5,
			},
			PersonalityRanges: map[string]Range{
				"conscientiousness": {Low: 60, High: 100},
				"extraversion":      {Low: 45, High: 90},
			},
			AptitudeRequirements: map[string]float64{
				"verbal": 80, "logical": 70,
			},
		},
	},
	{
		name:     "education",
		keywords: []string{"teacher", "educat", "tutor", "professor", "pedagog", "kindergarten"},
		profile: ReferenceProfile{
			InterestWeights: map[string]float64{
				"social": 0.9, "artistic": 0.4, "investigative": 0.4,
			},
			PersonalityRanges: map[string]Range{
				"extraversion":  {Low: 50, High: 100},
				"agreeableness": {Low: 60, High: 100},
				"stability":     {Low: 50, High: 100},
			},
			AptitudeRequirements: map[string]float64{
				"verbal": 70,
			},
		},
	},
	{
		name:     "business",
		keywords: []string{"manager", "business", "finance", "account", "economist", "marketing", "sales", "entrepreneur", "banker"},
		profile: ReferenceProfile{
			InterestWeights: map[string]float64{
				"enterprising": 0.9, "conventional": 0.6, "social": 0.4,
			},
			PersonalityRanges: map[string]Range{
				"extraversion":      {Low: 55, High: 100},
				"conscientiousness": {Low: 50, High: 95},
			},
			AptitudeRequirements: map[string]float64{
				"numerical": 65, "verbal": 60,
			},
		},
	},
	{
		name:     "arts",
		keywords: []string{"artist", "design", "music", "actor", "writer", "photograph", "architect", "creative", "media", "film"},
		profile: ReferenceProfile{
			InterestWeights: map[string]float64{
				"artistic": 1.0, "realistic": 0.3, "enterprising": 0.3,
			},
			PersonalityRanges: map[string]Range{
				"openness": {Low: 65, High: 100},
			},
			AptitudeRequirements: map[string]float64{
				"creative": 75, "spatial": 60,
			},
		},
	},
	{
		name:     "science",
		keywords: []string{"scientist", "research", "biolog", "chemist", "physic", "mathematic", "laborator", "astronom"},
		profile: ReferenceProfile{
			InterestWeights: map[string]float64{
				"investigative": 1.0, "realistic": 0.4,
			},
			PersonalityRanges: map[string]Range{
				"openness":          {Low: 60, High: 100},
				"conscientiousness": {Low: 55, High: 100},
			},
			AptitudeRequirements: map[string]float64{
				"logical": 80, "numerical": 75,
			},
		},
	},
	{
		name:     "social",
		keywords: []string{"psycholog", "social", "counsel", "hr ", "human resource", "sociolog", "community"},
		profile: ReferenceProfile{
			InterestWeights: map[string]float64{
				"social": 1.0, "investigative": 0.5,
			},
			PersonalityRanges: map[string]Range{
				"agreeableness": {Low: 60, High: 100},
				"extraversion":  {Low: 45, High: 95},
			},
			AptitudeRequirements: map[string]float64{
				"verbal": 70,
			},
		},
	},
	{
		name:     "trades",
		keywords: []string{"electrician", "plumber", "mechanic", "carpenter", "construction", "technician", "welder", "driver"},
		profile: ReferenceProfile{
			InterestWeights: map[string]float64{
				"realistic": 1.0, "conventional": 0.4,
			},
			PersonalityRanges: map[string]Range{
				"conscientiousness": {Low: 50, High: 100},
			},
			AptitudeRequirements: map[string]float64{
				"spatial": 65, "logical": 55,
			},
		},
	},
	{
		name:     "hospitality",
		keywords: []string{"chef", "cook", "hotel", "tourism", "hospitality", "restaurant", "waiter", "travel"},
		profile: ReferenceProfile{
			InterestWeights: map[string]float64{
				"social": 0.7, "enterprising": 0.6, "realistic": 0.5,
			},
			PersonalityRanges: map[string]Range{
				"extraversion":  {Low: 55, High: 100},
				"agreeableness": {Low: 50, High: 100},
			},
			AptitudeRequirements: map[string]float64{
				"verbal": 55,
			},
		},
	},
}

// programBucket binds program keywords to a reference profile plus the
// grade gate used by the eligibility classifier.
type programBucket struct {
	name     string
	keywords []string
	profile  ProgramReference
}

var programBuckets = []programBucket{
	{
		name:     "computer-science",
		keywords: []string{"computer science", "informatics", "software", "information technology", "computer engineering", "data science"},
		profile: ProgramReference{
			ReferenceProfile: careerBuckets[0].profile,
			MinimumGrade:     7.5,
			RequiredSubjects: []string{"mathematics", "informatics"},
		},
	},
	{
		name:     "medicine",
		keywords: []string{"medicine", "medical", "dentistry", "pharmacy", "nursing", "veterinary"},
		profile: ProgramReference{
			ReferenceProfile: careerBuckets[1].profile,
			MinimumGrade:     8.5,
			RequiredSubjects: []string{"biology", "chemistry"},
		},
	},
	{
		name:     "law",
		keywords: []string{"law", "legal studies", "jurisprudence"},
		profile: ProgramReference{
			ReferenceProfile: careerBuckets[2].profile,
			MinimumGrade:     8.0,
			RequiredSubjects: []string{"history", "literature"},
		},
	},
	{
		name:     "education",
		keywords: []string{"education", "pedagogy", "teaching", "teacher training"},
		profile: ProgramReference{
			ReferenceProfile: careerBuckets[3].profile,
			MinimumGrade:     6.5,
			RequiredSubjects: []string{"literature"},
		},
	},
	{
		name:     "business",
		keywords: []string{"business", "economics", "finance", "management", "accounting", "marketing"},
		profile: ProgramReference{
			ReferenceProfile: careerBuckets[4].profile,
			MinimumGrade:     7.0,
			RequiredSubjects: []string{"mathematics"},
		},
	},
	{
		name:     "arts",
		keywords: []string{"art", "design", "architecture", "music", "theatre", "film", "media"},
		profile: ProgramReference{
			ReferenceProfile: careerBuckets[5].profile,
			MinimumGrade:     6.5,
			RequiredSubjects: nil,
		},
	},
	{
		name:     "science",
		keywords: []string{"physics", "chemistry", "biology", "mathematics", "natural science"},
		profile: ProgramReference{
			ReferenceProfile: careerBuckets[6].profile,
			MinimumGrade:     7.5,
			RequiredSubjects: []string{"mathematics"},
		},
	},
	{
		name:     "engineering",
		keywords: []string{"engineering", "mechanical", "electrical", "civil engineering", "mechatronic"},
		profile: ProgramReference{
			ReferenceProfile: ReferenceProfile{
				InterestWeights: map[string]float64{
					"realistic": 0.9, "investigative": 0.8, "conventional": 0.4,
				},
				PersonalityRanges: map[string]Range{
					"conscientiousness": {Low: 55, High: 100},
				},
				AptitudeRequirements: map[string]float64{
					"numerical": 75, "spatial": 70, "logical": 70,
				},
			},
			MinimumGrade:     7.0,
			RequiredSubjects: []string{"mathematics", "physics"},
		},
	},
	{
		name:     "social-science",
		keywords: []string{"psychology", "sociology", "social work", "communication", "international relations"},
		profile: ProgramReference{
			ReferenceProfile: careerBuckets[7].profile,
			MinimumGrade:     7.0,
			RequiredSubjects: nil,
		},
	},
	{
		name:     "hospitality",
		keywords: []string{"tourism", "hospitality", "catering", "gastronomy"},
		profile: ProgramReference{
			ReferenceProfile: careerBuckets[9].profile,
			MinimumGrade:     6.0,
			RequiredSubjects: nil,
		},
	},
}

// defaultReference is the flat profile returned when no bucket matches:
// every dimension at the midpoint so unknown entries rank on real signal
// only.
func defaultReference() ReferenceProfile {
	return ReferenceProfile{
		InterestWeights: map[string]float64{
			"realistic": 0.5, "investigative": 0.5, "artistic": 0.5,
			"social": 0.5, "enterprising": 0.5, "conventional": 0.5,
		},
		PersonalityRanges: map[string]Range{},
		AptitudeRequirements: map[string]float64{
			"verbal": 50, "numerical": 50, "logical": 50,
		},
	}
}

// LookupCareerProfile resolves a career name and category to its reference
// profile. Deterministic and side-effect free: lowercased substring match
// against the ordered bucket table, first match wins.
func LookupCareerProfile(name, category string) ReferenceProfile {
	haystack := strings.ToLower(name + " " + category)
	for _, bucket := range careerBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(haystack, kw) {
				return bucket.profile
			}
		}
	}
	return defaultReference()
}

// LookupProgramProfile resolves a program name and faculty to its reference
// profile and grade gate. No bucket match yields the flat default profile
// with the 6.0 minimum grade.
func LookupProgramProfile(name, faculty string) ProgramReference {
	haystack := strings.ToLower(name + " " + faculty)
	for _, bucket := range programBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(haystack, kw) {
				return bucket.profile
			}
		}
	}
	return ProgramReference{
		ReferenceProfile: defaultReference(),
		MinimumGrade:     defaultMinimumGrade,
	}
}

// careerBucketName exposes the matched bucket name for fixture tests.
func careerBucketName(name, category string) string {
	haystack := strings.ToLower(name + " " + category)
	for _, bucket := range careerBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(haystack, kw) {
				return bucket.name
			}
		}
	}
	return "default"
}

// programBucketName exposes the matched program bucket name for fixture tests.
func programBucketName(name, faculty string) string {
	haystack := strings.ToLower(name + " " + faculty)
	for _, bucket := range programBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(haystack, kw) {
				return bucket.name
			}
		}
	}
	return "default"
}
