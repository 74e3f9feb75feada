// internal/matching/options.go
package matching

// Mode selects which signals a program match uses.
type Mode string

const (
	ModeGrades Mode = "grades"
	ModeTests  Mode = "tests"
	ModeBoth   Mode = "both"
)

// Options carries the hand-authored weights and thresholds of the engine.
// All values are configuration, not learned parameters; hosts load them
// from config and pass them into each call.
type Options struct {
	// Career scoring weights, re-normalized over present sub-scores.
	InterestWeight    float64
	AptitudeWeight    float64
	PersonalityWeight float64

	// Program scoring weights plus the field-match bonus.
	AcademicWeight  float64
	ExamBoardWeight float64
	TestWeight      float64
	FieldBonus      float64

	// Filtering and truncation. MaxResults caps the career list;
	// ProgramMaxResults caps the program list and is zero by default,
	// meaning programs are returned uncapped unless the caller asks.
	CareerMinScore    int
	ProgramMinScore   int
	MaxResults        int
	ProgramMaxResults int

	// MinAssessments is the number of completed answer sets required
	// before test-based matching trusts the signal.
	MinAssessments int

	// FieldKeywords maps a strong profile category to the program
	// name/faculty keywords that earn the field-match bonus. Tunable
	// without code changes.
	FieldKeywords map[string][]string
}

// DefaultOptions returns the documented weight set.
func DefaultOptions() Options {
	return Options{
		InterestWeight:    0.5,
		AptitudeWeight:    0.3,
		PersonalityWeight: 0.2,

		AcademicWeight:  0.35,
		ExamBoardWeight: 0.35,
		TestWeight:      0.30,
		FieldBonus:      10,

		CareerMinScore:  60,
		ProgramMinScore: 50,
		MaxResults:      10,

		MinAssessments: 3,

		FieldKeywords: DefaultFieldKeywords(),
	}
}

// DefaultFieldKeywords is the built-in field-match keyword table, mirrored
// by the matching.field_keywords config section.
func DefaultFieldKeywords() map[string][]string {
	return map[string][]string{
		"realistic":     {"engineering", "mechanical", "construction", "agriculture", "technical"},
		"investigative": {"science", "research", "computer", "informatics", "medicine", "mathematics"},
		"artistic":      {"art", "design", "music", "architecture", "media", "film"},
		"social":        {"education", "psychology", "social", "nursing", "teaching"},
		"enterprising":  {"business", "management", "law", "economics", "marketing"},
		"conventional":  {"accounting", "finance", "administration", "statistics"},
		"verbal":        {"law", "literature", "journalism", "language", "communication"},
		"numerical":     {"mathematics", "economics", "finance", "physics", "engineering"},
		"spatial":       {"architecture", "design", "engineering", "geodesy"},
		"logical":       {"computer", "informatics", "mathematics", "philosophy"},
		"creative":      {"art", "design", "music", "media", "architecture"},
	}
}
