// internal/models/assessment.go
package models

// TestCategory identifies which psychometric dimension a test measures.
type TestCategory string

const (
	TestCategoryPersonality TestCategory = "personality"
	TestCategoryInterest    TestCategory = "interest"
	TestCategoryAptitude    TestCategory = "aptitude"
	TestCategoryGeneric     TestCategory = "generic"
)

// TestAnswerSet is one completed assessment. Answers hold the raw values
// exactly as submitted (numbers or scale words); the matching engine
// resolves them to the 1-5 scale once at ingestion.
type TestAnswerSet struct {
	TestID    string                 `json:"testId"`
	Category  TestCategory           `json:"testCategory"`
	Answers   map[string]interface{} `json:"answers"`
	Weights   map[string]float64     `json:"questionWeights,omitempty"`
	Questions map[string]string      `json:"questionCategories,omitempty"`
	Completed bool                   `json:"completed"`
}

// NormalizedProfile is the derived profile used by all scorers. Every
// dimension is on the 0-100 scale, personality included.
type NormalizedProfile struct {
	Personality map[string]float64 `json:"personality"`
	Interests   map[string]float64 `json:"interests"`
	Aptitudes   map[string]float64 `json:"aptitudes"`
	Strengths   []string           `json:"strengths"`
}

// IsEmpty reports whether the profile carries no signal at all.
func (p NormalizedProfile) IsEmpty() bool {
	return len(p.Personality) == 0 && len(p.Interests) == 0 && len(p.Aptitudes) == 0
}
