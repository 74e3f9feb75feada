// internal/models/recommendation.go
package models

// EligibilityStatus classifies the grade gap between a student and a
// program's minimum grade requirement.
type EligibilityStatus string

const (
	EligibilityEligible     EligibilityStatus = "eligible"
	EligibilityClose        EligibilityStatus = "close"
	EligibilityNeedsWork    EligibilityStatus = "needs_improvement"
	EligibilityAlternatives EligibilityStatus = "consider_alternatives"
)

// MatchResult is one ranked recommendation handed back to the caller.
// Eligibility is set for program matches only. Results are never mutated
// after construction.
type MatchResult struct {
	EntityID    string            `json:"entityId"`
	Title       string            `json:"title"`
	MatchScore  int               `json:"matchScore"`
	MatchReason string            `json:"matchReason"`
	Category    string            `json:"category,omitempty"`
	SalaryRange string            `json:"salaryRange,omitempty"`
	Duration    string            `json:"duration,omitempty"`
	University  string            `json:"university,omitempty"`
	Eligibility EligibilityStatus `json:"eligibilityStatus,omitempty"`
	Fallback    bool              `json:"fallback,omitempty"`
}
