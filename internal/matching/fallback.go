// internal/matching/fallback.go
package matching

import "guidance-workers/internal/models"

// The fallback lists are a fixed, hand-authored degrade-gracefully catalog:
// when the live catalog is empty or the student has too few completed
// assessments, the caller still gets a broadly appealing set rather than a
// blank screen. Scores stay inside the 70-90 band and entries are returned
// as fresh copies so callers can never mutate the source tables.

var fallbackCareers = []models.MatchResult{
	{
		EntityID:    "fallback-career-software-developer",
		Title:       "Software Developer",
		MatchScore:  85,
		MatchReason: "Strong demand across every industry",
		Category:    "technology",
		SalaryRange: "above average",
		Fallback:    true,
	},
	{
		EntityID:    "fallback-career-registered-nurse",
		Title:       "Registered Nurse",
		MatchScore:  82,
		MatchReason: "Stable career helping people every day",
		Category:    "health",
		SalaryRange: "average",
		Fallback:    true,
	},
	{
		EntityID:    "fallback-career-teacher",
		Title:       "Teacher",
		MatchScore:  78,
		MatchReason: "Rewarding work shaping the next generation",
		Category:    "education",
		SalaryRange: "average",
		Fallback:    true,
	},
	{
		EntityID:    "fallback-career-business-analyst",
		Title:       "Business Analyst",
		MatchScore:  76,
		MatchReason: "Versatile role bridging business and data",
		Category:    "business",
		SalaryRange: "above average",
		Fallback:    true,
	},
	{
		EntityID:    "fallback-career-graphic-designer",
		Title:       "Graphic Designer",
		MatchScore:  73,
		MatchReason: "Creative work with a growing digital market",
		Category:    "arts",
		SalaryRange: "average",
		Fallback:    true,
	},
	{
		EntityID:    "fallback-career-electrician",
		Title:       "Electrician",
		MatchScore:  71,
		MatchReason: "Skilled trade with reliable demand",
		Category:    "trades",
		SalaryRange: "average",
		Fallback:    true,
	},
}

var fallbackPrograms = []models.MatchResult{
	{
		EntityID:    "fallback-program-business-administration",
		Title:       "Business Administration",
		MatchScore:  84,
		MatchReason: "Broad foundation for many career paths",
		Category:    "business",
		Duration:    "3 years",
		Fallback:    true,
	},
	{
		EntityID:    "fallback-program-computer-science",
		Title:       "Computer Science",
		MatchScore:  82,
		MatchReason: "Excellent graduate employment prospects",
		Category:    "technology",
		Duration:    "3 years",
		Fallback:    true,
	},
	{
		EntityID:    "fallback-program-psychology",
		Title:       "Psychology",
		MatchScore:  77,
		MatchReason: "Popular program with diverse specializations",
		Category:    "social",
		Duration:    "3 years",
		Fallback:    true,
	},
	{
		EntityID:    "fallback-program-mechanical-engineering",
		Title:       "Mechanical Engineering",
		MatchScore:  75,
		MatchReason: "Hands-on program with strong industry links",
		Category:    "engineering",
		Duration:    "4 years",
		Fallback:    true,
	},
	{
		EntityID:    "fallback-program-communication-media",
		Title:       "Communication and Media Studies",
		MatchScore:  72,
		MatchReason: "Flexible degree for the modern media landscape",
		Category:    "arts",
		Duration:    "3 years",
		Fallback:    true,
	},
}

// FallbackCareers returns the fixed default career recommendations.
func FallbackCareers() []models.MatchResult {
	out := make([]models.MatchResult, len(fallbackCareers))
	copy(out, fallbackCareers)
	return out
}

// FallbackPrograms returns the fixed default program recommendations.
func FallbackPrograms() []models.MatchResult {
	out := make([]models.MatchResult, len(fallbackPrograms))
	copy(out, fallbackPrograms)
	return out
}
