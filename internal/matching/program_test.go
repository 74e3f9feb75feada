// internal/matching/program_test.go
package matching

import (
	"fmt"
	"testing"

	"guidance-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func programCatalog() []models.ProgramCatalogEntry {
	return []models.ProgramCatalogEntry{
		{ID: "p1", Name: "Computer Science BSc", Faculty: "Faculty of Informatics", Category: "technology", MinimumGrade: 8.0, DurationYears: 3},
		{ID: "p2", Name: "Business Administration", Faculty: "Faculty of Economics", Category: "business", MinimumGrade: 7.0, DurationYears: 3},
		{ID: "p3", Name: "General Medicine", Faculty: "Faculty of Medicine", Category: "health", MinimumGrade: 9.0, DurationYears: 6},
	}
}

func strongGrades(avg float64) []models.GradeRecord {
	return []models.GradeRecord{
		{Subject: "mathematics", Grade: avg, Type: models.GradeTypeSubject, CoreSubject: true},
		{Subject: "literature", Grade: avg, Type: models.GradeTypeSubject},
		{Subject: "physics", Grade: avg, Type: models.GradeTypeSubject, CoreSubject: true},
	}
}

// The worked example: academic average 8.5 against an 8.0 gate gives the
// 77.5 component, an 8.0 exam-board average gives 70, a mean test score of
// 75 steps to 80, no field bonus. Combined 75.625 rounds to 76, eligible.
func TestScoreProgramCombined_WorkedExample(t *testing.T) {
	records := append(strongGrades(8.5), models.GradeRecord{
		Subject: "final", Grade: 8.0, Type: models.GradeTypeBoardDecision,
	})
	averages := aggregateGrades(records)
	require.InDelta(t, 8.5, averages.overall, 0.001)
	require.InDelta(t, 8.0, averages.examBoard, 0.001)

	program := models.ProgramCatalogEntry{ID: "p1", Name: "Quantitative Studies", MinimumGrade: 8.0}
	result, ok := scoreProgramCombined(program, 8.0, averages, 75.0, nil, DefaultOptions())
	require.True(t, ok)
	assert.Equal(t, 76, result.MatchScore)
	assert.Equal(t, models.EligibilityEligible, result.Eligibility)
}

func TestTestStepScore(t *testing.T) {
	tests := []struct {
		mean     float64
		expected float64
	}{
		{85, 90},
		{80, 90},
		{75, 80},
		{65, 70},
		{55, 60},
		{49.9, 40},
		{0, 40},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.expected, testStepScore(tt.mean), "mean %.1f", tt.mean)
	}
}

func TestFieldMatchBonus(t *testing.T) {
	opts := DefaultOptions()
	program := models.ProgramCatalogEntry{Name: "Mechanical Engineering BSc", Faculty: "Faculty of Engineering"}

	assert.Equal(t, 10.0, fieldMatchBonus(program, []string{"realistic"}, opts))
	assert.Equal(t, 0.0, fieldMatchBonus(program, []string{"social"}, opts))
	assert.Equal(t, 0.0, fieldMatchBonus(program, nil, opts))
}

func TestMatchPrograms_GradesOnlyMode(t *testing.T) {
	results := MatchPrograms(strongGrades(8.5), nil, programCatalog(), ModeGrades, DefaultOptions())
	require.NotEmpty(t, results)

	for _, r := range results {
		assert.NotEmpty(t, r.Eligibility)
		assert.GreaterOrEqual(t, r.MatchScore, 0)
		assert.LessOrEqual(t, r.MatchScore, 100)
	}
	// Medicine's 9.0 gate sits 0.5 from the 8.5 average: close tier.
	for _, r := range results {
		if r.EntityID == "p3" {
			assert.Equal(t, models.EligibilityClose, r.Eligibility)
		}
	}
}

func TestMatchPrograms_ExcludesBeyondLadder(t *testing.T) {
	results := MatchPrograms(strongGrades(6.0), nil, programCatalog(), ModeGrades, DefaultOptions())
	for _, r := range results {
		assert.NotEqual(t, "p3", r.EntityID, "9.0 gate must be excluded for a 6.0 average")
		assert.NotEqual(t, "p1", r.EntityID, "8.0 gate must be excluded for a 6.0 average")
	}
}

func TestMatchPrograms_BothDegradesToGradesWithFewTests(t *testing.T) {
	grades := strongGrades(8.5)
	oneTest := []models.TestAnswerSet{completedInterestSet("t1", 5.0)}

	both := MatchPrograms(grades, oneTest, programCatalog(), ModeBoth, DefaultOptions())
	gradesOnly := MatchPrograms(grades, nil, programCatalog(), ModeGrades, DefaultOptions())
	assert.Equal(t, gradesOnly, both)
}

func TestMatchPrograms_EmptyCatalogFallsBack(t *testing.T) {
	results := MatchPrograms(strongGrades(8.0), nil, nil, ModeGrades, DefaultOptions())
	require.GreaterOrEqual(t, len(results), 5)
	for _, r := range results {
		assert.True(t, r.Fallback)
	}
}

func TestMatchPrograms_NoSignalFallsBack(t *testing.T) {
	results := MatchPrograms(nil, nil, programCatalog(), ModeGrades, DefaultOptions())
	require.NotEmpty(t, results)
	assert.True(t, results[0].Fallback)
}

func TestMatchPrograms_UncappedByDefault(t *testing.T) {
	programs := make([]models.ProgramCatalogEntry, 0, 15)
	for i := 0; i < 15; i++ {
		programs = append(programs, models.ProgramCatalogEntry{
			ID:           fmt.Sprintf("p%d", i),
			Name:         fmt.Sprintf("Program %d", i),
			MinimumGrade: 7.0,
		})
	}

	results := MatchPrograms(strongGrades(8.5), nil, programs, ModeGrades, DefaultOptions())
	assert.Len(t, results, 15, "program list must not be truncated without an explicit cap")

	opts := DefaultOptions()
	opts.ProgramMaxResults = 5
	capped := MatchPrograms(strongGrades(8.5), nil, programs, ModeGrades, opts)
	assert.Len(t, capped, 5)
}

func TestMatchPrograms_SortedDescending(t *testing.T) {
	results := MatchPrograms(strongGrades(8.5), nil, programCatalog(), ModeGrades, DefaultOptions())
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].MatchScore, results[i].MatchScore)
	}
}

func TestMatchPrograms_TestsModeOmitsEligibility(t *testing.T) {
	results := MatchPrograms(nil, enoughTests(), programCatalog(), ModeTests, Options{
		InterestWeight:    0.5,
		AptitudeWeight:    0.3,
		PersonalityWeight: 0.2,
		ProgramMinScore:   0,
		MinAssessments:    3,
		FieldKeywords:     DefaultFieldKeywords(),
	})
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Empty(t, string(r.Eligibility))
	}
}
