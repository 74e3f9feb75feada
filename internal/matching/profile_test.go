// internal/matching/profile_test.go
package matching

import (
	"testing"

	"guidance-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerScale(t *testing.T) {
	tests := []struct {
		name     string
		raw      interface{}
		expected float64
	}{
		{"numeric passthrough", 4.0, 4},
		{"numeric int", 2, 2},
		{"numeric clamped high", 9.0, 5},
		{"numeric clamped low", 0.0, 1},
		{"strongly agree", "Strongly Agree", 5},
		{"agree", "agree", 4},
		{"neutral word", "neutral", 3},
		{"disagree", "disagree", 2},
		{"strongly disagree", "strongly disagree", 1},
		{"yes", "yes", 5},
		{"true string", "true", 5},
		{"no", "no", 1},
		{"false string", "false", 1},
		{"bool true", true, 5},
		{"bool false", false, 1},
		{"numeric string", "3.5", 3.5},
		{"unparsable defaults to neutral", "banana", 3},
		{"nil defaults to neutral", nil, 3},
		{"whitespace trimmed", "  Agree  ", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, answerScale(tt.raw))
		})
	}
}

func interestSet(answers map[string]interface{}, questions map[string]string) models.TestAnswerSet {
	return models.TestAnswerSet{
		TestID:    "interest-1",
		Category:  models.TestCategoryInterest,
		Answers:   answers,
		Questions: questions,
		Completed: true,
	}
}

func TestExtractProfile_InterestTransform(t *testing.T) {
	// Mean of 4 and 5 is 4.5, reported as 90 on the 0-100 scale.
	set := interestSet(
		map[string]interface{}{"q1": 4.0, "q2": 5.0},
		map[string]string{"q1": "artistic", "q2": "artistic"},
	)

	profile := ExtractProfile([]models.TestAnswerSet{set})
	assert.InDelta(t, 90.0, profile.Interests["artistic"], 0.001)
}

func TestExtractProfile_PersonalityRescaledTo100(t *testing.T) {
	set := models.TestAnswerSet{
		TestID:   "pers-1",
		Category: models.TestCategoryPersonality,
		Answers:  map[string]interface{}{"q1": "strongly agree", "q2": "agree"},
		Questions: map[string]string{
			"q1": "openness", "q2": "openness",
		},
		Completed: true,
	}

	profile := ExtractProfile([]models.TestAnswerSet{set})
	// (5+4)/2 = 4.5 -> 90 after the uniform rescale.
	assert.InDelta(t, 90.0, profile.Personality["openness"], 0.001)
}

func TestExtractProfile_AptitudeNormalizedAgainstMax(t *testing.T) {
	set := models.TestAnswerSet{
		TestID:   "apt-1",
		Category: models.TestCategoryAptitude,
		Answers:  map[string]interface{}{"q1": 5.0, "q2": 5.0, "q3": 2.0},
		Questions: map[string]string{
			"q1": "logical", "q2": "logical", "q3": "logical",
		},
		Completed: true,
	}

	profile := ExtractProfile([]models.TestAnswerSet{set})
	// total 12 over max 15 -> 80.
	assert.InDelta(t, 80.0, profile.Aptitudes["logical"], 0.001)
}

func TestExtractProfile_WeightsApplied(t *testing.T) {
	set := interestSet(
		map[string]interface{}{"q1": 5.0, "q2": 1.0},
		map[string]string{"q1": "social", "q2": "social"},
	)
	set.Weights = map[string]float64{"q1": 3, "q2": 1}

	profile := ExtractProfile([]models.TestAnswerSet{set})
	// Weighted mean (15+1)/4 = 4 -> 80.
	assert.InDelta(t, 80.0, profile.Interests["social"], 0.001)
}

func TestExtractProfile_MalformedAnswerDefaultsNeutral(t *testing.T) {
	set := interestSet(
		map[string]interface{}{"q1": "???", "q2": 3.0},
		map[string]string{"q1": "realistic", "q2": "realistic"},
	)

	profile := ExtractProfile([]models.TestAnswerSet{set})
	assert.InDelta(t, 60.0, profile.Interests["realistic"], 0.001)
}

func TestExtractProfile_EmptyInput(t *testing.T) {
	profile := ExtractProfile(nil)
	assert.True(t, profile.IsEmpty())
	assert.Empty(t, profile.Strengths)
}

func TestExtractProfile_Strengths(t *testing.T) {
	sets := []models.TestAnswerSet{
		interestSet(
			map[string]interface{}{"q1": 5.0, "q2": 5.0},
			map[string]string{"q1": "investigative", "q2": "investigative"},
		),
		{
			TestID:    "apt-1",
			Category:  models.TestCategoryAptitude,
			Answers:   map[string]interface{}{"q1": 5.0, "q2": 4.0},
			Questions: map[string]string{"q1": "logical", "q2": "logical"},
			Completed: true,
		},
	}

	profile := ExtractProfile(sets)
	require.Len(t, profile.Strengths, 2)
	// Interest at 100 outranks aptitude at 90.
	assert.Equal(t, "high interest in investigative", profile.Strengths[0])
	assert.Equal(t, "strong logical ability", profile.Strengths[1])
}

func TestExtractProfile_StrengthsCappedAtFive(t *testing.T) {
	answers := map[string]interface{}{}
	questions := map[string]string{}
	for i, cat := range InterestCategories {
		q := string(rune('a' + i))
		answers[q] = 5.0
		questions[q] = cat
	}

	profile := ExtractProfile([]models.TestAnswerSet{interestSet(answers, questions)})
	assert.Len(t, profile.Strengths, 5)
}

func TestCompletedAssessments(t *testing.T) {
	sets := []models.TestAnswerSet{
		{Completed: true, Answers: map[string]interface{}{"q": 3.0}},
		{Completed: true},                                    // no answers
		{Completed: false, Answers: map[string]interface{}{"q": 3.0}}, // not completed
	}
	assert.Equal(t, 1, CompletedAssessments(sets))
}

func TestMeanTestScore(t *testing.T) {
	profile := models.NormalizedProfile{
		Interests: map[string]float64{"artistic": 80},
		Aptitudes: map[string]float64{"creative": 70},
	}
	assert.InDelta(t, 75.0, MeanTestScore(profile), 0.001)
	assert.Zero(t, MeanTestScore(models.NormalizedProfile{}))
}

func TestStrongCategories(t *testing.T) {
	profile := models.NormalizedProfile{
		Interests: map[string]float64{"artistic": 75, "social": 50},
		Aptitudes: map[string]float64{"creative": 80, "verbal": 60},
	}
	assert.Equal(t, []string{"artistic", "creative"}, StrongCategories(profile))
}
