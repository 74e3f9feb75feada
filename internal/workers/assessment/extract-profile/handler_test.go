// internal/workers/assessment/extract-profile/handler_test.go
package extractprofile

import (
	"context"
	"testing"

	"guidance-workers/internal/common/logger"
	"guidance-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(LoadConfig(), logger.NewTestLogger(t))
}

func interestSet(id string, score float64) models.TestAnswerSet {
	answer := 1 + score/25
	return models.TestAnswerSet{
		TestID:   id,
		Category: models.TestCategoryInterest,
		Answers: map[string]interface{}{
			"q1": answer,
			"q2": answer,
		},
		Questions: map[string]string{
			"q1": "investigative",
			"q2": "investigative",
		},
		Completed: true,
	}
}

func TestExecuteBuildsProfile(t *testing.T) {
	h := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{
		UserID: "user-1",
		Tests: []models.TestAnswerSet{
			interestSet("t1", 100),
			interestSet("t2", 100),
			interestSet("t3", 100),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, out.CompletedAssessments)
	assert.InDelta(t, 100, out.Profile.Interests["investigative"], 0.001)
	assert.Contains(t, out.StrongCategories, "investigative")
	assert.Greater(t, out.MeanTestScore, 0.0)
}

func TestExecuteEmptyInputDegrades(t *testing.T) {
	h := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{UserID: "user-2"})
	require.NoError(t, err)

	assert.True(t, out.Profile.IsEmpty())
	assert.Zero(t, out.CompletedAssessments)
	assert.Empty(t, out.StrongCategories)
}

func TestExecuteMalformedAnswersStillScore(t *testing.T) {
	h := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{
		UserID: "user-3",
		Tests: []models.TestAnswerSet{
			{
				TestID:   "broken",
				Category: models.TestCategoryInterest,
				Answers: map[string]interface{}{
					"q1": "banana",
					"q2": []int{1, 2},
				},
				Questions: map[string]string{
					"q1": "artistic",
					"q2": "artistic",
				},
				Completed: true,
			},
		},
	})
	require.NoError(t, err)

	// Unreadable answers fall back to the neutral scale point.
	assert.InDelta(t, 60, out.Profile.Interests["artistic"], 0.001)
	assert.Equal(t, 1, out.CompletedAssessments)
}

func TestExecuteIncompleteSetsIgnoredForCount(t *testing.T) {
	h := newTestHandler(t)

	set := interestSet("t1", 80)
	set.Completed = false

	out, err := h.Execute(context.Background(), &Input{
		UserID: "user-4",
		Tests:  []models.TestAnswerSet{set},
	})
	require.NoError(t, err)

	assert.Zero(t, out.CompletedAssessments)
}
