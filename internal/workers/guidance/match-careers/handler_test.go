// internal/workers/guidance/match-careers/handler_test.go
package matchcareers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"guidance-workers/internal/common/logger"
	"guidance-workers/internal/matching"
	"guidance-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Timeout:  5 * time.Second,
		CacheTTL: time.Minute,
		Options:  matching.DefaultOptions(),
	}
}

func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock, *miniredis.Miniredis) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	h := NewHandler(testConfig(), db, rdb, logger.NewTestLogger(t))
	return h, mock, mr
}

func investigativeSet(id string) models.TestAnswerSet {
	return models.TestAnswerSet{
		TestID:   id,
		Category: models.TestCategoryInterest,
		Answers: map[string]interface{}{
			"q1": 5,
			"q2": 5,
		},
		Questions: map[string]string{
			"q1": "investigative",
			"q2": "investigative",
		},
		Completed: true,
	}
}

func enoughTests() []models.TestAnswerSet {
	return []models.TestAnswerSet{
		investigativeSet("t1"),
		investigativeSet("t2"),
		investigativeSet("t3"),
	}
}

func testCatalog() []models.CareerCatalogEntry {
	return []models.CareerCatalogEntry{
		{ID: "c1", Title: "Software Developer", Category: "technology", SalaryRange: "60k-120k"},
		{ID: "c2", Title: "Research Scientist", Category: "science"},
	}
}

func TestExecuteMatchesCareersFromInlineTests(t *testing.T) {
	h, _, _ := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{
		UserID:  "user-1",
		Tests:   enoughTests(),
		Careers: testCatalog(),
	})
	require.NoError(t, err)

	assert.False(t, out.Fallback)
	require.NotEmpty(t, out.Recommendations)
	assert.Equal(t, len(out.Recommendations), out.Count)

	for i := 1; i < len(out.Recommendations); i++ {
		assert.GreaterOrEqual(t,
			out.Recommendations[i-1].MatchScore,
			out.Recommendations[i].MatchScore)
	}
	for _, rec := range out.Recommendations {
		assert.GreaterOrEqual(t, rec.MatchScore, matching.DefaultOptions().CareerMinScore)
		assert.NotEmpty(t, rec.MatchReason)
	}
}

func TestExecuteFallsBackOnInsufficientAssessments(t *testing.T) {
	h, _, _ := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{
		UserID:  "user-2",
		Tests:   []models.TestAnswerSet{investigativeSet("t1")},
		Careers: testCatalog(),
	})
	require.NoError(t, err)

	assert.True(t, out.Fallback)
	require.NotEmpty(t, out.Recommendations)
	for _, rec := range out.Recommendations {
		assert.True(t, rec.Fallback)
	}
}

func TestExecuteFallsBackOnEmptyCatalog(t *testing.T) {
	h, _, _ := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{
		UserID: "user-3",
		Tests:  enoughTests(),
	})
	require.NoError(t, err)

	assert.True(t, out.Fallback)
	assert.NotEmpty(t, out.Recommendations)
}

func TestExecuteFetchesTestsFromDatabase(t *testing.T) {
	h, mock, _ := newTestHandler(t)

	answers, _ := json.Marshal(map[string]interface{}{"q1": 5, "q2": 5})
	categories, _ := json.Marshal(map[string]string{"q1": "investigative", "q2": "investigative"})

	rows := sqlmock.NewRows([]string{
		"test_id", "test_category", "answers", "question_weights", "question_categories", "completed",
	})
	for _, id := range []string{"t1", "t2", "t3"} {
		rows.AddRow(id, "interest", answers, []byte(nil), categories, true)
	}

	mock.ExpectQuery("SELECT test_id, test_category").
		WithArgs("user-4").
		WillReturnRows(rows)

	out, err := h.Execute(context.Background(), &Input{
		UserID:  "user-4",
		Careers: testCatalog(),
	})
	require.NoError(t, err)

	assert.False(t, out.Fallback)
	assert.NotEmpty(t, out.Recommendations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteUsesCachedTests(t *testing.T) {
	h, mock, mr := newTestHandler(t)

	cached, _ := json.Marshal(enoughTests())
	require.NoError(t, mr.Set("guidance:tests:user-5", string(cached)))

	out, err := h.Execute(context.Background(), &Input{
		UserID:  "user-5",
		Careers: testCatalog(),
	})
	require.NoError(t, err)

	assert.False(t, out.Fallback)
	// No database interaction expected on a cache hit.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteDatabaseErrorDegradesToFallback(t *testing.T) {
	h, mock, _ := newTestHandler(t)

	mock.ExpectQuery("SELECT test_id, test_category").
		WithArgs("user-6").
		WillReturnError(assert.AnError)

	out, err := h.Execute(context.Background(), &Input{
		UserID:  "user-6",
		Careers: testCatalog(),
	})
	require.NoError(t, err)

	assert.True(t, out.Fallback)
}
