// internal/workers/guidance/check-program-eligibility/handler_test.go
package checkprogrameligibility

import (
	"context"
	"testing"
	"time"

	"guidance-workers/internal/common/logger"
	"guidance-workers/internal/matching"
	"guidance-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &Config{Timeout: 5 * time.Second, Options: matching.DefaultOptions()}
	return NewHandler(cfg, db, logger.NewTestLogger(t)), mock
}

func TestExecuteClassifiesEveryProgram(t *testing.T) {
	h, _ := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{
		UserID:       "user-1",
		AverageGrade: 8.0,
		Programs: []models.ProgramCatalogEntry{
			{ID: "p1", Name: "Business Administration", MinimumGrade: 7.0},
			{ID: "p2", Name: "Computer Science", MinimumGrade: 8.5},
			{ID: "p3", Name: "Medicine", MinimumGrade: 9.0},
			{ID: "p4", Name: "Dentistry", MinimumGrade: 9.5},
			{ID: "p5", Name: "Astrophysics", MinimumGrade: 10.0},
		},
	})
	require.NoError(t, err)

	require.Len(t, out.Results, 5)
	assert.Equal(t, 1, out.EligibleCount)
	assert.Equal(t, 8.0, out.AverageGrade)

	byID := map[string]EligibilityResult{}
	for _, r := range out.Results {
		byID[r.ProgramID] = r
	}

	assert.Equal(t, models.EligibilityEligible, byID["p1"].Status)
	assert.Equal(t, models.EligibilityClose, byID["p2"].Status)
	assert.Equal(t, models.EligibilityNeedsWork, byID["p3"].Status)
	assert.Equal(t, models.EligibilityAlternatives, byID["p4"].Status)
	assert.False(t, byID["p5"].Recommendable)
	assert.Empty(t, byID["p5"].Status)
	assert.Equal(t, 2.0, byID["p5"].Gap)
}

func TestExecuteComputesAverageFromGrades(t *testing.T) {
	h, _ := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{
		UserID: "user-2",
		Grades: []models.GradeRecord{
			{Subject: "Mathematics", Grade: 9, Type: models.GradeTypeSubject},
			{Subject: "Physics", Grade: 8, Type: models.GradeTypeSubject},
		},
		Programs: []models.ProgramCatalogEntry{
			{ID: "p1", Name: "Engineering", MinimumGrade: 7.0},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 8.5, out.AverageGrade)
	assert.Equal(t, 1, out.EligibleCount)
}

func TestExecuteFetchesGradesFromDatabase(t *testing.T) {
	h, mock := newTestHandler(t)

	rows := sqlmock.NewRows([]string{
		"subject_name", "numeric_grade", "grade_type", "is_core_subject", "year_taken",
	}).
		AddRow("Mathematics", 8.0, "subject", true, 2025).
		AddRow("History", 7.0, "subject", false, 2025)

	mock.ExpectQuery("SELECT subject_name").
		WithArgs("user-3").
		WillReturnRows(rows)

	out, err := h.Execute(context.Background(), &Input{
		UserID: "user-3",
		Programs: []models.ProgramCatalogEntry{
			{ID: "p1", Name: "Business", MinimumGrade: 7.0},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 7.5, out.AverageGrade)
	assert.Equal(t, 1, out.EligibleCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteMinimumGradeFromReference(t *testing.T) {
	h, _ := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{
		UserID:       "user-4",
		AverageGrade: 8.5,
		Programs: []models.ProgramCatalogEntry{
			{ID: "p1", Name: "General Medicine", Faculty: "Faculty of Medicine"},
			{ID: "p2", Name: "Underwater Basket Weaving"},
		},
	})
	require.NoError(t, err)

	require.Len(t, out.Results, 2)
	assert.Equal(t, 8.5, out.Results[0].MinimumGrade)
	assert.Equal(t, 6.0, out.Results[1].MinimumGrade)
	assert.Equal(t, 2, out.EligibleCount)
}

func TestExecuteNoGradeSignal(t *testing.T) {
	h, mock := newTestHandler(t)

	mock.ExpectQuery("SELECT subject_name").
		WithArgs("user-5").
		WillReturnRows(sqlmock.NewRows([]string{
			"subject_name", "numeric_grade", "grade_type", "is_core_subject", "year_taken",
		}))

	out, err := h.Execute(context.Background(), &Input{
		UserID: "user-5",
		Programs: []models.ProgramCatalogEntry{
			{ID: "p1", Name: "Business", MinimumGrade: 7.0},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.EligibleCount)
	require.Len(t, out.Results, 1)
	assert.False(t, out.Results[0].Recommendable)
}
