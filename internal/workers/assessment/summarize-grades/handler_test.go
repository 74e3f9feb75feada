// internal/workers/assessment/summarize-grades/handler_test.go
package summarizegrades

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guidance-workers/internal/common/logger"
	"guidance-workers/internal/models"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(LoadConfig(), nil, logger.NewTestLogger(t))
}

func TestExecuteSummarizesGrades(t *testing.T) {
	h := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{
		UserID: "user-1",
		Grades: []models.GradeRecord{
			{Subject: "Mathematics", Grade: 8, Type: models.GradeTypeSubject, CoreSubject: true},
			{Subject: "History", Grade: 7, Type: models.GradeTypeSubject},
			{Subject: "Year Average", Grade: 7.5, Type: models.GradeTypeYearly},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, out.RecordsUsed)
	assert.Zero(t, out.RecordsSkipped)
	assert.InDelta(t, 7.5, out.Summary.Overall, 0.001)
	assert.InDelta(t, 8.0, out.Summary.CoreSubjects, 0.001)
	assert.InDelta(t, 7.5, out.Summary.Yearly, 0.001)
}

func TestExecuteSkipsOutOfRangeRecords(t *testing.T) {
	h := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{
		UserID: "user-2",
		Grades: []models.GradeRecord{
			{Subject: "Mathematics", Grade: 8, Type: models.GradeTypeSubject},
			{Subject: "Physics", Grade: 12, Type: models.GradeTypeSubject},
			{Subject: "Board", Grade: 2, Type: models.GradeTypeBoardDecision},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.RecordsUsed)
	assert.Equal(t, 2, out.RecordsSkipped)
	assert.InDelta(t, 8.0, out.Summary.Overall, 0.001)
}

func TestExecuteEmptyInputYieldsZeroSummary(t *testing.T) {
	h := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{UserID: "user-3"})
	require.NoError(t, err)

	assert.Zero(t, out.RecordsUsed)
	assert.Zero(t, out.Summary.Overall)
	assert.Zero(t, out.Summary.ExamBoard)
}

func TestExecuteFetchesGradesByStudentID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"subject_name", "numeric_grade", "grade_type", "is_core_subject", "year_taken",
	}).AddRow(
		"Mathematics", 8.0, "subject", true, 2025,
	).AddRow(
		"History", 7.0, "subject", false, 2025,
	)
	mock.ExpectQuery(`SELECT subject_name, numeric_grade, grade_type, is_core_subject, year_taken\s+FROM grade_records WHERE user_id = \$1`).
		WithArgs("user-4").
		WillReturnRows(rows)

	h := NewHandler(LoadConfig(), db, logger.NewTestLogger(t))
	out, err := h.Execute(context.Background(), &Input{UserID: "user-4"})
	require.NoError(t, err)

	assert.Equal(t, 2, out.RecordsUsed)
	assert.InDelta(t, 7.5, out.Summary.Overall, 0.001)
	assert.InDelta(t, 8.0, out.Summary.CoreSubjects, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteInputGradesSkipFetch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// No query expectations: provided records must win over the store.
	h := NewHandler(LoadConfig(), db, logger.NewTestLogger(t))
	out, err := h.Execute(context.Background(), &Input{
		UserID: "user-5",
		Grades: []models.GradeRecord{
			{Subject: "Mathematics", Grade: 8, Type: models.GradeTypeSubject},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.RecordsUsed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteFetchErrorDegradesToZeroSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT subject_name, numeric_grade, grade_type, is_core_subject, year_taken\s+FROM grade_records WHERE user_id = \$1`).
		WithArgs("user-6").
		WillReturnError(errors.New("database connection failed"))

	h := NewHandler(LoadConfig(), db, logger.NewTestLogger(t))
	out, err := h.Execute(context.Background(), &Input{UserID: "user-6"})
	require.NoError(t, err)

	assert.Zero(t, out.RecordsUsed)
	assert.Zero(t, out.Summary.Overall)
}
