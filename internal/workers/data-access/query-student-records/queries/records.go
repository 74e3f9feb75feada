// internal/workers/data-access/query-student-records/queries/records.go
package queries

import (
	"context"
	"database/sql"
	"time"
)

func AssessmentResults(ctx context.Context, db *sql.DB, params map[string]interface{}) (interface{}, int, int64, error) {
	userID, ok := params["userId"].(string)
	if !ok {
		return nil, 0, 0, ErrMissingParam
	}

	start := time.Now()

	rows, err := db.QueryContext(ctx, `
		SELECT test_id, test_category, answers, question_weights, question_categories, completed
		FROM assessment_results
		WHERE user_id = $1`, userID)
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	var results []map[string]interface{}
	for rows.Next() {
		var testID, testCategory string
		var answers, weights, categories []byte
		var completed bool
		err := rows.Scan(&testID, &testCategory, &answers, &weights, &categories, &completed)
		if err != nil {
			return nil, 0, 0, err
		}
		results = append(results, map[string]interface{}{
			"testId":             testID,
			"testCategory":       testCategory,
			"answers":            string(answers),
			"questionWeights":    string(weights),
			"questionCategories": string(categories),
			"completed":          completed,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, 0, 0, err
	}

	execTime := time.Since(start).Milliseconds()
	return results, len(results), execTime, nil
}

func GradeRecords(ctx context.Context, db *sql.DB, params map[string]interface{}) (interface{}, int, int64, error) {
	userID, ok := params["userId"].(string)
	if !ok {
		return nil, 0, 0, ErrMissingParam
	}

	start := time.Now()

	rows, err := db.QueryContext(ctx, `
		SELECT subject_name, numeric_grade, grade_type, is_core_subject, year_taken
		FROM grade_records
		WHERE user_id = $1`, userID)
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	var results []map[string]interface{}
	for rows.Next() {
		var subjectName, gradeType string
		var numericGrade float64
		var isCoreSubject bool
		var yearTaken int
		err := rows.Scan(&subjectName, &numericGrade, &gradeType, &isCoreSubject, &yearTaken)
		if err != nil {
			return nil, 0, 0, err
		}
		results = append(results, map[string]interface{}{
			"subjectName":   subjectName,
			"numericGrade":  numericGrade,
			"gradeType":     gradeType,
			"isCoreSubject": isCoreSubject,
			"yearTaken":     yearTaken,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, 0, 0, err
	}

	execTime := time.Since(start).Milliseconds()
	return results, len(results), execTime, nil
}

func RecommendationHistory(ctx context.Context, db *sql.DB, params map[string]interface{}) (interface{}, int, int64, error) {
	userID, ok := params["userId"].(string)
	if !ok {
		return nil, 0, 0, ErrMissingParam
	}

	start := time.Now()

	rows, err := db.QueryContext(ctx, `
		SELECT id, recommendation_kind, entity_id, title, match_score, fallback, created_at
		FROM recommendation_history
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	var results []map[string]interface{}
	for rows.Next() {
		var id, kind, entityID, title, createdAt string
		var matchScore int
		var fallback bool
		err := rows.Scan(&id, &kind, &entityID, &title, &matchScore, &fallback, &createdAt)
		if err != nil {
			return nil, 0, 0, err
		}
		results = append(results, map[string]interface{}{
			"id":                 id,
			"recommendationKind": kind,
			"entityId":           entityID,
			"title":              title,
			"matchScore":         matchScore,
			"fallback":           fallback,
			"createdAt":          createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, 0, 0, err
	}

	execTime := time.Since(start).Milliseconds()
	return results, len(results), execTime, nil
}
