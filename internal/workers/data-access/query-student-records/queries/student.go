// internal/workers/data-access/query-student-records/queries/student.go
package queries

import (
	"context"
	"database/sql"
	"time"
)

func StudentProfile(ctx context.Context, db *sql.DB, params map[string]interface{}) (interface{}, int, int64, error) {
	userID, ok := params["userId"].(string)
	if !ok {
		return nil, 0, 0, ErrMissingParam
	}

	start := time.Now()

	var id, name, email, phone, schoolName string
	var graduationYear int
	var preferredLanguage string

	err := db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, school_name, graduation_year, preferred_language
		FROM students
		WHERE id = $1`, userID).Scan(
		&id, &name, &email, &phone,
		&schoolName, &graduationYear,
		&preferredLanguage,
	)
	if err != nil {
		return nil, 0, 0, err
	}

	result := map[string]interface{}{
		"id":                id,
		"name":              name,
		"email":             email,
		"phone":             phone,
		"schoolName":        schoolName,
		"graduationYear":    graduationYear,
		"preferredLanguage": preferredLanguage,
	}

	execTime := time.Since(start).Milliseconds()
	return result, 1, execTime, nil
}
