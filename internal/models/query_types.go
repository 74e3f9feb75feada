// internal/models/query_types.go
package models

// QueryType names a canned records-store query.
type QueryType string

const (
	QueryTypeStudentProfile        QueryType = "get_student_profile"
	QueryTypeAssessmentResults     QueryType = "get_assessment_results"
	QueryTypeGradeRecords          QueryType = "get_grade_records"
	QueryTypeRecommendationHistory QueryType = "get_recommendation_history"
)
