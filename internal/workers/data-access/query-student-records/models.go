// internal/workers/data-access/query-student-records/models.go
package querystudentrecords

import "guidance-workers/internal/models"

type Input struct {
	QueryType string                 `json:"queryType"`
	UserID    string                 `json:"userId,omitempty"`
	Filters   map[string]interface{} `json:"filters,omitempty"`
}

type Output struct {
	Data               interface{} `json:"data"`
	RowCount           int         `json:"rowCount"`
	QueryExecutionTime int64       `json:"queryExecutionTime"` // milliseconds
}

type QueryType = models.QueryType

var (
	QueryTypeStudentProfile        = models.QueryTypeStudentProfile
	QueryTypeAssessmentResults     = models.QueryTypeAssessmentResults
	QueryTypeGradeRecords          = models.QueryTypeGradeRecords
	QueryTypeRecommendationHistory = models.QueryTypeRecommendationHistory
)
