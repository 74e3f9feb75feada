// internal/models/grades.go
package models

// GradeType identifies how a grade record was produced.
type GradeType string

const (
	GradeTypeSubject       GradeType = "subject"
	GradeTypeYearly        GradeType = "yearly"
	GradeTypeExitExam      GradeType = "exit-exam"
	GradeTypeBoardDecision GradeType = "exam-board-decision"
	GradeTypeAverage       GradeType = "average"
)

// GradeRange bounds the numeric grade for a grade type.
type GradeRange struct {
	Min float64
	Max float64
}

// gradeRanges holds the valid numeric range per grade type. Exit-exam and
// board-decision grades are issued on the 4-10 committee scale; school
// grades use the full 1-10 scale.
var gradeRanges = map[GradeType]GradeRange{
	GradeTypeSubject:       {Min: 1, Max: 10},
	GradeTypeYearly:        {Min: 1, Max: 10},
	GradeTypeExitExam:      {Min: 4, Max: 10},
	GradeTypeBoardDecision: {Min: 4, Max: 10},
	GradeTypeAverage:       {Min: 1, Max: 10},
}

// RangeFor returns the valid grade range for the given type. Unknown types
// get the widest range so a single odd record never invalidates a batch.
func RangeFor(t GradeType) GradeRange {
	if r, ok := gradeRanges[t]; ok {
		return r
	}
	return GradeRange{Min: 1, Max: 10}
}

// GradeRecord is one academic grade as fetched from the records store.
type GradeRecord struct {
	Subject     string    `json:"subjectName"`
	Grade       float64   `json:"numericGrade"`
	Type        GradeType `json:"gradeType"`
	CoreSubject bool      `json:"isCoreSubject"`
	Year        int       `json:"yearTaken"`
}

// Valid reports whether the numeric grade falls inside the range defined
// for its grade type.
func (g GradeRecord) Valid() bool {
	r := RangeFor(g.Type)
	return g.Grade >= r.Min && g.Grade <= r.Max
}

// GradeSummary holds the aggregate averages computed from a grade list.
// Values are rounded to 2 decimals for display.
type GradeSummary struct {
	Overall      float64 `json:"overall"`
	CoreSubjects float64 `json:"coreSubjects"`
	Yearly       float64 `json:"yearly"`
	ExamBoard    float64 `json:"examBoard"`
}
