// internal/models/catalog.go
package models

// CareerCatalogEntry is one career as stored in the guidance catalog.
type CareerCatalogEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	SalaryRange string `json:"salaryRange,omitempty"`
	Education   string `json:"educationPath,omitempty"`
	Outlook     string `json:"outlook,omitempty"`
}

// ProgramCatalogEntry is one university program as stored in the catalog.
type ProgramCatalogEntry struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	University       string   `json:"university,omitempty"`
	Faculty          string   `json:"faculty,omitempty"`
	Category         string   `json:"category"`
	MinimumGrade     float64  `json:"minimumGrade"`
	RequiredSubjects []string `json:"requiredSubjects,omitempty"`
	DurationYears    int      `json:"durationYears,omitempty"`
	Language         string   `json:"language,omitempty"`
	TuitionBand      string   `json:"tuitionBand,omitempty"`
}
