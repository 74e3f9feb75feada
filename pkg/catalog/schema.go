// pkg/catalog/schema.go
package catalog

import "guidance-workers/internal/models"

// Catalog is the versioned guidance catalog document. A single file holds
// both careers and programs so the two lists can never drift apart in
// version.
type Catalog struct {
	Version     string                       `json:"version"`
	LastUpdated string                       `json:"lastUpdated"`
	Careers     []models.CareerCatalogEntry  `json:"careers"`
	Programs    []models.ProgramCatalogEntry `json:"programs"`
}

// catalogSchema is the JSON Schema every catalog document must satisfy
// before it is accepted.
var catalogSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"version", "careers", "programs"},
	"properties": map[string]interface{}{
		"version":     map[string]interface{}{"type": "string", "minLength": 1},
		"lastUpdated": map[string]interface{}{"type": "string"},
		"careers": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"id", "title", "category"},
				"properties": map[string]interface{}{
					"id":       map[string]interface{}{"type": "string", "minLength": 1},
					"title":    map[string]interface{}{"type": "string", "minLength": 1},
					"category": map[string]interface{}{"type": "string", "minLength": 1},
				},
			},
		},
		"programs": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"id", "name", "category", "minimumGrade"},
				"properties": map[string]interface{}{
					"id":           map[string]interface{}{"type": "string", "minLength": 1},
					"name":         map[string]interface{}{"type": "string", "minLength": 1},
					"category":     map[string]interface{}{"type": "string", "minLength": 1},
					"minimumGrade": map[string]interface{}{"type": "number", "minimum": 0, "maximum": 10},
				},
			},
		},
	},
}
