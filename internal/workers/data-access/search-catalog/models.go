// internal/workers/data-access/search-catalog/models.go
package searchcatalog

type Input struct {
	SearchKind string                 `json:"searchKind"`
	IndexName  string                 `json:"indexName,omitempty"`
	Filters    map[string]interface{} `json:"filters"`
	EntryID    string                 `json:"entryId,omitempty"`
	Category   string                 `json:"category,omitempty"`
	Pagination Pagination             `json:"pagination"`
}

type Pagination struct {
	From int `json:"from"`
	Size int `json:"size"`
}

type Output struct {
	Data      []map[string]interface{} `json:"data"`
	TotalHits int64                    `json:"totalHits"`
	MaxScore  float64                  `json:"maxScore"`
	Took      int64                    `json:"took"` // milliseconds
	Cached    bool                     `json:"cached"`
}
