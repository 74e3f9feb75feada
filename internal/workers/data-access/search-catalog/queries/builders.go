package queries

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

var (
	ErrUnknownSearchKind = errors.New("unknown search kind")
	ErrMissingIndex      = errors.New("index name is required")
)

// CatalogQuery describes one catalog search. Kind selects the builder;
// Filters carry the free-form criteria from the process variables.
type CatalogQuery struct {
	Index      string
	Kind       string
	Filters    map[string]interface{}
	EntryID    string
	Category   string
	Pagination struct {
		From int
		Size int
	}
}

const (
	KindCareers        = "careers"
	KindPrograms       = "programs"
	KindRelatedEntries = "related_entries"
)

// BuildQuery assembles the search request for a catalog query.
func BuildQuery(cq CatalogQuery) (*esapi.SearchRequest, error) {
	if cq.Index == "" {
		return nil, ErrMissingIndex
	}

	var queryBody map[string]interface{}

	switch cq.Kind {
	case KindCareers:
		queryBody = buildCatalogSearchQuery(cq, false)
	case KindPrograms:
		queryBody = buildCatalogSearchQuery(cq, true)
	case KindRelatedEntries:
		queryBody = buildRelatedEntriesQuery(cq)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSearchKind, cq.Kind)
	}

	body, _ := json.Marshal(queryBody)

	req := esapi.SearchRequest{
		Index: []string{cq.Index},
		Body:  strings.NewReader(string(body)),
		From:  &cq.Pagination.From,
		Size:  &cq.Pagination.Size,
	}

	return &req, nil
}

// buildCatalogSearchQuery builds the main catalog search. Program searches
// additionally honor faculty and minimum-grade filters.
func buildCatalogSearchQuery(cq CatalogQuery, programs bool) map[string]interface{} {
	boolQuery := make(map[string]interface{})
	mustClauses := []interface{}{}
	filterClauses := []interface{}{}

	if keywords, ok := cq.Filters["keywords"].(string); ok && keywords != "" {
		mustClauses = append(mustClauses, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  keywords,
				"fields": []string{"name^3", "description^2", "category"},
				"type":   "best_fields",
			},
		})
	}

	if category, ok := cq.Filters["category"].(string); ok && category != "" {
		filterClauses = append(filterClauses, map[string]interface{}{
			"term": map[string]interface{}{"category": category},
		})
	} else if cq.Category != "" {
		filterClauses = append(filterClauses, map[string]interface{}{
			"term": map[string]interface{}{"category": cq.Category},
		})
	}

	if programs {
		if faculty, ok := cq.Filters["faculty"].(string); ok && faculty != "" {
			filterClauses = append(filterClauses, map[string]interface{}{
				"term": map[string]interface{}{"faculty": faculty},
			})
		}

		if maxGrade := numericFilter(cq.Filters, "maxMinimumGrade"); maxGrade > 0 {
			filterClauses = append(filterClauses, map[string]interface{}{
				"range": map[string]interface{}{
					"minimum_grade": map[string]interface{}{"lte": maxGrade},
				},
			})
		}

		if language, ok := cq.Filters["language"].(string); ok && language != "" {
			filterClauses = append(filterClauses, map[string]interface{}{
				"term": map[string]interface{}{"language": language},
			})
		}
	}

	if len(mustClauses) == 0 {
		mustClauses = append(mustClauses, map[string]interface{}{"match_all": map[string]interface{}{}})
	}

	boolQuery["must"] = mustClauses
	if len(filterClauses) > 0 {
		boolQuery["filter"] = filterClauses
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": boolQuery,
		},
	}

	if sortBy, ok := cq.Filters["sortBy"].(string); ok {
		switch sortBy {
		case "name":
			query["sort"] = []map[string]interface{}{{"name": "asc"}}
		case "minimum_grade":
			query["sort"] = []map[string]interface{}{{"minimum_grade": "asc"}}
		}
	}

	return query
}

// buildRelatedEntriesQuery finds catalog entries similar to a known one.
func buildRelatedEntriesQuery(cq CatalogQuery) map[string]interface{} {
	if cq.EntryID == "" {
		return map[string]interface{}{
			"query": map[string]interface{}{
				"match_none": map[string]interface{}{},
			},
		}
	}

	return map[string]interface{}{
		"query": map[string]interface{}{
			"more_like_this": map[string]interface{}{
				"fields": []string{"name", "description", "category"},
				"like": []map[string]interface{}{
					{"_index": cq.Index, "_id": cq.EntryID},
				},
				"min_term_freq":   1,
				"max_query_terms": 12,
				"min_doc_freq":    1,
				"min_word_length": 3,
			},
		},
	}
}

func numericFilter(filters map[string]interface{}, key string) float64 {
	switch v := filters[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}
