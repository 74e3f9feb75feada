// internal/matching/ranking.go
package matching

import (
	"sort"

	"guidance-workers/internal/models"
)

// Assemble filters out results below minScore, sorts the rest strictly
// descending by score, and truncates to limit when limit > 0. The sort is
// stable so equal scores preserve catalog input order.
func Assemble(results []models.MatchResult, minScore, limit int) []models.MatchResult {
	kept := make([]models.MatchResult, 0, len(results))
	for _, r := range results {
		if r.MatchScore >= minScore {
			kept = append(kept, r)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].MatchScore > kept[j].MatchScore
	})

	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}
