// internal/matching/ranking_test.go
package matching

import (
	"testing"

	"guidance-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_FiltersSortsTruncates(t *testing.T) {
	results := []models.MatchResult{
		{EntityID: "a", MatchScore: 55},
		{EntityID: "b", MatchScore: 90},
		{EntityID: "c", MatchScore: 72},
		{EntityID: "d", MatchScore: 40},
		{EntityID: "e", MatchScore: 81},
	}

	out := Assemble(results, 60, 2)
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].EntityID)
	assert.Equal(t, "e", out[1].EntityID)
}

func TestAssemble_StableOnTies(t *testing.T) {
	results := []models.MatchResult{
		{EntityID: "first", MatchScore: 70},
		{EntityID: "second", MatchScore: 70},
		{EntityID: "third", MatchScore: 70},
	}

	out := Assemble(results, 0, 0)
	require.Len(t, out, 3)
	assert.Equal(t, "first", out[0].EntityID)
	assert.Equal(t, "second", out[1].EntityID)
	assert.Equal(t, "third", out[2].EntityID)
}

func TestAssemble_NoLimitKeepsAll(t *testing.T) {
	results := []models.MatchResult{
		{EntityID: "a", MatchScore: 61},
		{EntityID: "b", MatchScore: 62},
	}
	out := Assemble(results, 60, 0)
	assert.Len(t, out, 2)
}

func TestAssemble_EmptyInput(t *testing.T) {
	assert.Empty(t, Assemble(nil, 60, 10))
}
