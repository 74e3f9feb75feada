// internal/workers/guidance/options_test.go
package guidance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guidance-workers/internal/common/config"
	"guidance-workers/internal/matching"
)

// The shipped config must reproduce the documented scoring formula: any
// drift in the matching section silently reweights every recommendation.
func TestOptions_ShippedConfigMatchesEngineDefaults(t *testing.T) {
	cfg, err := config.LoadFromFile("../../../configs/config.yaml")
	require.NoError(t, err)

	opts := Options(cfg.Matching)

	assert.Equal(t, 0.35, opts.AcademicWeight)
	assert.Equal(t, 0.35, opts.ExamBoardWeight)
	assert.Equal(t, 0.30, opts.TestWeight)
	assert.InDelta(t, 1.0, opts.AcademicWeight+opts.ExamBoardWeight+opts.TestWeight, 0.001,
		"program weights must sum to 1.0, the combined score is a weighted mean")

	assert.Equal(t, 60, opts.CareerMinScore)
	assert.Equal(t, 50, opts.ProgramMinScore)

	assert.Equal(t, matching.DefaultOptions(), opts)
}

func TestOptions_ZeroValuesKeepDefaults(t *testing.T) {
	opts := Options(config.MatchingConfig{})
	assert.Equal(t, matching.DefaultOptions(), opts)
}

func TestOptions_ConfigOverrides(t *testing.T) {
	opts := Options(config.MatchingConfig{
		InterestWeight:    0.6,
		CareerMinScore:    70,
		MaxResults:        8,
		ProgramMaxResults: 5,
	})

	assert.Equal(t, 0.6, opts.InterestWeight)
	assert.Equal(t, 70, opts.CareerMinScore)
	assert.Equal(t, 8, opts.MaxResults)
	assert.Equal(t, 5, opts.ProgramMaxResults)

	// Untouched values stay at engine defaults.
	assert.Equal(t, 0.35, opts.AcademicWeight)
	assert.Equal(t, 50, opts.ProgramMinScore)
}
