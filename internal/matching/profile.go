// internal/matching/profile.go
package matching

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"guidance-workers/internal/models"
)

// Interest categories follow the six-dimension RIASEC taxonomy.
var InterestCategories = []string{
	"realistic", "investigative", "artistic", "social", "enterprising", "conventional",
}

// Aptitude categories cover the skill dimensions the aptitude tests measure.
var AptitudeCategories = []string{
	"verbal", "numerical", "spatial", "logical", "creative",
}

const (
	answerMin     = 1.0
	answerMax     = 5.0
	neutralAnswer = 3.0

	strongInterestThreshold = 70.0
	strongAptitudeThreshold = 75.0
	maxStrengths            = 5
)

// scaleWords maps recognized textual answers to the 1-5 scale.
var scaleWords = map[string]float64{
	"strongly agree":    5,
	"agree":             4,
	"neutral":           3,
	"neither":           3,
	"disagree":          2,
	"strongly disagree": 1,
	"yes":               5,
	"true":              5,
	"no":                1,
	"false":             1,
}

// answerScale resolves a raw answer value to the 1-5 numeric scale.
// Numbers pass through clamped, recognized scale words map to fixed
// constants, and anything unparsable defaults to neutral so one malformed
// answer never aborts the whole extraction.
func answerScale(raw interface{}) float64 {
	switch v := raw.(type) {
	case float64:
		return clampAnswer(v)
	case float32:
		return clampAnswer(float64(v))
	case int:
		return clampAnswer(float64(v))
	case int64:
		return clampAnswer(float64(v))
	case bool:
		if v {
			return answerMax
		}
		return answerMin
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if n, ok := scaleWords[s]; ok {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return clampAnswer(f)
		}
		return neutralAnswer
	default:
		return neutralAnswer
	}
}

func clampAnswer(v float64) float64 {
	if v < answerMin {
		return answerMin
	}
	if v > answerMax {
		return answerMax
	}
	return v
}

// dimensionTotals accumulates weighted answer totals per profile dimension.
type dimensionTotals struct {
	total     float64
	weightSum float64
	count     int
}

// ExtractProfile derives a NormalizedProfile from raw answer sets. Every
// dimension is reported on the 0-100 scale; personality is rescaled here so
// all downstream lookups share one convention. Zero answer sets produce an
// empty profile, which scorers treat as neutral signal rather than zero.
func ExtractProfile(sets []models.TestAnswerSet) models.NormalizedProfile {
	profile := models.NormalizedProfile{
		Personality: map[string]float64{},
		Interests:   map[string]float64{},
		Aptitudes:   map[string]float64{},
	}

	personality := map[string]*dimensionTotals{}
	interests := map[string]*dimensionTotals{}
	aptitudes := map[string]*dimensionTotals{}

	for _, set := range sets {
		for questionID, raw := range set.Answers {
			numeric := answerScale(raw)

			weight := 1.0
			if w, ok := set.Weights[questionID]; ok && w > 0 {
				weight = w
			}

			dimension := strings.ToLower(set.Questions[questionID])
			if dimension == "" {
				dimension = defaultDimension(set.Category)
			}

			var bucket map[string]*dimensionTotals
			switch set.Category {
			case models.TestCategoryPersonality:
				bucket = personality
			case models.TestCategoryInterest:
				bucket = interests
			case models.TestCategoryAptitude:
				bucket = aptitudes
			default:
				// Generic tests contribute to interests under their
				// declared question dimension.
				bucket = interests
			}

			acc, ok := bucket[dimension]
			if !ok {
				acc = &dimensionTotals{}
				bucket[dimension] = acc
			}
			acc.total += numeric * weight
			acc.weightSum += weight
			acc.count++
		}
	}

	for dim, acc := range personality {
		profile.Personality[dim] = meanScore(acc)
	}
	for dim, acc := range interests {
		profile.Interests[dim] = meanScore(acc)
	}
	for dim, acc := range aptitudes {
		profile.Aptitudes[dim] = aptitudeScore(acc)
	}

	profile.Strengths = deriveStrengths(profile)
	return profile
}

// meanScore is the weighted mean answer rescaled to 0-100.
func meanScore(acc *dimensionTotals) float64 {
	if acc.weightSum == 0 {
		return 0
	}
	return clampScore((acc.total / acc.weightSum) * 20)
}

// aptitudeScore normalizes the weighted total against the maximum possible
// total for the answered questions.
func aptitudeScore(acc *dimensionTotals) float64 {
	if acc.count == 0 {
		return 0
	}
	return clampScore((acc.total / (float64(acc.count) * answerMax)) * 100)
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func defaultDimension(cat models.TestCategory) string {
	switch cat {
	case models.TestCategoryPersonality:
		return "general"
	case models.TestCategoryAptitude:
		return "logical"
	default:
		return "investigative"
	}
}

type strength struct {
	label    string
	category string
	score    float64
}

// deriveStrengths picks the highest-scoring interest and aptitude
// dimensions above their thresholds, at most five labels.
func deriveStrengths(profile models.NormalizedProfile) []string {
	var found []strength
	for cat, score := range profile.Interests {
		if score >= strongInterestThreshold {
			found = append(found, strength{
				label:    fmt.Sprintf("high interest in %s", cat),
				category: cat,
				score:    score,
			})
		}
	}
	for cat, score := range profile.Aptitudes {
		if score >= strongAptitudeThreshold {
			found = append(found, strength{
				label:    fmt.Sprintf("strong %s ability", cat),
				category: cat,
				score:    score,
			})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].score != found[j].score {
			return found[i].score > found[j].score
		}
		return found[i].category < found[j].category
	})

	if len(found) > maxStrengths {
		found = found[:maxStrengths]
	}

	labels := make([]string, 0, len(found))
	for _, s := range found {
		labels = append(labels, s.label)
	}
	return labels
}

// StrongCategories returns the interest and aptitude dimensions above the
// strength thresholds. The program scorer uses these for field-match
// bonuses.
func StrongCategories(profile models.NormalizedProfile) []string {
	var cats []string
	for _, cat := range InterestCategories {
		if profile.Interests[cat] >= strongInterestThreshold {
			cats = append(cats, cat)
		}
	}
	for _, cat := range AptitudeCategories {
		if profile.Aptitudes[cat] >= strongAptitudeThreshold {
			cats = append(cats, cat)
		}
	}
	return cats
}

// CompletedAssessments counts answer sets flagged as completed that carry
// at least one answer.
func CompletedAssessments(sets []models.TestAnswerSet) int {
	n := 0
	for _, set := range sets {
		if set.Completed && len(set.Answers) > 0 {
			n++
		}
	}
	return n
}

// MeanTestScore is the mean of all normalized category scores, used by the
// program scorer's test component. Empty profiles return 0.
func MeanTestScore(profile models.NormalizedProfile) float64 {
	total, count := 0.0, 0
	for _, m := range []map[string]float64{profile.Personality, profile.Interests, profile.Aptitudes} {
		for _, score := range m {
			total += score
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
