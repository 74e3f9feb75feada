// internal/matching/career.go
package matching

import (
	"fmt"
	"math"

	"guidance-workers/internal/models"
)

const neutralSubScore = 0.5

// subScores holds the three component scores of a career match, each on
// the 0-1 scale (aptitude may exceed 1 before the final clamp), plus
// whether the component had any signal to score on.
type subScores struct {
	interest    float64
	aptitude    float64
	personality float64

	hasInterest    bool
	hasAptitude    bool
	hasPersonality bool
}

// interestMatch accumulates user interest against the reference weights.
// A user with no interest signal at all scores neutral rather than zero.
func interestMatch(profile models.NormalizedProfile, ref ReferenceProfile) (float64, bool) {
	if len(ref.InterestWeights) == 0 {
		return 0, false
	}
	if len(profile.Interests) == 0 {
		return neutralSubScore, true
	}

	num, den := 0.0, 0.0
	for cat, weight := range ref.InterestWeights {
		user, ok := profile.Interests[cat]
		if !ok {
			continue
		}
		num += (user / 100) * weight
		den += weight
	}
	if den == 0 {
		return neutralSubScore, true
	}
	return num / den, true
}

// aptitudeMatch compares user aptitude against required levels. Exceeding a
// requirement counts up to 1.5x so one very strong dimension can offset a
// slightly weak one.
func aptitudeMatch(profile models.NormalizedProfile, ref ReferenceProfile) (float64, bool) {
	if len(ref.AptitudeRequirements) == 0 {
		return 0, false
	}
	if len(profile.Aptitudes) == 0 {
		return neutralSubScore, true
	}

	num, den := 0.0, 0.0
	for cat, required := range ref.AptitudeRequirements {
		if required <= 0 {
			continue
		}
		user, ok := profile.Aptitudes[cat]
		if !ok {
			continue
		}
		ratio := math.Min(user/required, 1.5)
		num += ratio * required
		den += required
	}
	if den == 0 {
		return neutralSubScore, true
	}
	return num / den, true
}

// personalityMatch scores distance from the ideal trait ranges. Inside the
// range is a full score; outside it decays linearly, reaching zero at 50
// points (the 2.5 decay on the 1-5 scale, mapped to 0-100).
func personalityMatch(profile models.NormalizedProfile, ref ReferenceProfile) (float64, bool) {
	if len(ref.PersonalityRanges) == 0 {
		return 0, false
	}
	if len(profile.Personality) == 0 {
		return neutralSubScore, true
	}

	total, count := 0.0, 0
	for trait, rng := range ref.PersonalityRanges {
		user, ok := profile.Personality[trait]
		if !ok {
			continue
		}
		distance := 0.0
		if user < rng.Low {
			distance = rng.Low - user
		} else if user > rng.High {
			distance = user - rng.High
		}
		total += math.Max(0, 1-distance/50)
		count++
	}
	if count == 0 {
		return neutralSubScore, true
	}
	return total / float64(count), true
}

// scoreCareer combines the three sub-scores with the configured weights,
// re-normalizing over the components that had signal, and returns the final
// 0-100 integer score.
func scoreCareer(profile models.NormalizedProfile, ref ReferenceProfile, opts Options) (int, subScores) {
	var sub subScores
	sub.interest, sub.hasInterest = interestMatch(profile, ref)
	sub.aptitude, sub.hasAptitude = aptitudeMatch(profile, ref)
	sub.personality, sub.hasPersonality = personalityMatch(profile, ref)

	num, den := 0.0, 0.0
	if sub.hasInterest {
		num += sub.interest * opts.InterestWeight
		den += opts.InterestWeight
	}
	if sub.hasAptitude {
		num += sub.aptitude * opts.AptitudeWeight
		den += opts.AptitudeWeight
	}
	if sub.hasPersonality {
		num += sub.personality * opts.PersonalityWeight
		den += opts.PersonalityWeight
	}
	if den == 0 {
		return 50, sub
	}

	score := int(math.Round((num / den) * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, sub
}

// matchReason renders the explanation for a score: the highest-signal
// contributing factor if one clears its threshold, otherwise a score-tier
// sentence.
func matchReason(profile models.NormalizedProfile, score int) string {
	if cat, best := topAptitude(profile); best >= 80 {
		return fmt.Sprintf("Your strong %s ability makes this a great match", cat)
	}
	if cat, best := topInterest(profile); best >= strongInterestThreshold {
		return fmt.Sprintf("Matches your high interest in %s activities", cat)
	}

	switch {
	case score >= 85:
		return "Excellent fit with your overall profile"
	case score >= 70:
		return "Good potential based on your assessment results"
	default:
		return "Worth considering alongside your stronger matches"
	}
}

// topAptitude iterates the fixed category list so ties resolve
// deterministically.
func topAptitude(profile models.NormalizedProfile) (string, float64) {
	bestCat, best := "", -1.0
	for _, cat := range AptitudeCategories {
		if score, ok := profile.Aptitudes[cat]; ok && score > best {
			bestCat, best = cat, score
		}
	}
	return bestCat, best
}

func topInterest(profile models.NormalizedProfile) (string, float64) {
	bestCat, best := "", -1.0
	for _, cat := range InterestCategories {
		if score, ok := profile.Interests[cat]; ok && score > best {
			bestCat, best = cat, score
		}
	}
	return bestCat, best
}

// MatchCareers scores a catalog of careers against the profile derived
// from the given answer sets and returns the ranked recommendation list.
// Fewer completed assessments than the configured minimum, or an empty
// catalog, degrade to the fixed fallback list instead of failing.
func MatchCareers(tests []models.TestAnswerSet, catalog []models.CareerCatalogEntry, opts Options) []models.MatchResult {
	if CompletedAssessments(tests) < opts.MinAssessments {
		return FallbackCareers()
	}
	if len(catalog) == 0 {
		return FallbackCareers()
	}

	profile := ExtractProfile(tests)

	results := make([]models.MatchResult, 0, len(catalog))
	for _, entry := range catalog {
		ref := LookupCareerProfile(entry.Title, entry.Category)
		score, _ := scoreCareer(profile, ref, opts)
		results = append(results, models.MatchResult{
			EntityID:    entry.ID,
			Title:       entry.Title,
			MatchScore:  score,
			MatchReason: matchReason(profile, score),
			Category:    entry.Category,
			SalaryRange: entry.SalaryRange,
		})
	}

	return Assemble(results, opts.CareerMinScore, opts.MaxResults)
}
