// internal/matching/program.go
package matching

import (
	"fmt"
	"math"
	"strings"

	"guidance-workers/internal/models"
)

// testStepScore maps the mean test score to the test component of the
// combined program formula.
func testStepScore(mean float64) float64 {
	switch {
	case mean >= 80:
		return 90
	case mean >= 70:
		return 80
	case mean >= 60:
		return 70
	case mean >= 50:
		return 60
	default:
		return 40
	}
}

// fieldMatchBonus returns the bonus when the program's name or faculty text
// contains a keyword tied to one of the student's strong categories.
func fieldMatchBonus(program models.ProgramCatalogEntry, strong []string, opts Options) float64 {
	if len(strong) == 0 {
		return 0
	}
	haystack := strings.ToLower(program.Name + " " + program.Faculty)
	for _, cat := range strong {
		for _, kw := range opts.FieldKeywords[cat] {
			if strings.Contains(haystack, kw) {
				return opts.FieldBonus
			}
		}
	}
	return 0
}

// minimumGradeFor prefers the catalog's own grade gate and falls back to
// the reference bucket's when the catalog row carries none.
func minimumGradeFor(program models.ProgramCatalogEntry, ref ProgramReference) float64 {
	if program.MinimumGrade > 0 {
		return program.MinimumGrade
	}
	if ref.MinimumGrade > 0 {
		return ref.MinimumGrade
	}
	return defaultMinimumGrade
}

// MatchPrograms ranks the program catalog against the student's grades and
// test results. ModeBoth automatically degrades to the grades-only formula
// when fewer completed assessments exist than the configured minimum.
// Programs whose grade gap is beyond the ladder are excluded; empty inputs
// degrade to the fixed fallback list.
func MatchPrograms(grades []models.GradeRecord, tests []models.TestAnswerSet, programs []models.ProgramCatalogEntry, mode Mode, opts Options) []models.MatchResult {
	if len(programs) == 0 {
		return FallbackPrograms()
	}

	completed := CompletedAssessments(tests)
	if mode == ModeBoth && completed < opts.MinAssessments {
		mode = ModeGrades
	}
	if mode == ModeTests && completed < opts.MinAssessments {
		return FallbackPrograms()
	}
	if mode == ModeGrades && len(grades) == 0 {
		return FallbackPrograms()
	}

	averages := aggregateGrades(grades)
	profile := ExtractProfile(tests)
	strong := StrongCategories(profile)
	meanTest := MeanTestScore(profile)

	results := make([]models.MatchResult, 0, len(programs))
	for _, program := range programs {
		ref := LookupProgramProfile(program.Name, program.Faculty)
		minGrade := minimumGradeFor(program, ref)

		var result models.MatchResult
		var ok bool
		switch mode {
		case ModeTests:
			result, ok = scoreProgramTests(program, ref, profile, opts)
		case ModeGrades:
			result, ok = scoreProgramGrades(program, minGrade, averages)
		default:
			result, ok = scoreProgramCombined(program, minGrade, averages, meanTest, strong, opts)
		}
		if !ok {
			continue
		}
		results = append(results, result)
	}

	return Assemble(results, opts.ProgramMinScore, opts.ProgramMaxResults)
}

// scoreProgramGrades is the single-signal mode: the eligibility ladder
// alone, weight 1.0.
func scoreProgramGrades(program models.ProgramCatalogEntry, minGrade float64, averages gradeAverages) (models.MatchResult, bool) {
	if averages.overallCount == 0 {
		return models.MatchResult{}, false
	}
	class, ok := Classify(averages.overall, minGrade)
	if !ok {
		return models.MatchResult{}, false
	}
	return programResult(program, int(math.Round(class.Score)), class.Status, gradeReason(class)), true
}

// scoreProgramTests matches interest and aptitude only, the career formula
// applied to the program's reference profile. No grade signal means no
// eligibility status on the result.
func scoreProgramTests(program models.ProgramCatalogEntry, ref ProgramReference, profile models.NormalizedProfile, opts Options) (models.MatchResult, bool) {
	score, _ := scoreCareer(profile, ref.ReferenceProfile, opts)
	result := programResult(program, score, "", matchReason(profile, score))
	return result, true
}

// scoreProgramCombined applies the documented weighted formula: academic
// and exam-board ladder components, the test step component, and the
// field-match bonus. The exam-board component reuses the academic one when
// no board records exist.
func scoreProgramCombined(program models.ProgramCatalogEntry, minGrade float64, averages gradeAverages, meanTest float64, strong []string, opts Options) (models.MatchResult, bool) {
	if averages.overallCount == 0 {
		return models.MatchResult{}, false
	}

	academic, ok := Classify(averages.overall, minGrade)
	if !ok {
		return models.MatchResult{}, false
	}

	board := academic
	if averages.examBoardCount > 0 {
		if b, boardOK := Classify(averages.examBoard, minGrade); boardOK {
			board = b
		} else {
			return models.MatchResult{}, false
		}
	}

	testComponent := testStepScore(meanTest)
	bonus := fieldMatchBonus(program, strong, opts)

	combined := academic.Score*opts.AcademicWeight +
		board.Score*opts.ExamBoardWeight +
		testComponent*opts.TestWeight +
		bonus

	score := int(math.Round(math.Min(combined, 100)))
	reason := combinedReason(academic, bonus)
	return programResult(program, score, academic.Status, reason), true
}

func programResult(program models.ProgramCatalogEntry, score int, status models.EligibilityStatus, reason string) models.MatchResult {
	duration := ""
	if program.DurationYears > 0 {
		duration = fmt.Sprintf("%d years", program.DurationYears)
	}
	return models.MatchResult{
		EntityID:    program.ID,
		Title:       program.Name,
		MatchScore:  score,
		MatchReason: reason,
		Category:    program.Category,
		University:  program.University,
		Duration:    duration,
		Eligibility: status,
	}
}

func gradeReason(class Classification) string {
	switch class.Status {
	case models.EligibilityEligible:
		return "Your grades meet the admission requirement"
	case models.EligibilityClose:
		return fmt.Sprintf("You are %.1f points from the required average", class.Gap)
	case models.EligibilityNeedsWork:
		return "Reachable with improved grades this year"
	default:
		return "Consider this alongside alternative programs"
	}
}

func combinedReason(academic Classification, bonus float64) string {
	if bonus > 0 {
		return "Strong field match with your test profile and grades"
	}
	return gradeReason(academic)
}
