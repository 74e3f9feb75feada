// internal/workers/guidance/options.go
package guidance

import (
	"guidance-workers/internal/common/config"
	"guidance-workers/internal/matching"
)

// Options builds engine options from the matching config section.
// Unset values keep the engine defaults.
func Options(m config.MatchingConfig) matching.Options {
	opts := matching.DefaultOptions()

	if m.InterestWeight > 0 {
		opts.InterestWeight = m.InterestWeight
	}
	if m.AptitudeWeight > 0 {
		opts.AptitudeWeight = m.AptitudeWeight
	}
	if m.PersonalityWeight > 0 {
		opts.PersonalityWeight = m.PersonalityWeight
	}

	if m.AcademicWeight > 0 {
		opts.AcademicWeight = m.AcademicWeight
	}
	if m.ExamBoardWeight > 0 {
		opts.ExamBoardWeight = m.ExamBoardWeight
	}
	if m.TestWeight > 0 {
		opts.TestWeight = m.TestWeight
	}
	if m.FieldBonus > 0 {
		opts.FieldBonus = m.FieldBonus
	}

	if m.CareerMinScore > 0 {
		opts.CareerMinScore = int(m.CareerMinScore)
	}
	if m.ProgramMinScore > 0 {
		opts.ProgramMinScore = int(m.ProgramMinScore)
	}
	if m.MaxResults > 0 {
		opts.MaxResults = m.MaxResults
	}
	if m.ProgramMaxResults > 0 {
		opts.ProgramMaxResults = m.ProgramMaxResults
	}
	if m.MinAssessments > 0 {
		opts.MinAssessments = m.MinAssessments
	}

	if len(m.FieldKeywords) > 0 {
		opts.FieldKeywords = m.FieldKeywords
	}

	return opts
}
