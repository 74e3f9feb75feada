// internal/workers/guidance/check-program-eligibility/handler.go
package checkprogrameligibility

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"

	"guidance-workers/internal/common/errors"
	"guidance-workers/internal/common/logger"
	"guidance-workers/internal/matching"
	"guidance-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "check-program-eligibility"
)

type Handler struct {
	config *Config
	db     *sql.DB
	logger logger.Logger
	errs   *errors.ErrorHandler
}

func NewHandler(config *Config, db *sql.DB, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config: config,
		db:     db,
		logger: l,
		errs:   errors.NewErrorHandler(l),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.errs.HandleJobError(context.Background(), client, job, errors.NewParseError(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.errs.HandleJobError(context.Background(), client, job, errors.NewInsufficientDataError(err.Error()))
		return
	}

	h.completeJob(client, job, output)
}

// execute classifies the student against every program in the catalog. The
// average grade comes from the input when the caller already computed it,
// otherwise it is derived from grade records, fetching them from the
// records store when absent. A missing average yields unrecommendable
// verdicts for every program instead of an error.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	avg := input.AverageGrade
	if avg == 0 {
		grades := input.Grades
		if len(grades) == 0 && input.UserID != "" {
			fetched, err := h.getGrades(ctx, input.UserID)
			if err != nil {
				h.logger.Warn("failed to fetch grade records", map[string]interface{}{
					"userId": input.UserID,
					"error":  err,
				})
			} else {
				grades = fetched
			}
		}
		avg = matching.SummarizeGrades(grades).Overall
	}

	if avg == 0 {
		h.logger.Warn("no average grade available", map[string]interface{}{
			"userId": input.UserID,
		})
	}

	results := make([]EligibilityResult, 0, len(input.Programs))
	eligible := 0
	for _, program := range input.Programs {
		min := program.MinimumGrade
		if min <= 0 {
			min = matching.LookupProgramProfile(program.Name, program.Faculty).MinimumGrade
		}

		result := EligibilityResult{
			ProgramID:    program.ID,
			ProgramName:  program.Name,
			MinimumGrade: min,
			Gap:          round2(min - avg),
		}
		if class, ok := matching.Classify(avg, min); ok {
			result.Status = class.Status
			result.Recommendable = true
			if class.Status == models.EligibilityEligible {
				eligible++
			}
		}
		results = append(results, result)
	}

	h.logger.Info("eligibility checked", map[string]interface{}{
		"userId":       input.UserID,
		"averageGrade": avg,
		"programs":     len(results),
		"eligible":     eligible,
	})

	return &Output{
		AverageGrade:  round2(avg),
		Results:       results,
		EligibleCount: eligible,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (h *Handler) getGrades(ctx context.Context, userID string) ([]models.GradeRecord, error) {
	rows, err := h.db.QueryContext(ctx, `
		SELECT subject_name, numeric_grade, grade_type, is_core_subject, year_taken
		FROM grade_records WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("query grade records: %w", err)
	}
	defer rows.Close()

	var grades []models.GradeRecord
	for rows.Next() {
		var g models.GradeRecord
		if err := rows.Scan(&g.Subject, &g.Grade, &g.Type, &g.CoreSubject, &g.Year); err != nil {
			return nil, fmt.Errorf("scan grade record: %w", err)
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.errs.HandleJobError(context.Background(), client, job, errors.NewParseError(fmt.Errorf("serialize output: %w", err)))
		return
	}

	if _, err := cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to complete job", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		return
	}

	h.logger.Info("job completed", map[string]interface{}{
		"jobKey": job.Key,
	})
}

// Execute runs the eligibility check outside the job lifecycle.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
