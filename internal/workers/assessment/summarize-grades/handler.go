// internal/workers/assessment/summarize-grades/handler.go
package summarizegrades

import (
	"context"
	"database/sql"
	"encoding/json"

	"guidance-workers/internal/common/errors"
	"guidance-workers/internal/common/logger"
	"guidance-workers/internal/matching"
	"guidance-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "summarize-grades"
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
		h.errs.HandleJobError(context.Background(), client, job, errors.NewMalformedRecordError("gradeRecords", err.Error()))
		return
	}

	h.completeJob(client, job, output)
}

// execute aggregates grade records into per-track averages. Records absent
// from the input are fetched from the records store by studentId; fetch
// errors degrade to an empty summary rather than fail the job. Records
// outside their grade type's valid range are skipped, never fatal.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	grades := input.Grades
	if len(grades) == 0 && input.UserID != "" && h.db != nil {
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

	used, skipped := 0, 0
	for _, rec := range grades {
		if rec.Valid() {
			used++
		} else {
			skipped++
		}
	}

	summary := matching.SummarizeGrades(grades)

	if skipped > 0 {
		h.logger.Warn("skipped invalid grade records", map[string]interface{}{
			"userId":  input.UserID,
			"skipped": skipped,
		})
	}

	h.logger.Info("grades summarized", map[string]interface{}{
		"userId":  input.UserID,
		"overall": summary.Overall,
		"used":    used,
	})

	return &Output{
		Summary:        summary,
		RecordsUsed:    used,
		RecordsSkipped: skipped,
	}, nil
}

func (h *Handler) getGrades(ctx context.Context, userID string) ([]models.GradeRecord, error) {
	rows, err := h.db.QueryContext(ctx, `
		SELECT subject_name, numeric_grade, grade_type, is_core_subject, year_taken
		FROM grade_records WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []models.GradeRecord
	for rows.Next() {
		var rec models.GradeRecord
		if err := rows.Scan(&rec.Subject, &rec.Grade, &rec.Type, &rec.CoreSubject, &rec.Year); err != nil {
			return nil, err
		}
		grades = append(grades, rec)
	}
	return grades, rows.Err()
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
