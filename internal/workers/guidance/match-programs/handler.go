// internal/workers/guidance/match-programs/handler.go
package matchprograms

import (
	"context"
	"database/sql"
	"encoding/json"

	"guidance-workers/internal/common/errors"
	"guidance-workers/internal/common/logger"
	"guidance-workers/internal/common/metrics"
	"guidance-workers/internal/matching"
	"guidance-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "match-programs"
)

type Handler struct {
	config *Config
	db     *sql.DB
	redis  *redis.Client
	logger logger.Logger
	errs   *errors.ErrorHandler
}

func NewHandler(config *Config, db *sql.DB, redis *redis.Client, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config: config,
		db:     db,
		redis:  redis,
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
		h.errs.HandleJobError(context.Background(), client, job, errors.NewCatalogUnavailableError("programs", err))
		return
	}

	h.completeJob(client, job, output)
}

// execute ranks the program catalog using grades, tests, or both. Records
// missing from the input are fetched from the records store; fetch errors
// degrade the signal rather than fail the job, and the engine falls back
// to the curated list when nothing is left to score on.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	mode := normalizeMode(input.Mode)

	grades := input.Grades
	if len(grades) == 0 && input.UserID != "" && mode != matching.ModeTests {
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

	tests := input.Tests
	if len(tests) == 0 && input.UserID != "" && mode != matching.ModeGrades {
		fetched, err := h.getTests(ctx, input.UserID)
		if err != nil {
			h.logger.Warn("failed to fetch assessment results", map[string]interface{}{
				"userId": input.UserID,
				"error":  err,
			})
		} else {
			tests = fetched
		}
	}

	results := matching.MatchPrograms(grades, tests, input.Programs, mode, h.config.Options)

	fallback := len(results) > 0 && results[0].Fallback
	if fallback {
		reason := "insufficient_signal"
		if len(input.Programs) == 0 {
			reason = "empty_catalog"
		}
		metrics.FallbackRecommendations.WithLabelValues("programs", reason).Inc()
	}
	metrics.RecommendationsProduced.WithLabelValues("programs").Inc()

	h.logger.Info("programs matched", map[string]interface{}{
		"userId":   input.UserID,
		"mode":     string(mode),
		"count":    len(results),
		"fallback": fallback,
	})

	return &Output{
		Recommendations: results,
		Count:           len(results),
		Mode:            string(mode),
		Fallback:        fallback,
	}, nil
}

// normalizeMode maps the free-form input mode to a known Mode, defaulting
// to combined matching.
func normalizeMode(mode string) matching.Mode {
	switch matching.Mode(mode) {
	case matching.ModeGrades:
		return matching.ModeGrades
	case matching.ModeTests:
		return matching.ModeTests
	default:
		return matching.ModeBoth
	}
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

// getTests loads the user's completed assessments, Redis first.
func (h *Handler) getTests(ctx context.Context, userID string) ([]models.TestAnswerSet, error) {
	cacheKey := "guidance:tests:" + userID
	if val, err := h.redis.Get(ctx, cacheKey).Result(); err == nil {
		var tests []models.TestAnswerSet
		if err := json.Unmarshal([]byte(val), &tests); err == nil {
			return tests, nil
		}
	}

	rows, err := h.db.QueryContext(ctx, `
		SELECT test_id, test_category, answers, question_weights, question_categories, completed
		FROM assessment_results WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tests []models.TestAnswerSet
	for rows.Next() {
		var set models.TestAnswerSet
		var answers, weights, categories []byte
		if err := rows.Scan(&set.TestID, &set.Category, &answers, &weights, &categories, &set.Completed); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(answers, &set.Answers); err != nil {
			set.Answers = map[string]interface{}{}
		}
		if len(weights) > 0 {
			_ = json.Unmarshal(weights, &set.Weights)
		}
		if len(categories) > 0 {
			_ = json.Unmarshal(categories, &set.Questions)
		}
		tests = append(tests, set)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	data, _ := json.Marshal(tests)
	h.redis.Set(ctx, cacheKey, data, h.config.CacheTTL)

	return tests, nil
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
