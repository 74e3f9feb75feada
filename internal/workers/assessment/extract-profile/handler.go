// internal/workers/assessment/extract-profile/handler.go
package extractprofile

import (
	"context"
	"encoding/json"

	"guidance-workers/internal/common/errors"
	"guidance-workers/internal/common/logger"
	"guidance-workers/internal/matching"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "extract-profile"
)

type Handler struct {
	config *Config
	logger logger.Logger
	errs   *errors.ErrorHandler
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config: config,
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
		h.errs.HandleJobError(context.Background(), client, job, errors.NewMalformedRecordError("testResults", err.Error()))
		return
	}

	h.completeJob(client, job, output)
}

// execute never fails on bad answer values. Unreadable answers resolve to
// the neutral scale point inside the engine, so a partially broken answer
// set still yields a usable profile.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	profile := matching.ExtractProfile(input.Tests)
	completed := matching.CompletedAssessments(input.Tests)

	if profile.IsEmpty() {
		h.logger.Warn("no usable assessment signal", map[string]interface{}{
			"userId":    input.UserID,
			"testCount": len(input.Tests),
		})
	}

	output := &Output{
		Profile:              profile,
		CompletedAssessments: completed,
		MeanTestScore:        matching.MeanTestScore(profile),
		StrongCategories:     matching.StrongCategories(profile),
	}

	h.logger.Info("profile extracted", map[string]interface{}{
		"userId":               input.UserID,
		"completedAssessments": completed,
		"strengths":            len(profile.Strengths),
	})

	return output, nil
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
