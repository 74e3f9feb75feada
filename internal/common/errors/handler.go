// internal/common/errors/handler.go
package errors

import (
	"context"
	"encoding/json"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

// Logger is the minimal logging surface the handler needs; the common
// logger.Logger satisfies it.
type Logger interface {
	Error(msg string, fields map[string]interface{})
}

// ErrorHandler turns worker failures into Zeebe commands: retryable codes
// fail the job with a bounded retry budget, everything else throws a BPMN
// error the process model can catch.
type ErrorHandler struct {
	logger Logger
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// HandleJobError classifies err against the shared taxonomy and reports it
// to Zeebe. Plain errors are treated as non-retryable internal failures.
func (h *ErrorHandler) HandleJobError(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	stdErr := h.normalizeError(err)
	bpmnErr := ConvertToBPMNError(stdErr)

	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"taskType":     job.Type,
		"errorCode":    string(stdErr.Code),
		"errorMessage": bpmnErr.Message,
		"details":      stdErr.Details,
		"retryable":    stdErr.Retryable,
		"retries":      bpmnErr.Retries,
		"category":     GetErrorCategory(stdErr.Code),
		"workflowKey":  job.ProcessInstanceKey,
	})

	if bpmnErr.Retries > 0 && job.Retries > 0 {
		h.failWithRetries(ctx, client, job, bpmnErr)
		return
	}
	h.throwBPMNError(ctx, client, job, bpmnErr)
}

func (h *ErrorHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func (h *ErrorHandler) failWithRetries(ctx context.Context, client worker.JobClient, job entities.Job, bpmnErr *BPMNError) {
	// Zeebe treats the retries value as the job's total remaining budget.
	// Never extend what the deployment granted.
	retries := bpmnErr.Retries
	if int(job.Retries) < retries {
		retries = int(job.Retries)
	}

	cmd := client.NewFailJobCommand().
		JobKey(job.Key).
		Retries(int32(retries)).
		ErrorMessage(bpmnErr.Message)

	if varCmd, err := cmd.VariablesFromMap(bpmnErr.ToErrorVariables()); err == nil {
		if _, sendErr := varCmd.Send(ctx); sendErr != nil {
			h.logFailedReport(job, sendErr)
		}
		return
	}
	if _, sendErr := cmd.Send(ctx); sendErr != nil {
		h.logFailedReport(job, sendErr)
	}
}

func (h *ErrorHandler) throwBPMNError(ctx context.Context, client worker.JobClient, job entities.Job, bpmnErr *BPMNError) {
	cmd := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(bpmnErr.Code).
		ErrorMessage(bpmnErr.Message)

	if raw, err := json.Marshal(bpmnErr.ToErrorVariables()); err == nil {
		if varCmd, varErr := cmd.VariablesFromString(string(raw)); varErr == nil {
			if _, sendErr := varCmd.Send(ctx); sendErr != nil {
				h.logFailedReport(job, sendErr)
			}
			return
		}
	}
	if _, sendErr := cmd.Send(ctx); sendErr != nil {
		h.logFailedReport(job, sendErr)
	}
}

func (h *ErrorHandler) logFailedReport(job entities.Job, err error) {
	h.logger.Error("failed to report job error", map[string]interface{}{
		"jobKey": job.Key,
		"error":  err,
	})
}
