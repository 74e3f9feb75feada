// internal/workers/data-access/search-catalog/handler.go
package searchcatalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"

	cerrors "guidance-workers/internal/common/errors"
	"guidance-workers/internal/common/logger"
	"guidance-workers/internal/common/metrics"
	"guidance-workers/internal/workers/data-access/search-catalog/queries"
)

const (
	TaskType = "search-catalog"
)

var (
	ErrElasticsearchConnectionFailed = errors.New("ELASTICSEARCH_CONNECTION_FAILED")
	ErrSearchQueryFailed             = errors.New("SEARCH_QUERY_FAILED")
	ErrSearchTimeout                 = errors.New("SEARCH_TIMEOUT")
	ErrIndexNotFound                 = errors.New("INDEX_NOT_FOUND")
)

type Handler struct {
	config *Config
	client *elasticsearch.Client
	redis  *redis.Client
	logger logger.Logger
	errs   *cerrors.ErrorHandler
}

func NewHandler(config *Config, client *elasticsearch.Client, rdb *redis.Client, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config: config,
		client: client,
		redis:  rdb,
		logger: l,
		errs:   cerrors.NewErrorHandler(l),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.errs.HandleJobError(context.Background(), client, job, cerrors.NewParseError(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.errs.HandleJobError(context.Background(), client, job, h.classifyError(&input, err))
		return
	}

	h.completeJob(client, job, output)
}

// execute runs one catalog search, consulting the result cache first. The
// index defaults per search kind so callers only name one for related
// lookups or non-standard indices. Cache failures are invisible to the
// caller, the search just goes to Elasticsearch.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	cq := queries.CatalogQuery{
		Index:    h.resolveIndex(input),
		Kind:     input.SearchKind,
		Filters:  input.Filters,
		EntryID:  input.EntryID,
		Category: input.Category,
	}
	cq.Pagination.From = input.Pagination.From
	cq.Pagination.Size = input.Pagination.Size
	if cq.Filters == nil {
		cq.Filters = map[string]interface{}{}
	}

	cacheKey := h.cacheKey(input)
	if cached, ok := h.fromCache(ctx, cacheKey); ok {
		metrics.CatalogCacheHits.WithLabelValues(input.SearchKind, "hit").Inc()
		cached.Cached = true
		return cached, nil
	}
	metrics.CatalogCacheHits.WithLabelValues(input.SearchKind, "miss").Inc()

	result, err := queries.Execute(ctx, h.client, cq)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrSearchTimeout
		}
		if errors.Is(err, queries.ErrMissingIndex) {
			return nil, ErrIndexNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrSearchQueryFailed, err)
	}

	output := &Output{
		Data:      result.Data,
		TotalHits: result.TotalHits,
		MaxScore:  result.MaxScore,
		Took:      result.Took,
	}
	h.toCache(ctx, cacheKey, output)

	return output, nil
}

func (h *Handler) resolveIndex(input *Input) string {
	if input.IndexName != "" {
		return input.IndexName
	}
	switch input.SearchKind {
	case queries.KindCareers:
		return h.config.CareerIndex
	case queries.KindPrograms:
		return h.config.ProgramIndex
	}
	return ""
}

func (h *Handler) cacheKey(input *Input) string {
	raw, _ := json.Marshal(input)
	return "guidance:catalog:search:" + string(raw)
}

func (h *Handler) fromCache(ctx context.Context, key string) (*Output, bool) {
	if h.redis == nil {
		return nil, false
	}
	val, err := h.redis.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var output Output
	if err := json.Unmarshal([]byte(val), &output); err != nil {
		return nil, false
	}
	return &output, true
}

func (h *Handler) toCache(ctx context.Context, key string, output *Output) {
	if h.redis == nil {
		return
	}
	raw, err := json.Marshal(output)
	if err != nil {
		return
	}
	if err := h.redis.Set(ctx, key, raw, h.config.CacheTTL).Err(); err != nil {
		h.logger.Warn("failed to cache search result", map[string]interface{}{
			"error": err,
		})
	}
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

// classifyError maps execute failures onto the shared error taxonomy so
// retry budgets stay consistent across workers.
func (h *Handler) classifyError(input *Input, err error) *cerrors.StandardError {
	switch {
	case errors.Is(err, ErrIndexNotFound):
		return cerrors.NewIndexNotFoundError(h.resolveIndex(input))
	case errors.Is(err, ErrSearchTimeout):
		return cerrors.NewSearchTimeoutError(input.SearchKind)
	case errors.Is(err, ErrElasticsearchConnectionFailed):
		return cerrors.NewElasticsearchConnectionFailedError(err)
	default:
		return cerrors.NewSearchQueryFailedError(input.SearchKind, err)
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
