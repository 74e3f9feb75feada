package searchcatalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "guidance-workers/internal/common/errors"
	"guidance-workers/internal/common/logger"
)

func createTestConfig() *Config {
	return &Config{
		Timeout:      5 * time.Second,
		CareerIndex:  "careers",
		ProgramIndex: "programs",
		CacheTTL:     time.Minute,
	}
}

func newTestHandler(t *testing.T) (*Handler, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewHandler(createTestConfig(), nil, rdb, logger.NewTestLogger(t)), mr
}

func TestExecuteNilInput(t *testing.T) {
	h, _ := newTestHandler(t)

	output, err := h.Execute(context.Background(), nil)
	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestExecuteUnresolvableIndex(t *testing.T) {
	h, _ := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		SearchKind: "related_entries",
	})
	assert.ErrorIs(t, err, ErrIndexNotFound)
	assert.Nil(t, output)
}

func TestExecuteUnknownSearchKind(t *testing.T) {
	h, _ := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		SearchKind: "bogus",
		IndexName:  "careers",
	})
	assert.ErrorIs(t, err, ErrSearchQueryFailed)
	assert.Nil(t, output)
}

func TestExecuteServesCachedResult(t *testing.T) {
	h, mr := newTestHandler(t)

	input := &Input{
		SearchKind: "careers",
		Filters:    map[string]interface{}{"keywords": "software"},
	}

	cached := &Output{
		Data:      []map[string]interface{}{{"name": "Software Developer"}},
		TotalHits: 1,
		MaxScore:  2.5,
	}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)
	require.NoError(t, mr.Set(h.cacheKey(input), string(raw)))

	output, err := h.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.True(t, output.Cached)
	assert.Equal(t, int64(1), output.TotalHits)
	require.Len(t, output.Data, 1)
	assert.Equal(t, "Software Developer", output.Data[0]["name"])
}

func TestClassifyError(t *testing.T) {
	h, _ := newTestHandler(t)
	input := &Input{SearchKind: "careers"}

	tests := []struct {
		err       error
		code      cerrors.ErrorCode
		retryable bool
	}{
		{ErrSearchQueryFailed, cerrors.ErrCodeSearchQueryFailed, true},
		{ErrElasticsearchConnectionFailed, cerrors.ErrCodeElasticsearchConnectionFailed, true},
		{ErrSearchTimeout, cerrors.ErrCodeSearchTimeout, true},
		{ErrIndexNotFound, cerrors.ErrCodeIndexNotFound, false},
		{errors.New("other"), cerrors.ErrCodeSearchQueryFailed, true},
	}
	for _, tt := range tests {
		stdErr := h.classifyError(input, tt.err)
		assert.Equal(t, tt.code, stdErr.Code)
		assert.Equal(t, tt.retryable, stdErr.Retryable)
	}
}

func TestResolveIndexDefaults(t *testing.T) {
	h, _ := newTestHandler(t)

	assert.Equal(t, "careers", h.resolveIndex(&Input{SearchKind: "careers"}))
	assert.Equal(t, "programs", h.resolveIndex(&Input{SearchKind: "programs"}))
	assert.Equal(t, "custom", h.resolveIndex(&Input{SearchKind: "careers", IndexName: "custom"}))
	assert.Equal(t, "", h.resolveIndex(&Input{SearchKind: "related_entries"}))
}
