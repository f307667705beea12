package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"backoffice-service/conf"
	"backoffice-service/entity"
	"backoffice-service/middleware"
	"backoffice-service/request"

	"github.com/txix-open/isp-kit/log"
	"github.com/txix-open/isp-kit/requestid"
	"github.com/txix-open/isp-kit/test"
)

type journalStub struct {
	records []entity.SystemLog
}

func (j *journalStub) RecordApiRequest(ctx context.Context, record entity.SystemLog) {
	j.records = append(j.records, record)
}

type logEntry struct {
	level   string
	message any
	fields  []log.Field
}

type logRecorder struct {
	lock    sync.Mutex
	entries []logEntry
}

func (l *logRecorder) Fatal(ctx context.Context, message any, fields ...log.Field) {
	l.append("FATAL", message, fields)
}

func (l *logRecorder) Error(ctx context.Context, message any, fields ...log.Field) {
	l.append("ERROR", message, fields)
}

func (l *logRecorder) Warn(ctx context.Context, message any, fields ...log.Field) {
	l.append("WARN", message, fields)
}

func (l *logRecorder) Info(ctx context.Context, message any, fields ...log.Field) {
	l.append("INFO", message, fields)
}

func (l *logRecorder) Debug(ctx context.Context, message any, fields ...log.Field) {
	l.append("DEBUG", message, fields)
}

func (l *logRecorder) append(level string, message any, fields []log.Field) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.entries = append(l.entries, logEntry{level: level, message: message, fields: fields})
}

func (l *logRecorder) find(message string) *logEntry {
	l.lock.Lock()
	defer l.lock.Unlock()
	for i := range l.entries {
		if l.entries[i].message == message {
			return &l.entries[i]
		}
	}
	return nil
}

func fieldsByKey(fields []log.Field) map[string]log.Field {
	result := make(map[string]log.Field, len(fields))
	for _, field := range fields {
		result[field.Key] = field
	}
	return result
}

func TestRequestIdMiddleware(t *testing.T) {
	t.Parallel()
	_, require := test.New(t)

	var seenId string
	var seenCtxId string
	handler := middleware.HandlerFunc(func(ctx *request.Context) error {
		seenId = ctx.RequestId()
		seenCtxId = requestid.FromContext(ctx.Context())
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	req.Header.Set("X-Request-Id", "client-supplied")
	rec := execute(req, handler, middleware.RequestId())

	require.NotEmpty(seenId)
	require.EqualValues(seenId, seenCtxId)
	require.EqualValues(seenId, rec.Header().Get("X-Request-Id"))
	require.NotEqualValues("client-supplied", seenId)
}

func TestRequestIdUniqueAcrossRequests(t *testing.T) {
	t.Parallel()
	_, require := test.New(t)

	seen := make(map[string]bool)
	handler := middleware.HandlerFunc(func(ctx *request.Context) error {
		seen[ctx.RequestId()] = true
		return nil
	})

	total := 10000
	for i := 0; i < total; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
		execute(req, handler, middleware.RequestId())
	}

	require.Len(seen, total)
	require.False(seen[""])
}

func TestLoggerJournalsRequest(t *testing.T) {
	t.Parallel()
	testKit, require := test.New(t)

	journal := &journalStub{}
	handler := middleware.HandlerFunc(func(ctx *request.Context) error {
		ctx.ResponseWriter().WriteHeader(http.StatusCreated)
		_, err := ctx.ResponseWriter().Write([]byte(`{}`))
		return err
	})

	req := httptest.NewRequest(http.MethodPost, "/api/transactions", nil)
	req.RemoteAddr = "10.1.2.3:5555"
	rec := execute(req, handler,
		middleware.RequestId(),
		middleware.Logger(testKit.Logger(), conf.Logging{RequestLogEnable: true}, journal),
	)

	require.EqualValues(http.StatusCreated, rec.Code)
	require.NotEmpty(rec.Header().Get("X-Response-Time"))

	require.Len(journal.records, 1)
	record := journal.records[0]
	require.EqualValues(http.MethodPost, record.Method)
	require.EqualValues("/api/transactions", record.Endpoint)
	require.EqualValues(http.StatusCreated, record.StatusCode)
	require.EqualValues("10.1.2.3", record.IpAddress)
	require.NotEmpty(record.CorrelationId)
}

func TestLoggerWarnsSlowRequest(t *testing.T) {
	t.Parallel()
	_, require := test.New(t)

	logger := &logRecorder{}
	handler := middleware.HandlerFunc(func(ctx *request.Context) error {
		ctx.Stats().RecordDbCall(3 * time.Millisecond)
		ctx.Stats().RecordDbCall(2 * time.Millisecond)
		ctx.Stats().RecordExternalCall(7 * time.Millisecond)
		ctx.Stats().RecordCacheMiss()
		time.Sleep(20 * time.Millisecond)
		ctx.ResponseWriter().WriteHeader(http.StatusOK)
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	execute(req, handler, middleware.Logger(logger, conf.Logging{SlowRequestThresholdInMs: 1}, &journalStub{}))

	entry := logger.find("slow request")
	require.NotNil(entry)
	require.EqualValues("WARN", entry.level)
	fields := fieldsByKey(entry.fields)
	require.EqualValues("/api/transactions", fields["path"].String)
	require.EqualValues(2, fields["dbCalls"].Integer)
	require.EqualValues(5, fields["dbTimeMs"].Integer)
	require.EqualValues(1, fields["externalCalls"].Integer)
	require.EqualValues(1, fields["cacheMisses"].Integer)
	require.EqualValues(0, fields["cacheHits"].Integer)
}

func TestLoggerFastRequestNotReported(t *testing.T) {
	t.Parallel()
	_, require := test.New(t)

	logger := &logRecorder{}
	handler := middleware.HandlerFunc(func(ctx *request.Context) error {
		ctx.ResponseWriter().WriteHeader(http.StatusOK)
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	execute(req, handler, middleware.Logger(logger, conf.Logging{}, &journalStub{}))

	require.Nil(logger.find("slow request"))
}

func TestLoggerDefaultsStatusOk(t *testing.T) {
	t.Parallel()
	testKit, require := test.New(t)

	journal := &journalStub{}
	handler := middleware.HandlerFunc(func(ctx *request.Context) error {
		_, err := ctx.ResponseWriter().Write([]byte("ok"))
		return err
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := execute(req, handler, middleware.Logger(testKit.Logger(), conf.Logging{}, journal))

	require.EqualValues(http.StatusOK, rec.Code)
	require.Len(journal.records, 1)
	require.EqualValues(http.StatusOK, journal.records[0].StatusCode)
}
