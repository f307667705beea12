package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"backoffice-service/conf"
	"backoffice-service/domain"
	"backoffice-service/entity"
	"backoffice-service/httperrors"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
)

var knownEventTypes = map[string]bool{
	entity.EventApiRequest:    true,
	entity.EventBusinessEvent: true,
	entity.EventSecurityEvent: true,
	entity.EventSystemError:   true,
}

type SystemLogStore interface {
	All(ctx context.Context, filter domain.SystemLogFilter) ([]entity.SystemLog, error)
	Get(ctx context.Context, id string) (*entity.SystemLog, error)
	Insert(ctx context.Context, logEntry entity.SystemLog) error
}

type SystemLog struct {
	store      SystemLogStore
	pagination conf.Pagination
	logger     log.Logger
}

func NewSystemLog(store SystemLogStore, pagination conf.Pagination, logger log.Logger) SystemLog {
	return SystemLog{
		store:      store,
		pagination: pagination,
		logger:     logger,
	}
}

func (s SystemLog) List(ctx context.Context, filter domain.SystemLogFilter) (*domain.SystemLogsResponse, error) {
	logs, err := s.store.All(ctx, filter)
	if err != nil {
		return nil, errors.WithMessage(err, "list system logs")
	}

	total := len(logs)
	page := clampPage(filter.Page, s.pagination)
	logs = paginate(logs, page)

	return &domain.SystemLogsResponse{
		Logs:      logs,
		Total:     total,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (s SystemLog) Get(ctx context.Context, id string) (*domain.SystemLogResponse, error) {
	logEntry, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, errors.WithMessagef(err, "get system log '%s'", id)
	}
	return &domain.SystemLogResponse{
		Log:       *logEntry,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (s SystemLog) Create(ctx context.Context, req domain.CreateSystemLogRequest) (*domain.SystemLogResponse, error) {
	err := validateRequest(req)
	if err != nil {
		return nil, err
	}

	eventType := req.EventType
	if eventType == "" {
		eventType = entity.EventBusinessEvent
	}
	if !knownEventTypes[eventType] {
		return nil, httperrors.New(
			http.StatusBadRequest,
			"invalid request body",
			errors.Errorf("unknown event type '%s'", eventType),
		).WithDetails(fmt.Sprintf("EventType: '%s' is not a known event type", eventType))
	}
	logEntry := entity.SystemLog{
		Id:        newId("log"),
		Level:     req.Level,
		Message:   req.Message,
		EventType: eventType,
		CreatedAt: time.Now().UTC(),
	}
	err = s.store.Insert(ctx, logEntry)
	if err != nil {
		return nil, errors.WithMessage(err, "insert system log")
	}

	return &domain.SystemLogResponse{
		Log:       logEntry,
		Timestamp: time.Now().UTC(),
	}, nil
}

// RecordApiRequest appends a request journal entry. Failures are
// reported to the logger and swallowed, the journal must never break
// request handling.
func (s SystemLog) RecordApiRequest(ctx context.Context, record entity.SystemLog) {
	record.Id = newId("log")
	record.EventType = entity.EventApiRequest
	record.Level = levelByStatus(record.StatusCode)
	record.Message = fmt.Sprintf("%s %s -> %d", record.Method, record.Endpoint, record.StatusCode)
	record.CreatedAt = time.Now().UTC()

	err := s.store.Insert(ctx, record)
	if err != nil {
		s.logger.Warn(ctx, errors.WithMessage(err, "record api request"))
	}
}

func levelByStatus(statusCode int) string {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return "ERROR"
	case statusCode >= http.StatusBadRequest:
		return "WARN"
	default:
		return "INFO"
	}
}
