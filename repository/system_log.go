package repository

import (
	"context"
	"sync"

	"backoffice-service/domain"
	"backoffice-service/entity"
)

// maxRetainedLogs caps the in-memory journal, oldest entries are
// dropped first.
const maxRetainedLogs = 10000

type SystemLogStore struct {
	mu   sync.RWMutex
	logs []entity.SystemLog
}

func NewSystemLogStore() *SystemLogStore {
	return &SystemLogStore{}
}

func (s *SystemLogStore) All(ctx context.Context, filter domain.SystemLogFilter) ([]entity.SystemLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entity.SystemLog, 0)
	for _, logEntry := range s.logs {
		if filter.Level != "" && logEntry.Level != filter.Level {
			continue
		}
		if filter.EventType != "" && logEntry.EventType != filter.EventType {
			continue
		}
		result = append(result, logEntry)
	}
	return result, nil
}

func (s *SystemLogStore) Get(ctx context.Context, id string) (*entity.SystemLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, logEntry := range s.logs {
		if logEntry.Id == id {
			return &logEntry, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *SystemLogStore) Insert(ctx context.Context, logEntry entity.SystemLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = append(s.logs, logEntry)
	if len(s.logs) > maxRetainedLogs {
		s.logs = s.logs[len(s.logs)-maxRetainedLogs:]
	}
	return nil
}
