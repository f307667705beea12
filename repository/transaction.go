package repository

import (
	"context"
	"sync"

	"backoffice-service/domain"
	"backoffice-service/entity"
)

type TransactionStore struct {
	mu           sync.RWMutex
	transactions []entity.Transaction
}

func NewTransactionStore() *TransactionStore {
	return &TransactionStore{}
}

func (s *TransactionStore) Seed(transactions []entity.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = append(s.transactions, transactions...)
}

func (s *TransactionStore) All(ctx context.Context, filter domain.TransactionFilter) ([]entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entity.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.Category != "" && tx.Category != filter.Category {
			continue
		}
		result = append(result, tx)
	}
	return result, nil
}

func (s *TransactionStore) Get(ctx context.Context, id string) (*entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, tx := range s.transactions {
		if tx.Id == id {
			return &tx, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *TransactionStore) Insert(ctx context.Context, tx entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = append(s.transactions, tx)
	return nil
}
