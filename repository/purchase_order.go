package repository

import (
	"context"
	"sync"

	"backoffice-service/domain"
	"backoffice-service/entity"
)

type PurchaseOrderStore struct {
	mu     sync.RWMutex
	orders []entity.PurchaseOrder
}

func NewPurchaseOrderStore() *PurchaseOrderStore {
	return &PurchaseOrderStore{}
}

func (s *PurchaseOrderStore) Seed(orders []entity.PurchaseOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, orders...)
}

func (s *PurchaseOrderStore) All(ctx context.Context) ([]entity.PurchaseOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entity.PurchaseOrder, len(s.orders))
	copy(result, s.orders)
	return result, nil
}

func (s *PurchaseOrderStore) Get(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, order := range s.orders {
		if order.Id == id {
			return &order, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *PurchaseOrderStore) Insert(ctx context.Context, order entity.PurchaseOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, order)
	return nil
}

func (s *PurchaseOrderStore) UpdateStatus(ctx context.Context, id string, status string) (*entity.PurchaseOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].Id == id {
			s.orders[i].Status = status
			order := s.orders[i]
			return &order, nil
		}
	}
	return nil, domain.ErrNotFound
}
