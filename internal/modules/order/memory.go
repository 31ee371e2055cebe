package order

import (
	"context"
	"sync"
)

// memoryRepo is a process-local, append-only order store. Orders live for the
// lifetime of the process; a real deployment would swap this for a durable
// Repository implementation.
type memoryRepo struct {
	mu     sync.RWMutex
	orders map[string]*Order
}

// NewMemoryRepository creates an empty in-memory order store.
func NewMemoryRepository() Repository {
	return &memoryRepo{orders: make(map[string]*Order)}
}

func (r *memoryRepo) CreateOrder(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := o.ID.String()
	if _, exists := r.orders[key]; exists {
		return ErrDuplicateID
	}
	cp := *o
	cp.Items = append([]CartLine(nil), o.Items...)
	r.orders[key] = &cp
	return nil
}

func (r *memoryRepo) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	cp.Items = append([]CartLine(nil), o.Items...)
	return &cp, nil
}
