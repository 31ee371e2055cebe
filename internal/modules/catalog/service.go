package catalog

import (
	"context"
)

// Service defines catalog business logic.
type Service interface {
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)

	// DecrementInventory reserves stock for a completed purchase.
	DecrementInventory(ctx context.Context, id string, quantity int) error
}

type service struct{ repo Repository }

// NewService creates a new catalog service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) DecrementInventory(ctx context.Context, id string, quantity int) error {
	return s.repo.DecrementInventory(ctx, id, quantity)
}
