package catalog

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no product exists with the given id.
	ErrNotFound = errors.New("product not found")

	// ErrInsufficientStock is returned when a decrement would take inventory
	// below zero. Inventory is left unchanged.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidQuantity is returned for zero or negative quantities.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)

// Repository defines the interface for product and inventory storage.
type Repository interface {
	// GetByID retrieves a product by its id.
	GetByID(ctx context.Context, id string) (*Product, error)

	// List returns all products in insertion order.
	List(ctx context.Context) ([]*Product, error)

	// DecrementInventory atomically checks that at least quantity units are in
	// stock and subtracts them. On ErrInsufficientStock the count is unchanged.
	DecrementInventory(ctx context.Context, id string, quantity int) error
}
