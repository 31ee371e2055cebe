package order

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no order exists with the given id.
	ErrNotFound = errors.New("order not found")

	// ErrDuplicateID is returned when an order id is already present in the
	// store. With v4 UUIDs this indicates a programming error, not a
	// business outcome.
	ErrDuplicateID = errors.New("order id already exists")
)

// Repository defines data access for orders. The store is append-only: there
// is no update or delete.
type Repository interface {
	// CreateOrder appends a new order to the store.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrderByID retrieves an order by UUID.
	GetOrderByID(ctx context.Context, id string) (*Order, error)
}
