package catalog

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

// memoryRepo is a process-local product store. The demo ships with a seeded
// catalog and no durable backend; any real deployment would swap this for a
// database-backed Repository.
type memoryRepo struct {
	mu       sync.Mutex
	products []*Product
	byID     map[string]*Product
}

// NewMemoryRepository creates an in-memory catalog holding the given products.
func NewMemoryRepository(products []*Product) Repository {
	r := &memoryRepo{byID: make(map[string]*Product, len(products))}
	for _, p := range products {
		cp := *p
		r.products = append(r.products, &cp)
		r.byID[cp.ID] = &cp
	}
	return r
}

// SeedProducts returns the demo catalog.
func SeedProducts() []*Product {
	return []*Product{
		{
			ID:   "1",
			Name: "Converse Chuck Taylor All Star II Hi",
			Description: "The Converse Chuck Taylor All Star II Hi gives the iconic silhouette a modern upgrade. " +
				"The premium canvas upper and Lunarlon cushioning provide elevated comfort, while the embroidered " +
				"All Star patch and higher foxing deliver the unmistakable look you love.",
			Price: decimal.NewFromInt(85),
			Images: []string{
				"https://images.pexels.com/photos/19090/pexels-photo.jpg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				"https://images.pexels.com/photos/1598505/pexels-photo-1598505.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				"https://images.pexels.com/photos/1478442/pexels-photo-1478442.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			},
			Variants: []Variant{
				{Name: "Color", Options: []string{"Black", "White", "Red", "Navy"}},
				{Name: "Size", Options: []string{"7", "8", "9", "10", "11", "12"}},
			},
			Inventory: 50,
		},
	}
}

func (r *memoryRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memoryRepo) List(ctx context.Context) ([]*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryRepo) DecrementInventory(ctx context.Context, id string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	// Check-and-subtract under one lock hold so concurrent checkouts
	// cannot oversell.
	if p.Inventory < quantity {
		return ErrInsufficientStock
	}
	p.Inventory -= quantity
	return nil
}
