package order

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Gateway is the provider-agnostic payment decision interface. Order assembly
// never knows which implementation it holds; swapping the mock for a real
// processor must not touch the submission logic.
type Gateway interface {
	// Authorize attempts the payment and returns the transaction outcome.
	// Declined and error outcomes are data, not call failures: err is
	// reserved for infrastructure faults (unreachable provider, timeout).
	Authorize(ctx context.Context, payment PaymentInfo) (Status, error)
}

// mockGateway simulates a payment processor. The CVV selects the outcome so
// every flow can be exercised from the storefront:
//
//	"1" -> approved, "2" -> declined, "3" -> error,
//	anything else -> uniform random pick of the three.
type mockGateway struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMockGateway creates the demo gateway with a time-seeded random source.
func NewMockGateway() Gateway {
	return &mockGateway{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// newMockGatewaySeeded is used by tests that need reproducible random outcomes.
func newMockGatewaySeeded(seed int64) Gateway {
	return &mockGateway{rnd: rand.New(rand.NewSource(seed))}
}

func (g *mockGateway) Authorize(ctx context.Context, payment PaymentInfo) (Status, error) {
	if err := ctx.Err(); err != nil {
		return StatusError, err
	}
	switch payment.CVV {
	case "1":
		return StatusApproved, nil
	case "2":
		return StatusDeclined, nil
	case "3":
		return StatusError, nil
	}
	outcomes := []Status{StatusApproved, StatusDeclined, StatusError}
	g.mu.Lock()
	n := g.rnd.Intn(len(outcomes))
	g.mu.Unlock()
	return outcomes[n], nil
}
