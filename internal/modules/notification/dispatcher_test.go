package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/shopflow/storefront/internal/modules/order"
)

// fakeProvider records sent messages. started is signalled when a Send
// begins; gate, when set, blocks delivery until closed.
type fakeProvider struct {
	mu      sync.Mutex
	sent    []Message
	failSub string
	started chan struct{}
	gate    chan struct{}
}

func (p *fakeProvider) Send(ctx context.Context, msg Message) error {
	if p.started != nil {
		p.started <- struct{}{}
	}
	if p.gate != nil {
		select {
		case <-p.gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if p.failSub != "" && msg.Subject == p.failSub {
		return errors.New("provider rejected message")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, msg)
	return nil
}

func (p *fakeProvider) delivered() []Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Message(nil), p.sent...)
}

func TestDispatcher_DeliversEnqueuedOrders(t *testing.T) {
	defer goleak.VerifyNone(t)

	provider := &fakeProvider{}
	d := NewDispatcher(provider, zap.NewNop(), 8, time.Second)

	require.True(t, d.Enqueue(sampleOrder(order.StatusApproved)))
	require.True(t, d.Enqueue(sampleOrder(order.StatusDeclined)))
	d.Close()

	sent := provider.delivered()
	require.Len(t, sent, 2)
	assert.Equal(t, "Order Confirmed: #ORD-20260828-0001", sent[0].Subject)
	assert.Equal(t, "Payment Declined: Order #ORD-20260828-0001", sent[1].Subject)
}

func TestDispatcher_EnqueueNeverBlocksWhenFull(t *testing.T) {
	defer goleak.VerifyNone(t)

	provider := &fakeProvider{
		started: make(chan struct{}, 2),
		gate:    make(chan struct{}),
	}
	d := NewDispatcher(provider, zap.NewNop(), 1, time.Second)

	// First order is picked up by the worker and parks inside Send.
	require.True(t, d.Enqueue(sampleOrder(order.StatusApproved)))
	<-provider.started

	// Second fills the one-slot buffer; third must be rejected immediately.
	assert.True(t, d.Enqueue(sampleOrder(order.StatusApproved)))
	assert.False(t, d.Enqueue(sampleOrder(order.StatusApproved)))

	close(provider.gate)
	d.Close()
	assert.Len(t, provider.delivered(), 2)
}

func TestDispatcher_FailedDeliveryDoesNotStopWorker(t *testing.T) {
	defer goleak.VerifyNone(t)

	provider := &fakeProvider{failSub: "Payment Declined: Order #ORD-20260828-0001"}
	d := NewDispatcher(provider, zap.NewNop(), 8, time.Second)

	require.True(t, d.Enqueue(sampleOrder(order.StatusDeclined))) // fails
	require.True(t, d.Enqueue(sampleOrder(order.StatusApproved))) // still delivered
	d.Close()

	sent := provider.delivered()
	require.Len(t, sent, 1)
	assert.Equal(t, "Order Confirmed: #ORD-20260828-0001", sent[0].Subject)
}

func TestDispatcher_DeliveryTimeout(t *testing.T) {
	defer goleak.VerifyNone(t)

	provider := &fakeProvider{gate: make(chan struct{})} // never opened
	d := NewDispatcher(provider, zap.NewNop(), 8, 20*time.Millisecond)

	require.True(t, d.Enqueue(sampleOrder(order.StatusApproved)))
	d.Close()

	assert.Empty(t, provider.delivered(), "timed-out delivery is reported, not retried")
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := NewDispatcher(&fakeProvider{}, zap.NewNop(), 4, time.Second)
	d.Close()
	d.Close()
}
