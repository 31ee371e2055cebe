package notification

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/shopflow/storefront/internal/modules/order"
)

// Dispatcher hands orders to a background worker for delivery so order
// submission never waits on the messaging provider. Delivery outcomes are
// logged per order for operational monitoring; a failed delivery never
// affects the stored order.
type Dispatcher struct {
	provider  Provider
	logger    *zap.Logger
	timeout   time.Duration
	queue     chan *order.Order
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewDispatcher starts the delivery worker. queueSize bounds how many
// notifications may be pending; timeout bounds one delivery attempt.
func NewDispatcher(provider Provider, logger *zap.Logger, queueSize int, timeout time.Duration) *Dispatcher {
	d := &Dispatcher{
		provider: provider,
		logger:   logger,
		timeout:  timeout,
		queue:    make(chan *order.Order, queueSize),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// Enqueue accepts an order for notification without blocking. When the queue
// is full the order is rejected and the caller decides what to log. Enqueue
// must not be called after Close.
func (d *Dispatcher) Enqueue(o *order.Order) bool {
	select {
	case d.queue <- o:
		return true
	default:
		return false
	}
}

// Close stops accepting work, drains the queue, and waits for the worker.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() { close(d.queue) })
	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for o := range d.queue {
		d.deliver(o)
	}
}

func (d *Dispatcher) deliver(o *order.Order) {
	msg, err := ComposeMessage(o)
	if err != nil {
		d.logger.Error("notification compose failed",
			zap.String("order_id", o.ID.String()),
			zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.provider.Send(ctx, msg); err != nil {
		d.logger.Error("notification delivery failed",
			zap.String("order_id", o.ID.String()),
			zap.String("status", string(o.Status)),
			zap.Error(err))
		return
	}
	d.logger.Info("notification delivered",
		zap.String("order_id", o.ID.String()),
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject))
}
