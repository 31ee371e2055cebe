package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shopflow/storefront/internal/modules/catalog"
)

// ErrEmptyCart is returned when a checkout carries no items.
var ErrEmptyCart = errors.New("order must contain at least one item")

// Catalog is the slice of the catalog module the order processor needs:
// price/name resolution at submit time and stock reservation for approved
// orders.
type Catalog interface {
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
	DecrementInventory(ctx context.Context, id string, quantity int) error
}

// Notifier accepts an order for asynchronous customer notification. Enqueue
// must never block; it reports false when the order could not be accepted.
type Notifier interface {
	Enqueue(o *Order) bool
}

// Service defines the order processing business logic.
type Service interface {
	// SubmitOrder decides the payment outcome, assembles and persists the
	// order, reserves stock for approved orders, and queues the customer
	// notification. Declined and error outcomes are recorded orders, not
	// call failures.
	SubmitOrder(ctx context.Context, req SubmitOrderRequest) (*Order, error)

	// GetOrder retrieves a previously submitted order by UUID.
	GetOrder(ctx context.Context, id string) (*Order, error)
}

// ServiceConfig carries the tunables the order processor needs.
type ServiceConfig struct {
	// TaxRate is the sales tax rate as a decimal fraction, e.g. 0.08.
	TaxRate decimal.Decimal

	// PaymentTimeout bounds one Authorize call; expiry is treated as the
	// error outcome.
	PaymentTimeout time.Duration
}

type service struct {
	repo     Repository
	catalog  Catalog
	gateway  Gateway
	notifier Notifier
	logger   *zap.Logger
	cfg      ServiceConfig
	seq      atomic.Uint64
}

// NewService creates a new order service.
func NewService(repo Repository, cat Catalog, gateway Gateway, notifier Notifier, logger *zap.Logger, cfg ServiceConfig) Service {
	return &service{
		repo:     repo,
		catalog:  cat,
		gateway:  gateway,
		notifier: notifier,
		logger:   logger,
		cfg:      cfg,
	}
}

func (s *service) SubmitOrder(ctx context.Context, req SubmitOrderRequest) (*Order, error) {
	if fields := validateCheckout(req, time.Now()); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items, err := s.snapshotCart(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	status := s.authorize(ctx, req.Payment)
	totals := computeTotals(items, s.cfg.TaxRate)

	o := &Order{
		ID:          uuid.New(),
		OrderNumber: s.nextOrderNumber(),
		CreatedAt:   time.Now().UTC(),
		Customer:    req.Customer,
		Payment: PaymentRecord{
			CardNumber: maskCardNumber(req.Payment.CardNumber),
			ExpiryDate: req.Payment.ExpiryDate,
		},
		Items:    items,
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
		Status:   status,
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	// Stock is reserved only for approved orders. A shortfall at this point
	// is logged, not rolled back: the order record keeps its decided status.
	if status == StatusApproved {
		for _, line := range o.Items {
			if err := s.catalog.DecrementInventory(ctx, line.ProductID, line.Quantity); err != nil {
				s.logger.Warn("inventory decrement failed",
					zap.String("order_id", o.ID.String()),
					zap.String("product_id", line.ProductID),
					zap.Int("quantity", line.Quantity),
					zap.Error(err))
			}
		}
	}

	if s.notifier != nil && !s.notifier.Enqueue(o) {
		s.logger.Warn("notification queue full, confirmation dropped",
			zap.String("order_id", o.ID.String()))
	}

	s.logger.Info("order recorded",
		zap.String("order_id", o.ID.String()),
		zap.String("order_number", o.OrderNumber),
		zap.String("status", string(o.Status)),
		zap.String("total", o.Total.StringFixed(2)))
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

// snapshotCart resolves each requested line against the catalog, copying the
// current name, image and price onto the order line.
func (s *service) snapshotCart(ctx context.Context, reqs []CartLineRequest) ([]CartLine, error) {
	items := make([]CartLine, 0, len(reqs))
	for _, cr := range reqs {
		p, err := s.catalog.GetProduct(ctx, cr.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", cr.ProductID, err)
		}
		image := ""
		if len(p.Images) > 0 {
			image = p.Images[0]
		}
		items = append(items, CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Image:     image,
			Variant:   cr.Variant,
			Quantity:  cr.Quantity,
			UnitPrice: p.Price,
		})
	}
	return items, nil
}

// authorize runs the gateway decision under the configured timeout. A gateway
// fault or timeout maps to the error outcome; it never fails the submission.
func (s *service) authorize(ctx context.Context, payment PaymentInfo) Status {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.PaymentTimeout)
	defer cancel()

	status, err := s.gateway.Authorize(ctx, payment)
	if err != nil {
		s.logger.Error("payment authorization fault", zap.Error(err))
		return StatusError
	}
	return status
}

// nextOrderNumber produces a human-readable order number ORD-YYYYMMDD-NNNN
// from a process-wide monotonic counter. Display label, not an identifier.
func (s *service) nextOrderNumber() string {
	n := s.seq.Add(1)
	date := time.Now().UTC().Format("20060102")
	return fmt.Sprintf("ORD-%s-%04d", date, n)
}

// maskCardNumber redacts all but the last four digits of a card number.
func maskCardNumber(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) < 4 {
		return "xxxx-xxxx-xxxx-xxxx"
	}
	return strings.Repeat("xxxx-", 3) + digits[len(digits)-4:]
}
