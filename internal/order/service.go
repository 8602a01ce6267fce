package order

import (
	"context"
	"fmt"
	"time"

	"fooddash-be/internal/cart"
	"fooddash-be/internal/logger"
	"fooddash-be/internal/pricing"
	"fooddash-be/internal/user"

	"go.uber.org/zap"
)

type Service interface {
	// PlaceOrder validates the address, snapshots the cart into a new
	// ledger entry, and clears the cart on success. On a persistence
	// failure the cart is intentionally left intact so the submission
	// can be retried.
	PlaceOrder(ctx context.Context, sess *user.Session, address Address) (*Order, error)
	// ListOrders returns the caller's orders in insertion order.
	ListOrders(ctx context.Context, userEmail string) ([]Order, error)
	// CancelOrder removes the entry with the given id. Only the owner
	// may cancel; an absent id is ErrOrderNotFound.
	CancelOrder(ctx context.Context, userEmail string, orderID int64) error
	// GetOrder returns one of the caller's orders by id.
	GetOrder(ctx context.Context, userEmail string, orderID int64) (*Order, error)
	// WatchLedger re-exposes external ledger changes so callers can
	// re-read instead of merging deltas.
	WatchLedger(ctx context.Context) (<-chan struct{}, error)
}

type service struct {
	repo    Repository
	cartSvc cart.Service
	ids     idSource
}

func NewService(repo Repository, cartSvc cart.Service) Service {
	return &service{repo: repo, cartSvc: cartSvc}
}

func (s *service) PlaceOrder(ctx context.Context, sess *user.Session, address Address) (*Order, error) {
	log := logger.FromCtx(ctx)

	if sess == nil {
		return nil, ErrNotAuthenticated
	}

	if errs := ValidateAddress(address); len(errs) > 0 {
		log.Warn("checkout rejected", zap.Int("field_errors", len(errs)))
		return nil, errs
	}

	snapshot := s.cartSvc.Items(ctx)
	if len(snapshot) == 0 {
		return nil, ErrEmptyCart
	}

	lines := make([]pricing.Line, 0, len(snapshot))
	for _, l := range snapshot {
		lines = append(lines, pricing.Line{Price: l.Price, Quantity: l.Quantity})
	}
	quote := pricing.Calculate(lines)

	now := time.Now()
	o := Order{
		ID:              s.ids.next(now),
		InvoiceNo:       GenerateInvoiceNumber(now),
		UserID:          sess.Email,
		Items:           snapshot,
		DeliveryAddress: address,
		Subtotal:        quote.Subtotal,
		DeliveryFee:     quote.DeliveryFee,
		Taxes:           quote.Taxes,
		Total:           quote.Total,
		OrderDate:       now.Format(time.RFC3339),
		Status:          StatusProcessing,
	}

	if err := s.repo.Append(ctx, o); err != nil {
		log.Error("failed to persist order", zap.Int64("order_id", o.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	// Only a persisted order empties the cart.
	s.cartSvc.Clear(ctx)

	log.Info("order placed",
		zap.Int64("order_id", o.ID),
		zap.String("user", o.UserID),
		zap.Int("items", len(o.Items)),
		zap.Int64("total", o.Total),
	)

	return &o, nil
}

func (s *service) ListOrders(ctx context.Context, userEmail string) ([]Order, error) {
	orders, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.UserID == userEmail {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *service) CancelOrder(ctx context.Context, userEmail string, orderID int64) error {
	orders, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	found := false
	remaining := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.ID == orderID && o.UserID == userEmail {
			found = true
			continue
		}
		remaining = append(remaining, o)
	}
	if !found {
		return ErrOrderNotFound
	}

	if err := s.repo.SaveAll(ctx, remaining); err != nil {
		return fmt.Errorf("failed to cancel order: %w", err)
	}

	logger.FromCtx(ctx).Info("order cancelled",
		zap.Int64("order_id", orderID),
		zap.String("user", userEmail),
	)
	return nil
}

func (s *service) GetOrder(ctx context.Context, userEmail string, orderID int64) (*Order, error) {
	orders, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if o.ID == orderID && o.UserID == userEmail {
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (s *service) WatchLedger(ctx context.Context) (<-chan struct{}, error) {
	return s.repo.Watch(ctx)
}
