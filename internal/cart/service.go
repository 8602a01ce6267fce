package cart

import (
	"context"
	"sync"

	"fooddash-be/internal/catalog"
	"fooddash-be/internal/logger"
	"fooddash-be/internal/pricing"

	"go.uber.org/zap"
)

// Service defines the business logic for the cart.
type Service interface {
	// Restore rehydrates the cart from the store at process start.
	Restore(ctx context.Context) error
	// Add puts an item in the cart. Adding an id already present
	// merges into the existing line by increasing its quantity.
	Add(ctx context.Context, itemID, quantity int) (*Line, error)
	// Increment increases a line's quantity by 1. No-op if absent.
	Increment(ctx context.Context, itemID int) error
	// Decrement decreases a line's quantity by 1, never below 1.
	// No-op if absent or already at 1.
	Decrement(ctx context.Context, itemID int) error
	// Remove deletes the line entirely. No-op if absent.
	Remove(ctx context.Context, itemID int) error
	Items(ctx context.Context) []Line
	Quote(ctx context.Context) pricing.Quote
	Clear(ctx context.Context)
}

type service struct {
	repo       Repository
	catalogSvc catalog.Service

	mu    sync.Mutex
	lines []Line
}

// NewService creates a new cart service
func NewService(repo Repository, catalogSvc catalog.Service) Service {
	return &service{repo: repo, catalogSvc: catalogSvc, lines: []Line{}}
}

func (s *service) Restore(ctx context.Context) error {
	lines, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()

	logger.FromCtx(ctx).Info("cart restored", zap.Int("lines", len(lines)))
	return nil
}

func (s *service) Add(ctx context.Context, itemID, quantity int) (*Line, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.catalogSvc.ByID(ctx, itemID)
	if err != nil {
		return nil, ErrItemNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == itemID {
			s.lines[i].Quantity += quantity
			line := s.lines[i]
			s.persist(ctx)
			return &line, nil
		}
	}

	line := Line{
		ID:          item.ID,
		Name:        item.Name,
		Image:       item.Image,
		Price:       item.Price,
		DietaryType: item.DietaryType,
		Quantity:    quantity,
	}
	s.lines = append(s.lines, line)
	s.persist(ctx)

	return &line, nil
}

func (s *service) Increment(ctx context.Context, itemID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == itemID {
			s.lines[i].Quantity++
			s.persist(ctx)
			return nil
		}
	}
	return nil
}

func (s *service) Decrement(ctx context.Context, itemID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == itemID {
			if s.lines[i].Quantity > 1 {
				s.lines[i].Quantity--
				s.persist(ctx)
			}
			return nil
		}
	}
	return nil
}

func (s *service) Remove(ctx context.Context, itemID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == itemID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist(ctx)
			return nil
		}
	}
	return nil
}

func (s *service) Items(ctx context.Context) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *service) Quote(ctx context.Context) pricing.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]pricing.Line, 0, len(s.lines))
	for _, l := range s.lines {
		lines = append(lines, pricing.Line{Price: l.Price, Quantity: l.Quantity})
	}
	return pricing.Calculate(lines)
}

func (s *service) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = []Line{}
	s.persist(ctx)
}

// persist writes the whole collection back to the store. Write
// failures keep the in-memory mutation and are not surfaced; the next
// successful mutation rewrites the full state anyway. Callers must
// hold s.mu.
func (s *service) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.lines); err != nil {
		logger.FromCtx(ctx).Warn("failed to persist cart", zap.Error(err))
	}
}
