package catalog

import (
	"context"
	"errors"
	"strings"

	"fooddash-be/internal/logger"

	"go.uber.org/zap"
)

var ErrItemNotFound = errors.New("catalog item not found")

// Service exposes read-only views over the loaded menu.
type Service interface {
	List(ctx context.Context) []Item
	ByID(ctx context.Context, id int) (*Item, error)
	Categories(ctx context.Context) []string
	Search(ctx context.Context, category, query string) []Item
}

type service struct {
	items []Item
	byID  map[int]Item
}

func NewService(items []Item) Service {
	byID := make(map[int]Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &service{items: items, byID: byID}
}

func (s *service) List(ctx context.Context) []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *service) ByID(ctx context.Context, id int) (*Item, error) {
	item, ok := s.byID[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

// Categories returns the distinct categories in catalog order.
func (s *service) Categories(ctx context.Context) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range s.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}

// Search filters by category (exact, empty or "All" means everything)
// and by a case-insensitive substring of the item name.
func (s *service) Search(ctx context.Context, category, query string) []Item {
	log := logger.FromCtx(ctx)

	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if category != "" && category != "All" && item.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		out = append(out, item)
	}

	log.Debug("catalog search",
		zap.String("category", category),
		zap.String("query", query),
		zap.Int("matches", len(out)),
	)

	return out
}
