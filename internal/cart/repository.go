package cart

import (
	"context"
	"encoding/json"
	"errors"

	"fooddash-be/internal/logger"
	"fooddash-be/internal/storage"

	"go.uber.org/zap"
)

// StorageKey holds the whole cart collection. The cart is a single
// shared collection, not scoped per user.
const StorageKey = "cartState"

type Repository interface {
	// Load returns the persisted cart. An absent or malformed value is
	// treated as an empty cart, never an error.
	Load(ctx context.Context) ([]Line, error)
	Save(ctx context.Context, lines []Line) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Load(ctx context.Context) ([]Line, error) {
	data, err := r.store.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []Line{}, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		logger.FromCtx(ctx).Warn("malformed cart state, starting empty", zap.Error(err))
		return []Line{}, nil
	}
	return lines, nil
}

func (r *repository) Save(ctx context.Context, lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, StorageKey, data)
}
