package order

import (
	"context"
	"encoding/json"
	"errors"

	"fooddash-be/internal/logger"
	"fooddash-be/internal/storage"

	"go.uber.org/zap"
)

// StorageKey holds the whole ledger, all users together.
const StorageKey = "orders"

type Repository interface {
	// LoadAll returns the persisted ledger. An absent or malformed
	// value is treated as an empty ledger, never an error.
	LoadAll(ctx context.Context) ([]Order, error)
	SaveAll(ctx context.Context, orders []Order) error
	// Append is read-entire, append, write-entire. Not atomic across
	// processes; see storage.Store.
	Append(ctx context.Context, o Order) error
	// Watch signals when another process modifies the ledger key.
	Watch(ctx context.Context) (<-chan struct{}, error)
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) LoadAll(ctx context.Context) ([]Order, error) {
	data, err := r.store.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []Order{}, nil
	}
	if err != nil {
		return nil, err
	}

	var orders []Order
	if err := json.Unmarshal(data, &orders); err != nil {
		logger.FromCtx(ctx).Warn("malformed order ledger, starting empty", zap.Error(err))
		return []Order{}, nil
	}
	return orders, nil
}

func (r *repository) SaveAll(ctx context.Context, orders []Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, StorageKey, data)
}

func (r *repository) Append(ctx context.Context, o Order) error {
	orders, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	return r.SaveAll(ctx, append(orders, o))
}

func (r *repository) Watch(ctx context.Context) (<-chan struct{}, error) {
	return r.store.Watch(ctx, StorageKey)
}
