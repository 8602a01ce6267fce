package contact

import (
	"context"
	"encoding/json"
	"errors"

	"fooddash-be/internal/logger"
	"fooddash-be/internal/storage"

	"go.uber.org/zap"
)

const StorageKey = "contactForms"

type Repository interface {
	LoadAll(ctx context.Context) ([]Submission, error)
	// Prepend puts the submission at the front of the collection and
	// writes the whole collection back.
	Prepend(ctx context.Context, s Submission) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) LoadAll(ctx context.Context) ([]Submission, error) {
	data, err := r.store.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []Submission{}, nil
	}
	if err != nil {
		return nil, err
	}

	var subs []Submission
	if err := json.Unmarshal(data, &subs); err != nil {
		logger.FromCtx(ctx).Warn("malformed contact log, starting empty", zap.Error(err))
		return []Submission{}, nil
	}
	return subs, nil
}

func (r *repository) Prepend(ctx context.Context, s Submission) error {
	subs, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	subs = append([]Submission{s}, subs...)

	data, err := json.Marshal(subs)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, StorageKey, data)
}
