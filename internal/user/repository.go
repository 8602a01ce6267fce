package user

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"fooddash-be/internal/logger"
	"fooddash-be/internal/storage"

	"go.uber.org/zap"
)

const (
	usersKey   = "users"
	sessionKey = "session"
)

// Repository stores registered accounts as one whole collection.
type Repository interface {
	// FindByEmail returns nil, nil when no account matches.
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u User) error
}

// SessionRepository mirrors the singleton session record.
type SessionRepository interface {
	// Get returns nil, nil when no session is persisted or the
	// persisted value is malformed.
	Get(ctx context.Context) (*Session, error)
	Put(ctx context.Context, s Session) error
	Delete(ctx context.Context) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) load(ctx context.Context) ([]User, error) {
	data, err := r.store.Get(ctx, usersKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []User{}, nil
	}
	if err != nil {
		return nil, err
	}

	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		logger.FromCtx(ctx).Warn("malformed users collection, starting empty", zap.Error(err))
		return []User{}, nil
	}
	return users, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *repository) Create(ctx context.Context, u User) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}

	users = append(users, u)

	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, usersKey, data)
}

type sessionRepository struct {
	store storage.Store
}

func NewSessionRepository(store storage.Store) SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) Get(ctx context.Context) (*Session, error) {
	data, err := r.store.Get(ctx, sessionKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		logger.FromCtx(ctx).Warn("malformed session record, treating as logged out", zap.Error(err))
		return nil, nil
	}
	return &s, nil
}

func (r *sessionRepository) Put(ctx context.Context, s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, sessionKey, data)
}

func (r *sessionRepository) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, sessionKey)
}
