package user

import (
	"context"
	"testing"

	"fooddash-be/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileStore(t *testing.T) storage.Store {
	t.Helper()

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestRepository_CreateAndFind(t *testing.T) {
	repo := NewRepository(newFileStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, User{Name: "Ravi", Email: "ravi@example.com", PasswordHash: "x"}))
	require.NoError(t, repo.Create(ctx, User{Name: "Anita", Email: "anita@example.com", PasswordHash: "y"}))

	u, err := repo.FindByEmail(ctx, "anita@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Anita", u.Name)

	// Lookup is case-insensitive.
	u, err = repo.FindByEmail(ctx, "RAVI@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Ravi", u.Name)

	u, err = repo.FindByEmail(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestRepository_MalformedCollection(t *testing.T) {
	store := newFileStore(t)
	repo := NewRepository(store)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, usersKey, []byte("][")))

	u, err := repo.FindByEmail(ctx, "ravi@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	repo := NewSessionRepository(newFileStore(t))
	ctx := context.Background()

	// Absent key means logged out, not an error.
	s, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)

	require.NoError(t, repo.Put(ctx, Session{Name: "Ravi", Email: "ravi@example.com"}))

	s, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "ravi@example.com", s.Email)

	require.NoError(t, repo.Delete(ctx))

	s, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSessionRepository_Malformed(t *testing.T) {
	store := newFileStore(t)
	repo := NewSessionRepository(store)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, sessionKey, []byte("not json")))

	s, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)
}
