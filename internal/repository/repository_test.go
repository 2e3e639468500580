package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/repository"
	"github.com/avc-dev/shlink-dashboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(store.NewStore())

	created, err := repo.Create(ctx, model.ShortURL{ShortCode: "abc", LongURL: "https://example.com", UserID: "user-1"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got.LongURL)
}

func TestRepository_Create_DuplicateCode(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(store.NewStore())

	_, err := repo.Create(ctx, model.ShortURL{ShortCode: "abc", UserID: "user-1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, model.ShortURL{ShortCode: "abc", UserID: "user-2"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "abc")
}

func TestRepository_Get_NotFound(t *testing.T) {
	repo := repository.New(store.NewStore())

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRepository_ActiveByUser(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(store.NewStore())

	expired := time.Now().Add(-time.Hour)
	limit := 2

	_, err := repo.Create(ctx, model.ShortURL{ShortCode: "live", UserID: "user-1"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.ShortURL{ShortCode: "expired", UserID: "user-1", ValidUntil: &expired})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.ShortURL{ShortCode: "exhausted", UserID: "user-1", MaxVisits: &limit, VisitCount: 2})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.ShortURL{ShortCode: "foreign", UserID: "user-2"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.ShortURL{ShortCode: "deleted", UserID: "user-1"})
	require.NoError(t, err)
	_, err = repo.SoftDelete(ctx, "deleted")
	require.NoError(t, err)

	urls, err := repo.ActiveByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, urls, 1)
	assert.Equal(t, model.Code("live"), urls[0].ShortCode)
}

func TestRepository_ApplyRemote(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(store.NewStore())

	_, err := repo.Create(ctx, model.ShortURL{ShortCode: "abc", LongURL: "https://old.example.com", UserID: "user-1"})
	require.NoError(t, err)

	err = repo.ApplyRemote(ctx, "abc", model.RemoteSnapshot{
		LongURL:    "https://new.example.com",
		Title:      "New",
		VisitCount: 7,
		Tags:       []string{"promo"},
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "https://new.example.com", got.LongURL)
	assert.Equal(t, 7, got.VisitCount)
	assert.Equal(t, []string{"promo"}, got.Tags)
	assert.NotNil(t, got.SyncedAt)
}

func TestRepository_ApplyRemote_NotFound(t *testing.T) {
	repo := repository.New(store.NewStore())

	err := repo.ApplyRemote(context.Background(), "missing", model.RemoteSnapshot{})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRepository_SoftDelete_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := repository.New(store.NewStore())

	_, err := repo.Create(ctx, model.ShortURL{ShortCode: "abc", UserID: "user-1"})
	require.NoError(t, err)

	deleted, err := repo.SoftDelete(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.SoftDelete(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, deleted)
}
