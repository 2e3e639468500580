package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/mocks"
	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/repository"
	"github.com/avc-dev/shlink-dashboard/internal/shlink"
	"github.com/avc-dev/shlink-dashboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newShortURLUsecase(t *testing.T) (*ShortURLUsecase, *mocks.MockShortURLRepository, *mocks.MockShlinkClient, *mocks.MockStatisticsInvalidator) {
	t.Helper()

	repo := mocks.NewMockShortURLRepository(t)
	client := mocks.NewMockShlinkClient(t)
	stats := mocks.NewMockStatisticsInvalidator(t)
	return NewShortURLUsecase(repo, client, stats, zap.NewNop()), repo, client, stats
}

func notFound() error {
	return &shlink.APIError{Status: 404, Type: "https://shlink.io/api/error/short-url-not-found", Title: "Short URL not found"}
}

func TestShortURLUsecase_Create(t *testing.T) {
	uc, repo, client, stats := newShortURLUsecase(t)
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	title := "Docs"

	client.EXPECT().
		CreateShortURL(ctx, shlink.CreateParams{LongURL: "https://example.com/docs", CustomSlug: "docs", Tags: []string{"a"}}).
		Return(&shlink.ShortURL{
			ShortCode:   "docs",
			ShortURL:    "https://s.test/docs",
			LongURL:     "https://example.com/docs",
			DateCreated: created,
			Tags:        []string{"a"},
			Title:       &title,
		}, nil).
		Once()

	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u model.ShortURL) bool {
			return u.ShortCode == "docs" && u.UserID == "user-1" && u.ShortURL == "https://s.test/docs" &&
				u.Title == "Docs" && u.CreatedAt.Equal(created) && u.SyncedAt != nil
		})).
		RunAndReturn(func(_ context.Context, u model.ShortURL) (model.ShortURL, error) {
			u.ID = 7
			return u, nil
		}).
		Once()
	stats.EXPECT().Invalidate(ctx, "user-1").Return(nil).Once()

	result, err := uc.Create(ctx, "user-1", CreateInput{LongURL: `  "https://example.com/docs" `, CustomSlug: " docs ", Tags: []string{"a"}})
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.ID)
	assert.Equal(t, model.Code("docs"), result.ShortCode)
}

func TestShortURLUsecase_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		longURL string
		wantErr error
	}{
		{name: "empty", longURL: "   ", wantErr: ErrEmptyURL},
		{name: "no scheme", longURL: "example.com", wantErr: ErrInvalidURL},
		{name: "no host", longURL: "https://", wantErr: ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _, _ := newShortURLUsecase(t)

			_, err := uc.Create(context.Background(), "user-1", CreateInput{LongURL: tt.longURL})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestShortURLUsecase_CreateRemoteErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "slug taken", err: &shlink.APIError{Status: 400, Type: "non-unique-slug"}, wantErr: ErrRemoteRejected},
		{name: "server error", err: &shlink.APIError{Status: 503}, wantErr: ErrServiceUnavailable},
		{name: "network", err: &shlink.APIError{Err: errors.New("connection refused")}, wantErr: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, client, _ := newShortURLUsecase(t)
			client.EXPECT().CreateShortURL(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			_, err := uc.Create(context.Background(), "user-1", CreateInput{LongURL: "https://example.com"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestShortURLUsecase_CreateLocalConflict(t *testing.T) {
	uc, repo, client, _ := newShortURLUsecase(t)

	client.EXPECT().CreateShortURL(mock.Anything, mock.Anything).Return(&shlink.ShortURL{ShortCode: "abc"}, nil).Once()
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(model.ShortURL{}, fmt.Errorf("wrap: %w", store.ErrAlreadyExists)).Once()
	client.EXPECT().DeleteShortURL(mock.Anything, "abc").Return(nil).Once()

	_, err := uc.Create(context.Background(), "user-1", CreateInput{LongURL: "https://example.com"})
	assert.ErrorIs(t, err, ErrCodeConflict)
}

func TestShortURLUsecase_CreateLocalFailureRollsBackRemote(t *testing.T) {
	uc, repo, client, _ := newShortURLUsecase(t)

	client.EXPECT().CreateShortURL(mock.Anything, mock.Anything).Return(&shlink.ShortURL{ShortCode: "abc"}, nil).Once()
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(model.ShortURL{}, errors.New("connection reset")).Once()
	client.EXPECT().DeleteShortURL(mock.Anything, "abc").Return(&shlink.APIError{Status: 503}).Once()

	_, err := uc.Create(context.Background(), "user-1", CreateInput{LongURL: "https://example.com"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCodeConflict)
}

func TestShortURLUsecase_RecreateDeletedSlug(t *testing.T) {
	ctx := context.Background()
	client := mocks.NewMockShlinkClient(t)
	stats := mocks.NewMockStatisticsInvalidator(t)
	stats.EXPECT().Invalidate(mock.Anything, mock.Anything).Return(nil)
	uc := NewShortURLUsecase(repository.New(store.NewStore()), client, stats, zap.NewNop())

	client.EXPECT().CreateShortURL(mock.Anything, mock.Anything).
		Return(&shlink.ShortURL{ShortCode: "promo", LongURL: "https://example.com/old"}, nil).Once()
	first, err := uc.Create(ctx, "user-1", CreateInput{LongURL: "https://example.com/old", CustomSlug: "promo"})
	require.NoError(t, err)

	client.EXPECT().DeleteShortURL(mock.Anything, "promo").Return(nil).Once()
	require.NoError(t, uc.Delete(ctx, "user-1", "promo"))

	client.EXPECT().CreateShortURL(mock.Anything, mock.Anything).
		Return(&shlink.ShortURL{ShortCode: "promo", LongURL: "https://example.com/new"}, nil).Once()
	second, err := uc.Create(ctx, "user-2", CreateInput{LongURL: "https://example.com/new", CustomSlug: "promo"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Nil(t, second.DeletedAt)

	listed, err := uc.List(ctx, "user-2")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "https://example.com/new", listed[0].LongURL)

	previous, err := uc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, previous)
}

func TestShortURLUsecase_Ownership(t *testing.T) {
	deleted := time.Now()
	tests := []struct {
		name   string
		record model.ShortURL
		err    error
	}{
		{name: "other user", record: model.ShortURL{ShortCode: "abc", UserID: "user-2"}},
		{name: "soft deleted", record: model.ShortURL{ShortCode: "abc", UserID: "user-1", DeletedAt: &deleted}},
		{name: "absent", err: fmt.Errorf("failed to get short URL abc: %w", store.ErrNotFound)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, _, _ := newShortURLUsecase(t)
			ctx := context.Background()
			repo.EXPECT().Get(ctx, model.Code("abc")).Return(tt.record, tt.err)

			_, err := uc.Update(ctx, "user-1", "abc", UpdateInput{})
			assert.ErrorIs(t, err, ErrShortURLNotFound)

			assert.ErrorIs(t, uc.Delete(ctx, "user-1", "abc"), ErrShortURLNotFound)

			_, err = uc.RedirectRules(ctx, "user-1", "abc")
			assert.ErrorIs(t, err, ErrShortURLNotFound)
		})
	}
}

func TestShortURLUsecase_Update(t *testing.T) {
	uc, repo, client, stats := newShortURLUsecase(t)
	ctx := context.Background()
	newTitle := "New"
	longURL := " https://example.com/new "

	repo.EXPECT().Get(ctx, model.Code("abc")).Return(model.ShortURL{ShortCode: "abc", UserID: "user-1", Title: "Old"}, nil).Once()
	client.EXPECT().
		UpdateShortURL(ctx, "abc", mock.MatchedBy(func(p shlink.UpdateParams) bool {
			return p.Title != nil && *p.Title == "New" && p.LongURL != nil && *p.LongURL == "https://example.com/new" && p.Tags == nil
		})).
		Return(&shlink.ShortURL{ShortCode: "abc", LongURL: "https://example.com/new", Title: &newTitle, VisitsCount: 3}, nil).
		Once()
	repo.EXPECT().
		ApplyRemote(ctx, model.Code("abc"), mock.MatchedBy(func(s model.RemoteSnapshot) bool {
			return s.Title == "New" && s.VisitCount == 3
		})).
		Return(nil).
		Once()
	stats.EXPECT().Invalidate(ctx, "user-1").Return(nil).Once()
	repo.EXPECT().Get(ctx, model.Code("abc")).Return(model.ShortURL{ShortCode: "abc", UserID: "user-1", Title: "New"}, nil).Once()

	updated, err := uc.Update(ctx, "user-1", "abc", UpdateInput{Title: &newTitle, LongURL: &longURL})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
}

func TestShortURLUsecase_UpdateMissingInShlink(t *testing.T) {
	uc, repo, client, stats := newShortURLUsecase(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, model.Code("abc")).Return(model.ShortURL{ShortCode: "abc", UserID: "user-1"}, nil).Once()
	client.EXPECT().UpdateShortURL(ctx, "abc", mock.Anything).Return(nil, notFound()).Once()
	repo.EXPECT().SoftDelete(ctx, model.Code("abc")).Return(true, nil).Once()
	stats.EXPECT().Invalidate(ctx, "user-1").Return(nil).Once()

	_, err := uc.Update(ctx, "user-1", "abc", UpdateInput{})
	assert.ErrorIs(t, err, ErrShortURLNotFound)
}

func TestShortURLUsecase_Delete(t *testing.T) {
	tests := []struct {
		name      string
		remoteErr error
		wantErr   error
	}{
		{name: "deleted in Shlink"},
		{name: "already absent in Shlink", remoteErr: notFound()},
		{name: "Shlink unavailable", remoteErr: &shlink.APIError{Status: 500}, wantErr: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, client, stats := newShortURLUsecase(t)
			ctx := context.Background()

			repo.EXPECT().Get(ctx, model.Code("abc")).Return(model.ShortURL{ShortCode: "abc", UserID: "user-1"}, nil).Once()
			client.EXPECT().DeleteShortURL(ctx, "abc").Return(tt.remoteErr).Once()
			if tt.wantErr == nil {
				repo.EXPECT().SoftDelete(ctx, model.Code("abc")).Return(true, nil).Once()
				stats.EXPECT().Invalidate(ctx, "user-1").Return(nil).Once()
			}

			err := uc.Delete(ctx, "user-1", "abc")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestShortURLUsecase_InvalidateFailureIsLogged(t *testing.T) {
	uc, repo, client, stats := newShortURLUsecase(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, model.Code("abc")).Return(model.ShortURL{ShortCode: "abc", UserID: "user-1"}, nil).Once()
	client.EXPECT().DeleteShortURL(ctx, "abc").Return(nil).Once()
	repo.EXPECT().SoftDelete(ctx, model.Code("abc")).Return(true, nil).Once()
	stats.EXPECT().Invalidate(ctx, "user-1").Return(errors.New("redis down")).Once()

	assert.NoError(t, uc.Delete(ctx, "user-1", "abc"))
}

func TestShortURLUsecase_RedirectRules(t *testing.T) {
	uc, repo, client, _ := newShortURLUsecase(t)
	ctx := context.Background()

	rules := &shlink.RedirectRules{
		DefaultLongURL: "https://example.com",
		RedirectRules: []shlink.RedirectRule{
			{LongURL: "https://m.example.com", Priority: 1, Conditions: []shlink.RedirectCondition{{Type: "device", MatchValue: "android"}}},
		},
	}

	repo.EXPECT().Get(ctx, model.Code("abc")).Return(model.ShortURL{ShortCode: "abc", UserID: "user-1"}, nil).Once()
	client.EXPECT().GetRedirectRules(ctx, "abc").Return(rules, nil).Once()

	got, err := uc.RedirectRules(ctx, "user-1", "abc")
	require.NoError(t, err)
	assert.Equal(t, rules, got)
}

func TestShortURLUsecase_List(t *testing.T) {
	uc, repo, _, _ := newShortURLUsecase(t)
	ctx := context.Background()

	urls := []model.ShortURL{{ShortCode: "a"}, {ShortCode: "b"}}
	repo.EXPECT().ActiveByUser(ctx, "user-1").Return(urls, nil).Once()

	got, err := uc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, urls, got)
}
